package mesa

import "context"

// DictionaryResult is the outcome of a definition lookup. When the word
// is unknown or misspelled, DidYouMean carries spelling suggestions and
// Definition is empty.
type DictionaryResult struct {
	Word       string   `json:"word"`
	Definition string   `json:"definition"`
	Etymology  string   `json:"etymology,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
	DidYouMean []string `json:"didYouMean,omitempty"`
}

// Rhyme classification values.
const (
	RhymeConsonante = "consonante"
	RhymeToante     = "toante"

	TonicityOxitona       = "oxítona"
	TonicityParoxitona    = "paroxítona"
	TonicityProparoxitona = "proparoxítona"
)

// Rhyme is a single rhyming word with its classification.
type Rhyme struct {
	Word      string `json:"word"`
	Type      string `json:"type"`      // consonante or toante
	Syllables int    `json:"syllables"` // 0 when unknown
	Tonicity  string `json:"tonicity"`
}

// RhymeResult is the outcome of a rhyme lookup.
type RhymeResult struct {
	Word   string  `json:"word"`
	Rhymes []Rhyme `json:"rhymes"`
}

// LiteraryReference describes an author, work, or literary movement.
type LiteraryReference struct {
	Author string   `json:"author"`
	Works  []string `json:"works"`
	Period string   `json:"period"`
	Style  string   `json:"style"`
	Themes []string `json:"themes"`
}

// Advisor provides language and reference assistance for writers.
// Implementations degrade gracefully: callers receive either a usable
// result, a degraded one, or an error whose ErrorMessage is fit to show
// the user.
type Advisor interface {
	// Define looks up the definition of a word.
	Define(ctx context.Context, word string) (*DictionaryResult, error)

	// Rhymes lists rhymes for a word.
	Rhymes(ctx context.Context, word string) (*RhymeResult, error)

	// Reference looks up an author, work, or literary movement.
	Reference(ctx context.Context, query string) (*LiteraryReference, error)

	// ReviewSpelling reports contextual spelling and agreement issues
	// in text as free-form editorial feedback.
	ReviewSpelling(ctx context.Context, text string) (string, error)

	// ContinueText suggests a short continuation matching the voice of
	// the given fragment.
	ContinueText(ctx context.Context, text string) (string, error)
}

// QueryCache persists advisory lookup results keyed by normalized query.
// A miss is reported with ok=false and no error.
type QueryCache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
