// Package gemini implements mesa.Advisor using Google Gemini.
// Definition and rhyme lookups use structured output schemas; spelling
// review, continuation, and literary references are free-text requests
// whose responses are parsed and validated at the boundary.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/mesa"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const model = "gemini-2.0-flash"

// defaultRequestsPerSecond limits outbound calls to the generative
// service. Bursts of panel queries are smoothed rather than rejected.
const defaultRequestsPerSecond = 2.0

// Ensure Advisor implements mesa.Advisor at compile time.
var _ mesa.Advisor = (*Advisor)(nil)

// Advisor implements mesa.Advisor using Google Gemini.
type Advisor struct {
	client  *genai.Client
	limiter *rate.Limiter
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithRateLimit sets the outbound request rate in requests per second.
func WithRateLimit(rps float64) Option {
	return func(a *Advisor) {
		a.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewAdvisor creates a new Advisor.
func NewAdvisor(client *genai.Client, opts ...Option) *Advisor {
	a := &Advisor{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Define looks up the definition of a word.
func (a *Advisor) Define(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
	if strings.TrimSpace(word) == "" {
		return nil, mesa.Errorf(mesa.EINVALID, "word required")
	}

	text, err := a.generate(ctx, BuildDefinePrompt(word), BuildDefineConfig())
	if err != nil {
		return nil, err
	}

	var result mesa.DictionaryResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, mesa.Errorf(mesa.EINTERNAL, "malformed definition response")
	}
	if result.Word == "" {
		result.Word = word
	}
	return &result, nil
}

// Rhymes lists rhymes for a word.
func (a *Advisor) Rhymes(ctx context.Context, word string) (*mesa.RhymeResult, error) {
	if strings.TrimSpace(word) == "" {
		return nil, mesa.Errorf(mesa.EINVALID, "word required")
	}

	text, err := a.generate(ctx, BuildRhymesPrompt(word), BuildRhymesConfig())
	if err != nil {
		return nil, err
	}

	var result mesa.RhymeResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, mesa.Errorf(mesa.EINTERNAL, "malformed rhyme response")
	}
	if result.Word == "" {
		result.Word = word
	}
	return &result, nil
}

// Reference looks up an author, work, or literary movement. The first
// attempt grounds the answer with the Google Search tool; when that
// fails the lookup is retried on model knowledge alone.
func (a *Advisor) Reference(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
	if strings.TrimSpace(query) == "" {
		return nil, mesa.Errorf(mesa.EINVALID, "query required")
	}

	text, err := a.generate(ctx, BuildReferencePrompt(query, true), BuildReferenceConfig(true))
	if err != nil {
		text, err = a.generate(ctx, BuildReferencePrompt(query, false), BuildReferenceConfig(false))
		if err != nil {
			return nil, err
		}
	}

	return ParseReference(text)
}

// ReviewSpelling reports contextual spelling and agreement issues.
func (a *Advisor) ReviewSpelling(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", mesa.Errorf(mesa.EINVALID, "text required")
	}

	return a.generate(ctx, BuildReviewPrompt(text), BuildReviewConfig())
}

// ContinueText suggests a short continuation in the author's voice.
func (a *Advisor) ContinueText(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", mesa.Errorf(mesa.EINVALID, "text required")
	}

	out, err := a.generate(ctx, BuildContinuePrompt(text), BuildContinueConfig())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "O autor silenciou... (tente novamente)", nil
	}
	return out, nil
}

func (a *Advisor) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", mesa.Errorf(mesa.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// ParseReference parses the free-text reference response. Responses may
// arrive wrapped in markdown fences; anything that does not yield an
// author is a tool-level failure.
func ParseReference(text string) (*mesa.LiteraryReference, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, mesa.Errorf(mesa.EINTERNAL, "empty reference response")
	}

	var ref mesa.LiteraryReference
	if err := json.Unmarshal([]byte(text), &ref); err != nil {
		return nil, mesa.Errorf(mesa.EINTERNAL, "malformed reference response")
	}
	if ref.Author == "" {
		return nil, mesa.Errorf(mesa.EINTERNAL, "incomplete reference response")
	}
	return &ref, nil
}

// BuildDefinePrompt builds the definition lookup prompt.
func BuildDefinePrompt(word string) string {
	return fmt.Sprintf(`Forneça a definição, etimologia, sinônimos e antônimos da palavra %q em português brasileiro.
Se a palavra não existir ou estiver escrita incorretamente, sugira correções ortográficas ou palavras parecidas no campo "didYouMean" e deixe a definição vazia.`, word)
}

// BuildDefineConfig returns the structured-output config for definition
// lookups.
func BuildDefineConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"word":       {Type: genai.TypeString},
				"definition": {Type: genai.TypeString},
				"etymology":  {Type: genai.TypeString},
				"synonyms":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"antonyms":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"didYouMean": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"word", "definition", "synonyms", "antonyms"},
		},
	}
}

// BuildRhymesPrompt builds the rhyme lookup prompt.
func BuildRhymesPrompt(word string) string {
	return fmt.Sprintf("Liste rimas para a palavra %q em português. Classifique por tipo (consonante/toante), número de sílabas e tonicidade.", word)
}

// BuildRhymesConfig returns the structured-output config for rhyme
// lookups, constraining type and tonicity to their closed sets.
func BuildRhymesConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"word": {Type: genai.TypeString},
				"rhymes": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"word":      {Type: genai.TypeString},
							"type":      {Type: genai.TypeString, Enum: []string{mesa.RhymeConsonante, mesa.RhymeToante}},
							"syllables": {Type: genai.TypeInteger},
							"tonicity":  {Type: genai.TypeString, Enum: []string{mesa.TonicityOxitona, mesa.TonicityParoxitona, mesa.TonicityProparoxitona}},
						},
						Required: []string{"word", "type", "syllables", "tonicity"},
					},
				},
			},
			Required: []string{"word", "rhymes"},
		},
	}
}

// BuildReferencePrompt builds the literary reference prompt.
func BuildReferencePrompt(query string, useSearch bool) string {
	source := "Use seu conhecimento literário."
	if useSearch {
		source = "Consulte a internet para verificar dados recentes."
	}
	return fmt.Sprintf(`Analise o termo literário: %q.
%s

Gere um JSON estrito (sem Markdown) com:
- author: Nome
- works: Lista de obras principais (array)
- period: Período/Movimento
- style: Estilo (sintético)
- themes: Temas (array)

Responda APENAS o JSON.`, query, source)
}

// BuildReferenceConfig returns the config for literary reference
// lookups, optionally attaching the Google Search tool.
func BuildReferenceConfig(useSearch bool) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if useSearch {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return config
}

// BuildReviewPrompt builds the spelling review prompt.
func BuildReviewPrompt(text string) string {
	return fmt.Sprintf("Atue como um revisor editorial experiente. Analise o seguinte texto em português e aponte apenas erros ortográficos contextuais e problemas de concordância sutis. Seja breve e direto. Não reescreva o texto, apenas aponte os pontos de atenção. Texto: \n\n%s", text)
}

// BuildReviewConfig returns the config for spelling reviews.
func BuildReviewConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Você é um consultor linguístico para escritores literários. Seu tom é formal, útil e técnico.",
			}},
		},
	}
}

// BuildContinuePrompt builds the continuation prompt.
func BuildContinuePrompt(text string) string {
	return fmt.Sprintf("Atue como um co-autor literário. Analise o estilo, o tom e o contexto do seguinte fragmento de texto e escreva uma continuação natural de cerca de 2 a 3 frases. Mantenha estritamente a voz do autor. Não adicione introduções ou comentários seus, retorne APENAS o texto sugerido para a continuação.\n\nTexto atual:\n%s", text)
}

// BuildContinueConfig returns the config for continuations.
func BuildContinueConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Você é um assistente criativo invisível. Sua única missão é ajudar o autor a superar bloqueios mantendo a integridade estilística da obra.",
			}},
		},
	}
}
