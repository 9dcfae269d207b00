// Package offline implements mesa.Advisor without any network access.
// It is the degraded path used when no API key is configured and the
// fallback target when the remote service fails mid-session. Rhymes
// come from a small suffix table; everything else either answers from
// builtin data or explains what is missing.
package offline

import (
	"context"
	"strings"

	"github.com/fwojciec/mesa"
)

// suffixRhymes maps common Portuguese word endings to known rhymes.
var suffixRhymes = map[string][]string{
	"ão":   {"coração", "mão", "pão", "chão", "ilusão", "paixão", "canção", "ação", "emoção", "razão"},
	"ar":   {"amar", "olhar", "mar", "lugar", "falar", "pensar", "sonhar", "voar", "cantar", "estar"},
	"er":   {"viver", "saber", "ter", "ler", "escrever", "poder", "querer", "ver", "ser", "entender"},
	"ir":   {"sentir", "partir", "sorrir", "abrir", "pedir", "ouvir", "dormir", "existir", "fluir", "cair"},
	"or":   {"amor", "dor", "flor", "calor", "sabor", "valor", "temor", "cor", "motor", "favor"},
	"ada":  {"amada", "estrada", "nada", "chegada", "alvorada", "jornada", "morada", "calada", "espada"},
	"ente": {"mente", "gente", "quente", "frente", "sente", "presente", "ausente", "urgente", "vivente"},
	"al":   {"final", "real", "igual", "natural", "sinal", "mortal", "leal", "banal", "atemporal"},
	"ento": {"vento", "tempo", "momento", "pensamento", "sentimento", "lento", "atento", "assento"},
	"ia":   {"dia", "magia", "poesia", "alegria", "fantasia", "guia", "bacia", "fria", "melodia"},
}

// builtinReference is served for queries matching its aliases without
// consulting any external source.
var builtinReference = &mesa.LiteraryReference{
	Author: "Paulo Volker",
	Period: "Contemporâneo",
	Style:  "Filosófico, Analítico e Poético",
	Works: []string{
		"Livro das Bulas",
		"A Neurociência das Emoções",
		"Filosofia Contemporânea Chinesa",
		"Empresa de 1 Real",
		"O Re-verso do Filósofo",
		"Filosofia da Música",
		"Filosofia do Prompt",
		"Sistema Humano de Interrogação",
		"Estratégia da Pergunta",
		"Platão: O Algoritmo da Pergunta",
		"Manual Avançado para Mentirosos",
		"Conversas de Avião",
		"Excalibur",
		"Discursos Póstumos",
	},
	Themes: []string{
		"Filosofia da Mente",
		"Empreendedorismo",
		"Música e Emoção",
		"Inteligência Artificial (Prompts)",
		"Educação",
	},
}

var builtinAliases = []string{
	"paulo volker",
	"referencia bibliograficas",
	"referência bibliográficas",
}

// Ensure Advisor implements mesa.Advisor at compile time.
var _ mesa.Advisor = (*Advisor)(nil)

// Advisor implements mesa.Advisor from builtin data only.
type Advisor struct{}

// NewAdvisor creates a new Advisor.
func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Define reports that definitions are unavailable offline.
func (a *Advisor) Define(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
	return nil, mesa.Errorf(mesa.EUNAVAILABLE, "O dicionário requer uma Chave de API configurada no arquivo .env.local.")
}

// Rhymes lists rhymes from the suffix table.
func (a *Advisor) Rhymes(ctx context.Context, word string) (*mesa.RhymeResult, error) {
	if strings.TrimSpace(word) == "" {
		return nil, mesa.Errorf(mesa.EINVALID, "word required")
	}
	return RhymesFor(word), nil
}

// Reference answers from builtin data when the query matches, and
// returns a placeholder explaining the missing API key otherwise.
func (a *Advisor) Reference(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
	if ref, ok := LookupReference(query); ok {
		return ref, nil
	}
	return &mesa.LiteraryReference{
		Author: "Não encontrado",
		Period: "-",
		Style:  "Erro de Permissão/API Key. Verifique seu arquivo .env.local",
		Works:  []string{},
		Themes: []string{},
	}, nil
}

// ReviewSpelling explains that review requires an API key.
func (a *Advisor) ReviewSpelling(ctx context.Context, text string) (string, error) {
	return "⚠️ Erro: Chave de API não configurada no arquivo .env.local.", nil
}

// ContinueText explains that continuation requires an API key.
func (a *Advisor) ContinueText(ctx context.Context, text string) (string, error) {
	return "⚠️ O Sopro Criativo precisa que uma Chave de API válida seja configurada no arquivo .env.local.", nil
}

// RhymesFor builds a rhyme list by matching the longest known suffixes
// of the word. Longer suffixes rank first; the word itself and
// duplicates are removed. Type and tonicity carry the statistically
// most common values since the table does not encode them.
func RhymesFor(word string) *mesa.RhymeResult {
	clean := strings.ToLower(strings.TrimSpace(word))
	runes := []rune(clean)

	var candidates []string
	for _, n := range []int{4, 3, 2} {
		if len(runes) < n {
			continue
		}
		candidates = append(candidates, suffixRhymes[string(runes[len(runes)-n:])]...)
	}

	seen := make(map[string]bool, len(candidates))
	rhymes := make([]mesa.Rhyme, 0, len(candidates))
	for _, c := range candidates {
		if c == clean || seen[c] {
			continue
		}
		seen[c] = true
		rhymes = append(rhymes, mesa.Rhyme{
			Word:     c,
			Type:     mesa.RhymeConsonante,
			Tonicity: mesa.TonicityParoxitona,
		})
	}

	return &mesa.RhymeResult{Word: word, Rhymes: rhymes}
}

// LookupReference reports the builtin reference when the query matches
// one of its aliases.
func LookupReference(query string) (*mesa.LiteraryReference, bool) {
	clean := strings.ToLower(strings.TrimSpace(query))
	for _, alias := range builtinAliases {
		if strings.Contains(clean, alias) {
			return builtinReference, true
		}
	}
	return nil, false
}
