package mesa

import (
	"strings"
	"unicode/utf8"
)

// ReadingWordsPerMinute is the average reading speed used for the
// reading time estimate.
const ReadingWordsPerMinute = 200

// Metrics captures statistics derived from a project's content. Metrics
// are recomputed on demand and never stored.
type Metrics struct {
	Words       int     `json:"words"`
	Chars       int     `json:"chars"`
	Paragraphs  int     `json:"paragraphs"`
	ReadingTime int     `json:"readingTime"` // minutes
	Progress    float64 `json:"progress"`    // 0-100
}

// ComputeMetrics derives text metrics from content. Words are
// whitespace-delimited tokens, paragraphs are runs of text separated by
// one or more newlines, and chars counts the runes of the trimmed
// content. Progress is the percentage of wordGoal reached, clamped to
// 100; a zero goal yields zero progress.
func ComputeMetrics(content string, wordGoal int) Metrics {
	text := strings.TrimSpace(content)
	if text == "" {
		return Metrics{}
	}

	words := len(strings.Fields(text))

	m := Metrics{
		Words:       words,
		Chars:       utf8.RuneCountInString(text),
		Paragraphs:  countParagraphs(text),
		ReadingTime: (words + ReadingWordsPerMinute - 1) / ReadingWordsPerMinute,
	}

	if wordGoal > 0 {
		m.Progress = float64(words) / float64(wordGoal) * 100
		if m.Progress > 100 {
			m.Progress = 100
		}
	}

	return m
}

// countParagraphs counts runs of non-newline text. The input is trimmed,
// so the count equals one plus the number of newline runs.
func countParagraphs(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		if r == '\n' {
			inRun = false
		} else if !inRun {
			count++
			inRun = true
		}
	}
	return count
}
