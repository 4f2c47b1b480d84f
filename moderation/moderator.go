// Package moderation censors forbidden words in text leaving the bot.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	log          *slog.Logger
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// wordBreak separates words in folded text.
const wordBreak = ' '

// folded is the searchable form of a text: lower-cased, leet-free words joined by wordBreak.
// Punctuation at the edges of a word is dropped, inside a word it is noise or leet.
// positions[i] is the index in the original runes of runes[i], -1 for a wordBreak.
type folded struct {
	runes     []rune
	positions []int
}

func fold(input []rune) folded {
	f := folded{runes: make([]rune, 0, len(input)), positions: make([]int, 0, len(input))}
	for start := 0; start < len(input); {
		if unicode.IsSpace(input[start]) {
			start++
			continue
		}
		end := start
		for end < len(input) && !unicode.IsSpace(input[end]) {
			end++
		}
		f.appendWord(input, start, end)
		start = end
	}
	return f
}

func (f *folded) appendWord(input []rune, start, end int) {
	for start < end && isNoise(input[start]) {
		start++
	}
	for end > start && isNoise(input[end-1]) {
		end--
	}
	if start == end {
		return
	}
	if len(f.runes) > 0 {
		f.runes = append(f.runes, wordBreak)
		f.positions = append(f.positions, -1)
	}
	for i := start; i < end; i++ {
		clean := simplifyRune(input[i])
		if isNoise(clean) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(clean))
		f.positions = append(f.positions, i)
	}
}

// wholeWord reports whether runes[start:end] is a complete word.
func (f folded) wholeWord(start, end int) bool {
	if start > 0 && f.runes[start-1] != wordBreak {
		return false
	}
	return end == len(f.runes) || f.runes[end] == wordBreak
}

// NewModerator initializes the Aho-Corasick automaton with a normalized version of the provided censored words list.
// Words that normalize to nothing (pure punctuation) are skipped. Matching is on whole words only.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		if f := fold([]rune(word)); len(f.runes) > 0 {
			patterns = append(patterns, f.runes)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{log: log, matcher: m, censoredChar: censoredChar}, nil
}

// Censor replaces every forbidden word with the censor rune, keeping the original spacing,
// and returns the matched words in order of appearance.
func (m *Moderator) Censor(original string) (string, []string) {
	runes := []rune(original)
	text := fold(runes)
	if len(text.runes) == 0 {
		return original, nil
	}

	hits := m.matcher.MultiPatternSearch(text.runes, false)
	if len(hits) == 0 {
		return original, nil
	}

	var words []string
	for _, hit := range hits {
		end := hit.Pos + len(hit.Word)
		if hit.Pos < 0 || end > len(text.positions) || !text.wholeWord(hit.Pos, end) {
			continue
		}
		for i := text.positions[hit.Pos]; i <= text.positions[end-1]; i++ {
			runes[i] = m.censoredChar
		}
		words = append(words, string(hit.Word))
	}

	if len(words) == 0 {
		return original, nil
	}
	m.log.Debug("Censored words found", "count", len(words))
	return string(runes), words
}

// simplifyRune maps common Leet speak characters back to their standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
