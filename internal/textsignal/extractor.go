package textsignal

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/habitd/internal/habit"
)

// maxKeywords caps the keyword list returned per note.
const maxKeywords = 10

// sleepPattern pairs a compiled regex with the index of the capture group
// holding the hours figure. Patterns are evaluated in order; the first match
// wins.
type sleepPattern struct {
	regex *regexp.Regexp
	group int
}

// LexiconExtractor derives text signals from note content using embedded
// word lists and compiled regexes. All state is read-only after construction.
type LexiconExtractor struct {
	lexicon       map[string]float64
	sleepPatterns []sleepPattern
}

// NewLexiconExtractor builds an extractor with the default lexicon and
// sleep-hour patterns.
func NewLexiconExtractor() *LexiconExtractor {
	return &LexiconExtractor{
		lexicon:       defaultLexicon,
		sleepPatterns: buildSleepPatterns(),
	}
}

// buildSleepPatterns returns ordered regexes for sleep-duration mentions.
// More explicit phrasings come first so "slept 6 hours" is not shadowed by
// the bare "6h" form.
func buildSleepPatterns() []sleepPattern {
	return []sleepPattern{
		{regexp.MustCompile(`(?i)\bslept\s+(?:for\s+)?(?:only\s+|about\s+|around\s+)?(\d{1,2}(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b`), 1},
		{regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d+)?)\s*(?:hours?|hrs?|h)\s+(?:of\s+)?sleep\b`), 1},
		{regexp.MustCompile(`(?i)\bgot\s+(?:only\s+|about\s+|around\s+)?(\d{1,2}(?:\.\d+)?)\s*(?:hours?|hrs?|h)\s+(?:of\s+)?sleep\b`), 1},
		{regexp.MustCompile(`(?i)\bsleep[:=]\s*(\d{1,2}(?:\.\d+)?)\s*(?:hours?|hrs?|h)?\b`), 1},
	}
}

// Analyze extracts sentiment, sleep hours and keywords from one note body.
// It never returns an error today; the error slot is part of the extractor
// contract so richer implementations can fail.
func (e *LexiconExtractor) Analyze(text string) (habit.TextSignals, error) {
	tokens := tokenize(text)
	return habit.TextSignals{
		Sentiment:  e.sentiment(tokens),
		SleepHours: e.sleepHours(text),
		Keywords:   keywords(tokens),
	}, nil
}

// sentiment scores tokens against the lexicon. A negator within the two
// preceding tokens flips the valence of a sentiment word. The compound score
// uses the VADER normalization score/sqrt(score^2+15); Pos, Neu and Neg are
// token proportions.
func (e *LexiconExtractor) sentiment(tokens []string) habit.SentimentScore {
	if len(tokens) == 0 {
		return habit.SentimentScore{Compound: 0, Pos: 0, Neu: 1, Neg: 0}
	}

	var sum float64
	var posCount, negCount int
	for i, tok := range tokens {
		valence, ok := e.lexicon[tok]
		if !ok {
			continue
		}
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			if negators[tokens[j]] {
				valence = -valence
				break
			}
		}
		sum += valence
		if valence > 0 {
			posCount++
		} else if valence < 0 {
			negCount++
		}
	}

	total := float64(len(tokens))
	compound := sum / math.Sqrt(sum*sum+15)

	return habit.SentimentScore{
		Compound: clampRange(compound, -1, 1),
		Pos:      float64(posCount) / total,
		Neu:      float64(len(tokens)-posCount-negCount) / total,
		Neg:      float64(negCount) / total,
	}
}

// sleepHours returns the first plausible sleep-duration figure, or nil when
// the text does not mention one. Figures outside (0, 24] are rejected.
func (e *LexiconExtractor) sleepHours(text string) *float64 {
	for _, p := range e.sleepPatterns {
		m := p.regex.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hours, err := strconv.ParseFloat(m[p.group], 64)
		if err != nil || hours <= 0 || hours > 24 {
			continue
		}
		return &hours
	}
	return nil
}

// keywords counts tokens of three or more letters that are not stopwords,
// returning the most frequent first with ties broken alphabetically.
func keywords(tokens []string) []habit.KeywordCount {
	counts := make(map[string]int)
	for _, tok := range tokens {
		if len(tok) < 3 || stopwords[tok] || negators[tok] {
			continue
		}
		counts[tok]++
	}
	if len(counts) == 0 {
		return nil
	}

	out := make([]habit.KeywordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, habit.KeywordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > maxKeywords {
		out = out[:maxKeywords]
	}
	return out
}

// tokenize lowercases the text and splits it into letter-only tokens.
// Apostrophes are dropped in place so "didn't" becomes "didnt" and matches
// the negator list.
func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "'", ""))
	return strings.FieldsFunc(text, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ habit.TextSignalExtractor = (*LexiconExtractor)(nil)
