package textsignal

// defaultLexicon maps sentiment-bearing words to valence scores in roughly
// [-4, 4], the scale used by the VADER lexicon. Only the normalized compound
// score leaves this package, so the absolute scale cancels out.
var defaultLexicon = map[string]float64{
	// Positive.
	"amazing":      3.0,
	"awesome":      3.1,
	"great":        3.1,
	"excellent":    3.2,
	"fantastic":    3.3,
	"wonderful":    3.0,
	"good":         1.9,
	"happy":        2.7,
	"proud":        2.2,
	"energized":    2.0,
	"energetic":    2.0,
	"motivated":    2.1,
	"productive":   2.0,
	"focused":      1.8,
	"calm":         1.5,
	"relaxed":      1.7,
	"rested":       1.6,
	"refreshed":    1.9,
	"strong":       1.8,
	"better":       1.7,
	"best":         3.2,
	"love":         3.2,
	"loved":        2.9,
	"enjoy":        2.2,
	"enjoyed":      2.3,
	"win":          2.4,
	"progress":     1.6,
	"accomplished": 2.4,
	"consistent":   1.4,
	"easy":         1.2,

	// Negative.
	"awful":        -3.1,
	"terrible":     -3.1,
	"horrible":     -3.0,
	"bad":          -2.5,
	"sad":          -2.1,
	"tired":        -1.7,
	"exhausted":    -2.4,
	"drained":      -2.2,
	"stressed":     -2.3,
	"stress":       -2.0,
	"anxious":      -2.2,
	"anxiety":      -2.1,
	"overwhelmed":  -2.4,
	"frustrated":   -2.3,
	"frustrating":  -2.2,
	"angry":        -2.7,
	"sick":         -2.1,
	"ill":          -1.9,
	"pain":         -2.3,
	"hurt":         -2.1,
	"lazy":         -1.5,
	"unmotivated":  -2.0,
	"discouraged":  -2.1,
	"failed":       -2.4,
	"failure":      -2.5,
	"worse":        -2.1,
	"worst":        -3.1,
	"hard":         -1.1,
	"difficult":    -1.5,
	"struggled":    -1.9,
	"struggling":   -1.9,
	"skipped":      -1.2,
	"missed":       -1.4,
	"burnout":      -2.6,
	"insomnia":     -2.2,
	"restless":     -1.6,
}

// negators flip the valence of the following sentiment word.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"nor":     true,
	"cannot":  true,
	"cant":    true,
	"wont":    true,
	"didnt":   true,
	"dont":    true,
	"doesnt":  true,
	"isnt":    true,
	"wasnt":   true,
	"without": true,
	"hardly":  true,
	"barely":  true,
}

// stopwords are excluded from keyword extraction. Sentiment words stay in;
// a note dominated by "tired" should surface it as a keyword too.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "was": true, "are": true,
	"but": true, "with": true, "that": true, "this": true, "have": true,
	"had": true, "has": true, "not": true, "all": true, "too": true,
	"out": true, "its": true, "got": true, "get": true, "did": true,
	"day": true, "today": true, "very": true, "really": true,
	"just": true, "then": true, "than": true, "them": true, "they": true,
	"when": true, "what": true, "where": true, "about": true, "after": true,
	"before": true, "again": true, "some": true, "more": true, "most": true,
	"much": true, "also": true, "been": true, "being": true, "were": true,
	"will": true, "would": true, "could": true, "should": true, "into": true,
	"onto": true, "over": true, "under": true, "because": true, "since": true,
	"while": true, "during": true, "each": true, "other": true, "only": true,
	"still": true, "even": true, "felt": true, "feel": true, "feeling": true,
	"like": true, "went": true, "made": true, "make": true, "doing": true,
	"done": true, "lot": true, "bit": true, "you": true, "your": true,
	"our": true, "his": true, "her": true, "she": true, "him": true,
	"from": true, "there": true, "here": true, "these": true, "those": true,
	"didnt": true, "dont": true, "cant": true, "wont": true,
}
