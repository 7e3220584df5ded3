// Package textsignal implements a lexicon-based TextSignalExtractor for
// free-text daily notes. It derives a sentiment breakdown, an optional
// sleep-hours reading, and stopword-filtered keyword frequencies, all from
// compiled word lists and regexes held by the extractor. Construct one
// extractor and reuse it; Analyze is safe for concurrent use.
package textsignal
