package metrics

import "math"

// BalanceScore measures how evenly task counts are distributed across
// categories, as normalized Shannon entropy on a 0-100 scale. A single
// category (or a distribution matching maximum entropy) scores 100; an
// empty input scores 0.
func BalanceScore(counts map[string]int) Envelope {
	raw := map[string]any{
		"categories": len(counts),
	}

	if len(counts) == 0 {
		raw["entropy"] = 0.0
		return Envelope{Metric: "balance_score", Value: 0.0, RawInputs: raw}
	}

	var total int
	dominant := ""
	dominantCount := 0
	for cat, c := range counts {
		if c < 0 {
			c = 0
		}
		total += c
		if c > dominantCount {
			dominant, dominantCount = cat, c
		}
	}
	if total == 0 {
		raw["entropy"] = 0.0
		return Envelope{Metric: "balance_score", Value: 0.0, RawInputs: raw}
	}

	var entropy float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}

	raw["entropy"] = entropy
	raw["total_tasks"] = total
	raw["dominant_category"] = dominant
	raw["dominant_share"] = float64(dominantCount) / float64(total)

	// One category has zero maximum entropy; by convention that is
	// perfectly "balanced" rather than a divide-by-zero.
	maxEntropy := 0.0
	if len(counts) > 1 {
		maxEntropy = math.Log2(float64(len(counts)))
	}
	raw["max_entropy"] = maxEntropy

	score := 100.0
	if maxEntropy > 0 && entropy < maxEntropy {
		score = entropy / maxEntropy * 100
	}

	return Envelope{Metric: "balance_score", Value: score, RawInputs: raw}
}
