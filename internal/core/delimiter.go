package core

import "strings"

// delimiterPriority orders the candidate separators from most to least
// distinctive. Tabs almost never appear in prose, semicolons rarely, and
// commas constantly, so when sample evidence ties the more distinctive
// separator wins.
var delimiterPriority = []Delimiter{DelimiterTab, DelimiterSemicolon, DelimiterComma}

// delimiterSampleSize bounds how many leading data lines the detector
// inspects. Five lines are enough to establish a consistent column count
// without scanning large files twice.
const delimiterSampleSize = 5

// DetectDelimiter picks the field separator by counting candidate
// characters across a sample of leading data lines.
//
// A candidate whose count is identical and non-zero on every sampled line
// wins outright, checked in priority order. Failing that, candidates that
// appear on every line compete on count stability (smallest max-min
// spread, ties broken by the higher minimum count, then by priority).
// When no candidate appears on every sampled line the detector falls
// back to comma.
func DetectDelimiter(dataLines []string) Delimiter {
	sample := dataLines
	if len(sample) > delimiterSampleSize {
		sample = sample[:delimiterSampleSize]
	}
	if len(sample) == 0 {
		return DelimiterComma
	}

	type stats struct {
		min int
		max int
	}
	counts := make(map[Delimiter]stats, len(delimiterPriority))
	for _, d := range delimiterPriority {
		sep := string(d.Rune())
		st := stats{min: -1}
		for _, line := range sample {
			n := strings.Count(line, sep)
			if st.min < 0 || n < st.min {
				st.min = n
			}
			if n > st.max {
				st.max = n
			}
		}
		counts[d] = st
	}

	// Perfectly consistent candidates win immediately.
	for _, d := range delimiterPriority {
		st := counts[d]
		if st.min > 0 && st.min == st.max {
			return d
		}
	}

	// Otherwise prefer the candidate present on every line with the most
	// stable count.
	best := Delimiter("")
	for _, d := range delimiterPriority {
		st := counts[d]
		if st.min <= 0 {
			continue
		}
		if best == "" {
			best = d
			continue
		}
		bs := counts[best]
		spread, bestSpread := st.max-st.min, bs.max-bs.min
		if spread < bestSpread || (spread == bestSpread && st.min > bs.min) {
			best = d
		}
	}
	if best != "" {
		return best
	}

	return DelimiterComma
}

// ResolveDecimalSeparator infers the decimal convention from the field
// separator: semicolon-delimited files come from locales that write
// decimals with a comma, everything else uses a dot.
func ResolveDecimalSeparator(delim Delimiter) DecimalSeparator {
	if delim == DelimiterSemicolon {
		return DecimalComma
	}
	return DecimalDot
}
