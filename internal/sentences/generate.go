package sentences

// PadKeywords returns a new slice of exactly n keywords: the first n entries
// of keywords, followed by filler as many times as needed. The input slice is
// never modified.
func PadKeywords(keywords []string, n int, filler string) []string {
	if n <= 0 {
		return []string{}
	}
	padded := make([]string, n)
	copied := copy(padded, keywords)
	for i := copied; i < n; i++ {
		padded[i] = filler
	}
	return padded
}

// Generate produces one sentence per template, substituting the keyword at
// the same position. Missing keywords are replaced by filler and extra
// keywords are ignored, so the result always has templates.Len() entries.
func Generate(keywords []string, templates *Templates, filler string) []string {
	n := templates.Len()
	padded := PadKeywords(keywords, n, filler)

	out := make([]string, n)
	for i := range out {
		out[i] = templates.Format(i, padded[i])
	}
	return out
}
