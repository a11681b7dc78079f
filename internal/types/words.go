package types

// WordCount is a normalized word token and the number of times it occurred.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords is an ordered list of word counts, highest count first.
// Words with equal counts keep the order in which they first appeared.
type TopWords []WordCount

// Words returns the words without their counts.
func (tw TopWords) Words() []string {
	words := make([]string, 0, len(tw))
	for _, wc := range tw {
		words = append(words, wc.Word)
	}
	return words
}
