package domain

// Result holds the outcome of one original-vs-copied comparison.
type Result struct {
	Name string
	// Similarity is the LCS length over the copied length, in percent [0, 100].
	Similarity     float64
	LCSLength      int
	OriginalLength int
	CopiedLength   int
	// Empty is set when either side had no characters and the LCS was skipped.
	Empty   bool
	Details map[string]interface{}
}
