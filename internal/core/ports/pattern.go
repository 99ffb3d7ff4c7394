package ports

// Defines the interface for data-pattern fillers used to prepare
// source regions before a copy pass.
type PatternFiller interface {
	// Fills words with the pattern. pass distinguishes repeated fills
	// of the same region so rotating patterns (walking bits) advance,
	// and keeps random fills reproducible per pass.
	Fill(words []uint64, pass uint64)

	// Name returns the pattern name for logs and reports.
	Name() string
}
