package models

// ProcessedLine is the per-line result of key extraction and normalization.
// Key is always derived from Original and keeps its original case; SortKey
// is the comparison-only form (possibly NFC-normalized and case-folded) and
// never appears in output.
type ProcessedLine struct {
	// Original is the raw input line, unchanged.
	Original string
	// Key is the extracted sort key: the whole line or its first word.
	// Empty when no word was found.
	Key string
	// SortKey is Key after the configured normalization steps.
	SortKey string
	// Index is the zero-based position of the line in the input, used to
	// keep equal keys in input order when a stable sort is requested.
	Index int
	// HasWord reports whether a sort key was found under the active word
	// rule. Lines with HasWord false are dropped when exclude-no-word is
	// set.
	HasWord bool
	// WordStart is the rune column where Key begins in Original, -1 when
	// HasWord is false. Only the dictionary-order alignment mode reads it.
	WordStart int
	// WordWidth is the width of Key in runes.
	WordWidth int
}

// PaddingInfo carries the maximum width observed over a whole result set,
// computed once after extraction and consumed by the output projector to
// right-align keys.
type PaddingInfo struct {
	// MaxWidth is the alignment target in runes: the widest key, or the
	// largest first-word end column when UseEndPos is set.
	MaxWidth int
	// UseEndPos selects dictionary-order alignment, where lines are padded
	// so the end of each first word lands on the same column.
	UseEndPos bool
}
