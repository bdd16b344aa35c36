// Package source provides restartable sources of raw tokenized rows for the
// analysis pipeline. Restartability matters: anomaly statistics need a
// second pass over the same rows, and the pipeline holds no buffered copy.
package source

// RowSource produces a lazy, finite sequence of raw tokenized rows and can
// be restarted from the beginning for another pass. The usage pattern
// follows bufio.Scanner: Next advances, Row/RowNumber read the current
// position, Err reports what stopped a scan early.
type RowSource interface {
	// Next advances to the next data row. It returns false at the end of
	// the sequence or on error; Err distinguishes the two.
	Next() bool
	// Row returns the current raw tokenized row. Only valid after a true
	// Next.
	Row() []string
	// RowNumber returns the 1-based position of the current data row.
	RowNumber() int
	// Err returns the first error encountered while scanning, if any.
	Err() error
	// Reset restarts the source from its first data row.
	Reset() error
	// Close releases any underlying resources.
	Close() error
}

// SliceRowSource serves rows from memory. Used by tests and by callers that
// already hold tokenized input.
type SliceRowSource struct {
	rows [][]string
	pos  int
}

func NewSliceRowSource(rows [][]string) *SliceRowSource {
	return &SliceRowSource{rows: rows}
}

func (s *SliceRowSource) Next() bool {
	if s.pos >= len(s.rows) {
		return false
	}
	s.pos++
	return true
}

func (s *SliceRowSource) Row() []string {
	return s.rows[s.pos-1]
}

func (s *SliceRowSource) RowNumber() int {
	return s.pos
}

func (s *SliceRowSource) Err() error {
	return nil
}

func (s *SliceRowSource) Reset() error {
	s.pos = 0
	return nil
}

func (s *SliceRowSource) Close() error {
	return nil
}
