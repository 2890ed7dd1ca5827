package escape

import "fmt"

// InvalidEscapeError reports a '%' that is not followed by two
// hexadecimal digits. Pos is the byte offset of the '%' in the input.
type InvalidEscapeError struct {
	Pos    int
	Escape string
}

func (e *InvalidEscapeError) Error() string {
	return fmt.Sprintf("invalid percent escape %q at position %d", e.Escape, e.Pos)
}
