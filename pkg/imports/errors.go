package imports

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrInvalidGroupPattern     = errors.New("invalid group pattern")
	ErrUnclassifiableStatement = errors.New("unclassifiable statement")
)

// InvalidGroupPatternError reports a bucket pattern that does not compile.
type InvalidGroupPatternError struct {
	Bucket  int    // Index of the bucket in the group definition
	Index   int    // Index of the pattern within the bucket
	Pattern string // Pattern as authored
	Err     error  // Compilation failure
}

func (e *InvalidGroupPatternError) Error() string {
	return fmt.Sprintf("group %d pattern %d %q: %v", e.Bucket, e.Index, e.Pattern, e.Err)
}

// Is matches ErrInvalidGroupPattern.
func (e *InvalidGroupPatternError) Is(target error) bool { return target == ErrInvalidGroupPattern }

func (e *InvalidGroupPatternError) Unwrap() error { return e.Err }

// UnclassifiableStatementError is advisory: the statement had no resolvable
// specifier and was left where it was.
type UnclassifiableStatementError struct {
	Index int    // Position in the input sequence
	Text  string // Statement text
}

func (e *UnclassifiableStatementError) Error() string {
	text := e.Text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + " ..."
	}
	return fmt.Sprintf("statement %d: no module specifier: %s", e.Index, text)
}

// Is matches ErrUnclassifiableStatement.
func (e *UnclassifiableStatementError) Is(target error) bool {
	return target == ErrUnclassifiableStatement
}
