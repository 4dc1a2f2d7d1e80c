package fetcher

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports configured columns absent from a table header.
type MissingColumnsError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("fetcher: %s: missing columns %s", e.Source, strings.Join(e.Columns, ", "))
}

// SourceError reports a table that could not be opened or decoded.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("fetcher: %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
