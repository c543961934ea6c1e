package store

import "fmt"

// NotFoundError reports an operation that needs an existing document file.
type NotFoundError struct {
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no data to backup: %s", e.Path)
}

func errNotFound(path string) error {
	return NotFoundError{Path: path}
}

// ParseError reports a document file that exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// InvalidFormatError reports an unsupported export format token.
type InvalidFormatError struct {
	Format string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}
