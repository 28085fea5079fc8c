package openapi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WriteError names a single artifact that could not be persisted.
type WriteError struct {
	Artifact string
	Cause    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Artifact, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

// Write persists both encodings of doc as <dir>/<stem>.json and
// <dir>/<stem>.yaml, creating missing directories. A failed artifact does
// not abort its sibling; every failure comes back joined, each wrapped in a
// WriteError naming the artifact.
func Write(doc *Document, dir, stem string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &WriteError{Artifact: dir, Cause: err}
	}

	var errs []error
	if b, err := EncodeJSON(doc); err != nil {
		errs = append(errs, &WriteError{Artifact: stem + ".json", Cause: err})
	} else if err := os.WriteFile(filepath.Join(dir, stem+".json"), b, 0o600); err != nil {
		errs = append(errs, &WriteError{Artifact: stem + ".json", Cause: err})
	}
	if b, err := EncodeYAML(doc); err != nil {
		errs = append(errs, &WriteError{Artifact: stem + ".yaml", Cause: err})
	} else if err := os.WriteFile(filepath.Join(dir, stem+".yaml"), b, 0o600); err != nil {
		errs = append(errs, &WriteError{Artifact: stem + ".yaml", Cause: err})
	}
	return errors.Join(errs...)
}
