package docsgen

import "fmt"

// ResolutionError indicates a subsystem's route table could not be obtained.
// Recovered per subsystem: logged, skipped, the run continues.
type ResolutionError struct {
	Subsystem string
	Cause     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve subsystem %q: %v", e.Subsystem, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// AssemblyError indicates a document could not be built from its route
// tables. Recovered per phase: that document's writes are skipped.
type AssemblyError struct {
	Cause error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assemble document: %v", e.Cause)
}

func (e *AssemblyError) Unwrap() error { return e.Cause }
