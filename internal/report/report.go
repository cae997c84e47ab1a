// Package report renders a plan and its derived figures into shareable
// artifacts: a fixed-layout PDF, a flat CSV, and a plain-text summary.
// Renderers never mutate the plan; they write what they are given.
package report

import "fmt"

// Title heads every artifact.
const Title = "CI Runner Capacity Plan"

// ExportError reports a renderer failure. The caller surfaces it and stays
// interactive; a failed export is simply re-triggered by hand.
type ExportError struct {
	Format string
	cause  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %s", e.Format, e.cause.Error())
}

func (e *ExportError) Unwrap() error { return e.cause }
