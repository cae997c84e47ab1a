package report

import (
	"os"

	"github.com/pkg/errors"

	"github.com/vietdv277/stratus/pkg/types"
)

// Formats lists the artifact kinds Export accepts.
var Formats = []string{"pdf", "csv", "text"}

// DefaultPath returns the output file name for a format when the caller
// does not pick one.
func DefaultPath(format string) string {
	switch format {
	case "pdf":
		return "capacity-plan.pdf"
	case "csv":
		return "capacity-plan.csv"
	default:
		return "capacity-plan.txt"
	}
}

// Export renders the plan into the named format at path. A failed export
// leaves no partial file behind; the error is an ExportError the caller can
// surface and retry by hand.
func Export(format, path string, p types.Plan) error {
	if format == "pdf" {
		return WritePDF(path, p)
	}

	write := WriteText
	if format == "csv" {
		write = WriteCSV
	} else if format != "text" {
		return &ExportError{Format: format, cause: errors.Errorf("unknown format %q", format)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Format: format, cause: errors.Wrap(err, "while creating file")}
	}

	if err := write(f, p); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return &ExportError{Format: format, cause: errors.Wrap(err, "while closing file")}
	}
	return nil
}
