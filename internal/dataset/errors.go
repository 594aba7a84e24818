package dataset

import "github.com/rotisserie/eris"

// Sentinel errors for load failures. Callers match with errors.Is and turn
// them into user-facing messages; none of them should crash the process.
var (
	// ErrSourceNotFound means the configured input path does not exist.
	ErrSourceNotFound = eris.New("source not found")

	// ErrUnsupportedFormat means the file extension is not a supported
	// tabular format. Detected before any read is attempted.
	ErrUnsupportedFormat = eris.New("unsupported format")

	// ErrMalformedSource means the content could not be parsed as tabular
	// data (corrupt spreadsheet, inconsistent CSV, duplicate headers).
	ErrMalformedSource = eris.New("malformed source")

	// ErrMissingColumn means a required header is absent after load.
	ErrMissingColumn = eris.New("missing required column")
)
