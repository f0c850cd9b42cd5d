//nolint:tagliatelle
package stansum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/farcloser/primordium/fault"
)

var (
	errMissingMessage = errors.New("diagnostic has no message")
	errMissingLine    = errors.New("diagnostic has no line")
	errFilesShape     = errors.New("files must be an object")
	errNullValue      = errors.New("unexpected null")
)

// nullLine is how a diagnostic carrying "line": null is printed.
const nullLine = "None"

// Report is the part of a PHPStan JSON report the summarizer reads.
// Anything else in the document (top-level "errors", per-file "errors" counters, identifiers) is ignored.
// Absent keys decode to their zero value, explicit nulls are rejected.
type Report struct {
	Totals Totals `json:"totals"`
	Files  Files  `json:"files"`
}

// Totals is PHPStan's own summary block.
type Totals struct {
	// FileErrors is reported as-is, it is never reconciled with the classified messages.
	FileErrors int `json:"file_errors"`
}

// Files lists the per-file reports in document order.
type Files []FileEntry

// FileEntry pairs an analysed file path with its report.
type FileEntry struct {
	Path   string
	Report FileReport
}

// FileReport holds the diagnostics of a single file.
type FileReport struct {
	Messages []Diagnostic `json:"messages"`
}

// Diagnostic is a single PHPStan finding.
type Diagnostic struct {
	Message string
	Line    int
	// HasLine is false when the report carried no "line" key for this diagnostic.
	HasLine bool
	// NullLine is set when the "line" key is present with a null value.
	NullLine bool
}

// LineText is the line as printed in the detail listing.
func (d Diagnostic) LineText() string {
	if d.NullLine {
		return nullLine
	}

	return strconv.Itoa(d.Line)
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func (r *Report) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return fmt.Errorf("%w: report", errNullValue)
	}

	type plain Report

	return json.Unmarshal(data, (*plain)(r))
}

func (t *Totals) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return fmt.Errorf("%w: totals", errNullValue)
	}

	type plain Totals

	return json.Unmarshal(data, (*plain)(t))
}

func (fr *FileReport) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return fmt.Errorf("%w: file report", errNullValue)
	}

	var raw struct {
		Messages json.RawMessage `json:"messages"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*fr = FileReport{}

	if raw.Messages == nil {
		return nil
	}

	if isNull(raw.Messages) {
		return fmt.Errorf("%w: messages", errNullValue)
	}

	return json.Unmarshal(raw.Messages, &fr.Messages)
}

// UnmarshalJSON decodes the files object while keeping the order files appear in.
// A path seen twice keeps its first position and its last value.
func (f *Files) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errFilesShape
	}

	entries := Files{}
	positions := map[string]int{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		path, _ := keyTok.(string)

		var report FileReport
		if err := dec.Decode(&report); err != nil {
			return fmt.Errorf("%q: %w", path, err)
		}

		if idx, seen := positions[path]; seen {
			entries[idx].Report = report

			continue
		}

		positions[path] = len(entries)
		entries = append(entries, FileEntry{Path: path, Report: report})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = entries

	return nil
}

// UnmarshalJSON requires a message; the line is optional until the diagnostic is recorded.
func (d *Diagnostic) UnmarshalJSON(data []byte) error {
	var raw struct {
		Message *string         `json:"message"`
		Line    json.RawMessage `json:"line"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Message == nil {
		return errMissingMessage
	}

	*d = Diagnostic{Message: *raw.Message}

	if raw.Line == nil {
		return nil
	}

	d.HasLine = true

	if isNull(raw.Line) {
		d.NullLine = true

		return nil
	}

	return json.Unmarshal(raw.Line, &d.Line)
}

// Load reads and decodes the report at path.
func Load(path string) (*Report, error) {
	slog.Debug("stansum.Load", "path", path)

	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a whole report from r.
func Decode(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	var report Report
	if err = json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	return &report, nil
}
