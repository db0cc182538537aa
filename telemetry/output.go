// Package telemetry records periodic session snapshots and run summaries as CSV
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

const (
	snapshotFile = "snapshots.csv"
	summaryFile  = "summary.csv"
)

// Recorder writes snapshots.csv for one session and appends to summary.csv across sessions
// A nil Recorder is valid and records nothing
type Recorder struct {
	dir                   string
	snapshots             *os.File
	summaries             *os.File
	snapshotHeaderWritten bool
	summaryHeaderWritten  bool
}

// NewRecorder creates dir and opens the output files
// Returns nil if dir is empty (recording disabled)
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}

	r := &Recorder{dir: dir}
	f, err := os.Create(filepath.Join(dir, snapshotFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", snapshotFile, err)
	}
	r.snapshots = f

	f, err = os.OpenFile(filepath.Join(dir, summaryFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		r.snapshots.Close()
		return nil, fmt.Errorf("opening %s: %w", summaryFile, err)
	}
	r.summaries = f
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		r.summaryHeaderWritten = true
	}
	return r, nil
}

// WriteSnapshot appends one snapshot row
func (r *Recorder) WriteSnapshot(s Snapshot) error {
	if r == nil {
		return nil
	}
	if err := write(r.snapshots, []Snapshot{s}, &r.snapshotHeaderWritten); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// WriteSummary appends one run summary row
func (r *Recorder) WriteSummary(s Summary) error {
	if r == nil {
		return nil
	}
	if err := write(r.summaries, []Summary{s}, &r.summaryHeaderWritten); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// write emits the header only on the first write to f
func write[T any](f *os.File, records []T, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the output directory path
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close closes both output files
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{r.snapshots, r.summaries} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
