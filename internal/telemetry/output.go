package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Recorder appends FrameRecords to a CSV file, buffering rows between
// flushes.
type Recorder struct {
	file          *os.File
	pending       []*FrameRecord
	flushEvery    int
	headerWritten bool
	rows          int
}

// NewRecorder creates path (and its directory). It returns nil without
// error when path is empty, which disables recording; all methods accept a
// nil Recorder.
func NewRecorder(path string, flushEvery int) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	if flushEvery < 1 {
		flushEvery = 1
	}
	return &Recorder{file: f, flushEvery: flushEvery}, nil
}

// Write queues a record, flushing once enough have accumulated.
func (r *Recorder) Write(rec FrameRecord) error {
	if r == nil {
		return nil
	}
	r.pending = append(r.pending, &rec)
	if len(r.pending) >= r.flushEvery {
		return r.Flush()
	}
	return nil
}

// Flush writes queued records. The header goes out with the first batch.
func (r *Recorder) Flush() error {
	if r == nil || len(r.pending) == 0 {
		return nil
	}
	var err error
	if !r.headerWritten {
		err = gocsv.Marshal(r.pending, r.file)
		r.headerWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(r.pending, r.file)
	}
	if err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	r.rows += len(r.pending)
	r.pending = r.pending[:0]
	return nil
}

// Rows reports how many records have been written to disk.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}

// Close flushes and closes the file. Closing twice is a no-op.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	ferr := r.Flush()
	cerr := r.file.Close()
	r.file = nil
	if ferr != nil {
		return ferr
	}
	return cerr
}
