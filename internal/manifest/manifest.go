package manifest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const fileName = "downloads.jsonl"

// Record is one completed download.
type Record struct {
	RunID string    `json:"run_id"`
	URL   string    `json:"url"`
	Path  string    `json:"path"`
	Bytes int64     `json:"bytes"`
	At    time.Time `json:"at"`
}

// Writer appends download records to a JSONL file under the destination
// root. Each run gets its own id so records from separate runs can be told
// apart in the shared file.
type Writer struct {
	runID string
	mu    sync.Mutex
	file  *os.File
}

// New opens (or creates) the manifest beneath destRoot.
func New(destRoot string) (*Writer, error) {
	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination root: %w", err)
	}

	path := filepath.Join(destRoot, fileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}

	return &Writer{runID: uuid.NewString(), file: file}, nil
}

// RunID returns this run's identifier.
func (w *Writer) RunID() string { return w.runID }

// Record appends one download to the manifest.
func (w *Writer) Record(url, path string, size int64) error {
	rec := Record{
		RunID: w.runID,
		URL:   url,
		Path:  path,
		Bytes: size,
		At:    time.Now().UTC(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

// Load reads every record from a manifest beneath destRoot. Malformed lines
// are skipped.
func Load(destRoot string) ([]Record, error) {
	file, err := os.Open(filepath.Join(destRoot, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	records := make([]Record, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err == nil {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return records, nil
}
