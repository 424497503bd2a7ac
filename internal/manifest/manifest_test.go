package manifest

import (
	"testing"
)

func TestWriterAndLoad(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.RunID() == "" {
		t.Error("empty run id")
	}

	if err := w.Record("http://example.test/a.mp3", "/tmp/a.mp3", 123); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := w.Record("http://example.test/b.pdf", "/tmp/b.pdf", 456); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	records, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(records))
	}
	if records[0].URL != "http://example.test/a.mp3" || records[0].Bytes != 123 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[0].RunID != w.RunID() || records[1].RunID != w.RunID() {
		t.Error("records carry wrong run id")
	}
}

func TestLoadMissingManifest(t *testing.T) {
	records, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestAppendAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	w1, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	w1.Record("http://example.test/one.mp3", "/tmp/one.mp3", 1)
	w1.Close()

	w2, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	w2.Record("http://example.test/two.mp3", "/tmp/two.mp3", 2)
	w2.Close()

	records, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(records))
	}
	if records[0].RunID == records[1].RunID {
		t.Error("separate runs share a run id")
	}
}
