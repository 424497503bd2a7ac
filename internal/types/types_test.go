package types

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"mp3", "mp4", "all"} {
		f, err := ParseFormat(valid)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", valid, err)
		}
		if string(f) != valid {
			t.Errorf("ParseFormat(%q) = %q", valid, f)
		}
	}

	for _, invalid := range []string{"", "flac", "MP3", "everything"} {
		if _, err := ParseFormat(invalid); err == nil {
			t.Errorf("ParseFormat(%q) should fail", invalid)
		}
	}
}

func TestFormatExtensions(t *testing.T) {
	if got := FormatMP3.Extensions(); !reflect.DeepEqual(got, []string{"mp3"}) {
		t.Errorf("mp3 extensions = %v", got)
	}
	if got := FormatMP4.Extensions(); !reflect.DeepEqual(got, []string{"mp4"}) {
		t.Errorf("mp4 extensions = %v", got)
	}

	all := FormatAll.Extensions()
	want := []string{"mp3", "mp4", "pdf", "wav", "zip", "m4a", "ogg"}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("all extensions = %v, want %v", all, want)
	}
}

func TestDestRoot(t *testing.T) {
	cfg := Config{OutputDir: "/data", FolderName: "music"}
	if got := cfg.DestRoot(); got != filepath.Join("/data", "music") {
		t.Errorf("DestRoot() = %q", got)
	}
}
