package types

import (
	"fmt"
	"path/filepath"
	"time"
)

// Format selects which file types a run downloads.
type Format string

const (
	FormatMP3 Format = "mp3"
	FormatMP4 Format = "mp4"
	FormatAll Format = "all"
)

// ParseFormat validates a format selector from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMP3, FormatMP4, FormatAll:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format %q: must be mp3, mp4 or all", s)
}

// Extensions returns the extension allow-list for the format, lowercase and
// without the leading dot.
func (f Format) Extensions() []string {
	switch f {
	case FormatMP3:
		return []string{"mp3"}
	case FormatMP4:
		return []string{"mp4"}
	default:
		return []string{"mp3", "mp4", "pdf", "wav", "zip", "m4a", "ogg"}
	}
}

// Config holds one run's settings.
type Config struct {
	StartURL   string
	OutputDir  string
	FolderName string
	Format     Format
	Timeout    time.Duration
}

// DestRoot returns the directory all files for this run land under.
func (c Config) DestRoot() string {
	return filepath.Join(c.OutputDir, c.FolderName)
}
