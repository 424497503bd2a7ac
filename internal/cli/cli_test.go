package cli

import (
	"io"
	"testing"
)

func TestFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"folder", "downloads"},
		{"format", "all"},
		{"timeout", "20"},
		{"no-probe", "false"},
	}

	for _, tt := range tests {
		f := rootCmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("flag --%s not registered", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("flag --%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
		}
	}
}

func TestUnknownFlagFails(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--definitely-not-a-flag"})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestTooManyArgsFails(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"http://a.test/", "http://b.test/"})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for extra positional arguments")
	}
}
