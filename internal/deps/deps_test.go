package deps

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckAllPresent(t *testing.T) {
	found := func(name string) (string, error) { return "/usr/bin/" + name, nil }
	if err := check(found); err != nil {
		t.Errorf("check() = %v, want nil", err)
	}
}

func TestCheckListsEveryMissingTool(t *testing.T) {
	missing := func(string) (string, error) { return "", errors.New("not found") }
	err := check(missing)
	if err == nil {
		t.Fatal("expected error when tools are missing")
	}
	for _, tool := range []string{"yt-dlp", "ffmpeg"} {
		if !strings.Contains(err.Error(), tool) {
			t.Errorf("error %q does not mention %s", err, tool)
		}
	}
}

func TestCheckPartiallyMissing(t *testing.T) {
	onlyFfmpeg := func(name string) (string, error) {
		if name == "ffmpeg" {
			return "/usr/bin/ffmpeg", nil
		}
		return "", errors.New("not found")
	}
	err := check(onlyFfmpeg)
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "ffmpeg") {
		t.Errorf("error %q should not mention the tool that is present", err)
	}
}
