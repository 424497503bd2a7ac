package deps

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Dependency is an external tool the platform-extractor path shells out to.
type Dependency struct {
	Name  string
	Hints map[string]string // GOOS -> install hint
}

var required = []Dependency{
	{
		Name: "yt-dlp",
		Hints: map[string]string{
			"darwin":  "brew install yt-dlp",
			"linux":   "pipx install yt-dlp (or your package manager)",
			"windows": "winget install yt-dlp",
		},
	},
	{
		Name: "ffmpeg",
		Hints: map[string]string{
			"darwin":  "brew install ffmpeg",
			"linux":   "sudo apt install ffmpeg",
			"windows": "winget install ffmpeg",
		},
	},
}

// Check verifies every required tool is on PATH. The error lists all missing
// tools at once, each with an install hint for the current platform.
func Check() error {
	return check(exec.LookPath)
}

func check(lookPath func(string) (string, error)) error {
	var missing []string
	for _, dep := range required {
		if _, err := lookPath(dep.Name); err != nil {
			hint, ok := dep.Hints[runtime.GOOS]
			if !ok {
				hint = "install " + dep.Name + " and make sure it is on PATH"
			}
			missing = append(missing, fmt.Sprintf("%s (%s)", dep.Name, hint))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing dependencies: %s", strings.Join(missing, "; "))
	}
	return nil
}
