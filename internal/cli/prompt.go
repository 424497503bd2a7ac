package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// prompt prints a label and reads one trimmed line from stdin. Returns an
// empty string on EOF or read error, which callers treat as "not provided".
func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
