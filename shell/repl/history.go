// File: history.go
// Title: REPL History Persistence
// Description: Loads and saves the interactive command history as a plain
//              text file, one command per line, trimmed to the configured
//              limit.

package repl

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	ionerr "github.com/amw-zero/ion/core/error"
	"github.com/amw-zero/ion/utils/stringx"
)

// LoadHistory reads a history file into a slice of commands. A missing
// file is not an error, it simply yields no history.
func LoadHistory(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, ionerr.Wrap(err, "failed to open history file").
			WithCode(ionerr.CodeIO).
			WithDetail("path", path)
	}
	defer file.Close()

	var history []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if stringx.IsNotBlank(line) {
			history = append(history, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ionerr.Wrap(err, "failed to read history file").
			WithCode(ionerr.CodeIO).
			WithDetail("path", path)
	}
	return history, nil
}

// SaveHistory writes the command history to a file, keeping at most limit
// entries (the most recent ones). A limit of zero or less keeps everything.
func SaveHistory(path string, history []string, limit int) error {
	if path == "" {
		return nil
	}
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ionerr.Wrap(err, "failed to create history directory").
				WithCode(ionerr.CodeIO).
				WithDetail("path", dir)
		}
	}

	var sb strings.Builder
	for _, line := range history {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return ionerr.Wrap(err, "failed to write history file").
			WithCode(ionerr.CodeIO).
			WithDetail("path", path)
	}
	return nil
}
