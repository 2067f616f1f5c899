package csvio

import (
	"fmt"
	"os"
	"strings"

	"github.com/rhyrak/schedule-extractor/internal/formatter"
	"github.com/rhyrak/schedule-extractor/pkg/model"
)

// ExportEntries formats the entries and writes them to the file specified by
// the given path, one line each. An existing file is replaced.
func ExportEntries(entries []*model.Entry, f formatter.Formatter, path string) (string, error) {
	// Remove file if exists
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("remove %s: %w", path, err)
		}
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := f.WriteAll(out, entries); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ExportEntriesString formats the entries into a newline separated block.
func ExportEntriesString(entries []*model.Entry, f formatter.Formatter) string {
	lines := f.FormatAll(entries)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
