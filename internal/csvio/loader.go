package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/rhyrak/schedule-extractor/pkg/model"
)

// LoadFile picks the reader by file extension. Anything that is not YAML is read as CSV.
func LoadFile(path string, delim rune) ([]*model.Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAMLEntries(path)
	default:
		return LoadEntries(path, delim)
	}
}

// LoadEntries reads and parses given csv file for schedule entries.
func LoadEntries(path string, delim rune) ([]*model.Entry, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	entries, err := ReadEntries(in, delim)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

// ReadEntries parses CSV rows with a header line. Columns are matched by
// header name, unknown columns are ignored. Values are kept as written,
// surrounding whitespace included. An empty input yields no entries.
func ReadEntries(in io.Reader, delim rune) ([]*model.Entry, error) {
	r := csv.NewReader(in)
	r.Comma = delim

	entries := []*model.Entry{}
	if err := gocsv.UnmarshalCSV(r, &entries); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return entries, nil
		}
		return nil, err
	}
	return entries, nil
}

// LoadYAMLEntries reads a YAML list of entries.
func LoadYAMLEntries(path string) ([]*model.Entry, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	entries, err := ReadYAMLEntries(in)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

func ReadYAMLEntries(in io.Reader) ([]*model.Entry, error) {
	entries := []*model.Entry{}
	if err := yaml.NewDecoder(in).Decode(&entries); err != nil && err != io.EOF {
		return nil, err
	}
	return entries, nil
}
