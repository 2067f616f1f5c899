package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/schedule-extractor/internal/formatter"
	"github.com/rhyrak/schedule-extractor/pkg/model"
)

const sheet = `zone_code;week;batch;date;time_slot;equipment;or_number;deadline
MTR-01;45;A;2024-11-02;SLOT_2300;HOK-E25;5000355448;16-Nov
MTR-02;46;B;2024-11-09;SLOT_0700;HOK-E26;0000355449;23-Nov
`

func TestReadEntries(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(sheet), ';')
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, model.ExampleEntry(), *entries[0])
	assert.Equal(t, 46, entries[1].Week)
	// leading zeros survive because order numbers stay strings
	assert.Equal(t, "0000355449", entries[1].ORNumber)
}

func TestReadEntriesIgnoresUnknownColumns(t *testing.T) {
	in := "zone_code,week,note\nMTR-03,47,checked\n"
	entries, err := ReadEntries(strings.NewReader(in), ',')
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "MTR-03", entries[0].ZoneCode)
	assert.Equal(t, "", entries[0].Batch)
}

func TestReadEntriesKeepsWhitespace(t *testing.T) {
	in := "zone_code,week,batch\nMTR-01,45,  A\n"
	entries, err := ReadEntries(strings.NewReader(in), ',')
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "  A", entries[0].Batch)
	assert.Contains(t, formatter.Format(*entries[0]), "batch: '  A',")
}

func TestReadEntriesEmpty(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Empty(t, entries)

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	entries, err = LoadFile(path, ',')
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadEntriesBadWeek(t *testing.T) {
	in := "zone_code,week\nMTR-03,forty\n"
	_, err := ReadEntries(strings.NewReader(in), ',')
	assert.Error(t, err)
}

func TestReadYAMLEntries(t *testing.T) {
	in := `
- zoneCode: MTR-01
  week: 45
  batch: A
  date: "2024-11-02"
  timeSlot: SLOT_2300
  equipmentNumber: HOK-E25
  orNumber: "5000355448"
  deadline: 16-Nov
`
	entries, err := ReadYAMLEntries(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ExampleEntry(), *entries[0])
}

func TestReadYAMLEntriesEmpty(t *testing.T) {
	entries, err := ReadYAMLEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "week45.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sheet), 0o644))
	yamlPath := filepath.Join(dir, "week45.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- zoneCode: MTR-09\n  week: 1\n"), 0o644))

	fromCSV, err := LoadFile(csvPath, ';')
	require.NoError(t, err)
	assert.Len(t, fromCSV, 2)

	fromYAML, err := LoadFile(yamlPath, ';')
	require.NoError(t, err)
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "MTR-09", fromYAML[0].ZoneCode)
}

func TestLoadEntriesMissingFile(t *testing.T) {
	_, err := LoadEntries(filepath.Join(t.TempDir(), "missing.csv"), ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestExportEntriesReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed-lines.ts")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the output\n"), 0o644))

	e := model.ExampleEntry()
	got, err := ExportEntries([]*model.Entry{&e}, formatter.Formatter{}, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, formatter.Format(e)+"\n", string(content))
}

func TestExportEntriesString(t *testing.T) {
	assert.Equal(t, "", ExportEntriesString(nil, formatter.Formatter{}))

	entries, err := ReadEntries(strings.NewReader(sheet), ';')
	require.NoError(t, err)
	out := ExportEntriesString(entries, formatter.Formatter{})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, formatter.Format(model.ExampleEntry()), lines[0])
}
