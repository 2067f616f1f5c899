package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rhyrak/schedule-extractor/pkg/model"
)

// DefaultIndent places a line inside the seed file's entry array.
const DefaultIndent = "    "

const lineTemplate = "%s{ zoneCode: '%s', week: %d, batch: '%s', date: '%s', timeSlot: '%s', equipmentNumber: '%s', orNumber: '%s', deadline: '%s' },"

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// FormatEntry renders the eight schedule fields as one TypeScript object literal line.
// Values are inserted verbatim, so a quote inside a field ends up unescaped in the output.
func FormatEntry(zoneCode string, week int, batch, date, timeSlot, equipment, orNumber, deadline string) string {
	return fmt.Sprintf(lineTemplate, DefaultIndent, zoneCode, week, batch, date, timeSlot, equipment, orNumber, deadline)
}

// Format renders e with the default formatter.
func Format(e model.Entry) string {
	return Formatter{}.Format(e)
}

// Formatter renders entries. The zero value matches FormatEntry.
type Formatter struct {
	// Indent precedes every line. Nil means DefaultIndent; an empty string
	// produces unindented lines.
	Indent *string
	// Escape backslash-escapes quotes and backslashes inside string fields.
	Escape bool
}

// Format renders a single entry.
func (f Formatter) Format(e model.Entry) string {
	indent := DefaultIndent
	if f.Indent != nil {
		indent = *f.Indent
	}
	q := f.quote
	return fmt.Sprintf(lineTemplate, indent,
		q(e.ZoneCode), e.Week, q(e.Batch), q(e.Date), q(e.TimeSlot),
		q(e.EquipmentNumber), q(e.ORNumber), q(e.Deadline))
}

// FormatAll renders entries in order, one line each.
func (f Formatter) FormatAll(entries []*model.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		lines = append(lines, f.Format(*e))
	}
	return lines
}

// WriteAll writes every rendered entry followed by a newline.
func (f Formatter) WriteAll(w io.Writer, entries []*model.Entry) error {
	bw := bufio.NewWriter(w)
	for _, line := range f.FormatAll(entries) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (f Formatter) quote(s string) string {
	if !f.Escape {
		return s
	}
	return quoteEscaper.Replace(s)
}
