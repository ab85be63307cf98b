package reports

import "time"

// Placeholders used for absent optional values in rendered reports.
const (
	NotSpecified     = "Не указано"
	PositionUnknown  = "Не указана"
	PatronymicAbsent = "-"
)

// Section is one block of a report sheet: a title cell spanning Width
// columns, then either key/value rows (Headers empty), a headed table,
// or a merged placeholder row when there is nothing to list.
type Section struct {
	Title   string
	Col     int // 1-based anchor column of the title cell
	Row     int // 1-based anchor row of the title cell
	Width   int // columns the title spans
	Headers []string
	Rows    [][]string
	Empty   string // placeholder rendered when Rows is empty
}

// Document is the logical form of a report: a single sheet of positioned
// sections plus the download filename. How cells end up in a workbook is
// the renderer's concern.
type Document struct {
	SheetTitle string
	Filename   string
	Sections   []Section
}

// FormatDate renders an optional date for report cells.
func FormatDate(t *time.Time) string {
	if t == nil {
		return NotSpecified
	}
	return t.Format("02.01.2006")
}

// Text renders an optional string for report cells.
func Text(s *string) string {
	if s == nil || *s == "" {
		return NotSpecified
	}
	return *s
}
