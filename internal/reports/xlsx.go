package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	borderThin  = 1
	borderThick = 5
)

type sectionStyles struct {
	title       int
	header      int
	cell        int
	placeholder int
}

// Render produces the xlsx payload for a document.
func Render(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := doc.SheetTitle
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newSectionStyles(f)
	if err != nil {
		return nil, err
	}

	for _, section := range doc.Sections {
		if err := renderSection(f, sheet, section, styles); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newSectionStyles(f *excelize.File) (sectionStyles, error) {
	var styles sectionStyles
	var err error

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if styles.title, err = f.NewStyle(&excelize.Style{
		Border:    borders(borderThick),
		Alignment: center,
	}); err != nil {
		return styles, fmt.Errorf("failed to build style: %w", err)
	}
	if styles.header, err = f.NewStyle(&excelize.Style{
		Border: borders(borderThick),
	}); err != nil {
		return styles, fmt.Errorf("failed to build style: %w", err)
	}
	if styles.cell, err = f.NewStyle(&excelize.Style{
		Border: borders(borderThin),
	}); err != nil {
		return styles, fmt.Errorf("failed to build style: %w", err)
	}
	if styles.placeholder, err = f.NewStyle(&excelize.Style{
		Border:    borders(borderThin),
		Alignment: center,
	}); err != nil {
		return styles, fmt.Errorf("failed to build style: %w", err)
	}
	return styles, nil
}

func borders(style int) []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		out = append(out, excelize.Border{Type: side, Style: style, Color: "000000"})
	}
	return out
}

func renderSection(f *excelize.File, sheet string, section Section, styles sectionStyles) error {
	if err := writeMerged(f, sheet, section.Col, section.Row, section.Width, section.Title, styles.title); err != nil {
		return err
	}

	row := section.Row + 1

	if len(section.Rows) == 0 {
		return writeMerged(f, sheet, section.Col, row, section.Width, section.Empty, styles.placeholder)
	}

	if len(section.Headers) > 0 {
		for i, header := range section.Headers {
			if err := writeCell(f, sheet, section.Col+i, row, header, styles.header); err != nil {
				return err
			}
		}
		row++
	}

	for _, cells := range section.Rows {
		for i, value := range cells {
			if err := writeCell(f, sheet, section.Col+i, row, value, styles.cell); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func writeMerged(f *excelize.File, sheet string, col, row, width int, value string, style int) error {
	start, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(col+width-1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}

	if err := f.MergeCell(sheet, start, end); err != nil {
		return fmt.Errorf("failed to merge cells: %w", err)
	}
	if err := f.SetCellValue(sheet, start, value); err != nil {
		return fmt.Errorf("failed to write cell: %w", err)
	}
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("failed to style cells: %w", err)
	}
	return nil
}

func writeCell(f *excelize.File, sheet string, col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("failed to style cell: %w", err)
	}
	return nil
}
