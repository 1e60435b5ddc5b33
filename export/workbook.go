package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
	"transcript-server-go/models"
)

// DefaultSheet is the worksheet name used when none is given.
const DefaultSheet = "成绩单"

const (
	firstCol = "A"
	lastCol  = "F"
)

// WriteWorkbook writes t as a single-sheet xlsx workbook to w.
func WriteWorkbook(t *models.Transcript, w io.Writer, sheet string) error {
	f, err := build(t, sheet)
	if err != nil {
		return err
	}
	defer closeFile(f)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile saves t as an xlsx workbook at path.
func WriteFile(t *models.Transcript, path, sheet string) error {
	f, err := build(t, sheet)
	if err != nil {
		return err
	}
	defer closeFile(f)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func closeFile(f *excelize.File) {
	if err := f.Close(); err != nil {
		slog.Warn("error closing workbook", "error", err)
	}
}

// sheetWriter appends rows to one worksheet, tracking the next free row.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (s *sheetWriter) cell(col string) string {
	return fmt.Sprintf("%s%d", col, s.row)
}

// line writes a single text value merged across the table width.
func (s *sheetWriter) line(value string, style int) error {
	if err := s.f.SetCellValue(s.sheet, s.cell(firstCol), value); err != nil {
		return err
	}
	if err := s.f.MergeCell(s.sheet, s.cell(firstCol), s.cell(lastCol)); err != nil {
		return err
	}
	if style != 0 {
		if err := s.f.SetCellStyle(s.sheet, s.cell(firstCol), s.cell(lastCol), style); err != nil {
			return err
		}
	}
	s.row++
	return nil
}

// cells writes values left to right starting at column A.
func (s *sheetWriter) cells(values []string, style int) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := s.f.SetSheetRow(s.sheet, s.cell(firstCol), &row); err != nil {
		return err
	}
	if style != 0 && len(values) > 0 {
		end, err := excelize.CoordinatesToCellName(len(values), s.row)
		if err != nil {
			return err
		}
		if err := s.f.SetCellStyle(s.sheet, s.cell(firstCol), end, style); err != nil {
			return err
		}
	}
	s.row++
	return nil
}

func (s *sheetWriter) skip() {
	s.row++
}

type styles struct {
	title, bold, header, full, final int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 16},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.bold, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E9E9E9"}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.full, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "008000"},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.final, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FF0000", Size: 14},
		}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return st, fmt.Errorf("failed to create style: %w", err)
		}
		*d.id = id
	}
	return st, nil
}

// build lays the transcript out in the same order as the page.
func build(t *models.Transcript, sheet string) (*excelize.File, error) {
	if t == nil || len(t.Courses) == 0 {
		return nil, ErrNoCourses
	}
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			closeFile(f)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("invalid sheet name %q: %w", sheet, err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, firstCol, lastCol, 14); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	w := &sheetWriter{f: f, sheet: sheet, row: 1}
	if err := fill(w, t, st); err != nil {
		return nil, fmt.Errorf("failed to fill sheet %s: %w", sheet, err)
	}

	ok = true
	return f, nil
}

func fill(w *sheetWriter, t *models.Transcript, st styles) error {
	if err := w.line(t.School, st.title); err != nil {
		return err
	}
	if err := w.line(t.Department, 0); err != nil {
		return err
	}
	if err := w.line(t.Title, st.bold); err != nil {
		return err
	}
	w.skip()

	for _, info := range t.Info {
		if err := w.line(info, 0); err != nil {
			return err
		}
	}
	w.skip()

	if len(t.Header) > 0 {
		if err := w.cells(t.Header, st.header); err != nil {
			return err
		}
	}
	for _, c := range t.Courses {
		total := w.cell(lastCol)
		if err := w.cells(c.Cells(), 0); err != nil {
			return err
		}
		// Only the total is highlighted, as on the page.
		if c.FullScore {
			if err := w.f.SetCellStyle(w.sheet, total, total, st.full); err != nil {
				return err
			}
		}
	}
	w.skip()

	if err := w.line(t.FinalScore, st.final); err != nil {
		return err
	}
	return w.line(t.Footer, 0)
}
