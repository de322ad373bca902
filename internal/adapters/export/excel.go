// Package export writes analysis reports to spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/okian/careerlens/internal/domain/model"
)

// Sheet names.
const (
	SheetSummary         = "Summary"
	SheetTimeline        = "Timeline"
	SheetFindings        = "Findings"
	SheetRecommendations = "Recommendations"
)

const headerColor = "4472C4"

// SaveReport writes report to path, adding the .xlsx extension when missing.
func SaveReport(path string, report model.Report) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f, err := build(report)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: save %s: %w", ErrExport, path, err)
	}
	return path, nil
}

// WriteReport streams the workbook for report to w.
func WriteReport(w io.Writer, report model.Report) error {
	f, err := build(report)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: write: %w", ErrExport, err)
	}
	return nil
}

func build(report model.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	for _, name := range []string{SheetTimeline, SheetFindings, SheetRecommendations} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: sheet %s: %w", ErrExport, name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: style: %w", ErrExport, err)
	}

	w := sheetWriter{f: f, header: header}
	w.summary(report)
	w.timeline(report.Timeline)
	w.findings(report)
	w.recommendations(report.Recommendations)
	if w.err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", ErrExport, w.err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// sheetWriter keeps the first error so sheet builders stay linear.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) row(sheet string, r int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) headerRow(sheet string, r int, titles ...any) {
	w.row(sheet, r, titles...)
	if w.err != nil {
		return
	}
	w.err = w.f.SetRowStyle(sheet, r, r, w.header)
}

func (w *sheetWriter) widths(sheet string, widths ...float64) {
	for i, width := range widths {
		if w.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetColWidth(sheet, col, col, width)
	}
}

func (w *sheetWriter) summary(r model.Report) {
	s := r.Stats
	w.widths(SheetSummary, 28, 40)
	w.headerRow(SheetSummary, 1, "Metric", "Value")
	rows := [][]any{
		{"Report ID", r.ID},
		{"Domain", string(r.Domain)},
		{"Analyzed At", r.AnalyzedAt.Format(time.RFC3339)},
		{"Score", r.Score},
		{"Total", s.Total},
		{"Completed", s.Completed},
		{"Ongoing", s.Ongoing},
		{"Not Started", s.NotStarted},
		{"Incomplete", s.Incomplete},
		{"Completion Rate (%)", s.CompletionRate},
		{"Completeness (%)", s.Completeness},
		{"Average Duration (months)", s.AverageDurationMonths},
		{"Total Duration (months)", s.TotalDurationMonths},
		{"Years", s.ExperienceYears},
		{"Distinct Institutions/Companies", s.DistinctPrimaryLabels},
	}
	n := 2
	for _, kv := range rows {
		w.row(SheetSummary, n, kv...)
		n++
	}

	n++
	w.headerRow(SheetSummary, n, "Distribution", "Count")
	for _, b := range s.Distribution {
		n++
		w.row(SheetSummary, n, b.Label, b.Count)
	}
	if len(s.Categories) > 0 {
		n += 2
		w.headerRow(SheetSummary, n, "Category", "Count")
		for _, b := range s.Categories {
			n++
			w.row(SheetSummary, n, b.Label, b.Count)
		}
	}
}

func (w *sheetWriter) timeline(entries []model.TimelineEntry) {
	w.widths(SheetTimeline, 8, 28, 28, 20, 12, 12, 10, 10, 8)
	w.headerRow(SheetTimeline, 1, "Record", "Institution/Company", "Degree/Position", "Subject/Location",
		"Start", "End", "Months", "Ongoing", "Level")
	for i, e := range entries {
		end := e.End.Format("2006-01")
		if e.Ongoing {
			end = "present"
		}
		w.row(SheetTimeline, i+2,
			e.Index+1, e.Record.PrimaryLabel, e.Record.LevelLabel, e.Record.SecondaryLabel,
			e.Start.Format("2006-01"), end, e.DurationMonths, e.Ongoing, e.Level)
	}
}

func (w *sheetWriter) findings(r model.Report) {
	w.widths(SheetFindings, 14, 14, 10, 60)
	w.headerRow(SheetFindings, 1, "Kind", "Records", "Months", "Message")
	n := 2
	for _, group := range [][]model.Finding{r.Gaps, r.Overlaps, r.Duplicates, r.Regressions} {
		for _, f := range group {
			records := make([]string, len(f.Indices))
			for i, idx := range f.Indices {
				records[i] = fmt.Sprint(idx + 1)
			}
			w.row(SheetFindings, n, string(f.Kind), strings.Join(records, ", "), f.Months, f.Message)
			n++
		}
	}
}

func (w *sheetWriter) recommendations(recs []model.Recommendation) {
	w.widths(SheetRecommendations, 12, 70)
	w.headerRow(SheetRecommendations, 1, "Severity", "Message")
	for i, rec := range recs {
		w.row(SheetRecommendations, i+2, string(rec.Severity), rec.Message)
	}
}
