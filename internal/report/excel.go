package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hirekit/hirekit/internal/scoring"
)

const (
	summarySheet   = "Summary"
	rankedSheet    = "Ranked Candidates"
	breakdownSheet = "Breakdown"
)

// Tier fill colors for the ranked sheet.
var tierColors = map[scoring.Tier]string{
	scoring.TierExcellent: "C6EFCE",
	scoring.TierStrong:    "D9EAD3",
	scoring.TierGood:      "FFEB9C",
	scoring.TierModerate:  "FFC7CE",
	scoring.TierWeak:      "FF9999",
}

// ExportToExcel writes a workbook with a summary sheet, a ranked candidate
// sheet and a per-factor breakdown sheet. Results are ranked best-first
// inside the workbook without mutating the input collection. A missing .xlsx
// extension is appended.
func ExportToExcel(results *scoring.Results, jobTitle, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	ranked := &scoring.Results{Items: append([]*scoring.Result(nil), results.Items...)}
	ranked.SortByComposite()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(rankedSheet); err != nil {
		return fmt.Errorf("create ranked sheet: %w", err)
	}
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return fmt.Errorf("create breakdown sheet: %w", err)
	}

	if err := writeSummarySheet(f, ranked, jobTitle); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}
	if err := writeRankedSheet(f, ranked); err != nil {
		return fmt.Errorf("write ranked sheet: %w", err)
	}
	if err := writeBreakdownSheet(f, ranked); err != nil {
		return fmt.Errorf("write breakdown sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook %q: %w", outputPath, err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func writeSummarySheet(f *excelize.File, results *scoring.Results, jobTitle string) error {
	f.SetColWidth(summarySheet, "A", "A", 28)
	f.SetColWidth(summarySheet, "B", "B", 40)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	row := 1
	setLabeled := func(label string, value any) {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), label)
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), value)
		row++
	}

	f.SetCellValue(summarySheet, "A1", "Candidate Evaluation Report")
	f.SetCellStyle(summarySheet, "A1", "B1", header)
	f.MergeCell(summarySheet, "A1", "B1")
	row = 3

	setLabeled("Job:", jobTitle)
	setLabeled("Generated:", time.Now().Format("2006-01-02 15:04:05"))
	setLabeled("Candidates evaluated:", results.Len())

	stats := Summarize(results)
	if stats.Count > 0 {
		row++
		setLabeled("Average score:", fmt.Sprintf("%.1f", stats.Average))
		setLabeled("Median score:", fmt.Sprintf("%.1f", stats.Median))
		setLabeled("Highest score:", stats.Highest)
		setLabeled("Lowest score:", stats.Lowest)
		setLabeled("Degraded evaluations:", stats.DegradedCount)

		row++
		for _, tier := range []scoring.Tier{scoring.TierExcellent, scoring.TierStrong, scoring.TierGood, scoring.TierModerate, scoring.TierWeak} {
			setLabeled(string(tier)+":", stats.TierCounts[tier])
		}
	}

	return nil
}

func writeRankedSheet(f *excelize.File, results *scoring.Results) error {
	f.SetColWidth(rankedSheet, "A", "A", 8)
	f.SetColWidth(rankedSheet, "B", "B", 25)
	f.SetColWidth(rankedSheet, "C", "F", 14)
	f.SetColWidth(rankedSheet, "G", "G", 36)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	headers := []string{"Rank", "Candidate", "Composite", "Job Fit", "Pattern Fit", "Tier", "Comparison"}
	for col, title := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(rankedSheet, cell, title)
		f.SetCellStyle(rankedSheet, cell, cell, header)
	}

	tierStyles := make(map[scoring.Tier]int, len(tierColors))
	for tier, color := range tierColors {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		tierStyles[tier] = style
	}

	for i, result := range results.Items {
		row := i + 2
		f.SetCellValue(rankedSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(rankedSheet, fmt.Sprintf("B%d", row), result.CandidateName)
		f.SetCellValue(rankedSheet, fmt.Sprintf("C%d", row), result.CompositeScore)
		f.SetCellValue(rankedSheet, fmt.Sprintf("D%d", row), fmt.Sprintf("%.1f", result.JobFitScore))
		f.SetCellValue(rankedSheet, fmt.Sprintf("E%d", row), fmt.Sprintf("%.1f", result.PatternFitScore))
		f.SetCellValue(rankedSheet, fmt.Sprintf("F%d", row), string(result.Tier))
		f.SetCellValue(rankedSheet, fmt.Sprintf("G%d", row), result.Comparison)

		if style, ok := tierStyles[result.Tier]; ok {
			f.SetCellStyle(rankedSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), style)
		}
	}

	if results.Len() > 0 {
		f.AutoFilter(rankedSheet, fmt.Sprintf("A1:G%d", results.Len()+1), nil)
	}

	return f.SetPanes(rankedSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeBreakdownSheet(f *excelize.File, results *scoring.Results) error {
	f.SetColWidth(breakdownSheet, "A", "A", 25)
	f.SetColWidth(breakdownSheet, "B", "B", 28)
	f.SetColWidth(breakdownSheet, "C", "D", 12)
	f.SetColWidth(breakdownSheet, "E", "E", 60)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	headers := []string{"Candidate", "Factor", "Value", "Weight", "Notes"}
	for col, title := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(breakdownSheet, cell, title)
		f.SetCellStyle(breakdownSheet, cell, cell, header)
	}

	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	row := 2
	for _, result := range results.Items {
		factors := append(append([]scoring.Factor(nil), result.JobFitFactors...), result.PatternFitFactors...)
		for i, factor := range factors {
			f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), result.CandidateName)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), factor.Name)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("C%d", row), factor.Value)
			f.SetCellValue(breakdownSheet, fmt.Sprintf("D%d", row), factor.Weight)

			if i == 0 {
				notes := strings.Join(append(append([]string(nil), result.Strengths...), result.Weaknesses...), "\n")
				f.SetCellValue(breakdownSheet, fmt.Sprintf("E%d", row), notes)
				f.SetCellStyle(breakdownSheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), wrapStyle)
			}
			row++
		}
	}

	return f.SetPanes(breakdownSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
