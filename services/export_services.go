package services

import (
	"fmt"

	"sportsday/models"

	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet    = "Results"
	scoreboardSheet = "Scoreboard"
)

// ExportEventResults writes the results of an event to a workbook
func ExportEventResults(event models.Event, results []models.EventResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(resultsSheet, "A1", event.Name); err != nil {
		return nil, err
	}
	headers := []string{"อันดับ", "สี", "นักกีฬา", "คะแนน", "หมายเหตุ"}
	if err := writeHeader(f, resultsSheet, 3, headers); err != nil {
		return nil, err
	}

	for i, r := range results {
		row := i + 4
		colorName := ""
		if r.Color != nil {
			colorName = r.Color.Name
		}
		athleteName := ""
		if r.Athlete != nil {
			athleteName = r.Athlete.FirstName + " " + r.Athlete.LastName
		}
		values := []interface{}{r.Rank, colorName, athleteName, r.Points, r.Note}
		if err := writeRow(f, resultsSheet, row, values); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(resultsSheet, "B", "C", 28); err != nil {
		return nil, err
	}
	return f, nil
}

// ExportScoreboard writes the overall standings to a workbook
func ExportScoreboard(entries []ScoreboardEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", scoreboardSheet); err != nil {
		return nil, err
	}

	headers := []string{"อันดับ", "สี", "คะแนนรวม", "ทอง", "เงิน", "ทองแดง"}
	if err := writeHeader(f, scoreboardSheet, 1, headers); err != nil {
		return nil, err
	}
	for i, e := range entries {
		values := []interface{}{e.Rank, e.Name, e.TotalScore, e.Gold, e.Silver, e.Bronze}
		if err := writeRow(f, scoreboardSheet, i+2, values); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, row, values); err != nil {
		return err
	}

	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
