package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"atelierbrocs/models"
)

var frenchMonths = [...]string{
	"", "Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthName returns the French month label, or "Année" for 0 (the
// whole-year aggregate).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Année"
	}
	return frenchMonths[month]
}

// GenerateMonthlyReport builds the downloadable results workbook for a
// period: the key figures, the payout split, and the period's sales.
func GenerateMonthlyReport(agg PeriodAggregate, payout Payout, sales []models.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("%s %d", MonthName(agg.Month), agg.Year)
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "F", 16); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#8B5A3C"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Title row.
	if err := f.MergeCell(sheetName, "A1", "F1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Résultats %s %d", MonthName(agg.Month), agg.Year))
	f.SetCellStyle(sheetName, "A1", "F1", titleStyle)

	// Key figures.
	figures := []struct {
		label string
		value string
	}{
		{"Chiffre d'affaires", FormatEUR(agg.Revenue)},
		{"Marge nette", FormatEUR(agg.NetMarginTotal)},
		{"Dépenses", FormatEUR(agg.ExpenseTotal)},
		{"Bénéfice net réel", FormatEUR(agg.NetProfit)},
		{"Heures travaillées", FormatHours(agg.HoursWorked)},
		{"Salaire horaire", FormatEUR(payout.HourlyPay)},
		{"Bonus opératrice", FormatEUR(payout.OperatorBonus)},
		{"Salaire total opératrice", FormatEUR(payout.OperatorTotalPay)},
		{"Part entreprise", FormatEUR(payout.BusinessRetained)},
	}
	rowNum := 3
	for _, fig := range figures {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), fig.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), fig.value)
		rowNum++
	}

	// Sales table for the period.
	rowNum++
	headers := []string{"N°", "Meuble", "Prix de vente", "Marge nette", "Canal", "Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
		f.SetCellValue(sheetName, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, rowNum)
	last, _ := excelize.CoordinatesToCellName(len(headers), rowNum)
	f.SetCellStyle(sheetName, first, last, headerStyle)
	rowNum++

	for _, s := range sales {
		values := []any{
			s.ID, s.ItemName, FormatEUR(s.FinalPrice), FormatEUR(s.NetMargin),
			s.Channel, s.Date.Format("2006-01-02"),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			f.SetCellValue(sheetName, cell, v)
		}
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return buf.Bytes(), nil
}
