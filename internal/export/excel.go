package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetKPIs      = "Indicateurs"
	sheetHeadcount = "Effectif"
)

// WriteXLSX builds a two-sheet workbook: the KPI catalogue and the
// extended headcount detail.
func WriteXLSX(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetKPIs)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headers := []string{"Identifiant", "Indicateur", "Valeur", "Unité", "Tendance", "Classification", "Analyse"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetKPIs, cell, h); err != nil {
			return err
		}
	}
	for row, k := range report.KPIs {
		values := []interface{}{k.ID, k.Name, k.RawValue, k.Unit, trendLabel(k), string(k.Category), k.Insight}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetKPIs, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.NewSheet(sheetHeadcount); err != nil {
		return err
	}
	hc := report.Headcount
	rows := [][]interface{}{
		{"Total", hc.Total},
		{"Actifs", hc.Active},
		{"Inactifs", hc.Inactive},
		{"Sortis", hc.Terminated},
		{"En télétravail", hc.Remote},
		{"Équivalent temps plein", hc.FullTimeEquivalent},
		{"Ancienneté moyenne (ans)", hc.AverageSeniority},
	}
	for _, dept := range hc.ByDepartment {
		rows = append(rows, []interface{}{dept.Department, dept.Value})
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheetHeadcount, cell, v); err != nil {
				return err
			}
		}
	}

	// drop the default sheet created by excelize
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
