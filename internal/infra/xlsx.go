package infra

// xlsx.go — Inventory report export as a spreadsheet using excelize.

import (
	"fmt"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Wash Inventory"

// GenerateInventoryReportXLSX renders a report to an in-memory XLSX workbook.
func GenerateInventoryReportXLSX(report *dto.InventoryReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	header := []interface{}{
		"Crop", "Field Location", "Starting", "Added", "Removed", "Current", "Level", "Est. Value",
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: write header: %w", err)
	}

	for i, sum := range report.Summaries {
		row := []interface{}{
			sum.Name, sum.FieldLocation, sum.Starting, sum.Added, sum.Removed, sum.Current, sum.Level,
		}
		if sum.EstimatedValue != nil {
			v, _ := sum.EstimatedValue.Float64()
			row = append(row, v)
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
