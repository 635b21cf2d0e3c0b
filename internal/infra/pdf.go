package infra

// pdf.go — Inventory report rendering using go-pdf/fpdf.
// One table row per product summary: starting / added / removed / current
// wash inventory plus the estimated value when a retail price is set.

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateInventoryReportPDF renders a report to an in-memory PDF.
func GenerateInventoryReportPDF(report *dto.InventoryReportResponse) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20 // total margins = 20mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Wash Inventory Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%s to %s", report.StartDate, report.EndDate), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, "Generated "+report.GeneratedAt, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ────────────────────────────────────────────────────────
	colName := contentW * 0.24
	colLoc := contentW * 0.18
	colNum := contentW * 0.09 // starting, added, removed, current
	colLevel := contentW * 0.10
	colValue := contentW * 0.12

	// ── Table header ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colName, 6, "Crop", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colLoc, 6, "Field Location", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colNum, 6, "Starting", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colNum, 6, "Added", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colNum, 6, "Removed", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colNum, 6, "Current", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colLevel, 6, "Level", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colValue, 6, "Est. Value", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, sum := range report.Summaries {
		name := sum.Name
		if len(name) > 34 {
			name = name[:31] + "..."
		}
		value := ""
		if sum.EstimatedValue != nil {
			value = "$" + sum.EstimatedValue.StringFixed(2)
		}
		pdf.CellFormat(colName, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(colLoc, 5, sum.FieldLocation, "", 0, "L", false, 0, "")
		pdf.CellFormat(colNum, 5, strconv.Itoa(sum.Starting), "", 0, "R", false, 0, "")
		pdf.CellFormat(colNum, 5, strconv.Itoa(sum.Added), "", 0, "R", false, 0, "")
		pdf.CellFormat(colNum, 5, strconv.Itoa(sum.Removed), "", 0, "R", false, 0, "")
		pdf.CellFormat(colNum, 5, strconv.Itoa(sum.Current), "", 0, "R", false, 0, "")
		pdf.CellFormat(colLevel, 5, sum.Level, "", 0, "C", false, 0, "")
		pdf.CellFormat(colValue, 5, value, "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("%d products", len(report.Summaries)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
