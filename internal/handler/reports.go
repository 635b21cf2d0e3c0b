package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/apierror"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/infra"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Inventory godoc
// @Summary Wash-inventory report over a date window
// @Tags reports
// @Produce json
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {object} dto.InventoryReportResponse
// @Router /api/reports/inventory [get]
func (h *ReportsHandler) Inventory(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportsHandler) InventoryPDF(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}
	data, err := infra.GenerateInventoryReportPDF(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not render PDF"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename(report, "pdf")))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *ReportsHandler) InventoryXLSX(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}
	data, err := infra.GenerateInventoryReportXLSX(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not render spreadsheet"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename(report, "xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *ReportsHandler) buildReport(c *gin.Context) (*dto.InventoryReportResponse, bool) {
	var filter dto.ReportFilter
	if !bindQueryAndValidate(c, &filter) {
		return nil, false
	}
	report, err := h.svc.InventoryReport(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return nil, false
	}
	return report, true
}

func reportFilename(report *dto.InventoryReportResponse, ext string) string {
	return fmt.Sprintf("wash-inventory_%s_%s_%s.%s",
		report.StartDate, report.EndDate, time.Now().Format("20060102"), ext)
}
