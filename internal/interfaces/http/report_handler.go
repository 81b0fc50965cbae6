package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
// Con ?format=csv la respuesta se entrega como archivo CSV descargable.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Desde (RFC3339, inclusivo)"
// @Param        end_date    query  string  false  "Hasta (RFC3339, inclusivo)"
// @Param        format      query  string  false  "json (default) | csv"
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date/end_date deben ser RFC3339"})
	}
	out, err := h.uc.SalesReport(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	if c.Query("format") == "csv" {
		data, err := reports.SalesReportCSV(out)
		if err != nil {
			return respondError(c, err)
		}
		return sendCSV(c, "ventas.csv", data)
	}
	return c.JSON(out)
}

// Purchases godoc
// @Summary      Reporte de compras
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Desde (RFC3339, inclusivo)"
// @Param        end_date    query  string  false  "Hasta (RFC3339, inclusivo)"
// @Param        format      query  string  false  "json (default) | csv"
// @Success      200  {object}  dto.PurchasesReportResponse
// @Router       /api/reports/purchases [get]
func (h *ReportHandler) Purchases(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date/end_date deben ser RFC3339"})
	}
	out, err := h.uc.PurchasesReport(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	if c.Query("format") == "csv" {
		data, err := reports.PurchasesReportCSV(out)
		if err != nil {
			return respondError(c, err)
		}
		return sendCSV(c, "compras.csv", data)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Reporte de inventario valorizado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "json (default) | csv"
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventoryReport()
	if err != nil {
		return respondError(c, err)
	}
	if c.Query("format") == "csv" {
		data, err := reports.InventoryReportCSV(out)
		if err != nil {
			return respondError(c, err)
		}
		return sendCSV(c, "inventario.csv", data)
	}
	return c.JSON(out)
}

func sendCSV(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
