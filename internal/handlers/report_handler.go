package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AlvaroDC2000/dealership-api/internal/services"
)

// ReportHandler exposes the owner dashboard reports.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// RegisterRoutes registers the reporting routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	ownerRoutes := router.Group("/owner")
	ownerRoutes.Get("/stock-unsold", h.HandleUnsoldStock)
	ownerRoutes.Get("/sales/by-employee", h.HandleSalesByEmployee)
	ownerRoutes.Get("/repairs/revenue-by-dealership", h.HandleRepairRevenue)
	ownerRoutes.Get("/summary", h.HandleSummary)
}

// HandleUnsoldStock returns the vehicles currently available as stock.
func (h *ReportHandler) HandleUnsoldStock(c *fiber.Ctx) error {
	rows, err := h.reportService.UnsoldStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// HandleSalesByEmployee returns aggregated sales per employee.
func (h *ReportHandler) HandleSalesByEmployee(c *fiber.Ctx) error {
	rows, err := h.reportService.SalesByEmployee()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// HandleRepairRevenue returns finished repair revenue per dealership.
func (h *ReportHandler) HandleRepairRevenue(c *fiber.Ctx) error {
	rows, err := h.reportService.RepairRevenueByDealership()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// HandleSummary returns the global owner dashboard summary.
func (h *ReportHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.reportService.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
