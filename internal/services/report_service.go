package services

import (
	"github.com/AlvaroDC2000/dealership-api/internal/models"
	"github.com/AlvaroDC2000/dealership-api/internal/repositories"
)

// ReportService serves the owner dashboard aggregations. Every report maps
// one-to-one onto a repository query; no caching, the store is re-read on
// each request.
type ReportService struct {
	reportRepo repositories.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repositories.ReportRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
	}
}

// UnsoldStock returns the vehicles currently available as stock.
func (s *ReportService) UnsoldStock() ([]models.VehicleStockRow, error) {
	return s.reportRepo.UnsoldStock()
}

// SalesByEmployee returns aggregated sales per employee.
func (s *ReportService) SalesByEmployee() ([]models.SalesByEmployeeRow, error) {
	return s.reportRepo.SalesByEmployee()
}

// RepairRevenueByDealership returns finished repair revenue per dealership.
func (s *ReportService) RepairRevenueByDealership() ([]models.RepairRevenueRow, error) {
	return s.reportRepo.RepairRevenueByDealership()
}

// Summary returns the global dashboard summary.
func (s *ReportService) Summary() (*models.OwnerSummaryRow, error) {
	return s.reportRepo.Summary()
}
