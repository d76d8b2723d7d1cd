package repositories

import "github.com/AlvaroDC2000/dealership-api/internal/models"

// ReportRepository provides the read-only aggregation queries behind the
// owner dashboard.
type ReportRepository interface {
	UnsoldStock() ([]models.VehicleStockRow, error)
	SalesByEmployee() ([]models.SalesByEmployeeRow, error)
	RepairRevenueByDealership() ([]models.RepairRevenueRow, error)
	Summary() (*models.OwnerSummaryRow, error)
}
