package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
)

// GORMReportRepository is a GORM implementation of ReportRepository. Each
// report is a single parameterless aggregation query scanned straight into
// its row type.
type GORMReportRepository struct {
	db *gorm.DB
}

// NewGORMReportRepository creates a new instance of GORMReportRepository.
func NewGORMReportRepository(db *gorm.DB) *GORMReportRepository {
	return &GORMReportRepository{
		db: db,
	}
}

// UnsoldStock returns the vehicles not yet sold, newest first.
func (r *GORMReportRepository) UnsoldStock() ([]models.VehicleStockRow, error) {
	rows := make([]models.VehicleStockRow, 0)
	err := r.db.Raw(
		"SELECT id, plate, brand, model, year, mileage, status "+
			"FROM vehicles WHERE status <> ? ORDER BY id DESC",
		models.VehicleStatusSold,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load unsold stock: %w", err)
	}
	return rows, nil
}

// SalesByEmployee returns sale counts and totals per selling employee,
// largest total first.
func (r *GORMReportRepository) SalesByEmployee() ([]models.SalesByEmployeeRow, error) {
	rows := make([]models.SalesByEmployeeRow, 0)
	err := r.db.Raw(
		"SELECT s.seller_user_id, u.full_name AS employee_name, " +
			"COUNT(*) AS sales_count, SUM(s.price) AS sales_total " +
			"FROM sales s " +
			"JOIN users u ON u.id = s.seller_user_id " +
			"GROUP BY s.seller_user_id, u.full_name " +
			"ORDER BY sales_total DESC",
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sales by employee: %w", err)
	}
	return rows, nil
}

// RepairRevenueByDealership returns revenue of finished, budgeted repairs
// grouped by the dealership currently holding the vehicle.
func (r *GORMReportRepository) RepairRevenueByDealership() ([]models.RepairRevenueRow, error) {
	rows := make([]models.RepairRevenueRow, 0)
	err := r.db.Raw(
		"SELECT v.current_dealership_id AS dealership_id, "+
			"COUNT(*) AS num_reparaciones, SUM(r.estimated_budget) AS importe_total "+
			"FROM repair_orders r "+
			"JOIN vehicles v ON v.id = r.vehicle_id "+
			"WHERE r.status = ? AND r.estimated_budget IS NOT NULL "+
			"GROUP BY v.current_dealership_id "+
			"ORDER BY importe_total DESC",
		models.RepairStatusFinished,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load repair revenue: %w", err)
	}
	return rows, nil
}

// Summary aggregates the global dashboard counters.
func (r *GORMReportRepository) Summary() (*models.OwnerSummaryRow, error) {
	var summary models.OwnerSummaryRow

	if err := r.db.Raw("SELECT COUNT(*) FROM sales").Scan(&summary.NumVentas).Error; err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}
	if err := r.db.Raw("SELECT COALESCE(SUM(price), 0) FROM sales").Scan(&summary.ImporteVentas).Error; err != nil {
		return nil, fmt.Errorf("failed to total sales: %w", err)
	}
	if err := r.db.Raw(
		"SELECT COUNT(*) FROM repair_orders WHERE status = ? AND estimated_budget IS NOT NULL",
		models.RepairStatusFinished,
	).Scan(&summary.NumReparaciones).Error; err != nil {
		return nil, fmt.Errorf("failed to count repairs: %w", err)
	}
	if err := r.db.Raw(
		"SELECT COALESCE(SUM(estimated_budget), 0) FROM repair_orders WHERE status = ? AND estimated_budget IS NOT NULL",
		models.RepairStatusFinished,
	).Scan(&summary.ImporteReparaciones).Error; err != nil {
		return nil, fmt.Errorf("failed to total repairs: %w", err)
	}
	if err := r.db.Raw(
		"SELECT COUNT(*) FROM vehicles WHERE status <> ?",
		models.VehicleStatusSold,
	).Scan(&summary.NumStockNoVendido).Error; err != nil {
		return nil, fmt.Errorf("failed to count unsold stock: %w", err)
	}

	return &summary, nil
}
