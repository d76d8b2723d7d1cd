package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
	"github.com/AlvaroDC2000/dealership-api/internal/repositories"
)

func budget(v float64) *float64 {
	return &v
}

// seedReportData loads a small fixture: three vehicles (one sold), two
// sellers, and a mix of finished and open repair orders.
func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedReference(t, db)

	users := []*models.User{
		{DealershipID: 1, RoleID: 2, Username: "jdoe", PasswordHash: "h", FullName: "Jane Doe", IsActive: true},
		{DealershipID: 2, RoleID: 2, Username: "bsmith", PasswordHash: "h", FullName: "Bob Smith", IsActive: true},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	vehicles := []models.Vehicle{
		{Plate: "1111AAA", Brand: "Seat", Model: "Ibiza", Year: 2020, Mileage: 30000, Status: "AVAILABLE", CurrentDealershipID: 1},
		{Plate: "2222BBB", Brand: "Renault", Model: "Clio", Year: 2019, Mileage: 45000, Status: "IN_REPAIR", CurrentDealershipID: 2},
		{Plate: "3333CCC", Brand: "Ford", Model: "Focus", Year: 2021, Mileage: 12000, Status: "SOLD", CurrentDealershipID: 1},
	}
	if err := db.Create(&vehicles).Error; err != nil {
		t.Fatalf("failed to seed vehicles: %v", err)
	}

	sales := []models.Sale{
		{VehicleID: 3, SellerUserID: users[0].ID, Price: 15000},
		{VehicleID: 3, SellerUserID: users[0].ID, Price: 9000},
		{VehicleID: 3, SellerUserID: users[1].ID, Price: 20000},
	}
	if err := db.Create(&sales).Error; err != nil {
		t.Fatalf("failed to seed sales: %v", err)
	}

	repairs := []models.RepairOrder{
		{VehicleID: 1, Status: "FINISHED", EstimatedBudget: budget(500)},
		{VehicleID: 1, Status: "FINISHED", EstimatedBudget: budget(300)},
		{VehicleID: 2, Status: "FINISHED", EstimatedBudget: budget(1200)},
		{VehicleID: 2, Status: "OPEN", EstimatedBudget: budget(400)}, // not finished
		{VehicleID: 1, Status: "FINISHED", EstimatedBudget: nil},     // no budget
	}
	if err := db.Create(&repairs).Error; err != nil {
		t.Fatalf("failed to seed repair orders: %v", err)
	}
}

func TestGORMReportRepository_UnsoldStock(t *testing.T) {
	db := openTestDB(t)
	seedReportData(t, db)
	repo := repositories.NewGORMReportRepository(db)

	rows, err := repo.UnsoldStock()
	assert.NoError(t, err)
	assert.Len(t, rows, 2, "sold vehicles are excluded")

	// Newest first.
	assert.Equal(t, "2222BBB", rows[0].Plate)
	assert.Equal(t, "IN_REPAIR", rows[0].Status)
	assert.Equal(t, "1111AAA", rows[1].Plate)
	assert.Equal(t, 2020, rows[1].Year)
	assert.Equal(t, 30000, rows[1].Mileage)
}

func TestGORMReportRepository_SalesByEmployee(t *testing.T) {
	db := openTestDB(t)
	seedReportData(t, db)
	repo := repositories.NewGORMReportRepository(db)

	rows, err := repo.SalesByEmployee()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Ordered by total descending: jdoe 24000 over bsmith 20000.
	assert.Equal(t, "Jane Doe", rows[0].EmployeeName)
	assert.Equal(t, 2, rows[0].SalesCount)
	assert.InDelta(t, 24000, rows[0].SalesTotal, 0.001)
	assert.Equal(t, "Bob Smith", rows[1].EmployeeName)
	assert.Equal(t, 1, rows[1].SalesCount)
	assert.InDelta(t, 20000, rows[1].SalesTotal, 0.001)
}

func TestGORMReportRepository_RepairRevenueByDealership(t *testing.T) {
	db := openTestDB(t)
	seedReportData(t, db)
	repo := repositories.NewGORMReportRepository(db)

	rows, err := repo.RepairRevenueByDealership()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Only finished, budgeted repairs count. Dealership 2 collects 1200
	// from the Clio; dealership 1 collects 800 from the Ibiza.
	assert.Equal(t, 2, rows[0].DealershipID)
	assert.Equal(t, 1, rows[0].NumReparaciones)
	assert.InDelta(t, 1200, rows[0].ImporteTotal, 0.001)
	assert.Equal(t, 1, rows[1].DealershipID)
	assert.Equal(t, 2, rows[1].NumReparaciones)
	assert.InDelta(t, 800, rows[1].ImporteTotal, 0.001)
}

func TestGORMReportRepository_Summary(t *testing.T) {
	db := openTestDB(t)
	seedReportData(t, db)
	repo := repositories.NewGORMReportRepository(db)

	summary, err := repo.Summary()
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.NumVentas)
	assert.InDelta(t, 44000, summary.ImporteVentas, 0.001)
	assert.Equal(t, 3, summary.NumReparaciones, "open and unbudgeted repairs are excluded")
	assert.InDelta(t, 2000, summary.ImporteReparaciones, 0.001)
	assert.Equal(t, 2, summary.NumStockNoVendido)
}

func TestGORMReportRepository_EmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMReportRepository(db)

	stock, err := repo.UnsoldStock()
	assert.NoError(t, err)
	assert.Empty(t, stock)

	sales, err := repo.SalesByEmployee()
	assert.NoError(t, err)
	assert.Empty(t, sales)

	revenue, err := repo.RepairRevenueByDealership()
	assert.NoError(t, err)
	assert.Empty(t, revenue)

	summary, err := repo.Summary()
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.NumVentas)
	assert.Zero(t, summary.ImporteVentas)
	assert.Equal(t, 0, summary.NumReparaciones)
	assert.Zero(t, summary.ImporteReparaciones)
	assert.Equal(t, 0, summary.NumStockNoVendido)
}
