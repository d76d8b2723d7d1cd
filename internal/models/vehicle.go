package models

// Vehicle statuses as stored in the vehicles table.
const (
	VehicleStatusSold = "SOLD"
)

// Vehicle represents a vehicle held or sold by a dealership.
type Vehicle struct {
	ID                  int    `json:"id" gorm:"primaryKey"`
	Plate               string `json:"plate" gorm:"type:varchar(20)"`
	Brand               string `json:"brand" gorm:"type:varchar(50)"`
	Model               string `json:"model" gorm:"type:varchar(50)"`
	Year                int    `json:"year"`
	Mileage             int    `json:"mileage"`
	Status              string `json:"status" gorm:"type:varchar(20)"`
	CurrentDealershipID int    `json:"currentDealershipId"`
}

// Sale records a completed vehicle sale by an employee.
type Sale struct {
	ID           int     `json:"id" gorm:"primaryKey"`
	VehicleID    int     `json:"vehicleId"`
	SellerUserID int     `json:"sellerUserId"`
	Price        float64 `json:"price"`
}

// RepairOrder statuses as stored in the repair_orders table.
const (
	RepairStatusFinished = "FINISHED"
)

// RepairOrder records workshop activity on a vehicle. EstimatedBudget is
// nullable: open orders may not have been quoted yet.
type RepairOrder struct {
	ID              int      `json:"id" gorm:"primaryKey"`
	VehicleID       int      `json:"vehicleId"`
	Status          string   `json:"status" gorm:"type:varchar(20)"`
	EstimatedBudget *float64 `json:"estimatedBudget"`
}
