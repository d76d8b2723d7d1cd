package models

// Reporting rows returned by the owner dashboard endpoints. The JSON field
// names match the wire contract consumed by the Angular frontend, including
// the Spanish aliases on the aggregate rows.

// VehicleStockRow is one unsold vehicle in the stock listing.
type VehicleStockRow struct {
	ID      int    `json:"id"`
	Plate   string `json:"plate"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage"`
	Status  string `json:"status"`
}

// SalesByEmployeeRow aggregates sales per selling employee.
type SalesByEmployeeRow struct {
	SellerUserID int     `json:"sellerUserId"`
	EmployeeName string  `json:"employeeName"`
	SalesCount   int     `json:"salesCount"`
	SalesTotal   float64 `json:"salesTotal"`
}

// RepairRevenueRow aggregates finished repair revenue per dealership.
type RepairRevenueRow struct {
	DealershipID    int     `json:"dealershipId"`
	ImporteTotal    float64 `json:"importeTotal"`
	NumReparaciones int     `json:"numReparaciones"`
}

// OwnerSummaryRow is the global dashboard summary.
type OwnerSummaryRow struct {
	NumVentas           int     `json:"numVentas"`
	ImporteVentas       float64 `json:"importeVentas"`
	NumReparaciones     int     `json:"numReparaciones"`
	ImporteReparaciones float64 `json:"importeReparaciones"`
	NumStockNoVendido   int     `json:"numStockNoVendido"`
}
