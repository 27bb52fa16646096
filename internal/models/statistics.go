package models

type Statistics struct {
	TotalBricks       int     `json:"totalBricks"`
	AvailableTractors int     `json:"availableTractors"`
	ActiveLaborers    int     `json:"activeLaborers"`
	PendingOrders     int     `json:"pendingOrders"`
	TotalSales        float64 `json:"totalSales"`
	LowStockBricks    []Brick `json:"lowStockBricks"`
}
