package domain

import "time"

// Notification belongs to the authenticated user.
type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// WarrantyRecord is a row in the warranty reports.
type WarrantyRecord struct {
	InventoryID     int       `json:"inventoryId"`
	InventoryName   string    `json:"inventoryName"`
	SerialNumber    string    `json:"serialNumber"`
	BrandName       string    `json:"brandName"`
	ModelName       string    `json:"modelName"`
	WarrantyEndDate time.Time `json:"warrantyEndDate"`
}
