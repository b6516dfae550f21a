package domain

// SettingsEntity is the shared shape of the simple reference records
// (Brand, Family, InventoryType, CancelReason, DelayReason). Deactivation is
// the normal removal flow; hard delete exists but requires confirmation.
type SettingsEntity struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Brand is a device manufacturer.
type Brand = SettingsEntity

// Family groups related device models.
type Family = SettingsEntity

// InventoryType classifies inventory items.
type InventoryType = SettingsEntity

// CancelReason is selectable when cancelling a ticket.
type CancelReason = SettingsEntity

// DelayReason is selectable when excusing an SLA breach.
type DelayReason = SettingsEntity

// Model is a device model. The backend expects the brand name denormalized
// alongside the id on writes.
type Model struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	BrandID   int    `json:"brandId"`
	BrandName string `json:"brandName"`
}
