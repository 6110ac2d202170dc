package model

// Product is the catalog master record. Stock is never stored on the
// product row; the current balance is always derived from line items.
type Product struct {
	BaseModel
	SKU         string `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relasi
	LineItems []LineItem `json:"line_items,omitempty"`
}
