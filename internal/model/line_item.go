package model

import "github.com/google/uuid"

// LineItem is one product+quantity row inside a transaction. A product
// may appear at most once per transaction (composite unique index).
type LineItem struct {
	BaseModel
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_txn_product" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_txn_product" json:"product_id"`
	Product       *Product  `json:"product,omitempty"`
	Quantity      int       `gorm:"not null" json:"quantity"`
}
