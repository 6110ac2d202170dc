package model

import "time"

type TransactionType string

const (
	TxIn  TransactionType = "IN"
	TxOut TransactionType = "OUT"
)

// Transaction is the stock movement header. It owns one or more line
// items and is immutable once committed.
type Transaction struct {
	BaseModel
	Type    TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Date    time.Time       `gorm:"not null" json:"date"`
	Remarks string          `gorm:"type:text" json:"remarks"`

	// Ordered by insertion; deleted together with the header.
	LineItems []LineItem `gorm:"constraint:OnDelete:CASCADE" json:"line_items"`
}

// TotalItems sums the quantities across all line items of this transaction.
func (t *Transaction) TotalItems() int {
	total := 0
	for _, item := range t.LineItems {
		total += item.Quantity
	}
	return total
}
