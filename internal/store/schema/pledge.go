package schema

import (
	"time"
)

// Pledge represents the pledges table - a claimed external fiat charge
// awaiting reconciliation against a wallet. Created open; closed is terminal
type Pledge struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the wallet address the charge is claimed against
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:idx_pledges_address_transaction,priority:1"`
	// TransactionID is the charge identifier at the payment processor
	TransactionID string `gorm:"column:transaction_id;not null;type:text;uniqueIndex:idx_pledges_address_transaction,priority:2"`
	// PaymentID is the owning wallet's identifier, when known
	PaymentID string `gorm:"column:payment_id;type:text"`
	// Actor identifies who reported the charge
	Actor string `gorm:"column:actor;not null;type:text"`
	// Status is the pledge state, open or closed
	Status string `gorm:"column:status;not null;default:open;type:text"`
	// EventID is the most recent processor event applied to this pledge
	EventID string `gorm:"column:event_id;type:text"`
	// Amount is the claimed fiat charge amount
	Amount float64 `gorm:"column:amount;not null;type:numeric(18,2)"`
	// Currency is the claimed fiat currency code, upper-cased
	Currency string `gorm:"column:currency;not null;type:text"`
	// Fee is the fiat fee withheld from the charge
	Fee float64 `gorm:"column:fee;not null;type:numeric(18,2)"`
	// Satoshis is the rate-converted charge amount credited on close
	Satoshis int64 `gorm:"column:satoshis;not null;default:0"`
	// CreatedAt is the timestamp when this pledge was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this pledge was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Pledge model
func (Pledge) TableName() string {
	return "pledges"
}
