package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Wallet represents the wallets table - a custodial wallet owned by a
// contributor
type Wallet struct {
	// PaymentID is the client-facing wallet identifier
	PaymentID string `gorm:"column:payment_id;primaryKey;type:text"`
	// Address is the custodian-side address funds settle from
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// AltCurrency is the settlement currency of the wallet (e.g. "BTC")
	AltCurrency string `gorm:"column:altcurrency;not null;type:text"`
	// Provider identifies the custodian hosting the wallet
	Provider string `gorm:"column:provider;type:text"`
	// Balances is the last observed balance snapshot {confirmed, unconfirmed},
	// refreshed on demand
	Balances datatypes.JSON `gorm:"column:balances;type:jsonb"`
	// PaymentStamp is a strictly increasing millisecond stamp of the most
	// recent settled contribution
	PaymentStamp int64 `gorm:"column:payment_stamp;not null;default:0"`
	// RefundSatoshis is the monotonically non-decreasing refund watermark.
	// It never exceeds the wallet's observed settled balance
	RefundSatoshis int64 `gorm:"column:refund_satoshis;not null;default:0"`
	// CreatedAt is the timestamp when this wallet was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this wallet was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}
