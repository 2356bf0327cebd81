package store

import (
	"context"

	"gorm.io/datatypes"

	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetWalletByPaymentID retrieves a wallet by its payment identifier
	GetWalletByPaymentID(ctx context.Context, paymentID string) (*schema.Wallet, error)
	// GetWalletByAddress retrieves a wallet by its custodian address
	GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error)
	// StampWallet advances the wallet's payment stamp. Stamps only move
	// forward; a stale stamp is silently ignored
	StampWallet(ctx context.Context, paymentID string, stamp int64) error
	// CacheWalletBalances stores the latest observed balance snapshot
	CacheWalletBalances(ctx context.Context, paymentID string, balances datatypes.JSON) error
	// CreditRefund atomically increments the wallet's refund watermark by
	// satoshis, but only while refund_satoshis <= maxWatermark. Returns
	// whether the credit was applied
	CreditRefund(ctx context.Context, address string, satoshis int64, maxWatermark int64) (bool, error)

	// GetSurveyorBySurveyorID retrieves a surveyor by its public identifier
	GetSurveyorBySurveyorID(ctx context.Context, surveyorID string) (*schema.Surveyor, error)
	// ListActiveSurveyors retrieves up to limit active surveyors of the
	// given type, most recent first
	ListActiveSurveyors(ctx context.Context, surveyorType schema.SurveyorType, limit int) ([]*schema.Surveyor, error)
	// CreateSurveyor persists a new surveyor
	CreateSurveyor(ctx context.Context, surveyor *schema.Surveyor) error

	// UpsertViewing creates or overwrites the viewing keyed by viewing_id
	UpsertViewing(ctx context.Context, viewing *schema.Viewing) error

	// GetPledge retrieves a pledge by its (address, transaction_id) key
	GetPledge(ctx context.Context, address, transactionID string) (*schema.Pledge, error)
	// UpsertPledge creates or overwrites the pledge keyed by
	// (address, transaction_id)
	UpsertPledge(ctx context.Context, pledge *schema.Pledge) error
	// UpdatePledgeStatus persists a new status and event id on a pledge
	UpdatePledgeStatus(ctx context.Context, address, transactionID, status, eventID string) error
}
