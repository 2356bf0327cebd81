package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return nil
}

// GetWalletByPaymentID retrieves a wallet by its payment identifier
func (s *pgStore) GetWalletByPaymentID(ctx context.Context, paymentID string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// GetWalletByAddress retrieves a wallet by its custodian address
func (s *pgStore) GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// StampWallet advances the wallet's payment stamp. The filter keeps the
// stamp monotonic under concurrent settlements
func (s *pgStore) StampWallet(ctx context.Context, paymentID string, stamp int64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("payment_id = ? AND payment_stamp < ?", paymentID, stamp).
		Updates(map[string]interface{}{
			"payment_stamp": stamp,
			"updated_at":    gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to stamp wallet: %w", err)
	}
	return nil
}

// CacheWalletBalances stores the latest observed balance snapshot
func (s *pgStore) CacheWalletBalances(ctx context.Context, paymentID string, balances datatypes.JSON) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]interface{}{
			"balances":   balances,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to cache wallet balances: %w", err)
	}
	return nil
}

// CreditRefund atomically increments the wallet's refund watermark by
// satoshis while the watermark is at or below maxWatermark. The filter plus
// increment execute as one statement, so concurrent or retried credits for
// the same pledge apply at most once
func (s *pgStore) CreditRefund(ctx context.Context, address string, satoshis int64, maxWatermark int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("address = ? AND refund_satoshis <= ?", address, maxWatermark).
		Updates(map[string]interface{}{
			"refund_satoshis": gorm.Expr("refund_satoshis + ?", satoshis),
			"updated_at":      gorm.Expr("now()"),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to credit refund: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetSurveyorBySurveyorID retrieves a surveyor by its public identifier
func (s *pgStore) GetSurveyorBySurveyorID(ctx context.Context, surveyorID string) (*schema.Surveyor, error) {
	var surveyor schema.Surveyor
	err := s.db.WithContext(ctx).Where("surveyor_id = ?", surveyorID).First(&surveyor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get surveyor: %w", err)
	}
	return &surveyor, nil
}

// ListActiveSurveyors retrieves up to limit active surveyors of the given
// type, most recent first
func (s *pgStore) ListActiveSurveyors(ctx context.Context, surveyorType schema.SurveyorType, limit int) ([]*schema.Surveyor, error) {
	var surveyors []*schema.Surveyor
	err := s.db.WithContext(ctx).
		Where("surveyor_type = ? AND active = ?", surveyorType, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&surveyors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active surveyors: %w", err)
	}
	return surveyors, nil
}

// CreateSurveyor persists a new surveyor
func (s *pgStore) CreateSurveyor(ctx context.Context, surveyor *schema.Surveyor) error {
	if err := s.db.WithContext(ctx).Create(surveyor).Error; err != nil {
		return fmt.Errorf("failed to create surveyor: %w", err)
	}
	return nil
}

// UpsertViewing creates or overwrites the viewing keyed by viewing_id.
// A retried settlement re-samples and replaces the prior allocation
func (s *pgStore) UpsertViewing(ctx context.Context, viewing *schema.Viewing) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "viewing_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"u_id":         viewing.UID,
			"surveyor_id":  viewing.SurveyorID,
			"surveyor_ids": viewing.SurveyorIDs,
			"satoshis":     viewing.Satoshis,
			"count":        viewing.Count,
			"updated_at":   gorm.Expr("now()"),
		}),
	}).Create(viewing).Error
	if err != nil {
		return fmt.Errorf("failed to upsert viewing: %w", err)
	}
	return nil
}

// GetPledge retrieves a pledge by its (address, transaction_id) key
func (s *pgStore) GetPledge(ctx context.Context, address, transactionID string) (*schema.Pledge, error) {
	var pledge schema.Pledge
	err := s.db.WithContext(ctx).
		Where("address = ? AND transaction_id = ?", address, transactionID).
		First(&pledge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pledge: %w", err)
	}
	return &pledge, nil
}

// UpsertPledge creates or overwrites the pledge keyed by
// (address, transaction_id)
func (s *pgStore) UpsertPledge(ctx context.Context, pledge *schema.Pledge) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}, {Name: "transaction_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"payment_id": pledge.PaymentID,
			"actor":      pledge.Actor,
			"status":     pledge.Status,
			"amount":     pledge.Amount,
			"currency":   pledge.Currency,
			"fee":        pledge.Fee,
			"satoshis":   pledge.Satoshis,
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(pledge).Error
	if err != nil {
		return fmt.Errorf("failed to upsert pledge: %w", err)
	}
	return nil
}

// UpdatePledgeStatus persists a new status and event id on a pledge
func (s *pgStore) UpdatePledgeStatus(ctx context.Context, address, transactionID, status, eventID string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Pledge{}).
		Where("address = ? AND transaction_id = ?", address, transactionID).
		Updates(map[string]interface{}{
			"status":     status,
			"event_id":   eventID,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update pledge status: %w", err)
	}
	return nil
}
