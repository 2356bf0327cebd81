package wallet

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/messaging"
	"github.com/gratia-labs/patron-ledger/internal/providers/custodian"
	"github.com/gratia-labs/patron-ledger/internal/rates"
	"github.com/gratia-labs/patron-ledger/internal/store"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

// Info is a wallet read: the payment stamp, a rate snapshot and optionally
// a fresh balance observation
type Info struct {
	PaymentID    string             `json:"paymentId"`
	Address      string             `json:"address"`
	AltCurrency  string             `json:"altcurrency"`
	PaymentStamp int64              `json:"paymentStamp"`
	Rates        map[string]float64 `json:"rates"`
	Balances     *domain.Balance    `json:"balances,omitempty"`
}

// Service serves wallet reads and address balance lookups
type Service struct {
	store     store.Store
	custodian custodian.Client
	rates     rates.Table
	publisher messaging.Publisher
	json      adapter.JSON
}

// NewService creates a new wallet service
func NewService(
	s store.Store,
	custodianClient custodian.Client,
	rateTable rates.Table,
	publisher messaging.Publisher,
	jsonAdapter adapter.JSON,
) *Service {
	return &Service{
		store:     s,
		custodian: custodianClient,
		rates:     rateTable,
		publisher: publisher,
		json:      jsonAdapter,
	}
}

// Read returns the wallet's stamp and a rate snapshot, optionally filtered
// to one currency. With refresh the custodian is re-queried and the cached
// balances are replaced
func (s *Service) Read(ctx context.Context, paymentID, currency string, refresh bool) (*Info, error) {
	w, err := s.store.GetWalletByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrWalletNotFound
	}

	info := &Info{
		PaymentID:    w.PaymentID,
		Address:      w.Address,
		AltCurrency:  w.AltCurrency,
		PaymentStamp: w.PaymentStamp,
	}

	if currency != "" {
		rate, found, err := s.rates.Rate(ctx, currency)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.BadDataError{Reason: fmt.Sprintf("currency %s is not priced", strings.ToUpper(currency))}
		}
		info.Rates = map[string]float64{strings.ToUpper(currency): rate}
	} else {
		snapshot, err := s.rates.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		info.Rates = snapshot
	}

	if refresh {
		balance, err := s.refreshBalances(ctx, w)
		if err != nil {
			return nil, err
		}
		info.Balances = balance
	} else if balance := s.cachedBalances(w); balance != nil {
		info.Balances = balance
	}

	return info, nil
}

// AddressBalance returns the settled balance for an address. A wallet with
// no cached snapshot is refreshed from the custodian, cached, and reported
func (s *Service) AddressBalance(ctx context.Context, address string) (*domain.Balance, error) {
	w, err := s.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrWalletNotFound
	}

	if balance := s.cachedBalances(w); balance != nil {
		return balance, nil
	}

	balance, err := s.refreshBalances(ctx, w)
	if err != nil {
		return nil, err
	}

	report := &domain.WalletReport{
		PaymentID: w.PaymentID,
		Address:   w.Address,
		Satoshis:  balance.Satoshis,
	}
	messaging.PublishAsync("wallet", func(ctx context.Context) error {
		return s.publisher.PublishWallet(ctx, report)
	})

	return balance, nil
}

// refreshBalances re-queries the custodian and replaces the cached snapshot
func (s *Service) refreshBalances(ctx context.Context, w *schema.Wallet) (*domain.Balance, error) {
	balance, err := s.custodian.Balances(ctx, w.Address)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: custodian.PROVIDER_NAME, Err: err}
	}

	cached, err := s.json.Marshal(balance)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal balances: %w", err)
	}
	if err := s.store.CacheWalletBalances(ctx, w.PaymentID, datatypes.JSON(cached)); err != nil {
		logger.WarnCtx(ctx, "failed to cache wallet balances",
			zap.String("paymentId", w.PaymentID), zap.Error(err))
	}

	return balance, nil
}

// cachedBalances decodes the wallet's cached snapshot, if any
func (s *Service) cachedBalances(w *schema.Wallet) *domain.Balance {
	if len(w.Balances) == 0 {
		return nil
	}
	var balance domain.Balance
	if err := s.json.Unmarshal(w.Balances, &balance); err != nil {
		return nil
	}
	return &balance
}
