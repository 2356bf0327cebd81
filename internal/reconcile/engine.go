package reconcile

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/messaging"
	"github.com/gratia-labs/patron-ledger/internal/providers/charge"
	"github.com/gratia-labs/patron-ledger/internal/providers/custodian"
	"github.com/gratia-labs/patron-ledger/internal/rates"
	"github.com/gratia-labs/patron-ledger/internal/store"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

// RecordPledgeRequest describes a claimed external fiat charge
type RecordPledgeRequest struct {
	Address       string
	TransactionID string
	Actor         string
	Amount        float64
	Fee           float64
	Currency      string
	Status        string
}

// UpdatePledgeRequest describes a processor event applied to a pledge
type UpdatePledgeRequest struct {
	Address       string
	TransactionID string
	EventID       string
	Status        string
}

// Engine reconciles externally reported fiat charges against a wallet:
// it verifies the charge with the payment processor, converts the amount
// to satoshis and credits the wallet's refund watermark exactly once per
// pledge
type Engine struct {
	store     store.Store
	charge    charge.Client
	custodian custodian.Client
	rates     rates.Table
	publisher messaging.Publisher

	processorActor string
	sentinelActor  string
	production     bool
}

// NewEngine creates a new refund reconciliation engine
func NewEngine(
	s store.Store,
	chargeClient charge.Client,
	custodianClient custodian.Client,
	rateTable rates.Table,
	publisher messaging.Publisher,
	processorActor string,
	sentinelActor string,
	production bool,
) *Engine {
	return &Engine{
		store:          s,
		charge:         chargeClient,
		custodian:      custodianClient,
		rates:          rateTable,
		publisher:      publisher,
		processorActor: processorActor,
		sentinelActor:  sentinelActor,
		production:     production,
	}
}

// RecordPledge verifies a claimed charge and upserts the pledge keyed by
// (address, transactionId). Nothing is persisted on a verification failure
func (e *Engine) RecordPledge(ctx context.Context, req RecordPledgeRequest) error {
	wallet, err := e.store.GetWalletByAddress(ctx, req.Address)
	if err != nil {
		return err
	}
	if wallet == nil {
		return domain.ErrWalletNotFound
	}

	switch {
	case req.Actor == e.processorActor:
		record, err := e.charge.Retrieve(ctx, req.TransactionID)
		if err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("message", "charge verification unavailable"),
				zap.String("transactionId", req.TransactionID))
			return &domain.UpstreamError{Provider: charge.PROVIDER_NAME, Err: err}
		}
		if mismatch := CompareCharge(record, req.Amount, req.Currency); mismatch != "" {
			return &domain.BadDataError{Reason: mismatch}
		}
	case req.Actor == e.sentinelActor && !e.production:
		// verification bypass for automated tests outside production
	default:
		return &domain.BadDataError{Reason: fmt.Sprintf("unrecognized actor %q", req.Actor)}
	}

	if req.Fee >= req.Amount {
		return &domain.BadDataError{Reason: fmt.Sprintf("fee %.2f must be less than amount %.2f", req.Fee, req.Amount)}
	}

	rate, found, err := e.rates.Rate(ctx, req.Currency)
	if err != nil {
		return err
	}
	if !found {
		return &domain.BadDataError{Reason: fmt.Sprintf("currency %s is not priced", strings.ToUpper(req.Currency))}
	}

	status := req.Status
	if status == "" {
		status = domain.PledgeStatusOpen
	}

	pledge := &schema.Pledge{
		Address:       req.Address,
		TransactionID: req.TransactionID,
		PaymentID:     wallet.PaymentID,
		Actor:         req.Actor,
		Status:        status,
		Amount:        req.Amount,
		Currency:      strings.ToUpper(req.Currency),
		Fee:           req.Fee,
		Satoshis:      rates.ToSatoshis(req.Amount, rate),
	}
	if err := e.store.UpsertPledge(ctx, pledge); err != nil {
		return err
	}

	report := &domain.PledgeReport{
		Address:       pledge.Address,
		TransactionID: pledge.TransactionID,
		Amount:        pledge.Amount,
		Currency:      pledge.Currency,
		Satoshis:      pledge.Satoshis,
		Status:        pledge.Status,
	}
	messaging.PublishAsync("pledge", func(ctx context.Context) error {
		return e.publisher.PublishPledge(ctx, report)
	})

	return nil
}

// UpdatePledge applies a processor event to a pledge. A missing or already
// closed pledge is an idempotent no-op; a non-terminal update attempts the
// watermark credit, and a successful credit forces the pledge closed
func (e *Engine) UpdatePledge(ctx context.Context, req UpdatePledgeRequest) error {
	wallet, err := e.store.GetWalletByAddress(ctx, req.Address)
	if err != nil {
		return err
	}
	if wallet == nil {
		return domain.ErrWalletNotFound
	}

	pledge, err := e.store.GetPledge(ctx, req.Address, req.TransactionID)
	if err != nil {
		return err
	}
	if pledge == nil || pledge.Status == domain.PledgeStatusClosed {
		logger.InfoCtx(ctx, "pledge update is a no-op",
			zap.String("address", req.Address),
			zap.String("transactionId", req.TransactionID),
			zap.Bool("missing", pledge == nil))
		return nil
	}

	if err := e.store.UpdatePledgeStatus(ctx, req.Address, req.TransactionID, req.Status, req.EventID); err != nil {
		return err
	}

	credited := false
	if req.Status != domain.PledgeStatusClosed {
		balance, err := e.custodian.Balances(ctx, req.Address)
		if err != nil {
			return &domain.UpstreamError{Provider: custodian.PROVIDER_NAME, Err: err}
		}
		settled := max(balance.Confirmed, balance.Unconfirmed)

		credited, err = e.store.CreditRefund(ctx, req.Address, pledge.Satoshis, settled-pledge.Satoshis)
		if err != nil {
			return err
		}

		if credited {
			if err := e.store.UpdatePledgeStatus(ctx, req.Address, req.TransactionID, domain.PledgeStatusClosed, req.EventID); err != nil {
				return err
			}
		}
	}

	status := req.Status
	if credited {
		status = domain.PledgeStatusClosed
	}
	report := &domain.PledgeReport{
		Address:       req.Address,
		TransactionID: req.TransactionID,
		Amount:        pledge.Amount,
		Currency:      pledge.Currency,
		Satoshis:      pledge.Satoshis,
		Status:        status,
	}
	messaging.PublishAsync("pledge_update", func(ctx context.Context) error {
		return e.publisher.PublishPledgeUpdate(ctx, report)
	})

	return nil
}

// CompareCharge checks a processor charge record against a claimed amount
// and currency. It returns a mismatch description, or "" when the record
// backs the claim
func CompareCharge(record *domain.ChargeRecord, amount float64, currency string) string {
	switch {
	case record.Kind != "charge":
		return fmt.Sprintf("record is a %q, not a charge", record.Kind)
	case record.Refunded:
		return "charge was refunded"
	case record.AmountRefunded != 0:
		return fmt.Sprintf("charge has %d refunded", record.AmountRefunded)
	case !record.Paid:
		return "charge is unpaid"
	case record.Status != "succeeded":
		return fmt.Sprintf("charge status is %q", record.Status)
	case round2(record.Amount) != round2(amount):
		return fmt.Sprintf("charge amount %.2f differs from claimed %.2f", record.Amount, amount)
	case !strings.EqualFold(record.Currency, currency):
		return fmt.Sprintf("charge currency %q differs from claimed %q", record.Currency, currency)
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
