package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/mocks"
	"github.com/gratia-labs/patron-ledger/internal/reconcile"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

const (
	processorActor = "authorize.processor"
	sentinelActor  = "automation"
)

// testReconcileMocks contains all the mocks needed for testing the engine
type testReconcileMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	charge    *mocks.MockChargeClient
	custodian *mocks.MockCustodianClient
	rates     *mocks.MockTable
	publisher *mocks.MockPublisher
}

// setupTestReconcile creates all the mocks for testing
func setupTestReconcile(t *testing.T) *testReconcileMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	return &testReconcileMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		charge:    mocks.NewMockChargeClient(ctrl),
		custodian: mocks.NewMockCustodianClient(ctrl),
		rates:     mocks.NewMockTable(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
}

// tearDownTestReconcile cleans up the test mocks
func tearDownTestReconcile(mocks *testReconcileMocks) {
	mocks.ctrl.Finish()
}

func (tm *testReconcileMocks) newEngine(production bool) *reconcile.Engine {
	return reconcile.NewEngine(
		tm.store,
		tm.charge,
		tm.custodian,
		tm.rates,
		tm.publisher,
		processorActor,
		sentinelActor,
		production,
	)
}

func verifiedCharge() *domain.ChargeRecord {
	return &domain.ChargeRecord{
		Kind:     "charge",
		Paid:     true,
		Status:   "succeeded",
		Amount:   5.00,
		Currency: "usd",
	}
}

func TestEngine_RecordPledge(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()
	req := reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         processorActor,
		Amount:        5.00,
		Fee:           0.30,
		Currency:      "usd",
	}

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.charge.EXPECT().
		Retrieve(ctx, "ch_123").
		Return(verifiedCharge(), nil)
	tm.rates.EXPECT().
		Rate(ctx, "usd").
		Return(100000.0, true, nil)

	var persisted *schema.Pledge
	tm.store.EXPECT().
		UpsertPledge(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *schema.Pledge) error {
			persisted = p
			return nil
		})

	published := make(chan *domain.PledgeReport, 1)
	tm.publisher.EXPECT().
		PublishPledge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.PledgeReport) error {
			published <- report
			return nil
		})

	require.NoError(t, engine.RecordPledge(ctx, req))

	require.NotNil(t, persisted)
	assert.Equal(t, "addr-1", persisted.Address)
	assert.Equal(t, "ch_123", persisted.TransactionID)
	assert.Equal(t, "payment-1", persisted.PaymentID)
	assert.Equal(t, domain.PledgeStatusOpen, persisted.Status)
	assert.Equal(t, "USD", persisted.Currency)
	assert.Equal(t, int64(500000), persisted.Satoshis)

	select {
	case report := <-published:
		assert.Equal(t, "ch_123", report.TransactionID)
		assert.Equal(t, int64(500000), report.Satoshis)
	case <-time.After(5 * time.Second):
		t.Fatal("pledge report was never published")
	}
}

func TestEngine_RecordPledge_WalletNotFound(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "missing").
		Return(nil, nil)

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{Address: "missing"})
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestEngine_RecordPledge_ChargeMismatch(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)

	record := verifiedCharge()
	record.Amount = 7.50
	tm.charge.EXPECT().
		Retrieve(ctx, "ch_123").
		Return(record, nil)

	// nothing is persisted when the claimed amount differs from the record

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         processorActor,
		Amount:        5.00,
		Fee:           0.30,
		Currency:      "usd",
	})

	var badData *domain.BadDataError
	require.ErrorAs(t, err, &badData)
	assert.Contains(t, badData.Reason, "differs")
}

func TestEngine_RecordPledge_ChargeUnavailable(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.charge.EXPECT().
		Retrieve(ctx, "ch_123").
		Return(nil, errors.New("connection refused"))

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         processorActor,
		Amount:        5.00,
		Currency:      "usd",
	})

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "charge", upstream.Provider)
}

func TestEngine_RecordPledge_UnrecognizedActor(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         "somebody-else",
		Amount:        5.00,
		Currency:      "usd",
	})

	var badData *domain.BadDataError
	require.ErrorAs(t, err, &badData)
	assert.Contains(t, badData.Reason, "unrecognized actor")
}

func TestEngine_RecordPledge_SentinelBypass(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	// the sentinel actor skips charge verification outside production
	engine := tm.newEngine(false)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.rates.EXPECT().
		Rate(ctx, "usd").
		Return(100000.0, true, nil)
	tm.store.EXPECT().
		UpsertPledge(ctx, gomock.Any()).
		Return(nil)

	published := make(chan struct{}, 1)
	tm.publisher.EXPECT().
		PublishPledge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.PledgeReport) error {
			published <- struct{}{}
			return nil
		})

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         sentinelActor,
		Amount:        5.00,
		Fee:           0.30,
		Currency:      "usd",
	})
	require.NoError(t, err)

	select {
	case <-published:
	case <-time.After(5 * time.Second):
		t.Fatal("pledge report was never published")
	}
}

func TestEngine_RecordPledge_SentinelRejectedInProduction(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         sentinelActor,
		Amount:        5.00,
		Currency:      "usd",
	})

	var badData *domain.BadDataError
	assert.ErrorAs(t, err, &badData)
}

func TestEngine_RecordPledge_FeeNotBelowAmount(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(false)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         sentinelActor,
		Amount:        5.00,
		Fee:           5.00,
		Currency:      "usd",
	})

	var badData *domain.BadDataError
	require.ErrorAs(t, err, &badData)
	assert.Contains(t, badData.Reason, "must be less than")
}

func TestEngine_RecordPledge_UnpricedCurrency(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(false)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.rates.EXPECT().
		Rate(ctx, "xyz").
		Return(0.0, false, nil)

	err := engine.RecordPledge(ctx, reconcile.RecordPledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		Actor:         sentinelActor,
		Amount:        5.00,
		Fee:           0.30,
		Currency:      "xyz",
	})

	var badData *domain.BadDataError
	require.ErrorAs(t, err, &badData)
	assert.Contains(t, badData.Reason, "not priced")
}

func TestEngine_UpdatePledge_CreditsOnceAndCloses(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()
	req := reconcile.UpdatePledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		EventID:       "evt_1",
		Status:        domain.PledgeStatusOpen,
	}

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.store.EXPECT().
		GetPledge(ctx, "addr-1", "ch_123").
		Return(&schema.Pledge{
			Address:       "addr-1",
			TransactionID: "ch_123",
			Status:        domain.PledgeStatusOpen,
			Amount:        5.00,
			Currency:      "USD",
			Satoshis:      500000,
		}, nil)
	tm.store.EXPECT().
		UpdatePledgeStatus(ctx, "addr-1", "ch_123", domain.PledgeStatusOpen, "evt_1").
		Return(nil)
	tm.custodian.EXPECT().
		Balances(ctx, "addr-1").
		Return(&domain.Balance{Confirmed: 800000, Unconfirmed: 750000, Satoshis: 800000}, nil)
	// watermark is the settled balance minus the pledge being credited
	tm.store.EXPECT().
		CreditRefund(ctx, "addr-1", int64(500000), int64(300000)).
		Return(true, nil)
	tm.store.EXPECT().
		UpdatePledgeStatus(ctx, "addr-1", "ch_123", domain.PledgeStatusClosed, "evt_1").
		Return(nil)

	published := make(chan *domain.PledgeReport, 1)
	tm.publisher.EXPECT().
		PublishPledgeUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.PledgeReport) error {
			published <- report
			return nil
		})

	require.NoError(t, engine.UpdatePledge(ctx, req))

	select {
	case report := <-published:
		assert.Equal(t, domain.PledgeStatusClosed, report.Status)
		assert.Equal(t, int64(500000), report.Satoshis)
	case <-time.After(5 * time.Second):
		t.Fatal("pledge update report was never published")
	}
}

func TestEngine_UpdatePledge_CreditLosesWatermarkRace(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()
	req := reconcile.UpdatePledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		EventID:       "evt_1",
		Status:        domain.PledgeStatusOpen,
	}

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.store.EXPECT().
		GetPledge(ctx, "addr-1", "ch_123").
		Return(&schema.Pledge{
			Address:       "addr-1",
			TransactionID: "ch_123",
			Status:        domain.PledgeStatusOpen,
			Satoshis:      500000,
		}, nil)
	tm.store.EXPECT().
		UpdatePledgeStatus(ctx, "addr-1", "ch_123", domain.PledgeStatusOpen, "evt_1").
		Return(nil)
	tm.custodian.EXPECT().
		Balances(ctx, "addr-1").
		Return(&domain.Balance{Confirmed: 800000, Unconfirmed: 0, Satoshis: 800000}, nil)
	tm.store.EXPECT().
		CreditRefund(ctx, "addr-1", int64(500000), int64(300000)).
		Return(false, nil)
	// the pledge stays open when the credit does not land

	published := make(chan *domain.PledgeReport, 1)
	tm.publisher.EXPECT().
		PublishPledgeUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.PledgeReport) error {
			published <- report
			return nil
		})

	require.NoError(t, engine.UpdatePledge(ctx, req))

	select {
	case report := <-published:
		assert.Equal(t, domain.PledgeStatusOpen, report.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("pledge update report was never published")
	}
}

func TestEngine_UpdatePledge_MissingPledgeIsNoOp(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.store.EXPECT().
		GetPledge(ctx, "addr-1", "ch_missing").
		Return(nil, nil)

	err := engine.UpdatePledge(ctx, reconcile.UpdatePledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_missing",
		EventID:       "evt_1",
		Status:        domain.PledgeStatusOpen,
	})
	assert.NoError(t, err)
}

func TestEngine_UpdatePledge_ClosedPledgeIsNoOp(t *testing.T) {
	tm := setupTestReconcile(t)
	defer tearDownTestReconcile(tm)

	engine := tm.newEngine(true)
	ctx := context.Background()

	tm.store.EXPECT().
		GetWalletByAddress(ctx, "addr-1").
		Return(&schema.Wallet{PaymentID: "payment-1", Address: "addr-1"}, nil)
	tm.store.EXPECT().
		GetPledge(ctx, "addr-1", "ch_123").
		Return(&schema.Pledge{
			Address:       "addr-1",
			TransactionID: "ch_123",
			Status:        domain.PledgeStatusClosed,
			Satoshis:      500000,
		}, nil)

	err := engine.UpdatePledge(ctx, reconcile.UpdatePledgeRequest{
		Address:       "addr-1",
		TransactionID: "ch_123",
		EventID:       "evt_2",
		Status:        domain.PledgeStatusOpen,
	})
	assert.NoError(t, err)
}

func TestCompareCharge(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *domain.ChargeRecord)
		amount   float64
		currency string
		wantOK   bool
	}{
		{
			name:     "matching record",
			mutate:   func(r *domain.ChargeRecord) {},
			amount:   5.00,
			currency: "usd",
			wantOK:   true,
		},
		{
			name:     "currency case is ignored",
			mutate:   func(r *domain.ChargeRecord) {},
			amount:   5.00,
			currency: "USD",
			wantOK:   true,
		},
		{
			name:     "not a charge",
			mutate:   func(r *domain.ChargeRecord) { r.Kind = "refund" },
			amount:   5.00,
			currency: "usd",
		},
		{
			name:     "refunded",
			mutate:   func(r *domain.ChargeRecord) { r.Refunded = true },
			amount:   5.00,
			currency: "usd",
		},
		{
			name:     "partially refunded",
			mutate:   func(r *domain.ChargeRecord) { r.AmountRefunded = 100 },
			amount:   5.00,
			currency: "usd",
		},
		{
			name:     "unpaid",
			mutate:   func(r *domain.ChargeRecord) { r.Paid = false },
			amount:   5.00,
			currency: "usd",
		},
		{
			name:     "pending status",
			mutate:   func(r *domain.ChargeRecord) { r.Status = "pending" },
			amount:   5.00,
			currency: "usd",
		},
		{
			name:     "amount differs",
			mutate:   func(r *domain.ChargeRecord) {},
			amount:   5.01,
			currency: "usd",
		},
		{
			name:     "currency differs",
			mutate:   func(r *domain.ChargeRecord) {},
			amount:   5.00,
			currency: "eur",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := verifiedCharge()
			tt.mutate(record)

			mismatch := reconcile.CompareCharge(record, tt.amount, tt.currency)
			if tt.wantOK {
				assert.Empty(t, mismatch)
			} else {
				assert.NotEmpty(t, mismatch)
			}
		})
	}
}
