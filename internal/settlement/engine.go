package settlement

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/messaging"
	"github.com/gratia-labs/patron-ledger/internal/providers/custodian"
	"github.com/gratia-labs/patron-ledger/internal/store"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

// SettleRequest describes one contribution settlement
type SettleRequest struct {
	PaymentID  string
	SignedTx   string
	SurveyorID string
	ViewingID  string
}

// Engine settles contributions: it submits the signed transaction to the
// custodian, converts the settled amount into votes, samples distinct
// recipients from the surveyor's pool and records the resulting viewing
type Engine struct {
	store     store.Store
	custodian custodian.Client
	publisher messaging.Publisher
	stamper   adapter.Stamper
	rand      adapter.Rand
	json      adapter.JSON

	// defaults applied when a surveyor carries no usable pricing
	defaultUnit      int64
	defaultUnitVotes int
}

// NewEngine creates a new contribution settlement engine
func NewEngine(
	s store.Store,
	custodianClient custodian.Client,
	publisher messaging.Publisher,
	stamper adapter.Stamper,
	rnd adapter.Rand,
	jsonAdapter adapter.JSON,
	defaultUnit int64,
	defaultUnitVotes int,
) *Engine {
	return &Engine{
		store:            s,
		custodian:        custodianClient,
		publisher:        publisher,
		stamper:          stamper,
		rand:             rnd,
		json:             jsonAdapter,
		defaultUnit:      defaultUnit,
		defaultUnitVotes: defaultUnitVotes,
	}
}

// Settle runs one contribution settlement end to end. Nothing is persisted
// until the custodian accepts the transaction; after acceptance the request
// never fails because of recipient-pool exhaustion
func (e *Engine) Settle(ctx context.Context, req SettleRequest) (*domain.ContributionResult, error) {
	wallet, err := e.store.GetWalletByPaymentID(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}

	surveyor, err := e.store.GetSurveyorBySurveyorID(ctx, req.SurveyorID)
	if err != nil {
		return nil, err
	}
	if surveyor == nil {
		return nil, domain.ErrSurveyorNotFound
	}

	verdict, err := e.custodian.SubmitTransaction(ctx, wallet.Address, req.SignedTx)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: custodian.PROVIDER_NAME, Err: err}
	}
	if !verdict.Accepted() {
		return nil, &domain.InvalidPaymentError{Status: verdict.Status}
	}

	stamp := e.stamper.Next()
	if err := e.store.StampWallet(ctx, wallet.PaymentID, stamp); err != nil {
		return nil, err
	}

	unit, unitVotes := e.pricing(ctx, surveyor)
	votes := computeVotes(verdict.Fee, verdict.Satoshis, unit, unitVotes)

	pool := e.recipientPool(ctx, surveyor)
	if votes > len(pool) {
		logger.WarnCtx(ctx, "recipient pool smaller than vote count",
			zap.String("surveyorId", surveyor.SurveyorID),
			zap.Int("votes", votes),
			zap.Int("poolSize", len(pool)))
	}

	sampled := e.sample(pool, votes)

	sampledJSON, err := e.json.Marshal(sampled)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sampled recipients: %w", err)
	}

	viewing := &schema.Viewing{
		ViewingID:   req.ViewingID,
		UID:         domain.AnonymousID(req.ViewingID),
		SurveyorID:  surveyor.SurveyorID,
		SurveyorIDs: sampledJSON,
		Satoshis:    verdict.Satoshis,
		Count:       votes,
	}
	if err := e.store.UpsertViewing(ctx, viewing); err != nil {
		return nil, err
	}

	report := &domain.ContributionReport{
		ViewingID:   req.ViewingID,
		PaymentID:   wallet.PaymentID,
		Address:     wallet.Address,
		SurveyorID:  surveyor.SurveyorID,
		AltCurrency: wallet.AltCurrency,
		Fee:         verdict.Fee,
		Satoshis:    verdict.Satoshis,
		Votes:       votes,
		SurveyorIDs: sampled,
	}
	messaging.PublishAsync("contribution", func(ctx context.Context) error {
		return e.publisher.PublishContribution(ctx, report)
	})

	return &domain.ContributionResult{
		PaymentStamp: stamp,
		Satoshis:     verdict.Satoshis,
		Votes:        votes,
		Hash:         verdict.Hash,
	}, nil
}

// pricing extracts the surveyor's unit pricing, falling back to the
// configured defaults when the payload is absent or unusable
func (e *Engine) pricing(ctx context.Context, surveyor *schema.Surveyor) (int64, int) {
	var payload domain.SurveyorPayload
	if err := e.json.Unmarshal(surveyor.Payload, &payload); err != nil ||
		payload.AdFree.SatoshisPerUnit <= 0 || payload.AdFree.VotesPerUnit <= 0 {
		logger.WarnCtx(ctx, "surveyor carries no usable pricing, using defaults",
			zap.String("surveyorId", surveyor.SurveyorID))
		return e.defaultUnit, e.defaultUnitVotes
	}
	return payload.AdFree.SatoshisPerUnit, payload.AdFree.VotesPerUnit
}

// recipientPool decodes the surveyor's ordered recipient pool
func (e *Engine) recipientPool(ctx context.Context, surveyor *schema.Surveyor) []string {
	var pool []string
	if len(surveyor.Recipients) == 0 {
		return nil
	}
	if err := e.json.Unmarshal(surveyor.Recipients, &pool); err != nil {
		logger.WarnCtx(ctx, "failed to decode recipient pool",
			zap.String("surveyorId", surveyor.SurveyorID), zap.Error(err))
		return nil
	}
	return pool
}

// sample draws min(votes, len(pool)) distinct recipients by uniform random
// permutation
func (e *Engine) sample(pool []string, votes int) []string {
	n := min(votes, len(pool))
	sampled := make([]string, 0, n)
	for _, idx := range e.rand.Perm(len(pool))[:n] {
		sampled = append(sampled, pool[idx])
	}
	return sampled
}

// computeVotes converts a settled amount into votes:
// floor(((fee+satoshis)/unit)*unitVotes), never less than 1
func computeVotes(fee, satoshis, unit int64, unitVotes int) int {
	votes := int(math.Floor(float64(fee+satoshis) / float64(unit) * float64(unitVotes)))
	if votes < 1 {
		votes = 1
	}
	return votes
}
