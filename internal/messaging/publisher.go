package messaging

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
)

// Publisher defines the interface for publishing ledger reports
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishContribution publishes a settled-contribution report
	PublishContribution(ctx context.Context, report *domain.ContributionReport) error
	// PublishPledge publishes a recorded-pledge report
	PublishPledge(ctx context.Context, report *domain.PledgeReport) error
	// PublishPledgeUpdate publishes a pledge state-change report
	PublishPledgeUpdate(ctx context.Context, report *domain.PledgeReport) error
	// PublishWallet publishes a wallet balance observation report
	PublishWallet(ctx context.Context, report *domain.WalletReport) error
	// Close closes the underlying connection
	Close()
}

// PublishAsync runs publish on its own goroutine with exponential backoff.
// Reports are at-least-once and consumed out of band; delivery never gates
// the caller's reply, so failures are logged and dropped after the retry
// window closes
func PublishAsync(name string, publish func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 500 * time.Millisecond
		b.MaxInterval = 15 * time.Second
		b.MaxElapsedTime = 1 * time.Minute

		operation := func() error {
			return publish(ctx)
		}

		if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
			logger.Error(err, zap.String("message", "failed to publish report"), zap.String("report", name))
		}
	}()
}
