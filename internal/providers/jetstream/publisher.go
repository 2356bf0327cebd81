package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/messaging"
)

// Report subjects
const (
	SubjectContribution = "reports.contribution"
	SubjectPledge       = "reports.pledge"
	SubjectPledgeUpdate = "reports.pledge_update"
	SubjectWallet       = "reports.wallet"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishContribution publishes a settled-contribution report
func (p *publisher) PublishContribution(ctx context.Context, report *domain.ContributionReport) error {
	report.ReportID = ulid.Make().String()
	return p.publish(ctx, SubjectContribution, report)
}

// PublishPledge publishes a recorded-pledge report
func (p *publisher) PublishPledge(ctx context.Context, report *domain.PledgeReport) error {
	report.ReportID = ulid.Make().String()
	return p.publish(ctx, SubjectPledge, report)
}

// PublishPledgeUpdate publishes a pledge state-change report
func (p *publisher) PublishPledgeUpdate(ctx context.Context, report *domain.PledgeReport) error {
	report.ReportID = ulid.Make().String()
	return p.publish(ctx, SubjectPledgeUpdate, report)
}

// PublishWallet publishes a wallet balance observation report
func (p *publisher) PublishWallet(ctx context.Context, report *domain.WalletReport) error {
	report.ReportID = ulid.Make().String()
	return p.publish(ctx, SubjectWallet, report)
}

func (p *publisher) publish(ctx context.Context, subject string, report interface{}) error {
	logger.Debug("Publishing report", zap.String("subject", subject), zap.Any("report", report))

	data, err := p.json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
