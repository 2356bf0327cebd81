package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/mocks"
	pubjetstream "github.com/gratia-labs/patron-ledger/internal/providers/jetstream"
)

func testPublisherConfig() pubjetstream.Config {
	return pubjetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "LEDGER_REPORTS",
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "test-publisher",
	}
}

func setupPublisher(t *testing.T, ctrl *gomock.Controller) (*mocks.MockNatsConn, *mocks.MockJetStream, *mocks.MockNatsJetStream) {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	return mocks.NewMockNatsConn(ctrl), mocks.NewMockJetStream(ctrl), mocks.NewMockNatsJetStream(ctrl)
}

func TestPublisher_PublishContribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc, js, natsJS := setupPublisher(t, ctrl)

	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	publisher, err := pubjetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)

	var payload []byte
	js.EXPECT().
		Publish(gomock.Any(), "reports.contribution", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjetstream.PublishOpt) (*natsjetstream.PubAck, error) {
			payload = data
			return &natsjetstream.PubAck{}, nil
		})

	report := &domain.ContributionReport{
		ViewingID:  "viewing-1",
		PaymentID:  "payment-1",
		SurveyorID: "surveyor-1",
		Votes:      10,
	}
	require.NoError(t, publisher.PublishContribution(context.Background(), report))

	// every published report carries a fresh ulid
	_, err = ulid.Parse(report.ReportID)
	assert.NoError(t, err)

	var decoded domain.ContributionReport
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, report.ReportID, decoded.ReportID)
	assert.Equal(t, "viewing-1", decoded.ViewingID)
	assert.Equal(t, 10, decoded.Votes)
}

func TestPublisher_Subjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc, js, natsJS := setupPublisher(t, ctrl)

	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	publisher, err := pubjetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)

	ctx := context.Background()

	js.EXPECT().Publish(gomock.Any(), "reports.pledge", gomock.Any()).Return(nil, nil)
	require.NoError(t, publisher.PublishPledge(ctx, &domain.PledgeReport{}))

	js.EXPECT().Publish(gomock.Any(), "reports.pledge_update", gomock.Any()).Return(nil, nil)
	require.NoError(t, publisher.PublishPledgeUpdate(ctx, &domain.PledgeReport{}))

	js.EXPECT().Publish(gomock.Any(), "reports.wallet", gomock.Any()).Return(nil, nil)
	require.NoError(t, publisher.PublishWallet(ctx, &domain.WalletReport{}))
}

func TestPublisher_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc, js, natsJS := setupPublisher(t, ctrl)

	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	publisher, err := pubjetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)

	js.EXPECT().
		Publish(gomock.Any(), "reports.wallet", gomock.Any()).
		Return(nil, errors.New("no responders"))

	err = publisher.PublishWallet(context.Background(), &domain.WalletReport{})
	assert.Error(t, err)
}

func TestPublisher_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, natsJS := setupPublisher(t, ctrl)

	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	_, err := pubjetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
	assert.Error(t, err)
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc, js, natsJS := setupPublisher(t, ctrl)

	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)
	nc.EXPECT().Close()

	publisher, err := pubjetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)

	publisher.Close()
}
