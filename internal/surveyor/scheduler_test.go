package surveyor_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/mocks"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
	"github.com/gratia-labs/patron-ledger/internal/surveyor"
)

// testSchedulerMocks contains all the mocks needed for testing the scheduler
type testSchedulerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	factory   *mocks.MockFactory
	clock     *mocks.MockClock
	scheduler *surveyor.Scheduler
}

// setupTestScheduler creates all the mocks and scheduler for testing
func setupTestScheduler(t *testing.T) *testSchedulerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSchedulerMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		factory: mocks.NewMockFactory(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}

	config := &surveyor.Config{
		Schedule:        "0 0 0 * * 0,3,5",
		BatchSize:       10,
		WorkerPoolSize:  2,
		WorkerQueueSize: 10,
	}

	scheduler, err := surveyor.NewScheduler(config, tm.store, tm.factory, adapter.NewJSON(), tm.clock)
	require.NoError(t, err)
	tm.scheduler = scheduler

	return tm
}

// tearDownTestScheduler cleans up the test mocks
func tearDownTestScheduler(mocks *testSchedulerMocks) {
	mocks.ctrl.Finish()
}

func templateRecord(id string, payload string) *schema.Surveyor {
	return &schema.Surveyor{
		SurveyorID:   id,
		SurveyorType: schema.SurveyorTypeContribution,
		Active:       true,
		Payload:      datatypes.JSON(payload),
		Recipients:   datatypes.JSON(`["a","b","c"]`),
	}
}

func TestParseSchedule(t *testing.T) {
	schedule, err := surveyor.ParseSchedule("0 0 0 * * 0,3,5")
	require.NoError(t, err)

	// from a Monday the next fire lands on the following Wednesday midnight
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), schedule.Next(monday))

	// from just after a Wednesday fire the next is Friday midnight
	wednesday := time.Date(2026, 9, 2, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), schedule.Next(wednesday))
}

func TestParseSchedule_Invalid(t *testing.T) {
	_, err := surveyor.ParseSchedule("not a schedule")
	assert.Error(t, err)

	// 5-field expressions are rejected, the seconds column is required
	_, err = surveyor.ParseSchedule("0 0 * * 0")
	assert.Error(t, err)
}

func TestScheduler_StartupCycleAndStop(t *testing.T) {
	tm := setupTestScheduler(t)
	defer tearDownTestScheduler(tm)

	ctx := context.Background()

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	// the armed timer never fires, the loop blocks until Stop
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		return make(chan time.Time)
	}).AnyTimes()

	good := templateRecord("template-good", `{"adFree":{"fee":{"USD":5},"votesPerUnit":10}}`)
	enumerated := &surveyor.EnumeratedPayload{
		Variants: []surveyor.Variant{{Currency: "USD", SatoshisPerUnit: 500000, VotesPerUnit: 10}},
	}

	tm.store.EXPECT().
		ListActiveSurveyors(gomock.Any(), schema.SurveyorTypeContribution, 10).
		Return([]*schema.Surveyor{good}, nil)
	tm.factory.EXPECT().
		Validate(schema.SurveyorTypeContribution, gomock.Any()).
		Return(nil)
	tm.factory.EXPECT().
		Enumerate(gomock.Any(), gomock.Any()).
		Return(enumerated, nil)

	created := make(chan struct{}, 1)
	tm.factory.EXPECT().
		Create(gomock.Any(), schema.SurveyorTypeContribution, enumerated, 3).
		DoAndReturn(func(context.Context, schema.SurveyorType, *surveyor.EnumeratedPayload, int) (*schema.Surveyor, error) {
			created <- struct{}{}
			return &schema.Surveyor{SurveyorID: "surveyor-new"}, nil
		})

	done := make(chan error, 1)
	go func() {
		done <- tm.scheduler.Start(ctx)
	}()

	select {
	case <-created:
	case <-time.After(5 * time.Second):
		t.Fatal("startup cycle never regenerated the template")
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, tm.scheduler.Stop(stopCtx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_TemplateFailuresAreIsolated(t *testing.T) {
	tm := setupTestScheduler(t)
	defer tearDownTestScheduler(tm)

	ctx := context.Background()

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		return make(chan time.Time)
	}).AnyTimes()

	broken := templateRecord("template-broken", `not json`)
	unpriced := templateRecord("template-unpriced", `{"adFree":{"fee":{"XYZ":5},"votesPerUnit":10}}`)
	good := templateRecord("template-good", `{"adFree":{"fee":{"USD":5},"votesPerUnit":10}}`)
	enumerated := &surveyor.EnumeratedPayload{
		Variants: []surveyor.Variant{{Currency: "USD", SatoshisPerUnit: 500000, VotesPerUnit: 10}},
	}

	tm.store.EXPECT().
		ListActiveSurveyors(gomock.Any(), schema.SurveyorTypeContribution, 10).
		Return([]*schema.Surveyor{broken, unpriced, good}, nil)

	// the broken template never reaches the factory; the unpriced one stops
	// at enumeration; the good one regenerates
	tm.factory.EXPECT().
		Validate(schema.SurveyorTypeContribution, gomock.Any()).
		Return(nil).
		Times(2)
	tm.factory.EXPECT().
		Enumerate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *surveyor.TemplatePayload) (*surveyor.EnumeratedPayload, error) {
			if _, ok := payload.AdFree.Fee["USD"]; ok {
				return enumerated, nil
			}
			return nil, nil
		}).
		Times(2)

	created := make(chan struct{}, 1)
	tm.factory.EXPECT().
		Create(gomock.Any(), schema.SurveyorTypeContribution, enumerated, 3).
		DoAndReturn(func(context.Context, schema.SurveyorType, *surveyor.EnumeratedPayload, int) (*schema.Surveyor, error) {
			created <- struct{}{}
			return &schema.Surveyor{SurveyorID: "surveyor-new"}, nil
		})

	done := make(chan error, 1)
	go func() {
		done <- tm.scheduler.Start(ctx)
	}()

	select {
	case <-created:
	case <-time.After(5 * time.Second):
		t.Fatal("the healthy template was never regenerated")
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, tm.scheduler.Stop(stopCtx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_StartTwice(t *testing.T) {
	tm := setupTestScheduler(t)
	defer tearDownTestScheduler(tm)

	ctx := context.Background()

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		return make(chan time.Time)
	}).AnyTimes()

	listed := make(chan struct{}, 1)
	tm.store.EXPECT().
		ListActiveSurveyors(gomock.Any(), schema.SurveyorTypeContribution, 10).
		DoAndReturn(func(context.Context, schema.SurveyorType, int) ([]*schema.Surveyor, error) {
			listed <- struct{}{}
			return nil, nil
		})

	done := make(chan error, 1)
	go func() {
		done <- tm.scheduler.Start(ctx)
	}()

	select {
	case <-listed:
	case <-time.After(5 * time.Second):
		t.Fatal("startup cycle never ran")
	}

	assert.Error(t, tm.scheduler.Start(ctx))

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, tm.scheduler.Stop(stopCtx))
	<-done
}
