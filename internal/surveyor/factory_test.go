package surveyor_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/mocks"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
	"github.com/gratia-labs/patron-ledger/internal/surveyor"
)

func testTemplate() *surveyor.TemplatePayload {
	return &surveyor.TemplatePayload{
		AdFree: surveyor.AdFreeTemplate{
			Fee:          map[string]float64{"USD": 5.00, "EUR": 4.50},
			VotesPerUnit: 10,
		},
	}
}

func TestFactory_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := surveyor.NewFactory(mocks.NewMockStore(ctrl), mocks.NewMockTable(ctrl), adapter.NewJSON())

	assert.NoError(t, factory.Validate(schema.SurveyorTypeContribution, testTemplate()))

	assert.Error(t, factory.Validate("unknown", testTemplate()))
	assert.Error(t, factory.Validate(schema.SurveyorTypeContribution, nil))

	noFee := testTemplate()
	noFee.AdFree.Fee = nil
	assert.Error(t, factory.Validate(schema.SurveyorTypeContribution, noFee))

	zeroFee := testTemplate()
	zeroFee.AdFree.Fee = map[string]float64{"USD": 0}
	assert.Error(t, factory.Validate(schema.SurveyorTypeContribution, zeroFee))

	noVotes := testTemplate()
	noVotes.AdFree.VotesPerUnit = 0
	assert.Error(t, factory.Validate(schema.SurveyorTypeContribution, noVotes))
}

func TestFactory_Enumerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rateTable := mocks.NewMockTable(ctrl)
	factory := surveyor.NewFactory(mocks.NewMockStore(ctrl), rateTable, adapter.NewJSON())

	ctx := context.Background()

	// GBP is priced but not in the template; EUR is in the template but not
	// priced; only USD lands in the enumeration
	rateTable.EXPECT().
		Currencies(ctx).
		Return([]string{"GBP", "USD"}, nil)
	rateTable.EXPECT().
		Rate(ctx, "USD").
		Return(100000.0, true, nil)

	enumerated, err := factory.Enumerate(ctx, testTemplate())

	require.NoError(t, err)
	require.NotNil(t, enumerated)
	require.Len(t, enumerated.Variants, 1)
	assert.Equal(t, "USD", enumerated.Variants[0].Currency)
	assert.Equal(t, int64(500000), enumerated.Variants[0].SatoshisPerUnit)
	assert.Equal(t, 10, enumerated.Variants[0].VotesPerUnit)
}

func TestFactory_Enumerate_NoPricedCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rateTable := mocks.NewMockTable(ctrl)
	factory := surveyor.NewFactory(mocks.NewMockStore(ctrl), rateTable, adapter.NewJSON())

	ctx := context.Background()

	rateTable.EXPECT().
		Currencies(ctx).
		Return([]string{"JPY"}, nil)

	enumerated, err := factory.Enumerate(ctx, testTemplate())

	require.NoError(t, err)
	assert.Nil(t, enumerated)
}

func TestFactory_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mocks.NewMockStore(ctrl)
	factory := surveyor.NewFactory(s, mocks.NewMockTable(ctrl), adapter.NewJSON())

	ctx := context.Background()
	enumerated := &surveyor.EnumeratedPayload{
		Template: *testTemplate(),
		Variants: []surveyor.Variant{
			{Currency: "USD", SatoshisPerUnit: 500000, VotesPerUnit: 10},
			{Currency: "EUR", SatoshisPerUnit: 450000, VotesPerUnit: 10},
		},
	}

	var persisted *schema.Surveyor
	s.EXPECT().
		CreateSurveyor(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, sv *schema.Surveyor) error {
			persisted = sv
			return nil
		})

	created, err := factory.Create(ctx, schema.SurveyorTypeContribution, enumerated, 25)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Same(t, persisted, created)

	_, err = uuid.Parse(created.SurveyorID)
	assert.NoError(t, err)
	assert.Equal(t, schema.SurveyorTypeContribution, created.SurveyorType)
	assert.True(t, created.Active)

	// the first variant prices the regenerated surveyor
	var pricing domain.SurveyorPayload
	require.NoError(t, adapter.NewJSON().Unmarshal(created.Payload, &pricing))
	assert.Equal(t, int64(500000), pricing.AdFree.SatoshisPerUnit)
	assert.Equal(t, 10, pricing.AdFree.VotesPerUnit)

	var pool []string
	require.NoError(t, adapter.NewJSON().Unmarshal(created.Recipients, &pool))
	require.Len(t, pool, 25)
	for _, id := range pool {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}

func TestFactory_Create_DefaultPoolSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mocks.NewMockStore(ctrl)
	factory := surveyor.NewFactory(s, mocks.NewMockTable(ctrl), adapter.NewJSON())

	ctx := context.Background()
	enumerated := &surveyor.EnumeratedPayload{
		Template: *testTemplate(),
		Variants: []surveyor.Variant{
			{Currency: "USD", SatoshisPerUnit: 500000, VotesPerUnit: 10},
		},
	}

	s.EXPECT().
		CreateSurveyor(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, sv *schema.Surveyor) error {
			var pool []string
			require.NoError(t, adapter.NewJSON().Unmarshal(sv.Recipients, &pool))
			assert.Len(t, pool, surveyor.DefaultPoolSize)
			return nil
		})

	_, err := factory.Create(ctx, schema.SurveyorTypeContribution, enumerated, 0)
	require.NoError(t, err)
}

func TestFactory_Create_EmptyEnumeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := surveyor.NewFactory(mocks.NewMockStore(ctrl), mocks.NewMockTable(ctrl), adapter.NewJSON())

	_, err := factory.Create(context.Background(), schema.SurveyorTypeContribution, nil, 10)
	assert.Error(t, err)

	_, err = factory.Create(context.Background(), schema.SurveyorTypeContribution, &surveyor.EnumeratedPayload{}, 10)
	assert.Error(t, err)
}
