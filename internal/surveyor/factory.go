package surveyor

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/rates"
	"github.com/gratia-labs/patron-ledger/internal/store"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

// DefaultPoolSize is the recipient pool size used when a template carries
// no pool of its own
const DefaultPoolSize = 50

// TemplatePayload is the pricing template a surveyor is regenerated from.
// Fee maps fiat currency codes to the per-unit price in that currency
type TemplatePayload struct {
	AdFree AdFreeTemplate `json:"adFree" validate:"required"`
}

// AdFreeTemplate prices a contribution unit in fiat
type AdFreeTemplate struct {
	Fee          map[string]float64 `json:"fee" validate:"required,min=1,dive,gt=0"`
	VotesPerUnit int                `json:"votesPerUnit" validate:"required,gt=0"`
}

// Variant is a template fee resolved against the rate table for one currency
type Variant struct {
	Currency        string `json:"currency"`
	SatoshisPerUnit int64  `json:"satoshisPerUnit"`
	VotesPerUnit    int    `json:"votesPerUnit"`
}

// EnumeratedPayload is the template resolved into one variant per priced
// currency. The first variant prices the regenerated surveyor
type EnumeratedPayload struct {
	Template TemplatePayload
	Variants []Variant
}

// Factory validates surveyor templates, enumerates them against the rate
// table and creates regenerated surveyor records
//
//go:generate mockgen -source=factory.go -destination=../mocks/surveyor_factory.go -package=mocks -mock_names=Factory=MockFactory
type Factory interface {
	// Validate checks a template payload against the type's schema
	Validate(surveyorType schema.SurveyorType, payload *TemplatePayload) error

	// Enumerate resolves a template into one variant per currency priced
	// by the rate table. A nil result means no currency is priced
	Enumerate(ctx context.Context, payload *TemplatePayload) (*EnumeratedPayload, error)

	// Create persists a new active surveyor from an enumerated payload,
	// with a fresh recipient pool of the given size
	Create(ctx context.Context, surveyorType schema.SurveyorType, payload *EnumeratedPayload, poolSize int) (*schema.Surveyor, error)
}

type factory struct {
	store    store.Store
	rates    rates.Table
	json     adapter.JSON
	validate *validator.Validate
}

// NewFactory creates a new surveyor factory
func NewFactory(s store.Store, rateTable rates.Table, jsonAdapter adapter.JSON) Factory {
	return &factory{
		store:    s,
		rates:    rateTable,
		json:     jsonAdapter,
		validate: validator.New(),
	}
}

// Validate checks a template payload against the type's schema
func (f *factory) Validate(surveyorType schema.SurveyorType, payload *TemplatePayload) error {
	if surveyorType != schema.SurveyorTypeContribution {
		return fmt.Errorf("unsupported surveyor type %q", surveyorType)
	}
	if payload == nil {
		return fmt.Errorf("missing payload")
	}
	if err := f.validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

// Enumerate resolves a template into one variant per currency priced by the
// rate table
func (f *factory) Enumerate(ctx context.Context, payload *TemplatePayload) (*EnumeratedPayload, error) {
	priced, err := f.rates.Currencies(ctx)
	if err != nil {
		return nil, err
	}

	var variants []Variant
	for _, currency := range priced {
		fee, ok := payload.AdFree.Fee[currency]
		if !ok {
			continue
		}

		rate, found, err := f.rates.Rate(ctx, currency)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		variants = append(variants, Variant{
			Currency:        currency,
			SatoshisPerUnit: rates.ToSatoshis(fee, rate),
			VotesPerUnit:    payload.AdFree.VotesPerUnit,
		})
	}

	if len(variants) == 0 {
		return nil, nil
	}

	return &EnumeratedPayload{Template: *payload, Variants: variants}, nil
}

// Create persists a new active surveyor from an enumerated payload
func (f *factory) Create(ctx context.Context, surveyorType schema.SurveyorType, payload *EnumeratedPayload, poolSize int) (*schema.Surveyor, error) {
	if payload == nil || len(payload.Variants) == 0 {
		return nil, fmt.Errorf("nothing to create from an empty enumeration")
	}
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}

	primary := payload.Variants[0]
	pricing := domain.SurveyorPayload{
		AdFree: domain.AdFreePricing{
			SatoshisPerUnit: primary.SatoshisPerUnit,
			VotesPerUnit:    primary.VotesPerUnit,
		},
	}

	payloadJSON, err := f.json.Marshal(struct {
		domain.SurveyorPayload
		Fee      map[string]float64 `json:"fee"`
		Variants []Variant          `json:"variants"`
	}{
		SurveyorPayload: pricing,
		Fee:             payload.Template.AdFree.Fee,
		Variants:        payload.Variants,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal surveyor payload: %w", err)
	}

	pool := make([]string, poolSize)
	for i := range pool {
		pool[i] = uuid.NewString()
	}
	poolJSON, err := f.json.Marshal(pool)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipient pool: %w", err)
	}

	surveyor := &schema.Surveyor{
		SurveyorID:   uuid.NewString(),
		SurveyorType: surveyorType,
		Active:       true,
		Payload:      payloadJSON,
		Recipients:   poolJSON,
	}
	if err := f.store.CreateSurveyor(ctx, surveyor); err != nil {
		return nil, err
	}

	return surveyor, nil
}
