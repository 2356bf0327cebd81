package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Viewing represents the viewings table - the vote allocation resulting from
// one settled contribution. Keyed by the client-supplied viewing identifier;
// a retried settlement overwrites the previous allocation
type Viewing struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ViewingID is the client-supplied idempotency key
	ViewingID string `gorm:"column:viewing_id;not null;uniqueIndex;type:text"`
	// UID is the one-way anonymized derivation of ViewingID
	UID string `gorm:"column:u_id;not null;type:text"`
	// SurveyorID is the contribution surveyor the settlement drew from
	SurveyorID string `gorm:"column:surveyor_id;not null;type:text"`
	// SurveyorIDs is the sampled distinct recipient subset
	SurveyorIDs datatypes.JSON `gorm:"column:surveyor_ids;not null;type:jsonb"`
	// Satoshis is the settled contribution amount
	Satoshis int64 `gorm:"column:satoshis;not null"`
	// Count is the computed vote count, which may exceed len(SurveyorIDs)
	// when the recipient pool was undersized
	Count int `gorm:"column:count;not null"`
	// CreatedAt is the timestamp when this viewing was first recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this viewing was last overwritten
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Viewing model
func (Viewing) TableName() string {
	return "viewings"
}
