package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SurveyorType identifies the kind of surveyor
type SurveyorType string

const (
	// SurveyorTypeContribution represents contribution surveyors
	SurveyorTypeContribution SurveyorType = "contribution"
)

// Surveyor represents the surveyors table - a named batch of recipient
// identifiers plus the pricing used to convert settled satoshis to votes
type Surveyor struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SurveyorID is the public surveyor identifier
	SurveyorID string `gorm:"column:surveyor_id;not null;uniqueIndex;type:text"`
	// SurveyorType identifies the kind of surveyor
	SurveyorType SurveyorType `gorm:"column:surveyor_type;not null;type:text;index:idx_surveyors_type_active,priority:1"`
	// Active marks surveyors eligible for settlement and regeneration
	Active bool `gorm:"column:active;not null;default:false;index:idx_surveyors_type_active,priority:2"`
	// Payload holds the pricing payload, e.g. {"adFree":{"satoshisPerUnit":...,"votesPerUnit":...}}
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// Recipients is the ordered recipient-identifier pool votes are sampled from
	Recipients datatypes.JSON `gorm:"column:recipients;type:jsonb"`
	// CreatedAt is the timestamp when this surveyor was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Surveyor model
func (Surveyor) TableName() string {
	return "surveyors"
}
