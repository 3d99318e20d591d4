package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IntakeSession holds the state of a user's in-progress symptom intake:
// the position in the fixed question list plus the answers collected so
// far. One session per user; starting a new intake replaces it.
type IntakeSession struct {
	gorm.Model
	UserID uint           `gorm:"uniqueIndex;not null"`
	User   User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Token  string         `gorm:"size:36;not null"` // rotated on every Start/reset
	Cursor int            `gorm:"not null;default:0"`
	Record datatypes.JSON // partially filled utils.SymptomRecord
}
