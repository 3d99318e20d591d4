package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment archives one completed triage run. Rows are append-only;
// history is served most-recent-first.
type Assessment struct {
	gorm.Model
	UserID   uint           `gorm:"index;not null"`
	User     User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RiskTier string         `gorm:"size:16;not null"` // LOW | MODERATE | HIGH | EMERGENCY
	Score    int            `gorm:"not null"`
	Steps    datatypes.JSON `gorm:"column:steps_json"` // ordered guidance strings
}
