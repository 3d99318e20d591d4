package models

import (
	"time"

	"gorm.io/gorm"
)

// CheckIn is one daily health snapshot. At most one row exists per
// (user, day); a resubmission for the same day overwrites the old values.
type CheckIn struct {
	gorm.Model
	UserID         uint      `gorm:"not null;uniqueIndex:uidx_checkins_user_day"`
	User           User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Day            time.Time `gorm:"type:date;not null;uniqueIndex:uidx_checkins_user_day" json:"day"`
	SymptomScore   int       `gorm:"not null" json:"symptom_score"` // 0..10 slider
	FeverCelsius   *float64  `gorm:"column:fever" json:"fever,omitempty"`
	SpO2Percent    *int      `gorm:"column:spo2" json:"spo2,omitempty"`
	TookMedication bool      `gorm:"column:took_meds" json:"took_meds"`
	Notes          string    `gorm:"type:text" json:"notes"`
}
