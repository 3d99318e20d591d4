package services

import (
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm/clause"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

type CheckinInput struct {
	SymptomScore   int      `json:"symptom_score" binding:"min=0,max=10"`
	FeverCelsius   *float64 `json:"fever"`
	SpO2Percent    *int     `json:"spo2"`
	TookMedication bool     `json:"took_meds"`
	Notes          string   `json:"notes"`
}

// UpsertCheckin stores the check-in for (user, day @ local midnight) as a
// single INSERT ... ON CONFLICT DO UPDATE. Two tabs racing on the same
// day can never produce two rows; the last write wins.
func UpsertCheckin(userID uint, day time.Time, in CheckinInput) (*models.CheckIn, error) {
	entry := models.CheckIn{
		UserID:         userID,
		Day:            dayStartLocal(day),
		SymptomScore:   in.SymptomScore,
		FeverCelsius:   in.FeverCelsius,
		SpO2Percent:    in.SpO2Percent,
		TookMedication: in.TookMedication,
		Notes:          in.Notes,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"symptom_score", "fever", "spo2", "took_meds", "notes", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	// re-read so the caller sees the surviving row, whichever write won
	err = config.DB.Where("user_id = ? AND day = ?", userID, entry.Day).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListRecentCheckins returns up to limit entries ordered by day
// descending, for the progress chart. limit <= 0 falls back to 30.
func ListRecentCheckins(userID uint, limit int) ([]models.CheckIn, error) {
	if limit <= 0 {
		limit = 30
	}
	var entries []models.CheckIn
	err := config.DB.
		Where("user_id = ?", userID).
		Order("day desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// HasEntryToday reports whether the user already checked in on the
// calendar day containing now.
func HasEntryToday(userID uint, now time.Time) (bool, error) {
	var n int64
	err := config.DB.Model(&models.CheckIn{}).
		Where("user_id = ? AND day = ?", userID, dayStartLocal(now)).
		Count(&n).Error
	return n > 0, err
}

// ReminderDue reports whether the daily reminder should show: the user's
// configured "HH:MM" has passed on the local wall clock and no check-in
// exists yet for today. Derived on demand, never stored.
func ReminderDue(reminderTime string, now time.Time, hasEntryToday bool) bool {
	if hasEntryToday || reminderTime == "" {
		return false
	}
	at, err := time.Parse("15:04", reminderTime)
	if err != nil {
		return false
	}
	mark := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	return !now.Before(mark)
}
