package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestUpsertCheckinOverwritesSameDay(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "checkin@example.com")

	now := time.Now()

	first, err := UpsertCheckin(user.ID, now, CheckinInput{
		SymptomScore: 3,
		FeverCelsius: floatPtr(37.8),
		Notes:        "mild",
	})
	require.NoError(t, err)

	second, err := UpsertCheckin(user.ID, now, CheckinInput{
		SymptomScore:   7,
		SpO2Percent:    intPtr(95),
		TookMedication: true,
		Notes:          "worse in the evening",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same day must reuse the row")

	entries, err := ListRecentCheckins(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1, "two submissions for one day must leave one row")

	got := entries[0]
	assert.Equal(t, 7, got.SymptomScore)
	assert.Nil(t, got.FeverCelsius, "second write wins wholesale")
	require.NotNil(t, got.SpO2Percent)
	assert.Equal(t, 95, *got.SpO2Percent)
	assert.True(t, got.TookMedication)
	assert.Equal(t, "worse in the evening", got.Notes)
}

func TestUpsertCheckinKeepsUsersSeparate(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	now := time.Now()
	_, err := UpsertCheckin(alice.ID, now, CheckinInput{SymptomScore: 2})
	require.NoError(t, err)
	_, err = UpsertCheckin(bob.ID, now, CheckinInput{SymptomScore: 9})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&models.CheckIn{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestListRecentCheckinsOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "history@example.com")

	now := time.Now()
	for days := 4; days >= 0; days-- {
		_, err := UpsertCheckin(user.ID, now.AddDate(0, 0, -days), CheckinInput{
			SymptomScore: days, // older entries have higher scores
		})
		require.NoError(t, err)
	}

	entries, err := ListRecentCheckins(user.ID, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// newest day first
	assert.Equal(t, 0, entries[0].SymptomScore)
	assert.Equal(t, 1, entries[1].SymptomScore)
	assert.Equal(t, 2, entries[2].SymptomScore)
	assert.True(t, entries[0].Day.After(entries[1].Day))
	assert.True(t, entries[1].Day.After(entries[2].Day))
}

func TestHasEntryToday(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "today@example.com")

	now := time.Now()
	has, err := HasEntryToday(user.ID, now)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = UpsertCheckin(user.ID, now.AddDate(0, 0, -1), CheckinInput{SymptomScore: 1})
	require.NoError(t, err)
	has, err = HasEntryToday(user.ID, now)
	require.NoError(t, err)
	assert.False(t, has, "yesterday's entry does not count")

	_, err = UpsertCheckin(user.ID, now, CheckinInput{SymptomScore: 1})
	require.NoError(t, err)
	has, err = HasEntryToday(user.ID, now)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestReminderDue(t *testing.T) {
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		reminder string
		now      time.Time
		hasEntry bool
		want     bool
	}{
		{"past reminder, no entry", "09:00", noon, false, true},
		{"exactly at reminder", "12:00", noon, false, true},
		{"before reminder", "18:30", noon, false, false},
		{"already checked in", "09:00", noon, true, false},
		{"no reminder configured", "", noon, false, false},
		{"garbage reminder value", "9 o'clock", noon, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReminderDue(tt.reminder, tt.now, tt.hasEntry))
		})
	}
}
