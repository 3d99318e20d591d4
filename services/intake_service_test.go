package services

import (
	"testing"

	"backend/models"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeStartAndCurrent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "intake@example.com")
	svc := NewIntakeService(db)

	state, err := svc.Start(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, state.Token)
	assert.Equal(t, 0, state.Cursor)
	assert.Equal(t, 7, state.Total)
	assert.False(t, state.Done)
	require.NotNil(t, state.Question)
	assert.Equal(t, "temperature", state.Question.Key)

	cur, err := svc.Current(user.ID)
	require.NoError(t, err)
	assert.Equal(t, state.Token, cur.Token)
	assert.Equal(t, 0, cur.Cursor)
}

func TestIntakeCurrentWithoutSession(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "nosession@example.com")
	svc := NewIntakeService(db)

	_, err := svc.Current(user.ID)
	assert.ErrorIs(t, err, ErrNoIntakeSession)
}

func TestIntakeRejectsStaleToken(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "stale@example.com")
	svc := NewIntakeService(db)

	first, err := svc.Start(user.ID)
	require.NoError(t, err)

	// a second Start (say, another tab) rotates the token
	second, err := svc.Start(user.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, err = svc.SubmitAnswer(user.ID, first.Token, 37.0)
	assert.ErrorIs(t, err, ErrStaleIntakeToken)

	state, err := svc.SubmitAnswer(user.ID, second.Token, 37.0)
	require.NoError(t, err)
	assert.True(t, state.Accepted)
	assert.Equal(t, 1, state.Cursor)
}

func TestIntakeRejectedAnswerDoesNotAdvance(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "reject@example.com")
	svc := NewIntakeService(db)

	start, err := svc.Start(user.ID)
	require.NoError(t, err)

	state, err := svc.SubmitAnswer(user.ID, start.Token, "not a number")
	require.NoError(t, err, "a bad answer re-prompts, it is not a failure")
	assert.False(t, state.Accepted)
	assert.Equal(t, 0, state.Cursor)
	require.NotNil(t, state.Question)
	assert.Equal(t, "temperature", state.Question.Key)
}

func TestIntakeFullRunArchivesAssessment(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "fullrun@example.com")
	svc := NewIntakeService(db)

	start, err := svc.Start(user.ID)
	require.NoError(t, err)
	token := start.Token

	// fever, fine oxygen, cough+headache+sore throat, no exposure, no SOB
	answers := []any{38.5, 98.0, true, true, true, false, false}
	var state *IntakeState
	for _, a := range answers {
		state, err = svc.SubmitAnswer(user.ID, token, a)
		require.NoError(t, err)
		require.True(t, state.Accepted)
	}
	assert.True(t, state.Done)
	assert.Equal(t, 7, state.Cursor)

	// the eighth answer is rejected, not an error
	state, err = svc.SubmitAnswer(user.ID, token, true)
	require.NoError(t, err)
	assert.False(t, state.Accepted)
	assert.Equal(t, 7, state.Cursor)

	result, err := svc.Complete(user.ID, token)
	require.NoError(t, err)
	assert.Equal(t, utils.TierModerate, result.Tier)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, utils.TierSteps(utils.TierModerate), result.Steps)

	history, err := ListAssessments(db, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, string(utils.TierModerate), history[0].RiskTier)
	assert.Equal(t, 4, history[0].Score)
	assert.Equal(t, result.AssessmentID, history[0].ID)

	// completing resets the session for the next run
	cur, err := svc.Current(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, cur.Cursor)
	assert.False(t, cur.Done)
	assert.NotEqual(t, token, cur.Token)
}

func TestIntakeCompleteRequiresAllAnswers(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "early@example.com")
	svc := NewIntakeService(db)

	start, err := svc.Start(user.ID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(user.ID, start.Token, 37.0)
	require.NoError(t, err)

	_, err = svc.Complete(user.ID, start.Token)
	assert.ErrorIs(t, err, ErrIntakeNotComplete)
}

func TestIntakeEmergencyRunRaisesAlert(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "emergency@example.com")
	svc := NewIntakeService(db)
	InitAlertDeps(db, nil, nil)
	t.Cleanup(func() { InitAlertDeps(nil, nil, nil) })

	start, err := svc.Start(user.ID)
	require.NoError(t, err)
	token := start.Token

	// SpO2 of 85 alone is the red-flag condition
	answers := []any{37.0, 85.0, false, false, false, false, false}
	for _, a := range answers {
		state, err := svc.SubmitAnswer(user.ID, token, a)
		require.NoError(t, err)
		require.True(t, state.Accepted)
	}

	result, err := svc.Complete(user.ID, token)
	require.NoError(t, err)
	assert.Equal(t, utils.TierEmergency, result.Tier)

	var alerts []models.Alert
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&alerts).Error)
	require.Len(t, alerts, 1)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Equal(t, string(utils.TierEmergency), alerts[0].RiskTier)
	assert.Equal(t, "Seek emergency medical care immediately.", alerts[0].Message)
}
