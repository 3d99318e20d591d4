package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNoIntakeSession   = errors.New("no intake session in progress")
	ErrStaleIntakeToken  = errors.New("intake token does not match the active session")
	ErrIntakeNotComplete = errors.New("intake still has unanswered questions")
)

// IntakeService persists one sequencer per user. Each Start rotates the
// session token, so a second tab holding an old token cannot interleave
// answers into a fresh intake.
type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db}
}

// IntakeState is what handlers return to the client after every
// sequencer operation.
type IntakeState struct {
	Token    string    `json:"token"`
	Cursor   int       `json:"cursor"`
	Total    int       `json:"total"`
	Done     bool      `json:"done"`
	Accepted bool      `json:"accepted"`
	Question *Question `json:"question,omitempty"`
}

// IntakeResult is the outcome of a completed intake.
type IntakeResult struct {
	AssessmentID uint           `json:"assessment_id"`
	Tier         utils.RiskTier `json:"tier"`
	Score        int            `json:"score"`
	Steps        []string       `json:"steps"`
}

func intakeState(sess *models.IntakeSession, seq *Sequencer, accepted bool) *IntakeState {
	return &IntakeState{
		Token:    sess.Token,
		Cursor:   seq.Cursor,
		Total:    len(IntakeQuestions),
		Done:     seq.Done(),
		Accepted: accepted,
		Question: seq.Current(),
	}
}

// Start begins a fresh intake for the user, replacing any session already
// in progress.
func (s *IntakeService) Start(userID uint) (*IntakeState, error) {
	sess := models.IntakeSession{
		UserID: userID,
		Token:  uuid.NewString(),
		Cursor: 0,
		Record: datatypes.JSON([]byte(`{}`)),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "cursor", "record", "updated_at"}),
	}).Create(&sess).Error
	if err != nil {
		return nil, err
	}
	if err := s.db.Where("user_id = ?", userID).First(&sess).Error; err != nil {
		return nil, err
	}
	return intakeState(&sess, &Sequencer{}, false), nil
}

func (s *IntakeService) load(userID uint) (*models.IntakeSession, *Sequencer, error) {
	var sess models.IntakeSession
	if err := s.db.Where("user_id = ?", userID).First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNoIntakeSession
		}
		return nil, nil, err
	}
	seq := &Sequencer{Cursor: sess.Cursor}
	if len(sess.Record) > 0 {
		if err := json.Unmarshal(sess.Record, &seq.Record); err != nil {
			return nil, nil, fmt.Errorf("corrupt intake record: %w", err)
		}
	}
	return &sess, seq, nil
}

func (s *IntakeService) save(sess *models.IntakeSession, seq *Sequencer) error {
	raw, err := json.Marshal(seq.Record)
	if err != nil {
		return err
	}
	return s.db.Model(sess).Updates(map[string]any{
		"cursor": seq.Cursor,
		"record": datatypes.JSON(raw),
	}).Error
}

// Current reports the session state without changing it.
func (s *IntakeService) Current(userID uint) (*IntakeState, error) {
	sess, seq, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return intakeState(sess, seq, false), nil
}

// SubmitAnswer feeds one answer to the user's sequencer. A rejected
// answer is not an error: the returned state carries accepted=false and
// the unchanged cursor so the client can re-prompt.
func (s *IntakeService) SubmitAnswer(userID uint, token string, value any) (*IntakeState, error) {
	sess, seq, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	if sess.Token != token {
		return nil, ErrStaleIntakeToken
	}

	accepted := seq.SubmitAnswer(value)
	if accepted {
		if err := s.save(sess, seq); err != nil {
			return nil, err
		}
	}
	return intakeState(sess, seq, accepted), nil
}

// Complete classifies the finished intake, archives the assessment,
// raises an alert for concerning tiers and resets the session for the
// user's next run.
func (s *IntakeService) Complete(userID uint, token string) (*IntakeResult, error) {
	sess, seq, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	if sess.Token != token {
		return nil, ErrStaleIntakeToken
	}
	if !seq.Done() {
		return nil, ErrIntakeNotComplete
	}

	ra := utils.Classify(seq.Record)
	assessment, err := ArchiveAssessment(s.db, userID, ra)
	if err != nil {
		return nil, err
	}

	switch ra.Tier {
	case utils.TierEmergency, utils.TierHigh:
		EmitTriageAlert(userID, ra.Tier, ra.Steps[0])
	}

	if err := s.reset(sess); err != nil {
		return nil, err
	}

	return &IntakeResult{
		AssessmentID: assessment.ID,
		Tier:         ra.Tier,
		Score:        ra.Score,
		Steps:        ra.Steps,
	}, nil
}

// Reset discards any in-progress answers and restarts the intake.
func (s *IntakeService) Reset(userID uint) (*IntakeState, error) {
	return s.Start(userID)
}

func (s *IntakeService) reset(sess *models.IntakeSession) error {
	return s.db.Model(sess).Updates(map[string]any{
		"token":  uuid.NewString(),
		"cursor": 0,
		"record": datatypes.JSON([]byte(`{}`)),
	}).Error
}
