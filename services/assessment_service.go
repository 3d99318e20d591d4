package services

import (
	"encoding/json"

	"backend/models"
	"backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ArchiveAssessment stores a classified intake for the user's history.
// Assessments are immutable once written.
func ArchiveAssessment(db *gorm.DB, userID uint, ra utils.RiskAssessment) (*models.Assessment, error) {
	steps, err := json.Marshal(ra.Steps)
	if err != nil {
		return nil, err
	}

	assessment := models.Assessment{
		UserID:   userID,
		RiskTier: string(ra.Tier),
		Score:    ra.Score,
		Steps:    datatypes.JSON(steps),
	}
	if err := db.Create(&assessment).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

// ListAssessments returns the user's assessment history, most recent
// first. limit <= 0 means no limit.
func ListAssessments(db *gorm.DB, userID uint, limit int) ([]models.Assessment, error) {
	q := db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []models.Assessment
	return out, q.Find(&out).Error
}
