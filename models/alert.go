package models

import "time"

type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "warning" | "info"
	RiskTier  string    `gorm:"size:16"` // tier that triggered it, if any
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
