package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FullName       string
	ReminderTime   string `gorm:"size:5"` // "HH:MM", local to the user
	ProfilePicture string
	Disabled       bool `gorm:"default:false"`
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
}
