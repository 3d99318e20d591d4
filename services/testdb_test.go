package services

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory store and points the package
// global at it, matching how the services reach the database in
// production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would see a different :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Assessment{},
		&models.CheckIn{},
		&models.IntakeSession{},
		&models.Alert{},
		&models.UserDevice{},
	))

	config.DB = db
	t.Cleanup(func() { config.DB = nil })
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Password:     "x",
		FullName:     "Test User",
		ReminderTime: "09:00",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
