package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func RegisterUser(email, password, fullName, reminderTime string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if reminderTime == "" {
		reminderTime = "09:00"
	}
	if _, err := time.Parse("15:04", reminderTime); err != nil {
		return errors.New("reminder_time must be HH:MM")
	}

	user := models.User{
		Email:        email,
		Password:     hashedPassword,
		FullName:     fullName,
		ReminderTime: reminderTime,
		Disabled:     false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}
