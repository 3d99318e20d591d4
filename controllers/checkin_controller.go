package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// POST /checkins — save (or overwrite) today's check-in
func UpsertCheckin(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CheckinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.UpsertCheckin(uid, time.Now(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GET /checkins?limit=N — recent entries, newest day first
func ListCheckins(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	entries, err := services.ListRecentCheckins(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GET /checkins/reminder — is the daily reminder due right now?
func ReminderStatus(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	now := time.Now()
	hasEntry, err := services.HasEntryToday(uid, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"due":           services.ReminderDue(user.ReminderTime, now, hasEntry),
		"reminder_time": user.ReminderTime,
		"checked_in":    hasEntry,
	})
}

// POST /checkins/remind — send the reminder mail if it is due
func SendReminder(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	now := time.Now()
	hasEntry, err := services.HasEntryToday(uid, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !services.ReminderDue(user.ReminderTime, now, hasEntry) {
		c.JSON(http.StatusOK, gin.H{"sent": false, "message": "reminder not due"})
		return
	}

	if err := utils.SendCheckinReminderEmail(user.Email, user.FullName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
