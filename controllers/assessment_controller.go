package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /assessments?limit=N — triage history, most recent first
func ListAssessments(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	history, err := services.ListAssessments(config.DB, uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}
