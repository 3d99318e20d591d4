package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	Intake *services.IntakeService
}

func NewIntakeController(svc *services.IntakeService) *IntakeController {
	return &IntakeController{Intake: svc}
}

// POST /intake/start
func (ic *IntakeController) Start(c *gin.Context) {
	uid := c.GetUint("userID")

	state, err := ic.Intake.Start(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// GET /intake
func (ic *IntakeController) Current(c *gin.Context) {
	uid := c.GetUint("userID")

	state, err := ic.Intake.Current(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoIntakeSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

type answerInput struct {
	Token string `json:"token" binding:"required"`
	Value any    `json:"value"`
}

// POST /intake/answer
//
// A type-invalid answer is not an error: the response carries
// accepted=false and the same question so the client re-prompts.
func (ic *IntakeController) SubmitAnswer(c *gin.Context) {
	uid := c.GetUint("userID")

	var input answerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := ic.Intake.SubmitAnswer(uid, input.Token, input.Value)
	if err != nil {
		ic.renderIntakeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type completeInput struct {
	Token string `json:"token" binding:"required"`
}

// POST /intake/complete
func (ic *IntakeController) Complete(c *gin.Context) {
	uid := c.GetUint("userID")

	var input completeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ic.Intake.Complete(uid, input.Token)
	if err != nil {
		ic.renderIntakeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /intake/reset
func (ic *IntakeController) Reset(c *gin.Context) {
	uid := c.GetUint("userID")

	state, err := ic.Intake.Reset(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (ic *IntakeController) renderIntakeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoIntakeSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStaleIntakeToken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrIntakeNotComplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
