package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService, intake *services.IntakeService) *gin.Engine {
	r := gin.Default()

	intakeCtl := controllers.NewIntakeController(intake)
	realtimeCtl := controllers.NewRealtimeController(rt)
	deviceCtl := controllers.NewDeviceController(ps)
	devCtl := controllers.NewDevController(ps)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	// Symptom intake (the "AI doctor" conversation)
	in := r.Group("/intake")
	in.Use(middlewares.AuthMiddleware())
	{
		in.POST("/start", intakeCtl.Start)
		in.GET("", intakeCtl.Current)
		in.POST("/answer", intakeCtl.SubmitAnswer)
		in.POST("/complete", intakeCtl.Complete)
		in.POST("/reset", intakeCtl.Reset)
	}

	// Triage history
	assessments := r.Group("/assessments")
	assessments.Use(middlewares.AuthMiddleware())
	{
		assessments.GET("", controllers.ListAssessments)
	}

	// Daily check-ins and the progress feed
	checkins := r.Group("/checkins")
	checkins.Use(middlewares.AuthMiddleware())
	{
		checkins.POST("", controllers.UpsertCheckin)
		checkins.GET("", controllers.ListCheckins)
		checkins.GET("/reminder", controllers.ReminderStatus)
		checkins.POST("/remind", controllers.SendReminder)
	}

	// Realtime alerts + device registration
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtimeCtl.AlertsWS)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", deviceCtl.Register)
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/push-test", devCtl.PushTest)
	}

	return r
}
