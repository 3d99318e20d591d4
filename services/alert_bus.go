package services

import (
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitTriageAlert records an alert for a concerning triage outcome and
// fans it out over websocket and push. Safe to call anywhere; a no-op
// until InitAlertDeps runs.
func EmitTriageAlert(userID uint, tier utils.RiskTier, message string) {
	if _alert.db == nil {
		return // not initialized
	}

	typ := "info"
	if tier == utils.TierEmergency {
		typ = "warning"
	}

	a := &models.Alert{
		UserID:    userID,
		Type:      typ,
		RiskTier:  string(tier),
		Message:   message,
		CreatedAt: time.Now(),
	}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		title := fmt.Sprintf("Risk level: %s", tier)
		_alert.ps.PushToUser(userID, title, message, map[string]string{
			"type": typ, "tier": string(tier), "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}
