package utils

// Triage engine: maps one completed symptom intake to a risk tier and a
// fixed list of guidance steps. Pure and deterministic; callers may share
// it freely across goroutines.

type RiskTier string

const (
	TierLow       RiskTier = "LOW"
	TierModerate  RiskTier = "MODERATE"
	TierHigh      RiskTier = "HIGH"
	TierEmergency RiskTier = "EMERGENCY"
)

// SymptomRecord is the snapshot of one intake. A zero temperature means
// "not reported" and never counts as fever. A nil SpO2 is treated as 100
// (assume healthy until told otherwise) — that default lives here, not in
// the intake layer.
type SymptomRecord struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	SpO2Percent        *int    `json:"spo2_percent,omitempty"`
	Cough              bool    `json:"cough"`
	Headache           bool    `json:"headache"`
	SoreThroat         bool    `json:"sore_throat"`
	Exposure           bool    `json:"exposure_to_sick_contact"`
	ShortnessOfBreath  bool    `json:"shortness_of_breath"`
}

type RiskAssessment struct {
	Tier  RiskTier `json:"tier"`
	Score int      `json:"score"`
	Steps []string `json:"steps"`
}

var tierSteps = map[RiskTier][]string{
	TierEmergency: {
		"Seek emergency medical care immediately.",
		"Avoid public transport, wear a mask if moving.",
		"Monitor oxygen continuously if available.",
	},
	TierHigh: {
		"Consult a doctor within 24 hours.",
		"Isolate if respiratory symptoms are present.",
		"Track temperature and oxygen saturation twice daily.",
	},
	TierModerate: {
		"Home care: rest, fluids, fever control (acetaminophen).",
		"Self-isolate if cough/fever.",
		"Seek care if symptoms worsen.",
	},
	TierLow: {
		"Monitor symptoms for 48–72 hours.",
		"Hydrate, rest, and practice hygiene.",
		"Consult a clinician if symptoms persist.",
	},
}

// TierSteps returns the canonical guidance for a tier. The slice is a
// copy; callers may keep or mutate it.
func TierSteps(tier RiskTier) []string {
	steps := tierSteps[tier]
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

// Classify scores a symptom record and picks a tier.
//
// Shortness of breath or SpO2 below 90 is the red-flag condition: it
// forces EMERGENCY no matter what the additive score says. Otherwise the
// tier follows the raw score: >=5 HIGH, >=3 MODERATE, else LOW. Inputs
// are not clamped; out-of-range values flow through the same arithmetic.
func Classify(rec SymptomRecord) RiskAssessment {
	spo2 := 100
	if rec.SpO2Percent != nil {
		spo2 = *rec.SpO2Percent
	}
	severe := rec.ShortnessOfBreath || spo2 < 90

	score := 0
	if rec.TemperatureCelsius >= 38.0 {
		score++
	}
	if rec.Cough {
		score++
	}
	if rec.Headache {
		score++
	}
	if rec.SoreThroat {
		score++
	}
	if rec.Exposure {
		score++
	}
	if spo2 < 94 {
		score += 2
	}
	if severe {
		score += 3
	}

	var tier RiskTier
	switch {
	case severe:
		tier = TierEmergency
	case score >= 5:
		tier = TierHigh
	case score >= 3:
		tier = TierModerate
	default:
		tier = TierLow
	}

	return RiskAssessment{Tier: tier, Score: score, Steps: TierSteps(tier)}
}
