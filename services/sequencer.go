package services

import (
	"strings"

	"backend/utils"
)

type QuestionKind string

const (
	QuestionNumber QuestionKind = "number"
	QuestionBool   QuestionKind = "bool"
)

type Question struct {
	Key    string       `json:"key"`
	Prompt string       `json:"prompt"`
	Kind   QuestionKind `json:"kind"`
}

// IntakeQuestions is the fixed intake script. The order is canonical and
// identical for every session; scoring itself does not depend on it.
var IntakeQuestions = []Question{
	{Key: "temperature", Prompt: "What is your body temperature (°C)?", Kind: QuestionNumber},
	{Key: "spo2", Prompt: "What is your oxygen saturation (%)?", Kind: QuestionNumber},
	{Key: "cough", Prompt: "Do you have a cough?", Kind: QuestionBool},
	{Key: "headache", Prompt: "Do you have headaches?", Kind: QuestionBool},
	{Key: "sore_throat", Prompt: "Do you have a sore throat?", Kind: QuestionBool},
	{Key: "exposure", Prompt: "Any recent exposure to sick individuals?", Kind: QuestionBool},
	{Key: "shortness_of_breath", Prompt: "Do you feel shortness of breath?", Kind: QuestionBool},
}

// Sequencer walks the intake script one question at a time, filling a
// SymptomRecord. It holds no ambient state; the caller owns persistence.
type Sequencer struct {
	Cursor int
	Record utils.SymptomRecord
}

func (s *Sequencer) Done() bool {
	return s.Cursor >= len(IntakeQuestions)
}

// Current returns the question at the cursor, or nil once the intake is done.
func (s *Sequencer) Current() *Question {
	if s.Done() {
		return nil
	}
	q := IntakeQuestions[s.Cursor]
	return &q
}

// SubmitAnswer validates value against the current question's kind and,
// when it fits, records it and advances the cursor by one. An answer of
// the wrong kind, or any answer past the last question, is rejected and
// the cursor stays put; the caller simply re-prompts.
func (s *Sequencer) SubmitAnswer(value any) bool {
	if s.Done() {
		return false
	}
	q := IntakeQuestions[s.Cursor]
	switch q.Kind {
	case QuestionNumber:
		f, ok := asNumber(value)
		if !ok {
			return false
		}
		switch q.Key {
		case "temperature":
			s.Record.TemperatureCelsius = f
		case "spo2":
			v := int(f)
			s.Record.SpO2Percent = &v
		}
	case QuestionBool:
		b, ok := asBool(value)
		if !ok {
			return false
		}
		switch q.Key {
		case "cough":
			s.Record.Cough = b
		case "headache":
			s.Record.Headache = b
		case "sore_throat":
			s.Record.SoreThroat = b
		case "exposure":
			s.Record.Exposure = b
		case "shortness_of_breath":
			s.Record.ShortnessOfBreath = b
		}
	}
	s.Cursor++
	return true
}

func (s *Sequencer) Reset() {
	*s = Sequencer{}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64: // how encoding/json delivers numbers
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// asBool also accepts the "Yes"/"No" strings the client sends for radio
// answers.
func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes":
			return true, true
		case "no":
			return false, true
		}
	}
	return false, false
}
