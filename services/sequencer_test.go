package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeQuestionsCanonicalOrder(t *testing.T) {
	keys := make([]string, 0, len(IntakeQuestions))
	for _, q := range IntakeQuestions {
		keys = append(keys, q.Key)
	}
	assert.Equal(t, []string{
		"temperature", "spo2", "cough", "headache",
		"sore_throat", "exposure", "shortness_of_breath",
	}, keys)
}

func TestSequencerFullWalk(t *testing.T) {
	seq := &Sequencer{}
	answers := []any{38.5, 92.0, true, false, true, "Yes", "no"}

	for i, a := range answers {
		require.False(t, seq.Done())
		require.NotNil(t, seq.Current())
		require.True(t, seq.SubmitAnswer(a), "answer %d should be accepted", i)
		assert.Equal(t, i+1, seq.Cursor)
	}

	assert.Equal(t, len(IntakeQuestions), seq.Cursor)
	assert.True(t, seq.Done())
	assert.Nil(t, seq.Current())

	// an eighth answer is not a legal operation
	assert.False(t, seq.SubmitAnswer(true))
	assert.Equal(t, len(IntakeQuestions), seq.Cursor)

	rec := seq.Record
	assert.Equal(t, 38.5, rec.TemperatureCelsius)
	require.NotNil(t, rec.SpO2Percent)
	assert.Equal(t, 92, *rec.SpO2Percent)
	assert.True(t, rec.Cough)
	assert.False(t, rec.Headache)
	assert.True(t, rec.SoreThroat)
	assert.True(t, rec.Exposure)
	assert.False(t, rec.ShortnessOfBreath)
}

func TestSequencerRejectsWrongKind(t *testing.T) {
	seq := &Sequencer{}

	// first question wants a number
	assert.False(t, seq.SubmitAnswer(true))
	assert.False(t, seq.SubmitAnswer("hot"))
	assert.Equal(t, 0, seq.Cursor, "rejected answer must not advance the cursor")

	require.True(t, seq.SubmitAnswer(37.2))
	require.True(t, seq.SubmitAnswer(98))

	// third question wants yes/no
	assert.False(t, seq.SubmitAnswer(1.0))
	assert.False(t, seq.SubmitAnswer("maybe"))
	assert.Equal(t, 2, seq.Cursor)
	assert.True(t, seq.SubmitAnswer("YES"))
}

func TestSequencerReset(t *testing.T) {
	seq := &Sequencer{}
	require.True(t, seq.SubmitAnswer(39.0))
	require.True(t, seq.SubmitAnswer(95))

	seq.Reset()
	assert.Equal(t, 0, seq.Cursor)
	assert.Nil(t, seq.Record.SpO2Percent)
	assert.Zero(t, seq.Record.TemperatureCelsius)
	assert.Equal(t, "temperature", seq.Current().Key)
}
