package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dubwise/dubwise-backend/internal/models"
)

func TestInterpretProgressBands(t *testing.T) {
	cases := []struct {
		stage    string
		progress int
		status   models.TargetStatus
	}{
		{"starting", 1, models.TargetProcessing},
		{"downloaded", 3, models.TargetProcessing},
		{"asr_started", 5, models.TargetProcessing},
		{"asr_completed", 20, models.TargetProcessing},
		{"translation_started", 21, models.TargetProcessing},
		{"translation_completed", 35, models.TargetProcessing},
		{"tts_started", 36, models.TargetProcessing},
		{"tts_completed", 85, models.TargetProcessing},
		{"mux_started", 86, models.TargetProcessing},
		{"done", 100, models.TargetCompleted},
		{"failed", 0, models.TargetFailed},
	}
	for _, tc := range cases {
		t.Run(tc.stage, func(t *testing.T) {
			interp := Interpret(tc.stage)
			assert.True(t, interp.Known)
			assert.Equal(t, tc.progress, interp.Progress)
			assert.Equal(t, tc.status, interp.Status)
		})
	}
}

func TestInterpretMonotonicStaircase(t *testing.T) {
	order := []string{
		"starting", "downloaded", "asr_started", "asr_completed",
		"translation_started", "translation_completed",
		"tts_started", "tts_completed", "mux_started", "done",
	}
	prev := -1
	for _, stage := range order {
		interp := Interpret(stage)
		require.Greater(t, interp.Progress, prev, "stage %s must advance past %d", stage, prev)
		prev = interp.Progress
	}
}

func TestInterpretAliases(t *testing.T) {
	assert.Equal(t, Interpret("asr_completed"), Interpret("stt_completed"))
	assert.Equal(t, Interpret("translation_started"), Interpret("mt_prepare"))
	assert.Equal(t, Interpret("translation_completed"), Interpret("mt_completed"))
	assert.Equal(t, Interpret("tts_started"), Interpret("tts_prepare"))
}

func TestInterpretUnknownStage(t *testing.T) {
	interp := Interpret("quantum_flux")
	assert.False(t, interp.Known)
	assert.Equal(t, 0, interp.Progress)
	assert.Equal(t, "quantum_flux", interp.StageName)
	assert.Equal(t, models.TargetProcessing, interp.Status)
}

func TestInterpretTriggers(t *testing.T) {
	assert.True(t, Interpret("asr_completed").Triggers.PersistSourceKeys)
	assert.True(t, Interpret("translation_completed").Triggers.SweepIssues)
	assert.True(t, Interpret("tts_completed").Triggers.MergeSpeakerVoices)

	done := Interpret("done")
	assert.True(t, done.Triggers.MaterializeSegments)
	assert.True(t, done.Triggers.CreateAsset)

	assert.Equal(t, Triggers{}, Interpret("failed").Triggers)
}

func TestInterpretSegmentScoped(t *testing.T) {
	completed := Interpret(StageSegmentTTSCompleted)
	assert.True(t, completed.SegmentScoped)
	assert.True(t, completed.Triggers.RetargetSegment)
	assert.Equal(t, models.TargetProcessing, completed.Status)

	failed := Interpret(StageSegmentTTSFailed)
	assert.True(t, failed.SegmentScoped)
	assert.True(t, failed.Triggers.SegmentFailed)
}

func TestInterpretLanguageScoping(t *testing.T) {
	for _, stage := range []string{"starting", "downloaded", "asr_started", "asr_completed"} {
		assert.False(t, Interpret(stage).LanguageScoped, "stage %s runs before fan-out", stage)
	}
	for _, stage := range []string{"translation_started", "tts_completed", "done", "failed"} {
		assert.True(t, Interpret(stage).LanguageScoped, "stage %s is per language", stage)
	}
}

func TestStagesTableComplete(t *testing.T) {
	for _, stage := range Stages() {
		interp := Interpret(stage)
		assert.True(t, interp.Known, "stage %s must resolve", stage)
	}
}
