package pipeline

import "github.com/dubwise/dubwise-backend/internal/models"

// StageInfo is one row of the stage table. Each stage asserts the end of its
// progress band, so replayed or skipped intermediate callbacks can never
// regress a target's progress.
type StageInfo struct {
	Stage          string
	Label          string
	BandStart      int
	BandEnd        int
	LanguageScoped bool
}

// Triggers are the side effects a stage demands from the orchestrator.
type Triggers struct {
	PersistSourceKeys   bool
	SweepIssues         bool
	MergeSpeakerVoices  bool
	MaterializeSegments bool
	CreateAsset         bool
	RetargetSegment     bool
	SegmentFailed       bool
}

// Interpretation is the full verdict for one reported stage.
type Interpretation struct {
	Stage          string
	StageName      string
	Progress       int
	Status         models.TargetStatus
	Known          bool
	LanguageScoped bool
	SegmentScoped  bool
	Triggers       Triggers
}

// stageTable maps every stage name any worker version has emitted to its
// progress band. Adding a worker stage is a data change here, not new logic.
var stageTable = map[string]StageInfo{
	"starting":              {Stage: "starting", Label: "Job started", BandStart: 0, BandEnd: 1, LanguageScoped: false},
	"downloaded":            {Stage: "downloaded", Label: "Source downloaded", BandStart: 1, BandEnd: 3, LanguageScoped: false},
	"asr_started":           {Stage: "asr_started", Label: "Speech recognition started", BandStart: 3, BandEnd: 5, LanguageScoped: false},
	"asr_completed":         {Stage: "asr_completed", Label: "Speech recognition completed", BandStart: 5, BandEnd: 20, LanguageScoped: false},
	"translation_started":   {Stage: "translation_started", Label: "Translation started", BandStart: 20, BandEnd: 21, LanguageScoped: true},
	"translation_completed": {Stage: "translation_completed", Label: "Translation completed", BandStart: 21, BandEnd: 35, LanguageScoped: true},
	"tts_started":           {Stage: "tts_started", Label: "Speech synthesis started", BandStart: 35, BandEnd: 36, LanguageScoped: true},
	"tts_completed":         {Stage: "tts_completed", Label: "Speech synthesis completed", BandStart: 36, BandEnd: 85, LanguageScoped: true},
	"mux_started":           {Stage: "mux_started", Label: "Video processing started", BandStart: 85, BandEnd: 86, LanguageScoped: true},
	"done":                  {Stage: "done", Label: "Completed", BandStart: 86, BandEnd: 100, LanguageScoped: true},
	"failed":                {Stage: "failed", Label: "Failed", BandStart: 0, BandEnd: 0, LanguageScoped: true},
}

// stageAliases folds the names older worker versions emitted onto the current
// table rows.
var stageAliases = map[string]string{
	"stt_completed": "asr_completed",
	"mt_prepare":    "translation_started",
	"mt_completed":  "translation_completed",
	"tts_prepare":   "tts_started",
}

// segment-level re-synthesis stages carry no project progress band.
const (
	StageSegmentTTSCompleted = "segment_tts_completed"
	StageSegmentTTSFailed    = "segment_tts_failed"
)

// Canonical resolves historical aliases to the current stage name.
func Canonical(stage string) string {
	if canonical, ok := stageAliases[stage]; ok {
		return canonical
	}
	return stage
}

// ProgressFor returns the band-end progress and display label for a stage.
// Unknown stages report 0 and their own name, so a worker version this
// service has never seen cannot crash the interpreter.
func ProgressFor(stage string) (int, string) {
	info, ok := stageTable[Canonical(stage)]
	if !ok {
		return 0, stage
	}
	return info.BandEnd, info.Label
}

// Interpret maps a reported stage name to progress, target status and the
// side effects the orchestrator must run. It is a pure table lookup.
func Interpret(stage string) Interpretation {
	canonical := Canonical(stage)

	switch canonical {
	case StageSegmentTTSCompleted:
		return Interpretation{
			Stage:          canonical,
			StageName:      "Segment re-synthesis completed",
			Known:          true,
			LanguageScoped: true,
			SegmentScoped:  true,
			Status:         models.TargetProcessing,
			Triggers:       Triggers{RetargetSegment: true},
		}
	case StageSegmentTTSFailed:
		return Interpretation{
			Stage:          canonical,
			StageName:      "Segment re-synthesis failed",
			Known:          true,
			LanguageScoped: true,
			SegmentScoped:  true,
			Status:         models.TargetProcessing,
			Triggers:       Triggers{SegmentFailed: true},
		}
	}

	info, ok := stageTable[canonical]
	if !ok {
		return Interpretation{
			Stage:          canonical,
			StageName:      canonical,
			Progress:       0,
			Status:         models.TargetProcessing,
			Known:          false,
			LanguageScoped: true,
		}
	}

	interp := Interpretation{
		Stage:          canonical,
		StageName:      info.Label,
		Progress:       info.BandEnd,
		Status:         models.TargetProcessing,
		Known:          true,
		LanguageScoped: info.LanguageScoped,
	}

	switch canonical {
	case "asr_completed":
		interp.Triggers.PersistSourceKeys = true
	case "translation_completed":
		interp.Triggers.SweepIssues = true
	case "tts_completed":
		interp.Triggers.MergeSpeakerVoices = true
	case "done":
		interp.Status = models.TargetCompleted
		interp.Triggers.MaterializeSegments = true
		interp.Triggers.CreateAsset = true
	case "failed":
		interp.Status = models.TargetFailed
	}

	return interp
}

// Stages returns every stage name in the table, aliases included. Used by
// tests to assert table completeness.
func Stages() []string {
	names := make([]string, 0, len(stageTable)+len(stageAliases))
	for name := range stageTable {
		names = append(names, name)
	}
	for name := range stageAliases {
		names = append(names, name)
	}
	return names
}
