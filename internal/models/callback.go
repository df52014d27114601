package models

// CallbackMetadata is the typed view of the free-form metadata object workers
// attach to status reports. Field names follow the worker contract, including
// the legacy inline-segment shape.
type CallbackMetadata struct {
	Stage        string `json:"stage"`
	TargetLang   string `json:"target_lang"`
	LanguageCode string `json:"language_code"`
	SourceLang   string `json:"source_lang,omitempty"`

	// Inline legacy segment shape.
	Segments     []InlineSegment `json:"segments,omitempty"`
	Translations []string        `json:"translations,omitempty"`

	// Blob-store reference shape.
	MetadataKey string `json:"metadata_key,omitempty"`

	// Single-segment re-synthesis path.
	SegmentID string `json:"segment_id,omitempty"`

	// Source tracks reported by asr_completed.
	AudioKey      *string `json:"audio_key,omitempty"`
	VocalsKey     *string `json:"vocals_key,omitempty"`
	BackgroundKey *string `json:"background_key,omitempty"`

	// Voice mapping reported by tts_completed.
	Speakers       []SpeakerInfo         `json:"speakers,omitempty"`
	SpeakerRefs    map[string]SpeakerRef `json:"speaker_refs,omitempty"`
	VoiceSampleID  string                `json:"voice_sample_id,omitempty"`
	AudioSampleURL string                `json:"audio_sample_url,omitempty"`

	// Per-segment quality scores.
	Issues *QualityReport `json:"issues,omitempty"`

	Error string `json:"error,omitempty"`
}

// TargetLanguage prefers target_lang but tolerates the older language_code key.
func (m *CallbackMetadata) TargetLanguage() string {
	if m.TargetLang != "" {
		return m.TargetLang
	}
	return m.LanguageCode
}

func (m *CallbackMetadata) SourceKeys() SourceKeys {
	return SourceKeys{
		AudioKey:      m.AudioKey,
		VocalsKey:     m.VocalsKey,
		BackgroundKey: m.BackgroundKey,
	}
}

// InlineSegment carries the legacy field names of the inline payload shape.
type InlineSegment struct {
	SegIdx     *int    `json:"seg_idx,omitempty"`
	SegmentID  string  `json:"segment_id,omitempty"`
	Speaker    string  `json:"speaker,omitempty"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	PromptText string  `json:"prompt_text,omitempty"`
	AudioFile  string  `json:"audio_file,omitempty"`
}

// TranscriptDocument is the blob-stored metadata shape: binary time units in
// milliseconds, per-segment speaker index into the speakers array, raw txt.
type TranscriptDocument struct {
	Version  int                 `json:"v,omitempty"`
	Unit     string              `json:"unit,omitempty"`
	Lang     string              `json:"lang,omitempty"`
	Speakers []string            `json:"speakers,omitempty"`
	Segments []TranscriptSegment `json:"segments"`
}

type TranscriptSegment struct {
	Start      float64 `json:"s"`
	End        float64 `json:"e"`
	SpeakerIdx int     `json:"sp"`
	Text       string  `json:"txt"`
}

type SpeakerInfo struct {
	Speaker          string            `json:"speaker"`
	VoiceSampleKey   string            `json:"voice_sample_key,omitempty"`
	PromptText       string            `json:"prompt_text,omitempty"`
	VoiceReplacement *VoiceReplacement `json:"voice_replacement,omitempty"`
}

type SpeakerRef struct {
	RefWavKey  string `json:"ref_wav_key"`
	PromptText string `json:"prompt_text,omitempty"`
}

type VoiceReplacement struct {
	VoiceSampleID string   `json:"voice_sample_id"`
	Similarity    *float64 `json:"similarity,omitempty"`
	SampleKey     string   `json:"sample_key,omitempty"`
}

// QualityReport carries the worker's numeric quality scores per segment.
type QualityReport struct {
	Q   QualityScores `json:"q"`
	Spk *bool         `json:"spk,omitempty"`
}

type QualityScores struct {
	STT   *float64 `json:"stt,omitempty"`
	TTS   *float64 `json:"tts,omitempty"`
	Sync  *float64 `json:"sync,omitempty"`
	Voice *float64 `json:"voice,omitempty"`
}

// DecodeCallbackMetadata converts the stored free-form metadata into the
// typed view. A nil map yields a nil result.
func DecodeCallbackMetadata(m JSONMap) (*CallbackMetadata, error) {
	if m == nil {
		return nil, nil
	}
	meta := &CallbackMetadata{}
	if err := m.Decode(meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// BuildSpeakerVoices converts reported speaker metadata into the
// speaker -> {default_voice, replace_voice} mapping merged onto the project.
// Mirrors the additive contract: speakers list wins, speaker_refs is the
// fallback when the list is empty.
func BuildSpeakerVoices(speakers []SpeakerInfo, refs map[string]SpeakerRef) JSONMap {
	voices := JSONMap{}

	for _, info := range speakers {
		if info.Speaker == "" {
			continue
		}
		entry := map[string]interface{}{
			"default_voice": map[string]interface{}{
				"ref_wav_key": info.VoiceSampleKey,
				"prompt_text": info.PromptText,
			},
		}
		if info.VoiceReplacement != nil {
			entry["replace_voice"] = map[string]interface{}{
				"voice_sample_id": info.VoiceReplacement.VoiceSampleID,
				"similarity":      info.VoiceReplacement.Similarity,
				"sample_key":      info.VoiceReplacement.SampleKey,
			}
		}
		voices[info.Speaker] = entry
	}

	if len(voices) == 0 {
		for speaker, ref := range refs {
			voices[speaker] = map[string]interface{}{
				"default_voice": map[string]interface{}{
					"ref_wav_key": ref.RefWavKey,
					"prompt_text": ref.PromptText,
				},
			}
		}
	}

	return voices
}
