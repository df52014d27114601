package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetLanguageFallback(t *testing.T) {
	meta := &CallbackMetadata{TargetLang: "es", LanguageCode: "de"}
	assert.Equal(t, "es", meta.TargetLanguage())

	meta = &CallbackMetadata{LanguageCode: "de"}
	assert.Equal(t, "de", meta.TargetLanguage())

	assert.Empty(t, (&CallbackMetadata{}).TargetLanguage())
}

func TestDecodeCallbackMetadata(t *testing.T) {
	meta, err := DecodeCallbackMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, meta)

	meta, err = DecodeCallbackMetadata(JSONMap{
		"stage":       "asr_completed",
		"target_lang": "es",
		"audio_key":   "projects/p/audio.wav",
	})
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "asr_completed", meta.Stage)
	assert.Equal(t, "es", meta.TargetLang)
	require.NotNil(t, meta.AudioKey)
	assert.Equal(t, "projects/p/audio.wav", *meta.AudioKey)

	_, err = DecodeCallbackMetadata(JSONMap{"segments": "not-a-list"})
	assert.Error(t, err)
}

func TestBuildSpeakerVoicesFromSpeakers(t *testing.T) {
	similarity := 0.92
	voices := BuildSpeakerVoices([]SpeakerInfo{
		{Speaker: "SPEAKER_00", VoiceSampleKey: "voices/s0.wav", PromptText: "hello"},
		{
			Speaker:        "SPEAKER_01",
			VoiceSampleKey: "voices/s1.wav",
			VoiceReplacement: &VoiceReplacement{
				VoiceSampleID: "sample-7",
				Similarity:    &similarity,
			},
		},
		{VoiceSampleKey: "voices/anonymous.wav"},
	}, nil)

	require.Len(t, voices, 2)

	entry := voices["SPEAKER_00"].(map[string]interface{})
	defaultVoice := entry["default_voice"].(map[string]interface{})
	assert.Equal(t, "voices/s0.wav", defaultVoice["ref_wav_key"])
	assert.Equal(t, "hello", defaultVoice["prompt_text"])
	assert.NotContains(t, entry, "replace_voice")

	entry = voices["SPEAKER_01"].(map[string]interface{})
	replacement := entry["replace_voice"].(map[string]interface{})
	assert.Equal(t, "sample-7", replacement["voice_sample_id"])
}

func TestBuildSpeakerVoicesRefsFallback(t *testing.T) {
	refs := map[string]SpeakerRef{
		"SPEAKER_00": {RefWavKey: "refs/s0.wav", PromptText: "hi"},
	}

	// The refs map only applies when the speakers list yields nothing.
	voices := BuildSpeakerVoices(nil, refs)
	require.Len(t, voices, 1)
	entry := voices["SPEAKER_00"].(map[string]interface{})
	defaultVoice := entry["default_voice"].(map[string]interface{})
	assert.Equal(t, "refs/s0.wav", defaultVoice["ref_wav_key"])

	voices = BuildSpeakerVoices([]SpeakerInfo{{Speaker: "SPEAKER_05", VoiceSampleKey: "voices/s5.wav"}}, refs)
	require.Len(t, voices, 1)
	assert.Contains(t, voices, "SPEAKER_05")
}

func TestSourceKeysEmpty(t *testing.T) {
	assert.True(t, (&CallbackMetadata{}).SourceKeys().Empty())

	key := "projects/p/vocals.wav"
	keys := (&CallbackMetadata{VocalsKey: &key}).SourceKeys()
	assert.False(t, keys.Empty())
	assert.Equal(t, key, *keys.VocalsKey)
}

func TestAssetTypeForKey(t *testing.T) {
	assert.Equal(t, AssetSubtitle, AssetTypeForKey("projects/p/es/subs.srt"))
	assert.Equal(t, AssetSubtitle, AssetTypeForKey("projects/p/es/subs.vtt"))
	assert.Equal(t, AssetDubbedAudio, AssetTypeForKey("projects/p/es/audio.mp3"))
	assert.Equal(t, AssetDubbedAudio, AssetTypeForKey("projects/p/es/audio.wav"))
	assert.Equal(t, AssetDubbedVideo, AssetTypeForKey("projects/p/es/dubbed.mp4"))
	assert.Equal(t, AssetDubbedVideo, AssetTypeForKey("projects/p/es/deliverable"))
}
