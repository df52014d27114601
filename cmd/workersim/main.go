// Command workersim drains the dispatch queue and replays the pipeline's
// callback sequence against the API, for local development without a GPU
// worker fleet.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/pkg/db/redis"
	"github.com/dubwise/dubwise-backend/pkg/logger"
)

const stageDelay = 500 * time.Millisecond

var languages = []string{"es", "de"}

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yml"
	}
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	appLogger.Infof("workersim consuming %s", cfg.Redis.JobQueueKey)
	for {
		result, err := redisClient.BLPop(ctx, 5*time.Second, cfg.Redis.JobQueueKey).Result()
		if err != nil {
			if err == goredis.Nil {
				continue
			}
			if ctx.Err() != nil {
				appLogger.Info("workersim shutting down")
				return
			}
			appLogger.Errorf("BLPop error: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if len(result) < 2 {
			continue
		}

		var msg models.DispatchMessage
		if err = json.Unmarshal([]byte(result[1]), &msg); err != nil {
			appLogger.Errorf("bad dispatch message: %v", err)
			continue
		}
		appLogger.Infof("simulating job %s for project %s", msg.JobID, msg.ProjectID)
		if err = runJob(ctx, appLogger, &msg); err != nil {
			appLogger.Errorf("job %s simulation failed: %v", msg.JobID, err)
		}
	}
}

func runJob(ctx context.Context, log logger.Logger, msg *models.DispatchMessage) error {
	audioKey := fmt.Sprintf("projects/%s/tracks/audio.wav", msg.ProjectID)
	vocalsKey := fmt.Sprintf("projects/%s/tracks/vocals.wav", msg.ProjectID)

	global := []models.JSONMap{
		{"stage": "starting"},
		{"stage": "downloaded"},
		{"stage": "asr_started"},
		{"stage": "asr_completed", "audio_key": audioKey, "vocals_key": vocalsKey},
	}
	for _, meta := range global {
		if err := postCallback(ctx, msg.CallbackURL, models.JobStatusInProgress, meta, ""); err != nil {
			return err
		}
		time.Sleep(stageDelay)
	}

	for _, lang := range languages {
		perLanguage := []models.JSONMap{
			{"stage": "translation_started", "target_lang": lang},
			{
				"stage":       "translation_completed",
				"target_lang": lang,
				"segments": []models.JSONMap{
					{"seg_idx": 0, "speaker": "SPEAKER_00", "start": 0.0, "end": 2.4, "prompt_text": "Welcome back to the channel."},
					{"seg_idx": 1, "speaker": "SPEAKER_01", "start": 2.4, "end": 5.1, "prompt_text": "Today we look at the results."},
				},
				"translations": []string{"Bienvenidos de nuevo al canal.", "Hoy vemos los resultados."},
			},
			{"stage": "tts_started", "target_lang": lang},
			{
				"stage":       "tts_completed",
				"target_lang": lang,
				"speakers": []models.JSONMap{
					{"speaker": "SPEAKER_00", "voice_sample_key": "voices/s0.wav", "prompt_text": "Welcome back"},
					{"speaker": "SPEAKER_01", "voice_sample_key": "voices/s1.wav", "prompt_text": "Today we look"},
				},
			},
			{"stage": "mux_started", "target_lang": lang},
		}
		for _, meta := range perLanguage {
			if err := postCallback(ctx, msg.CallbackURL, models.JobStatusInProgress, meta, ""); err != nil {
				return err
			}
			time.Sleep(stageDelay)
		}

		resultKey := fmt.Sprintf("projects/%s/%s/dubbed.mp4", msg.ProjectID, lang)
		done := models.JSONMap{
			"stage":       "done",
			"target_lang": lang,
			"segments": []models.JSONMap{
				{"seg_idx": 0, "speaker": "SPEAKER_00", "start": 0.0, "end": 2.4, "prompt_text": "Welcome back to the channel.", "audio_file": fmt.Sprintf("projects/%s/%s/seg0.wav", msg.ProjectID, lang)},
				{"seg_idx": 1, "speaker": "SPEAKER_01", "start": 2.4, "end": 5.1, "prompt_text": "Today we look at the results.", "audio_file": fmt.Sprintf("projects/%s/%s/seg1.wav", msg.ProjectID, lang)},
			},
			"translations": []string{"Bienvenidos de nuevo al canal.", "Hoy vemos los resultados."},
		}
		if err := postCallback(ctx, msg.CallbackURL, models.JobStatusDone, done, resultKey); err != nil {
			return err
		}
		log.Infof("job %s language %s completed", msg.JobID, lang)
	}

	return nil
}

func postCallback(ctx context.Context, callbackURL string, status models.JobStatus, metadata models.JSONMap, resultKey string) error {
	payload := map[string]interface{}{
		"status":   status,
		"metadata": metadata,
	}
	if resultKey != "" {
		payload["result_key"] = resultKey
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("callback %s rejected: %s", metadata["stage"], resp.Status)
	}
	return nil
}
