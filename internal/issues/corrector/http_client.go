package corrector

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/issues"
	"github.com/dubwise/dubwise-backend/internal/models"
)

type httpCorrector struct {
	endpoint string
	client   *http.Client
}

func NewHTTPCorrector(cfg *config.Config) issues.Corrector {
	timeout := time.Duration(cfg.Corrector.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpCorrector{
		endpoint: cfg.Corrector.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type reviewRequest struct {
	SourceText   string `json:"source_text"`
	TargetText   string `json:"target_text"`
	LanguageCode string `json:"language_code"`
}

func (h *httpCorrector) Review(ctx context.Context, sourceText, targetText, languageCode string) (*models.CorrectionResult, error) {
	if h.endpoint == "" {
		return nil, errors.New("corrector endpoint is not configured")
	}

	payload, err := json.Marshal(reviewRequest{
		SourceText:   sourceText,
		TargetText:   targetText,
		LanguageCode: languageCode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "corrector.Review.Marshal")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint+"/review", bytes.NewBuffer(payload))
	if err != nil {
		return nil, errors.Wrap(err, "corrector.Review.NewRequest")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "corrector.Review.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("corrector returned status %d", resp.StatusCode)
	}

	result := &models.CorrectionResult{}
	if err = json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, errors.Wrap(err, "corrector.Review.Decode")
	}
	return result, nil
}
