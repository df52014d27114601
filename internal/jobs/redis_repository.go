package jobs

import (
	"context"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type RedisRepository interface {
	EnqueueDispatch(ctx context.Context, queueKey string, msg *models.DispatchMessage) error
}
