package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/dubwise/dubwise-backend/internal/jobs"
	"github.com/dubwise/dubwise-backend/internal/models"
)

type jobsRedisRepo struct {
	redisClient *redis.Client
}

func NewJobsRedisRepo(redisClient *redis.Client) jobs.RedisRepository {
	return &jobsRedisRepo{
		redisClient: redisClient,
	}
}

func (j *jobsRedisRepo) EnqueueDispatch(ctx context.Context, queueKey string, msg *models.DispatchMessage) error {
	if err := j.redisClient.LPush(ctx, queueKey, msg).Err(); err != nil {
		return fmt.Errorf("failed to enqueue dispatch message: %w", err)
	}
	return nil
}
