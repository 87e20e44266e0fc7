package cache

import (
	"context"
	"encoding/json"
	"time"

	"interviewerbot/internal/model"

	"github.com/redis/go-redis/v9"
)

// BankStatsCache holds per-topic bank aggregates so the topics endpoint does
// not run the Mongo aggregation on every request.
type BankStatsCache interface {
	SetTopicStats(ctx context.Context, stats []model.TopicStats) error
	GetTopicStats(ctx context.Context) ([]model.TopicStats, error)
	Invalidate(ctx context.Context) error
}

type bankStatsCache struct {
	client *redis.Client
}

func NewBankStatsCache(client *redis.Client) BankStatsCache {
	return &bankStatsCache{client: client}
}

const topicStatsKey = "bank:topicstats"

func (c *bankStatsCache) SetTopicStats(ctx context.Context, stats []model.TopicStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, topicStatsKey, data, 5*time.Minute).Err()
}

func (c *bankStatsCache) GetTopicStats(ctx context.Context) ([]model.TopicStats, error) {
	data, err := c.client.Get(ctx, topicStatsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats []model.TopicStats
	err = json.Unmarshal([]byte(data), &stats)
	return stats, err
}

func (c *bankStatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, topicStatsKey).Err()
}
