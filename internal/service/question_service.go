package service

import (
	"context"
	"log"
	"math/rand"

	"interviewerbot/internal/cache"
	"interviewerbot/internal/model"
	"interviewerbot/internal/repository"
)

// QuestionService fronts the static question bank for the interview flow.
type QuestionService struct {
	repo       repository.QuestionRepo
	statsCache cache.BankStatsCache
}

func NewQuestionService(repo repository.QuestionRepo, statsCache cache.BankStatsCache) *QuestionService {
	return &QuestionService{repo: repo, statsCache: statsCache}
}

// GetRandomQuestion returns an unseen bank question for the topic, or nil when
// the topic is exhausted.
func (s *QuestionService) GetRandomQuestion(ctx context.Context, topic string, excludeIDs []string) (*model.BankQuestion, error) {
	return s.repo.GetRandomByTopic(ctx, topic, excludeIDs)
}

// GetCounterQuestion searches the bank for a question tagged with the keyword
// inside the allowed topics and picks one of the matches at random. Returns
// nil when nothing matches.
func (s *QuestionService) GetCounterQuestion(ctx context.Context, keyword string, allowedTopics []string, excludeIDs []string) (*model.BankQuestion, error) {
	matches, err := s.repo.SearchByKeyword(ctx, keyword, allowedTopics, excludeIDs)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[rand.Intn(len(matches))], nil
}

// RecordQuestionStats updates the running ask count and average score for a
// bank question. Failures are logged and swallowed so stats never block the
// interview.
func (s *QuestionService) RecordQuestionStats(ctx context.Context, questionID string, score int) {
	if questionID == "" {
		return
	}
	if err := s.repo.IncrementStats(ctx, questionID, score); err != nil {
		log.Printf("[Question] failed to update stats for %s: %v", questionID, err)
	}
	if s.statsCache != nil {
		if err := s.statsCache.Invalidate(ctx); err != nil {
			log.Printf("[Question] failed to invalidate topic stats cache: %v", err)
		}
	}
}

// Topics lists the distinct topics available in the bank.
func (s *QuestionService) Topics(ctx context.Context) ([]string, error) {
	return s.repo.Topics(ctx)
}

// TopicStats returns per-topic aggregates, served from cache when possible.
func (s *QuestionService) TopicStats(ctx context.Context) ([]model.TopicStats, error) {
	if s.statsCache != nil {
		if stats, err := s.statsCache.GetTopicStats(ctx); err == nil && stats != nil {
			return stats, nil
		}
	}

	stats, err := s.repo.TopicStats(ctx)
	if err != nil {
		return nil, err
	}
	if s.statsCache != nil {
		if err := s.statsCache.SetTopicStats(ctx, stats); err != nil {
			log.Printf("[Question] failed to cache topic stats: %v", err)
		}
	}
	return stats, nil
}
