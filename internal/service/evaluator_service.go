package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"interviewerbot/internal/model"
)

const (
	correctScoreThreshold = 60
	mlRequestTimeout      = 2 * time.Second
)

var dontKnowPatterns = []string{
	"i don't know",
	"i dont know",
	"no idea",
	"not sure",
	"skip",
	"pass",
	"next question",
	"can't answer",
}

// EvaluatorService scores candidate answers. It prefers the external
// semantic-similarity service and falls back to a local keyword-overlap
// scorer whenever that service is unreachable or misbehaves.
type EvaluatorService struct {
	mlServiceURL string
	client       *http.Client
}

func NewEvaluatorService(mlServiceURL string) *EvaluatorService {
	return &EvaluatorService{
		mlServiceURL: mlServiceURL,
		client:       &http.Client{Timeout: mlRequestTimeout},
	}
}

// Evaluate never fails: any internal panic degrades to a neutral score so a
// scoring hiccup cannot stall question progression.
func (s *EvaluatorService) Evaluate(ctx context.Context, userAnswer, expectedAnswer string, keywords []string) (result *model.EvaluationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Evaluator] recovered from panic during evaluation: %v", r)
			result = &model.EvaluationResult{
				Score:    50,
				Feedback: "Sorry, I had trouble evaluating that answer. Let's keep going.",
			}
		}
	}()

	answer := strings.ToLower(strings.TrimSpace(userAnswer))
	expected := strings.ToLower(strings.TrimSpace(expectedAnswer))

	if len(answer) < 5 {
		return &model.EvaluationResult{
			Score:             0,
			Feedback:          "That answer is quite short. Could you elaborate a bit more?",
			ShowCorrectAnswer: true,
		}
	}

	for _, pattern := range dontKnowPatterns {
		if strings.Contains(answer, pattern) {
			return &model.EvaluationResult{
				Score:             0,
				Feedback:          "No worries, this is a tough one. Take a look at the expected answer and we'll move on.",
				ShowCorrectAnswer: true,
			}
		}
	}

	score, err := s.semanticScore(ctx, answer, expected, keywords)
	if err != nil {
		log.Printf("[Evaluator] similarity service unavailable, using local scorer: %v", err)
		score = keywordBasedScore(answer, expected, keywords)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &model.EvaluationResult{
		Score:             score,
		Feedback:          feedbackForScore(score, answer, keywords),
		ShowCorrectAnswer: score < correctScoreThreshold,
		IsCorrect:         score >= correctScoreThreshold,
	}
}

func (s *EvaluatorService) semanticScore(ctx context.Context, answer, expected string, keywords []string) (int, error) {
	if s.mlServiceURL == "" {
		return 0, fmt.Errorf("similarity service not configured")
	}

	body, err := json.Marshal(map[string]interface{}{
		"user_answer":     answer,
		"expected_answer": expected,
		"keywords":        keywords,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.mlServiceURL+"/evaluate", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("similarity service returned status %d", resp.StatusCode)
	}

	var payload struct {
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}
	return int(payload.Score + 0.5), nil
}

// keywordBasedScore is the offline scorer: keyword hits (40%), expected-answer
// token overlap (30%), length (15%), coherence (15%).
func keywordBasedScore(answer, expected string, keywords []string) int {
	score := 0.0

	if len(keywords) > 0 {
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(answer, strings.ToLower(kw)) {
				matched++
			}
		}
		score += 40.0 * float64(matched) / float64(len(keywords))
	}

	expectedTokens := tokenize(expected)
	if len(expectedTokens) > 0 {
		overlap := 0
		for _, token := range expectedTokens {
			if strings.Contains(answer, token) {
				overlap++
			}
		}
		score += 30.0 * float64(overlap) / float64(len(expectedTokens))
	}

	if len(expected) > 0 {
		ratio := float64(len(answer)) / float64(len(expected))
		if ratio >= 0.5 {
			score += 15.0
		} else if ratio >= 0.25 {
			score += 7.5
		}
	}

	if strings.Contains(answer, " ") && len(answer) > 20 {
		score += 15.0
	}

	if score > 100 {
		score = 100
	}
	return int(score + 0.5)
}

func tokenize(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		word = strings.Trim(strings.ToLower(word), ".,;:!?()\"'")
		if len(word) > 2 && !isStopWord(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func feedbackForScore(score int, answer string, keywords []string) string {
	switch {
	case score >= 85:
		return "Excellent answer! You covered the key concepts really well."
	case score >= 70:
		return "Good answer! You've got a solid understanding of this topic."
	case score >= 50:
		missing := missingKeywords(answer, keywords)
		if len(missing) > 0 {
			return fmt.Sprintf("Partially correct. You could also mention: %s.", strings.Join(missing, ", "))
		}
		return "Partially correct. There's a bit more depth to explore here."
	case score >= 30:
		return "You're on the right track, but the answer is incomplete."
	default:
		return "That answer needs some improvement. Review the expected answer and keep going."
	}
}

func missingKeywords(answer string, keywords []string) []string {
	var missing []string
	for _, kw := range keywords {
		if !strings.Contains(answer, strings.ToLower(kw)) {
			missing = append(missing, kw)
			if len(missing) == 3 {
				break
			}
		}
	}
	return missing
}
