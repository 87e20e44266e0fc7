package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewerbot/internal/config"
	"interviewerbot/internal/model"
)

const validGeneration = `{
  "summary": "Backend engineer with Go and Kafka experience.",
  "questions": [
    {"question": "Q1", "type": "deep_dive", "difficulty": "medium", "expectedAnswer": "A1", "section": "Experience", "keywords": ["kafka"]},
    {"question": "Q2"},
    {"question": "Q3"},
    {"question": "Q4"},
    {"question": "Q5"},
    {"question": "Q6"}
  ]
}`

type recordingReadyHandler struct {
	mu        sync.Mutex
	calls     int
	questions []model.ResumeQuestion
	skills    []string
}

func (h *recordingReadyHandler) SetResumeQuestionsReady(_ context.Context, _ string, questions []model.ResumeQuestion, _ string, skills []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.questions = questions
	h.skills = skills
	return nil
}

func testAIConfig(keys ...string) *config.AIConfig {
	return &config.AIConfig{
		Keys:      config.NewKeyPool(keys),
		Models:    []string{"model-a", "model-b"},
		TimeoutMS: 1000,
	}
}

func TestGenerateQuestions_RotatesKeyOnRateLimit(t *testing.T) {
	svc := NewResumeService(testAIConfig("key1", "key2"), PlainTextExtractor{})

	var calls []string
	svc.llmCall = func(_ context.Context, modelName, apiKey, _ string, _ []byte) (string, error) {
		calls = append(calls, modelName+"/"+apiKey)
		if apiKey == "key1" {
			return "", fmt.Errorf("googleapi: Error 429: quota exceeded")
		}
		return validGeneration, nil
	}

	questions, summary, err := svc.generateQuestions(context.Background(), "resume.txt", "worked with kafka")
	require.NoError(t, err)
	assert.Len(t, questions, 6)
	assert.Equal(t, "Backend engineer with Go and Kafka experience.", summary)
	assert.Equal(t, []string{"model-a/key1", "model-a/key2"}, calls)
}

func TestGenerateQuestions_FallsToNextModelOnHardError(t *testing.T) {
	svc := NewResumeService(testAIConfig("key1"), PlainTextExtractor{})

	var calls []string
	svc.llmCall = func(_ context.Context, modelName, _, _ string, _ []byte) (string, error) {
		calls = append(calls, modelName)
		if modelName == "model-a" {
			return "", fmt.Errorf("googleapi: Error 404: model not found")
		}
		return validGeneration, nil
	}

	questions, _, err := svc.generateQuestions(context.Background(), "resume.txt", "some resume text")
	require.NoError(t, err)
	assert.Len(t, questions, 6)
	assert.Equal(t, []string{"model-a", "model-b"}, calls)
}

func TestGenerateQuestions_RejectsTooFewQuestions(t *testing.T) {
	svc := NewResumeService(testAIConfig("key1"), PlainTextExtractor{})
	svc.llmCall = func(_ context.Context, _, _, _ string, _ []byte) (string, error) {
		return `{"questions": [{"question": "only one"}]}`, nil
	}

	_, _, err := svc.generateQuestions(context.Background(), "resume.txt", "text")
	assert.Error(t, err)
}

func TestRun_FallbackFlipsReadyExactlyOnce(t *testing.T) {
	svc := NewResumeService(testAIConfig(), PlainTextExtractor{}) // no credentials
	handler := &recordingReadyHandler{}
	svc.SetReadyHandler(handler)

	svc.run("sess1", "resume.txt", "I have used Java, Python and React in production")

	require.Equal(t, 1, handler.calls)
	assert.NotEmpty(t, handler.questions)
	assert.LessOrEqual(t, len(handler.questions), resumeQuestionTarget)
	assert.Equal(t, []string{"Java", "Python", "React"}, handler.skills)
	for i, q := range handler.questions {
		assert.Equal(t, fmt.Sprintf("resume_%d", i), q.ID)
		assert.False(t, q.Asked)
	}
}

func TestFallbackResumeQuestions_Bounds(t *testing.T) {
	t.Run("no detected skills", func(t *testing.T) {
		questions := fallbackResumeQuestions(nil)
		assert.GreaterOrEqual(t, len(questions), 1)
		assert.LessOrEqual(t, len(questions), resumeQuestionTarget)
	})

	t.Run("all skills detected", func(t *testing.T) {
		all := DetectSkills("java python javascript react sql machine learning deep learning")
		require.Len(t, all, 7)
		questions := fallbackResumeQuestions(all)
		assert.Len(t, questions, 19) // 5 generic + 2 per skill
	})
}

func TestDetectSkills_Patterns(t *testing.T) {
	skills := DetectSkills("Built services with Spring Boot, trained models in PyTorch, stored data in PostgreSQL")
	assert.Equal(t, []string{"Java", "SQL", "Deep_Learning"}, skills)

	assert.Empty(t, DetectSkills("I enjoy hiking and photography"))
}

func TestRepairModelJSON(t *testing.T) {
	t.Run("markdown fences", func(t *testing.T) {
		assert.JSONEq(t, `{"a":1}`, repairModelJSON("```json\n{\"a\":1}\n```"))
	})

	t.Run("trailing commas", func(t *testing.T) {
		assert.JSONEq(t, `{"a":[1,2]}`, repairModelJSON(`{"a":[1,2,],}`))
	})

	t.Run("truncated output", func(t *testing.T) {
		repaired := repairModelJSON(`{"questions":[{"question":"q1"}`)
		assert.JSONEq(t, `{"questions":[{"question":"q1"}]}`, repaired)
	})

	t.Run("leading prose", func(t *testing.T) {
		assert.JSONEq(t, `{"a":1}`, repairModelJSON(`Here is the JSON you asked for: {"a":1}`))
	})
}

func TestParseGeneratedQuestions_BareArray(t *testing.T) {
	questions, summary, err := parseGeneratedQuestions(`[
		{"question": "Q1"},
		{"question": "Q2", "type": "scaling", "difficulty": "hard"}
	]`)
	require.NoError(t, err)
	assert.Empty(t, summary)
	require.Len(t, questions, 2)
	assert.Equal(t, "deep_dive", questions[0].Type)
	assert.Equal(t, "medium", questions[0].Difficulty)
	assert.Equal(t, "scaling", questions[1].Type)
}

func TestKeyPool_Rotation(t *testing.T) {
	pool := config.NewKeyPool([]string{"a", "b"})
	assert.Equal(t, "a", pool.Current())
	assert.True(t, pool.Rotate())
	assert.Equal(t, "b", pool.Current())

	single := config.NewKeyPool([]string{"only"})
	assert.False(t, single.Rotate())
}
