package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ShortAnswerSkipsSimilarityService(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"score": 95}`))
	}))
	defer srv.Close()

	svc := NewEvaluatorService(srv.URL)
	result := svc.Evaluate(context.Background(), "idk", "a long expected answer", []string{"jvm"})

	assert.Equal(t, 0, result.Score)
	assert.True(t, result.ShowCorrectAnswer)
	assert.False(t, result.IsCorrect)
	assert.False(t, called, "short answers must not hit the similarity service")
}

func TestEvaluate_DontKnowPatterns(t *testing.T) {
	svc := NewEvaluatorService("")

	for _, answer := range []string{
		"I don't know this one",
		"honestly no idea",
		"not sure about that",
	} {
		t.Run(answer, func(t *testing.T) {
			result := svc.Evaluate(context.Background(), answer, "expected", nil)
			assert.Equal(t, 0, result.Score)
			assert.True(t, result.ShowCorrectAnswer)
		})
	}
}

func TestEvaluate_UsesSimilarityServiceScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"score": 87}`))
	}))
	defer srv.Close()

	svc := NewEvaluatorService(srv.URL)
	result := svc.Evaluate(context.Background(), "a perfectly reasonable answer", "expected answer", nil)

	assert.Equal(t, 87, result.Score)
	assert.True(t, result.IsCorrect)
	assert.False(t, result.ShowCorrectAnswer)
}

func TestEvaluate_FallsBackWhenServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewEvaluatorService(srv.URL)
	expected := "jdk is for development, jvm executes bytecode"
	result := svc.Evaluate(context.Background(), expected, expected, []string{"jdk", "jvm"})

	// All keywords present, full token overlap, full length, coherent.
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.IsCorrect)
}

func TestKeywordBasedScore_Weights(t *testing.T) {
	expected := "jdk is for development and jvm executes bytecode"

	t.Run("keywords only", func(t *testing.T) {
		// Half the keywords (20) plus one of five overlap tokens (6).
		score := keywordBasedScore("jdk stuff", expected, []string{"jdk", "jvm"})
		assert.Equal(t, 26, score)
	})

	t.Run("coherence and length", func(t *testing.T) {
		score := keywordBasedScore("this answer says nothing relevant at all today", expected, []string{"jdk"})
		// No keywords, no overlap, length >= 50% (15) + coherence (15).
		assert.Equal(t, 30, score)
	})

	t.Run("half length bonus", func(t *testing.T) {
		score := keywordBasedScore("some words", "this expected answer is forty characters", nil)
		assert.Equal(t, 8, score) // 7.5 rounded
	})
}

func TestFeedbackBands(t *testing.T) {
	assert.Contains(t, feedbackForScore(90, "", nil), "Excellent")
	assert.Contains(t, feedbackForScore(75, "", nil), "Good")
	assert.Contains(t, feedbackForScore(55, "answer mentions jdk", []string{"jdk", "jvm", "jre", "bytecode"}), "jvm")
	assert.Contains(t, feedbackForScore(35, "", nil), "right track")
	assert.Contains(t, feedbackForScore(10, "", nil), "improvement")
}

func TestEvaluate_ScoreBelowThresholdShowsAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": 59}`))
	}))
	defer srv.Close()

	svc := NewEvaluatorService(srv.URL)
	result := svc.Evaluate(context.Background(), "a borderline answer here", "expected", nil)

	assert.Equal(t, 59, result.Score)
	assert.True(t, result.ShowCorrectAnswer)
	assert.False(t, result.IsCorrect)
}
