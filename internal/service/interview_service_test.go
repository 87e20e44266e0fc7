package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewerbot/internal/config"
	"interviewerbot/internal/model"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func cloneSession(s *model.Session) *model.Session {
	data, _ := json.Marshal(s)
	var c model.Session
	_ = json.Unmarshal(data, &c)
	return &c
}

func (r *fakeSessionRepo) Create(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	session.ID = fmt.Sprintf("sess-%d", r.nextID)
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return cloneSession(session), nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) List(_ context.Context, limit, offset int) ([]*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Session
	for _, s := range r.sessions {
		out = append(out, cloneSession(s))
	}
	return out, nil
}

type fakeQuestionRepo struct {
	mu        sync.Mutex
	byTopic   map[string][]*model.BankQuestion
	statCalls []string
}

func newFakeQuestionRepo(byTopic map[string][]*model.BankQuestion) *fakeQuestionRepo {
	return &fakeQuestionRepo{byTopic: byTopic}
}

func excluded(id string, excludeIDs []string) bool {
	for _, e := range excludeIDs {
		if e == id {
			return true
		}
	}
	return false
}

func (r *fakeQuestionRepo) GetRandomByTopic(_ context.Context, topic string, excludeIDs []string) (*model.BankQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.byTopic[topic] {
		if !excluded(q.ID, excludeIDs) {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestionRepo) SearchByKeyword(_ context.Context, keyword string, allowedTopics []string, excludeIDs []string) ([]*model.BankQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []*model.BankQuestion
	for _, topic := range allowedTopics {
		for _, q := range r.byTopic[topic] {
			if excluded(q.ID, excludeIDs) {
				continue
			}
			for _, kw := range q.Keywords {
				if strings.Contains(kw, keyword) {
					matches = append(matches, q)
					break
				}
			}
		}
	}
	return matches, nil
}

func (r *fakeQuestionRepo) GetByDifficulty(_ context.Context, topic, difficulty string, limit int) ([]*model.BankQuestion, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) IncrementStats(_ context.Context, id string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statCalls = append(r.statCalls, id)
	return nil
}

func (r *fakeQuestionRepo) InsertMany(_ context.Context, questions []*model.BankQuestion) error {
	return nil
}

func (r *fakeQuestionRepo) Topics(_ context.Context) ([]string, error) {
	var topics []string
	for topic := range r.byTopic {
		topics = append(topics, topic)
	}
	return topics, nil
}

func (r *fakeQuestionRepo) TopicStats(_ context.Context) ([]model.TopicStats, error) {
	return nil, nil
}

func bankQ(id, topic, question string, keywords ...string) *model.BankQuestion {
	return &model.BankQuestion{
		ID:             id,
		Topic:          topic,
		Question:       question,
		ExpectedAnswer: "expected answer for " + id,
		Keywords:       keywords,
		Difficulty:     "medium",
		IsActive:       true,
	}
}

func javaBank(n int) []*model.BankQuestion {
	var out []*model.BankQuestion
	for i := 1; i <= n; i++ {
		out = append(out, bankQ(fmt.Sprintf("j%d", i), "Java", fmt.Sprintf("Java question %d?", i), "jvm"))
	}
	return out
}

func newTestInterview(byTopic map[string][]*model.BankQuestion) (*InterviewService, *fakeSessionRepo, *fakeQuestionRepo) {
	cfg := &config.Config{
		MaxWarmupQuestions:    3,
		QuestionsPerTopic:     5,
		ResumeQuestionsTarget: 20,
		MixRoundQuestions:     5,
	}
	sessionRepo := newFakeSessionRepo()
	questionRepo := newFakeQuestionRepo(byTopic)
	svc := NewInterviewService(
		cfg,
		sessionRepo,
		nil,
		NewQuestionService(questionRepo, nil),
		NewEvaluatorService(""),
		NewKeywordExtractor(),
		NewSessionWorkers(),
	)
	return svc, sessionRepo, questionRepo
}

func TestAdvance_PreselectedSkillsStartWarmup(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(5)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	intro, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepIntro, intro.Kind)
	assert.True(t, intro.SkipSkillPrompt)
	assert.Equal(t, model.PhaseResumeWarmup, intro.NextPhase)

	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, model.StepQuestion, step.Kind)
	assert.Equal(t, model.QuestionWarmup, step.Question.Kind)
	assert.Equal(t, "Java", step.Question.Topic)
	assert.Equal(t, 1, step.Question.Ordinal)

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseResumeWarmup, reloaded.Phase)
	assert.Equal(t, 1, reloaded.WarmupQuestionsAsked)
	assert.Equal(t, []string{step.Question.QuestionID}, reloaded.AskedQuestionIDs)
}

func TestAdvance_LegacySkillPromptPath(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(5)})

	session, err := svc.CreateSession(ctx, nil, "", "")
	require.NoError(t, err)

	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, model.StepQuestion, step.Kind)
	assert.Equal(t, model.QuestionSkillPrompt, step.Question.Kind)
	assert.True(t, step.Question.RequiresSkillDetection)

	// No skills detected falls back to the fixed topic.
	transition, err := svc.ProcessIntroAnswer(ctx, session.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StepTransition, transition.Kind)
	assert.Equal(t, []string{"Java"}, transition.DetectedSkills)

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseResumeWarmup, reloaded.Phase)
	assert.Equal(t, []string{"Java"}, reloaded.UserSelectedSkills)
}

func TestAdvance_ReadinessInterruptsWarmup(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(5)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.ID) // intro
	require.NoError(t, err)
	_, err = svc.Advance(ctx, session.ID) // warmup question 1
	require.NoError(t, err)

	err = svc.SetResumeQuestionsReady(ctx, session.ID, []model.ResumeQuestion{
		{ID: "resume_0", Question: "Tell me about your side project."},
	}, "summary", []string{"Java"})
	require.NoError(t, err)

	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepTransition, step.Kind)
	assert.Equal(t, model.PhaseResumeDeepDive, step.NextPhase)

	question, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, model.StepQuestion, question.Kind)
	assert.Equal(t, model.QuestionResume, question.Question.Kind)
	assert.Equal(t, "resume_0", question.Question.QuestionID)
	assert.Equal(t, "Resume", question.Question.Topic)
}

func TestSetResumeQuestionsReady_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(5)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	first := []model.ResumeQuestion{{ID: "resume_0", Question: "first"}}
	require.NoError(t, svc.SetResumeQuestionsReady(ctx, session.ID, first, "s1", nil))

	second := []model.ResumeQuestion{{ID: "resume_0", Question: "second"}}
	require.NoError(t, svc.SetResumeQuestionsReady(ctx, session.ID, second, "s2", nil))

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.ResumeQuestions, 1)
	assert.Equal(t, "first", reloaded.ResumeQuestions[0].Question)
	assert.Equal(t, "s1", reloaded.ResumeSummary)
}

func TestResumeDeepDive_ExhaustionMovesToDeepDive(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(8)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	stored.Phase = model.PhaseResumeDeepDive
	stored.SkillsQueue = []string{"Java"}
	stored.CurrentTopic = "Java"
	stored.ResumeQuestionsReady = true
	stored.ResumeQuestions = []model.ResumeQuestion{
		{ID: "resume_0", Question: "R1"},
		{ID: "resume_1", Question: "R2"},
	}
	require.NoError(t, repo.Update(ctx, stored))

	for i := 0; i < 2; i++ {
		step, err := svc.Advance(ctx, session.ID)
		require.NoError(t, err)
		require.Equal(t, model.StepQuestion, step.Kind)
		assert.Equal(t, model.QuestionResume, step.Question.Kind)
		assert.Equal(t, i+1, step.Question.Ordinal)
	}

	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepTransition, step.Kind)
	assert.Equal(t, model.PhaseDeepDive, step.NextPhase)
}

func TestDeepDive_TopicBudgetSwitchesTopic(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestInterview(map[string][]*model.BankQuestion{
		"Java":   javaBank(6),
		"Python": {bankQ("p1", "Python", "What is a generator?", "generator")},
	})

	session, err := svc.CreateSession(ctx, []string{"Java", "Python"}, "", "")
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	stored.Phase = model.PhaseDeepDive
	stored.SkillsQueue = []string{"Java", "Python"}
	stored.CurrentTopic = "Java"
	stored.QuestionsAsked = 5
	require.NoError(t, repo.Update(ctx, stored))

	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepTransition, step.Kind)
	assert.Contains(t, step.Message, "Python")

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Python", reloaded.CurrentTopic)
	assert.Equal(t, 0, reloaded.QuestionsAsked)
	assert.Equal(t, []string{"Python"}, reloaded.SkillsQueue)
	assert.Equal(t, model.PhaseDeepDive, reloaded.Phase)
}

func TestDeepDive_CounterQuestionConsumesKeywordOnce(t *testing.T) {
	ctx := context.Background()
	counterQ := bankQ("k1", "Java", "How do you orchestrate containers at scale?", "kubernetes", "containers")
	svc, repo, _ := newTestInterview(map[string][]*model.BankQuestion{
		"Java": append(javaBank(5), counterQ),
	})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	stored.Phase = model.PhaseDeepDive
	stored.SkillsQueue = []string{"Java"}
	stored.CurrentTopic = "Java"
	require.NoError(t, repo.Update(ctx, stored))

	answered := &model.QuestionPayload{
		Kind:           model.QuestionDeepDive,
		QuestionID:     "j1",
		Topic:          "Java",
		Question:       "Java question 1?",
		ExpectedAnswer: "expected",
	}
	_, err = svc.RecordAnswer(ctx, session.ID, answered, "we deployed everything on kubernetes clusters", 10)
	require.NoError(t, err)

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"kubernetes"}, reloaded.ContextKeywords)

	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, model.StepQuestion, step.Kind)
	assert.Equal(t, "k1", step.Question.QuestionID)
	assert.Contains(t, step.Question.FullQuestion, "kubernetes")

	reloaded, err = svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.ContextKeywords)
	assert.Equal(t, []string{"kubernetes"}, reloaded.UsedKeywords)

	// Mentioning the same keyword again must not re-enqueue it.
	_, err = svc.RecordAnswer(ctx, session.ID, step.Question, "more kubernetes talk", 5)
	require.NoError(t, err)
	reloaded, err = svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.ContextKeywords)
}

func TestRecordSkip_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(5)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	q := &model.QuestionPayload{
		Kind:           model.QuestionWarmup,
		QuestionID:     "j1",
		Topic:          "Java",
		Question:       "Java question 1?",
		ExpectedAnswer: "expected answer for j1",
	}

	expected, err := svc.RecordSkip(ctx, session.ID, q)
	require.NoError(t, err)
	assert.Equal(t, "expected answer for j1", expected)

	_, err = svc.RecordSkip(ctx, session.ID, q)
	require.NoError(t, err)

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Answers, 1)
	assert.True(t, reloaded.Answers[0].IsSkipped)
	assert.Equal(t, 0, reloaded.Answers[0].Score)
	assert.Equal(t, model.SkipSentinel, reloaded.Answers[0].UserAnswer)
	assert.Equal(t, 1, reloaded.SkippedCount())
}

func TestEndInterview_AnyPhase(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(5)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.ID) // intro
	require.NoError(t, err)
	_, err = svc.Advance(ctx, session.ID) // warmup question
	require.NoError(t, err)

	report, err := svc.EndInterview(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, session.ID, report.SessionID)

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseFinished, reloaded.Phase)
	require.NotNil(t, reloaded.EndedAt)

	// A terminal session just keeps returning the summary.
	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepFinished, step.Kind)
	require.NotNil(t, step.Summary)
}

func TestFullInterview_NoDuplicateQuestions(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(12)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	finished := false
	for i := 0; i < 60 && !finished; i++ {
		step, err := svc.Advance(ctx, session.ID)
		require.NoError(t, err)

		switch step.Kind {
		case model.StepQuestion:
			_, err = svc.RecordAnswer(ctx, session.ID, step.Question, "a reasonable answer about the jvm and bytecode", 5)
			require.NoError(t, err)
		case model.StepFinished:
			finished = true
		}
	}
	require.True(t, finished, "interview never reached the terminal phase")

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, id := range reloaded.AskedQuestionIDs {
		assert.False(t, seen[id], "question %s asked twice", id)
		seen[id] = true
	}
	for _, a := range reloaded.Answers {
		if a.IsSkipped {
			assert.Equal(t, 0, a.Score)
		}
	}
	assert.Equal(t, model.PhaseFinished, reloaded.Phase)
}

func TestAdvance_UnknownSession(t *testing.T) {
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{})
	_, err := svc.Advance(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProgress_Counters(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestInterview(map[string][]*model.BankQuestion{"Java": javaBank(5)})

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	step, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, session.ID, step.Question, "an answer that mentions the jvm", 5)
	require.NoError(t, err)
	_, err = svc.RecordSkip(ctx, session.ID, &model.QuestionPayload{QuestionID: "j2", Question: "Java question 2?"})
	require.NoError(t, err)

	progress, err := svc.Progress(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.TotalAnswered)
	assert.Equal(t, 1, progress.TotalSkipped)
	assert.Equal(t, model.PhaseResumeWarmup, progress.Phase)
}
