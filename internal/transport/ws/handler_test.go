package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewerbot/internal/config"
	"interviewerbot/internal/model"
	"interviewerbot/internal/service"
)

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
	nextID   int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*model.Session)}
}

func copySession(s *model.Session) *model.Session {
	data, _ := json.Marshal(s)
	var c model.Session
	_ = json.Unmarshal(data, &c)
	return &c
}

func (r *memSessionRepo) Create(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	session.ID = fmt.Sprintf("sess-%d", r.nextID)
	r.sessions[session.ID] = copySession(session)
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return copySession(session), nil
}

func (r *memSessionRepo) Update(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = copySession(session)
	return nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memSessionRepo) List(_ context.Context, limit, offset int) ([]*model.Session, error) {
	return nil, nil
}

type memQuestionRepo struct {
	byTopic map[string][]*model.BankQuestion
}

func (r *memQuestionRepo) GetRandomByTopic(_ context.Context, topic string, excludeIDs []string) (*model.BankQuestion, error) {
	for _, q := range r.byTopic[topic] {
		asked := false
		for _, e := range excludeIDs {
			if e == q.ID {
				asked = true
				break
			}
		}
		if !asked {
			return q, nil
		}
	}
	return nil, nil
}

func (r *memQuestionRepo) SearchByKeyword(_ context.Context, keyword string, allowedTopics []string, excludeIDs []string) ([]*model.BankQuestion, error) {
	return nil, nil
}

func (r *memQuestionRepo) GetByDifficulty(_ context.Context, topic, difficulty string, limit int) ([]*model.BankQuestion, error) {
	return nil, nil
}

func (r *memQuestionRepo) IncrementStats(_ context.Context, id string, score int) error {
	return nil
}

func (r *memQuestionRepo) InsertMany(_ context.Context, questions []*model.BankQuestion) error {
	return nil
}

func (r *memQuestionRepo) Topics(_ context.Context) ([]string, error) {
	return nil, nil
}

func (r *memQuestionRepo) TopicStats(_ context.Context) ([]model.TopicStats, error) {
	return nil, nil
}

func javaQuestions(n int) map[string][]*model.BankQuestion {
	var out []*model.BankQuestion
	for i := 1; i <= n; i++ {
		out = append(out, &model.BankQuestion{
			ID:             fmt.Sprintf("j%d", i),
			Topic:          "Java",
			Question:       fmt.Sprintf("Java question %d?", i),
			ExpectedAnswer: fmt.Sprintf("expected answer for j%d", i),
			Keywords:       []string{"jvm"},
			Difficulty:     "medium",
			IsActive:       true,
		})
	}
	return map[string][]*model.BankQuestion{"Java": out}
}

func newTestHandler(t *testing.T, byTopic map[string][]*model.BankQuestion) (*Handler, *service.InterviewService) {
	t.Helper()
	cfg := &config.Config{
		MaxWarmupQuestions:    3,
		QuestionsPerTopic:     5,
		ResumeQuestionsTarget: 20,
		MixRoundQuestions:     5,
	}
	svc := service.NewInterviewService(
		cfg,
		newMemSessionRepo(),
		nil,
		service.NewQuestionService(&memQuestionRepo{byTopic: byTopic}, nil),
		service.NewEvaluatorService(""),
		service.NewKeywordExtractor(),
		service.NewSessionWorkers(),
	)
	h := NewHandler(NewHub(), svc, service.NewTokenService("test-secret"))
	return h, svc
}

func connectSession(h *Handler, sessionID string) (*Connection, *connState) {
	conn := &Connection{SessionID: sessionID, Send: make(chan []byte, 16), Hub: h.hub}
	h.hub.Register(conn)
	return conn, &connState{sessionID: sessionID}
}

func expectNoMessage(t *testing.T, conn *Connection) {
	t.Helper()
	select {
	case data := <-conn.Send:
		t.Fatalf("unexpected message: %s", data)
	case <-time.After(100 * time.Millisecond):
	}
}

// Rejoining mid-interview replays the persisted question with the resumed
// flag set and leaves the state machine exactly where it was.
func TestHandleJoin_MidSessionReplaysLastQuestion(t *testing.T) {
	ctx := context.Background()
	h, svc := newTestHandler(t, javaQuestions(5))

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.ID) // intro
	require.NoError(t, err)
	step, err := svc.Advance(ctx, session.ID) // first warmup question
	require.NoError(t, err)
	require.Equal(t, model.StepQuestion, step.Kind)

	before, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, before.LastQuestion)

	conn, state := connectSession(h, session.ID)
	h.dispatch(state, &Message{Type: MsgJoinSession})

	joined := receiveMessage(t, conn)
	require.Equal(t, MsgSessionJoined, joined.Type)
	var joinedPayload SessionJoinedPayload
	require.NoError(t, json.Unmarshal(joined.Payload, &joinedPayload))
	assert.True(t, joinedPayload.Resumed)
	assert.Equal(t, string(model.PhaseResumeWarmup), joinedPayload.Phase)

	replay := receiveMessage(t, conn)
	require.Equal(t, MsgQuestion, replay.Type)
	var questionPayload struct {
		Question *model.QuestionPayload `json:"question"`
		Resumed  bool                   `json:"resumed"`
	}
	require.NoError(t, json.Unmarshal(replay.Payload, &questionPayload))
	assert.True(t, questionPayload.Resumed)
	require.NotNil(t, questionPayload.Question)
	assert.Equal(t, step.Question.QuestionID, questionPayload.Question.QuestionID)

	expectNoMessage(t, conn)

	// The replay must not have advanced the machine.
	after, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Phase, after.Phase)
	assert.Equal(t, before.WarmupQuestionsAsked, after.WarmupQuestionsAsked)
	assert.Equal(t, before.AskedQuestionIDs, after.AskedQuestionIDs)
}

func TestHandleJoin_FreshSessionDoesNotReplay(t *testing.T) {
	ctx := context.Background()
	h, svc := newTestHandler(t, javaQuestions(5))

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	conn, state := connectSession(h, session.ID)
	h.dispatch(state, &Message{Type: MsgJoinSession})

	joined := receiveMessage(t, conn)
	require.Equal(t, MsgSessionJoined, joined.Type)
	var joinedPayload SessionJoinedPayload
	require.NoError(t, json.Unmarshal(joined.Payload, &joinedPayload))
	assert.False(t, joinedPayload.Resumed)
	assert.Equal(t, string(model.PhaseIntro), joinedPayload.Phase)

	expectNoMessage(t, conn)
}

func submitAnswer(t *testing.T, h *Handler, state *connState, answer string) {
	t.Helper()
	payload, err := json.Marshal(&SubmitAnswerPayload{Answer: answer})
	require.NoError(t, err)
	h.dispatch(state, &Message{Type: MsgSubmitAnswer, Payload: payload})
}

// drainToQuestion consumes intro/transition messages until the next question
// arrives, mirroring what a client does after start-interview.
func drainToQuestion(t *testing.T, conn *Connection) *model.QuestionPayload {
	t.Helper()
	for i := 0; i < 5; i++ {
		msg := receiveMessage(t, conn)
		if msg.Type != MsgQuestion {
			continue
		}
		var payload struct {
			Question *model.QuestionPayload `json:"question"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		return payload.Question
	}
	t.Fatal("no question message arrived")
	return nil
}

func TestHandleAnswer_SkipPhraseRecordsSkip(t *testing.T) {
	ctx := context.Background()
	h, svc := newTestHandler(t, javaQuestions(5))

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	conn, state := connectSession(h, session.ID)
	h.dispatch(state, &Message{Type: MsgJoinSession})
	receiveMessage(t, conn) // session-joined

	h.dispatch(state, &Message{Type: MsgStartInterview})
	question := drainToQuestion(t, conn)

	submitAnswer(t, h, state, "Skip")

	result := receiveMessage(t, conn)
	require.Equal(t, MsgAnswerResult, result.Type)
	var resultPayload struct {
		Skipped       bool   `json:"skipped"`
		CorrectAnswer string `json:"correctAnswer"`
	}
	require.NoError(t, json.Unmarshal(result.Payload, &resultPayload))
	assert.True(t, resultPayload.Skipped)
	assert.Equal(t, question.ExpectedAnswer, resultPayload.CorrectAnswer)

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Answers, 1)
	assert.True(t, reloaded.Answers[0].IsSkipped)
	assert.Equal(t, model.SkipSentinel, reloaded.Answers[0].UserAnswer)
}

func TestHandleAnswer_RealAnswerAcksThenPushesProgress(t *testing.T) {
	ctx := context.Background()
	h, svc := newTestHandler(t, javaQuestions(5))

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	conn, state := connectSession(h, session.ID)
	h.dispatch(state, &Message{Type: MsgJoinSession})
	receiveMessage(t, conn) // session-joined

	h.dispatch(state, &Message{Type: MsgStartInterview})
	drainToQuestion(t, conn)

	submitAnswer(t, h, state, "The JVM loads bytecode and runs it with a JIT compiler.")

	ack := receiveMessage(t, conn)
	require.Equal(t, MsgAnswerResult, ack.Type)
	var ackPayload map[string]interface{}
	require.NoError(t, json.Unmarshal(ack.Payload, &ackPayload))
	assert.Equal(t, true, ackPayload["received"])
	assert.NotContains(t, ackPayload, "score")

	progress := receiveMessage(t, conn)
	require.Equal(t, MsgProgress, progress.Type)
	var progressPayload model.Progress
	require.NoError(t, json.Unmarshal(progress.Payload, &progressPayload))
	assert.Equal(t, 1, progressPayload.TotalAnswered)
}

func TestHandleAnswer_EndPhraseCompletesInterview(t *testing.T) {
	ctx := context.Background()
	h, svc := newTestHandler(t, javaQuestions(5))

	session, err := svc.CreateSession(ctx, []string{"Java"}, "", "")
	require.NoError(t, err)

	conn, state := connectSession(h, session.ID)
	h.dispatch(state, &Message{Type: MsgJoinSession})
	receiveMessage(t, conn) // session-joined

	h.dispatch(state, &Message{Type: MsgStartInterview})
	drainToQuestion(t, conn)

	submitAnswer(t, h, state, "end interview")

	complete := receiveMessage(t, conn)
	require.Equal(t, MsgInterviewComplete, complete.Type)

	reloaded, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseFinished, reloaded.Phase)
	assert.Nil(t, state.current)
}

func TestDispatch_RequiresJoinFirst(t *testing.T) {
	h, svc := newTestHandler(t, javaQuestions(5))

	session, err := svc.CreateSession(context.Background(), []string{"Java"}, "", "")
	require.NoError(t, err)

	conn, state := connectSession(h, session.ID)
	h.dispatch(state, &Message{Type: MsgNextQuestion})

	msg := receiveMessage(t, conn)
	assert.Equal(t, MsgError, msg.Type)
}
