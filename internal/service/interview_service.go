package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"interviewerbot/internal/cache"
	"interviewerbot/internal/config"
	"interviewerbot/internal/model"
	"interviewerbot/internal/repository"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// fallbackTopic is used when skill elicitation yields nothing.
const fallbackTopic = "Java"

var resumePrefixes = []string{
	"Based on your resume, ",
	"Regarding your experience, ",
	"Let me ask you about something you mentioned. ",
}

var counterQuestionAcks = []string{
	"Going back to what you mentioned about %s. ",
	"You brought up %s earlier, let's explore that. ",
	"Since you mentioned %s, here's a related one. ",
}

// InterviewService drives the interview phase machine. All mutating entry
// points funnel through a per-session worker so overlapping socket events
// cannot race on the session record.
type InterviewService struct {
	cfg       *config.Config
	sessions  repository.SessionRepo
	cache     cache.SessionCache
	questions *QuestionService
	evaluator *EvaluatorService
	keywords  *KeywordExtractor
	workers   *SessionWorkers
}

func NewInterviewService(
	cfg *config.Config,
	sessions repository.SessionRepo,
	sessionCache cache.SessionCache,
	questions *QuestionService,
	evaluator *EvaluatorService,
	keywords *KeywordExtractor,
	workers *SessionWorkers,
) *InterviewService {
	return &InterviewService{
		cfg:       cfg,
		sessions:  sessions,
		cache:     sessionCache,
		questions: questions,
		evaluator: evaluator,
		keywords:  keywords,
		workers:   workers,
	}
}

// CreateSession starts a new interview in the INTRO phase. Empty skills are
// allowed; the legacy SKILL_PROMPT path elicits them from the first answer.
func (s *InterviewService) CreateSession(ctx context.Context, skills []string, userAgent, ip string) (*model.Session, error) {
	session := &model.Session{
		Phase:              model.PhaseIntro,
		UserSelectedSkills: normalizeSkills(skills),
		Answers:            []model.Answer{},
		AskedQuestionIDs:   []string{},
		StartedAt:          time.Now(),
		UserAgent:          userAgent,
		IPAddress:          ip,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.cacheSession(ctx, session)
	return session, nil
}

// GetSession loads a session from cache, then the durable store.
func (s *InterviewService) GetSession(ctx context.Context, id string) (*model.Session, error) {
	return s.loadSession(ctx, id)
}

// ListSessions returns recent sessions, newest first.
func (s *InterviewService) ListSessions(ctx context.Context, limit, offset int) ([]*model.Session, error) {
	return s.sessions.List(ctx, limit, offset)
}

// DeleteSession removes a session from the store and the cache.
func (s *InterviewService) DeleteSession(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			log.Printf("[Interview] failed to evict session %s from cache: %v", id, err)
		}
	}
	return nil
}

// Advance produces the next step for the session: a question, a transition
// message or the finished summary. It never returns an empty question; bank
// exhaustion advances topic or phase instead.
func (s *InterviewService) Advance(ctx context.Context, sessionID string) (step *model.NextStep, err error) {
	s.workers.Do(sessionID, func() {
		step, err = s.advance(ctx, sessionID)
	})
	return step, err
}

func (s *InterviewService) advance(ctx context.Context, sessionID string) (*model.NextStep, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Exhaustion handling mutates the session and loops instead of recursing.
	// The ceiling covers one hop per queued topic plus the phase fall-throughs.
	maxHops := len(session.SkillsQueue) + 3
	for hop := 0; hop < maxHops; hop++ {
		var step *model.NextStep
		var retry bool

		switch session.Phase {
		case model.PhaseIntro:
			step = s.introStep(session)
		case model.PhaseSkillPrompt:
			step = skillPromptStep()
		case model.PhaseResumeWarmup:
			step, retry, err = s.warmupStep(ctx, session)
		case model.PhaseResumeDeepDive:
			step, retry = s.resumeStep(session)
		case model.PhaseDeepDive:
			step, retry, err = s.deepDiveStep(ctx, session)
		case model.PhaseMixRound:
			step, err = s.mixRoundStep(ctx, session)
		case model.PhaseFinished:
			step = s.finishStep(session)
		default:
			return nil, fmt.Errorf("session %s is in unknown phase %q", sessionID, session.Phase)
		}
		if err != nil {
			return nil, err
		}
		if retry {
			continue
		}

		if step.Kind == model.StepQuestion {
			session.LastQuestion = step.Question
		}
		if err := s.saveSession(ctx, session); err != nil {
			return nil, err
		}
		return step, nil
	}
	return nil, fmt.Errorf("session %s could not produce a next step", sessionID)
}

func (s *InterviewService) introStep(session *model.Session) *model.NextStep {
	if len(session.UserSelectedSkills) > 0 {
		session.SkillsQueue = append([]string(nil), session.UserSelectedSkills...)
		session.CurrentTopic = session.SkillsQueue[0]
		session.Phase = model.PhaseResumeWarmup
		msg := fmt.Sprintf(
			"Welcome to your mock interview! We'll cover %s. I'll start with a few warmup questions while I go through your resume.",
			strings.Join(session.UserSelectedSkills, ", "))
		return &model.NextStep{
			Kind:            model.StepIntro,
			Message:         msg,
			SpeakText:       msg,
			SkipSkillPrompt: true,
			NextPhase:       model.PhaseResumeWarmup,
		}
	}

	session.Phase = model.PhaseSkillPrompt
	return skillPromptStep()
}

func skillPromptStep() *model.NextStep {
	question := "Welcome to your mock interview! Which technologies or topics would you like to be interviewed on?"
	return &model.NextStep{
		Kind:      model.StepQuestion,
		NextPhase: model.PhaseSkillPrompt,
		Question: &model.QuestionPayload{
			Kind:                   model.QuestionSkillPrompt,
			Question:               question,
			FullQuestion:           question,
			SpeakText:              question,
			RequiresSkillDetection: true,
		},
	}
}

// ProcessIntroAnswer consumes the skill elicitation answer on the legacy path.
// Detection runs client-side; an empty result falls back to a fixed topic.
func (s *InterviewService) ProcessIntroAnswer(ctx context.Context, sessionID string, detectedSkills []string) (step *model.NextStep, err error) {
	s.workers.Do(sessionID, func() {
		step, err = s.processIntroAnswer(ctx, sessionID, detectedSkills)
	})
	return step, err
}

func (s *InterviewService) processIntroAnswer(ctx context.Context, sessionID string, detectedSkills []string) (*model.NextStep, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	skills := normalizeSkills(detectedSkills)
	if len(skills) == 0 {
		skills = []string{fallbackTopic}
	}

	session.UserSelectedSkills = skills
	session.SkillsQueue = append([]string(nil), skills...)
	session.CurrentTopic = skills[0]
	session.Phase = model.PhaseResumeWarmup
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Great, we'll focus on %s. Let's warm up with a few questions.", strings.Join(skills, ", "))
	return &model.NextStep{
		Kind:           model.StepTransition,
		Message:        msg,
		SpeakText:      msg,
		DetectedSkills: skills,
		NextPhase:      model.PhaseResumeWarmup,
	}, nil
}

func (s *InterviewService) warmupStep(ctx context.Context, session *model.Session) (*model.NextStep, bool, error) {
	// Readiness interrupts warmup mid-count; that is the whole point of
	// the warmup phase.
	if session.ResumeQuestionsReady && len(session.ResumeQuestions) > 0 {
		session.Phase = model.PhaseResumeDeepDive
		session.QuestionsAsked = 0
		msg := "Your personalized questions are ready. Let's talk about your resume."
		return &model.NextStep{
			Kind:      model.StepTransition,
			Message:   msg,
			SpeakText: msg,
			NextPhase: model.PhaseResumeDeepDive,
		}, false, nil
	}

	if session.WarmupQuestionsAsked >= s.cfg.MaxWarmupQuestions {
		// Resume still pending: rotate to the next topic and keep warming up.
		if len(session.SkillsQueue) > 1 {
			session.SkillsQueue = session.SkillsQueue[1:]
			session.CurrentTopic = session.SkillsQueue[0]
		}
		session.WarmupQuestionsAsked = 0
	}

	topic := session.CurrentTopic
	if topic == "" {
		if len(session.SkillsQueue) > 0 {
			topic = session.SkillsQueue[0]
		} else {
			topic = "General"
		}
		session.CurrentTopic = topic
	}

	q, err := s.questions.GetRandomQuestion(ctx, topic, session.AskedQuestionIDs)
	if err != nil {
		return nil, false, err
	}
	if q == nil {
		if len(session.SkillsQueue) > 1 {
			session.SkillsQueue = session.SkillsQueue[1:]
			session.CurrentTopic = session.SkillsQueue[0]
			return nil, true, nil
		}
		// Bank exhausted for every warmup topic.
		if session.ResumeQuestionsReady && len(session.ResumeQuestions) > 0 {
			session.Phase = model.PhaseResumeDeepDive
		} else {
			session.Phase = model.PhaseDeepDive
		}
		session.QuestionsAsked = 0
		return nil, true, nil
	}

	session.AskedQuestionIDs = append(session.AskedQuestionIDs, q.ID)
	session.WarmupQuestionsAsked++
	return &model.NextStep{
		Kind: model.StepQuestion,
		Question: &model.QuestionPayload{
			Kind:           model.QuestionWarmup,
			QuestionID:     q.ID,
			Topic:          q.Topic,
			Question:       q.Question,
			FullQuestion:   q.Question,
			ExpectedAnswer: q.ExpectedAnswer,
			Keywords:       q.Keywords,
			SpeakText:      q.Question,
			Ordinal:        session.WarmupQuestionsAsked,
			Total:          s.cfg.MaxWarmupQuestions,
		},
	}, false, nil
}

func (s *InterviewService) resumeStep(session *model.Session) (*model.NextStep, bool) {
	if session.UnaskedResumeCount() == 0 || session.ResumeQuestionsAsked >= s.cfg.ResumeQuestionsTarget {
		session.Phase = model.PhaseDeepDive
		session.QuestionsAsked = 0
		if len(session.UserSelectedSkills) > 0 {
			session.SkillsQueue = append([]string(nil), session.UserSelectedSkills...)
			session.CurrentTopic = session.SkillsQueue[0]
		} else if session.CurrentTopic == "" {
			session.CurrentTopic = "General"
		}
		msg := "That covers your resume. Now let me ask you some questions from our side."
		return &model.NextStep{
			Kind:      model.StepTransition,
			Message:   msg,
			SpeakText: msg,
			NextPhase: model.PhaseDeepDive,
		}, false
	}

	rq := session.NextResumeQuestion()
	rq.Asked = true
	session.ResumeQuestionsAsked++

	full := rq.Question
	if rand.Float64() < 0.30 {
		full = resumePrefixes[rand.Intn(len(resumePrefixes))] + rq.Question
	}

	total := len(session.ResumeQuestions)
	if total > s.cfg.ResumeQuestionsTarget {
		total = s.cfg.ResumeQuestionsTarget
	}

	return &model.NextStep{
		Kind: model.StepQuestion,
		Question: &model.QuestionPayload{
			Kind:           model.QuestionResume,
			QuestionID:     rq.ID,
			Topic:          "Resume",
			Question:       rq.Question,
			FullQuestion:   full,
			ExpectedAnswer: rq.ExpectedAnswer,
			Keywords:       rq.Keywords,
			SpeakText:      full,
			Ordinal:        session.ResumeQuestionsAsked,
			Total:          total,
			Section:        rq.Section,
			Difficulty:     rq.Difficulty,
		},
	}, false
}

func (s *InterviewService) deepDiveStep(ctx context.Context, session *model.Session) (*model.NextStep, bool, error) {
	topic := session.CurrentTopic
	if topic == "" {
		if len(session.SkillsQueue) > 0 {
			topic = session.SkillsQueue[0]
		} else {
			topic = "General"
		}
		session.CurrentTopic = topic
	}

	if session.QuestionsAsked >= s.cfg.QuestionsPerTopic {
		session.SkillsQueue = removeTopic(session.SkillsQueue, topic)
		if len(session.SkillsQueue) > 0 {
			session.CurrentTopic = session.SkillsQueue[0]
			session.QuestionsAsked = 0
			msg := fmt.Sprintf("Great work on %s! Now let's move on to %s.", topic, session.CurrentTopic)
			return &model.NextStep{
				Kind:      model.StepTransition,
				Message:   msg,
				SpeakText: msg,
				NextPhase: model.PhaseDeepDive,
			}, false, nil
		}
		session.Phase = model.PhaseMixRound
		session.QuestionsAsked = 0
		msg := "Nice work! Let's wrap up with a quick mixed round."
		return &model.NextStep{
			Kind:      model.StepTransition,
			Message:   msg,
			SpeakText: msg,
			NextPhase: model.PhaseMixRound,
		}, false, nil
	}

	var q *model.BankQuestion
	var prefix string

	// Counter-question on the candidate's own keywords first. The keyword is
	// popped either way; usedKeywords guards double consumption.
	if len(session.ContextKeywords) > 0 {
		keyword := session.ContextKeywords[0]
		session.ContextKeywords = session.ContextKeywords[1:]
		if !session.KeywordUsed(keyword) {
			allowed := session.UserSelectedSkills
			if len(allowed) == 0 {
				allowed = []string{topic}
			}
			match, err := s.questions.GetCounterQuestion(ctx, keyword, allowed, session.AskedQuestionIDs)
			if err != nil {
				log.Printf("[Interview] counter-question lookup failed for %q: %v", keyword, err)
			} else if match != nil {
				q = match
				session.UsedKeywords = append(session.UsedKeywords, keyword)
				prefix = fmt.Sprintf(counterQuestionAcks[rand.Intn(len(counterQuestionAcks))], keyword)
			}
		}
	}

	if q == nil {
		var err error
		q, err = s.questions.GetRandomQuestion(ctx, topic, session.AskedQuestionIDs)
		if err != nil {
			return nil, false, err
		}
	}
	if q == nil {
		// Topic exhausted: force the budget so the next hop advances topic.
		session.QuestionsAsked = s.cfg.QuestionsPerTopic
		return nil, true, nil
	}

	session.AskedQuestionIDs = append(session.AskedQuestionIDs, q.ID)
	session.QuestionsAsked++
	full := prefix + q.Question
	return &model.NextStep{
		Kind: model.StepQuestion,
		Question: &model.QuestionPayload{
			Kind:           model.QuestionDeepDive,
			QuestionID:     q.ID,
			Topic:          q.Topic,
			Question:       q.Question,
			FullQuestion:   full,
			ExpectedAnswer: q.ExpectedAnswer,
			Keywords:       q.Keywords,
			SpeakText:      full,
			Ordinal:        session.QuestionsAsked,
			Total:          s.cfg.QuestionsPerTopic,
			Difficulty:     q.Difficulty,
		},
	}, false, nil
}

func (s *InterviewService) mixRoundStep(ctx context.Context, session *model.Session) (*model.NextStep, error) {
	if session.QuestionsAsked >= s.cfg.MixRoundQuestions {
		return s.finishStep(session), nil
	}

	topics := session.UserSelectedSkills
	if len(topics) == 0 {
		topics = []string{"General"}
	}
	topic := topics[rand.Intn(len(topics))]

	q, err := s.questions.GetRandomQuestion(ctx, topic, session.AskedQuestionIDs)
	if err != nil {
		return nil, err
	}
	if q == nil {
		// Bank exhausted early ends the interview.
		return s.finishStep(session), nil
	}

	session.AskedQuestionIDs = append(session.AskedQuestionIDs, q.ID)
	session.QuestionsAsked++
	return &model.NextStep{
		Kind: model.StepQuestion,
		Question: &model.QuestionPayload{
			Kind:           model.QuestionMixRound,
			QuestionID:     q.ID,
			Topic:          q.Topic,
			Question:       q.Question,
			FullQuestion:   q.Question,
			ExpectedAnswer: q.ExpectedAnswer,
			Keywords:       q.Keywords,
			SpeakText:      q.Question,
			Ordinal:        session.QuestionsAsked,
			Total:          s.cfg.MixRoundQuestions,
		},
	}, nil
}

func (s *InterviewService) finishStep(session *model.Session) *model.NextStep {
	if session.Phase != model.PhaseFinished || session.EndedAt == nil {
		session.Phase = model.PhaseFinished
		now := time.Now()
		session.EndedAt = &now
		session.FinalScore = session.CalculateFinalScore()
		session.LastQuestion = nil
	}

	summary := buildSummary(session)
	msg := finalFeedback(session.FinalScore)
	return &model.NextStep{
		Kind:      model.StepFinished,
		Message:   msg,
		SpeakText: msg,
		NextPhase: model.PhaseFinished,
		Summary:   summary,
	}
}

// RecordAnswer evaluates and appends one answer, then queues the single best
// newly discovered keyword for later counter-questioning.
func (s *InterviewService) RecordAnswer(ctx context.Context, sessionID string, question *model.QuestionPayload, answer string, responseTime int) (result *model.EvaluationResult, err error) {
	s.workers.Do(sessionID, func() {
		result, err = s.recordAnswer(ctx, sessionID, question, answer, responseTime)
	})
	return result, err
}

func (s *InterviewService) recordAnswer(ctx context.Context, sessionID string, question *model.QuestionPayload, answer string, responseTime int) (*model.EvaluationResult, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	eval := s.evaluator.Evaluate(ctx, answer, question.ExpectedAnswer, question.Keywords)

	session.Answers = append(session.Answers, model.Answer{
		QuestionID:     question.QuestionID,
		QuestionText:   question.Question,
		Topic:          answerTopic(question),
		UserAnswer:     answer,
		ExpectedAnswer: question.ExpectedAnswer,
		Score:          eval.Score,
		IsCorrect:      eval.IsCorrect,
		Feedback:       eval.Feedback,
		ResponseTime:   responseTime,
		AnsweredAt:     time.Now(),
	})

	if extracted := s.keywords.Extract(answer); len(extracted) > 0 {
		best := s.keywords.BestKeyword(extracted)
		if best != "" && !containsString(session.ContextKeywords, best) && !session.KeywordUsed(best) {
			session.ContextKeywords = append(session.ContextKeywords, best)
		}
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if isBankQuestion(question.Kind) {
		s.questions.RecordQuestionStats(ctx, question.QuestionID, eval.Score)
	}
	return eval, nil
}

// RecordAnswerAsync enqueues evaluation on the session worker and calls done
// when it completes. Enqueue happens before return, so calling this in
// submission order preserves answer order.
func (s *InterviewService) RecordAnswerAsync(ctx context.Context, sessionID string, question *model.QuestionPayload, answer string, responseTime int, done func(*model.EvaluationResult, error)) {
	s.workers.Go(sessionID, func() {
		done(s.recordAnswer(ctx, sessionID, question, answer, responseTime))
	})
}

// RecordSkip marks the current question skipped. Skipping the same question
// twice is a no-op.
func (s *InterviewService) RecordSkip(ctx context.Context, sessionID string, question *model.QuestionPayload) (expectedAnswer string, err error) {
	s.workers.Do(sessionID, func() {
		expectedAnswer, err = s.recordSkip(ctx, sessionID, question)
	})
	return expectedAnswer, err
}

func (s *InterviewService) recordSkip(ctx context.Context, sessionID string, question *model.QuestionPayload) (string, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	for _, a := range session.Answers {
		if a.IsSkipped && sameQuestion(a, question) {
			return question.ExpectedAnswer, nil
		}
	}

	session.Answers = append(session.Answers, model.Answer{
		QuestionID:     question.QuestionID,
		QuestionText:   question.Question,
		Topic:          answerTopic(question),
		UserAnswer:     model.SkipSentinel,
		ExpectedAnswer: question.ExpectedAnswer,
		Score:          0,
		IsSkipped:      true,
		AnsweredAt:     time.Now(),
	})
	if err := s.saveSession(ctx, session); err != nil {
		return "", err
	}
	return question.ExpectedAnswer, nil
}

// SetResumePath records where the uploaded resume landed on disk.
func (s *InterviewService) SetResumePath(ctx context.Context, sessionID, path string) (err error) {
	s.workers.Do(sessionID, func() {
		var session *model.Session
		session, err = s.loadSession(ctx, sessionID)
		if err != nil {
			return
		}
		session.ResumePath = path
		err = s.saveSession(ctx, session)
	})
	return err
}

// SetResumeQuestionsReady stores the generated question set and flips the
// readiness flag. Implements ResumeReadyHandler; the flag only flips once.
func (s *InterviewService) SetResumeQuestionsReady(ctx context.Context, sessionID string, questions []model.ResumeQuestion, summary string, detectedSkills []string) (err error) {
	s.workers.Do(sessionID, func() {
		err = s.setResumeQuestionsReady(ctx, sessionID, questions, summary, detectedSkills)
	})
	return err
}

func (s *InterviewService) setResumeQuestionsReady(ctx context.Context, sessionID string, questions []model.ResumeQuestion, summary string, detectedSkills []string) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.ResumeQuestionsReady {
		log.Printf("[Interview] resume questions already set for session %s, ignoring", sessionID)
		return nil
	}

	session.ResumeQuestions = questions
	session.ResumeQuestionsReady = true
	session.ResumeSummary = summary
	session.SkillsDetected = detectedSkills
	if err := s.saveSession(ctx, session); err != nil {
		return err
	}
	log.Printf("[Interview] %d resume questions ready for session %s", len(questions), sessionID)
	return nil
}

// EndInterview forces FINISHED from any phase and returns the final report.
func (s *InterviewService) EndInterview(ctx context.Context, sessionID string) (report *model.Report, err error) {
	s.workers.Do(sessionID, func() {
		report, err = s.endInterview(ctx, sessionID)
	})
	return report, err
}

func (s *InterviewService) endInterview(ctx context.Context, sessionID string) (*model.Report, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.finishStep(session)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return buildReport(session), nil
}

// Report builds the post-interview report without mutating the session.
func (s *InterviewService) Report(ctx context.Context, sessionID string) (*model.Report, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildReport(session), nil
}

// Progress returns the aggregate counters pushed to the client.
func (s *InterviewService) Progress(ctx context.Context, sessionID string) (*model.Progress, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &model.Progress{
		Phase:                    session.Phase,
		CurrentTopic:             session.CurrentTopic,
		QuestionsAsked:           len(session.Answers),
		TotalAnswered:            session.AnsweredCount(),
		TotalSkipped:             session.SkippedCount(),
		AverageScore:             session.CalculateFinalScore(),
		TopicsRemaining:          len(session.SkillsQueue),
		ResumeQuestionsRemaining: session.UnaskedResumeCount(),
	}, nil
}

func (s *InterviewService) loadSession(ctx context.Context, id string) (*model.Session, error) {
	if s.cache != nil {
		if session, err := s.cache.Get(ctx, id); err == nil && session != nil {
			return session, nil
		}
	}

	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	s.cacheSession(ctx, session)
	return session, nil
}

func (s *InterviewService) saveSession(ctx context.Context, session *model.Session) error {
	if err := s.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	s.cacheSession(ctx, session)
	return nil
}

func (s *InterviewService) cacheSession(ctx context.Context, session *model.Session) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, session); err != nil {
		log.Printf("[Interview] failed to cache session %s: %v", session.ID, err)
	}
}

func buildSummary(session *model.Session) *model.Summary {
	var resumeTotal, resumeCount, bankTotal, bankCount, correct int
	topicSet := make(map[string]bool)
	var topics []string

	for _, a := range session.Answers {
		if !topicSet[a.Topic] {
			topicSet[a.Topic] = true
			topics = append(topics, a.Topic)
		}
		if a.IsSkipped {
			continue
		}
		if a.IsCorrect {
			correct++
		}
		if a.Topic == "Resume" {
			resumeTotal += a.Score
			resumeCount++
		} else {
			bankTotal += a.Score
			bankCount++
		}
	}

	return &model.Summary{
		FinalScore:           session.CalculateFinalScore(),
		ResumeScore:          average(resumeTotal, resumeCount),
		BankScore:            average(bankTotal, bankCount),
		TotalQuestions:       len(session.Answers),
		Answered:             session.AnsweredCount(),
		Skipped:              session.SkippedCount(),
		Correct:              correct,
		TopicsCovered:        topics,
		ResumeQuestionsAsked: session.ResumeQuestionsAsked,
		WarmupQuestionsAsked: session.WarmupQuestionsAsked,
		DurationMinutes:      session.DurationMinutes(),
		StartedAt:            session.StartedAt,
		EndedAt:              session.EndedAt,
		UserSelectedSkills:   session.UserSelectedSkills,
		ResumeDetectedSkills: session.SkillsDetected,
	}
}

func buildReport(session *model.Session) *model.Report {
	summary := buildSummary(session)

	type topicAgg struct {
		total   int
		count   int
		correct int
	}
	aggs := make(map[string]*topicAgg)
	var order []string
	for _, a := range session.Answers {
		if a.IsSkipped {
			continue
		}
		agg, ok := aggs[a.Topic]
		if !ok {
			agg = &topicAgg{}
			aggs[a.Topic] = agg
			order = append(order, a.Topic)
		}
		agg.total += a.Score
		agg.count++
		if a.IsCorrect {
			agg.correct++
		}
	}

	var breakdown []model.TopicBreakdown
	var strengths, weaknesses []string
	for _, topic := range order {
		agg := aggs[topic]
		avg := average(agg.total, agg.count)
		breakdown = append(breakdown, model.TopicBreakdown{
			Topic:             topic,
			AverageScore:      avg,
			QuestionsAnswered: agg.count,
			CorrectAnswers:    agg.correct,
			Accuracy:          average(agg.correct*100, agg.count),
		})
		if avg >= 75 {
			strengths = append(strengths, topic)
		} else if avg < 50 {
			weaknesses = append(weaknesses, topic)
		}
	}

	var recommendations []string
	for _, topic := range weaknesses {
		recommendations = append(recommendations, fmt.Sprintf("Review the fundamentals of %s and practice explaining them out loud.", topic))
	}
	if summary.Skipped > summary.Answered {
		recommendations = append(recommendations, "You skipped more questions than you answered. Attempting a partial answer usually scores better than skipping.")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Keep practicing with harder questions to push your score further.")
	}

	feedback := make([]model.QuestionFeedback, 0, len(session.Answers))
	for i, a := range session.Answers {
		feedback = append(feedback, model.QuestionFeedback{
			QuestionNumber: i + 1,
			Question:       a.QuestionText,
			Topic:          a.Topic,
			UserAnswer:     a.UserAnswer,
			ExpectedAnswer: a.ExpectedAnswer,
			Score:          a.Score,
			MaxScore:       100,
			IsCorrect:      a.IsCorrect,
			IsSkipped:      a.IsSkipped,
			Feedback:       a.Feedback,
			ResponseTime:   a.ResponseTime,
		})
	}

	return &model.Report{
		SessionID:        session.ID,
		CandidateProfile: session.ResumeSummary,
		Summary:          *summary,
		TopicBreakdown:   breakdown,
		Strengths:        strengths,
		Weaknesses:       weaknesses,
		Recommendations:  recommendations,
		QuestionFeedback: feedback,
	}
}

func finalFeedback(score int) string {
	switch {
	case score >= 80:
		return "Outstanding performance! You'd do well in a real interview."
	case score >= 60:
		return "Solid performance. Brush up on the weaker topics and you'll be in great shape."
	case score >= 40:
		return "Decent effort. Focus on the fundamentals in your weaker areas."
	default:
		return "Keep practicing. Pick one topic from the report and go deep on it this week."
	}
}

func answerTopic(q *model.QuestionPayload) string {
	if q.Kind == model.QuestionResume {
		return "Resume"
	}
	if q.Topic != "" {
		return q.Topic
	}
	return "General"
}

func isBankQuestion(kind model.QuestionKind) bool {
	return kind == model.QuestionWarmup || kind == model.QuestionDeepDive || kind == model.QuestionMixRound
}

func sameQuestion(a model.Answer, q *model.QuestionPayload) bool {
	if q.QuestionID != "" {
		return a.QuestionID == q.QuestionID
	}
	return a.QuestionText == q.Question
}

func normalizeSkills(skills []string) []string {
	var out []string
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}

func removeTopic(queue []string, topic string) []string {
	out := make([]string, 0, len(queue))
	for _, t := range queue {
		if t != topic {
			out = append(out, t)
		}
	}
	return out
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func average(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(float64(total)/float64(count) + 0.5)
}
