package model

import "time"

// Phase is the interview state machine phase
type Phase string

const (
	PhaseIntro          Phase = "INTRO"
	PhaseSkillPrompt    Phase = "SKILL_PROMPT"
	PhaseResumeWarmup   Phase = "RESUME_WARMUP"
	PhaseResumeDeepDive Phase = "RESUME_DEEP_DIVE"
	PhaseDeepDive       Phase = "DEEP_DIVE"
	PhaseMixRound       Phase = "MIX_ROUND"
	PhaseFinished       Phase = "FINISHED"
)

// SkipSentinel marks the userAnswer of a skipped question
const SkipSentinel = "[SKIPPED]"

// Answer is a single recorded answer within a session
type Answer struct {
	QuestionID     string    `json:"questionId,omitempty" bson:"questionId,omitempty"`
	QuestionText   string    `json:"questionText" bson:"questionText"`
	Topic          string    `json:"topic" bson:"topic"`
	UserAnswer     string    `json:"userAnswer" bson:"userAnswer"`
	ExpectedAnswer string    `json:"expectedAnswer,omitempty" bson:"expectedAnswer,omitempty"`
	Score          int       `json:"score" bson:"score"`
	IsCorrect      bool      `json:"isCorrect" bson:"isCorrect"`
	IsSkipped      bool      `json:"isSkipped" bson:"isSkipped"`
	Feedback       string    `json:"feedback,omitempty" bson:"feedback,omitempty"`
	ResponseTime   int       `json:"responseTime,omitempty" bson:"responseTime,omitempty"` // seconds
	AnsweredAt     time.Time `json:"answeredAt" bson:"answeredAt"`
}

// ResumeQuestion is a personalized question generated from an uploaded resume
type ResumeQuestion struct {
	ID             string   `json:"id" bson:"id"`
	Question       string   `json:"question" bson:"question"`
	Type           string   `json:"type" bson:"type"`             // deep_dive|tradeoff|scaling|retrospective|behavioral|...
	Difficulty     string   `json:"difficulty" bson:"difficulty"` // easy|medium|hard
	ExpectedAnswer string   `json:"expectedAnswer" bson:"expectedAnswer"`
	Section        string   `json:"section" bson:"section"`
	Keywords       []string `json:"keywords" bson:"keywords"`
	Asked          bool     `json:"asked" bson:"asked"`
}

// Session is one interview attempt. Answers and resume questions are embedded
// and live and die with the session document.
type Session struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Phase Phase  `json:"phase" bson:"phase"`

	// Skills selected by the user before the session starts; drives question
	// selection. SkillsDetected comes from the resume and is informational only.
	UserSelectedSkills []string `json:"userSelectedSkills" bson:"userSelectedSkills"`
	SkillsDetected     []string `json:"skillsDetected" bson:"skillsDetected"`
	SkillsQueue        []string `json:"skillsQueue" bson:"skillsQueue"`
	CurrentTopic       string   `json:"currentTopic" bson:"currentTopic"`

	QuestionsAsked       int      `json:"questionsAsked" bson:"questionsAsked"`
	WarmupQuestionsAsked int      `json:"warmupQuestionsAsked" bson:"warmupQuestionsAsked"`
	ResumeQuestionsAsked int      `json:"resumeQuestionsAsked" bson:"resumeQuestionsAsked"`
	AskedQuestionIDs     []string `json:"askedQuestionIds" bson:"askedQuestionIds"`

	Answers []Answer `json:"answers" bson:"answers"`

	ResumePath           string           `json:"resumePath,omitempty" bson:"resumePath,omitempty"`
	ResumeSummary        string           `json:"resumeSummary,omitempty" bson:"resumeSummary,omitempty"`
	ResumeQuestions      []ResumeQuestion `json:"resumeQuestions" bson:"resumeQuestions"`
	ResumeQuestionsReady bool             `json:"resumeQuestionsReady" bson:"resumeQuestionsReady"`

	// Keyword queue for counter-questioning. Each keyword is consumed at most
	// once per session; UsedKeywords is the spent set.
	ContextKeywords []string `json:"contextKeywords" bson:"contextKeywords"`
	UsedKeywords    []string `json:"usedKeywords" bson:"usedKeywords"`

	// Snapshot of the last emitted question, kept only for reconnection replay.
	LastQuestion *QuestionPayload `json:"lastQuestion,omitempty" bson:"lastQuestion,omitempty"`

	FinalScore int        `json:"finalScore" bson:"finalScore"`
	StartedAt  time.Time  `json:"startedAt" bson:"startedAt"`
	EndedAt    *time.Time `json:"endedAt,omitempty" bson:"endedAt,omitempty"`

	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	IPAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
}

// CalculateFinalScore averages the scores of non-skipped answers.
func (s *Session) CalculateFinalScore() int {
	total, answered := 0, 0
	for _, a := range s.Answers {
		if a.IsSkipped {
			continue
		}
		total += a.Score
		answered++
	}
	if answered == 0 {
		return 0
	}
	return int(float64(total)/float64(answered) + 0.5)
}

// AnsweredCount returns the number of non-skipped answers.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if !a.IsSkipped {
			n++
		}
	}
	return n
}

// SkippedCount returns the number of skipped answers.
func (s *Session) SkippedCount() int {
	return len(s.Answers) - s.AnsweredCount()
}

// HasAsked reports whether a bank question id was already delivered.
func (s *Session) HasAsked(id string) bool {
	for _, asked := range s.AskedQuestionIDs {
		if asked == id {
			return true
		}
	}
	return false
}

// NextResumeQuestion returns the first unasked resume question, or nil.
func (s *Session) NextResumeQuestion() *ResumeQuestion {
	for i := range s.ResumeQuestions {
		if !s.ResumeQuestions[i].Asked {
			return &s.ResumeQuestions[i]
		}
	}
	return nil
}

// UnaskedResumeCount returns how many resume questions remain.
func (s *Session) UnaskedResumeCount() int {
	n := 0
	for _, q := range s.ResumeQuestions {
		if !q.Asked {
			n++
		}
	}
	return n
}

// KeywordUsed reports whether a context keyword was already consumed.
func (s *Session) KeywordUsed(keyword string) bool {
	for _, used := range s.UsedKeywords {
		if used == keyword {
			return true
		}
	}
	return false
}

// DurationMinutes returns the session length, or 0 while still running.
func (s *Session) DurationMinutes() int {
	if s.EndedAt == nil {
		return 0
	}
	return int(s.EndedAt.Sub(s.StartedAt).Minutes() + 0.5)
}
