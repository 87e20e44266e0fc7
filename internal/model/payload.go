package model

// StepKind tags what the state machine produced on an advance call
type StepKind string

const (
	StepIntro      StepKind = "intro"
	StepTransition StepKind = "transition"
	StepQuestion   StepKind = "question"
	StepFinished   StepKind = "finished"
)

// QuestionKind tags the phase variant a question payload belongs to
type QuestionKind string

const (
	QuestionSkillPrompt QuestionKind = "skill_prompt"
	QuestionWarmup      QuestionKind = "warmup"
	QuestionResume      QuestionKind = "resume"
	QuestionDeepDive    QuestionKind = "deep_dive"
	QuestionMixRound    QuestionKind = "mix_round"
)

// QuestionPayload is a question as emitted to the transport layer. FullQuestion
// carries any stylistic prefix; Question is the bare bank/resume text the
// evaluator compares against.
type QuestionPayload struct {
	Kind           QuestionKind `json:"kind" bson:"kind"`
	QuestionID     string       `json:"questionId,omitempty" bson:"questionId,omitempty"`
	Topic          string       `json:"topic,omitempty" bson:"topic,omitempty"`
	Question       string       `json:"question" bson:"question"`
	FullQuestion   string       `json:"fullQuestion,omitempty" bson:"fullQuestion,omitempty"`
	ExpectedAnswer string       `json:"expectedAnswer,omitempty" bson:"expectedAnswer,omitempty"`
	Keywords       []string     `json:"keywords,omitempty" bson:"keywords,omitempty"`
	SpeakText      string       `json:"speakText" bson:"speakText"`
	Ordinal        int          `json:"ordinal,omitempty" bson:"ordinal,omitempty"`
	Total          int          `json:"total,omitempty" bson:"total,omitempty"`

	// Resume variant only
	Section    string `json:"section,omitempty" bson:"section,omitempty"`
	Difficulty string `json:"difficulty,omitempty" bson:"difficulty,omitempty"`

	// Skill-prompt variant only: the client must run skill detection on the answer
	RequiresSkillDetection bool `json:"requiresSkillDetection,omitempty" bson:"requiresSkillDetection,omitempty"`
}

// NextStep is the tagged union returned by the state machine. Exactly one of
// Question or Summary is set depending on Kind.
type NextStep struct {
	Kind            StepKind         `json:"kind"`
	Message         string           `json:"message,omitempty"`
	SpeakText       string           `json:"speakText,omitempty"`
	DetectedSkills  []string         `json:"detectedSkills,omitempty"`
	SkipSkillPrompt bool             `json:"skipSkillPrompt,omitempty"`
	NextPhase       Phase            `json:"nextPhase,omitempty"`
	Question        *QuestionPayload `json:"question,omitempty"`
	Summary         *Summary         `json:"summary,omitempty"`
}

// EvaluationResult is the outcome of scoring one answer
type EvaluationResult struct {
	Score             int    `json:"score"`
	Feedback          string `json:"feedback"`
	ShowCorrectAnswer bool   `json:"showCorrectAnswer"`
	IsCorrect         bool   `json:"isCorrect"`
}

// Progress is the aggregate counters pushed to the client
type Progress struct {
	Phase                    Phase  `json:"phase"`
	CurrentTopic             string `json:"currentTopic"`
	QuestionsAsked           int    `json:"questionsAsked"`
	TotalAnswered            int    `json:"totalAnswered"`
	TotalSkipped             int    `json:"totalSkipped"`
	AverageScore             int    `json:"averageScore"`
	TopicsRemaining          int    `json:"topicsRemaining"`
	ResumeQuestionsRemaining int    `json:"resumeQuestionsRemaining"`
}
