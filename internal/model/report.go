package model

import "time"

// Summary is the terminal roll-up emitted with interview-complete
type Summary struct {
	FinalScore           int        `json:"finalScore"`
	ResumeScore          int        `json:"resumeQuestionsScore"`
	BankScore            int        `json:"localQuestionsScore"`
	TotalQuestions       int        `json:"totalQuestions"`
	Answered             int        `json:"answered"`
	Skipped              int        `json:"skipped"`
	Correct              int        `json:"correct"`
	TopicsCovered        []string   `json:"topicsCovered"`
	ResumeQuestionsAsked int        `json:"resumeQuestionsAsked"`
	WarmupQuestionsAsked int        `json:"warmupQuestionsAsked"`
	DurationMinutes      int        `json:"duration"`
	StartedAt            time.Time  `json:"startedAt"`
	EndedAt              *time.Time `json:"endedAt,omitempty"`
	UserSelectedSkills   []string   `json:"userSelectedSkills"`
	ResumeDetectedSkills []string   `json:"resumeDetectedSkills"`
}

// TopicBreakdown is per-topic performance within a report
type TopicBreakdown struct {
	Topic             string `json:"topic"`
	AverageScore      int    `json:"averageScore"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
	Accuracy          int    `json:"accuracy"`
}

// QuestionFeedback is one answered question in the final report
type QuestionFeedback struct {
	QuestionNumber int    `json:"questionNumber"`
	Question       string `json:"question"`
	Topic          string `json:"topic"`
	UserAnswer     string `json:"userAnswer"`
	ExpectedAnswer string `json:"expectedAnswer,omitempty"`
	Score          int    `json:"score"`
	MaxScore       int    `json:"maxScore"`
	IsCorrect      bool   `json:"isCorrect"`
	IsSkipped      bool   `json:"isSkipped"`
	Feedback       string `json:"feedback,omitempty"`
	ResponseTime   int    `json:"responseTime,omitempty"`
}

// Report is the full post-interview performance report
type Report struct {
	SessionID        string             `json:"sessionId"`
	CandidateProfile string             `json:"candidateProfile,omitempty"`
	Summary          Summary            `json:"summary"`
	TopicBreakdown   []TopicBreakdown   `json:"topicBreakdown"`
	Strengths        []string           `json:"strengths"`
	Weaknesses       []string           `json:"weaknesses"`
	Recommendations  []string           `json:"recommendations"`
	QuestionFeedback []QuestionFeedback `json:"questionFeedback"`
}
