package model

// BankQuestion is a pre-authored question from the static topic-organized bank.
// The state machine treats these as read-only except for usage-statistics updates.
type BankQuestion struct {
	ID             string   `json:"id" bson:"_id,omitempty"`
	Topic          string   `json:"topic" bson:"topic"`
	Question       string   `json:"question" bson:"question"`
	ExpectedAnswer string   `json:"expectedAnswer" bson:"expectedAnswer"`
	Keywords       []string `json:"keywords" bson:"keywords"`
	Difficulty     string   `json:"difficulty" bson:"difficulty"`
	TimesAsked     int      `json:"timesAsked" bson:"timesAsked"`
	AvgScore       int      `json:"avgScore" bson:"avgScore"`
	IsActive       bool     `json:"isActive" bson:"isActive"`
}

// TopicStats is an aggregate over the bank for one topic. The averages are
// float64 because $avg over integer stats produces BSON doubles.
type TopicStats struct {
	Topic         string  `json:"topic" bson:"_id"`
	Count         int     `json:"count" bson:"count"`
	AvgTimesAsked float64 `json:"avgTimesAsked" bson:"avgTimesAsked"`
	AvgScore      float64 `json:"avgScore" bson:"avgScore"`
}
