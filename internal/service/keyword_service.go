package service

import (
	"regexp"
	"strings"
)

const maxExtractedKeywords = 10

// Technology names matched case-insensitively as whole words.
var techVocabulary = []string{
	"java", "python", "javascript", "typescript", "golang", "kotlin", "scala",
	"react", "angular", "vue", "node", "nodejs", "express", "django", "flask",
	"spring", "hibernate", "kubernetes", "docker", "terraform", "ansible",
	"jenkins", "kafka", "rabbitmq", "redis", "mongodb", "postgresql", "mysql",
	"elasticsearch", "graphql", "rest", "grpc", "microservices", "aws", "azure",
	"gcp", "lambda", "tensorflow", "pytorch", "pandas", "numpy", "sklearn",
	"hadoop", "spark", "airflow", "git", "linux", "nginx", "oauth", "jwt",
	"websocket", "api", "sql", "nosql", "css", "html", "sass", "webpack",
	"babel", "jest", "selenium", "cypress", "agile", "scrum", "devops",
	"cicd", "caching", "sharding", "indexing", "normalization", "recursion",
	"polymorphism", "inheritance", "encapsulation", "multithreading",
	"concurrency", "serialization", "authentication", "authorization",
}

var (
	techVocabPattern  = regexp.MustCompile(`(?i)\b(` + strings.Join(techVocabulary, "|") + `)\b`)
	camelCasePattern  = regexp.MustCompile(`\b[A-Z][a-z]+(?:[A-Z][a-z]+)+\b`)
	quotedPattern     = regexp.MustCompile(`"([^"]{2,40})"|'([^']{2,40})'`)
	techSuffixPattern = regexp.MustCompile(`^[a-z]+(?:ing|tion|ment|ness|ity|ize|ify)$`)
	wordPattern       = regexp.MustCompile(`[a-zA-Z]+`)
)

// FollowUp describes a candidate follow-up probe derived from an answer.
// Diagnostic output only; the state machine consumes Extract and BestKeyword.
type FollowUp struct {
	Type    string `json:"type"`
	Term    string `json:"term"`
	Context string `json:"context"`
}

// KeywordExtractor pulls technical terms out of free-form answer text so the
// interview can counter-question on topics the candidate actually mentioned.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract returns up to 10 lowercase keywords in order of first discovery.
func (e *KeywordExtractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var keywords []string
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || len(term) < 2 || isStopWord(term) || seen[term] {
			return
		}
		seen[term] = true
		keywords = append(keywords, term)
	}

	for _, m := range techVocabPattern.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range camelCasePattern.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(m) > 4 && techSuffixPattern.MatchString(m) {
			add(m)
		}
	}

	if len(keywords) > maxExtractedKeywords {
		keywords = keywords[:maxExtractedKeywords]
	}
	return keywords
}

// FindFollowUps returns up to 3 probe suggestions from the answer text.
func (e *KeywordExtractor) FindFollowUps(text string) []FollowUp {
	var followUps []FollowUp

	for _, m := range quotedPattern.FindAllStringSubmatch(text, -1) {
		term := m[1]
		if term == "" {
			term = m[2]
		}
		followUps = append(followUps, FollowUp{Type: "quoted", Term: term, Context: "mentioned explicitly"})
		if len(followUps) >= 3 {
			return followUps
		}
	}
	for _, kw := range e.Extract(text) {
		followUps = append(followUps, FollowUp{Type: "technology", Term: kw, Context: "technical term"})
		if len(followUps) >= 3 {
			break
		}
	}
	return followUps
}

// BestKeyword picks the single longest keyword; ties keep the earliest.
func (e *KeywordExtractor) BestKeyword(keywords []string) string {
	best := ""
	for _, kw := range keywords {
		if len(kw) > len(best) {
			best = kw
		}
	}
	return best
}
