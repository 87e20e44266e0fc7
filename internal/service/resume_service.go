package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"interviewerbot/internal/config"
	"interviewerbot/internal/model"
)

const resumeQuestionTarget = 20

// skillPatterns is ordered so skill detection output is deterministic.
var skillPatterns = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"Java", regexp.MustCompile(`(?i)\b(java|spring|hibernate|maven|gradle)\b`)},
	{"Python", regexp.MustCompile(`(?i)\b(python|django|flask|fastapi|pandas|numpy)\b`)},
	{"JavaScript", regexp.MustCompile(`(?i)\b(javascript|typescript|node\.?js|express)\b`)},
	{"React", regexp.MustCompile(`(?i)\b(react|redux|next\.?js)\b`)},
	{"SQL", regexp.MustCompile(`(?i)\b(sql|mysql|postgres|postgresql|oracle|database)\b`)},
	{"Machine_Learning", regexp.MustCompile(`(?i)\b(machine learning|scikit|sklearn|ml model)\b`)},
	{"Deep_Learning", regexp.MustCompile(`(?i)\b(deep learning|tensorflow|pytorch|keras|neural network)\b`)},
}

// DetectSkills scans resume text for known skill patterns.
func DetectSkills(text string) []string {
	var skills []string
	for _, sp := range skillPatterns {
		if sp.Pattern.MatchString(text) {
			skills = append(skills, sp.Name)
		}
	}
	return skills
}

// DocumentTextExtractor pulls plain text out of an uploaded resume file.
type DocumentTextExtractor interface {
	Extract(filePath string) (string, error)
}

// PlainTextExtractor handles .txt uploads. PDF uploads skip extraction and go
// to the model as inline document data instead.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(filePath string) (string, error) {
	if !strings.EqualFold(filepath.Ext(filePath), ".txt") {
		return "", fmt.Errorf("unsupported resume format %q", filepath.Ext(filePath))
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	return string(data), nil
}

// ResumeReadyHandler receives the finished question set. The interview service
// implements it; a setter breaks the construction cycle between the two.
type ResumeReadyHandler interface {
	SetResumeQuestionsReady(ctx context.Context, sessionID string, questions []model.ResumeQuestion, summary string, detectedSkills []string) error
}

// ResumeService generates personalized interview questions from an uploaded
// resume. Generation is fire-and-forget; the interview keeps running warmup
// questions until the ready flag flips, and a local fallback generator
// guarantees it always flips.
type ResumeService struct {
	ai        *config.AIConfig
	extractor DocumentTextExtractor
	ready     ResumeReadyHandler

	// llmCall is swapped out in tests.
	llmCall func(ctx context.Context, modelName, apiKey, prompt string, pdfData []byte) (string, error)
}

func NewResumeService(ai *config.AIConfig, extractor DocumentTextExtractor) *ResumeService {
	return &ResumeService{
		ai:        ai,
		extractor: extractor,
		llmCall:   geminiGenerate,
	}
}

func (s *ResumeService) SetReadyHandler(h ResumeReadyHandler) {
	s.ready = h
}

// ExtractText runs the configured extractor. A failed extraction is not fatal:
// PDF sources are sent to the model directly and the fallback generator only
// loses skill detection.
func (s *ResumeService) ExtractText(filePath string) string {
	if s.extractor == nil {
		return ""
	}
	text, err := s.extractor.Extract(filePath)
	if err != nil {
		log.Printf("[Resume] text extraction failed for %s: %v", filepath.Base(filePath), err)
		return ""
	}
	return text
}

// Start kicks off question generation in the background and returns
// immediately.
func (s *ResumeService) Start(sessionID, filePath, extractedText string) {
	go s.run(sessionID, filePath, extractedText)
}

func (s *ResumeService) run(sessionID, filePath, extractedText string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.ai.TimeoutMS)*time.Millisecond)
	defer cancel()

	detected := DetectSkills(extractedText)

	questions, summary, err := s.generateQuestions(ctx, filePath, extractedText)
	if err != nil || len(questions) == 0 {
		log.Printf("[Resume] generation failed for session %s, using fallback generator: %v", sessionID, err)
		questions = fallbackResumeQuestions(detected)
		summary = fallbackSummary(detected)
	}

	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = fmt.Sprintf("resume_%d", i)
		}
		questions[i].Asked = false
	}

	if s.ready == nil {
		log.Printf("[Resume] no ready handler configured, dropping %d questions for session %s", len(questions), sessionID)
		return
	}
	if err := s.ready.SetResumeQuestionsReady(context.Background(), sessionID, questions, summary, detected); err != nil {
		log.Printf("[Resume] failed to store questions for session %s: %v", sessionID, err)
	}
}

func (s *ResumeService) generateQuestions(ctx context.Context, filePath, extractedText string) ([]model.ResumeQuestion, string, error) {
	if !s.ai.IsEnabled() {
		return nil, "", fmt.Errorf("no generative credentials configured")
	}

	var pdfData []byte
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Printf("[Resume] failed to read PDF %s: %v", filepath.Base(filePath), err)
		} else {
			pdfData = data
		}
	}
	if len(pdfData) == 0 && strings.TrimSpace(extractedText) == "" {
		return nil, "", fmt.Errorf("no resume content to generate from")
	}

	prompt := buildResumePrompt(extractedText, len(pdfData) > 0)

	var lastErr error
	for _, modelName := range s.ai.Models {
		attempts := s.ai.Keys.Len()
		if attempts < 1 {
			attempts = 1
		}
		for attempt := 0; attempt < attempts; attempt++ {
			raw, err := s.llmCall(ctx, modelName, s.ai.Keys.Current(), prompt, pdfData)
			if err != nil {
				lastErr = err
				if isRateLimitError(err) && s.ai.Keys.Rotate() {
					log.Printf("[Resume] rate limited on %s, rotating credential", modelName)
					continue
				}
				break
			}

			questions, summary, err := parseGeneratedQuestions(raw)
			if err != nil {
				lastErr = fmt.Errorf("model %s returned unparseable output: %w", modelName, err)
				break
			}
			if len(questions) < 5 {
				lastErr = fmt.Errorf("model %s returned only %d questions", modelName, len(questions))
				break
			}
			if len(questions) > resumeQuestionTarget {
				questions = questions[:resumeQuestionTarget]
			}
			log.Printf("[Resume] generated %d questions with %s", len(questions), modelName)
			return questions, summary, nil
		}
	}
	return nil, "", lastErr
}

func buildResumePrompt(extractedText string, pdfAttached bool) string {
	var b strings.Builder
	b.WriteString("You are a senior technical interviewer preparing for a mock interview.\n")
	if pdfAttached {
		b.WriteString("The candidate's resume is attached as a document.\n")
	} else {
		b.WriteString("The candidate's resume text follows:\n\n")
		b.WriteString(extractedText)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf(`Generate exactly %d interview questions grounded in the resume's actual projects, roles and technologies.
Respond with JSON only, shaped as:
{
  "summary": "two sentence summary of the candidate",
  "questions": [
    {
      "question": "...",
      "type": "deep_dive|tradeoff|scaling|behavioral|retrospective",
      "difficulty": "easy|medium|hard",
      "expectedAnswer": "short model answer",
      "section": "resume section the question came from",
      "keywords": ["..."]
    }
  ]
}`, resumeQuestionTarget))
	return b.String()
}

func geminiGenerate(ctx context.Context, modelName, apiKey, prompt string, pdfData []byte) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create generative client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(modelName)
	m.SetTemperature(0.7)
	m.ResponseMIMEType = "application/json"

	parts := []genai.Part{genai.Text(prompt)}
	if len(pdfData) > 0 {
		parts = []genai.Part{genai.Blob{MIMEType: "application/pdf", Data: pdfData}, genai.Text(prompt)}
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from %s", modelName)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text parts in response from %s", modelName)
	}
	return b.String(), nil
}

func isRateLimitError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted")
}

type generatedQuestion struct {
	Question       string   `json:"question"`
	Type           string   `json:"type"`
	Difficulty     string   `json:"difficulty"`
	ExpectedAnswer string   `json:"expectedAnswer"`
	Section        string   `json:"section"`
	Keywords       []string `json:"keywords"`
}

func parseGeneratedQuestions(raw string) ([]model.ResumeQuestion, string, error) {
	cleaned := repairModelJSON(raw)

	var envelope struct {
		Summary   string              `json:"summary"`
		Questions []generatedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err == nil && len(envelope.Questions) > 0 {
		return toResumeQuestions(envelope.Questions), envelope.Summary, nil
	}

	// Some models ignore the envelope and return a bare array.
	var bare []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &bare); err != nil {
		return nil, "", err
	}
	return toResumeQuestions(bare), "", nil
}

func toResumeQuestions(generated []generatedQuestion) []model.ResumeQuestion {
	var questions []model.ResumeQuestion
	for _, g := range generated {
		if strings.TrimSpace(g.Question) == "" {
			continue
		}
		if g.Type == "" {
			g.Type = "deep_dive"
		}
		if g.Difficulty == "" {
			g.Difficulty = "medium"
		}
		questions = append(questions, model.ResumeQuestion{
			Question:       strings.TrimSpace(g.Question),
			Type:           g.Type,
			Difficulty:     g.Difficulty,
			ExpectedAnswer: g.ExpectedAnswer,
			Section:        g.Section,
			Keywords:       g.Keywords,
		})
	}
	return questions
}

var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// repairModelJSON salvages the common ways generative output deviates from
// strict JSON: markdown fences, leading prose, trailing commas and truncated
// closing brackets.
func repairModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.IndexAny(s, "{[")
	if start > 0 {
		s = s[start:]
	}
	if end := strings.LastIndexAny(s, "}]"); end >= 0 && end < len(s)-1 {
		s = s[:end+1]
	}

	s = trailingCommaPattern.ReplaceAllString(s, "$1")

	// Close unbalanced openers in reverse nesting order.
	var open []rune
	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = inString
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				open = append(open, r)
			}
		case '}', ']':
			if !inString && len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == '{' {
			s += "}"
		} else {
			s += "]"
		}
	}
	return s
}

func fallbackResumeQuestions(detectedSkills []string) []model.ResumeQuestion {
	questions := []model.ResumeQuestion{
		{
			Question:       "Walk me through the project you're most proud of. What was your specific contribution?",
			Type:           "behavioral",
			Difficulty:     "medium",
			ExpectedAnswer: "A concrete project with the candidate's own role, decisions and measurable outcome.",
			Section:        "Projects",
		},
		{
			Question:       "Tell me about a technical decision where you had to weigh competing tradeoffs. What did you choose and why?",
			Type:           "tradeoff",
			Difficulty:     "medium",
			ExpectedAnswer: "Named alternatives, the constraints considered, and a justified choice.",
			Section:        "Experience",
		},
		{
			Question:       "Describe a time you disagreed with a teammate about an implementation approach. How was it resolved?",
			Type:           "behavioral",
			Difficulty:     "easy",
			ExpectedAnswer: "A concrete disagreement, how it was discussed, and the resolution.",
			Section:        "Experience",
		},
		{
			Question:       "If one of the systems you've built suddenly had to handle ten times the load, what would break first and how would you fix it?",
			Type:           "scaling",
			Difficulty:     "hard",
			ExpectedAnswer: "Identifies the bottleneck (database, single instance, sync calls) and a scaling strategy.",
			Section:        "Experience",
		},
		{
			Question:       "Looking back at your most recent role, what would you do differently if you started it over?",
			Type:           "retrospective",
			Difficulty:     "easy",
			ExpectedAnswer: "Honest reflection with a specific technical or process improvement.",
			Section:        "Experience",
		},
	}

	for _, skill := range detectedSkills {
		display := strings.ReplaceAll(skill, "_", " ")
		questions = append(questions,
			model.ResumeQuestion{
				Question:       fmt.Sprintf("I see you've worked with %s. Can you describe the most challenging problem you solved with it?", display),
				Type:           "deep_dive",
				Difficulty:     "medium",
				ExpectedAnswer: fmt.Sprintf("A specific, non-trivial problem solved using %s.", display),
				Section:        "Skills",
				Keywords:       []string{strings.ToLower(display)},
			},
			model.ResumeQuestion{
				Question:       fmt.Sprintf("What are the main limitations of %s you've run into, and how did you work around them?", display),
				Type:           "tradeoff",
				Difficulty:     "hard",
				ExpectedAnswer: fmt.Sprintf("Real limitations of %s with concrete workarounds.", display),
				Section:        "Skills",
				Keywords:       []string{strings.ToLower(display)},
			},
		)
	}

	if len(questions) > resumeQuestionTarget {
		questions = questions[:resumeQuestionTarget]
	}
	return questions
}

func fallbackSummary(detectedSkills []string) string {
	if len(detectedSkills) == 0 {
		return "Resume processed. No specific skills detected; using general interview questions."
	}
	return fmt.Sprintf("Resume mentions experience with: %s.", strings.Join(detectedSkills, ", "))
}
