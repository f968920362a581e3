// Package ai wraps the language-model features: the career advisor
// chat and resume analysis. Without an API key every entry point
// degrades to deterministic built-in behavior instead of failing.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"

	openai "github.com/sashabaranov/go-openai"
)

const advisorSystemPrompt = `You are an expert career advisor for a job portal.
You help users find suitable roles, prepare for interviews, improve resumes and
profiles, and negotiate offers. Give specific, actionable advice in a friendly,
professional tone. Be honest about challenges but focus on practical next steps.
Keep answers concise unless the user asks for depth.`

// Turn is one prior exchange in an advisor conversation.
type Turn struct {
	Role    string
	Content string
}

// Client talks to any OpenAI-compatible endpoint. A zero-value client
// (no API key) is valid and reports Configured() == false.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg *config.Config) *Client {
	if cfg.OpenAI.APIKey == "" {
		logger.Info("No language model configured, AI features run in degraded mode")
		return &Client{}
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	model := cfg.OpenAI.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: model,
	}
}

func (c *Client) Configured() bool {
	return c.api != nil
}

// CareerAdvice answers one advisor message with optional conversation
// history. The caller handles the unconfigured case via Configured().
func (c *Client) CareerAdvice(ctx context.Context, message string, history []Turn) (string, error) {
	if c.api == nil {
		return "", fmt.Errorf("language model not configured")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: advisorSystemPrompt,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: 800,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// AnalyzeResume extracts structured data from resume text. When the
// model is unreachable or returns garbage, the offline analyzer takes
// over so uploads never fail on analysis.
func (c *Client) AnalyzeResume(ctx context.Context, text string) *ResumeAnalysis {
	if c.api == nil {
		return AnalyzeResumeOffline(text)
	}

	prompt := fmt.Sprintf(`Analyze the following resume and provide:
1. Extracted skills (technical and soft skills) as a JSON array
2. Years of experience as a number
3. Key achievements as a JSON array
4. Areas for improvement as a JSON array
5. ATS compatibility score (out of 100) as a number

Resume:
%s

Respond with JSON only, using the keys: skills, experience_years, achievements, improvements, ats_score`, text)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 1000,
	})
	if err != nil || len(resp.Choices) == 0 {
		logger.WithError(err).Warn("Resume analysis via model failed, using offline analyzer")
		return AnalyzeResumeOffline(text)
	}

	var analysis ResumeAnalysis
	content := stripCodeFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		logger.WithError(err).Warn("Resume analysis returned invalid JSON, using offline analyzer")
		return AnalyzeResumeOffline(text)
	}
	analysis.clamp()
	return &analysis
}

// stripCodeFences unwraps responses the model wrapped in markdown.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
