package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GenAIAdapter serves Gemini models through the official google.golang.org/genai SDK.
type GenAIAdapter struct {
	client *genai.Client
	model  string
}

// NewGenAIAdapter builds a Gemini API backed client.
func NewGenAIAdapter(ctx context.Context, apiKey, model string) (*GenAIAdapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai: failed to create client: %w", err)
	}
	return &GenAIAdapter{client: client, model: model}, nil
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		var role genai.Role = genai.RoleUser
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text(), role))
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if sys := systemText(req); sys != "" {
		cfg.SystemInstruction = genai.NewContentFromText(sys, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, cfg)
	if err != nil {
		status := 0
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.Code
		}
		return nil, classifyError(fmt.Errorf("genai: %w", err), status)
	}

	out := &Response{
		Content:      NewTextMessage(RoleAssistant, resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage:        &Usage{},
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return "genai"
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}
