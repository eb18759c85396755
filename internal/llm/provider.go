package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts one LLM backend. The planner is the only consumer:
// every call is a single-turn request for a JSON plan document.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider asks for structured output
	// natively and validates the payload before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Planning calls are single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response size. Zero means defaultMaxTokens,
	// which is sized for a full multi-week roadmap document.
	MaxTokens int

	// Temperature in 0.0-1.0; zero value means deterministic.
	Temperature float64
}

// defaultMaxTokens fits the largest document Prepmap asks for, a complete
// roadmap with every week's day list spelled out.
const defaultMaxTokens = 8192

// tokenBudget resolves a request's effective max token count.
func tokenBudget(req Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return defaultMaxTokens
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema: tool name for Anthropic, schema name
	// for OpenAI. Kebab-case, e.g. "study-roadmap".
	Name string

	// Description guides generation and is sent to the model.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated payload. With a Schema in the request this
	// is the validated JSON document.
	Content json.RawMessage

	// Usage reports token consumption for the call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end"; a response cut off at the token
	// budget surfaces as ErrMaxTokensExceeded instead of a value here.
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
