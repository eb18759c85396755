package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/prepmap/internal/store"
)

// AuditProvider is a decorator that records every LLM call as a
// generation event.
type AuditProvider struct {
	inner Provider
	name  string
	repo  store.GenerationEventRepo
}

// WithAudit wraps a Provider with generation-event logging. The name is
// the configured provider name, recorded alongside the model.
func WithAudit(p Provider, name string, repo store.GenerationEventRepo) Provider {
	return &AuditProvider{inner: p, name: name, repo: repo}
}

func (a *AuditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := a.inner.Generate(ctx, req)

	data := store.GenerationEventData{
		Purpose:     purpose,
		Provider:    a.name,
		Model:       a.inner.ModelID(),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Record the event but don't fail the request if logging fails.
	if logErr := a.repo.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record generation event: %v\n", logErr)
	}

	return resp, err
}

func (a *AuditProvider) ModelID() string {
	return a.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
