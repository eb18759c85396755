package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepmap/ent"
	"github.com/abhisek/prepmap/ent/generationevent"
)

// generationEventRepo implements GenerationEventRepo using the ent client.
type generationEventRepo struct {
	client *ent.Client
}

func (r *generationEventRepo) Append(ctx context.Context, data GenerationEventData) error {
	builder := r.client.GenerationEvent.Create().
		SetPurpose(data.Purpose).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetLatencyMs(data.LatencyMs).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}
	return nil
}

func (r *generationEventRepo) Recent(ctx context.Context, limit int) ([]GenerationEventData, error) {
	q := r.client.GenerationEvent.Query().
		Order(ent.Desc(generationevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}

	out := make([]GenerationEventData, len(events))
	for i, e := range events {
		out[i] = eventData(e)
	}
	return out, nil
}

func (r *generationEventRepo) ByID(ctx context.Context, id int) (*GenerationEventData, error) {
	e, err := r.client.GenerationEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get generation event: %w", err)
	}
	data := eventData(e)
	return &data, nil
}

func eventData(e *ent.GenerationEvent) GenerationEventData {
	return GenerationEventData{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Purpose:      e.Purpose,
		Provider:     e.Provider,
		Model:        e.Model,
		LatencyMs:    e.LatencyMs,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
