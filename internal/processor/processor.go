// Package processor turns a completed-call webhook into a stored, analyzed
// call log.
package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"intake-insights-go/internal/actionable"
	"intake-insights-go/internal/events"
	"intake-insights-go/internal/extractor"
	"intake-insights-go/internal/logger"
	"intake-insights-go/internal/store"
	"intake-insights-go/internal/types"
)

type Processor struct {
	store      store.CallLogStore
	events     events.Publisher
	summarizer extractor.Summarizer
	log        *logger.Logger
	now        func() time.Time
	newID      func() string
}

// New wires a Processor. summarizer may be nil.
func New(st store.CallLogStore, pub events.Publisher, summarizer extractor.Summarizer, log *logger.Logger) *Processor {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Processor{
		store:      st,
		events:     pub,
		summarizer: summarizer,
		log:        log.Component("processor"),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// ProcessPostCall classifies the call, stores it and announces it. Only a
// store failure is returned as an error; summary and publish failures are
// logged.
func (p *Processor) ProcessPostCall(ctx context.Context, in types.PostCallPayload) (types.CallLog, error) {
	start := p.now()
	log := p.log.WithField("call_id", in.CallID).WithField("bot_id", in.BotID)

	transcript := in.Transcript
	if transcript == "" {
		transcript = in.Conversation
	}
	fcs := in.FunctionCalls
	if fcs == nil {
		fcs = []types.FunctionCallRecord{}
	}

	cl := types.CallLog{
		ID:            p.newID(),
		CallID:        in.CallID,
		BotID:         in.BotID,
		CallerNumber:  in.CallerNumber,
		Duration:      in.Duration,
		Status:        in.Status,
		Transcript:    transcript,
		Summary:       in.Summary,
		FunctionCalls: fcs,
		CreatedAt:     start.UTC(),
	}

	cl.Analysis = extractor.Classify(transcript, fcs)
	cl.NextSteps = actionable.NextSteps(cl.Analysis)

	if cl.Summary == "" && p.summarizer != nil {
		summary, err := p.summarizer.Summarize(ctx, transcript)
		if err != nil {
			log.WithField("error", err.Error()).Warn("summary generation failed")
		} else {
			cl.Summary = summary
		}
	}

	cl.ProcessedAt = p.now().UTC()
	if err := p.store.Append(ctx, cl); err != nil {
		return cl, fmt.Errorf("store call log: %w", err)
	}

	if err := p.events.Publish(events.SubjectCallAnalyzed, cl); err != nil {
		log.WithField("error", err.Error()).Warn("failed to publish call analyzed event")
	}

	log.WithField("call_type", cl.Analysis.CallType).
		WithField("urgency_level", cl.Analysis.UrgencyLevel).
		WithField("duration_ms", p.now().Sub(start).Milliseconds()).
		Info("call processed")
	return cl, nil
}
