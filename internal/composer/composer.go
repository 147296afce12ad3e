// Package composer orchestrates one message's processing pass: relevance
// gate, tool selection and execution, the model call, and the degraded
// fallback. It never returns an error to the transport; every failure path
// resolves to a well-formed ChatResponse.
package composer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/bluepixel/estatechat/internal/domain"
	"github.com/bluepixel/estatechat/internal/llm"
	"github.com/bluepixel/estatechat/internal/tools"
)

const systemInstruction = "You are Blue Pixel AI, a helpful real-estate assistant. " +
	"Answer using the tool data provided in the context block when it is " +
	"relevant, quote monetary figures exactly as given, and keep replies " +
	"concise and friendly. Do not invent listings or rates."

const redirectMessage = "I'm Blue Pixel AI, a real-estate assistant. I can " +
	"help you search properties, calculate mortgage payments, check " +
	"interest rates, or analyze an investment. What would you like to know " +
	"about real estate?"

// ReplyKind distinguishes a model-generated reply from the deterministic
// fallback produced when the upstream call fails.
type ReplyKind int

const (
	// ReplyModel is text returned by the language model.
	ReplyModel ReplyKind = iota
	// ReplyDegraded is the template reply assembled from tool results.
	ReplyDegraded
)

// Reply is the outcome of the upstream call decision.
type Reply struct {
	Kind ReplyKind
	Text string
}

// Composer runs the per-message pipeline.
type Composer struct {
	registry   *tools.Registry
	classifier *tools.Classifier
	completer  llm.Completer
}

// New creates a Composer. The registry and completer are injected; the
// composer holds no mutable state, so one instance serves all sessions.
func New(registry *tools.Registry, classifier *tools.Classifier, completer llm.Completer) *Composer {
	return &Composer{
		registry:   registry,
		classifier: classifier,
		completer:  completer,
	}
}

// Respond processes one inbound message and always returns a well-formed
// response. The relevance gate is reported first in ToolsUsed regardless of
// outcome.
func (c *Composer) Respond(ctx context.Context, msg domain.ChatMessage) domain.ChatResponse {
	start := time.Now()
	toolsUsed := []string{tools.KindRelevance.String()}

	if !c.classifier.Relevant(msg.Text) {
		slog.Info("Message rejected by relevance gate", "session_id", msg.SessionID, "user_id", msg.UserID)
		return c.finish(redirectMessage, msg.SessionID, toolsUsed, nil, nil, start)
	}

	kinds := c.classifier.Classify(msg.Text)
	in := tools.Input{Message: msg.Text, UserID: msg.UserID, SessionID: msg.SessionID}

	results := make(map[tools.Kind]tools.Result, len(kinds))
	for _, kind := range kinds {
		toolsUsed = append(toolsUsed, kind.String())
		res := c.registry.Run(kind, in)
		if res.IsError() {
			slog.Warn("Tool returned error", "tool", kind.String(), "error", res.Err(), "session_id", msg.SessionID)
		}
		results[kind] = res
	}

	reply := c.reply(ctx, msg.Text, kinds, results)
	return c.finish(reply.Text, msg.SessionID, toolsUsed, kinds, results, start)
}

// reply decides between the model reply and the degraded one.
func (c *Composer) reply(ctx context.Context, message string, kinds []tools.Kind, results map[tools.Kind]tools.Result) Reply {
	text, err := c.completer.Complete(ctx, systemInstruction, buildPrompt(message, kinds, results))
	if err != nil {
		slog.Warn("Model call failed, degrading to template reply", "error", err)
		return Reply{Kind: ReplyDegraded, Text: DegradedReply(kinds, results)}
	}
	return Reply{Kind: ReplyModel, Text: text}
}

// buildPrompt serializes all non-error tool results into a context block
// ahead of the user message, preserving classifier order.
func buildPrompt(message string, kinds []tools.Kind, results map[tools.Kind]tools.Result) string {
	var b strings.Builder
	for _, kind := range kinds {
		res := results[kind]
		if res.IsError() {
			continue
		}
		data, err := json.Marshal(res)
		if err != nil {
			continue
		}
		b.WriteString("### ")
		b.WriteString(kind.String())
		b.WriteString("\n")
		b.Write(data)
		b.WriteString("\n\n")
	}
	b.WriteString("User message: ")
	b.WriteString(message)
	return b.String()
}

func (c *Composer) finish(text, sessionID string, toolsUsed []string, kinds []tools.Kind, results map[tools.Kind]tools.Result, start time.Time) domain.ChatResponse {
	return domain.ChatResponse{
		ResponseText:    text,
		SessionID:       sessionID,
		TimestampUTC:    time.Now().UTC(),
		ToolsUsed:       toolsUsed,
		PropertyData:    projectPropertyData(kinds, results),
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}
}

// projectPropertyData keeps only search results, property details, and the
// basic mortgage calculation, when present and successful.
func projectPropertyData(kinds []tools.Kind, results map[tools.Kind]tools.Result) map[string]map[string]any {
	if len(results) == 0 {
		return nil
	}
	projected := make(map[string]map[string]any)
	for _, kind := range kinds {
		switch kind {
		case tools.KindPropertySearch, tools.KindPropertyDetails, tools.KindMortgage:
			if res, ok := results[kind]; ok && !res.IsError() {
				projected[kind.String()] = map[string]any(res)
			}
		}
	}
	if len(projected) == 0 {
		return nil
	}
	return projected
}
