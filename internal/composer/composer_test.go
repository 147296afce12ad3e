package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bluepixel/estatechat/internal/domain"
	"github.com/bluepixel/estatechat/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	text  string
	err   error
	calls int

	lastSystem string
	lastUser   string
}

func (s *stubCompleter) Complete(_ context.Context, system, user string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	return s.text, s.err
}

func newTestComposer(completer *stubCompleter) *Composer {
	registry := tools.NewRegistry()
	return New(registry, tools.NewClassifier(registry), completer)
}

func TestRespond_RelevanceGateRedirects(t *testing.T) {
	completer := &stubCompleter{text: "should not be used"}
	c := newTestComposer(completer)

	resp := c.Respond(context.Background(), domain.ChatMessage{
		Text:      "tell me a joke",
		SessionID: "s1",
		UserID:    "u1",
	})

	assert.Equal(t, redirectMessage, resp.ResponseText)
	assert.Equal(t, []string{"check_realestate_relevance"}, resp.ToolsUsed)
	assert.Nil(t, resp.PropertyData)
	assert.Zero(t, completer.calls, "model must not be invoked on redirect")
	assert.Equal(t, "s1", resp.SessionID)
	assert.False(t, resp.TimestampUTC.IsZero())
}

func TestRespond_ModelReply(t *testing.T) {
	completer := &stubCompleter{text: "Here is your mortgage breakdown."}
	c := newTestComposer(completer)

	resp := c.Respond(context.Background(), domain.ChatMessage{
		Text:      "calculate my mortgage for $450,000 with $90,000 down",
		SessionID: "s1",
	})

	assert.Equal(t, "Here is your mortgage breakdown.", resp.ResponseText)
	assert.Equal(t, []string{"check_realestate_relevance", "calculate_mortgage"}, resp.ToolsUsed)

	require.Contains(t, resp.PropertyData, "calculate_mortgage")
	assert.Equal(t, 360000.0, resp.PropertyData["calculate_mortgage"]["loan_amount"])

	// Tool output reaches the model as serialized context.
	assert.Contains(t, completer.lastUser, `"loan_amount":360000`)
	assert.Contains(t, completer.lastUser, "User message: calculate my mortgage")
}

func TestRespond_DegradedReplyIncludesMonthlyPayment(t *testing.T) {
	completer := &stubCompleter{err: errors.New("upstream quota exceeded")}
	c := newTestComposer(completer)

	resp := c.Respond(context.Background(), domain.ChatMessage{
		Text:      "calculate my mortgage for $450,000 with $90,000 down",
		SessionID: "s1",
	})

	quote := tools.QuoteMortgage(450000, 90000, 7.2)
	assert.Contains(t, resp.ResponseText, fmt.Sprintf("%.2f", quote.MonthlyPayment))
	assert.Equal(t, []string{"check_realestate_relevance", "calculate_mortgage"}, resp.ToolsUsed)
	// Degradation still carries the property-data projection.
	require.Contains(t, resp.PropertyData, "calculate_mortgage")
}

func TestRespond_DegradedReplyGenericWithoutToolResults(t *testing.T) {
	completer := &stubCompleter{err: errors.New("connection refused")}
	c := newTestComposer(completer)

	resp := c.Respond(context.Background(), domain.ChatMessage{
		Text:      "I want to buy next spring",
		SessionID: "s1",
	})

	assert.Equal(t, capabilityMessage, resp.ResponseText)
	assert.Equal(t, []string{"check_realestate_relevance"}, resp.ToolsUsed)
	assert.Nil(t, resp.PropertyData)
}

func TestRespond_ToolFailureDoesNotAbortOthers(t *testing.T) {
	completer := &stubCompleter{err: errors.New("down")}
	c := newTestComposer(completer)

	// Finance has too few numbers and fails; rates still runs.
	resp := c.Respond(context.Background(), domain.ChatMessage{
		Text:      "roi please, and current interest rates",
		SessionID: "s1",
	})

	assert.Equal(t,
		[]string{"check_realestate_relevance", "financial_calculator", "get_interest_rates"},
		resp.ToolsUsed)
	assert.Contains(t, resp.ResponseText, "6.85")
}

func TestRespond_PropertyDataProjection(t *testing.T) {
	completer := &stubCompleter{text: "ok"}
	c := newTestComposer(completer)

	resp := c.Respond(context.Background(), domain.ChatMessage{
		Text:      "search listings and what are current interest rates",
		SessionID: "s1",
	})

	require.Contains(t, resp.PropertyData, "search_properties")
	// Rates are reported in ToolsUsed but never projected.
	assert.NotContains(t, resp.PropertyData, "get_interest_rates")
	assert.True(t, strings.HasPrefix(resp.ToolsUsed[0], "check_"))
}

func TestDegradedReply_Deterministic(t *testing.T) {
	registry := tools.NewRegistry()
	in := tools.Input{Message: "mortgage on $450,000 with $90,000 down"}
	results := map[tools.Kind]tools.Result{
		tools.KindMortgage: registry.Run(tools.KindMortgage, in),
	}
	kinds := []tools.Kind{tools.KindMortgage}

	assert.Equal(t, DegradedReply(kinds, results), DegradedReply(kinds, results))
}
