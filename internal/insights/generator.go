// Package insights is the boundary to the hosted text-generation service.
//
// Generator calls never fail from the caller's point of view: any backend error is
// logged, counted, and replaced with a fixed fallback for the request kind.
package insights

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/metrics"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/views"
)

const (
	FallbackDashboardInsights = "Unable to generate insights at this time. Please check your network connection or API key."
	FallbackFeedbackScript    = "Unable to generate a feedback script right now. Review the coaching notes and completed missions manually before the conversation."
)

const (
	kindDashboard   = "dashboard"
	kindSuggestions = "suggestions"
	kindFeedback    = "feedback"
)

// Generator builds prompts from domain data and absorbs backend failures.
type Generator struct {
	completer Completer
	perm      func(n int) []int
}

// NewGenerator wraps a completer. A nil completer is allowed and always yields fallbacks.
func NewGenerator(completer Completer) *Generator {
	return &Generator{
		completer: completer,
		perm:      rand.Perm,
	}
}

// Enabled reports whether a backend is configured.
func (g *Generator) Enabled() bool {
	return g.completer != nil
}

// DashboardInsights summarizes team performance for the manager.
func (g *Generator) DashboardInsights(ctx context.Context, tasks []models.Task, employees []models.User) string {
	text, err := g.complete(ctx, kindDashboard, dashboardPrompt(tasks, employees))
	if err != nil {
		return FallbackDashboardInsights
	}
	return text
}

// SuggestTasks picks titles from the standard vocabulary for an employee.
// The result only ever contains vocabulary entries.
func (g *Generator) SuggestTasks(ctx context.Context, employeeName string, history []models.Task, vocabulary []string) []string {
	if len(vocabulary) == 0 {
		return []string{}
	}

	text, err := g.complete(ctx, kindSuggestions, suggestionPrompt(employeeName, history, vocabulary))
	if err == nil {
		if picked := filterSuggestions(text, vocabulary); len(picked) > 0 {
			return picked
		}
		log.Warn().Str("kind", kindSuggestions).Str("response", text).Msg("model suggested no known standard tasks")
		metrics.InsightRequests.WithLabelValues(kindSuggestions, "filtered").Inc()
	}
	return g.sample(vocabulary, constants.SuggestionFallbackSize)
}

// FeedbackScript drafts a coaching conversation for an employee.
func (g *Generator) FeedbackScript(ctx context.Context, employeeName string, notes []string, completedCount int) string {
	text, err := g.complete(ctx, kindFeedback, feedbackPrompt(employeeName, notes, completedCount))
	if err != nil {
		return FallbackFeedbackScript
	}
	return text
}

func (g *Generator) complete(ctx context.Context, kind, prompt string) (string, error) {
	if g.completer == nil {
		metrics.InsightRequests.WithLabelValues(kind, "fallback").Inc()
		return "", ErrNotConfigured
	}

	text, err := g.completer.Complete(ctx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("text generation failed, using fallback")
		metrics.InsightRequests.WithLabelValues(kind, "fallback").Inc()
		return "", err
	}

	metrics.InsightRequests.WithLabelValues(kind, "ok").Inc()
	return strings.TrimSpace(text), nil
}

func (g *Generator) sample(vocabulary []string, size int) []string {
	if size > len(vocabulary) {
		size = len(vocabulary)
	}
	order := g.perm(len(vocabulary))
	picked := make([]string, 0, size)
	for _, i := range order[:size] {
		picked = append(picked, vocabulary[i])
	}
	return picked
}

// filterSuggestions keeps the comma-separated entries that exist in the vocabulary,
// in response order and without duplicates.
func filterSuggestions(response string, vocabulary []string) []string {
	known := make(map[string]string, len(vocabulary))
	for _, title := range vocabulary {
		known[views.NormalizeStandardTitle(title)] = title
	}

	seen := make(map[string]struct{})
	picked := make([]string, 0)
	for _, part := range strings.Split(response, ",") {
		key := views.NormalizeStandardTitle(strings.Trim(part, " \t\n\"'*-."))
		title, ok := known[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		picked = append(picked, title)
	}
	return picked
}
