package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yukikurage/taskmaster-api/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubCompleter struct {
	response string
	err      error
	prompts  []string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

var vocabulary = []string{"RESTOCK SHELVES", "FACE AISLES", "CLEAN PRODUCE", "CHECK DATES"}

func identityPerm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestDashboardInsights_UsesTaskData(t *testing.T) {
	stub := &stubCompleter{response: "  1. Aisle 4 is behind schedule.  "}
	g := NewGenerator(stub)

	tasks := []models.Task{{Title: "Restock Aisle 4", Status: models.TaskStatusTodo, AssignedToID: "u2", DueDate: "2023-11-01"}}
	employees := []models.User{{ID: "u2", Name: "John Doe"}}

	got := g.DashboardInsights(context.Background(), tasks, employees)

	assert.Equal(t, "1. Aisle 4 is behind schedule.", got)
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "- Restock Aisle 4 (TODO): Assigned to John Doe, Due: 2023-11-01")
}

func TestDashboardInsights_Fallback(t *testing.T) {
	g := NewGenerator(&stubCompleter{err: errors.New("network down")})
	assert.Equal(t, FallbackDashboardInsights, g.DashboardInsights(context.Background(), nil, nil))

	empty := NewGenerator(&stubCompleter{response: "   "})
	assert.Equal(t, FallbackDashboardInsights, empty.DashboardInsights(context.Background(), nil, nil))
}

func TestGenerator_WithoutBackend(t *testing.T) {
	g := NewGenerator(nil)
	g.perm = identityPerm

	assert.False(t, g.Enabled())
	assert.Equal(t, FallbackDashboardInsights, g.DashboardInsights(context.Background(), nil, nil))
	assert.Equal(t, FallbackFeedbackScript, g.FeedbackScript(context.Background(), "John", nil, 0))
	assert.Equal(t, vocabulary[:3], g.SuggestTasks(context.Background(), "John", nil, vocabulary))
}

func TestSuggestTasks_FiltersHallucinations(t *testing.T) {
	stub := &stubCompleter{response: "Clean Produce, Juggle Melons, restock shelves, CLEAN PRODUCE"}
	g := NewGenerator(stub)

	got := g.SuggestTasks(context.Background(), "John", nil, vocabulary)

	assert.Equal(t, []string{"CLEAN PRODUCE", "RESTOCK SHELVES"}, got)
	assert.Contains(t, stub.prompts[0], "FACE AISLES")
}

func TestSuggestTasks_FallbackSample(t *testing.T) {
	for _, stub := range []*stubCompleter{
		{err: errors.New("quota exceeded")},
		{response: "Juggle Melons, Sing Anthem"},
	} {
		g := NewGenerator(stub)
		got := g.SuggestTasks(context.Background(), "John", nil, vocabulary)

		assert.Len(t, got, 3)
		for _, title := range got {
			assert.Contains(t, vocabulary, title)
		}
	}
}

func TestSuggestTasks_SmallVocabulary(t *testing.T) {
	g := NewGenerator(nil)
	assert.Equal(t, []string{"ONLY ONE"}, g.SuggestTasks(context.Background(), "John", nil, []string{"ONLY ONE"}))
	assert.Empty(t, g.SuggestTasks(context.Background(), "John", nil, nil))
}

func TestFeedbackScript(t *testing.T) {
	stub := &stubCompleter{response: "Opening: ..."}
	g := NewGenerator(stub)

	got := g.FeedbackScript(context.Background(), "Jane Smith", []string{"Great with customers"}, 7)

	assert.Equal(t, "Opening: ...", got)
	assert.Contains(t, stub.prompts[0], "Jane Smith, who has completed 7 missions")
	assert.Contains(t, stub.prompts[0], "- Great with customers")

	failing := NewGenerator(&stubCompleter{err: errors.New("boom")})
	assert.Equal(t, FallbackFeedbackScript, failing.FeedbackScript(context.Background(), "Jane", nil, 0))
}

func TestNewCompleter(t *testing.T) {
	c, err := NewCompleter(context.Background(), ProviderConfig{Provider: "openai"})
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = NewCompleter(context.Background(), ProviderConfig{Provider: "openai", OpenAIAPIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAICompleter{}, c)

	c, err = NewCompleter(context.Background(), ProviderConfig{Provider: "gemini"})
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = NewCompleter(context.Background(), ProviderConfig{Provider: "llama"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
