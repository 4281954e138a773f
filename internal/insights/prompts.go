package insights

import (
	"fmt"
	"strings"

	"github.com/yukikurage/taskmaster-api/internal/models"
)

func dashboardPrompt(tasks []models.Task, employees []models.User) string {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	var summary strings.Builder
	for _, t := range tasks {
		name, ok := names[t.AssignedToID]
		if !ok {
			name = "Unknown"
		}
		fmt.Fprintf(&summary, "- %s (%s): Assigned to %s, Due: %s\n", t.Title, t.Status, name, t.DueDate)
	}

	return fmt.Sprintf(`You are an AI assistant for a retail manager. Analyze the following task data and provide 3 key insights regarding team performance, potential bottlenecks, and suggestions for improving Grocery/Retail KPIs (like efficiency, shelf availability, customer experience).

Keep it concise and professional.

Data:
%s`, summary.String())
}

func suggestionPrompt(employeeName string, history []models.Task, vocabulary []string) string {
	var past strings.Builder
	if len(history) == 0 {
		past.WriteString("- no previous missions\n")
	}
	for _, t := range history {
		fmt.Fprintf(&past, "- %s (%s, due %s)\n", t.Title, t.Status, t.DueDate)
	}

	return fmt.Sprintf(`You help a grocery store manager plan today's missions for %s.

Their mission history:
%s
Standard tasks available:
%s

Pick up to 3 standard tasks that balance their workload and build new skills.
Answer ONLY with the chosen titles, exactly as written above, separated by commas.`,
		employeeName, past.String(), strings.Join(vocabulary, "\n"))
}

func feedbackPrompt(employeeName string, notes []string, completedCount int) string {
	var coaching strings.Builder
	if len(notes) == 0 {
		coaching.WriteString("- no coaching notes recorded\n")
	}
	for _, n := range notes {
		fmt.Fprintf(&coaching, "- %s\n", n)
	}

	return fmt.Sprintf(`You are coaching a retail store manager before a one-on-one with %s, who has completed %d missions.

Manager's coaching notes:
%s
Write a feedback script with these parts:
1. Opening: a warm, specific greeting.
2. Recognition: strengths backed by the notes and mission count.
3. Growth areas: one or two concrete behaviours to work on.
4. Action plan: clear next steps and how progress will be checked.
5. Closing: an encouraging wrap-up.

Keep the tone supportive and professional.`, employeeName, completedCount, coaching.String())
}
