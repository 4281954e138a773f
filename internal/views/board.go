package views

import "github.com/yukikurage/taskmaster-api/internal/models"

// BoardColumn is one status lane of the mission board.
type BoardColumn struct {
	Status models.TaskStatus `json:"status"`
	Count  int               `json:"count"`
	Tasks  []models.Task     `json:"tasks"`
}

// Board buckets tasks by status in TODO, IN_PROGRESS, COMPLETED order.
func Board(tasks []models.Task) []BoardColumn {
	columns := make([]BoardColumn, len(models.TaskStatuses))
	index := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for i, status := range models.TaskStatuses {
		columns[i] = BoardColumn{Status: status, Tasks: []models.Task{}}
		index[status] = i
	}

	for _, task := range tasks {
		i, ok := index[task.Status]
		if !ok {
			continue
		}
		columns[i].Tasks = append(columns[i].Tasks, task)
		columns[i].Count++
	}
	return columns
}
