package api

import (
	"net/http"

	"github.com/taskdeck/tui-go/internal/model"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TaskPatch is a partial task update. Nil fields are left unchanged by the
// server.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// taskEnvelope wraps single-task mutation responses
type taskEnvelope struct {
	Success bool       `json:"success"`
	Task    model.Task `json:"task"`
}

// Tasks returns the caller's tasks in server order
func (c *Client) Tasks() ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the server's copy
func (c *Client) CreateTask(title, description string) (*model.Task, error) {
	var task model.Task
	err := c.do(http.MethodPost, "/api/tasks", createTaskRequest{
		Title:       title,
		Description: description,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update and returns the updated task
func (c *Client) UpdateTask(id string, patch TaskPatch) (*model.Task, error) {
	var resp taskEnvelope
	if err := c.do(http.MethodPut, "/api/tasks/"+id, patch, &resp); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

// ToggleTask flips a task's completion state
func (c *Client) ToggleTask(id string, completed bool) (*model.Task, error) {
	return c.UpdateTask(id, TaskPatch{Completed: &completed})
}

// DeleteTask removes a task. Any 2xx response is success; the body is
// ignored.
func (c *Client) DeleteTask(id string) error {
	return c.do(http.MethodDelete, "/api/tasks/"+id, nil, nil)
}
