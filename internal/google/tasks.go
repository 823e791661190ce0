package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	tasksapi "google.golang.org/api/tasks/v1"

	"github.com/clavrhq/clavr/internal/domain"
)

// TasksClient wraps the Google Tasks API for the default task list.
type TasksClient struct {
	svc    *tasksapi.Service
	listID string
}

// NewTasksClient builds a client over an authenticated HTTP client.
// "@default" addresses the user's primary task list.
func NewTasksClient(ctx context.Context, httpClient *http.Client, listID string) (*TasksClient, error) {
	svc, err := tasksapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating tasks service: %w", err)
	}
	if listID == "" {
		listID = "@default"
	}
	return &TasksClient{svc: svc, listID: listID}, nil
}

// ListTasks returns open tasks, oldest due first as the API orders them.
func (c *TasksClient) ListTasks(ctx context.Context, includeCompleted bool) ([]domain.TaskItem, error) {
	call := c.svc.Tasks.List(c.listID).ShowCompleted(includeCompleted).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	tasks := make([]domain.TaskItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		tasks = append(tasks, taskFromAPI(item))
	}
	return tasks, nil
}

// AddTask creates a task and returns its provider id.
func (c *TasksClient) AddTask(ctx context.Context, task domain.TaskItem) (string, error) {
	apiTask := &tasksapi.Task{
		Title: task.Title,
		Notes: task.Notes,
	}
	if task.Due != nil {
		apiTask.Due = task.Due.Format(time.RFC3339)
	}

	created, err := c.svc.Tasks.Insert(c.listID, apiTask).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("adding task %q: %w", task.Title, err)
	}
	return created.Id, nil
}

// CompleteTask marks a task done.
func (c *TasksClient) CompleteTask(ctx context.Context, taskID string) error {
	task, err := c.svc.Tasks.Get(c.listID, taskID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("loading task %s: %w", taskID, err)
	}
	task.Status = string(domain.TaskCompleted)
	if _, err := c.svc.Tasks.Update(c.listID, taskID, task).Context(ctx).Do(); err != nil {
		return fmt.Errorf("completing task %s: %w", taskID, err)
	}
	return nil
}

func taskFromAPI(item *tasksapi.Task) domain.TaskItem {
	task := domain.TaskItem{
		ID:     item.Id,
		Title:  item.Title,
		Notes:  item.Notes,
		Status: domain.TaskStatus(item.Status),
	}
	if item.Due != "" {
		if due, err := time.Parse(time.RFC3339, item.Due); err == nil {
			task.Due = &due
		}
	}
	return task
}
