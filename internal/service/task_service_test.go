package service

import (
	"context"
	"errors"
	"testing"

	"github.com/clavrhq/clavr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskSource struct {
	items     []domain.TaskItem
	err       error
	added     []domain.TaskItem
	completed []string
}

func (f *fakeTaskSource) ListTasks(_ context.Context, _ bool) ([]domain.TaskItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeTaskSource) AddTask(_ context.Context, task domain.TaskItem) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.added = append(f.added, task)
	return "task-id", nil
}

func (f *fakeTaskSource) CompleteTask(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.completed = append(f.completed, id)
	return nil
}

func TestTaskList_DueTasksFirst(t *testing.T) {
	due1 := mondayAt(17, 0)
	due2 := mondayAt(9, 0)
	source := &fakeTaskSource{items: []domain.TaskItem{
		{ID: "t1", Title: "No deadline"},
		{ID: "t2", Title: "Evening", Due: &due1},
		{ID: "t3", Title: "Morning", Due: &due2},
	}}
	svc := NewTaskService(source)

	items, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Morning", items[0].Title)
	assert.Equal(t, "Evening", items[1].Title)
	assert.Equal(t, "No deadline", items[2].Title)
}

func TestTaskAdd(t *testing.T) {
	source := &fakeTaskSource{}
	svc := NewTaskService(source)

	due := mondayAt(17, 0)
	id, err := svc.Add(context.Background(), "Buy groceries", "milk, eggs", &due)
	require.NoError(t, err)
	assert.Equal(t, "task-id", id)
	require.Len(t, source.added, 1)
	assert.Equal(t, "Buy groceries", source.added[0].Title)
	assert.Equal(t, domain.TaskNeedsAction, source.added[0].Status)
}

func TestTaskAdd_RequiresTitle(t *testing.T) {
	svc := NewTaskService(&fakeTaskSource{})
	_, err := svc.Add(context.Background(), "", "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTaskComplete(t *testing.T) {
	source := &fakeTaskSource{}
	svc := NewTaskService(source)

	require.NoError(t, svc.Complete(context.Background(), "t1"))
	assert.Equal(t, []string{"t1"}, source.completed)

	assert.ErrorIs(t, svc.Complete(context.Background(), ""), ErrInvalidInput)
}

func TestTaskList_UpstreamFailure(t *testing.T) {
	svc := NewTaskService(&fakeTaskSource{err: errors.New("tasks API 500")})
	_, err := svc.List(context.Background(), false)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
