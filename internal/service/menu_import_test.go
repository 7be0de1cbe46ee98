package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/queue"
)

type mockImportTaskRepo struct {
	tasks map[primitive.ObjectID]*domain.ImportTask
}

func newMockImportTaskRepo() *mockImportTaskRepo {
	return &mockImportTaskRepo{tasks: make(map[primitive.ObjectID]*domain.ImportTask)}
}

func (m *mockImportTaskRepo) Create(_ context.Context, task *domain.ImportTask) error {
	task.ID = primitive.NewObjectID()
	m.tasks[task.ID] = task
	return nil
}

func (m *mockImportTaskRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, errors.New("task not found")
	}
	return task, nil
}

func (m *mockImportTaskRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	if task, ok := m.tasks[id]; ok {
		task.Status = status
		task.ErrorMessage = errorMsg
	}
	return nil
}

func (m *mockImportTaskRepo) UpdateCompleted(_ context.Context, id primitive.ObjectID, itemsImported int) error {
	if task, ok := m.tasks[id]; ok {
		task.Status = domain.StatusCompleted
		task.ItemsImported = itemsImported
	}
	return nil
}

func (m *mockImportTaskRepo) IncrementRetryCount(_ context.Context, id primitive.ObjectID) error {
	if task, ok := m.tasks[id]; ok {
		task.RetryCount++
	}
	return nil
}

func TestCreateImportTask(t *testing.T) {
	tasks := newMockImportTaskRepo()
	broker := &mockBroker{}
	svc := NewMenuImportService(tasks, &mockMenuRepo{}, nil, broker, zap.NewNop().Sugar())

	taskID, err := svc.CreateImportTask(context.Background(), "sheet-123")
	require.NoError(t, err)
	require.NotEqual(t, primitive.NilObjectID, taskID)

	task, err := svc.GetTaskStatus(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, task.Status)
	assert.Equal(t, "sheet-123", task.SpreadsheetID)

	require.Len(t, broker.published, 1)
	assert.Equal(t, queue.QueueMenuImport, broker.published[0].queueName)

	var message domain.MenuImportMessage
	require.NoError(t, json.Unmarshal(broker.published[0].body, &message))
	assert.Equal(t, taskID.Hex(), message.TaskID)
	assert.Equal(t, "sheet-123", message.SpreadsheetID)
}

func TestCreateImportTask_PublishFailure(t *testing.T) {
	tasks := newMockImportTaskRepo()
	broker := &mockBroker{publishErr: errors.New("broker down")}
	svc := NewMenuImportService(tasks, &mockMenuRepo{}, nil, broker, zap.NewNop().Sugar())

	_, err := svc.CreateImportTask(context.Background(), "sheet-123")
	require.Error(t, err)

	// the orphaned task is marked failed instead of staying queued forever
	require.Len(t, tasks.tasks, 1)
	for _, task := range tasks.tasks {
		assert.Equal(t, domain.StatusFailed, task.Status)
	}
}

func TestProcessImportTask_NotConfigured(t *testing.T) {
	tasks := newMockImportTaskRepo()
	svc := NewMenuImportService(tasks, &mockMenuRepo{}, nil, &mockBroker{}, zap.NewNop().Sugar())

	taskID, err := svc.CreateImportTask(context.Background(), "sheet-123")
	require.NoError(t, err)

	err = svc.ProcessImportTask(context.Background(), taskID)
	require.Error(t, err)
	assert.Equal(t, domain.StatusFailed, tasks.tasks[taskID].Status)
}

func TestProcessImportTask_UnknownTask(t *testing.T) {
	svc := NewMenuImportService(newMockImportTaskRepo(), &mockMenuRepo{}, nil, &mockBroker{}, zap.NewNop().Sugar())

	err := svc.ProcessImportTask(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
}
