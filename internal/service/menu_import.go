package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/parser"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/queue"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MenuImportService struct {
	taskRepo repo.ImportTaskRepository
	menuRepo repo.MenuRepository
	parser   *parser.GoogleSheetsParser
	broker   queue.Broker
	logger   *zap.SugaredLogger
}

func NewMenuImportService(
	taskRepo repo.ImportTaskRepository,
	menuRepo repo.MenuRepository,
	parser *parser.GoogleSheetsParser,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *MenuImportService {
	return &MenuImportService{
		taskRepo: taskRepo,
		menuRepo: menuRepo,
		parser:   parser,
		broker:   broker,
		logger:   logger,
	}
}

func (s *MenuImportService) CreateImportTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	task := &domain.ImportTask{
		Status:        domain.StatusQueued,
		SpreadsheetID: spreadsheetID,
		RetryCount:    0,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.MenuImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueMenuImport, messageBytes); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.StatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("menu import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

func (s *MenuImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

func (s *MenuImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if s.parser == nil {
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, "no spreadsheet credentials configured")
		return fmt.Errorf("menu import is not configured")
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing menu import task", "task_id", taskID.Hex())

	items, err := s.parser.ParseMenuItems(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse menu items", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.IncrementRetryCount(ctx, taskID)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to parse menu items: %w", err)
	}

	count, err := s.menuRepo.CreateMany(ctx, items)
	if err != nil {
		s.logger.Errorw("failed to save menu items", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to save menu items: %w", err)
	}

	if err := s.taskRepo.UpdateCompleted(ctx, taskID, count); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	s.logger.Infow("menu import task completed", "task_id", taskID.Hex(), "items", count)

	return nil
}
