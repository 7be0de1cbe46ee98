package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/queue"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MenuImportWorker struct {
	importService *service.MenuImportService
	broker        queue.Broker
	logger        *zap.SugaredLogger
	ctx           context.Context
	cancel        context.CancelFunc
}

func NewMenuImportWorker(
	importService *service.MenuImportService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *MenuImportWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &MenuImportWorker{
		importService: importService,
		broker:        broker,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (w *MenuImportWorker) Start() error {
	w.logger.Info("starting menu import worker")

	return w.broker.Subscribe(w.ctx, queue.QueueMenuImport, w.handleMessage)
}

func (w *MenuImportWorker) Stop() {
	w.logger.Info("stopping menu import worker")
	w.cancel()
}

func (w *MenuImportWorker) handleMessage(ctx context.Context, message []byte) error {
	var msg domain.MenuImportMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	w.logger.Infow("processing menu import message", "task_id", msg.TaskID)

	taskID, err := primitive.ObjectIDFromHex(msg.TaskID)
	if err != nil {
		w.logger.Errorw("invalid task ID", "task_id", msg.TaskID, "error", err)
		return fmt.Errorf("invalid task ID: %w", err)
	}

	if err := w.importService.ProcessImportTask(ctx, taskID); err != nil {
		w.logger.Errorw("failed to process import task", "task_id", msg.TaskID, "error", err)
		return err
	}

	return nil
}
