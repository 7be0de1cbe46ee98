package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	StatusQueued     ImportTaskStatus = "queued"
	StatusProcessing ImportTaskStatus = "processing"
	StatusCompleted  ImportTaskStatus = "completed"
	StatusFailed     ImportTaskStatus = "failed"
)

// ImportTask tracks an asynchronous menu import from a spreadsheet.
type ImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	SpreadsheetID string             `bson:"spreadsheet_id" json:"spreadsheet_id"`
	ItemsImported int                `bson:"items_imported" json:"items_imported"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount    int                `bson:"retry_count" json:"retry_count"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
