package domain

import "time"

type MenuImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

// PaymentRecordedEvent is published after every settlement, whether or
// not the cleanup pass removed everything it was asked to. The audit
// worker uses it to detect source entries left behind.
type PaymentRecordedEvent struct {
	EventType    string    `json:"event_type"`
	PaymentID    string    `json:"payment_id"`
	Email        string    `json:"email"`
	Category     string    `json:"category"`
	SourceIDs    []string  `json:"source_ids"`
	DeletedCount int64     `json:"deleted_count"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventPaymentRecorded = "payment.recorded"
)
