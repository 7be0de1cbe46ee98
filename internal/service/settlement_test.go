package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/queue"
)

// --- Mock implementations ---

type mockPaymentRepo struct {
	created   []*domain.Payment
	createErr error
}

func (m *mockPaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	m.created = append(m.created, payment)
	return nil
}

func (m *mockPaymentRepo) GetByEmail(_ context.Context, _ string) ([]domain.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(m.created)), nil
}

func (m *mockPaymentRepo) TotalRevenue(_ context.Context) (float64, error) {
	var total float64
	for _, p := range m.created {
		total += p.Amount
	}
	return total, nil
}

func (m *mockPaymentRepo) OrderStatsByCategory(_ context.Context) ([]domain.CategoryOrderStats, error) {
	return nil, nil
}

func (m *mockPaymentRepo) UserStats(_ context.Context, _ string) (*domain.UserStats, error) {
	return &domain.UserStats{}, nil
}

type mockCartRepo struct {
	deletedIDs []string
	deleteErr  error
	remaining  int64
	countErr   error
}

func (m *mockCartRepo) Create(_ context.Context, _ *domain.CartEntry) error { return nil }

func (m *mockCartRepo) GetByEmail(_ context.Context, _ string) ([]domain.CartEntry, error) {
	return nil, nil
}

func (m *mockCartRepo) Delete(_ context.Context, _ primitive.ObjectID) error { return nil }

func (m *mockCartRepo) DeleteManyByIDs(_ context.Context, ids []string) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, ids...)
	return int64(len(ids)), nil
}

func (m *mockCartRepo) CountByIDs(_ context.Context, _ []string) (int64, error) {
	return m.remaining, m.countErr
}

type mockReservationRepo struct {
	deletedIDs []string
	deleteErr  error
	remaining  int64
}

func (m *mockReservationRepo) Create(_ context.Context, _ *domain.ReservationEntry) error {
	return nil
}

func (m *mockReservationRepo) GetByEmail(_ context.Context, _ string) ([]domain.ReservationEntry, error) {
	return nil, nil
}

func (m *mockReservationRepo) Delete(_ context.Context, _ primitive.ObjectID) error { return nil }

func (m *mockReservationRepo) DeleteManyByIDs(_ context.Context, ids []string) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, ids...)
	return int64(len(ids)), nil
}

func (m *mockReservationRepo) CountByIDs(_ context.Context, _ []string) (int64, error) {
	return m.remaining, nil
}

type mockAuditRepo struct {
	created   []*domain.SettlementAudit
	createErr error
}

func (m *mockAuditRepo) Create(_ context.Context, audit *domain.SettlementAudit) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, audit)
	return nil
}

func (m *mockAuditRepo) GetByPaymentID(_ context.Context, paymentID string, _ int) ([]domain.SettlementAudit, error) {
	var out []domain.SettlementAudit
	for _, a := range m.created {
		if a.PaymentID == paymentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type publishedMessage struct {
	queueName string
	body      []byte
}

type mockBroker struct {
	published  []publishedMessage
	publishErr error
}

func (m *mockBroker) Publish(_ context.Context, queueName string, message []byte) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, publishedMessage{queueName: queueName, body: message})
	return nil
}

func (m *mockBroker) Subscribe(_ context.Context, _ string, _ queue.MessageHandler) error {
	return nil
}

func (m *mockBroker) Close() error { return nil }

// --- Helpers ---

type settlementFixture struct {
	payments     *mockPaymentRepo
	carts        *mockCartRepo
	reservations *mockReservationRepo
	audits       *mockAuditRepo
	broker       *mockBroker
	svc          *SettlementService
}

func newSettlementFixture() *settlementFixture {
	f := &settlementFixture{
		payments:     &mockPaymentRepo{},
		carts:        &mockCartRepo{},
		reservations: &mockReservationRepo{},
		audits:       &mockAuditRepo{},
		broker:       &mockBroker{},
	}
	f.svc = NewSettlementService(
		f.payments,
		f.carts,
		f.reservations,
		f.audits,
		f.broker,
		zap.NewNop().Sugar(),
	)
	return f
}

func orderPayment(cartIDs ...string) *domain.Payment {
	return &domain.Payment{
		Email:         "alice@example.com",
		Amount:        42.50,
		TransactionID: "pi_test_123",
		CartIDs:       cartIDs,
		MenuIDs:       []string{"m1", "m2"},
		CreatedAt:     time.Now(),
	}
}

func reservationPayment(reservationIDs ...string) *domain.Payment {
	return &domain.Payment{
		Email:          "alice@example.com",
		Amount:         10,
		Category:       domain.CategoryReservation,
		TransactionID:  "pi_test_456",
		ReservationIDs: reservationIDs,
		CreatedAt:      time.Now(),
	}
}

// --- Tests ---

func TestSettle_OrderPayment(t *testing.T) {
	f := newSettlementFixture()

	result, err := f.svc.Settle(context.Background(), orderPayment("c1", "c2"))
	require.NoError(t, err)

	require.Len(t, f.payments.created, 1)
	assert.Equal(t, f.payments.created[0].ID, result.PaymentID)
	assert.Equal(t, int64(2), result.DeletedCount)

	assert.Equal(t, []string{"c1", "c2"}, f.carts.deletedIDs)
	assert.Empty(t, f.reservations.deletedIDs)
}

func TestSettle_ReservationPayment(t *testing.T) {
	f := newSettlementFixture()

	result, err := f.svc.Settle(context.Background(), reservationPayment("r1"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Equal(t, []string{"r1"}, f.reservations.deletedIDs)
	assert.Empty(t, f.carts.deletedIDs)
}

func TestSettle_InsertFailureAbortsCleanup(t *testing.T) {
	f := newSettlementFixture()
	f.payments.createErr = errors.New("write failed")

	_, err := f.svc.Settle(context.Background(), orderPayment("c1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record payment")

	// nothing was deleted and nothing was published
	assert.Empty(t, f.carts.deletedIDs)
	assert.Empty(t, f.broker.published)
}

func TestSettle_CleanupFailureKeepsPayment(t *testing.T) {
	f := newSettlementFixture()
	f.carts.deleteErr = errors.New("delete failed")

	result, err := f.svc.Settle(context.Background(), orderPayment("c1", "c2"))
	require.NoError(t, err)

	// the charge stands with zero deletions reported
	require.Len(t, f.payments.created, 1)
	assert.Equal(t, int64(0), result.DeletedCount)
	assert.False(t, result.PaymentID.IsZero())
}

func TestSettle_PublishesRecordedEvent(t *testing.T) {
	f := newSettlementFixture()

	result, err := f.svc.Settle(context.Background(), orderPayment("c1"))
	require.NoError(t, err)

	require.Len(t, f.broker.published, 1)
	assert.Equal(t, queue.QueuePaymentEvents, f.broker.published[0].queueName)

	var event domain.PaymentRecordedEvent
	require.NoError(t, json.Unmarshal(f.broker.published[0].body, &event))
	assert.Equal(t, domain.EventPaymentRecorded, event.EventType)
	assert.Equal(t, result.PaymentID.Hex(), event.PaymentID)
	assert.Equal(t, []string{"c1"}, event.SourceIDs)
	assert.Equal(t, int64(1), event.DeletedCount)
}

func TestSettle_PublishFailureIsBestEffort(t *testing.T) {
	f := newSettlementFixture()
	f.broker.publishErr = errors.New("broker down")

	result, err := f.svc.Settle(context.Background(), orderPayment("c1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
}

func TestSettle_ResubmitRecordsSecondPayment(t *testing.T) {
	f := newSettlementFixture()

	first, err := f.svc.Settle(context.Background(), orderPayment("c1"))
	require.NoError(t, err)

	// same payload again: no dedup, a second document is recorded
	second, err := f.svc.Settle(context.Background(), orderPayment("c1"))
	require.NoError(t, err)

	require.Len(t, f.payments.created, 2)
	assert.NotEqual(t, first.PaymentID, second.PaymentID)
}

func TestProcessPaymentRecorded_LeftoverEntries(t *testing.T) {
	f := newSettlementFixture()
	f.carts.remaining = 2

	event := domain.PaymentRecordedEvent{
		EventType: domain.EventPaymentRecorded,
		PaymentID: primitive.NewObjectID().Hex(),
		Email:     "alice@example.com",
		SourceIDs: []string{"c1", "c2"},
	}

	require.NoError(t, f.svc.ProcessPaymentRecorded(context.Background(), event))

	require.Len(t, f.audits.created, 1)
	audit := f.audits.created[0]
	assert.Equal(t, event.PaymentID, audit.PaymentID)
	assert.Equal(t, int64(2), audit.LeftoverCount)
	assert.Equal(t, []string{"c1", "c2"}, audit.SourceIDs)
}

func TestProcessPaymentRecorded_ReservationLeftovers(t *testing.T) {
	f := newSettlementFixture()
	f.reservations.remaining = 1

	event := domain.PaymentRecordedEvent{
		PaymentID: primitive.NewObjectID().Hex(),
		Category:  domain.CategoryReservation,
		SourceIDs: []string{"r1"},
	}

	require.NoError(t, f.svc.ProcessPaymentRecorded(context.Background(), event))
	require.Len(t, f.audits.created, 1)
	assert.Equal(t, int64(1), f.audits.created[0].LeftoverCount)
}

func TestProcessPaymentRecorded_CleanSettlement(t *testing.T) {
	f := newSettlementFixture()
	f.carts.remaining = 0

	event := domain.PaymentRecordedEvent{
		PaymentID: primitive.NewObjectID().Hex(),
		SourceIDs: []string{"c1"},
	}

	require.NoError(t, f.svc.ProcessPaymentRecorded(context.Background(), event))
	assert.Empty(t, f.audits.created)
}

func TestProcessPaymentRecorded_NoSourceIDs(t *testing.T) {
	f := newSettlementFixture()

	event := domain.PaymentRecordedEvent{PaymentID: primitive.NewObjectID().Hex()}

	require.NoError(t, f.svc.ProcessPaymentRecorded(context.Background(), event))
	assert.Empty(t, f.audits.created)
}

func TestProcessPaymentRecorded_CountError(t *testing.T) {
	f := newSettlementFixture()
	f.carts.countErr = errors.New("count failed")

	event := domain.PaymentRecordedEvent{
		PaymentID: primitive.NewObjectID().Hex(),
		SourceIDs: []string{"c1"},
	}

	err := f.svc.ProcessPaymentRecorded(context.Background(), event)
	require.Error(t, err)
	assert.Empty(t, f.audits.created)
}

func TestGetPaymentAudit(t *testing.T) {
	f := newSettlementFixture()
	paymentID := primitive.NewObjectID().Hex()
	f.audits.created = []*domain.SettlementAudit{
		{PaymentID: paymentID, LeftoverCount: 1},
		{PaymentID: "other", LeftoverCount: 3},
	}

	audits, err := f.svc.GetPaymentAudit(context.Background(), paymentID, 10)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, paymentID, audits[0].PaymentID)
}
