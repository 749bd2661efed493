package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/worker/audit"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AuditRecord), args.Error(1)
}

func messageChannel(messages ...domain.StreamMessage) <-chan domain.StreamMessage {
	ch := make(chan domain.StreamMessage, len(messages))
	for _, msg := range messages {
		ch <- msg
	}
	close(ch)
	return ch
}

func runWorker(t *testing.T, w *audit.AuditLogWorker) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, w.Start(ctx))
}

func TestAuditLogWorker_PersistsEvent(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	auditRepo := &MockAuditRepository{}

	userID := int64(1)
	msg := domain.StreamMessage{
		ID:   "1-0",
		Data: `{"user_id":1,"action":"route.create","details":{"route_id":42}}`,
	}

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAuditLog, "workers").Return(nil)
	streamRepo.On("ConsumeStream", mock.Anything, domain.StreamAuditLog, "workers", mock.AnythingOfType("string")).
		Return(messageChannel(msg), nil)

	var inserted *domain.AuditRecord
	auditRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.AuditRecord")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*domain.AuditRecord)
		}).Return(nil)
	streamRepo.On("AckMessage", mock.Anything, domain.StreamAuditLog, "workers", "1-0").Return(nil)

	w := audit.NewAuditLogWorker(streamRepo, auditRepo, "workers", zap.NewNop())
	runWorker(t, w)

	require.NotNil(t, inserted)
	assert.Equal(t, "route.create", inserted.Action)
	require.NotNil(t, inserted.UserID)
	assert.Equal(t, userID, *inserted.UserID)
	assert.JSONEq(t, `{"route_id":42}`, inserted.Details)
	streamRepo.AssertExpectations(t)
}

func TestAuditLogWorker_BrokenMessageAcked(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	auditRepo := &MockAuditRepository{}

	msg := domain.StreamMessage{ID: "2-0", Data: "not json"}

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAuditLog, "workers").Return(nil)
	streamRepo.On("ConsumeStream", mock.Anything, domain.StreamAuditLog, "workers", mock.AnythingOfType("string")).
		Return(messageChannel(msg), nil)
	streamRepo.On("AckMessage", mock.Anything, domain.StreamAuditLog, "workers", "2-0").Return(nil)

	w := audit.NewAuditLogWorker(streamRepo, auditRepo, "workers", zap.NewNop())
	runWorker(t, w)

	auditRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	streamRepo.AssertExpectations(t)
}

func TestAuditLogWorker_FailedInsertNotAcked(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	auditRepo := &MockAuditRepository{}

	msg := domain.StreamMessage{
		ID:   "3-0",
		Data: `{"action":"booking.create"}`,
	}

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAuditLog, "workers").Return(nil)
	streamRepo.On("ConsumeStream", mock.Anything, domain.StreamAuditLog, "workers", mock.AnythingOfType("string")).
		Return(messageChannel(msg), nil)
	auditRepo.On("Insert", mock.Anything, mock.Anything).Return(assert.AnError)

	w := audit.NewAuditLogWorker(streamRepo, auditRepo, "workers", zap.NewNop())
	runWorker(t, w)

	// сообщение останется в стриме до успешной записи
	streamRepo.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
