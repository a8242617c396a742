package app

import (
	"context"

	"reuse_market_service/internal/chat/domain"
	memberdomain "reuse_market_service/internal/member/domain"
	productdomain "reuse_market_service/internal/product/domain"

	"github.com/stretchr/testify/mock"
)

// MockMessageRepository Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

// AutoMigrate moke migrate
func (m *MockMessageRepository) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}

// Create moke insert msg
func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// FindByParticipant moke find user messages newest first
func (m *MockMessageRepository) FindByParticipant(ctx context.Context, userID string) ([]domain.MessageView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MessageView), args.Error(1)
}

// FindThread moke find thread oldest first
func (m *MockMessageRepository) FindThread(ctx context.Context, viewerID, otherUserID, productID string) ([]domain.MessageView, error) {
	args := m.Called(ctx, viewerID, otherUserID, productID)
	return args.Get(0).([]domain.MessageView), args.Error(1)
}

// MockProductFinder Mock ProductFinder
type MockProductFinder struct {
	mock.Mock
}

// GetByID moke get product
func (m *MockProductFinder) GetByID(ctx context.Context, id string) (*productdomain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*productdomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserFinder Mock UserFinder
type MockUserFinder struct {
	mock.Mock
}

// FindByUser moke find user
func (m *MockUserFinder) FindByUser(ctx context.Context, q *memberdomain.UserQuery) (*memberdomain.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) != nil {
		return args.Get(0).(*memberdomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPublisher Mock MessagePublisher
type MockPublisher struct {
	mock.Mock
}

// Publish moke publish message
func (m *MockPublisher) Publish(channel string, message interface{}) error {
	args := m.Called(channel, message)
	return args.Error(0)
}
