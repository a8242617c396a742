package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"reuse_market_service/internal/chat/domain"
	memberdomain "reuse_market_service/internal/member/domain"
	memberrepository "reuse_market_service/internal/member/repository"
	productdomain "reuse_market_service/internal/product/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func msgView(id, content, senderID, receiverID, productID string, ts time.Time) domain.MessageView {
	return domain.MessageView{
		ID:         id,
		Content:    content,
		SenderID:   senderID,
		ReceiverID: receiverID,
		ProductID:  productID,
		Timestamp:  ts,
	}
}

// TestAggregateConversations_GroupsByProductAndUser 同一組 (product, 對方) 只會有一個對話串
func TestAggregateConversations_GroupsByProductAndUser(t *testing.T) {
	now := time.Now()
	msgs := []domain.MessageView{
		msgView("m3", "newest", "bob", "alice", "p1", now),
		msgView("m2", "middle", "alice", "bob", "p1", now.Add(-time.Minute)),
		msgView("m1", "oldest", "bob", "alice", "p1", now.Add(-2*time.Minute)),
	}

	convs := AggregateConversations("alice", msgs)

	assert.Len(t, convs, 1)
	assert.Equal(t, "bob", convs[0].OtherUser.ID)
	assert.Equal(t, "p1", convs[0].Product.ID)
	// 最新在前，所以第一筆就是 lastMessage
	assert.Equal(t, "m3", convs[0].LastMessage.ID)
}

// TestAggregateConversations_SameUserDifferentProducts 同一個對象、不同商品要拆成兩個對話串
func TestAggregateConversations_SameUserDifferentProducts(t *testing.T) {
	now := time.Now()
	msgs := []domain.MessageView{
		msgView("m2", "about camera", "bob", "alice", "p2", now),
		msgView("m1", "about bike", "bob", "alice", "p1", now.Add(-time.Minute)),
	}

	convs := AggregateConversations("alice", msgs)

	assert.Len(t, convs, 2)
	// 保留首次出現的順序
	assert.Equal(t, "p2", convs[0].Product.ID)
	assert.Equal(t, "p1", convs[1].Product.ID)
}

// TestAggregateConversations_UnreadCount 只有收到的訊息算未讀，自己發的不算
func TestAggregateConversations_UnreadCount(t *testing.T) {
	now := time.Now()
	msgs := []domain.MessageView{
		msgView("m4", "d", "bob", "alice", "p1", now),
		msgView("m3", "c", "bob", "alice", "p1", now.Add(-time.Minute)),
		msgView("m2", "b", "alice", "bob", "p1", now.Add(-2*time.Minute)),
		msgView("m1", "a", "bob", "alice", "p1", now.Add(-3*time.Minute)),
	}

	convs := AggregateConversations("alice", msgs)

	assert.Len(t, convs, 1)
	assert.Equal(t, 3, convs[0].UnreadCount)
}

// TestAggregateConversations_OrderContract 輸入若不是最新在前，lastMessage 就會是錯的。
// 聚合本身不排序，排序是 repository 的責任。
func TestAggregateConversations_OrderContract(t *testing.T) {
	now := time.Now()
	msgs := []domain.MessageView{
		msgView("m1", "oldest", "bob", "alice", "p1", now.Add(-time.Minute)),
		msgView("m2", "newest", "bob", "alice", "p1", now),
	}

	convs := AggregateConversations("alice", msgs)

	assert.Len(t, convs, 1)
	assert.Equal(t, "m1", convs[0].LastMessage.ID)
}

// TestAggregateConversations_Empty
func TestAggregateConversations_Empty(t *testing.T) {
	convs := AggregateConversations("alice", nil)
	assert.NotNil(t, convs)
	assert.Len(t, convs, 0)
}

func newChatUseCaseForTest() (ChatUseCase, *MockMessageRepository, *MockProductFinder, *MockUserFinder, *MockPublisher) {
	msgRepo := new(MockMessageRepository)
	productRepo := new(MockProductFinder)
	userRepo := new(MockUserFinder)
	pub := new(MockPublisher)
	return NewChatUseCase(msgRepo, productRepo, userRepo, pub), msgRepo, productRepo, userRepo, pub
}

// TestSendMessage_Success 正常發訊息，並推送給接收方
func TestSendMessage_Success(t *testing.T) {
	uc, msgRepo, productRepo, userRepo, pub := newChatUseCaseForTest()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(&productdomain.Product{ID: "p1", Title: "Bicicleta", Image: "http://img/p1.jpg"}, nil)
	userRepo.On("FindByUser", ctx, mock.MatchedBy(func(q *memberdomain.UserQuery) bool {
		return q.UserID != nil && *q.UserID == "bob"
	})).Return(&memberdomain.User{UserID: "bob", Name: "Bob"}, nil)
	userRepo.On("FindByUser", ctx, mock.MatchedBy(func(q *memberdomain.UserQuery) bool {
		return q.UserID != nil && *q.UserID == "alice"
	})).Return(&memberdomain.User{UserID: "alice", Name: "Alice"}, nil)
	msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	pub.On("Publish", "chat:user:bob", mock.AnythingOfType("domain.MessageView")).Return(nil)

	view, err := uc.SendMessage(ctx, "alice", "bob", "p1", "  ainda disponível?  ")

	assert.NoError(t, err)
	assert.Equal(t, "ainda disponível?", view.Content)
	assert.Equal(t, "Bob", view.ReceiverName)
	assert.Equal(t, "Alice", view.SenderName)
	assert.Equal(t, "Bicicleta", view.ProductTitle)
	msgRepo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

// TestSendMessage_EmptyContent 空白內容要擋下來
func TestSendMessage_EmptyContent(t *testing.T) {
	uc, msgRepo, _, _, _ := newChatUseCaseForTest()

	_, err := uc.SendMessage(context.Background(), "alice", "bob", "p1", "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyContent)
	msgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestSendMessage_SelfMessage 不能傳給自己
func TestSendMessage_SelfMessage(t *testing.T) {
	uc, _, _, _, _ := newChatUseCaseForTest()

	_, err := uc.SendMessage(context.Background(), "alice", "alice", "p1", "hi")

	assert.ErrorIs(t, err, domain.ErrSelfMessage)
}

// TestSendMessage_ProductNotFound
func TestSendMessage_ProductNotFound(t *testing.T) {
	uc, _, productRepo, _, _ := newChatUseCaseForTest()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "missing").Return(nil, errors.New("record not found"))

	_, err := uc.SendMessage(ctx, "alice", "bob", "missing", "hi")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// TestSendMessage_ReceiverNotFound
func TestSendMessage_ReceiverNotFound(t *testing.T) {
	uc, _, productRepo, userRepo, _ := newChatUseCaseForTest()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(&productdomain.Product{ID: "p1", Title: "Bicicleta"}, nil)
	userRepo.On("FindByUser", ctx, mock.Anything).Return(nil, memberrepository.ErrUserNotFound)

	_, err := uc.SendMessage(ctx, "alice", "ghost", "p1", "hi")

	assert.ErrorIs(t, err, domain.ErrReceiverNotFound)
}

// TestSendMessage_PublishFailureDoesNotFail 推送失敗不影響回傳
func TestSendMessage_PublishFailureDoesNotFail(t *testing.T) {
	uc, msgRepo, productRepo, userRepo, pub := newChatUseCaseForTest()
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "p1").Return(&productdomain.Product{ID: "p1", Title: "Bicicleta"}, nil)
	userRepo.On("FindByUser", ctx, mock.Anything).Return(&memberdomain.User{UserID: "bob", Name: "Bob"}, nil)
	msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	view, err := uc.SendMessage(ctx, "alice", "bob", "p1", "hi")

	assert.NoError(t, err)
	assert.NotNil(t, view)
}

// TestGetConversations 從 repository 拉訊息後聚合
func TestGetConversations(t *testing.T) {
	uc, msgRepo, _, _, _ := newChatUseCaseForTest()
	ctx := context.Background()
	now := time.Now()

	msgRepo.On("FindByParticipant", ctx, "alice").Return([]domain.MessageView{
		msgView("m2", "newest", "bob", "alice", "p1", now),
		msgView("m1", "oldest", "alice", "bob", "p1", now.Add(-time.Minute)),
	}, nil)

	convs, err := uc.GetConversations(ctx, "alice")

	assert.NoError(t, err)
	assert.Len(t, convs, 1)
	assert.Equal(t, "m2", convs[0].LastMessage.ID)
	assert.Equal(t, 1, convs[0].UnreadCount)
}
