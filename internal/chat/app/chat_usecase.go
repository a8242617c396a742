package app

import (
	"context"
	"strings"
	"time"

	"reuse_market_service/internal/chat/domain"
	"reuse_market_service/internal/chat/repository"
	memberdomain "reuse_market_service/internal/member/domain"
	productdomain "reuse_market_service/internal/product/domain"
	"reuse_market_service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductFinder 查商品是否存在
type ProductFinder interface {
	GetByID(ctx context.Context, id string) (*productdomain.Product, error)
}

// UserFinder 查使用者是否存在
type UserFinder interface {
	FindByUser(ctx context.Context, q *memberdomain.UserQuery) (*memberdomain.User, error)
}

// MessagePublisher 新訊息的推送通道
type MessagePublisher interface {
	Publish(channel string, message interface{}) error
}

// ChatUseCase 這裡封裝了對外提供的應用服務
type ChatUseCase interface {
	// GetConversations 把使用者的訊息聚合成對話串
	GetConversations(ctx context.Context, viewerID string) ([]domain.Conversation, error)
	// GetThread 兩個使用者在一個商品下的訊息，最舊在前
	GetThread(ctx context.Context, viewerID, productID, otherUserID string) ([]domain.MessageView, error)
	SendMessage(ctx context.Context, senderID, receiverID, productID, content string) (*domain.MessageView, error)
}

type chatUseCase struct {
	msgRepo     repository.MessageRepository
	productRepo ProductFinder
	userRepo    UserFinder
	pubsub      MessagePublisher
}

// NewChatUseCase 建立一個新的 ChatUseCase
func NewChatUseCase(msgRepo repository.MessageRepository, productRepo ProductFinder, userRepo UserFinder, pubsub MessagePublisher) ChatUseCase {
	return &chatUseCase{
		msgRepo:     msgRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		pubsub:      pubsub,
	}
}

// AggregateConversations 把訊息按 (productId, otherUserId) 聚合成對話串
//
// 輸入必須是最新在前：每個 key 第一次出現的訊息就是該對話的 lastMessage，
// 之後同 key 的訊息只累加未讀數，不再更新 lastMessage。
// 輸出保留 key 首次出現的順序，最近有動靜的對話排在前面。
func AggregateConversations(viewerID string, msgs []domain.MessageView) []domain.Conversation {
	index := make(map[string]int)
	conversations := make([]domain.Conversation, 0)

	for _, m := range msgs {
		otherID, otherName := m.SenderID, m.SenderName
		if m.SenderID == viewerID {
			otherID, otherName = m.ReceiverID, m.ReceiverName
		}

		key := m.ProductID + "-" + otherID

		i, ok := index[key]
		if !ok {
			i = len(conversations)
			index[key] = i
			conversations = append(conversations, domain.Conversation{
				Product: productdomain.ProductSummary{
					ID:    m.ProductID,
					Title: m.ProductTitle,
					Image: m.ProductImage,
				},
				OtherUser:   domain.ConversationUser{ID: otherID, Name: otherName},
				LastMessage: m,
			})
		}

		// 收到的才算未讀，自己發的不算
		if m.ReceiverID == viewerID {
			conversations[i].UnreadCount++
		}
	}

	return conversations
}

// GetConversations
func (c *chatUseCase) GetConversations(ctx context.Context, viewerID string) ([]domain.Conversation, error) {
	msgs, err := c.msgRepo.FindByParticipant(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return AggregateConversations(viewerID, msgs), nil
}

// GetThread
func (c *chatUseCase) GetThread(ctx context.Context, viewerID, productID, otherUserID string) ([]domain.MessageView, error) {
	return c.msgRepo.FindThread(ctx, viewerID, otherUserID, productID)
}

// SendMessage
func (c *chatUseCase) SendMessage(ctx context.Context, senderID, receiverID, productID, content string) (*domain.MessageView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	if senderID == receiverID {
		return nil, domain.ErrSelfMessage
	}

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	receiver, err := c.userRepo.FindByUser(ctx, &memberdomain.UserQuery{UserID: &receiverID})
	if err != nil {
		return nil, domain.ErrReceiverNotFound
	}

	msg := domain.Message{
		ID:         uuid.New().String(),
		Content:    content,
		SenderID:   senderID,
		ReceiverID: receiverID,
		ProductID:  productID,
		Timestamp:  time.Now(),
	}
	if err := c.msgRepo.Create(ctx, &msg); err != nil {
		return nil, err
	}

	view := domain.MessageView{
		ID:           msg.ID,
		Content:      msg.Content,
		SenderID:     msg.SenderID,
		ReceiverID:   msg.ReceiverID,
		ProductID:    msg.ProductID,
		Timestamp:    msg.Timestamp,
		ReceiverName: receiver.Name,
		ProductTitle: product.Title,
		ProductImage: product.Image,
	}
	if sender, err := c.userRepo.FindByUser(ctx, &memberdomain.UserQuery{UserID: &senderID}); err == nil {
		view.SenderName = sender.Name
	}

	// 推送失敗不影響訊息本身，接收方下次拉取還是看得到
	if err := c.pubsub.Publish(repository.UserChannel(receiverID), view); err != nil {
		logger.Log.Warn("publish new message failed", zap.Error(err))
	}

	return &view, nil
}
