package repository

import (
	"context"

	"reuse_market_service/internal/chat/domain"

	"gorm.io/gorm"
)

// MessageRepository definition get message info
type MessageRepository interface {
	AutoMigrate() error
	Create(ctx context.Context, msg *domain.Message) error
	// FindByParticipant 取使用者參與的所有訊息，最新在前
	// 聚合對話串依賴這個排序，呼叫端不可重排
	FindByParticipant(ctx context.Context, userID string) ([]domain.MessageView, error)
	// FindThread 取兩個使用者在一個商品下的訊息，最舊在前
	FindThread(ctx context.Context, viewerID, otherUserID, productID string) ([]domain.MessageView, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository create a MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Message{})
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

const messageViewSelect = `messages.id, messages.content, messages.sender_id, messages.receiver_id,
	messages.product_id, messages.timestamp,
	su.name AS sender_name, ru.name AS receiver_name,
	p.title AS product_title, p.image AS product_image`

func (r *messageRepository) FindByParticipant(ctx context.Context, userID string) ([]domain.MessageView, error) {
	var views []domain.MessageView
	err := r.db.WithContext(ctx).Table("messages").
		Select(messageViewSelect).
		Joins("JOIN users su ON su.user_id = messages.sender_id").
		Joins("JOIN users ru ON ru.user_id = messages.receiver_id").
		Joins("JOIN products p ON p.id = messages.product_id").
		Where("messages.sender_id = ? OR messages.receiver_id = ?", userID, userID).
		Order("messages.timestamp DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *messageRepository) FindThread(ctx context.Context, viewerID, otherUserID, productID string) ([]domain.MessageView, error) {
	var views []domain.MessageView
	err := r.db.WithContext(ctx).Table("messages").
		Select(messageViewSelect).
		Joins("JOIN users su ON su.user_id = messages.sender_id").
		Joins("JOIN users ru ON ru.user_id = messages.receiver_id").
		Joins("JOIN products p ON p.id = messages.product_id").
		Where("messages.product_id = ?", productID).
		Where("(messages.sender_id = ? AND messages.receiver_id = ?) OR (messages.sender_id = ? AND messages.receiver_id = ?)",
			viewerID, otherUserID, otherUserID, viewerID).
		Order("messages.timestamp ASC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
