package domain

import (
	"errors"
	"time"
)

// 發送訊息時的驗證錯誤
var (
	// ErrEmptyContent message content is empty
	ErrEmptyContent = errors.New("message content is empty")
	// ErrProductNotFound referenced product does not exist
	ErrProductNotFound = errors.New("product not found")
	// ErrReceiverNotFound referenced receiver does not exist
	ErrReceiverNotFound = errors.New("receiver not found")
	// ErrSelfMessage sender and receiver are the same user
	ErrSelfMessage = errors.New("sender and receiver must be different users")
)

// Message 一則聊天訊息，append-only，建立後不再修改
// 每則訊息都掛在一個 product 下，sender/receiver 必須是不同的使用者
type Message struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Content    string    `json:"content"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	ProductID  string    `json:"productId"`
	Timestamp  time.Time `json:"timestamp"`
}

// TableName gorm table name
func (Message) TableName() string {
	return "messages"
}

// MessageView 訊息加上顯示用的名稱與商品摘要（join 結果）
type MessageView struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	ProductID  string    `json:"productId"`
	Timestamp  time.Time `json:"timestamp"`

	SenderName   string `json:"senderName"`
	ReceiverName string `json:"receiverName"`
	ProductTitle string `json:"productTitle"`
	ProductImage string `json:"productImage,omitempty"`
}
