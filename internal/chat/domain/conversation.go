package domain

import (
	productdomain "reuse_market_service/internal/product/domain"
)

// ConversationUser 對話對象
type ConversationUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Conversation 從訊息導出的對話串，不落庫
// 以 (productId, otherUserId) 為 key，每次讀取時重新聚合
type Conversation struct {
	Product     productdomain.ProductSummary `json:"product"`
	OtherUser   ConversationUser             `json:"otherUser"`
	LastMessage MessageView                  `json:"lastMessage"`
	UnreadCount int                          `json:"unreadCount"`
}
