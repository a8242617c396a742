package domain

// WSAction definition websocket action
type WSAction string

const (
	// NotifyMessage push a new message to the receiver
	NotifyMessage WSAction = "new_message"
	// SendMessage client 透過 websocket 發訊息
	SendMessage WSAction = "send_message"
)

// WSRequest client 發過來的封包
type WSRequest struct {
	Action     string `json:"action"`
	ReceiverID string `json:"receiverId"`
	ProductID  string `json:"productId"`
	Content    string `json:"content"`
}

// WSResponse websocket 推送給 client 的封包
type WSResponse struct {
	Action  string                 `json:"action"`
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
	Payload map[string]interface{} `json:"payload"`
}
