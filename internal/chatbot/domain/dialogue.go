package domain

import "time"

// Button 對話回覆附帶的快捷按鈕
type Button struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// DialogueRequest client 發過來的輸入
type DialogueRequest struct {
	Message     string `json:"message"`
	ButtonValue string `json:"buttonValue"`
	SessionID   string `json:"sessionId"`
}

// DialogueResponse 機器人的單次回覆, 無狀態
type DialogueResponse struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Buttons   []Button  `json:"buttons"`
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
}
