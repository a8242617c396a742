package domain

import "time"

// DefaultMaintenanceMessage 沒有配置時使用的預設訊息
const DefaultMaintenanceMessage = "Sistema em manutenção. Voltaremos em breve!"

// Config 維護模式配置
// 表裡可能累積多列，最高 id 的那一列才是權威配置
type Config struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	MaintenanceMode    bool      `json:"maintenanceMode"`
	MaintenanceMessage string    `json:"maintenanceMessage"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// TableName gorm table name
func (Config) TableName() string {
	return "configs"
}
