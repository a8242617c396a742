package repository

import (
	"fmt"
	"strings"
	"testing"

	"reuse_market_service/internal/member/domain"

	"github.com/stretchr/testify/assert"
)

// TestUsersSchema_StatusColumnIsInteger status 以 domain.UserStatus 的整數值綁定,
// 欄位若改回文字型別, pgx 會在每次 UpdateUserStatus 時編碼失敗
func TestUsersSchema_StatusColumnIsInteger(t *testing.T) {
	assert.Contains(t, usersSchema, "status SMALLINT")
	assert.NotContains(t, usersSchema, "status TEXT")

	// DDL 預設值要跟 domain 的零值(離線)一致
	assert.Contains(t, usersSchema, fmt.Sprintf("DEFAULT %d", int16(domain.UserStatusOffLine)))
}

// TestUsersSchema_CoversQueriedColumns SELECT/INSERT 用到的欄位都要在 DDL 裡
func TestUsersSchema_CoversQueriedColumns(t *testing.T) {
	for _, col := range []string{"id", "user_id", "email", "name", "password", "status"} {
		assert.True(t, strings.Contains(usersSchema, col), col)
	}
}
