package domain

import (
	"testing"
	"time"

	"reuse_market_service/pkg/encrypt"

	"github.com/stretchr/testify/assert"
)

func TestUserPasswordMatch(t *testing.T) {
	hashed, err := encrypt.HashPassword("pass1234")
	assert.NoError(t, err)

	user := User{
		ID:       1,
		Email:    "user@example.com",
		Password: hashed,
	}

	assert.True(t, user.IsPasswordMatch("pass1234") == nil, "should match correct password")
	assert.False(t, user.IsPasswordMatch("wrongpass") == nil, "should not match incorrect password")
}

func TestUserSessionExpiration(t *testing.T) {
	session := UserSession{
		Token:        "abcd1234",
		UserID:       "1",
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
		ExpiredAt:    time.Now().Add(-1 * time.Minute), // 已經過期
	}

	assert.True(t, session.IsExpired(), "session should be expired")
}
