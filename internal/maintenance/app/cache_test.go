package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 測試 TTL 內的兩次刷新只會抓取一次
func TestStatusCache_RefreshWithinTTL(t *testing.T) {
	ctx := context.Background()
	var fetchCount int32

	cache := NewStatusCache(200*time.Millisecond, time.Second, func(ctx context.Context) (bool, error) {
		atomic.AddInt32(&fetchCount, 1)
		return true, nil
	})

	cache.RefreshIfStale(ctx)
	cache.RefreshIfStale(ctx)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fetchCount))
	assert.True(t, cache.Read())
}

// 測試超過 TTL 之後會重新抓取
func TestStatusCache_RefreshAfterTTL(t *testing.T) {
	ctx := context.Background()
	var fetchCount int32

	cache := NewStatusCache(20*time.Millisecond, time.Second, func(ctx context.Context) (bool, error) {
		atomic.AddInt32(&fetchCount, 1)
		return false, nil
	})

	cache.RefreshIfStale(ctx)
	time.Sleep(30 * time.Millisecond)
	cache.RefreshIfStale(ctx)

	assert.Equal(t, int32(2), atomic.LoadInt32(&fetchCount))
}

// 測試抓取失敗時保留舊值
func TestStatusCache_FetchErrorKeepsStaleValue(t *testing.T) {
	ctx := context.Background()
	var failing atomic.Bool

	cache := NewStatusCache(10*time.Millisecond, time.Second, func(ctx context.Context) (bool, error) {
		if failing.Load() {
			return false, errors.New("persistence unavailable")
		}
		return true, nil
	})

	cache.RefreshIfStale(ctx)
	assert.True(t, cache.Read())

	failing.Store(true)
	time.Sleep(20 * time.Millisecond)
	cache.RefreshIfStale(ctx)

	// 失敗被吞掉，stale-but-available
	assert.True(t, cache.Read())
}

// 測試 Write 直接覆寫不等 TTL
func TestStatusCache_WriteBypassesTTL(t *testing.T) {
	cache := NewStatusCache(5*time.Second, time.Second, func(ctx context.Context) (bool, error) {
		return false, nil
	})

	assert.False(t, cache.Read(), "cold value should be false")

	cache.Write(true)
	assert.True(t, cache.Read())
}

// 測試配置缺漏(零值)時退回預設, 不會變成每個請求都抓取一次、逾時即過期
func TestStatusCache_ZeroConfigFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	var fetchCount int32

	cache := NewStatusCache(0, 0, func(ctx context.Context) (bool, error) {
		atomic.AddInt32(&fetchCount, 1)

		// 預設逾時生效的話, context 的 deadline 在未來
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.True(t, deadline.After(time.Now()))
		return true, nil
	})

	cache.RefreshIfStale(ctx)
	cache.RefreshIfStale(ctx)

	// 預設 TTL 生效: 第二次刷新在 TTL 內, 不再抓取
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetchCount))
	assert.True(t, cache.Read())
	assert.Equal(t, DefaultStatusTTL, cache.ttl)
	assert.Equal(t, DefaultFetchTimeout, cache.fetchTimeout)
}
