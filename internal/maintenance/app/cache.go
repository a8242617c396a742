package app

import (
	"context"
	"sync"
	"time"

	"reuse_market_service/pkg/logger"

	"go.uber.org/zap"
)

// FetchStatusFunc 向 Config Store 取得當前維護狀態
type FetchStatusFunc func(ctx context.Context) (bool, error)

const (
	// DefaultStatusTTL 配置未給 TTL 時的預設值
	DefaultStatusTTL = 5 * time.Second
	// DefaultFetchTimeout 配置未給抓取逾時時的預設值
	DefaultFetchTimeout = 2 * time.Second
)

// StatusCache 進程內維護狀態鏡像，帶 TTL
// 每個進程各持有一份，跨實例收斂時間以 TTL 為界
type StatusCache struct {
	mu          sync.Mutex
	status      bool
	lastChecked time.Time

	ttl          time.Duration
	fetchTimeout time.Duration
	fetch        FetchStatusFunc
}

// NewStatusCache create a StatusCache, 冷啟動狀態為 false
// ttl 或 fetchTimeout 非正值時退回預設, 否則 TTL 0 會讓每個請求都打一次 DB
// 且逾時 0 的 context 一建立就過期, 刷新永遠失敗
func NewStatusCache(ttl, fetchTimeout time.Duration, fetch FetchStatusFunc) *StatusCache {
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &StatusCache{
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
		fetch:        fetch,
	}
}

// Read 返回當前緩存狀態，不觸發刷新
func (s *StatusCache) Read() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Write 直接覆寫狀態，配置更新時由本進程呼叫，不等 TTL
func (s *StatusCache) Write(status bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastChecked = time.Now()
}

// RefreshIfStale 超過 TTL 才重新抓取
// 抓取失敗只記 log，保留舊值，請求永遠不因此失敗
func (s *StatusCache) RefreshIfStale(ctx context.Context) {
	s.mu.Lock()
	if time.Since(s.lastChecked) < s.ttl {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	status, err := s.fetch(fetchCtx)
	if err != nil {
		logger.Log.Warn("maintenance status fetch failed, keep cached value", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.status = status
	s.lastChecked = time.Now()
	s.mu.Unlock()
}
