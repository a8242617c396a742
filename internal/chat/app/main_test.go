package app

import (
	"os"
	"testing"

	"reuse_market_service/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Log = logger.Initialize("chat_test", os.TempDir())
	os.Exit(m.Run())
}
