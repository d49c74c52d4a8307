package logger

import "go.uber.org/zap"

var Log *zap.Logger

func Init() {
	Log = zap.Must(zap.NewProduction())
}

// InitNop installs a no-op logger for tests that exercise packages
// reading the global.
func InitNop() {
	Log = zap.NewNop()
}
