// Package spectate runs a battle on a real-time ticker and streams JSON
// snapshots of it to read-only websocket spectators.
package spectate

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide server logger. Battle events stay in the
// BattleLog; Log covers the serving side (connections, broadcast errors,
// lifecycle).
var Log *zap.SugaredLogger

// InitLogger routes zap output to a rolling file: 10MB per file, 3 backups,
// 7 days retention.
func InitLogger(filePath string) error {
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.InfoLevel)
	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// SyncLogger flushes any buffered log output.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
