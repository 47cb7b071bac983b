package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "gin-videoapi"

// Log はInitが呼ばれるまで何も出力しない
var Log = zap.NewNop()

// Init はグローバルロガーを作り直す。
// 本番環境かログファイル指定ありならJSON、それ以外は開発用のコンソール形式で出力する。
func Init(level string, logFile string, production bool) error {
	config := zap.NewDevelopmentConfig()
	if production || logFile != "" {
		config = zap.NewProductionConfig()
		config.InitialFields = map[string]interface{}{"service": serviceName}
	}

	config.OutputPaths = []string{"stdout"}
	if logFile != "" {
		config.OutputPaths = append(config.OutputPaths, logFile)
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	l, err := config.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// 不明なレベルはinfoとして扱う
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func Sync() error {
	return Log.Sync()
}
