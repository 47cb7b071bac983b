package infra

import (
	"github.com/joho/godotenv"
)

// Initialize は.envを読み込む。ファイルがなければそのエラーを返す。
func Initialize() error {
	return godotenv.Load()
}
