package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// translateError はgormのエラーをリポジトリ層のエラーに変換する。
// TranslateErrorに対応していないドライバ向けにメッセージでも判定する。
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint") {
		return ErrConflict
	}
	return err
}
