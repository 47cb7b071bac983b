package repositories

import (
	"gin-videoapi/models"

	"gorm.io/gorm"
)

type ITokenRepository interface {
	Revoke(jti string) error
	IsRevoked(jti string) (bool, error)
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

// Revoke は同じjtiが既に登録されていればErrConflictを返す
func (r *TokenRepository) Revoke(jti string) error {
	revokedToken := models.RevokedToken{Jti: jti}
	result := r.db.Create(&revokedToken)
	if result.Error != nil {
		return translateError(result.Error)
	}
	return nil
}

// IsRevoked は未登録のjtiをエラーではなくfalseとして返す
func (r *TokenRepository) IsRevoked(jti string) (bool, error) {
	var revokedTokens []models.RevokedToken
	result := r.db.Where("jti = ?", jti).Limit(1).Find(&revokedTokens)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
