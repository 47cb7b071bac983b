package repositories

import (
	"fmt"
	"gin-videoapi/models"

	"gorm.io/gorm"
)

type IAuthRepository interface {
	CreateUser(user models.User) error
	FindUser(username string) (*models.User, error)
	FindAll() ([]models.User, error)
	DeleteAll() (int64, error)
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(user models.User) error {
	result := r.db.Create(&user)
	if result.Error != nil {
		return translateError(result.Error)
	}
	return nil
}

func (r *AuthRepository) FindUser(username string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "username = ?", username)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	return &user, nil
}

func (r *AuthRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := r.db.Order("id").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("find users: %w", result.Error)
	}
	return users, nil
}

func (r *AuthRepository) DeleteAll() (int64, error) {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete users: %w", result.Error)
	}
	return result.RowsAffected, nil
}
