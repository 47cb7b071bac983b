package services

import (
	"gin-videoapi/models"
	"gin-videoapi/repositories"
)

type IUserService interface {
	FindAll() ([]models.User, error)
	DeleteAll() (int64, error)
}

type UserService struct {
	repository repositories.IAuthRepository
}

func NewUserService(repository repositories.IAuthRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll() ([]models.User, error) {
	return s.repository.FindAll()
}

func (s *UserService) DeleteAll() (int64, error) {
	return s.repository.DeleteAll()
}
