package services

import (
	"errors"
	"fmt"
	"gin-videoapi/constants"
	"gin-videoapi/models"
	"gin-videoapi/repositories"
)

type IAuthService interface {
	Signup(username string, password string) (*TokenPair, error)
	Login(username string, password string) (*TokenPair, error)
	Refresh(claims *TokenClaims) (string, error)
	Logout(claims *TokenClaims) error
	VerifyToken(tokenString string, tokenType string) (*TokenClaims, error)
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
	secret          []byte
	bcryptCost      int
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository, secret []byte, bcryptCost int) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		secret:          secret,
		bcryptCost:      bcryptCost,
	}
}

// Signup はユーザーを作成し、そのままログイン状態のトークンを返す。
// 事前チェックは高速化のためで、最終的な重複判定はDBの一意制約が行う。
func (s *AuthService) Signup(username string, password string) (*TokenPair, error) {
	_, err := s.repository.FindUser(username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := s.repository.CreateUser(user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.createTokenPair(username, false)
}

func (s *AuthService) Login(username string, password string) (*TokenPair, error) {
	foundUser, err := s.repository.FindUser(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !CheckPassword(foundUser.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return s.createTokenPair(foundUser.Username, true)
}

// Refresh はリフレッシュトークンを失効させずに新しいアクセストークンだけを発行する
func (s *AuthService) Refresh(claims *TokenClaims) (string, error) {
	return CreateToken(s.secret, claims.Subject, constants.TokenTypeAccess, false)
}

func (s *AuthService) Logout(claims *TokenClaims) error {
	if err := s.tokenRepository.Revoke(claims.ID); err != nil {
		return fmt.Errorf("revoke %s token: %w", claims.Type, err)
	}
	return nil
}

func (s *AuthService) VerifyToken(tokenString string, tokenType string) (*TokenClaims, error) {
	claims, err := ParseToken(s.secret, tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != tokenType {
		return nil, ErrWrongTokenType
	}

	isRevoked, err := s.tokenRepository.IsRevoked(claims.ID)
	if err != nil {
		return nil, err
	}
	if isRevoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (s *AuthService) createTokenPair(username string, fresh bool) (*TokenPair, error) {
	accessToken, err := CreateToken(s.secret, username, constants.TokenTypeAccess, fresh)
	if err != nil {
		return nil, err
	}
	refreshToken, err := CreateToken(s.secret, username, constants.TokenTypeRefresh, false)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
