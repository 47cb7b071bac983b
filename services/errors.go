package services

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongTokenType     = errors.New("invalid token type")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrVideoNotFound      = errors.New("video not found")
	ErrVideoExists        = errors.New("video id already exists")
)
