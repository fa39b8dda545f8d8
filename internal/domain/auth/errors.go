package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
	ErrUserNotFound         = errors.New("user not found")
	ErrOAuthEmailUnverified = errors.New("google account email is not verified")
)
