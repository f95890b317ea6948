package service

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AdminCredentials is the single configured admin account. PasswordHash, when
// set, is a bcrypt hash and takes precedence over Password.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
	Token        string
}

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Authorize(token string) error
}

type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// authService exchanges the static credential pair for the static admin
// token. There are no sessions and the token never expires.
type authService struct {
	creds AdminCredentials
}

func NewAuthService(creds AdminCredentials) AuthService {
	return &authService{creds: creds}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passOK := s.checkPassword(password)
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	return &LoginResponse{OK: true, Token: s.creds.Token}, nil
}

func (s *authService) Authorize(token string) error {
	if token == "" || s.creds.Token == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.creds.Token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

func (s *authService) checkPassword(password string) bool {
	if s.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	}
	if s.creds.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
}
