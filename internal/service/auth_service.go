package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/config"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrPasswordNotSet  = errors.New("no password has been set")
)

// AuthService implements the three-state site gate: Unset (no password row,
// open access), Locked, Unlocked. The session cookie carries a signed,
// expiring JWT — never the password hash itself. Tokens embed a fingerprint
// of the current hash so a password change invalidates every open session.
type AuthService interface {
	PasswordSet(ctx context.Context) (bool, error)
	// Login verifies the password and mints a session token. On an open
	// site the first login sets the password (passwordWasSet=true).
	Login(ctx context.Context, password string) (token string, passwordWasSet bool, err error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (token string, err error)
	// VerifySession reports whether the cookie value is a currently valid
	// session token. Always true while the site is open.
	VerifySession(ctx context.Context, token string) bool
}

type authService struct {
	repo repository.SiteAuthRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.SiteAuthRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) PasswordSet(ctx context.Context) (bool, error) {
	_, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *authService) Login(ctx context.Context, password string) (string, bool, error) {
	auth, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Unset → Unlocked: the first login assigns the site password.
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), 12)
		if hashErr != nil {
			return "", false, hashErr
		}
		if saveErr := s.repo.SaveHash(ctx, string(hash)); saveErr != nil {
			return "", false, saveErr
		}
		token, mintErr := s.mintToken(string(hash))
		return token, true, mintErr
	}
	if err != nil {
		return "", false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(password)) != nil {
		return "", false, ErrInvalidPassword
	}
	token, err := s.mintToken(auth.PasswordHash)
	return token, false, err
}

func (s *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	auth, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrPasswordNotSet
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(currentPassword)) != nil {
		return "", ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return "", err
	}
	if err := s.repo.SaveHash(ctx, string(hash)); err != nil {
		return "", err
	}
	// Rotate the caller's session; every other session dies with the old
	// fingerprint.
	return s.mintToken(string(hash))
}

func (s *authService) VerifySession(ctx context.Context, token string) bool {
	auth, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true // open site
	}
	if err != nil {
		return false
	}
	if token == "" {
		return false
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	fp, ok := claims["pwd_fp"].(string)
	return ok && fp == hashFingerprint(auth.PasswordHash)
}

func (s *authService) mintToken(passwordHash string) (string, error) {
	ttl := time.Duration(s.cfg.SessionTTLHours) * time.Hour
	claims := jwt.MapClaims{
		"pwd_fp": hashFingerprint(passwordHash),
		"exp":    time.Now().Add(ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}

func hashFingerprint(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(sum[:8])
}
