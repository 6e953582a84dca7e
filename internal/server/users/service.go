package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aivanovs/taskkeeper/internal/common"
	"github.com/aivanovs/taskkeeper/internal/server/auth"
	"github.com/aivanovs/taskkeeper/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register persists a new user with a bcrypt hash of the password. The
// plaintext password never leaves this function.
func (s *Service) Register(ctx context.Context, username string, password string) (*User, error) {

	if username == "" || password == "" {
		return nil, common.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		UserName:     username,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed session token. An
// unknown username and a wrong password both return common.ErrUnauthorized
// so the response does not reveal which field was wrong. The hash comparison
// is constant-time inside bcrypt.
func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {

	if username == "" || password == "" {
		return "", common.ErrValidation
	}

	user, err := s.repo.GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}
