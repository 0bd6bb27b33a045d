package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/labiri-api/domain"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Auth implements i.Authenticator on top of a user repository and a tokenizer.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an authenticator.
func NewAuthService(ur i.UserRepo, t i.Tokenizer) (*Auth, error) {
	if ur == nil || t == nil {
		return nil, errors.New("auth service needs a user repository and a tokenizer")
	}
	return &Auth{
		userRepo:  ur,
		tokenizer: t,
	}, nil
}

// Register creates a new player account.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	if _, err := a.userRepo.ByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return fmt.Errorf("looking up username: %w", err)
	}

	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	if err := a.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, dmn.ErrUsernameConflict) {
			return ErrUsernameTaken
		}
		return err
	}

	return nil
}

// SignIn checks the credentials and issues a token carrying the user's ID and name.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
