package usecase

import (
	"context"
	"errors"
	"strings"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo persistent.UserRepository
	tokens   TokenIssuer
	logger   *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, tokens TokenIssuer, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	username, err := requireText("Username", in.Username)
	if err != nil {
		return nil, "", err
	}
	email, err := requireText("Email", in.Email)
	if err != nil {
		return nil, "", err
	}
	fullName, err := requireText("Full name", in.FullName)
	if err != nil {
		return nil, "", err
	}
	if len(in.Password) < minPasswordLength {
		return nil, "", apperr.InvalidArgument("Password must be at least %d characters", minPasswordLength)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to process registration")
	}

	user := &entity.User{
		Username:     strings.ToLower(username),
		Email:        strings.ToLower(email),
		FullName:     fullName,
		PasswordHash: string(hashedPassword),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, "", apperr.Conflict("User with email or username already exists")
		}
		return nil, "", apperr.Internal(err, "failed to create user")
	}

	token, err := uc.tokens.GenerateToken(user.ID.String(), user.Username)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to generate token")
	}

	uc.logger.Info("Registered user %s", user.ID)
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperr.InvalidArgument("Email and password are required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", apperr.Unauthorized("Invalid credentials")
		}
		return nil, "", apperr.Internal(err, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := uc.tokens.GenerateToken(user.ID.String(), user.Username)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to generate token")
	}
	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	id, err := validateUserID("user", entity.UserID(userID))
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user")
	}
	return user, nil
}
