package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/infrastructure/auth"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrRegistrationClosed  = errors.New("registration is disabled")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidRegistration = errors.New("invalid registration")
)

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"

	minPasswordLength = 8
)

type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      entities.User `json:"user"`
}

type RegisterInput struct {
	Username string
	Password string
	FullName string
}

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	SeedAdmin(ctx context.Context, username, password string) error
}

type AuthUseCase struct {
	users             interfaces.IUserRepository
	tokens            interfaces.ITokenIssuer
	metrics           interfaces.IMetricsRecorder
	allowRegistration bool
	now               func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer, metrics interfaces.IMetricsRecorder, allowRegistration bool) *AuthUseCase {
	return &AuthUseCase{
		users:             users,
		tokens:            tokens,
		metrics:           recorderOrNoop(metrics),
		allowRegistration: allowRegistration,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// Login checks the password against the stored bcrypt hash and issues a
// session token. Unknown users, inactive users and wrong passwords all
// return ErrInvalidCredentials.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		u.metrics.RecordAuthAttempt(false)
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" || !user.IsActive || !auth.CheckPassword(user.PasswordHash, password) {
		u.metrics.RecordAuthAttempt(false)
		log.Info("[auth][usecase] login rejected", zap.String("username", username))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return LoginResult{}, err
	}
	u.metrics.RecordAuthAttempt(true)
	log.Info("[auth][usecase] login success", zap.String("user_id", user.ID))
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	if !u.allowRegistration {
		return entities.User{}, ErrRegistrationClosed
	}
	user, err := u.createUser(ctx, in, RoleOperator)
	if err != nil {
		return entities.User{}, err
	}
	logger.FromContext(ctx).Info("[auth][usecase] user registered", zap.String("user_id", user.ID))
	return user, nil
}

// SeedAdmin creates the first admin account when the user table is empty.
// It does nothing once any user exists or when no password is configured.
func (u *AuthUseCase) SeedAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return nil
	}
	count, err := u.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	user, err := u.createUser(ctx, RegisterInput{Username: username, Password: password, FullName: "Administrator"}, RoleAdmin)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("[auth][usecase] admin user seeded", zap.String("username", user.Username))
	return nil
}

func (u *AuthUseCase) createUser(ctx context.Context, in RegisterInput, role string) (entities.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" {
		return entities.User{}, invalid(ErrInvalidRegistration, "username is required")
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, invalid(ErrInvalidRegistration, "password must be at least %d characters", minPasswordLength)
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return entities.User{}, err
	}
	now := u.now()
	return u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
