package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	userDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/user"
	"github.com/ceramiqa/quality-management/internal/core/events"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Repository is the account store the auth service depends on. Lookups only
// return active accounts; deactivation is the soft end of an account's life.
type Repository interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	EmailExists(email string) (bool, error)
	Create(account *userDatamodel.User) error
}

type Service struct {
	repo       Repository
	tokenGen   *JWTTokenGenerator
	bus        *events.EventBus
	logger     *slog.Logger
	bcryptCost int
}

func NewService(repo Repository, tokenGen *JWTTokenGenerator, bus *events.EventBus, logger *slog.Logger, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokenGen:   tokenGen,
		bus:        bus,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// sanitize converts a stored account into the session user, dropping the
// password hash and deriving the permission set from the role.
func sanitize(account *userDatamodel.User) *User {
	return &User{
		ID:          account.ID,
		Email:       account.Email,
		FullName:    account.FullName,
		Department:  account.Department,
		Role:        account.Role,
		Permissions: PermissionsForRole(account.Role),
	}
}

// Authenticate verifies credentials and returns the sanitized user plus a
// token pair. Any failure collapses to ErrInvalidCredentials so the response
// does not leak whether the email exists.
func (s *Service) Authenticate(dto LoginDTO) (*User, AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return nil, AuthTokens{}, err
	}

	account, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, AuthTokens{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(account.PasswordHash, dto.Password); err != nil {
		return nil, AuthTokens{}, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(account)
	if err != nil {
		return nil, AuthTokens{}, err
	}

	s.logger.Info("user authenticated", "user_id", account.ID, "role", account.Role)

	return sanitize(account), tokens, nil
}

// Register creates a new account. The password is hashed before storage and
// the role defaults to operator when unspecified.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check existing email", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	role := dto.Role
	if role == "" {
		role = RoleOperator
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	account := &userDatamodel.User{
		Email:        dto.Email,
		FullName:     dto.FullName,
		PasswordHash: hash,
		Department:   dto.Department,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(account); err != nil {
		s.logger.Error("failed to create account", "error", err, "email", dto.Email)
		return nil, internal.NewInternalError("failed to create account", err)
	}

	s.logger.Info("account registered", "user_id", account.ID, "role", role)
	s.publish("user.registered", map[string]interface{}{
		"user_id": account.ID,
		"email":   account.Email,
		"role":    role,
	})

	return sanitize(account), nil
}

// RefreshTokens validates a refresh token and issues a fresh pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGen.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	// Re-read the account so a deactivated user cannot refresh back in.
	account, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return AuthTokens{}, ErrUserInactive
	}

	return s.issueTokens(account)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateAccessToken(tokenString)
}

// GetUserWithPermissions loads the sanitized user for a validated token. The
// permission set is derived fresh from the stored role, so role changes apply
// on the next request.
func (s *Service) GetUserWithPermissions(userID int64) (*User, error) {
	account, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return sanitize(account), nil
}

func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password, s.bcryptCost)
}

func (s *Service) issueTokens(account *userDatamodel.User) (AuthTokens, error) {
	accessToken, err := s.tokenGen.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGen.GenerateRefreshToken(account.ID, account.Email, account.Role)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) publish(eventType string, data map[string]interface{}) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), events.BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
}
