package services

import (
	"context"
	"fmt"
	"sync"

	"firstcab/internal/config"
	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/utils"
	"firstcab/pkg/logger"
	"firstcab/pkg/oauth"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthEventType string

const (
	AuthEventSignIn  AuthEventType = "sign_in"
	AuthEventSignOut AuthEventType = "sign_out"
)

// AuthEvent is published on every sign-in and sign-out transition.
type AuthEvent struct {
	Type AuthEventType
	User *models.User
}

type AuthResult struct {
	User   *models.User     `json:"user"`
	Tokens *utils.TokenPair `json:"tokens"`
}

type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GoogleLogin(ctx context.Context, accessToken string) (*AuthResult, error)
	Me(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error

	// Subscribe registers a listener for sign-in/sign-out events. Events
	// are dropped, not queued, when the listener falls behind.
	Subscribe() <-chan AuthEvent
}

type authService struct {
	userRepo      interfaces.UserRepository
	oauthProvider oauth.Provider
	config        *config.SecurityConfig
	logger        *logger.Logger

	mu          sync.Mutex
	subscribers []chan AuthEvent
}

func NewAuthService(userRepo interfaces.UserRepository, oauthProvider oauth.Provider, config *config.SecurityConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepo:      userRepo,
		oauthProvider: oauthProvider,
		config:        config,
		logger:        logger,
	}
}

func (s *authService) Register(ctx context.Context, email, password, displayName string) (*AuthResult, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.ErrUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:       email,
		DisplayName: displayName,
		Password:    string(hash),
		Role:        models.UserRoleCustomer,
		Provider:    models.AuthProviderEmail,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, utils.PersistenceError(err)
	}

	s.logger.LogUserAction(user.ID, "register", map[string]interface{}{
		"provider": models.AuthProviderEmail,
	})

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", utils.ErrUnauthenticated, utils.ErrInvalidCredentials)
		}
		return nil, utils.PersistenceError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrUnauthenticated, utils.ErrInvalidCredentials)
	}

	return s.issueTokens(ctx, user)
}

// GoogleLogin exchanges a Google access token for a session, creating the
// user document on first sign-in.
func (s *authService) GoogleLogin(ctx context.Context, accessToken string) (*AuthResult, error) {
	info, err := s.oauthProvider.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: google token rejected", utils.ErrUnauthenticated)
	}

	user, err := s.userRepo.GetBySocialID(ctx, models.AuthProviderGoogle, info.ID)
	if err != nil {
		if !utils.IsNotFound(err) {
			return nil, utils.PersistenceError(err)
		}

		user = &models.User{
			Email:       info.Email,
			DisplayName: info.Name,
			PhotoURL:    info.Picture,
			Role:        models.UserRoleCustomer,
			Provider:    models.AuthProviderGoogle,
			SocialID:    info.ID,
		}

		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, utils.PersistenceError(err)
		}

		s.logger.LogUserAction(user.ID, "register", map[string]interface{}{
			"provider": models.AuthProviderGoogle,
		})
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Me(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil && !utils.IsNotFound(err) {
		return utils.PersistenceError(err)
	}

	s.publish(AuthEvent{Type: AuthEventSignOut, User: user})

	return nil
}

func (s *authService) Subscribe() <-chan AuthEvent {
	ch := make(chan AuthEvent, 16)

	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()

	return ch
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*AuthResult, error) {
	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.config.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.WithError(err).WithUserID(user.ID).Warn("Failed to record last login")
	}

	s.publish(AuthEvent{Type: AuthEventSignIn, User: user})

	return &AuthResult{User: user, Tokens: tokens}, nil
}

func (s *authService) publish(event AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
