package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway"
	"github.com/veeda241/DAC-website/internal/modules/auth/dto"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Logout(actor *entity.User)
}

type authService struct {
	gw       gateway.Gateway
	club     *state.Club
	provider session.AuthenticationProvider
	notifier *notify.Notifier
	secret   string
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(gw gateway.Gateway, club *state.Club, provider session.AuthenticationProvider, notifier *notify.Notifier, secret string, tokenTTL time.Duration) AuthService {
	if secret == "" {
		secret = "change-me"
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}

	return &authService{
		gw:       gw,
		club:     club,
		provider: provider,
		notifier: notifier,
		secret:   secret,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (s *authService) Login(_ context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, ok := s.club.UserByEmail(input.Email)
	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}

	if !s.provider.Verify(user, input.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	s.club.SetCurrentUser(user)
	s.notifier.Success(fmt.Sprintf("Welcome back, %s!", user.Name))
	return s.buildAuthResponse(&user)
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	if _, exists := s.club.UserByEmail(input.Email); exists {
		return nil, apperror.New(409, "User already exists. Please login.", nil)
	}

	candidate := entity.User{
		Name:   input.Name,
		Email:  input.Email,
		Role:   entity.RoleMember,
		Avatar: fmt.Sprintf("https://i.pravatar.cc/150?u=%d", s.now().UnixMilli()),
	}

	created := s.gw.CreateUser(ctx, candidate)
	if created == nil {
		s.notifier.Error("Failed to register user.")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.AppendUser(*created)
	s.club.SetCurrentUser(*created)
	s.club.RecordActivity(created.ID, "New Member Joined", fmt.Sprintf("%s joined the club.", created.Name))
	s.notifier.Success(fmt.Sprintf("Welcome to Data Analytics Club, %s!", created.Name))
	return s.buildAuthResponse(created)
}

// Logout ends the session and drops pending toasts. The activity feed is
// kept; it outlives the session.
func (s *authService) Logout(actor *entity.User) {
	if current := s.club.CurrentUser(); current != nil && actor != nil && current.ID == actor.ID {
		s.club.ClearCurrentUser()
	}
	s.notifier.Clear()
}

func (s *authService) buildAuthResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        user,
	}, nil
}

func (s *authService) generateToken(user *entity.User) (string, int64, error) {
	expiresAt := s.now().Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(s.now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}
