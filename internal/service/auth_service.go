package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/acme-dashboard/internal/actions"
	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/middleware"
	"github.com/mmynk/acme-dashboard/internal/models"
	"github.com/mmynk/acme-dashboard/internal/storage"
)

// AuthService implements sign-in for API clients.
type AuthService struct {
	actions *actions.Actions
	users   storage.UserStore
	logger  *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(a *actions.Actions, users storage.UserStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		actions: a,
		users:   users,
		logger:  logger,
	}
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	res, err := s.actions.Authenticate(ctx, url.Values{
		actions.FieldEmail:    {req.Msg.Email},
		actions.FieldPassword: {req.Msg.Password},
	})
	if err != nil {
		s.logger.Error("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New(actions.MsgSomethingWent))
	}
	if res.Session == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New(res.Message))
	}

	return connect.NewResponse(&LoginResponse{
		Token:      res.Session.Token,
		ExpiresAt:  res.Session.ExpiresAt.UTC().Format(time.RFC3339),
		User:       toUserView(res.Session.User),
		RedirectTo: res.RedirectTo,
	}), nil
}

// Logout is a no-op: sessions are stateless tokens the client discards.
func (s *AuthService) Logout(ctx context.Context, _ *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	s.logger.Info("Logout request", "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&LogoutResponse{}), nil
}

// GetCurrentUser returns the signed-in user.
func (s *AuthService) GetCurrentUser(ctx context.Context, _ *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load current user", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("user not found"))
	}

	return connect.NewResponse(&GetCurrentUserResponse{User: toUserView(user)}), nil
}

func toUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: time.Unix(u.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
