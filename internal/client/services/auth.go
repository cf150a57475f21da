// Package services contains the application services of the BookArc client:
// authentication against the identity provider and the list membership
// sub-client.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/session"
	"github.com/dmitrijs2005/bookarc/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

const (
	registeredMessage  = "Registration successful! Please check your email for verification code."
	reloginMessage     = "Not authenticated - please log in again"
	changePasswordPath = "/auth/change-password"
)

// AuthService defines the authentication operations used by the CLI.
//
// Contract:
//   - Register/ConfirmSignUp: create and verify an account; never signs in.
//   - Login: exchange credentials for tokens and persist the session.
//   - Logout: drop the session; never fails.
//   - ResendVerificationCode/ForgotPassword/ResetPassword: side effects at
//     the identity provider only.
//   - ChangePassword: goes through the backend and needs a full session.
//   - Accessors read the session store on every call.
//
// Identity failures are *AuthError. Backend failures are *client.Error.
type AuthService interface {
	Register(ctx context.Context, data RegisterData) (*RegisterResult, error)
	ConfirmSignUp(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(ctx context.Context)
	ResendVerificationCode(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	CurrentSession(ctx context.Context) (*session.Session, error)
	IsAuthenticated(ctx context.Context) bool
	IDToken(ctx context.Context) (string, error)
	AccessToken(ctx context.Context) (string, error)
}

type RegisterData struct {
	Email       string
	Password    string
	Username    string
	DisplayName string
}

type RegisterResult struct {
	Success       bool
	Message       string
	UserConfirmed bool
	UserSub       string
}

// IdentityClaims are the ID token claims the client reads. The signature
// is not verified here; the backend does that on every call.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name"`
	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
}

// DecodeIDToken reads the claims of a JWT-shaped token without verifying
// it.
func DecodeIDToken(token string) (*IdentityClaims, error) {
	var claims IdentityClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("decode id token: %w", err)
	}
	return &claims, nil
}

type authService struct {
	identity *IdentityClient
	store    session.Store
	backend  client.Requester
	log      logging.Logger
}

// NewAuthService wires the identity provider client, the session store and
// the backend request primitive used for password changes.
func NewAuthService(identity *IdentityClient, store session.Store, backend client.Requester, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{identity: identity, store: store, backend: backend, log: log.With("component", "auth")}
}

func (a *authService) Register(ctx context.Context, data RegisterData) (*RegisterResult, error) {
	out, err := a.identity.SignUp(ctx, data.Email, data.Password, data.Username, data.DisplayName)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{
		Success:       true,
		Message:       registeredMessage,
		UserConfirmed: out.UserConfirmed,
		UserSub:       out.UserSub,
	}, nil
}

func (a *authService) ConfirmSignUp(ctx context.Context, email, code string) error {
	return a.identity.ConfirmSignUp(ctx, email, code)
}

func (a *authService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	tokens, err := a.identity.InitiateAuth(ctx, email, password)
	if err != nil {
		return nil, err
	}

	claims, err := DecodeIDToken(tokens.IDToken)
	if err != nil {
		return nil, &AuthError{Action: "InitiateAuth", Message: err.Error()}
	}

	s := &session.Session{
		Username:     claims.Name,
		Email:        claims.Email,
		IDToken:      tokens.IDToken,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if err := a.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	a.log.Info(ctx, "signed in", "username", s.Username)
	return s, nil
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
		return
	}
	a.log.Info(ctx, "signed out")
}

func (a *authService) ResendVerificationCode(ctx context.Context, email string) error {
	return a.identity.ResendConfirmationCode(ctx, email)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	return a.identity.ForgotPassword(ctx, email)
}

func (a *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return a.identity.ConfirmForgotPassword(ctx, email, code, newPassword)
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
	AccessToken string `json:"accessToken"`
}

// ChangePassword reports a wrong current password as
// client.KindUnauthenticated, a policy violation as client.KindValidation
// and throttling as client.KindRateLimited.
func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	s, err := a.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if s == nil || s.IDToken == "" || s.AccessToken == "" {
		return &AuthError{Action: "ChangePassword", Message: reloginMessage}
	}

	req := client.Request{
		Method: http.MethodPost,
		Path:   changePasswordPath,
		Body: changePasswordRequest{
			OldPassword: oldPassword,
			NewPassword: newPassword,
			AccessToken: s.AccessToken,
		},
	}
	if err := a.backend.Do(ctx, req, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (a *authService) CurrentSession(ctx context.Context) (*session.Session, error) {
	return a.store.Read(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	s, err := a.store.Read(ctx)
	return err == nil && s != nil
}

func (a *authService) IDToken(ctx context.Context) (string, error) {
	return session.Tokens{Store: a.store}.IDToken(ctx)
}

func (a *authService) AccessToken(ctx context.Context) (string, error) {
	s, err := a.store.Read(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.AccessToken, nil
}

// IsAuthError reports whether err came from the identity provider or a
// local session check.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

var _ client.TokenSource = (AuthService)(nil)
