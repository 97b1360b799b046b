package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/acme-dashboard/internal/models"
)

// ProviderCredentials is the only sign-in method the dashboard offers.
const ProviderCredentials = "credentials"

// ErrorType discriminates authentication failures.
type ErrorType string

const (
	// CredentialsSignin means the submitted credentials were rejected.
	CredentialsSignin ErrorType = "CredentialsSignin"
	// InvalidProvider means the requested sign-in method does not exist.
	InvalidProvider ErrorType = "InvalidProvider"
	// Configuration means the provider is not set up to issue sessions.
	Configuration ErrorType = "Configuration"
)

// Error is a classified authentication failure. Failures that are not
// authentication failures (a storage outage, say) are never wrapped in Error.
type Error struct {
	Type ErrorType
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsType reports whether err is an *Error of type t.
func IsType(err error, t ErrorType) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Type == t
}

// Credentials are the submitted login fields.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Session is an established login.
type Session struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// Provider signs users in.
type Provider interface {
	SignIn(ctx context.Context, provider string, creds Credentials) (*Session, error)
}

// CredentialsProvider signs users in with email and password.
type CredentialsProvider struct {
	authenticator Authenticator
	tokens        *JWTManager
	validate      *validator.Validate
}

// NewCredentialsProvider builds the email/password provider.
func NewCredentialsProvider(authenticator Authenticator, tokens *JWTManager) *CredentialsProvider {
	return &CredentialsProvider{
		authenticator: authenticator,
		tokens:        tokens,
		validate:      validator.New(),
	}
}

// SignIn checks creds and issues a session token.
func (p *CredentialsProvider) SignIn(ctx context.Context, provider string, creds Credentials) (*Session, error) {
	if provider != ProviderCredentials {
		return nil, &Error{Type: InvalidProvider, Err: fmt.Errorf("unknown provider %q", provider)}
	}
	if p.authenticator == nil || p.tokens == nil {
		return nil, &Error{Type: Configuration, Err: errors.New("credentials provider is not configured")}
	}

	if err := p.validate.Struct(creds); err != nil {
		return nil, &Error{Type: CredentialsSignin, Err: err}
	}

	user, err := p.authenticator.Authenticate(ctx, creds.Email, creds.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return nil, &Error{Type: CredentialsSignin, Err: err}
	}
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := p.tokens.Generate(user)
	if err != nil {
		return nil, &Error{Type: Configuration, Err: err}
	}

	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
