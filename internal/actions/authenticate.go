package actions

import (
	"context"
	"errors"
	"net/url"

	"github.com/mmynk/acme-dashboard/internal/auth"
	"github.com/mmynk/acme-dashboard/internal/metrics"
)

// Authenticate signs in with the email and password fields of form.
// Rejected credentials and other provider failures become a message;
// errors that are not authentication errors are returned.
func (a *Actions) Authenticate(ctx context.Context, form url.Values) (AuthResult, error) {
	session, err := a.provider.SignIn(ctx, auth.ProviderCredentials, credentialsFrom(form))
	if err != nil {
		var authErr *auth.Error
		if !errors.As(err, &authErr) {
			a.metrics.ObserveAction("authenticate", metrics.OutcomeError)
			return AuthResult{}, err
		}

		a.metrics.ObserveAction("authenticate", metrics.OutcomeRejected)
		a.logger.Warn("Sign-in failed", "type", authErr.Type, "error", authErr.Err)
		if authErr.Type == auth.CredentialsSignin {
			return AuthResult{Message: MsgInvalidCreds}, nil
		}
		return AuthResult{Message: MsgSomethingWent}, nil
	}

	a.metrics.ObserveAction("authenticate", metrics.OutcomeSuccess)
	a.logger.Info("Signed in", "user_id", session.User.ID)
	return AuthResult{Session: session, RedirectTo: DashboardPath}, nil
}
