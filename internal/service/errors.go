package service

import (
	"errors"

	"connectrpc.com/connect"

	ierr "github.com/mmynk/acme-dashboard/internal/errors"
)

// toConnectError maps a marked error to a Connect error carrying only the
// user-facing hint.
func toConnectError(err error) *connect.Error {
	code := connect.CodeInternal
	switch {
	case ierr.IsNotFound(err):
		code = connect.CodeNotFound
	case ierr.IsValidation(err):
		code = connect.CodeInvalidArgument
	case ierr.IsUnauthenticated(err):
		code = connect.CodeUnauthenticated
	}
	return connect.NewError(code, errors.New(ierr.Hint(err, "internal error")))
}
