package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/pkg/gatesdk"
)

// writeServiceError maps a service error onto the wire error taxonomy.
// Unknown errors are logged and returned as an opaque 500.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var apiErr *gatesdk.APIError

	switch {
	case errors.Is(err, service.ErrAppNotFound),
		errors.Is(err, service.ErrTokenNotFound):
		apiErr = gatesdk.NewAPIError(http.StatusNotFound, gatesdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrAppExists),
		errors.Is(err, service.ErrAlreadyMember):
		apiErr = gatesdk.NewAPIError(http.StatusConflict, gatesdk.ErrorCodeConflict, err.Error())

	case errors.Is(err, service.ErrNotAppAdmin),
		errors.Is(err, service.ErrNotAppOwner),
		errors.Is(err, service.ErrNotTokenOwner),
		errors.Is(err, service.ErrNotMember),
		errors.Is(err, service.ErrCannotRemoveOwner):
		apiErr = gatesdk.NewAPIError(http.StatusForbidden, gatesdk.ErrorCodeForbidden, err.Error())

	case errors.Is(err, service.ErrNoInvitesLeft):
		apiErr = gatesdk.NewAPIError(http.StatusConflict, gatesdk.ErrorCodeInsufficientInvites, err.Error())

	case errors.Is(err, service.ErrNotTransferrable),
		errors.Is(err, service.ErrTokenLocked):
		apiErr = gatesdk.NewAPIError(http.StatusConflict, gatesdk.ErrorCodePolicyViolation, err.Error())

	case errors.Is(err, service.ErrNilIdentity),
		errors.Is(err, service.ErrInvalidAppID),
		errors.Is(err, service.ErrInitialInvitesTooLarge),
		errors.Is(err, service.ErrInvitesPerUserTooLarge),
		errors.Is(err, service.ErrInvalidGrant),
		errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrNotInvitationToken),
		errors.Is(err, service.ErrNotMembershipToken):
		apiErr = gatesdk.NewAPIError(http.StatusBadRequest, gatesdk.ErrorCodeInvalidRequest, err.Error())

	default:
		log.Error("unhandled service error", "err", err)
		apiErr = gatesdk.ErrServerError
	}

	apiErr.WriteError(w)
}
