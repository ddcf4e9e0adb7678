package http

import (
	"net/http"
	"strconv"

	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/httpx"
)

// callerIdentity extracts the authenticated identity set by the authn
// middleware. Writes a 401 and returns false when it is missing.
func callerIdentity(w http.ResponseWriter, r *http.Request) (string, bool) {
	identity := httpx.IdentityFromContext(r.Context())
	if identity == "" {
		gatesdk.ErrAuthenticationRequired.WriteError(w)
		return "", false
	}
	return identity, true
}

// tokenIDFromPath parses the {id} path segment as a token id. Writes a
// 400 and returns false when it is malformed.
func tokenIDFromPath(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		gatesdk.NewAPIError(http.StatusBadRequest, gatesdk.ErrorCodeInvalidRequest,
			"token id must be a positive integer").WriteError(w)
		return 0, false
	}
	return id, true
}
