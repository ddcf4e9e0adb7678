package http

import (
	"encoding/json"
	"net/http"

	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/httpx"
	"github.com/credgate/credgate/pkg/slogx"
)

type TokensHandler struct {
	AppService      *service.AppService
	TransferService *service.TransferService
	QueryService    *service.QueryService
}

// HandleTransfer godoc
//
//	@Summary		Transfer Token
//	@Description	Move a token the caller holds to a new owner. Invitation tokens move freely;
//	@Description	membership tokens require the app to allow transfers and the token to be
//	@Description	unlocked. Receiving a membership token registers the recipient.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Token ID"
//	@Param			request	body	gatesdk.TransferRequest	true	"New owner"
//	@Success		204		"token moved"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller does not hold the token"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"token not found"
//	@Failure		409		{object}	gatesdk.ErrorResponse	"transfers disabled or token locked"
//	@Security		BearerAuth
//	@Router			/v1/tokens/{id}/transfer [post].
func (h *TokensHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	tokenID, ok := tokenIDFromPath(w, r)
	if !ok {
		return
	}

	var req gatesdk.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.TransferService.Transfer(ctx, caller, caller, req.To, tokenID); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLock godoc
//
//	@Summary		Lock Token
//	@Description	Set or clear the transfer lock on a membership token. Only admins of the
//	@Description	token's app may lock tokens; invitation tokens cannot be locked.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int					true	"Token ID"
//	@Param			request	body	gatesdk.LockRequest	true	"Lock state"
//	@Success		204		"lock state updated"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not an app admin"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"token not found"
//	@Security		BearerAuth
//	@Router			/v1/tokens/{id}/lock [post].
func (h *TokensHandler) HandleLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	tokenID, ok := tokenIDFromPath(w, r)
	if !ok {
		return
	}

	var req gatesdk.LockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.AppService.SetTokenLocked(ctx, caller, tokenID, req.Locked); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGet godoc
//
//	@Summary		Get Token
//	@Description	Fetch a token's attributes and current holder.
//	@Tags			Tokens
//	@Produce		json
//	@Param			id	path		int						true	"Token ID"
//	@Success		200	{object}	gatesdk.TokenResponse	"token record"
//	@Failure		404	{object}	gatesdk.ErrorResponse	"token not found"
//	@Router			/v1/tokens/{id} [get].
func (h *TokensHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tokenID, ok := tokenIDFromPath(w, r)
	if !ok {
		return
	}

	tok, owner, err := h.QueryService.GetToken(ctx, tokenID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(tok, owner))
}

// HandleURI godoc
//
//	@Summary		Get Token URI
//	@Description	Resolve the metadata URI for a token, composed from the app's base URI
//	@Description	(or the service default), the token type and the token id.
//	@Tags			Tokens
//	@Produce		json
//	@Param			id	path		int							true	"Token ID"
//	@Success		200	{object}	gatesdk.TokenURIResponse	"token_id, uri"
//	@Failure		404	{object}	gatesdk.ErrorResponse		"token not found"
//	@Router			/v1/tokens/{id}/uri [get].
func (h *TokensHandler) HandleURI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tokenID, ok := tokenIDFromPath(w, r)
	if !ok {
		return
	}

	uri, err := h.QueryService.TokenURI(ctx, tokenID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gatesdk.TokenURIResponse{TokenID: tokenID, URI: uri})
}
