package http

import (
	"encoding/json"
	"net/http"

	"github.com/credgate/credgate/internal/gate/domain"
	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/httpx"
	"github.com/credgate/credgate/pkg/slogx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

func tokenResponse(tok domain.Token, owner string) gatesdk.TokenResponse {
	return gatesdk.TokenResponse{
		TokenID: tok.ID,
		Type:    string(tok.Type),
		AppID:   tok.AppID,
		Owner:   owner,
		Inviter: tok.Inviter,
		Locked:  tok.Locked,
	}
}

// HandleInvite godoc
//
//	@Summary		Send Invite
//	@Description	Mint one invitation token to the recipient, spending one invite from the
//	@Description	caller's budget. The caller must be a registered member of the app.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			app		path		string					true	"App ID"
//	@Param			request	body		gatesdk.InviteRequest	true	"Invite recipient"
//	@Success		201		{object}	gatesdk.TokenResponse	"minted invitation token"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not a member"
//	@Failure		409		{object}	gatesdk.ErrorResponse	"invite budget exhausted"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/invites [post].
func (h *InvitesHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	tok, err := h.InviteService.Invite(ctx, caller, r.PathValue("app"), req.Recipient)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tokenResponse(tok, req.Recipient))
}

// HandleBatch godoc
//
//	@Summary		Send Batch Invites
//	@Description	Mint one invitation token per recipient in a single atomic step. The caller's
//	@Description	budget must cover the whole batch; on any failure no tokens are minted.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			app		path		string						true	"App ID"
//	@Param			request	body		gatesdk.BatchInviteRequest	true	"Invite recipients"
//	@Success		201		{object}	gatesdk.BatchInviteResponse	"minted invitation tokens in recipient order"
//	@Failure		400		{object}	gatesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse		"caller is not a member"
//	@Failure		409		{object}	gatesdk.ErrorResponse		"invite budget exhausted"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/invites/batch [post].
func (h *InvitesHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.BatchInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	tokens, err := h.InviteService.BatchInvite(ctx, caller, r.PathValue("app"), req.Recipients)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := gatesdk.BatchInviteResponse{Tokens: make([]gatesdk.TokenResponse, 0, len(tokens))}
	for i, tok := range tokens {
		out.Tokens = append(out.Tokens, tokenResponse(tok, req.Recipients[i]))
	}
	httpx.WriteJSON(w, http.StatusCreated, out)
}

// HandleAccept godoc
//
//	@Summary		Accept Invite
//	@Description	Burn the invitation token and mint a membership token in its place. The caller
//	@Description	must hold the invitation and must not already be a registered member. On
//	@Description	success the caller's invite budget is set to the app's invites-per-new-user.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		int						true	"Invitation token ID"
//	@Success		201	{object}	gatesdk.TokenResponse	"minted membership token"
//	@Failure		400	{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	gatesdk.ErrorResponse	"caller does not hold the invitation"
//	@Failure		404	{object}	gatesdk.ErrorResponse	"token not found"
//	@Failure		409	{object}	gatesdk.ErrorResponse	"already a registered member"
//	@Security		BearerAuth
//	@Router			/v1/tokens/{id}/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
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

	membership, err := h.InviteService.AcceptInvite(ctx, caller, tokenID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tokenResponse(membership, caller))
}
