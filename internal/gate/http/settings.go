package http

import (
	"encoding/json"
	"net/http"

	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/slogx"
)

// SettingsHandler covers the admin-gated per-app policy knobs.
type SettingsHandler struct {
	AppService *service.AppService
}

// HandleSetTransferrable godoc
//
//	@Summary		Set Transferrable
//	@Description	Toggle whether membership tokens of this app may change hands. Admin-only.
//	@Tags			Settings
//	@Accept			json
//	@Param			app		path	string							true	"App ID"
//	@Param			request	body	gatesdk.SetTransferrableRequest	true	"Transfer policy"
//	@Success		204		"policy updated"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not an app admin"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"app not found"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/transferrable [post].
func (h *SettingsHandler) HandleSetTransferrable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.SetTransferrableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.AppService.SetTransferrable(ctx, caller, r.PathValue("app"), req.Transferrable); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetInvitesPerUser godoc
//
//	@Summary		Set Invites Per New User
//	@Description	Change the invite budget handed to each future accepted invitee. Does not
//	@Description	affect budgets already granted. Admin-only.
//	@Tags			Settings
//	@Accept			json
//	@Param			app		path	string								true	"App ID"
//	@Param			request	body	gatesdk.SetInvitesPerUserRequest	true	"New per-user budget"
//	@Success		204		"policy updated"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not an app admin"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"app not found"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/invites-per-user [post].
func (h *SettingsHandler) HandleSetInvitesPerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.SetInvitesPerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.AppService.SetInvitesPerNewUser(ctx, caller, r.PathValue("app"), req.InvitesPerNewUser); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGrantInvites godoc
//
//	@Summary		Grant Invites
//	@Description	Add to an identity's invite budget for this app. Admin-only.
//	@Tags			Settings
//	@Accept			json
//	@Param			app		path	string						true	"App ID"
//	@Param			request	body	gatesdk.GrantInvitesRequest	true	"Identity and count"
//	@Success		204		"budget increased"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not an app admin"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"app not found"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/grants [post].
func (h *SettingsHandler) HandleGrantInvites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.GrantInvitesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.AppService.GrantInvites(ctx, caller, r.PathValue("app"), req.Identity, req.Count); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetBaseURI godoc
//
//	@Summary		Set Base URI
//	@Description	Set the base URI used to compose token metadata URIs for this app. Admin-only.
//	@Tags			Settings
//	@Accept			json
//	@Param			app		path	string					true	"App ID"
//	@Param			request	body	gatesdk.SetBaseURIRequest	true	"Base URI"
//	@Success		204		"base URI updated"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not an app admin"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"app not found"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/base-uri [post].
func (h *SettingsHandler) HandleSetBaseURI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.SetBaseURIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.AppService.SetBaseURI(ctx, caller, r.PathValue("app"), req.BaseURI); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
