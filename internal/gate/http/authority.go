package http

import (
	"encoding/json"
	"net/http"

	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/slogx"
)

// AuthorityHandler covers the owner-only operations: ownership transfer
// and admin set management.
type AuthorityHandler struct {
	AuthorityService *service.AuthorityService
}

// HandleTransferOwnership godoc
//
//	@Summary		Transfer Ownership
//	@Description	Hand the app to a new owner. The new owner joins the admin set; the old
//	@Description	owner keeps admin rights but loses owner-only operations. Owner-only.
//	@Tags			Authority
//	@Accept			json
//	@Param			app		path	string							true	"App ID"
//	@Param			request	body	gatesdk.TransferOwnershipRequest	true	"New owner"
//	@Success		204		"ownership transferred"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not the app owner"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"app not found"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/ownership [post].
func (h *AuthorityHandler) HandleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.TransferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.AuthorityService.TransferOwnership(ctx, caller, r.PathValue("app"), req.NewOwner); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddAdmin godoc
//
//	@Summary		Add Admin
//	@Description	Add an identity to the app's admin set. Owner-only.
//	@Tags			Authority
//	@Accept			json
//	@Param			app		path	string				true	"App ID"
//	@Param			request	body	gatesdk.AdminRequest	true	"Identity to add"
//	@Success		204		"admin added"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	gatesdk.ErrorResponse	"caller is not the app owner"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"app not found"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/admins [post].
func (h *AuthorityHandler) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.AdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if err := h.AuthorityService.AddAdmin(ctx, caller, r.PathValue("app"), req.Identity); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemoveAdmin godoc
//
//	@Summary		Remove Admin
//	@Description	Remove an identity from the app's admin set. The owner cannot be removed.
//	@Description	Owner-only.
//	@Tags			Authority
//	@Param			app			path	string	true	"App ID"
//	@Param			identity	path	string	true	"Identity to remove"
//	@Success		204			"admin removed"
//	@Failure		401			{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	gatesdk.ErrorResponse	"caller is not the app owner"
//	@Failure		404			{object}	gatesdk.ErrorResponse	"app not found"
//	@Security		BearerAuth
//	@Router			/v1/apps/{app}/admins/{identity} [delete].
func (h *AuthorityHandler) HandleRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	if err := h.AuthorityService.RemoveAdmin(ctx, caller, r.PathValue("app"), r.PathValue("identity")); err != nil {
		writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
