package http

import (
	"encoding/json"
	"net/http"

	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/httpx"
	"github.com/credgate/credgate/pkg/slogx"
)

type AppsHandler struct {
	AppService *service.AppService
}

// HandleCreate godoc
//
//	@Summary		Create App
//	@Description	Register a new app (tenant) owned by the caller. The creator becomes owner, admin
//	@Description	and first registered member, and receives the initial invite budget.
//	@Tags			Apps
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gatesdk.CreateAppRequest	true	"App definition"
//	@Success		201		{object}	gatesdk.AppResponse			"created app record"
//	@Failure		400		{object}	gatesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	gatesdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	gatesdk.ErrorResponse		"app id already taken"
//	@Security		BearerAuth
//	@Router			/v1/apps [post].
func (h *AppsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req gatesdk.CreateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gatesdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	app, err := h.AppService.CreateApp(ctx, caller, req.AppID, req.InitialInvites, req.InvitesPerNewUser)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, gatesdk.AppResponse{
		AppID:             app.ID,
		Owner:             app.Owner,
		InvitesPerNewUser: app.InvitesPerNewUser,
		Transferrable:     app.Transferrable,
		BaseURI:           app.BaseURI,
		CreatedAt:         app.CreatedAt.Unix(),
	})
}

// HandleGet godoc
//
//	@Summary		Get App
//	@Description	Fetch an app record including its owner, admin set and invite policy.
//	@Tags			Apps
//	@Produce		json
//	@Param			app	path		string					true	"App ID"
//	@Success		200	{object}	gatesdk.AppResponse		"app record"
//	@Failure		404	{object}	gatesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/apps/{app} [get].
func (h *AppsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	appID := r.PathValue("app")

	app, err := h.AppService.GetApp(ctx, appID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	admins, err := h.AppService.Admins(ctx, appID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gatesdk.AppResponse{
		AppID:             app.ID,
		Owner:             app.Owner,
		Admins:            admins,
		InvitesPerNewUser: app.InvitesPerNewUser,
		Transferrable:     app.Transferrable,
		BaseURI:           app.BaseURI,
		CreatedAt:         app.CreatedAt.Unix(),
	})
}
