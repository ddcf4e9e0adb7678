package http

import (
	"net/http"
	"strconv"

	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/httpx"
	"github.com/credgate/credgate/pkg/slogx"
)

// defaultEventLimit caps unbounded event listing requests.
const defaultEventLimit = 100

type QueriesHandler struct {
	QueryService *service.QueryService
}

// HandleAccess godoc
//
//	@Summary		Check Access
//	@Description	Report whether an identity is a registered member of the app.
//	@Tags			Queries
//	@Produce		json
//	@Param			app			path		string					true	"App ID"
//	@Param			identity	path		string					true	"Identity"
//	@Success		200			{object}	gatesdk.AccessResponse	"app_id, identity, access"
//	@Failure		404			{object}	gatesdk.ErrorResponse	"app not found"
//	@Router			/v1/apps/{app}/access/{identity} [get].
func (h *QueriesHandler) HandleAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	appID := r.PathValue("app")
	identity := r.PathValue("identity")

	access, err := h.QueryService.HasAccess(ctx, appID, identity)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gatesdk.AccessResponse{
		AppID:    appID,
		Identity: identity,
		Access:   access,
	})
}

// HandleInvitations godoc
//
//	@Summary		List Invitations
//	@Description	List the invitation tokens an identity currently holds for the app.
//	@Tags			Queries
//	@Produce		json
//	@Param			app			path		string						true	"App ID"
//	@Param			identity	path		string						true	"Identity"
//	@Success		200			{object}	gatesdk.InvitationsResponse	"app_id, identity, invited, token_ids"
//	@Failure		404			{object}	gatesdk.ErrorResponse		"app not found"
//	@Router			/v1/apps/{app}/invitations/{identity} [get].
func (h *QueriesHandler) HandleInvitations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	appID := r.PathValue("app")
	identity := r.PathValue("identity")

	ids, err := h.QueryService.InvitationTokens(ctx, appID, identity)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gatesdk.InvitationsResponse{
		AppID:    appID,
		Identity: identity,
		Invited:  len(ids) > 0,
		TokenIDs: ids,
	})
}

// HandleInvitesLeft godoc
//
//	@Summary		Get Invites Left
//	@Description	Report an identity's remaining invite budget for the app.
//	@Tags			Queries
//	@Produce		json
//	@Param			app			path		string						true	"App ID"
//	@Param			identity	path		string						true	"Identity"
//	@Success		200			{object}	gatesdk.InvitesLeftResponse	"app_id, identity, invites_left"
//	@Failure		404			{object}	gatesdk.ErrorResponse		"app not found"
//	@Router			/v1/apps/{app}/invites-left/{identity} [get].
func (h *QueriesHandler) HandleInvitesLeft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	appID := r.PathValue("app")
	identity := r.PathValue("identity")

	left, err := h.QueryService.InvitesLeft(ctx, appID, identity)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gatesdk.InvitesLeftResponse{
		AppID:       appID,
		Identity:    identity,
		InvitesLeft: left,
	})
}

// HandleEvents godoc
//
//	@Summary		List Events
//	@Description	Return the app's event log, oldest first. The optional limit query
//	@Description	parameter caps the number of entries (default 100).
//	@Tags			Queries
//	@Produce		json
//	@Param			app		path		string					true	"App ID"
//	@Param			limit	query		int						false	"Maximum entries to return"
//	@Success		200		{object}	gatesdk.EventsResponse	"app_id, events"
//	@Failure		404		{object}	gatesdk.ErrorResponse	"app not found"
//	@Router			/v1/apps/{app}/events [get].
func (h *QueriesHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	appID := r.PathValue("app")

	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			gatesdk.NewAPIError(http.StatusBadRequest, gatesdk.ErrorCodeInvalidRequest,
				"limit must be a positive integer").WriteError(w)
			return
		}
		limit = n
	}

	events, err := h.QueryService.Events(ctx, appID, limit)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := gatesdk.EventsResponse{AppID: appID, Events: make([]gatesdk.EventRecord, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, gatesdk.EventRecord{
			ID:        e.ID,
			Type:      e.Type,
			Actor:     e.Actor,
			Subject:   e.Subject,
			TokenID:   e.TokenID,
			CreatedAt: e.CreatedAt.Unix(),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
