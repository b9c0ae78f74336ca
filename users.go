package traveloracle

import (
	"net/http"

	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/filter"
	"github.com/klipach/traveloracle/log"
)

// Users returns the user named by ?uid=, or every user without it.
func (a *API) Users(w http.ResponseWriter, r *http.Request) {
	ctx, _, ok := a.begin(w, r, http.MethodGet)
	if !ok {
		return
	}

	if uid := r.URL.Query().Get("uid"); uid != "" {
		u, err := a.users.Get(ctx, uid)
		if err != nil {
			writeError(ctx, w, "error while loading user", err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, u)
		return
	}

	users, err := a.users.All(ctx)
	if err != nil {
		writeError(ctx, w, "error while listing users", err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, users)
}

// Profile creates (POST) or updates (PUT) the caller's own user document.
func (a *API) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, token, ok := a.begin(w, r, http.MethodPost, http.MethodPut)
	if !ok {
		return
	}

	var req contract.ProfileRequest
	if err := readJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, "error while decoding request", err)
		return
	}
	u := contract.User{
		UID:         token.UID,
		Email:       req.Email,
		DisplayName: filter.Text(req.DisplayName),
	}

	if r.Method == http.MethodPost {
		created, err := a.users.Create(ctx, u, req.ProfileImage)
		if err != nil {
			writeError(ctx, w, "error while creating user", err)
			return
		}
		writeJSON(ctx, w, http.StatusCreated, created)
		return
	}

	updated, err := a.users.Update(ctx, u, req.ProfileImage)
	if err != nil {
		writeError(ctx, w, "error while updating user", err)
		return
	}
	log.LoggerFromContext(ctx).InfoContext(ctx, "profile updated")
	writeJSON(ctx, w, http.StatusOK, updated)
}
