package traveloracle

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/filter"
	"github.com/klipach/traveloracle/log"
)

// Stores queries stores (GET ?category= or ?saved=true) and creates one
// with its images (POST).
func (a *API) Stores(w http.ResponseWriter, r *http.Request) {
	ctx, token, ok := a.begin(w, r, http.MethodGet, http.MethodPost)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		var req contract.StoreRequest
		if err := readJSON(ctx, r, &req); err != nil {
			writeError(ctx, w, "error while decoding request", err)
			return
		}
		store := req.Store
		store.ID = ""
		store.CreatedBy = token.UID
		store.DisplayName = filter.Text(store.DisplayName)
		store.Description = filter.Text(store.Description)

		created, err := a.stores.Create(ctx, store, req.Images)
		if err != nil {
			writeError(ctx, w, "error while creating store", err)
			return
		}
		writeJSON(ctx, w, http.StatusCreated, storeResponse(created))
		return
	}

	query := r.URL.Query()
	var (
		stores []*contract.Store
		err    error
	)
	switch {
	case query.Get("saved") == "true":
		var u *contract.User
		u, err = a.users.Get(ctx, token.UID)
		if err == nil {
			stores, err = a.stores.Saved(ctx, u)
		}
	case query.Get("category") != "":
		stores, err = a.stores.ByCategory(ctx, query.Get("category"))
	default:
		stores, err = a.stores.All(ctx)
	}
	if err != nil {
		writeError(ctx, w, "error while querying stores", err)
		return
	}

	resp := make([]contract.StoreResponse, 0, len(stores))
	for _, s := range stores {
		resp = append(resp, storeResponse(s))
	}
	log.LoggerFromContext(ctx).DebugContext(ctx, "stores queried", slog.Int(log.CountField, len(resp)))
	writeJSON(ctx, w, http.StatusOK, resp)
}

func storeResponse(s *contract.Store) contract.StoreResponse {
	return contract.StoreResponse{
		Store:           *s,
		DescriptionHTML: filter.Markdown(s.Description),
	}
}

// SavedStores adds (POST) or removes (DELETE ?storeId=) a store from the
// caller's saved list and returns the resulting list.
func (a *API) SavedStores(w http.ResponseWriter, r *http.Request) {
	ctx, token, ok := a.begin(w, r, http.MethodPost, http.MethodDelete)
	if !ok {
		return
	}

	var (
		saved []string
		err   error
	)
	if r.Method == http.MethodPost {
		var req contract.SavedStoreRequest
		if err := readJSON(ctx, r, &req); err != nil {
			writeError(ctx, w, "error while decoding request", err)
			return
		}
		if req.StoreID == "" {
			writeError(ctx, w, "missing store", fmt.Errorf("%w: storeId", errBadRequest))
			return
		}
		saved, err = a.stores.AddSaved(ctx, token.UID, req.StoreID)
	} else {
		storeID := r.URL.Query().Get("storeId")
		if storeID == "" {
			writeError(ctx, w, "missing store", fmt.Errorf("%w: storeId", errBadRequest))
			return
		}
		saved, err = a.stores.RemoveSaved(ctx, token.UID, storeID)
	}
	if err != nil {
		writeError(ctx, w, "error while changing saved stores", err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, contract.SavedStoresResponse{SavedStoreIDs: saved})
}

// Reviews adds the caller's review of a store.
func (a *API) Reviews(w http.ResponseWriter, r *http.Request) {
	ctx, token, ok := a.begin(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req contract.ReviewRequest
	if err := readJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, "error while decoding request", err)
		return
	}
	if req.StoreID == "" {
		writeError(ctx, w, "missing store", fmt.Errorf("%w: storeId", errBadRequest))
		return
	}
	ctx = log.WithLogger(ctx, log.LoggerFromContext(ctx).With(slog.String(log.StoreIDField, req.StoreID)))

	store, err := a.stores.Store(ctx, req.StoreID)
	if err != nil {
		writeError(ctx, w, "error while loading store", err)
		return
	}

	review := req.Review
	review.CreatedBy = token.UID
	review.Content = filter.Text(review.Content)
	added, err := a.reviews.Add(ctx, review, store)
	if err != nil {
		writeError(ctx, w, "error while adding review", err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, added)
}
