package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/store"
	"github.com/thingfulapp/thingful-server/internal/utils"
)

// listThings returns every thing in the catalogue with its average review
// rating. The listing is public.
func (h *Handler) listThings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	things, err := h.services.ThingService.ListThings(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during things listing")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, things, http.StatusOK)
}

func (h *Handler) getThing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	thingID, err := strconv.ParseInt(chi.URLParam(r, "thingID"), 10, 64)
	if err != nil {
		writeError(w, msgThingNotFound, http.StatusNotFound)
		return
	}

	thing, err := h.services.ThingService.GetThing(ctx, thingID)
	if err != nil {
		if errors.Is(err, store.ErrThingNotFound) {
			writeError(w, msgThingNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during thing lookup")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, thing, http.StatusOK)
}

// listThingReviews returns the reviews of one thing. A nonexistent thing is
// a 404, not an empty list.
func (h *Handler) listThingReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	thingID, err := strconv.ParseInt(chi.URLParam(r, "thingID"), 10, 64)
	if err != nil {
		writeError(w, msgThingNotFound, http.StatusNotFound)
		return
	}

	reviews, err := h.services.ThingService.ListThingReviews(ctx, thingID)
	if err != nil {
		if errors.Is(err, store.ErrThingNotFound) {
			writeError(w, msgThingNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during reviews listing")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}
