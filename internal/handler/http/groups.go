package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	groups, err := h.services.GroupService.ListGroups(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listGroups").Msg("error listing groups")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"groups": groups})
}

func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	groupID := chi.URLParam(r, "groupID")

	group, err := h.services.GroupService.GetGroup(r.Context(), groupID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getGroup").Msg("error getting group")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"group": group})
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var data models.GroupData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Str("func", "*Handler.createGroup").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	groupID, err := h.services.GroupService.CreateGroup(r.Context(), data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createGroup").Msg("error creating group")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusCreated, map[string]any{"id": groupID})
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	groupID := chi.URLParam(r, "groupID")

	if err := h.services.GroupService.DeleteGroup(r.Context(), groupID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteGroup").Msg("error deleting group")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accounts, err := h.services.GroupService.ListAccounts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error listing accounts")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"accounts": accounts})
}
