package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg("invalid limit query param")
		http.Error(w, app.MsgInvalidLimitParam, http.StatusBadRequest)
		return
	}

	offset, err := intQueryParam(r, "offset")
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg("invalid offset query param")
		http.Error(w, app.MsgInvalidOffsetParam, http.StatusBadRequest)
		return
	}

	contacts, err := h.services.ContactService.ListContacts(r.Context(), limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg("error listing contacts")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"contacts": contacts})
}

func (h *Handler) countContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count, err := h.services.ContactService.CountContacts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.countContacts").Msg("error counting contacts")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"count": count})
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contactID := chi.URLParam(r, "contactID")

	contact, err := h.services.ContactService.GetContact(r.Context(), contactID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getContact").Msg("error getting contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"contact": contact})
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var data models.ContactData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	contactID, err := h.services.ContactService.CreateContact(r.Context(), data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("error creating contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusCreated, map[string]any{"id": contactID})
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contactID := chi.URLParam(r, "contactID")

	var data models.ContactData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.ContactService.UpdateContact(r.Context(), contactID, data); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg("error updating contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contactID := chi.URLParam(r, "contactID")

	if err := h.services.ContactService.DeleteContact(r.Context(), contactID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteContact").Msg("error deleting contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// intQueryParam reads an optional integer query parameter. A missing or
// empty parameter yields nil rather than an error.
func intQueryParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
