package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"restaurant-catalog/internal/domain"
)

func (h *Handler) createKitchenType(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.KitchenTypeRequest](h.validate, w, r)
	if !ok {
		return
	}

	kt, err := h.KitchenTypes.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, kt)
}

func (h *Handler) getKitchenTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.KitchenTypes.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if types == nil {
		types = []domain.KitchenType{}
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *Handler) getKitchenType(w http.ResponseWriter, r *http.Request) {
	kt, err := h.KitchenTypes.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kt)
}

func (h *Handler) updateKitchenType(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.KitchenTypeRequest](h.validate, w, r)
	if !ok {
		return
	}

	kt, err := h.KitchenTypes.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kt)
}

func (h *Handler) deleteKitchenType(w http.ResponseWriter, r *http.Request) {
	if err := h.KitchenTypes.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
