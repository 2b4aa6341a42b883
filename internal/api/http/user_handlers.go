package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"restaurant-catalog/internal/domain"
)

func (h *Handler) createUserType(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.UserTypeRequest](h.validate, w, r)
	if !ok {
		return
	}

	ut, err := h.UserTypes.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ut)
}

func (h *Handler) getUserTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.UserTypes.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if types == nil {
		types = []domain.UserType{}
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *Handler) getUserType(w http.ResponseWriter, r *http.Request) {
	ut, err := h.UserTypes.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ut)
}

func (h *Handler) updateUserType(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.UserTypeRequest](h.validate, w, r)
	if !ok {
		return
	}

	ut, err := h.UserTypes.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ut)
}

func (h *Handler) deleteUserType(w http.ResponseWriter, r *http.Request) {
	if err := h.UserTypes.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.UserRequest](h.validate, w, r)
	if !ok {
		return
	}

	user, err := h.Users.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.UserRequest](h.validate, w, r)
	if !ok {
		return
	}

	user, err := h.Users.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
