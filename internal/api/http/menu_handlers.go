package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"restaurant-catalog/internal/domain"
)

func (h *Handler) createMenuCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.MenuCategoryRequest](h.validate, w, r)
	if !ok {
		return
	}

	category, err := h.Menus.Create(r.Context(), mux.Vars(r)["restaurantId"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getMenuCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, err := h.Menus.Get(r.Context(), vars["restaurantId"], vars["menuId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) updateMenuCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.MenuCategoryRequest](h.validate, w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	category, err := h.Menus.Update(r.Context(), vars["restaurantId"], vars["menuId"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteMenuCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.Menus.Delete(r.Context(), vars["restaurantId"], vars["menuId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.MenuItemRequest](h.validate, w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	item, err := h.MenuItems.Create(r.Context(), vars["restaurantId"], vars["menuId"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.MenuItemRequest](h.validate, w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	item, err := h.MenuItems.Update(r.Context(), vars["restaurantId"], vars["menuId"], vars["itemId"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.MenuItems.Delete(r.Context(), vars["restaurantId"], vars["menuId"], vars["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenuItemByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.MenuItems.GetByItemID(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
