package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"restaurant-catalog/internal/domain"
)

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.RestaurantRequest](h.validate, w, r)
	if !ok {
		return
	}

	restaurant, err := h.Restaurants.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	// Accepts every strconv.ParseBool form ("1", "TRUE", ...); anything
	// else falls back to the unfiltered listing.
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))

	restaurants, err := h.Restaurants.GetAllBasic(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	if restaurants == nil {
		restaurants = []domain.RestaurantBasic{}
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurantsFull(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.GetAllFull(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurants.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[domain.RestaurantRequest](h.validate, w, r)
	if !ok {
		return
	}

	restaurant, err := h.Restaurants.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Restaurants.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) disableRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurants.Disable(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// The restaurant must exist before a code is handed out.
	if _, err := h.Restaurants.GetByID(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	png, err := h.QR.Generate(id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
