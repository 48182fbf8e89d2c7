package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"loopcart/middleware"
	"loopcart/store"
	"loopcart/utils"
)

// WishlistController handles the authenticated wishlist operations.
type WishlistController struct {
	Users store.UserStore
}

// NewWishlistController creates a new WishlistController.
func NewWishlistController(users store.UserStore) *WishlistController {
	return &WishlistController{Users: users}
}

type wishlistResponse struct {
	Message  string   `json:"message,omitempty"`
	Wishlist []string `json:"wishlist"`
}

// GetWishlist returns the caller's wishlist.
func (wc *WishlistController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := wc.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load wishlist")
		return
	}

	wishlist := user.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}
	utils.RespondJSON(w, http.StatusOK, wishlistResponse{Wishlist: wishlist})
}

// AddToWishlist adds a product id to the caller's wishlist. Adding an id that
// is already present is a no-op that still succeeds.
func (wc *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		utils.RespondError(w, http.StatusBadRequest, "productId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	wishlist, err := wc.Users.AddToWishlist(ctx, claims.UserID, req.ProductID)
	if err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}

	utils.RespondJSON(w, http.StatusOK, wishlistResponse{
		Message:  "Added to wishlist",
		Wishlist: wishlist,
	})
}

// RemoveFromWishlist removes a product id from the caller's wishlist.
// Removing an absent id is a no-op that still succeeds.
func (wc *WishlistController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	productID := mux.Vars(r)["productId"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	wishlist, err := wc.Users.RemoveFromWishlist(ctx, claims.UserID, productID)
	if err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}

	utils.RespondJSON(w, http.StatusOK, wishlistResponse{
		Message:  "Removed from wishlist",
		Wishlist: wishlist,
	})
}
