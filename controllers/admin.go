package controllers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"loopcart/catalog"
	"loopcart/models"
	"loopcart/store"
	"loopcart/utils"
)

// AdminController serves the dashboard aggregation endpoints. All routes are
// behind the auth and admin middleware.
type AdminController struct {
	Users   store.UserStore
	Catalog *catalog.Reader
}

// NewAdminController creates a new AdminController.
func NewAdminController(users store.UserStore, reader *catalog.Reader) *AdminController {
	return &AdminController{Users: users, Catalog: reader}
}

type dashboardStats struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Wishlist int `json:"wishlist"`
	Orders   int `json:"orders"`
}

type recentUser struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Joined time.Time `json:"joined"`
}

type statsResponse struct {
	Stats            dashboardStats           `json:"stats"`
	RecentUsers      []recentUser             `json:"recentUsers"`
	FeaturedProducts []models.FeaturedProduct `json:"featuredProducts"`
}

// GetStats returns dashboard totals, the latest users and the first catalog
// entries.
func (ac *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := ac.Users.All(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	products, err := ac.Catalog.All()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	totalWishlist := 0
	for _, u := range users {
		totalWishlist += len(u.Wishlist)
	}

	resp := statsResponse{
		Stats: dashboardStats{
			Users:    len(users),
			Products: len(products),
			Wishlist: totalWishlist,
			// No order pipeline is wired yet.
			Orders: 0,
		},
		RecentUsers:      latestUsers(users, 5),
		FeaturedProducts: featuredProducts(products, 5),
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

// GetUsers returns the most recently joined users, newest first. The limit
// query parameter defaults to 5.
func (ac *AdminController) GetUsers(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := ac.Users.All(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string][]recentUser{
		"users": latestUsers(users, limit),
	})
}

func latestUsers(users []models.User, limit int) []recentUser {
	sorted := make([]models.User, len(users))
	copy(sorted, users)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]recentUser, 0, len(sorted))
	for _, u := range sorted {
		recent = append(recent, recentUser{
			ID:     u.ID.Hex(),
			Name:   u.Name,
			Email:  u.Email,
			Joined: u.CreatedAt,
		})
	}
	return recent
}

// featuredProducts takes the first entries in file order; the storefront
// treats catalog order as curation.
func featuredProducts(products []models.Product, limit int) []models.FeaturedProduct {
	if len(products) > limit {
		products = products[:limit]
	}
	featured := make([]models.FeaturedProduct, 0, len(products))
	for _, p := range products {
		featured = append(featured, models.FeaturedProduct{
			ID:       p.ID,
			Title:    p.Title,
			Brand:    p.Brand,
			Category: p.Category,
		})
	}
	return featured
}
