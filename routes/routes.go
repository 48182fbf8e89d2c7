package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"loopcart/controllers"
	"loopcart/middleware"
	"loopcart/store"
)

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(
	router *mux.Router,
	users store.UserStore,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	wishlistController *controllers.WishlistController,
	adminController *controllers.AdminController,
	emailController *controllers.EmailController,
) {
	router.Use(middleware.CORSMiddleware)

	// Health check
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Backend is running"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/signup", authController.Signup).Methods("POST")
	api.HandleFunc("/login", authController.Login).Methods("POST")

	// Catalog routes
	api.HandleFunc("/products", catalogController.GetProducts).Methods("GET")
	api.HandleFunc("/products/{id}", catalogController.GetProductByID).Methods("GET")
	api.HandleFunc("/search", catalogController.Search).Methods("GET")

	// Email routes
	api.HandleFunc("/email/exclusive-access", emailController.ExclusiveAccess).Methods("POST")
	api.HandleFunc("/email/personal-concierge", emailController.PersonalConcierge).Methods("POST")
	api.HandleFunc("/email/newsletter", emailController.NewsletterSubscribe).Methods("POST")

	// Wishlist routes (bearer token required)
	wishlist := api.PathPrefix("/wishlist").Subrouter()
	wishlist.Use(middleware.AuthMiddleware)
	wishlist.HandleFunc("", wishlistController.GetWishlist).Methods("GET")
	wishlist.HandleFunc("", wishlistController.AddToWishlist).Methods("POST")
	wishlist.HandleFunc("/{productId}", wishlistController.RemoveFromWishlist).Methods("DELETE")

	// Admin routes (bearer token + admin role)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware(users))
	admin.HandleFunc("/stats", adminController.GetStats).Methods("GET")
	admin.HandleFunc("/users", adminController.GetUsers).Methods("GET")
}
