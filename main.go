// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"loopcart/catalog"
	"loopcart/controllers"
	"loopcart/routes"
	"loopcart/store"
	"loopcart/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	utils.JwtKey = []byte(secret)

	// Connect to MongoDB and ensure the unique email index
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal(err)
		}
	}()
	if err := utils.EnsureIndexes(client); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	users := store.NewMongoUserStore(client.Database(utils.DatabaseName()))

	// Catalog reader over the static product file
	productFile := os.Getenv("PRODUCT_FILE")
	if productFile == "" {
		productFile = "product.json"
	}
	reader := catalog.NewReader(productFile)

	// Outbound mail relay
	emailService, err := utils.NewEmailService()
	if err != nil {
		log.Fatalf("email service: %v", err)
	}

	// Initialize controllers
	authController := controllers.NewAuthController(users)
	catalogController := controllers.NewCatalogController(reader)
	wishlistController := controllers.NewWishlistController(users)
	adminController := controllers.NewAdminController(users, reader)
	emailController := controllers.NewEmailController(emailService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, users, authController, catalogController, wishlistController, adminController, emailController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
