package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"loopcart/models"
	"loopcart/store"
	"loopcart/utils"
)

// AuthController handles signup and login.
type AuthController struct {
	Users store.UserStore
}

// NewAuthController creates a new AuthController.
func NewAuthController(users store.UserStore) *AuthController {
	return &AuthController{Users: users}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// Signup registers a new user and returns a session token.
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !utils.ValidName(req.Name) {
		utils.RespondError(w, http.StatusBadRequest, "Name must be between 2 and 100 characters")
		return
	}
	if !utils.ValidEmail(req.Email) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(req.Password) < utils.MinPasswordLen {
		utils.RespondError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Pre-check for a friendlier error; the unique index is the final arbiter.
	if _, err := ac.Users.FindByEmail(ctx, req.Email); err == nil {
		utils.RespondError(w, http.StatusConflict, "User already exists")
		return
	} else if err != store.ErrNotFound {
		utils.RespondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleUser,
		Wishlist: []string{},
	}
	if err := ac.Users.Create(ctx, user); err != nil {
		// A concurrent signup that won the race surfaces here.
		if err == store.ErrDuplicateEmail {
			utils.RespondError(w, http.StatusConflict, "User already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, authResponse{
		Success: true,
		Message: "User created",
		User:    user.Public(),
		Token:   token,
	})
}

// Login authenticates an existing user and returns a fresh session token.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	if creds.Email == "" || creds.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := ac.Users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		User:    user.Public(),
		Token:   token,
	})
}
