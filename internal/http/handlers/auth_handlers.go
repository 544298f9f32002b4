package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmitChauhan63390/auth-app/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SignupRequest represents the signup form payload
type SignupRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles user registration. Field-level validation lives in the
// service so the response order stays deterministic; the handler only maps
// errors to statuses. Request bodies are never logged.
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &domain.RegistrationRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		CountryCode: req.CountryCode,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
	})
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
			return
		}
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		// Internal detail stays in the server log; the client gets a
		// stable code instead of raw error text.
		log.Printf("SIGNUP_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error creating user in database",
			"error":   "user_creation_failed",
		})
		return
	}

	log.Printf("USER_CREATED: user_id=%d", user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

// Login handles user login. Unknown email and wrong password get the same
// response, and no session record is created: the returned token is the
// only proof of authentication.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
			return
		}
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many login attempts"})
		default:
			log.Printf("LOGIN_FAILED: error=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.AccessToken})
}

// Me handles getting the authenticated user's profile. The password hash is
// never part of the response.
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID not found in context"})
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID.(uint))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("PROFILE_LOOKUP_FAILED: user_id=%v error=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"firstName":   user.FirstName,
		"lastName":    user.LastName,
		"email":       user.Email,
		"countryCode": user.CountryCode,
		"phoneNumber": user.PhoneNumber,
		"dateOfBirth": user.DateOfBirth,
		"gender":      user.Gender,
		"createdAt":   user.CreatedAt,
	})
}
