package handlers

import (
	"net/http"
	"strings"
	"time"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/db"
	"optimum_stay_app_go/middleware"
	"optimum_stay_app_go/models"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
)

func init() {
	// Generate a real dummy hash at startup to ensure consistent timing
	// We ignore error here as it should not fail in normal operation
	hash, _ := services.HashPassword("dummy_password_for_timing_mitigation")
	if hash != "" {
		globalDummyHash = hash
	}
}

// Package level variable to hold the dummy hash
var globalDummyHash string = "$2a$10$X7.G.t8./.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t" // Fallback

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPostHandler authenticates an admin and issues a session cookie
func LoginPostHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := req.Password

	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		// Timing attack mitigation: always run a bcrypt comparison
		services.VerifyPassword(globalDummyHash, password)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	if user.IsLockedOut() {
		return echo.NewHTTPError(http.StatusUnauthorized, "Account is locked. Try again later.")
	}

	if !services.VerifyPassword(user.Password, password) {
		// Increment failed login attempts
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= 5 {
			lockoutTime := time.Now().Add(15 * time.Minute)
			user.LockoutUntil = &lockoutTime
			user.FailedLoginAttempts = 0
		}
		db.DB.Save(&user)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	// Reset failed attempts on success
	if user.FailedLoginAttempts > 0 || user.LockoutUntil != nil {
		user.FailedLoginAttempts = 0
		user.LockoutUntil = nil
		db.DB.Save(&user)
	}

	if !user.IsActive {
		return echo.NewHTTPError(http.StatusUnauthorized, "Your account has been deactivated")
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	cfg := c.Get("config").(*config.Config)
	isProduction := cfg.Environment == "production"

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(services.DefaultSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})

	// Update last login time
	now := time.Now()
	user.LastLoginAt = &now
	db.DB.Save(&user)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// LogoutHandler deletes the session and clears the cookie
func LogoutHandler(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err == nil {
		services.DeleteSession(db.DB, cookie.Value)
	}

	middleware.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetCurrentUserHandler returns the current user info as JSON
func GetCurrentUserHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return c.JSON(http.StatusOK, user)
}
