package api

import (
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"teamraw-backend/internal/auth"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AdminHandler struct {
	Auth *auth.Service
}

func NewAdminHandler(authSvc *auth.Service) *AdminHandler {
	return &AdminHandler{Auth: authSvc}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /admin/login. On success it sets the session cookie and
// returns the admin profile. Unknown email and wrong password produce the
// same 401 so the response cannot be used to probe for accounts.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required",
		})
		return
	}
	if !emailShape.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid email format",
		})
		return
	}

	profile, err := h.Auth.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		log.Printf("Failed admin login attempt for %q", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}

	token, err := h.Auth.IssueToken(profile)
	if err != nil {
		log.Printf("Error issuing token for %s: %v", profile.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error. Please try again later.",
		})
		return
	}

	h.setSessionCookie(c, token, int(auth.TokenTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   profile,
	})
}

// Logout handles POST /admin/logout by expiring the session cookie. The
// server keeps no session state, so clearing the cookie is the whole job.
func (h *AdminHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Verify handles GET /admin/verify: reports whether the request carries a
// valid session token.
func (h *AdminHandler) Verify(c *gin.Context) {
	token, ok := auth.ExtractToken(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"authenticated": false,
			"message":       "No authentication token found",
		})
		return
	}

	claims, err := h.Auth.VerifyToken(token)
	if err != nil {
		log.Printf("Token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"authenticated": false,
			"message":       "Invalid or expired token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"admin": gin.H{
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}

func (h *AdminHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", secure, true)
}
