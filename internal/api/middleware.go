package api

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"teamraw-backend/internal/auth"
)

// CORSMiddleware mirrors the permissive headers the public site and admin
// panel expect when served from another origin.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// sessionAllowlist lists path prefixes that never require a session: the
// login page, the login/verify endpoints and static assets.
var sessionAllowlist = []string{
	"/login",
	"/admin/login",
	"/admin/verify",
	"/static",
}

// SessionGuard gates the admin pages at the edge. Requests to "/" or
// "/dashboard..." without a valid session cookie get redirected to the login
// page with the original path as the redirect parameter. Authenticated
// dashboard responses must never be served stale from a shared cache, so
// they carry no-cache headers.
func SessionGuard(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, prefix := range sessionAllowlist {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if path == "/" || strings.HasPrefix(path, "/dashboard") {
			if !hasValidSession(authSvc, c) {
				loginURL := "/login?redirect=" + url.QueryEscape(path)
				c.Redirect(http.StatusFound, loginURL)
				c.Abort()
				return
			}
			if strings.HasPrefix(path, "/dashboard") {
				c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
				c.Header("Pragma", "no-cache")
				c.Header("Expires", "0")
			}
		}

		c.Next()
	}
}

// RequireAdmin protects admin API routes: a missing or invalid token is a
// 401, with the underlying reason logged but never returned.
func RequireAdmin(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.ExtractToken(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		claims, err := authSvc.VerifyToken(token)
		if err != nil {
			log.Printf("Rejected admin request to %s: %v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", claims.Role)
		c.Next()
	}
}

func hasValidSession(authSvc *auth.Service, c *gin.Context) bool {
	cookie, err := c.Request.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	if _, err := authSvc.VerifyToken(cookie.Value); err != nil {
		log.Printf("Redirecting %s to login: %v", c.Request.URL.Path, err)
		return false
	}
	return true
}
