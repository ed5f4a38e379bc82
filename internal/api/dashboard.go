package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamraw-backend/internal/store"
	"teamraw-backend/internal/ws"
	"teamraw-backend/pkg/models"
)

// DashboardHandler serves the admin dashboard's analytics snapshot and its
// live WebSocket feed.
type DashboardHandler struct {
	Store *store.Store
	Hub   *ws.Hub
}

func NewDashboardHandler(st *store.Store, hub *ws.Hub) *DashboardHandler {
	return &DashboardHandler{Store: st, Hub: hub}
}

// Analytics handles GET /admin/analytics. Contact stats are computed from
// the store; team and gallery figures are static placeholders until those
// datasets move out of the frontend.
func (h *DashboardHandler) Analytics(c *gin.Context) {
	msgs, err := h.Store.List()
	if err != nil {
		log.Printf("Error loading contact stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load analytics",
		})
		return
	}

	var unread, read, replied int
	for _, m := range msgs {
		switch m.Status {
		case models.StatusUnread:
			unread++
		case models.StatusRead:
			read++
		}
		if m.Replied {
			replied++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"team": gin.H{
				"total":        24,
				"byCategory":   gin.H{"core": 8, "mentors": 4, "members": 10, "alumni": 2},
				"byDepartment": gin.H{"Mechanical": 8, "Electronics": 7, "Software": 6, "Management": 3},
			},
			"gallery": gin.H{
				"total":      156,
				"byCategory": gin.H{"robots": 42, "events": 38, "workshops": 28, "competitions": 24, "team": 14, "milestones": 10},
			},
			"contacts": gin.H{
				"total":    len(msgs),
				"byStatus": gin.H{"unread": unread, "read": read, "replied": replied},
			},
		},
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// Feed handles GET /admin/ws by upgrading to a WebSocket that receives
// message.created/updated/deleted events.
func (h *DashboardHandler) Feed(c *gin.Context) {
	h.Hub.ServeWs(c.Writer, c.Request)
}

// Health handles GET /health.
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "teamraw-backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
