package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamraw-backend/internal/store"
	"teamraw-backend/internal/validation"
	"teamraw-backend/internal/ws"
	"teamraw-backend/pkg/models"
)

type ContactHandler struct {
	Store *store.Store
	Hub   *ws.Hub
}

func NewContactHandler(st *store.Store, hub *ws.Hub) *ContactHandler {
	return &ContactHandler{Store: st, Hub: hub}
}

// CreateMessage handles POST /contact-messages: validate, sanitize, persist.
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var input validation.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	if errs := validation.ValidateContact(input); len(errs) > 0 {
		log.Printf("Contact validation failed: %v", errs)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  errs,
		})
		return
	}

	msg := models.ContactMessage{
		ID:          store.NewMessageID(),
		FullName:    validation.Sanitize(input.FullName),
		Email:       validation.Sanitize(input.Email),
		InquiryType: input.InquiryType,
		Message:     validation.Sanitize(input.Message),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Status:      models.StatusUnread,
		Replied:     false,
	}

	if err := h.Store.Append(msg); err != nil {
		log.Printf("Error persisting contact message %s: %v", msg.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to save contact message",
		})
		return
	}

	if h.Hub != nil {
		h.Hub.NotifyMessageCreated(msg)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Contact message received successfully",
		"data":    gin.H{"id": msg.ID},
	})
}

// ListMessages handles GET /contact-messages, newest first, with counts.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	msgs, err := h.Store.List()
	if err != nil {
		log.Printf("Error listing contact messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch contact messages",
		})
		return
	}

	unread := 0
	for _, m := range msgs {
		if m.Status == models.StatusUnread {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    msgs,
		"meta": gin.H{
			"total":  len(msgs),
			"unread": unread,
		},
	})
}

// GetMessage handles GET /contact-messages/:id.
func (h *ContactHandler) GetMessage(c *gin.Context) {
	id := c.Param("id")
	msg, err := h.Store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Contact message not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}

type UpdateMessageRequest struct {
	Status  *string `json:"status"`
	Replied *bool   `json:"replied"`
}

// UpdateMessage handles PATCH /contact-messages/:id. Only status and replied
// are mutable; everything else is fixed at creation.
func (h *ContactHandler) UpdateMessage(c *gin.Context) {
	id := c.Param("id")
	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	upd := store.Update{Replied: req.Replied}
	if req.Status != nil && models.ValidStatus(*req.Status) {
		upd.Status = req.Status
	}

	msg, err := h.Store.Apply(id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Contact message not found",
			})
			return
		}
		log.Printf("Error updating contact message %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update contact message",
		})
		return
	}

	if h.Hub != nil {
		h.Hub.NotifyMessageUpdated(msg)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact message updated successfully",
		"data":    msg,
	})
}

// DeleteMessage handles DELETE /contact-messages/:id.
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Contact message not found",
			})
			return
		}
		log.Printf("Error deleting contact message %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete contact message",
		})
		return
	}

	if h.Hub != nil {
		h.Hub.NotifyMessageDeleted(id)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact message deleted successfully",
	})
}
