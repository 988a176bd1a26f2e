package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"casino_webapp/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminStats возвращает статистику платформы
func (h *Handler) AdminStats(c *gin.Context) {
	if !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	stats, err := h.Admin.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminPendingRequests возвращает необработанные запросы коинов
func (h *Handler) AdminPendingRequests(c *gin.Context) {
	if !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	limit := parseLimit(c.Query("limit"), 50, 200)
	reqs, err := h.Admin.GetPendingRequests(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// AdminApproveRequest одобряет запрос и начисляет коины
func (h *Handler) AdminApproveRequest(c *gin.Context) {
	adminID, ok := getUserID(c)
	if !ok || !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	req, err := h.Admin.ApproveRequest(c.Request.Context(), requestID, adminID)
	if err != nil {
		respondResolveError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": req})
}

// AdminDenyRequest отклоняет запрос
func (h *Handler) AdminDenyRequest(c *gin.Context) {
	adminID, ok := getUserID(c)
	if !ok || !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	req, err := h.Admin.DenyRequest(c.Request.Context(), requestID, adminID)
	if err != nil {
		respondResolveError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": req})
}

// AdminAuditLogs возвращает последние записи аудита
func (h *Handler) AdminAuditLogs(c *gin.Context) {
	if !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	limit := parseLimit(c.Query("limit"), 100, 500)
	category := c.Query("category")

	var logs interface{}
	var err error
	if category != "" {
		logs, err = h.Audit.GetLogsByCategory(c.Request.Context(), category, limit)
	} else {
		logs, err = h.Audit.GetRecentLogs(c.Request.Context(), limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func respondResolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
	case errors.Is(err, repository.ErrRequestResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "request already resolved"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
	}
}
