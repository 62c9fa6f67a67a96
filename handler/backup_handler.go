package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	backuppkg "github.com/astopaal/meksut-order-management/backup"
	"github.com/astopaal/meksut-order-management/realtime"
)

type BackupHandler struct {
	service *backuppkg.Service
	hub     *realtime.Hub
}

func NewBackupHandler(svc *backuppkg.Service, hub *realtime.Hub) *BackupHandler {
	return &BackupHandler{service: svc, hub: hub}
}

// ManualBackup triggers an immediate backup outside the daily schedule.
func (h *BackupHandler) ManualBackup() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, err := h.service.Create(time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "backup failed"})
			return
		}
		h.hub.Broadcast(realtime.EventBackupCompleted, gin.H{"file": name})
		c.JSON(http.StatusOK, gin.H{"message": "manual backup completed", "file": name})
	}
}

func (h *BackupHandler) BackupInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := h.service.Info()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read backup info"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}
