package handler

import (
	"io"
	"net/http"

	"github.com/jkorhonen/rinkroster/internal/api/response"
	"github.com/jkorhonen/rinkroster/internal/services/backup"
)

// maxBackupSize caps restore uploads at 10 MiB
const maxBackupSize = 10 << 20

// BackupHandler handles backup export and restore endpoints
type BackupHandler struct {
	backupService *backup.Service
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *backup.Service) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
	}
}

// Export handles GET /api/v1/backup
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.backupService.Export(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="rinkroster-backup.json"`)
	response.JSON(w, http.StatusOK, file)
}

// Restore handles POST /api/v1/backup/restore
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBackupSize))
	if err != nil {
		WriteError(w, NewInvalidRequestError("could not read request body"))
		return
	}

	if err := h.backupService.Import(r.Context(), raw); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
