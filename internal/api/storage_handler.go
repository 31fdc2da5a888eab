package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cloudnexus/task-api/internal/api/shared"
	"github.com/cloudnexus/task-api/internal/service"
	"github.com/cloudnexus/task-api/internal/storage"
)

// UploadResponse represents the response data for a successful file upload.
type UploadResponse struct {
	Success          bool   `json:"success"`
	S3URL            string `json:"s3_url"`
	OriginalFilename string `json:"original_filename"`
	Message          string `json:"message"`
}

// BackupResponse represents the response data for a completed backup.
type BackupResponse struct {
	Success         bool   `json:"success"`
	S3URL           string `json:"s3_url"`
	RecordCount     int    `json:"record_count"`
	BackupTimestamp string `json:"backup_timestamp"`
	Message         string `json:"message"`
}

// StorageHandler handles the file upload and backup HTTP requests.
type StorageHandler struct {
	objects        storage.ObjectStore
	backupService  service.BackupService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(
	objects storage.ObjectStore,
	backupService service.BackupService,
	maxUploadBytes int64,
	log *slog.Logger,
) *StorageHandler {
	if log == nil {
		log = slog.Default()
	}
	return &StorageHandler{
		objects:        objects,
		backupService:  backupService,
		maxUploadBytes: maxUploadBytes,
		log:            log.With(slog.String("component", "storage_handler")),
	}
}

// UploadFile handles POST /upload requests
// It accepts one multipart file and streams it to the object store. Upload
// is deliberately independent of task creation: a client attaches the
// returned URL to a task description in a separate request, so a failure
// here never leaves a half-registered task behind.
func (h *StorageHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	// Reject oversized bodies before buffering the multipart form. The slack
	// covers the multipart framing around the file payload itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+64*1024)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
				"File too large", err)
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			h.log.Warn("failed to close uploaded file", slog.String("error", cerr.Error()))
		}
	}()

	if header.Filename == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No filename provided")
		return
	}

	if header.Size > h.maxUploadBytes {
		shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	key := storage.UploadKey(header.Filename)
	contentType := header.Header.Get("Content-Type")

	url, err := h.objects.Put(r.Context(), key, contentType, file)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.log.Info("file uploaded",
		slog.String("key", key),
		slog.String("original_filename", header.Filename),
		slog.Int64("size_bytes", header.Size))

	shared.RespondWithJSON(w, r, http.StatusCreated, UploadResponse{
		Success:          true,
		S3URL:            url,
		OriginalFilename: header.Filename,
		Message:          "File uploaded successfully",
	})
}

// CreateBackup handles POST /backup requests
func (h *StorageHandler) CreateBackup(w http.ResponseWriter, r *http.Request) {
	result, err := h.backupService.BackupAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, BackupResponse{
		Success:         true,
		S3URL:           result.URL,
		RecordCount:     result.RecordCount,
		BackupTimestamp: result.Timestamp.Format(time.RFC3339),
		Message:         "Backup created successfully",
	})
}
