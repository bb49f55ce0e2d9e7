package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"smart-wedding-backend/internal/models"
	"smart-wedding-backend/internal/uploader"
)

// maxUploadMemory bounds the in-memory portion of a multipart batch (32MB).
const maxUploadMemory = 32 << 20

type PhotosHandler struct {
	weddings     WeddingDirectory
	orchestrator *uploader.Orchestrator
}

func NewPhotosHandler(weddings WeddingDirectory, orchestrator *uploader.Orchestrator) *PhotosHandler {
	return &PhotosHandler{
		weddings:     weddings,
		orchestrator: orchestrator,
	}
}

// Upload accepts a multipart batch of guest photos and starts the upload
// pipeline. Responds 202 with a batch id; per-file progress is served by
// GetBatch and StreamBatch. An empty uploader name rejects the whole batch
// before any storage traffic.
func (h *PhotosHandler) Upload(c *gin.Context) {
	slug := c.Param("slug")
	wedding, err := h.weddings.GetWeddingBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "wedding not found",
			Message: err.Error(),
		})
		return
	}

	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	form := c.Request.MultipartForm
	if form == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: "multipart form is nil",
		})
		return
	}

	uploaderName := c.PostForm("uploader_name")

	// Accept the common field names clients use for the file part.
	var fileHeaders []*multipart.FileHeader
	fieldNames := []string{"photos", "photo", "images", "image", "files", "file"}
	for _, fieldName := range fieldNames {
		if f := form.File[fieldName]; len(f) > 0 {
			fileHeaders = f
			break
		}
	}
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no files uploaded",
			Message: fmt.Sprintf("provide files under one of these field names: %v", fieldNames),
		})
		return
	}

	files := make([]uploader.File, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		src, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to open uploaded file",
				Message: fmt.Sprintf("%s: %v", header.Filename, err),
			})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to read uploaded file",
				Message: fmt.Sprintf("%s: %v", header.Filename, err),
			})
			return
		}
		files = append(files, uploader.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	batch, err := h.orchestrator.BeginBatch(c.Request.Context(), wedding, uploaderName, files)
	if err != nil {
		var verr *uploader.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid upload",
				Message: verr.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to start upload",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, models.UploadAcceptedResponse{
		BatchID: batch.ID,
		Files:   taskInfos(batch.Tasks()),
	})
}

// GetBatch returns a point-in-time view of one batch's per-file statuses.
// Batches are cleared shortly after they drain, after which this is a 404.
func (h *PhotosHandler) GetBatch(c *gin.Context) {
	batchID := c.Param("batch_id")

	batch, ok := h.orchestrator.Batch(batchID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "batch not found"})
		return
	}

	c.JSON(http.StatusOK, models.BatchStatusResponse{
		BatchID: batch.ID,
		Done:    batch.Finished(),
		Files:   taskInfos(batch.Tasks()),
	})
}

// StreamBatch pushes per-file status transitions over SSE until every file
// is terminal.
func (h *PhotosHandler) StreamBatch(c *gin.Context) {
	batchID := c.Param("batch_id")

	batch, ok := h.orchestrator.Batch(batchID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "batch not found"})
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case update, open := <-batch.Updates():
			if !open {
				c.SSEvent("done", models.BatchStatusResponse{
					BatchID: batch.ID,
					Done:    true,
					Files:   taskInfos(batch.Tasks()),
				})
				return false
			}
			c.SSEvent("status", update)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func taskInfos(tasks []uploader.Task) []models.UploadTaskInfo {
	infos := make([]models.UploadTaskInfo, len(tasks))
	for i, task := range tasks {
		infos[i] = models.UploadTaskInfo{
			TaskID:   task.ID,
			FileName: task.FileName,
			Status:   string(task.Status),
			Progress: task.Progress,
			Error:    task.Error,
		}
	}
	return infos
}
