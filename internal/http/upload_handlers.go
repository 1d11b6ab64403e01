package http

import (
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Images referenced by a project's imageURL are stored as objects; the upload
// endpoints are the admin dashboard's way of getting them there.
const maxUploadSize = 10 << 20 // matches the 10mb body limit of the edge

type UploadResponse struct {
	Key          string  `json:"key"`
	Size         int64   `json:"size"`
	LastModified *string `json:"lastModified,omitempty"`
}

func (h *Handler) storageReady(c *gin.Context) bool {
	if h.storage == nil || h.opts.Bucket == "" {
		fail(c, http.StatusInternalServerError, "storage service not configured")
		return false
	}
	return true
}

func (h *Handler) uploadImage(c *gin.Context) {
	if !h.storageReady(c) {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "Please attach an image file under the 'image' field")
		return
	}
	if fileHeader.Size > maxUploadSize {
		fail(c, http.StatusBadRequest, "Image cannot exceed 10 MB")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		fail(c, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.serverError(c, "Server Error", err)
		return
	}
	defer file.Close()

	key := fmt.Sprintf("%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if prefix := strings.Trim(h.opts.KeyPrefix, "/"); prefix != "" {
		key = path.Join(prefix, key)
	}

	location, err := h.storage.UploadObject(c.Request.Context(), h.opts.Bucket, key, contentType, file)
	if err != nil {
		h.serverError(c, "Server Error", err)
		return
	}

	url, err := h.objectURL(c, key)
	if err != nil {
		h.serverError(c, "Server Error", err)
		return
	}

	h.logger.WithField("key", key).Info("image uploaded")
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"data": gin.H{
			"key":      key,
			"location": location,
			"url":      url,
		},
	})
}

func (h *Handler) listUploads(c *gin.Context) {
	if !h.storageReady(c) {
		return
	}

	objects, err := h.storage.ListObjects(c.Request.Context(), h.opts.Bucket, strings.Trim(h.opts.KeyPrefix, "/"))
	if err != nil {
		h.serverError(c, "Server Error", err)
		return
	}

	resp := make([]UploadResponse, len(objects))
	for i, obj := range objects {
		resp[i] = UploadResponse{
			Key:  obj.Key,
			Size: obj.Size,
		}
		if obj.LastModified != nil && !obj.LastModified.IsZero() {
			v := obj.LastModified.Format(time.RFC3339)
			resp[i].LastModified = &v
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(resp),
		"data":    resp,
	})
}

func (h *Handler) deleteUpload(c *gin.Context) {
	if !h.storageReady(c) {
		return
	}

	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		fail(c, http.StatusBadRequest, "Object key is required")
		return
	}

	if err := h.storage.DeleteObject(c.Request.Context(), h.opts.Bucket, key); err != nil {
		h.serverError(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Object deleted successfully",
		"data":    gin.H{"key": key},
	})
}

// objectURL prefers the configured public base (CDN or public bucket); without
// one it falls back to a presigned link.
func (h *Handler) objectURL(c *gin.Context, key string) (string, error) {
	if base := strings.TrimRight(h.opts.PublicBaseURL, "/"); base != "" {
		return base + "/" + key, nil
	}
	return h.storage.GetObjectURL(c.Request.Context(), h.opts.Bucket, key, 24*time.Hour)
}
