package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
	"github.com/projectflow-simple/storage"
)

// FileController is the attachment gateway surface: metadata plus the
// (entityType, entityId) binding, with bytes delegated to the document
// store.
type FileController struct {
	service *services.FileService
}

// NewFileController creates a new file controller instance
func NewFileController(store *repositories.Store, docs storage.DocumentStore) *FileController {
	return &FileController{service: services.NewFileService(store, docs)}
}

// RegisterRoutes registers attachment endpoints.
func (ctl *FileController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/files")
	{
		group.GET("/:entityType/:entityId", ctl.Get)
		group.POST("/:entityType/:entityId", ctl.Upload)
		group.DELETE("/:entityType/:entityId", ctl.Delete)
	}
}

// Get returns one attachment when the fileId query parameter is given,
// otherwise the list bound to (entityType, entityId). No attachments
// is an empty list, not a 404.
func (ctl *FileController) Get(c *gin.Context) {
	entityType, err := services.ParseEntityType(c.Param("entityType"))
	if err != nil {
		respondError(c, err)
		return
	}
	entityID := c.Param("entityId")

	if fileID := c.Query("fileId"); fileID != "" {
		file, err := ctl.service.GetAttachment(fileID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, file)
		return
	}

	files, err := ctl.service.ListAttachments(entityType, entityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// Upload accepts one binary payload, multipart ("file" field) or raw
// body with a fileName query parameter, and answers 201 with the
// created attachment metadata.
func (ctl *FileController) Upload(c *gin.Context) {
	entityType, err := services.ParseEntityType(c.Param("entityType"))
	if err != nil {
		respondError(c, err)
		return
	}
	entityID := c.Param("entityId")

	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer f.Close()

		file, err := ctl.service.Upload(c.Request.Context(), entityType, entityID,
			fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, file)
		return
	}

	fileName := c.Query("fileName")
	if fileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	file, err := ctl.service.Upload(c.Request.Context(), entityType, entityID,
		fileName, c.ContentType(), c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

// Delete removes one attachment by the fileId query parameter.
func (ctl *FileController) Delete(c *gin.Context) {
	if _, err := services.ParseEntityType(c.Param("entityType")); err != nil {
		respondError(c, err)
		return
	}

	fileID := c.Query("fileId")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File ID is required"})
		return
	}

	if err := ctl.service.DeleteAttachment(c.Request.Context(), fileID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
