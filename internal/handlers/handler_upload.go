package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finconsulta/doc_ingest_app/internal/apperrors"
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portssvc "github.com/finconsulta/doc_ingest_app/internal/core/ports/services"
	"github.com/finconsulta/doc_ingest_app/internal/dto"
	"github.com/finconsulta/doc_ingest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// uploadHandler handles HTTP requests related to document uploads.
type uploadHandler struct {
	uploadService portssvc.UploadSvcFacade
	maxUploadSize int64
}

// newUploadHandler creates a new uploadHandler.
func newUploadHandler(us portssvc.UploadSvcFacade, maxUploadSize int64) *uploadHandler {
	return &uploadHandler{
		uploadService: us,
		maxUploadSize: maxUploadSize,
	}
}

// RegisterUploadRoutes registers routes related to uploads.
func RegisterUploadRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvcFacade, maxUploadSize int64) {
	h := newUploadHandler(uploadService, maxUploadSize)

	uploads := rg.Group("/uploads")
	{
		uploads.POST("", h.processUpload)
		uploads.POST("/preview", h.previewUpload)
		uploads.POST("/pending", h.createPendingUpload)
		uploads.POST("/:uploadID/process", h.processPendingUpload)
		uploads.GET("", h.listUploads)
		uploads.GET("/:uploadID", h.getUploadByID)
	}
}

// processUpload godoc
// @Summary Upload and process a document
// @Description Accepts a tabular document (csv, xls, xlsx, pdf), extracts and normalizes its rows, and stores the resulting financial records
// @Tags uploads
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Document to ingest"
// @Param   clientName formData string true "Client the document belongs to"
// @Param   documentType formData string true "Document type (invoices, expenses, bank_statements, cash_flow, production_sales, other)"
// @Success 201 {object} dto.ProcessResponse
// @Failure 400 {object} map[string]string "Unsupported format, empty document or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 500 {object} map[string]string "Failed to process upload"
// @Security BearerAuth
// @Router /uploads [post]
func (h *uploadHandler) processUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req, ok := h.bindFileRequest(c)
	if !ok {
		return
	}

	logger.Info("Received upload",
		slog.String("filename", req.Filename),
		slog.String("document_type", string(req.DocumentType)),
		slog.Int64("file_size", req.Size),
	)

	outcome, err := h.uploadService.ProcessAndStore(c.Request.Context(), req, userID)
	if err != nil {
		respondUploadError(c, logger, err)
		return
	}

	logger.Info("Upload processed",
		slog.String("upload_id", outcome.UploadID),
		slog.Int("record_count", outcome.RecordCount),
		slog.Int("coercion_fallbacks", outcome.CoercionStats.Total()),
	)
	c.JSON(http.StatusCreated, dto.ToProcessResponse(outcome))
}

// previewUpload godoc
// @Summary Preview a document extraction
// @Description Extracts and normalizes a document's rows without persisting anything
// @Tags uploads
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Document to preview"
// @Param   clientName formData string true "Client the document belongs to"
// @Param   documentType formData string true "Document type"
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} map[string]string "Unsupported format, empty document or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 500 {object} map[string]string "Failed to preview upload"
// @Security BearerAuth
// @Router /uploads/preview [post]
func (h *uploadHandler) previewUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, ok := h.bindFileRequest(c)
	if !ok {
		return
	}

	result, err := h.uploadService.Preview(c.Request.Context(), req)
	if err != nil {
		respondUploadError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PreviewResponse{
		Data:         result.Rows,
		FileName:     req.Filename,
		FileSize:     req.Size,
		FileType:     req.MIMEType,
		RecordCount:  result.RecordCount,
		ClientName:   req.ClientName,
		DocumentType: string(req.DocumentType),
	})
}

// createPendingUpload godoc
// @Summary Register an upload without processing it
// @Description Creates an upload in pending state; the file is submitted later through the process endpoint
// @Tags uploads
// @Accept  json
// @Produce  json
// @Param   upload body dto.CreateUploadRequest true "Upload metadata"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create upload"
// @Security BearerAuth
// @Router /uploads/pending [post]
func (h *uploadHandler) createPendingUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUpload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	upload, err := h.uploadService.CreateUpload(c.Request.Context(), req, userID)
	if err != nil {
		respondUploadError(c, logger, err)
		return
	}

	logger.Info("Pending upload created", slog.String("upload_id", upload.UploadID))
	c.JSON(http.StatusCreated, dto.ToUploadResponse(upload))
}

// processPendingUpload godoc
// @Summary Process a pending upload
// @Description Submits the file for a previously registered pending upload and runs the pipeline
// @Tags uploads
// @Accept  multipart/form-data
// @Produce  json
// @Param   uploadID path string true "Upload ID"
// @Param   file formData file true "Document to ingest"
// @Success 200 {object} dto.ProcessResponse
// @Failure 400 {object} map[string]string "Unsupported format, empty document or upload not pending"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Upload not found"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 500 {object} map[string]string "Failed to process upload"
// @Security BearerAuth
// @Router /uploads/{uploadID}/process [post]
func (h *uploadHandler) processPendingUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	uploadID := c.Param("uploadID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	content, _, ok := h.readMultipartFile(c)
	if !ok {
		return
	}

	outcome, err := h.uploadService.ProcessUpload(c.Request.Context(), uploadID, content, userID)
	if err != nil {
		respondUploadError(c, logger, err)
		return
	}

	logger.Info("Pending upload processed",
		slog.String("upload_id", outcome.UploadID),
		slog.Int("record_count", outcome.RecordCount),
	)
	c.JSON(http.StatusOK, dto.ToProcessResponse(outcome))
}

// listUploads godoc
// @Summary List uploads
// @Description Retrieves the authenticated user's uploads, most recent first
// @Tags uploads
// @Produce  json
// @Param   limit query int false "Page size (default 10, max 100)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {array} dto.UploadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list uploads"
// @Security BearerAuth
// @Router /uploads [get]
func (h *uploadHandler) listUploads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	uploads, err := h.uploadService.ListUploads(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list uploads", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list uploads"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUploadResponse(uploads))
}

// getUploadByID godoc
// @Summary Get an upload with its extracted data
// @Description Retrieves one upload together with its extraction result and financial records
// @Tags uploads
// @Produce  json
// @Param   uploadID path string true "Upload ID"
// @Success 200 {object} dto.UploadDetailResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Upload not found"
// @Failure 500 {object} map[string]string "Failed to get upload"
// @Security BearerAuth
// @Router /uploads/{uploadID} [get]
func (h *uploadHandler) getUploadByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	uploadID := c.Param("uploadID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.uploadService.GetUploadByID(c.Request.Context(), uploadID, userID)
	if err != nil {
		respondUploadError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUploadDetailResponse(detail))
}

// bindFileRequest reads the multipart form of a processing request. It
// responds and returns ok=false when the form is unusable.
func (h *uploadHandler) bindFileRequest(c *gin.Context) (dto.ProcessFileRequest, bool) {
	content, header, ok := h.readMultipartFile(c)
	if !ok {
		return dto.ProcessFileRequest{}, false
	}

	clientName := c.PostForm("clientName")
	documentType := c.PostForm("documentType")
	if clientName == "" || documentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientName and documentType form fields are required"})
		return dto.ProcessFileRequest{}, false
	}

	return dto.ProcessFileRequest{
		Filename:     header.filename,
		MIMEType:     header.mimeType,
		Size:         int64(len(content)),
		ClientName:   clientName,
		DocumentType: domain.DocumentType(documentType),
		Content:      content,
	}, true
}

type fileHeaderInfo struct {
	filename string
	mimeType string
}

// readMultipartFile pulls the "file" part out of the form, enforcing the
// configured size limit before buffering.
func (h *uploadHandler) readMultipartFile(c *gin.Context) ([]byte, fileHeaderInfo, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing file in multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return nil, fileHeaderInfo{}, false
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		logger.Warn("Upload exceeds size limit", slog.Int64("size", fileHeader.Size), slog.Int64("limit", h.maxUploadSize))
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the maximum upload size"})
		return nil, fileHeaderInfo{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return nil, fileHeaderInfo{}, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return nil, fileHeaderInfo{}, false
	}

	return content, fileHeaderInfo{
		filename: fileHeader.Filename,
		mimeType: fileHeader.Header.Get("Content-Type"),
	}, true
}

// respondUploadError maps service errors to HTTP statuses.
func respondUploadError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
	case errors.Is(err, apperrors.ErrUnsupportedFormat),
		errors.Is(err, apperrors.ErrEmptyDocument),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidTransition):
		logger.Warn("Upload rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Upload processing failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
	}
}
