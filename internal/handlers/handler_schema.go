package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finconsulta/doc_ingest_app/internal/core/ports/services"
	"github.com/finconsulta/doc_ingest_app/internal/dto"
	"github.com/finconsulta/doc_ingest_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// schemaHandler handles HTTP requests related to data schemas.
type schemaHandler struct {
	schemaService portssvc.SchemaReaderSvc
}

// newSchemaHandler creates a new schemaHandler.
func newSchemaHandler(ss portssvc.SchemaReaderSvc) *schemaHandler {
	return &schemaHandler{schemaService: ss}
}

// registerSchemaRoutes registers routes related to data schemas.
func registerSchemaRoutes(rg *gin.RouterGroup, schemaService portssvc.SchemaReaderSvc) {
	h := newSchemaHandler(schemaService)

	schemas := rg.Group("/schemas")
	{
		schemas.GET("", h.listSchemas)
	}
}

// listSchemas godoc
// @Summary List data schemas
// @Description Retrieves the registered data schemas describing the expected fields per document type
// @Tags schemas
// @Produce  json
// @Success 200 {array} dto.SchemaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list schemas"
// @Security BearerAuth
// @Router /schemas [get]
func (h *schemaHandler) listSchemas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	schemas, err := h.schemaService.ListDataSchemas(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list data schemas", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schemas"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSchemaResponse(schemas))
}
