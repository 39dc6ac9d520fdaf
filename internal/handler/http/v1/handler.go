package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/shenikar/venue_prompt_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	engine     service.VenueEngine
	exclusions service.ExclusionManager
	prompts    service.PromptHistory
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

func NewHandler(engine service.VenueEngine, exclusions service.ExclusionManager, prompts service.PromptHistory, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		engine:     engine,
		exclusions: exclusions,
		prompts:    prompts,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// @Summary Ingest a position sample
// @Description Feed a single position sample into the dwell detector. Requires API key.
// @Tags Positions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sample body PositionSampleRequest true "Position sample"
// @Success 202 {object} map[string]string "Sample accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Monitoring is stopped"
// @Router /positions [post]
func (h *Handler) ingestPosition(c *gin.Context) {
	var input PositionSampleRequest
	log := h.logger.WithField("method", "ingestPosition")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.engine.Ingest(DTOToPositionSample(input)); err != nil {
		log.WithError(err).Warn("Sample rejected by engine")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// @Summary Evaluate a coordinate immediately
// @Description Run the full notification policy for a coordinate, bypassing dwell detection. Requires API key.
// @Tags Evaluation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param coordinate body EvaluateRequest true "Coordinate to evaluate"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /evaluate [post]
func (h *Handler) evaluateNow(c *gin.Context) {
	var input EvaluateRequest
	log := h.logger.WithField("method", "evaluateNow")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coord := models.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	outcome := h.engine.EvaluateNow(c.Request.Context(), coord)
	c.JSON(http.StatusOK, EvaluateResponse{Outcome: string(outcome)})
}

// @Summary Start monitoring
// @Description Resume processing of incoming position samples. Requires API key.
// @Tags Monitoring
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /monitoring/start [post]
func (h *Handler) startMonitoring(c *gin.Context) {
	h.engine.SetMonitoring(true)
	c.JSON(http.StatusOK, gin.H{"monitoring": true})
}

// @Summary Stop monitoring
// @Description Stop processing of incoming position samples and clear dwell state. Requires API key.
// @Tags Monitoring
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /monitoring/stop [post]
func (h *Handler) stopMonitoring(c *gin.Context) {
	h.engine.SetMonitoring(false)
	c.JSON(http.StatusOK, gin.H{"monitoring": false})
}

// @Summary Get monitoring status
// @Description Get the current monitoring and dwell state. Requires API key.
// @Tags Monitoring
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MonitoringStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /monitoring/status [get]
func (h *Handler) monitoringStatus(c *gin.Context) {
	resp := MonitoringStatusResponse{Monitoring: h.engine.Monitoring()}
	if dwelling, since := h.engine.Dwelling(); dwelling {
		resp.Dwelling = true
		resp.DwellStart = &since
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create an exclusion zone
// @Description Register a zone where no venue prompts are ever sent. Requires API key.
// @Tags Exclusions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body CreateExclusionRequest true "Exclusion zone creation request"
// @Success 201 {object} ExclusionZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /exclusions [post]
func (h *Handler) createExclusion(c *gin.Context) {
	var input CreateExclusionRequest
	log := h.logger.WithField("method", "createExclusion")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	center := models.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	zone, err := h.exclusions.Add(c.Request.Context(), input.Name, center)
	if err != nil {
		log.WithError(err).Error("Failed to add exclusion zone")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToExclusionResponse(zone))
}

// @Summary List exclusion zones
// @Description Get all registered exclusion zones. Requires API key.
// @Tags Exclusions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ExclusionZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /exclusions [get]
func (h *Handler) listExclusions(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToExclusionResponses(h.exclusions.List()))
}

// @Summary Delete an exclusion zone
// @Description Remove an exclusion zone by its ID. Requires API key.
// @Tags Exclusions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Exclusion zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid exclusion zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Exclusion zone not found"
// @Router /exclusions/{id} [delete]
func (h *Handler) deleteExclusion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exclusion zone ID"})
		return
	}
	log := h.logger.WithField("method", "deleteExclusion").WithField("id", id)

	if err := h.exclusions.Remove(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to remove exclusion zone")
		c.JSON(http.StatusNotFound, gin.H{"error": "exclusion zone not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get sent prompt history
// @Description Get a paginated list of sent venue prompts. Requires API key.
// @Tags Prompts
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} PromptResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /prompts [get]
func (h *Handler) listPrompts(c *gin.Context) {
	log := h.logger.WithField("method", "listPrompts")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	records, err := h.prompts.List(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list prompts from repository")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToPromptResponses(records))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
