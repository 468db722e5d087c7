package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/sirupsen/logrus"
)

// ownedHospital загружает больницу и проверяет, что ею управляет текущий администратор
func (h *Handler) ownedHospital(c *gin.Context, log *logrus.Entry, id uuid.UUID) (*models.Hospital, bool) {
	hospital, err := h.hospitalService.GetHospital(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "Failed to get hospital from service")
		return nil, false
	}
	if hospital == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hospital not found"})
		return nil, false
	}
	if hospital.AdminID != adminID(c) {
		log.Warn("Admin tried to modify a hospital they do not own")
		c.JSON(http.StatusForbidden, gin.H{"error": "hospital belongs to another admin"})
		return nil, false
	}
	return hospital, true
}

// @Summary Register a hospital
// @Description Create the hospital managed by the calling admin. One hospital per admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Admin-ID header string true "Admin identity"
// @Param hospital body CreateHospitalRequest true "Hospital creation request"
// @Success 201 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Admin already owns a hospital"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /admin/hospitals [post]
func (h *Handler) createHospital(c *gin.Context) {
	var input CreateHospitalRequest
	log := h.logger.WithField("method", "createHospital").WithField("admin_id", adminID(c))

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

	model := DTOToHospitalModel(input)
	if err := h.hospitalService.CreateHospital(c.Request.Context(), model, adminID(c)); err != nil {
		h.respondError(c, log, err, "Failed to create hospital in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToHospitalResponse(model))
}

// @Summary Get own hospital
// @Description Get the hospital managed by the calling admin
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param X-Admin-ID header string true "Admin identity"
// @Success 200 {object} HospitalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Admin has no hospital"
// @Router /admin/hospitals/me [get]
func (h *Handler) getOwnHospital(c *gin.Context) {
	log := h.logger.WithField("method", "getOwnHospital").WithField("admin_id", adminID(c))

	hospital, err := h.hospitalService.GetHospitalByOwner(c.Request.Context(), adminID(c))
	if err != nil {
		h.respondError(c, log, err, "Failed to get hospital by owner")
		return
	}
	if hospital == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hospital not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Update hospital details
// @Description Partially update descriptive fields, location or facilities. Absent fields stay unchanged.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Admin-ID header string true "Admin identity"
// @Param id path string true "Hospital ID"
// @Param hospital body UpdateHospitalRequest true "Hospital update request"
// @Success 200 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid hospital ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Hospital belongs to another admin"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /admin/hospitals/{id} [patch]
func (h *Handler) updateHospital(c *gin.Context) {
	id, ok := parseHospitalID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateHospital").WithField("id", id)

	var input UpdateHospitalRequest
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
	patch := DTOToHospitalPatch(input)
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	if _, ok := h.ownedHospital(c, log, id); !ok {
		return
	}

	hospital, err := h.hospitalService.UpdateHospital(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, log, err, "Failed to update hospital in service")
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Update bed availability
// @Description Overwrite free bed counts for the given types and return the refreshed hospital
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Admin-ID header string true "Admin identity"
// @Param id path string true "Hospital ID"
// @Param beds body UpdateBedsRequest true "New bed counts"
// @Success 200 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Unknown bed type or negative count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Hospital belongs to another admin"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /admin/hospitals/{id}/beds [put]
func (h *Handler) updateBeds(c *gin.Context) {
	id, ok := parseHospitalID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateBeds").WithField("id", id)

	var input UpdateBedsRequest
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

	if _, ok := h.ownedHospital(c, log, id); !ok {
		return
	}

	hospital, err := h.hospitalService.UpdateBeds(c.Request.Context(), id, bedsToModel(input.Beds))
	if err != nil {
		h.respondError(c, log, err, "Failed to update beds in service")
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Delete a hospital
// @Description Delete the hospital managed by the calling admin
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param X-Admin-ID header string true "Admin identity"
// @Param id path string true "Hospital ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Hospital belongs to another admin"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /admin/hospitals/{id} [delete]
func (h *Handler) deleteHospital(c *gin.Context) {
	id, ok := parseHospitalID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteHospital").WithField("id", id)

	if _, ok := h.ownedHospital(c, log, id); !ok {
		return
	}

	if err := h.hospitalService.DeleteHospital(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "Failed to delete hospital in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get reservation statistics
// @Description Number of reservations in the configured time window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param X-Admin-ID header string true "Admin identity"
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /admin/reservations/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.reservationService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "Failed to get stats from service")
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		ReservationCount: count,
		WindowMinutes:    h.cfg.StatsTimeWindowMinutes,
	})
}
