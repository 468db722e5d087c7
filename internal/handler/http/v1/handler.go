package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/geo"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	hospitalService     service.HospitalService
	availabilityService service.AvailabilityService
	reservationService  service.ReservationService
	tripService         service.TripService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	hospitalService service.HospitalService,
	availabilityService service.AvailabilityService,
	reservationService service.ReservationService,
	tripService service.TripService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		hospitalService:     hospitalService,
		availabilityService: availabilityService,
		reservationService:  reservationService,
		tripService:         tripService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// errorStatus сопоставляет доменные ошибки с HTTP-статусами
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidBedType):
		return http.StatusBadRequest, "invalid bed type"
	case errors.Is(err, models.ErrInvalidHospitalType):
		return http.StatusBadRequest, "invalid hospital type"
	case errors.Is(err, models.ErrNegativeBedCount):
		return http.StatusBadRequest, "bed count must not be negative"
	case errors.Is(err, models.ErrEmptyUpdate):
		return http.StatusBadRequest, "nothing to update"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "hospital not found"
	case errors.Is(err, models.ErrLocationUnknown):
		return http.StatusUnprocessableEntity, "hospital location unknown"
	case errors.Is(err, models.ErrAdminHasHospital):
		return http.StatusConflict, "admin already owns a hospital"
	case errors.Is(err, models.ErrReservationInProgress):
		return http.StatusConflict, "reservation with this idempotency key is in progress"
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store unavailable"
	}
	return http.StatusInternalServerError, "internal server error"
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	code, body := errorStatus(err)
	if code >= http.StatusInternalServerError {
		log.WithError(err).Error(msg)
	} else {
		log.WithError(err).Warn(msg)
	}
	c.JSON(code, gin.H{"error": body})
}

func parseHospitalID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital ID"})
		return uuid.Nil, false
	}
	return id, true
}

// parseLocationQuery читает lat/lon; оба отсутствуют - nil без ошибки
func parseLocationQuery(c *gin.Context) (*models.Location, error) {
	latRaw, lonRaw := strings.TrimSpace(c.Query("lat")), strings.TrimSpace(c.Query("lon"))
	if latRaw == "" && lonRaw == "" {
		return nil, nil
	}
	lat, ok := parseCoordinate(latRaw, 90)
	if !ok {
		return nil, errors.New("invalid latitude")
	}
	lon, ok := parseCoordinate(lonRaw, 180)
	if !ok {
		return nil, errors.New("invalid longitude")
	}
	return &models.Location{Latitude: lat, Longitude: lon}, nil
}

// parseCoordinate принимает только конечное число в [-limit, limit]; NaN и Inf отклоняются
func parseCoordinate(raw string, limit float64) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, v >= -limit && v <= limit
}

// @Summary Search hospitals with free beds
// @Description List hospitals that have at least one free bed, ranked by distance from the user when coordinates are given.
// @Tags Hospitals
// @Produce json
// @Param lat query number false "User latitude"
// @Param lon query number false "User longitude"
// @Param search query string false "Case-insensitive match on name or address"
// @Param bedType query string false "Only hospitals with a free bed of this type" Enums(emergency, icu, delivery, general, pediatric)
// @Param distance query string false "Distance band" Enums(all, near, medium, far) default(all)
// @Param sort query string false "Sort key" Enums(distance, totalBeds, name) default(distance)
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /hospitals/available [get]
func (h *Handler) searchAvailable(c *gin.Context) {
	log := h.logger.WithField("method", "searchAvailable")

	origin, err := parseLocationQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := models.AvailabilityQuery{
		Origin: origin,
		Search: c.Query("search"),
	}
	if raw := c.Query("bedType"); raw != "" {
		if query.BedType, err = models.ParseBedType(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bed type"})
			return
		}
	}
	if query.Band, err = models.ParseDistanceBand(c.Query("distance")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if query.Sort, err = models.ParseSortKey(c.Query("sort")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.availabilityService.Search(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, log, err, "Failed to search hospitals")
		return
	}
	c.JSON(http.StatusOK, RowsToAvailabilityResponse(rows, origin != nil))
}

// @Summary Get hospital by ID
// @Description Get a single hospital with its current bed counts
// @Tags Hospitals
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /hospitals/{id} [get]
func (h *Handler) getHospital(c *gin.Context) {
	id, ok := parseHospitalID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getHospital").WithField("id", id)

	hospital, err := h.hospitalService.GetHospital(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "Failed to get hospital from service")
		return
	}
	if hospital == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hospital not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Reserve a bed
// @Description Atomically reserve one free bed of the given type. Send Idempotency-Key to retry safely.
// @Tags Reservations
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param Idempotency-Key header string false "Client key for safe retries"
// @Param reservation body ReserveBedRequest true "Reservation request"
// @Success 201 {object} ReservationResponse "Bed reserved"
// @Failure 400 {object} map[string]string "Invalid request or bed type"
// @Failure 409 {object} ReservationResponse "No free bed of this type"
// @Failure 429 "Too many requests"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /hospitals/{id}/reservations [post]
func (h *Handler) reserveBed(c *gin.Context) {
	id, ok := parseHospitalID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "reserveBed").WithField("id", id)

	var input ReserveBedRequest
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

	result, err := h.reservationService.ReserveBed(c.Request.Context(), models.ReservationRequest{
		HospitalID:     id,
		BedType:        input.BedType,
		PatientName:    input.PatientName,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		h.respondError(c, log, err, "Failed to reserve bed")
		return
	}

	if !result.Booked {
		c.JSON(http.StatusConflict, ModelToReservationResponse(result))
		return
	}
	c.JSON(http.StatusCreated, ModelToReservationResponse(result))
}

// @Summary Estimate a trip to the hospital
// @Description Distance, ETA and routing parameters from the given point to the hospital
// @Tags Hospitals
// @Produce json
// @Param id path string true "Hospital ID"
// @Param lat query number true "Start latitude"
// @Param lon query number true "Start longitude"
// @Param mode query string false "Transport mode" Enums(foot, bicycle, car) default(car)
// @Success 200 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 422 {object} map[string]string "Hospital location unknown"
// @Router /hospitals/{id}/trip [get]
func (h *Handler) estimateTrip(c *gin.Context) {
	id, ok := parseHospitalID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "estimateTrip").WithField("id", id)

	from, err := parseLocationQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if from == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	mode := geo.ParseTransportMode(c.Query("mode"))
	estimate, err := h.tripService.EstimateTripToHospital(c.Request.Context(), id, *from, mode)
	if err != nil {
		h.respondError(c, log, err, "Failed to estimate trip")
		return
	}
	c.JSON(http.StatusOK, ModelToTripResponse(id, estimate))
}

// @Summary Suggested facilities
// @Description Facility names offered to hospital admins
// @Tags Hospitals
// @Produce json
// @Success 200 {object} FacilitiesResponse
// @Router /facilities [get]
func (h *Handler) listFacilities(c *gin.Context) {
	c.JSON(http.StatusOK, FacilitiesResponse{Facilities: models.SuggestedFacilities})
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
