package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"class-scheduling/internal/gateway"
	"class-scheduling/internal/model"

	"github.com/gin-gonic/gin"
)

// Archiver persists generated timetables outside the request path. Failures
// never fail the request.
type Archiver interface {
	StoreSchedules(ctx context.Context, params gateway.FetchParams, schedules []model.Schedule) (string, error)
}

type ScheduleHandler struct {
	scheduler    model.Scheduler
	normalizer   model.Normalizer
	gateway      gateway.Gateway
	archive      Archiver // nil disables archiving
	solveTimeout time.Duration
}

func NewScheduleHandler(scheduler model.Scheduler, gw gateway.Gateway, archive Archiver, solveTimeout time.Duration) *ScheduleHandler {
	return &ScheduleHandler{
		scheduler:    scheduler,
		normalizer:   model.NewNormalizer(),
		gateway:      gw,
		archive:      archive,
		solveTimeout: solveTimeout,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// GenerateSchedule runs one full scheduling round: fetch the dataset for the
// requested academic period, solve, post the timetable back and archive it.
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	params, err := fetchParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid query parameters",
			Message: err.Error(),
		})
		return
	}

	input, err := h.gateway.FetchDataset(c.Request.Context(), params)
	if err != nil {
		h.renderInputError(c, err)
		return
	}

	data, err := h.normalizer.Normalize(input)
	if err != nil {
		h.renderInputError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.solveTimeout)
	defer cancel()

	schedules, err := h.scheduler.Schedule(ctx, data)
	if err != nil {
		h.renderSolveError(c, err)
		return
	}

	if err := h.gateway.PostSchedules(c.Request.Context(), schedules); err != nil {
		c.JSON(http.StatusBadGateway, errorResponse{
			Error:   "failed to post schedules",
			Message: err.Error(),
		})
		return
	}

	if h.archive != nil {
		if object, err := h.archive.StoreSchedules(c.Request.Context(), params, schedules); err != nil {
			log.Printf("schedule archiving failed: %v", err)
		} else {
			log.Printf("schedule archived as %v", object)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Schedules generated and posted successfully",
		"schedules": len(schedules),
	})
}

func (h *ScheduleHandler) renderInputError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrMalformedInput):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error:   "malformed dataset",
			Message: err.Error(),
		})
	case errors.Is(err, gateway.ErrUnavailable):
		c.JSON(http.StatusBadGateway, errorResponse{
			Error:   "failed to fetch data",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "failed to prepare dataset",
			Message: err.Error(),
		})
	}
}

func (h *ScheduleHandler) renderSolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInfeasibleModel):
		c.JSON(http.StatusConflict, errorResponse{
			Error:   "no feasible timetable for this dataset",
			Message: err.Error(),
		})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, errorResponse{
			Error:   "solve timed out",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "failed to generate schedules",
			Message: err.Error(),
		})
	}
}

func fetchParams(c *gin.Context) (gateway.FetchParams, error) {
	departmentID, err := queryID(c, "departmentId")
	if err != nil {
		return gateway.FetchParams{}, err
	}
	curriculumID, err := queryID(c, "curriculumId")
	if err != nil {
		return gateway.FetchParams{}, err
	}
	semesterTypeID, err := queryID(c, "semesterTypeId")
	if err != nil {
		return gateway.FetchParams{}, err
	}
	academicPeriodID, err := queryID(c, "academicPeriodId")
	if err != nil {
		return gateway.FetchParams{}, err
	}

	return gateway.FetchParams{
		DepartmentID:     departmentID,
		CurriculumID:     curriculumID,
		SemesterTypeID:   semesterTypeID,
		AcademicPeriodID: academicPeriodID,
	}, nil
}

func queryID(c *gin.Context, name string) (uint64, error) {
	value, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0, errors.New(name + " must be a positive integer")
	}
	return value, nil
}
