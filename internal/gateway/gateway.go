package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"class-scheduling/internal/model"

	"github.com/patrickmn/go-cache"
)

// ErrUnavailable marks a failed exchange with the main service: connection
// trouble or a non-2xx response.
var ErrUnavailable = errors.New("main service unavailable")

// FetchParams scope one dataset request to a department's curriculum in a
// given academic period.
type FetchParams struct {
	DepartmentID     uint64
	CurriculumID     uint64
	SemesterTypeID   uint64
	AcademicPeriodID uint64
}

func (params FetchParams) query() url.Values {
	values := url.Values{}
	values.Set("departmentId", strconv.FormatUint(params.DepartmentID, 10))
	values.Set("curriculumId", strconv.FormatUint(params.CurriculumID, 10))
	values.Set("semesterTypeId", strconv.FormatUint(params.SemesterTypeID, 10))
	values.Set("academicPeriodId", strconv.FormatUint(params.AcademicPeriodID, 10))
	return values
}

func (params FetchParams) cacheKey() string {
	return params.query().Encode()
}

// Gateway is the scheduler's only external collaborator: it pulls raw
// datasets from the main academic service and pushes finished timetables
// back.
type Gateway interface {
	FetchDataset(ctx context.Context, params FetchParams) (model.RawDataset, error)
	PostSchedules(ctx context.Context, schedules []model.Schedule) error
}

type httpGateway struct {
	client   *http.Client
	getURL   string
	postURL  string
	datasets *cache.Cache
	ttl      time.Duration
}

// New builds a Gateway against the main service's dataset and schedule
// endpoints. Fetched datasets are cached per parameter set for ttl, so
// repeated solve attempts against the same period skip the round trip.
func New(client *http.Client, getURL, postURL string, ttl time.Duration) Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpGateway{
		client:   client,
		getURL:   getURL,
		postURL:  postURL,
		datasets: cache.New(ttl, 2*ttl),
		ttl:      ttl,
	}
}

func (gateway *httpGateway) FetchDataset(ctx context.Context, params FetchParams) (model.RawDataset, error) {
	if cached, found := gateway.datasets.Get(params.cacheKey()); found {
		return cached.(model.RawDataset), nil
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, gateway.getURL, nil)
	if err != nil {
		return model.RawDataset{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	request.URL.RawQuery = params.query().Encode()

	response, err := gateway.client.Do(request)
	if err != nil {
		return model.RawDataset{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return model.RawDataset{}, fmt.Errorf("%w: dataset request returned %v", ErrUnavailable, response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return model.RawDataset{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	input, err := model.InputFromJSON(body)
	if err != nil {
		return model.RawDataset{}, err
	}

	gateway.datasets.Set(params.cacheKey(), input, gateway.ttl)
	return input, nil
}

func (gateway *httpGateway) PostSchedules(ctx context.Context, schedules []model.Schedule) error {
	payload, err := json.Marshal(schedules)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, gateway.postURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := gateway.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%w: schedule upload returned %v", ErrUnavailable, response.Status)
	}
	return nil
}
