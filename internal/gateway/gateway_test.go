package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"class-scheduling/internal/model"

	"github.com/stretchr/testify/assert"
)

const datasetPayload = `{
	"rooms": [{"id": 1, "roomCapacity": 30, "roomType": "Kelas"}],
	"lecturers": [{"id": 7}],
	"classLecturers": [
		{
			"id": 11,
			"classId": 4,
			"primaryLecturerId": 7,
			"class": {
				"id": 4,
				"classCapacity": 20,
				"studyProgramClassId": 2,
				"subSubject": {
					"id": 9,
					"subjectTypeId": 1,
					"subject": {"id": 5, "subjectCategory": "W", "semesterId": 3}
				}
			}
		}
	],
	"scheduleDays": [{"id": 1, "day": "Senin"}],
	"scheduleSessions": [{"id": 1, "session": 1}]
}`

func testParams() FetchParams {
	return FetchParams{DepartmentID: 1, CurriculumID: 2, SemesterTypeID: 3, AcademicPeriodID: 4}
}

func TestFetchDataset(t *testing.T) {
	// Arrange
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		w.Write([]byte(datasetPayload))
	}))
	defer server.Close()

	gw := New(server.Client(), server.URL, "", time.Minute)

	// Act
	input, err := gw.FetchDataset(context.Background(), testParams())

	// Assert
	assert.Nil(t, err)
	assert.Len(t, input.Rooms, 1)
	assert.Len(t, input.ClassLecturers, 1)
	assert.Len(t, queries, 1)
	assert.Equal(t, "academicPeriodId=4&curriculumId=2&departmentId=1&semesterTypeId=3", queries[0])
}

func TestFetchDatasetCachesPerParams(t *testing.T) {
	// Arrange
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(datasetPayload))
	}))
	defer server.Close()

	gw := New(server.Client(), server.URL, "", time.Minute)

	// Act: same params twice, then a different period
	_, err := gw.FetchDataset(context.Background(), testParams())
	assert.Nil(t, err)
	_, err = gw.FetchDataset(context.Background(), testParams())
	assert.Nil(t, err)

	other := testParams()
	other.AcademicPeriodID = 9
	_, err = gw.FetchDataset(context.Background(), other)
	assert.Nil(t, err)

	// Assert
	assert.Equal(t, 2, hits)
}

func TestFetchDatasetUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := New(server.Client(), server.URL, "", time.Minute)

	_, err := gw.FetchDataset(context.Background(), testParams())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchDatasetMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rooms": []}`))
	}))
	defer server.Close()

	gw := New(server.Client(), server.URL, "", time.Minute)

	_, err := gw.FetchDataset(context.Background(), testParams())

	assert.ErrorIs(t, err, model.ErrMalformedInput)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestPostSchedules(t *testing.T) {
	// Arrange
	var received []model.Schedule
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	gw := New(server.Client(), "", server.URL, time.Minute)
	schedules := []model.Schedule{{ClassLecturerID: 11, RoomID: 1, ScheduleDayID: 1, ScheduleSessionID: 1}}

	// Act
	err := gw.PostSchedules(context.Background(), schedules)

	// Assert: records travel with an explicit null id
	assert.Nil(t, err)
	assert.Len(t, received, 1)
	assert.Nil(t, received[0].ID)
	assert.Equal(t, uint64(11), received[0].ClassLecturerID)
}

func TestPostSchedulesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := New(server.Client(), "", server.URL, time.Minute)

	err := gw.PostSchedules(context.Background(), nil)

	assert.ErrorIs(t, err, ErrUnavailable)
}
