package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unischedule/internal/app/controllers"
	"github.com/yigit/unischedule/internal/app/models"
	"github.com/yigit/unischedule/internal/app/routes"
	"github.com/yigit/unischedule/internal/app/services"
	"github.com/yigit/unischedule/internal/middleware"
)

type fakeProfessorService struct {
	report   *models.WorkloadReport
	schedule []*models.ProfessorScheduleEntry
	err      error
	gotID    int64
}

func (f *fakeProfessorService) GetWorkload(ctx context.Context) (*models.WorkloadReport, error) {
	return f.report, f.err
}

func (f *fakeProfessorService) GetSchedule(ctx context.Context, professorID int64) ([]*models.ProfessorScheduleEntry, error) {
	f.gotID = professorID
	return f.schedule, f.err
}

type fakeRoomStore struct {
	occupancy []*models.RoomOccupancy
	available []*models.AvailableRoom
	err       error
	query     *models.AvailabilityQuery
}

func (f *fakeRoomStore) GetOccupancy(ctx context.Context) ([]*models.RoomOccupancy, error) {
	return f.occupancy, f.err
}

func (f *fakeRoomStore) GetAvailable(ctx context.Context, q models.AvailabilityQuery) ([]*models.AvailableRoom, error) {
	f.query = &q
	return f.available, f.err
}

func newRouter(profs services.ProfessorService, rooms *fakeRoomStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.RegisterTagNames()

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewProfessorController(profs),
		controllers.NewRoomController(services.NewRoomService(rooms)),
		controllers.NewHealthController(),
	)
	return router
}

func get(t *testing.T, router *gin.Engine, target string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func TestHealth(t *testing.T) {
	code, body := get(t, newRouter(&fakeProfessorService{}, &fakeRoomStore{}), "/api/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, controllers.HealthMessage, body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestWorkload(t *testing.T) {
	profs := &fakeProfessorService{report: &models.WorkloadReport{
		Professors: []*models.ProfessorWorkload{
			{ProfessorID: 1, ProfessorName: "Prof. Dr. Joao Silva", TotalHoursPerWeek: 7, TotalClasses: 2},
			{ProfessorID: 6, ProfessorName: "Prof. Esp. Lucia Ferreira"},
		},
		Summary: models.WorkloadSummary{TotalProfessors: 2, AverageHours: 3.5},
	}}

	code, body := get(t, newRouter(profs, &fakeRoomStore{}), "/api/professors/workload")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(7), first["total_hours_per_week"])
	assert.Equal(t, float64(2), first["total_classes"])

	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, float64(2), summary["total_professors"])
	assert.Equal(t, 3.5, summary["average_hours"])
}

func TestWorkloadEmptyList(t *testing.T) {
	profs := &fakeProfessorService{report: &models.WorkloadReport{Professors: []*models.ProfessorWorkload{}}}

	code, body := get(t, newRouter(profs, &fakeRoomStore{}), "/api/professors/workload")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, float64(0), body["summary"].(map[string]interface{})["average_hours"])
}

func TestWorkloadDatabaseError(t *testing.T) {
	profs := &fakeProfessorService{err: fmt.Errorf("error retrieving professor workload: %w", errors.New("relation \"professor\" does not exist"))}

	code, body := get(t, newRouter(profs, &fakeRoomStore{}), "/api/professors/workload")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "does not exist")
}

func TestProfessorSchedule(t *testing.T) {
	profs := &fakeProfessorService{schedule: []*models.ProfessorScheduleEntry{
		{ProfessorID: 1, SubjectName: "Algorithms I", DayOfWeek: models.Tuesday, DayName: "Tuesday"},
	}}

	code, body := get(t, newRouter(profs, &fakeRoomStore{}), "/api/professors/1/schedule")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), profs.gotID)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Tuesday", data[0].(map[string]interface{})["day_name"])
}

func TestProfessorScheduleInvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-2"} {
		profs := &fakeProfessorService{}
		code, body := get(t, newRouter(profs, &fakeRoomStore{}), "/api/professors/"+id+"/schedule")
		assert.Equal(t, http.StatusBadRequest, code, id)
		assert.Equal(t, "invalid professor ID", body["error"], id)
		assert.Zero(t, profs.gotID, id)
	}
}

func TestOccupancy(t *testing.T) {
	day := models.Tuesday
	start, end, subject, code := "08:00:00", "10:00:00", "Algorithms I", "ALG001-T01"
	rooms := &fakeRoomStore{occupancy: []*models.RoomOccupancy{
		{RoomID: 1, RoomNumber: "101", BuildingName: "Central Building", DayOfWeek: &day, StartTime: &start, EndTime: &end, SubjectName: &subject, ClassCode: &code, Status: models.SlotOccupied},
		{RoomID: 9, RoomNumber: "Aud-02", BuildingName: "Library", Status: models.SlotFree},
	}}

	status, body := get(t, newRouter(&fakeProfessorService{}, rooms), "/api/rooms/occupancy")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "OCCUPIED", data[0].(map[string]interface{})["status"])
	freeRow := data[1].(map[string]interface{})
	assert.Equal(t, "FREE", freeRow["status"])
	assert.Nil(t, freeRow["day_of_week"])
	assert.Nil(t, freeRow["start_time"])
}

func TestAnalysisAndSchedule(t *testing.T) {
	day := models.Monday
	start, end, subject, code := "08:00:00", "10:00:00", "Algorithms I", "ALG001-T01"
	rooms := &fakeRoomStore{occupancy: []*models.RoomOccupancy{
		{RoomID: 1, RoomNumber: "101", BuildingName: "Central Building", DayOfWeek: &day, StartTime: &start, EndTime: &end, SubjectName: &subject, ClassCode: &code, Status: models.SlotOccupied},
		{RoomID: 9, RoomNumber: "Aud-02", BuildingName: "Library", Status: models.SlotFree},
	}}
	router := newRouter(&fakeProfessorService{}, rooms)

	status, body := get(t, router, "/api/rooms/analysis")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Central Building", first["building"])
	assert.Equal(t, 3.33, first["occupancy_rate"])
	entry := first["schedule"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Monday", entry["day_of_week"])
	assert.Equal(t, "ALG001-T01", entry["class_code"])
	assert.Equal(t, []interface{}{}, data[1].(map[string]interface{})["schedule"])

	status, body = get(t, router, "/api/rooms/schedule")
	require.Equal(t, http.StatusOK, status)
	data = body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "101", data[0].(map[string]interface{})["room_number"])
	assert.NotContains(t, data[0].(map[string]interface{}), "occupancy_rate")
}

func TestAvailable(t *testing.T) {
	rooms := &fakeRoomStore{available: []*models.AvailableRoom{
		{RoomID: 2, RoomNumber: "102", BuildingName: "Central Building"},
	}}

	status, body := get(t, newRouter(&fakeProfessorService{}, rooms), "/api/rooms/available?day_of_week=2&start_time=09:00&end_time=09:30")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, rooms.query)
	assert.Equal(t, "09:00:00", rooms.query.StartTime)

	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "102", data[0].(map[string]interface{})["room_number"])

	params := body["query_parameters"].(map[string]interface{})
	assert.Equal(t, "2", params["day_of_week"])
	assert.Equal(t, "09:00", params["start_time"])
	assert.Equal(t, "09:30", params["end_time"])
}

func TestAvailableMissingParameters(t *testing.T) {
	rooms := &fakeRoomStore{}

	status, body := get(t, newRouter(&fakeProfessorService{}, rooms), "/api/rooms/available?day_of_week=2&start_time=09:00")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Required parameters: day_of_week, start_time, end_time", body["error"])
	assert.Equal(t, "end_time is required", body["details"].(map[string]interface{})["end_time"])
	assert.Nil(t, rooms.query)
}

func TestAvailableMalformedParameters(t *testing.T) {
	for _, q := range []string{
		"day_of_week=9&start_time=09:00&end_time=10:00",
		"day_of_week=2&start_time=nine&end_time=10:00",
	} {
		rooms := &fakeRoomStore{}
		status, body := get(t, newRouter(&fakeProfessorService{}, rooms), "/api/rooms/available?"+q)
		assert.Equal(t, http.StatusBadRequest, status, q)
		assert.Equal(t, false, body["success"], q)
		assert.Nil(t, rooms.query, q)
	}
}

func TestAvailableDatabaseError(t *testing.T) {
	rooms := &fakeRoomStore{err: errors.New("connection refused")}

	status, body := get(t, newRouter(&fakeProfessorService{}, rooms), "/api/rooms/available?day_of_week=1&start_time=08:00&end_time=09:00")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error retrieving available rooms: connection refused", body["error"])
}
