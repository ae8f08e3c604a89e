package backendstub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
	_ "fireguard.xyz/fireguard-console/pkg/testing"
)

func setupTestStub(t *testing.T) *StubServer {
	common.SetTestLoggerNop()

	store := GetStore(UseMemorySqliteDialector())
	// the store is a singleton shared across tests; start each from clean
	require.NoError(t, store.Conn.Exec("DELETE FROM events").Error)
	require.NoError(t, store.Conn.Exec("DELETE FROM settings").Error)

	s := NewStubServer(gin.Default(), store)
	s.Setup()
	return s
}

func doJSON(s *StubServer, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Server.ServeHTTP(w, req)
	return w
}

func injectEvent(t *testing.T, s *StubServer, eventType string, confidence float64) string {
	snapshot := fmt.Sprintf("/snapshots/%s.jpg", uuid.NewString())
	w := doJSON(s, "POST", "/events", gin.H{
		"type":          eventType,
		"confidence":    confidence,
		"snapshot_path": snapshot,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return snapshot
}

func TestHealthCheck(t *testing.T) {
	s := setupTestStub(t)

	w := doJSON(s, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestInjectAndListAlerts(t *testing.T) {
	s := setupTestStub(t)

	injectEvent(t, s, "fire", 0.9)
	smokeSnapshot := injectEvent(t, s, "smoke", 0.7)

	w := doJSON(s, "GET", "/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Alerts []models.Alert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Alerts, 2)

	// newest first
	assert.Equal(t, models.AlertTypeSmoke, payload.Alerts[0].Type)
	assert.Equal(t, models.AlertTypeFire, payload.Alerts[1].Type)
	assert.Equal(t, smokeSnapshot, payload.Alerts[0].Snapshot)
}

func TestInjectEventValidation(t *testing.T) {
	s := setupTestStub(t)

	w := doJSON(s, "POST", "/events", gin.H{"type": "fire", "confidence": 1.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(s, "POST", "/events", gin.H{"confidence": 0.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryHonorsLimit(t *testing.T) {
	s := setupTestStub(t)

	for i := 0; i < 5; i++ {
		injectEvent(t, s, "fire", 0.6+float64(i)/100)
	}

	w := doJSON(s, "GET", "/history?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Events []models.HistoryEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Len(t, payload.Events, 3)

	w = doJSON(s, "GET", "/history?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCameraLifecycle(t *testing.T) {
	s := setupTestStub(t)

	// registry starts with the default camera
	w := doJSON(s, "GET", "/cameras", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Cameras []models.Camera `json:"cameras"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Cameras, 1)
	assert.Equal(t, models.DefaultCameraID, payload.Cameras[0].ID)

	w = doJSON(s, "POST", "/cameras", gin.H{"source": "rtsp://garage", "name": "Garage"})
	require.Equal(t, http.StatusOK, w.Code)

	var added struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.Equal(t, 1, added.ID)

	w = doJSON(s, "DELETE", fmt.Sprintf("/cameras/%d", added.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, "DELETE", fmt.Sprintf("/cameras/%d", added.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(s, "POST", "/cameras", gin.H{"name": "No Source"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVideoFeed(t *testing.T) {
	s := setupTestStub(t)

	w := doJSON(s, "GET", "/video_feed/0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))

	w = doJSON(s, "GET", "/video_feed/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsMaskingRoundTrip(t *testing.T) {
	s := setupTestStub(t)

	w := doJSON(s, "POST", "/settings", gin.H{"key": models.SettingSMTPPassword, "value": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(s, "POST", "/settings", gin.H{"key": models.SettingSMTPServer, "value": "smtp.example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, "GET", "/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Settings models.Settings `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "********", payload.Settings[models.SettingSMTPPassword])
	assert.Equal(t, "smtp.example.com", payload.Settings[models.SettingSMTPServer])

	// posting the mask back must not clobber the stored secret
	w = doJSON(s, "POST", "/settings", gin.H{"key": models.SettingSMTPPassword, "value": "********"})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := s.Store.GetSetting(models.SettingSMTPPassword)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", stored)
}

func TestSettingsExposeTopLevelSystemLanguage(t *testing.T) {
	s := setupTestStub(t)

	w := doJSON(s, "POST", "/settings", gin.H{"key": models.SettingSystemLanguage, "value": "tr"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, "GET", "/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "tr", payload["system_language"])
}

func TestTestNotification(t *testing.T) {
	s := setupTestStub(t)

	// no channel enabled
	w := doJSON(s, "POST", "/test-notification", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var failure struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	assert.Equal(t, "No notification channels enabled", failure.Message)

	w = doJSON(s, "POST", "/settings", gin.H{"key": models.SettingTelegramEnabled, "value": "true"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, "POST", "/test-notification", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDailyStats(t *testing.T) {
	s := setupTestStub(t)

	require.NoError(t, s.Store.InsertEvent(&EventRecord{
		Timestamp: "2026-08-26 09:00:00", Type: "fire", Confidence: 0.9,
	}))
	require.NoError(t, s.Store.InsertEvent(&EventRecord{
		Timestamp: "2026-08-26 10:00:00", Type: "smoke", Confidence: 0.7,
	}))
	require.NoError(t, s.Store.InsertEvent(&EventRecord{
		Timestamp: "2026-08-27 11:00:00", Type: "fire", Confidence: 0.8,
	}))

	w := doJSON(s, "GET", "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Stats []models.Stat `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Stats, 2)

	// ascending by date, one entry per day
	assert.Equal(t, models.Stat{Date: "2026-08-26", Count: 2}, payload.Stats[0])
	assert.Equal(t, models.Stat{Date: "2026-08-27", Count: 1}, payload.Stats[1])
}

func TestMutationRateLimiting(t *testing.T) {
	s := setupTestStub(t)
	s.RateLimiterStore = NewRateLimiterStore(rate.Limit(1), 2)

	first := doJSON(s, "POST", "/settings", gin.H{"key": "a", "value": "1"})
	second := doJSON(s, "POST", "/settings", gin.H{"key": "b", "value": "2"})
	third := doJSON(s, "POST", "/settings", gin.H{"key": "c", "value": "3"})

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)

	// reads stay unthrottled
	w := doJSON(s, "GET", "/settings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
