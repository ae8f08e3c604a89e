// Package backendstub is a development stand-in for the external detection
// backend. It exposes the same HTTP surface the console consumes so the
// console can run and be integration-tested without cameras or a vision
// model. Detections are injected through POST /events instead of inference.
package backendstub

import (
	"net/http"
	"strconv"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

const eventTimestampLayout = "2006-01-02 15:04:05"

// secrets are masked on read and a posted masked value is dropped, so a
// settings round trip cannot clobber a stored secret with its mask
var maskedSettingKeys = []string{models.SettingSMTPPassword, models.SettingTelegramBotToken}

const maskedValue = "********"

// placeholder image served for video frames and snapshots (1x1 GIF)
var placeholderPixel = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3B,
}

type StubServer struct {
	Server           *gin.Engine
	Store            *Store
	Cameras          *cameraRegistry
	RateLimiterStore *RateLimiterStore

	logger *zap.Logger
}

func NewStubServer(engine *gin.Engine, store *Store) *StubServer {
	return &StubServer{
		Server:  engine,
		Store:   store,
		Cameras: newCameraRegistry(),
		logger: common.GetLoggerWith(
			common.LoggerNameStubBackend,
		),
	}
}

func (s *StubServer) checkClientLimiter(c *gin.Context) bool {
	if s.RateLimiterStore == nil {
		return true
	}
	return s.RateLimiterStore.Allow(c.ClientIP())
}

func (s *StubServer) Setup() {
	s.Server.GET("/healthz", s.HealthCheck)

	s.Server.GET("/alerts", s.GetAlerts)
	s.Server.GET("/cameras", s.GetCameras)
	s.Server.POST("/cameras", s.AddCamera)
	s.Server.DELETE("/cameras/:camera_id", s.DeleteCamera)
	s.Server.GET("/video_feed/:camera_id", s.VideoFeed)
	s.Server.GET("/history", s.GetHistory)
	s.Server.GET("/settings", s.GetSettings)
	s.Server.POST("/settings", s.SaveSetting)
	s.Server.POST("/test-notification", s.TestNotification)
	s.Server.GET("/stats", s.GetStats)
	s.Server.GET("/snapshots/:file", s.Snapshot)

	s.Server.POST("/events", s.InjectEvent)
}

func (s *StubServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *StubServer) GetAlerts(c *gin.Context) {
	events, err := s.Store.RecentEvents(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	alerts := common.Mapper(events, func(e EventRecord) gin.H {
		return gin.H{
			"id":         e.ID,
			"timestamp":  e.Timestamp,
			"type":       e.Type,
			"confidence": e.Confidence,
			"snapshot":   e.SnapshotPath,
		}
	})
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (s *StubServer) GetCameras(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cameras": s.Cameras.List()})
}

type CameraRequest struct {
	Source string `json:"source"`
	Name   string `json:"name"`
}

var cameraRequestSchema = z.Struct(z.Shape{
	"Source": z.String().Required(),
	"Name":   z.String().Optional(),
})

func (s *StubServer) AddCamera(c *gin.Context) {
	if !s.checkClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req CameraRequest
	if err := cameraRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	id := s.Cameras.Add(req.Source, req.Name)
	s.logger.Info("camera added", zap.Int("id", id), zap.String("source", req.Source))

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id, "message": "Camera added"})
}

func (s *StubServer) DeleteCamera(c *gin.Context) {
	if !s.checkClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	id, err := strconv.Atoi(c.Param("camera_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid camera id"})
		return
	}

	if !s.Cameras.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Camera not found"})
		return
	}

	s.logger.Info("camera removed", zap.Int("id", id))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Camera removed"})
}

func (s *StubServer) VideoFeed(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("camera_id"))
	if err != nil || !s.Cameras.Exists(id) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "image/gif", placeholderPixel)
}

func (s *StubServer) Snapshot(c *gin.Context) {
	c.Data(http.StatusOK, "image/gif", placeholderPixel)
}

func (s *StubServer) GetHistory(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid limit"})
			return
		}
		limit = parsed
	}

	events, err := s.Store.RecentEvents(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	payload := common.Mapper(events, func(e EventRecord) gin.H {
		return gin.H{
			"id":            e.ID,
			"timestamp":     e.Timestamp,
			"type":          e.Type,
			"confidence":    e.Confidence,
			"snapshot_path": e.SnapshotPath,
		}
	})
	c.JSON(http.StatusOK, gin.H{"events": payload})
}

func (s *StubServer) GetSettings(c *gin.Context) {
	settings, err := s.Store.AllSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	for _, key := range maskedSettingKeys {
		if settings[key] != "" {
			settings[key] = maskedValue
		}
	}

	payload := gin.H{"settings": settings}
	if lang, ok := settings[models.SettingSystemLanguage]; ok {
		payload["system_language"] = lang
	}
	c.JSON(http.StatusOK, payload)
}

type SettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

var settingRequestSchema = z.Struct(z.Shape{
	"Key":   z.String().Required(),
	"Value": z.String().Optional(),
})

func (s *StubServer) SaveSetting(c *gin.Context) {
	if !s.checkClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req SettingRequest
	if err := settingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.Value == maskedValue {
		c.JSON(http.StatusOK, gin.H{"status": "skipped", "message": "Masked value ignored"})
		return
	}

	if err := s.Store.SetSetting(req.Key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Setting saved"})
}

func (s *StubServer) TestNotification(c *gin.Context) {
	if !s.checkClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	settings, err := s.Store.AllSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if settings[models.SettingEmailEnabled] != "true" && settings[models.SettingTelegramEnabled] != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No notification channels enabled"})
		return
	}

	s.logger.Info("test notification triggered",
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryNotification))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Test notification triggered"})
}

func (s *StubServer) GetStats(c *gin.Context) {
	stats, err := s.Store.DailyStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	if stats == nil {
		stats = []models.Stat{}
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

type EventRequest struct {
	Type         string  `json:"type"`
	Confidence   float64 `json:"confidence"`
	SnapshotPath string  `json:"snapshot_path"`
}

var eventRequestSchema = z.Struct(z.Shape{
	"Type":         z.String().Required(),
	"Confidence":   z.Float64().Required(z.Message("confidence is required")).GTE(0).LTE(1),
	"SnapshotPath": z.String().Optional(),
})

// InjectEvent records a detection as if the vision model had produced it.
func (s *StubServer) InjectEvent(c *gin.Context) {
	if !s.checkClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req EventRequest
	if err := eventRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	event := EventRecord{
		Timestamp:    time.Now().Format(eventTimestampLayout),
		Type:         req.Type,
		Confidence:   req.Confidence,
		SnapshotPath: req.SnapshotPath,
	}
	if err := s.Store.InsertEvent(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": event.ID})
}
