package backend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_api.go -package=mocks

// API is the typed surface of the detection backend as the console consumes
// it. Controllers depend on this interface, never on Client directly.
type API interface {
	FetchAlerts() ([]models.Alert, error)
	FetchCameras() ([]models.Camera, error)
	AddCamera(source string, name string) error
	RemoveCamera(id int) error
	FetchHistory(limit int) ([]models.HistoryEvent, error)
	FetchStats() ([]models.Stat, error)
	FetchSettings() (models.Settings, error)
	SaveSetting(key string, value string) error
	SendTestNotification() error
	SnapshotURL(path string) string
	VideoFeedURL(id int) string
}

// Client talks to a single configured backend origin. Retry policy and
// timeouts belong to the callers; this layer issues exactly one request per
// call and never cancels one mid-flight.
type Client struct {
	origin string
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(origin string) *Client {
	origin = strings.TrimRight(origin, "/")

	httpClient := resty.New().
		SetBaseURL(origin).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		origin: origin,
		http:   httpClient,
		logger: common.GetLoggerWith(common.LoggerNameBackendClient),
	}
}

func (c *Client) Origin() string {
	return c.origin
}

func (c *Client) get(path string, out any) error {
	resp, err := c.http.R().Get(path)
	return c.finish("GET", path, resp, err, out)
}

func (c *Client) post(path string, body any, out any) error {
	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	return c.finish("POST", path, resp, err, out)
}

func (c *Client) del(path string) error {
	resp, err := c.http.R().Delete(path)
	return c.finish("DELETE", path, resp, err, nil)
}

func (c *Client) finish(op string, path string, resp *resty.Response, err error, out any) error {
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("op", op), zap.String("path", path), zap.Error(err))
		return &NetworkError{Op: op, Path: path, Err: err}
	}

	if !resp.IsSuccess() {
		c.logger.Warn("request returned non-2xx status",
			zap.String("op", op), zap.String("path", path), zap.Int("status", resp.StatusCode()))
		return &NetworkError{Op: op, Path: path, StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &NetworkError{Op: op, Path: path, StatusCode: resp.StatusCode(), Body: resp.Body(), Err: err}
	}
	return nil
}

func (c *Client) FetchAlerts() ([]models.Alert, error) {
	var payload struct {
		Alerts []models.Alert `json:"alerts"`
	}
	if err := c.get("/alerts", &payload); err != nil {
		return nil, err
	}
	return payload.Alerts, nil
}

func (c *Client) FetchCameras() ([]models.Camera, error) {
	var payload struct {
		Cameras []models.Camera `json:"cameras"`
	}
	if err := c.get("/cameras", &payload); err != nil {
		return nil, err
	}
	return payload.Cameras, nil
}

func (c *Client) AddCamera(source string, name string) error {
	body := map[string]string{"source": source, "name": name}
	// response body (status, assigned id) is intentionally ignored; callers
	// re-list to pick up backend-assigned ids
	return c.post("/cameras", body, nil)
}

func (c *Client) RemoveCamera(id int) error {
	return c.del(fmt.Sprintf("/cameras/%d", id))
}

func (c *Client) FetchHistory(limit int) ([]models.HistoryEvent, error) {
	var payload struct {
		Events []models.HistoryEvent `json:"events"`
	}
	if err := c.get(fmt.Sprintf("/history?limit=%d", limit), &payload); err != nil {
		return nil, err
	}
	return payload.Events, nil
}

func (c *Client) FetchStats() ([]models.Stat, error) {
	var payload struct {
		Stats []models.Stat `json:"stats"`
	}
	if err := c.get("/stats", &payload); err != nil {
		return nil, err
	}
	return payload.Stats, nil
}

func (c *Client) FetchSettings() (models.Settings, error) {
	var payload struct {
		Settings models.Settings `json:"settings"`
	}
	if err := c.get("/settings", &payload); err != nil {
		return nil, err
	}
	if payload.Settings == nil {
		payload.Settings = models.Settings{}
	}
	return payload.Settings, nil
}

func (c *Client) SaveSetting(key string, value string) error {
	body := map[string]string{"key": key, "value": value}
	return c.post("/settings", body, nil)
}

func (c *Client) SendTestNotification() error {
	return c.post("/test-notification", nil, nil)
}

// SnapshotURL resolves a backend-relative snapshot path against the origin.
func (c *Client) SnapshotURL(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.origin + path
}

func (c *Client) VideoFeedURL(id int) string {
	return fmt.Sprintf("%s/video_feed/%d", c.origin, id)
}

var _ API = (*Client)(nil)
