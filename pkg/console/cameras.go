package console

import (
	"fmt"
	"strings"
	"sync"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

type cameraInput struct {
	Name   string
	Source string
}

var cameraInputSchema = z.Struct(z.Shape{
	"Name":   z.String().Optional(),
	"Source": z.String().Required(z.Message("source must not be empty")),
})

// ConfirmFunc is the destructive-action gate consulted before a camera is
// deleted. Returning false aborts the deletion without any network call.
type ConfirmFunc func(cam models.Camera) bool

// CameraController is a CRUD session over the backend camera registry. After
// every successful mutation the full list is re-fetched rather than patched,
// so backend-assigned ids are always authoritative.
type CameraController struct {
	api     backend.API
	confirm ConfirmFunc

	mu      sync.Mutex
	cameras []models.Camera

	logger *zap.Logger
}

func NewCameraController(api backend.API, confirm ConfirmFunc) *CameraController {
	return &CameraController{
		api:     api,
		confirm: confirm,
		logger: common.GetLoggerWith(
			common.LoggerNameConsoleCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryCameras),
		),
	}
}

// Refresh replaces the held list with the backend's.
func (c *CameraController) Refresh() error {
	cameras, err := c.api.FetchCameras()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.cameras = cameras
	c.mu.Unlock()
	return nil
}

func (c *CameraController) Cameras() []models.Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Camera, len(c.cameras))
	copy(out, c.cameras)
	return out
}

func (c *CameraController) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cameras)
}

// Add registers a camera. An empty source fails validation before any request
// is sent; an empty name gets a sequence default derived from the current
// camera count at submit time (a convenience, not guaranteed unique).
func (c *CameraController) Add(name string, source string) error {
	input := cameraInput{Name: strings.TrimSpace(name), Source: strings.TrimSpace(source)}
	if issues := cameraInputSchema.Validate(&input); issues != nil {
		return &ValidationError{Field: "source", Reason: "source must not be empty"}
	}

	if input.Name == "" {
		input.Name = fmt.Sprintf("Camera %d", c.Count()+1)
	}

	c.logger.Info("adding camera",
		zap.String("name", input.Name), zap.String("source", input.Source))

	if err := c.api.AddCamera(input.Source, input.Name); err != nil {
		return err
	}
	return c.Refresh()
}

// Removable reports whether the delete affordance may be offered for id. The
// reserved default camera is never removable.
func (c *CameraController) Removable(id int) bool {
	return id != models.DefaultCameraID
}

// Remove deletes a camera after the confirmation gate. Deleting the reserved
// default camera is refused outright, before confirmation and before any
// request. A declined confirmation is not an error.
func (c *CameraController) Remove(id int) error {
	if !c.Removable(id) {
		return &ValidationError{Field: "id", Reason: "default camera cannot be removed"}
	}

	if c.confirm != nil && !c.confirm(c.find(id)) {
		c.logger.Info("camera removal declined", zap.Int("id", id))
		return nil
	}

	c.logger.Info("removing camera", zap.Int("id", id))

	if err := c.api.RemoveCamera(id); err != nil {
		return err
	}
	return c.Refresh()
}

func (c *CameraController) find(id int) models.Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cam := range c.cameras {
		if cam.ID == id {
			return cam
		}
	}
	return models.Camera{ID: id}
}

// VideoFeedURL supplies the id-keyed stream URL; the stream's lifecycle is
// the renderer's problem, not the controller's.
func (c *CameraController) VideoFeedURL(id int) string {
	return c.api.VideoFeedURL(id)
}
