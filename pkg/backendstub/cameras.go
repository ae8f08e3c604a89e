package backendstub

import (
	"sort"
	"sync"

	"fireguard.xyz/fireguard-console/pkg/models"
)

// cameraRegistry holds cameras in memory, matching the external backend: the
// registry is rebuilt on restart, only detections and settings persist. The
// backend itself would permit deleting camera 0; the console is what refuses.
type cameraRegistry struct {
	mu     sync.Mutex
	cams   map[int]models.Camera
	nextID int
}

func newCameraRegistry() *cameraRegistry {
	return &cameraRegistry{
		cams: map[int]models.Camera{
			models.DefaultCameraID: {ID: models.DefaultCameraID, Name: "Default Camera", Source: "0"},
		},
		nextID: 1,
	}
}

func (r *cameraRegistry) List() []models.Camera {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Camera, 0, len(r.cams))
	for _, cam := range r.cams {
		out = append(out, cam)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *cameraRegistry) Add(source string, name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.cams[id] = models.Camera{ID: id, Name: name, Source: source}
	return id
}

func (r *cameraRegistry) Remove(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cams[id]; !ok {
		return false
	}
	delete(r.cams, id)
	return true
}

func (r *cameraRegistry) Exists(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.cams[id]
	return ok
}
