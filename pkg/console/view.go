package console

import (
	"strconv"

	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/i18n"
	"fireguard.xyz/fireguard-console/pkg/models"
)

// FormatConfidence renders a [0,1] confidence as a percentage with one
// decimal place: 0.618 -> "61.8".
func FormatConfidence(confidence float64) string {
	return strconv.FormatFloat(confidence*100, 'f', 1, 64)
}

type AlertView struct {
	Title         string
	Timestamp     string
	Type          models.AlertType
	ConfidencePct string
	SnapshotURL   string
}

type CameraView struct {
	ID        int
	Name      string
	FeedURL   string
	Removable bool
}

// DashboardState is the composed render pass: every component's state in one
// structure, localized for the active language.
type DashboardState struct {
	Language i18n.Language

	Degraded       bool
	DegradedNotice string
	SoundEnabled   bool
	Alerts         []AlertView
	AlertCount     int

	Cameras []CameraView

	Stats       []models.Stat
	TotalEvents int

	HistoryOpen         bool
	HistoryEvents       []models.HistoryEvent
	SelectedSnapshotURL string
}

func (c *Console) alertTitle(a models.Alert) string {
	switch a.Type {
	case models.AlertTypeFire:
		return c.Locale.T("alerts", "fireDetected")
	case models.AlertTypeSmoke:
		return c.Locale.T("alerts", "smokeDetected")
	default:
		return string(a.Type) + " " + c.Locale.T("alerts", "event")
	}
}

// Snapshot composes the current state of every component. The degraded
// indicator replaces the alert list in the rendered output, but the stale
// list is still carried so a recovery re-renders without a refetch.
func (c *Console) Snapshot() DashboardState {
	alerts := c.Alerts.Alerts()
	stats := c.Stats.Stats()
	degraded := c.Alerts.State() == StateDegraded

	state := DashboardState{
		Language:     c.Locale.Language(),
		Degraded:     degraded,
		SoundEnabled: c.Alerts.SoundEnabled(),
		AlertCount:   len(alerts),
		Alerts: common.Mapper(alerts, func(a models.Alert) AlertView {
			return AlertView{
				Title:         c.alertTitle(a),
				Timestamp:     a.Timestamp,
				Type:          a.Type,
				ConfidencePct: FormatConfidence(a.Confidence),
				SnapshotURL:   c.Backend.SnapshotURL(a.Snapshot),
			}
		}),
		Cameras: common.Mapper(c.Cameras.Cameras(), func(cam models.Camera) CameraView {
			return CameraView{
				ID:        cam.ID,
				Name:      cam.Name,
				FeedURL:   c.Cameras.VideoFeedURL(cam.ID),
				Removable: c.Cameras.Removable(cam.ID),
			}
		}),
		Stats: stats,
		TotalEvents: common.Reducer(stats, func(acc int, s models.Stat) int {
			return acc + s.Count
		}, 0),
		HistoryOpen:         c.History.IsOpen(),
		HistoryEvents:       c.History.Events(),
		SelectedSnapshotURL: c.History.SelectedSnapshotURL(),
	}

	if degraded {
		state.DegradedNotice = c.Locale.T("common", "waitingBackend")
	}

	return state
}
