package console

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fireguard.xyz/fireguard-console/pkg/backend/mocks"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
	_ "fireguard.xyz/fireguard-console/pkg/testing"
)

type countingChime struct {
	plays atomic.Int32
}

func (c *countingChime) Play() {
	c.plays.Add(1)
}

func TestPollReplacesListWholesale(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	s := NewAlertSynchronizer(api, nil)

	first := []models.Alert{
		{Timestamp: "10:00:02", Type: models.AlertTypeFire, Confidence: 0.8},
		{Timestamp: "10:00:01", Type: models.AlertTypeSmoke, Confidence: 0.5},
	}
	second := []models.Alert{
		{Timestamp: "10:00:05", Type: models.AlertTypeSmoke, Confidence: 0.4},
	}

	gomock.InOrder(
		api.EXPECT().FetchAlerts().Return(first, nil),
		api.EXPECT().FetchAlerts().Return(second, nil),
	)

	s.Poll()
	require.Len(t, s.Alerts(), 2)
	assert.Equal(t, StateSynced, s.State())

	// full replace, not a merge: the earlier entries are gone
	s.Poll()
	got := s.Alerts()
	require.Len(t, got, 1)
	assert.Equal(t, "10:00:05", got[0].Timestamp)
}

func TestPollFailureKeepsStaleListAndDegrades(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	s := NewAlertSynchronizer(api, nil)

	alerts := []models.Alert{{Timestamp: "10:00:00", Type: models.AlertTypeFire, Confidence: 0.9}}

	gomock.InOrder(
		api.EXPECT().FetchAlerts().Return(alerts, nil),
		api.EXPECT().FetchAlerts().Return(nil, errors.New("connection refused")),
		api.EXPECT().FetchAlerts().Return(alerts, nil),
	)

	s.Poll()
	assert.Equal(t, StateSynced, s.State())

	s.Poll()
	assert.Equal(t, StateDegraded, s.State())
	// stale list remains renderable behind the indicator
	assert.Len(t, s.Alerts(), 1)

	// recovery within one successful poll
	s.Poll()
	assert.Equal(t, StateSynced, s.State())
	assert.Len(t, s.Alerts(), 1)
}

func TestChimeRingsEveryTickWhileHeadIsHot(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	chime := &countingChime{}
	s := NewAlertSynchronizer(api, chime)
	s.SetSoundEnabled(true)

	hot := []models.Alert{{Timestamp: "10:00:00", Type: models.AlertTypeFire, Confidence: 0.75}}
	api.EXPECT().FetchAlerts().Return(hot, nil).Times(2)

	s.Poll()
	assert.Equal(t, int32(1), chime.plays.Load())

	// identical list on the next tick rings again
	s.Poll()
	assert.Equal(t, int32(2), chime.plays.Load())
}

func TestChimeRequiresSoundEnabledAndThreshold(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	chime := &countingChime{}
	s := NewAlertSynchronizer(api, chime)

	hot := []models.Alert{{Timestamp: "10:00:00", Type: models.AlertTypeFire, Confidence: 0.75}}
	cold := []models.Alert{{Timestamp: "10:00:01", Type: models.AlertTypeSmoke, Confidence: 0.6}}

	gomock.InOrder(
		api.EXPECT().FetchAlerts().Return(hot, nil),  // sound disabled
		api.EXPECT().FetchAlerts().Return(cold, nil), // confidence not above threshold
		api.EXPECT().FetchAlerts().Return(nil, nil),  // empty list
	)

	s.Poll()

	s.SetSoundEnabled(true)
	s.Poll()
	s.Poll()

	assert.Equal(t, int32(0), chime.plays.Load())
}

func TestPollSkipsWhileRequestInFlight(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	s := NewAlertSynchronizer(api, nil)

	release := make(chan struct{})
	started := make(chan struct{})

	// exactly one fetch: the overlapping Poll must not issue a second
	api.EXPECT().FetchAlerts().DoAndReturn(func() ([]models.Alert, error) {
		close(started)
		<-release
		return nil, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Poll()
	}()

	<-started
	s.Poll() // overlaps; skipped by the in-flight guard
	close(release)
	wg.Wait()
}

func TestRunStopsOnKill(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().FetchAlerts().Return(nil, nil).MinTimes(1)

	s := NewAlertSynchronizer(api, nil)
	s.Interval = 5 * time.Millisecond

	wg := &sync.WaitGroup{}
	kill := make(chan struct{})
	done := make(chan struct{})

	go func() {
		s.Run(wg, kill)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	close(kill)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("synchronizer did not stop after kill")
	}
	wg.Wait()
}
