package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threebell/threebell/internal/config"
	"github.com/threebell/threebell/internal/models"
)

func startWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "home")
	w, err := New(dir, 20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return w, dir
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for settings event")
		return Event{}
	}
}

func TestSettingsChangeIsReported(t *testing.T) {
	w, dir := startWatcher(t)

	s := models.NewSettings()
	s.Bells = models.BellTimes{Hint: 3, PresentationEnd: 4, Total: 5}
	path := filepath.Join(dir, config.SettingsFileName)
	require.NoError(t, config.SaveYAML(path, s))

	ev := nextEvent(t, w)
	assert.Equal(t, EventSettingsChanged, ev.Type)
	require.NotNil(t, ev.Settings)
	assert.Equal(t, s.Bells, ev.Settings.Bells)
}

func TestInvalidSettingsAreReported(t *testing.T) {
	w, dir := startWatcher(t)

	path := filepath.Join(dir, config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("bells: [oops"), 0644))

	ev := nextEvent(t, w)
	assert.Equal(t, EventSettingsInvalid, ev.Type)
	assert.Error(t, ev.Err)
}

func TestOtherFilesAreIgnored(t *testing.T) {
	w, dir := startWatcher(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "3bt.log"), []byte("line\n"), 0644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w, _ := startWatcher(t)
	w.Stop()
	assert.NotPanics(t, w.Stop)
}

func TestReloader(t *testing.T) {
	var applied []models.BellTimes
	r := NewReloader(models.NewBellTimes(), func(b models.BellTimes) error {
		applied = append(applied, b)
		return nil
	})

	same := models.NewSettings()
	ok, err := r.Handle(Event{Type: EventSettingsChanged, Settings: same})
	require.NoError(t, err)
	assert.False(t, ok, "unchanged bells do not reset the timer")

	changed := models.NewSettings()
	changed.Bells = models.BellTimes{Hint: 5, PresentationEnd: 7, Total: 9}
	ok, err = r.Handle(Event{Type: EventSettingsChanged, Settings: changed})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Handle(Event{Type: EventSettingsChanged, Settings: changed})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []models.BellTimes{changed.Bells}, applied)

	_, err = r.Handle(Event{Type: EventSettingsInvalid, Err: errors.New("bad yaml")})
	assert.Error(t, err)
}

func TestReloaderKeepsLastOnFailure(t *testing.T) {
	fail := true
	r := NewReloader(models.NewBellTimes(), func(models.BellTimes) error {
		if fail {
			return models.ErrInvalidBellTimes
		}
		return nil
	})

	s := models.NewSettings()
	s.Bells = models.BellTimes{Hint: 1, PresentationEnd: 2, Total: 3}
	_, err := r.Handle(Event{Settings: s})
	assert.ErrorIs(t, err, models.ErrInvalidBellTimes)

	fail = false
	ok, err := r.Handle(Event{Settings: s})
	require.NoError(t, err)
	assert.True(t, ok)
}
