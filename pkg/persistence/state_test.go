package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore(t *testing.T) {
	t.Run("NewStateStore", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))
		if store == nil {
			t.Fatal("NewStateStore() returned nil")
		}
	})

	t.Run("SaveAndLoadEmpty", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		state := &State{
			Version: 1,
			SavedAt: time.Now(),
		}

		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if got.Version != 1 {
			t.Errorf("Version = %d, want 1", got.Version)
		}
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "nonexistent.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		// Should return nil (empty state) for non-existent file
		if got != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}
	})

	t.Run("PrinterRoundTrip", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		state := &State{
			Printers: []PrinterState{
				{
					Name:          "front-desk",
					DriverKeyword: "zpl_2inch-203dpi-dt",
					DeviceURI:     "file:///tmp/front-desk.prn",
					Location:      "Reception",
					UUID:          "0f68b1a2-4c41-47a4-8c3f-59d6a3a9f201",
				},
				{
					Name:          "warehouse",
					DriverKeyword: "epl2_lp-2844",
					DeviceURI:     "null:",
				},
			},
		}

		require.NoError(t, store.Save(state))

		got, err := store.Load()
		require.NoError(t, err)
		require.Len(t, got.Printers, 2)

		assert.Equal(t, state.Printers, got.Printers)
		assert.Equal(t, StateVersion, got.Version)
		assert.False(t, got.SavedAt.IsZero())
	})

	t.Run("SaveCreatesParentDirs", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "nested", "deep", "state.json"))

		if err := store.Save(&State{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		require.NoError(t, store.Save(&State{}))
		require.NoError(t, store.Clear())

		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)

		// Clearing a missing file is not an error
		require.NoError(t, store.Clear())
	})
}

func TestStateHelpers(t *testing.T) {
	st := &State{}

	st.Upsert(PrinterState{Name: "lp0", DriverKeyword: "dymo_lm-450"})
	st.Upsert(PrinterState{Name: "lp1", DriverKeyword: "zpl_2inch-203dpi-dt"})

	t.Run("Find", func(t *testing.T) {
		p := st.Find("lp0")
		require.NotNil(t, p)
		assert.Equal(t, "dymo_lm-450", p.DriverKeyword)

		assert.Nil(t, st.Find("missing"))

		var none *State
		assert.Nil(t, none.Find("lp0"))
	})

	t.Run("UpsertReplaces", func(t *testing.T) {
		st.Upsert(PrinterState{Name: "lp0", DriverKeyword: "dymo_lw-450-turbo"})

		require.Len(t, st.Printers, 2)
		assert.Equal(t, "dymo_lw-450-turbo", st.Find("lp0").DriverKeyword)
	})

	t.Run("RemovePrinter", func(t *testing.T) {
		assert.True(t, st.RemovePrinter("lp1"))
		assert.False(t, st.RemovePrinter("lp1"))
		assert.Len(t, st.Printers, 1)
	})
}
