package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// State contains the persisted print server state.
type State struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Printers contains one entry per configured printer.
	Printers []PrinterState `json:"printers,omitempty"`
}

// PrinterState contains the persisted configuration of one printer.
// Capability attributes are not persisted; they are re-synthesized
// from the driver keyword on startup.
type PrinterState struct {
	// Name is the printer name.
	Name string `json:"name"`

	// DriverKeyword selects the driver, e.g. "zpl_2inch-203dpi-dt".
	DriverKeyword string `json:"driver_keyword,omitempty"`

	// DeviceURI is the output device URI, e.g. "file:///tmp/out.prn".
	DeviceURI string `json:"device_uri,omitempty"`

	// Location is a human-readable location.
	Location string `json:"location,omitempty"`

	// UUID is the printer UUID without the urn:uuid: prefix.
	// Persisted so the printer keeps its identity across restarts.
	UUID string `json:"uuid,omitempty"`
}

// StateStore manages persistence of server state to a JSON file.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a new state store.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Save persists the server state to disk.
func (s *StateStore) Save(state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the server state from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *StateStore) Load() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Find returns the printer state with the given name, or nil.
func (st *State) Find(name string) *PrinterState {
	if st == nil {
		return nil
	}
	for i := range st.Printers {
		if st.Printers[i].Name == name {
			return &st.Printers[i]
		}
	}
	return nil
}

// Upsert adds or replaces a printer entry by name.
func (st *State) Upsert(p PrinterState) {
	for i := range st.Printers {
		if st.Printers[i].Name == p.Name {
			st.Printers[i] = p
			return
		}
	}
	st.Printers = append(st.Printers, p)
}

// RemovePrinter deletes a printer entry by name. Returns true if an
// entry was removed.
func (st *State) RemovePrinter(name string) bool {
	for i := range st.Printers {
		if st.Printers[i].Name == name {
			st.Printers = append(st.Printers[:i], st.Printers[i+1:]...)
			return true
		}
	}
	return false
}
