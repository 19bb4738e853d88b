package setupstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// stateFileName is the setup-state file written into the config
// directory between runs.
const stateFileName = ".setup_state.json"

// SetupState tracks progress through the setup steps so an interrupted
// run can resume. Completed and failed step lists stay disjoint: marking
// a step completed removes it from the failed list.
type SetupState struct {
	Step           string         `json:"step"`
	CompletedSteps []string       `json:"completed_steps"`
	FailedSteps    []string       `json:"failed_steps"`
	Configuration  map[string]any `json:"configuration,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}

// NewSetupState creates a state positioned at the given step.
func NewSetupState(step string) *SetupState {
	return &SetupState{Step: step, Timestamp: time.Now()}
}

// MarkCompleted records a step as completed and clears any earlier
// failure record for it.
func (s *SetupState) MarkCompleted(step string) {
	if !slices.Contains(s.CompletedSteps, step) {
		s.CompletedSteps = append(s.CompletedSteps, step)
	}
	if i := slices.Index(s.FailedSteps, step); i >= 0 {
		s.FailedSteps = slices.Delete(s.FailedSteps, i, i+1)
	}
}

// MarkFailed records a step as failed.
func (s *SetupState) MarkFailed(step string) {
	if !slices.Contains(s.FailedSteps, step) {
		s.FailedSteps = append(s.FailedSteps, step)
	}
}

// CanResumeFrom reports whether setup can resume at the given step.
func (s *SetupState) CanResumeFrom(step string) bool {
	return step == s.Step || slices.Contains(s.CompletedSteps, step)
}

// Store persists SetupState as JSON in the config directory. The tool
// is single-process, so no file locking is applied.
type Store struct {
	path string
}

// NewStore creates a Store rooted at the given config directory.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, stateFileName)}
}

// Save writes the state to disk, stamping the current time.
func (st *Store) Save(state *SetupState) error {
	state.Timestamp = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal setup state: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("write setup state %s: %w", st.path, err)
	}
	return nil
}

// Load reads the persisted state. A missing file returns (nil, nil):
// there is simply no prior run to resume.
func (st *Store) Load() (*SetupState, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read setup state %s: %w", st.path, err)
	}
	var state SetupState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse setup state %s: %w", st.path, err)
	}
	return &state, nil
}

// Clear removes the persisted state. Clearing an absent state is not an
// error.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove setup state %s: %w", st.path, err)
	}
	return nil
}

// CanResume reports whether a prior run left resumable state behind.
func (st *Store) CanResume() bool {
	state, err := st.Load()
	return err == nil && state != nil && len(state.CompletedSteps) > 0
}
