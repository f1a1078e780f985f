// Package extension toggles PHP extensions on and off by renaming their ini
// marker files, and flips the Xdebug autostart switch in the performance profile.
package extension

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/conn-castle/valet-php/internal/messages"
)

// ErrMarkerMissing reports that neither marker file exists for an extension.
var ErrMarkerMissing = errors.New(messages.ExtensionMarkerMissing)

// State is the toggle state encoded by which marker file exists.
type State int

const (
	StateAbsent State = iota
	StateEnabled
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	default:
		return "absent"
	}
}

const disabledSuffix = ".disabled"

// MarkerPath returns the marker file that encodes state for ext inside dir.
// StateAbsent has no marker and yields an empty path.
func MarkerPath(dir string, ext string, state State) string {
	enabled := filepath.Join(dir, "ext-"+ext+".ini")
	switch state {
	case StateEnabled:
		return enabled
	case StateDisabled:
		return enabled + disabledSuffix
	default:
		return ""
	}
}

// FileStore is the filesystem surface toggling needs.
type FileStore interface {
	Exists(path string) bool
	Move(src string, dst string) error
}

// Toggle renames marker files. At most one of the two markers exists after any call.
type Toggle struct {
	files FileStore
}

// NewToggle returns a Toggle over files.
func NewToggle(files FileStore) *Toggle {
	return &Toggle{files: files}
}

// State reports the current state of ext in dir.
func (t *Toggle) State(dir string, ext string) State {
	if t.files.Exists(MarkerPath(dir, ext, StateEnabled)) {
		return StateEnabled
	}
	if t.files.Exists(MarkerPath(dir, ext, StateDisabled)) {
		return StateDisabled
	}
	return StateAbsent
}

// Enable renames the disabled marker into place. It reports false when ext was already enabled.
func (t *Toggle) Enable(dir string, ext string) (bool, error) {
	return t.set(dir, ext, StateEnabled)
}

// Disable renames the enabled marker aside. It reports false when ext was already disabled.
func (t *Toggle) Disable(dir string, ext string) (bool, error) {
	return t.set(dir, ext, StateDisabled)
}

func (t *Toggle) set(dir string, ext string, want State) (bool, error) {
	current := t.State(dir, ext)
	switch current {
	case want:
		return false, nil
	case StateAbsent:
		return false, fmt.Errorf("%w: %s", ErrMarkerMissing, MarkerPath(dir, ext, StateEnabled))
	}
	if err := t.files.Move(MarkerPath(dir, ext, current), MarkerPath(dir, ext, want)); err != nil {
		return false, err
	}
	return true, nil
}
