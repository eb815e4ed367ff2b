package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/weekplan/internal/planner"
)

var _ planner.Slot = (*FileSlot)(nil)

// FileSlot keeps the session collection in a single JSON file.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) (*FileSlot, error) {
	if path == "" {
		return nil, errors.New("slot file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &FileSlot{
		path: path,
	}, nil
}

// Load reads the slot file. An absent or unparseable file resolves to
// the seeded default week, never to an error: first run and corrupted
// data converge to the same populated starter schedule.
func (fs *FileSlot) Load(_ context.Context) []planner.Session {
	slotBytes, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Errorf("read sessions slot file [%s]: %s", fs.path, err)
		}
		return planner.DefaultWeek()
	}

	var sessions []planner.Session
	if err := json.Unmarshal(slotBytes, &sessions); err != nil {
		log.Errorf("corrupt sessions slot file [%s], falling back to default week: %s", fs.path, err)
		return planner.DefaultWeek()
	}
	if len(sessions) == 0 {
		return planner.DefaultWeek()
	}

	return normalize(sessions)
}

// Save overwrites the slot file with the full collection. An empty
// collection clears the slot instead: "no data" and "user deleted
// everything" share the same on-disk representation and both reload
// as a fresh default week.
func (fs *FileSlot) Save(_ context.Context, sessions []planner.Session) error {
	if len(sessions) == 0 {
		if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clear sessions slot file: %w", err)
		}
		return nil
	}

	sessionsJson, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	if err := os.WriteFile(fs.path, sessionsJson, 0644); err != nil {
		return fmt.Errorf("write sessions slot file: %w", err)
	}

	log.Tracef("saved %d sessions to [%s]", len(sessions), fs.path)
	return nil
}
