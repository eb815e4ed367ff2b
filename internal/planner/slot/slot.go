// Package slot holds the durable storage implementations for the
// session collection. A slot is a single named location holding the
// JSON-encoded array of sessions; there is no schema version, the
// corruption-tolerant load is the only compatibility mechanism.
package slot

import (
	log "github.com/sirupsen/logrus"

	"github.com/2beens/weekplan/internal/planner"
)

// normalize repairs what a lenient load may have left behind: a
// missing id gets back-filled, notes are kept a string (absent decodes
// to empty already). Anything else is the form layer's business.
func normalize(sessions []planner.Session) []planner.Session {
	for i := range sessions {
		if sessions[i].ID == "" {
			sessions[i].ID = planner.NewID()
			log.Debugf("loaded session [%s] without id, back-filled [%s]", sessions[i].Name, sessions[i].ID)
		}
	}
	return sessions
}
