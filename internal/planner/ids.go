package planner

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh session id. Random UUIDs are used when the
// system entropy source cooperates; if it does not, a clock-seeded
// pseudo-random string is good enough for a single-user collection.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}

	now := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(now))
	return "s-" + strconv.FormatInt(now, 36) + "-" + strconv.FormatInt(rnd.Int63(), 36)
}
