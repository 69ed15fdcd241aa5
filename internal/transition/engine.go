package transition

import (
	"strings"

	"github.com/giftmart/giftadmin/internal/models"
)

// transitions is the single source of truth for legal forward moves:
// pending -> preparing -> done. Terminal statuses map to an empty set.
var transitions = map[models.Status][]models.Status{
	models.StatusPending:   {models.StatusPreparing},
	models.StatusPreparing: {models.StatusDone},
	models.StatusDone:      {},
	models.StatusRejected:  {},
}

// Payload carries the side data a transition may require
type Payload struct {
	RejectionReason string
}

// Available returns the statuses an order may legally advance to from current.
// Unknown statuses yield an empty set rather than an error.
func Available(current models.Status) []models.Status {
	next, ok := transitions[current]
	if !ok {
		return []models.Status{}
	}
	out := make([]models.Status, len(next))
	copy(out, next)
	return out
}

// Can reports whether advancing from one status to another is legal
func Can(from, to models.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanReject reports whether an order in the given status may still be
// rejected. Rejection is not a forward step: it is allowed from any
// non-terminal status and always ends the lifecycle.
func CanReject(current models.Status) bool {
	_, known := transitions[current]
	return known && !current.IsTerminal()
}

// ValidatePayload checks the side data required for a move into next.
// A rejection must carry a non-empty reason after trimming; no other
// transition needs a payload.
func ValidatePayload(next models.Status, payload Payload) error {
	if next == models.StatusRejected && strings.TrimSpace(payload.RejectionReason) == "" {
		return models.ErrMissingReason
	}
	return nil
}
