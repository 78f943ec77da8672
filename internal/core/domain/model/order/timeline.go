package order

import (
	"time"

	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"
)

// Actor identifies who performed a timeline-worthy action.
type Actor struct {
	name string
	role user.Role
}

// NewActor creates a validated actor identity.
func NewActor(name string, role user.Role) (Actor, error) {
	if name == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor name")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{name: name, role: role}, nil
}

func (a Actor) Name() string {
	return a.name
}

func (a Actor) Role() user.Role {
	return a.role
}

// TimelineEntry is one record of the order's append-only audit trail.
// Entries are never mutated or removed once appended.
type TimelineEntry struct {
	status Status
	at     time.Time
	note   string
	actor  Actor
}

// NewTimelineEntry creates an audit record for a status change.
func NewTimelineEntry(status Status, at time.Time, note string, actor Actor) TimelineEntry {
	return TimelineEntry{status: status, at: at, note: note, actor: actor}
}

func (e TimelineEntry) Status() Status {
	return e.status
}

func (e TimelineEntry) At() time.Time {
	return e.at
}

func (e TimelineEntry) Note() string {
	return e.note
}

func (e TimelineEntry) Actor() Actor {
	return e.actor
}
