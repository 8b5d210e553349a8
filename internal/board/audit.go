package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/bancada/internal/domain"
)

// SystemActor attributes audit entries produced inside the engine. Real
// actor attribution happens in the layers above; at this level every
// change is recorded against the system actor unless a caller names one.
const SystemActor = "sistema"

// newHistoryEntry builds an immutable audit record for a status transition.
// When the caller gives no comment, a description of the transition is
// synthesized so the trail stays readable.
func newHistoryEntry(status domain.Status, comment, actor string, at time.Time) domain.HistoryEntry {
	if comment == "" {
		comment = fmt.Sprintf("Status changed to %s", status)
	}
	if actor == "" {
		actor = SystemActor
	}
	return domain.HistoryEntry{
		ID:      uuid.New().String(),
		Date:    at,
		Status:  status,
		Actor:   actor,
		Comment: comment,
	}
}

// newComment builds a free-text note with a synthesized id and timestamp.
func newComment(text, actor string, at time.Time) domain.Comment {
	if actor == "" {
		actor = SystemActor
	}
	return domain.Comment{
		ID:    uuid.New().String(),
		Date:  at,
		Actor: actor,
		Text:  text,
	}
}
