package sideeffect

import (
	"fmt"

	"reserve/internal/domains/booking/machine"
)

const noteEdited = "Requested services updated"

func serviceNote(event machine.Event) string {
	title := event.Service.Title()

	switch event.Type {
	case machine.EventServiceApprove:
		return title + " approved"
	case machine.EventServiceDecline:
		if event.Reason != "" {
			return fmt.Sprintf("%s declined: %s", title, event.Reason)
		}

		return title + " declined"
	case machine.EventServiceCloseout:
		return title + " closed out"
	default:
		return ""
	}
}
