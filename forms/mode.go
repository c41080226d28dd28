package forms

import "CarePulse/models"

// Mode selects which appointment form is being submitted.
type Mode string

const (
	ModeCreate   Mode = "create"
	ModeSchedule Mode = "schedule"
	ModeCancel   Mode = "cancel"
)

// Modes lists every appointment form mode.
var Modes = []Mode{ModeCreate, ModeSchedule, ModeCancel}

// ParseMode converts a route or form value into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeCreate, ModeSchedule, ModeCancel:
		return m, true
	}
	return "", false
}

// StatusFor maps a mode to the status the submitted appointment ends up in.
// Unknown modes fall back to pending.
func StatusFor(m Mode) models.AppointmentStatus {
	switch m {
	case ModeSchedule:
		return models.StatusScheduled
	case ModeCancel:
		return models.StatusCancelled
	default:
		return models.StatusPending
	}
}

// ButtonLabel is the submit button text for the mode.
func (m Mode) ButtonLabel() string {
	switch m {
	case ModeSchedule:
		return "Schedule appointment"
	case ModeCancel:
		return "Cancel appointment"
	default:
		return "Create appointment"
	}
}
