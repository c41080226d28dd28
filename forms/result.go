package forms

import "CarePulse/models"

// Outcome says how a submission ended.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeNavigated
	OutcomeClosed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNavigated:
		return "navigated"
	case OutcomeClosed:
		return "closed"
	default:
		return "failed"
	}
}

// Result is what a submitter hands back to the page. Err is set only when
// Outcome is OutcomeFailed.
type Result struct {
	Outcome     Outcome
	Location    string
	Appointment *models.Appointment
	Patient     *models.Patient
	Err         error
}

// OK reports whether the submission reached the data service and succeeded.
func (r Result) OK() bool {
	return r.Outcome != OutcomeFailed
}

func failed(err error) Result {
	return Result{Outcome: OutcomeFailed, Err: err}
}

// Hooks are the page callbacks a successful submission fires. Nil hooks are skipped.
type Hooks struct {
	Navigate func(location string)
	Close    func()
	Reset    func()
}

func (h Hooks) navigate(location string) {
	if h.Navigate != nil {
		h.Navigate(location)
	}
}

func (h Hooks) close() {
	if h.Close != nil {
		h.Close()
	}
}

func (h Hooks) reset() {
	if h.Reset != nil {
		h.Reset()
	}
}
