package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusScheduled, StatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, AppointmentStatus("").Valid())
	assert.False(t, AppointmentStatus("completed").Valid())
}

func TestFindPhysician(t *testing.T) {
	p, ok := FindPhysician("Leila Cameron")
	assert.True(t, ok)
	assert.Equal(t, "/assets/images/dr-cameron.png", p.Image)

	_, ok = FindPhysician("leila cameron")
	assert.False(t, ok)

	assert.Len(t, PhysicianNames(), len(Physicians))
}
