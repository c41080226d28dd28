package handlers

import (
	"CarePulse/models"
	"CarePulse/services"
	"context"
	"fmt"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: make(map[string]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) CreateUser(_ context.Context, p models.CreateUserParams) (*models.User, error) {
	if p.Phone == "" || p.Phone[0] != '+' {
		return nil, validation.Errors{"phone": validation.NewError("validation_phone", "invalid phone number")}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &models.User{ID: uuid.New().String(), Name: p.Name, Email: p.Email, Phone: p.Phone}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetUser(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, services.ErrNotFound
}

type fakePatients struct {
	mu         sync.Mutex
	byUser     map[string]*models.Patient
	docs       map[string]*models.Document
	registered []models.RegisterPatientParams
}

func newFakePatients(patients ...*models.Patient) *fakePatients {
	f := &fakePatients{byUser: make(map[string]*models.Patient), docs: make(map[string]*models.Document)}
	for _, p := range patients {
		f.byUser[p.UserID] = p
	}
	return f
}

func (f *fakePatients) GetPatient(_ context.Context, userID string) (*models.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byUser[userID]; ok {
		return p, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakePatients) RegisterPatient(_ context.Context, params models.RegisterPatientParams) (*models.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byUser[params.UserID]; ok {
		return nil, services.ErrConflict
	}
	f.registered = append(f.registered, params)
	p := &models.Patient{ID: uuid.New().String(), UserID: params.UserID, Name: params.Name}
	f.byUser[params.UserID] = p
	return p, nil
}

func (f *fakePatients) GetDocument(_ context.Context, id string) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.docs[id]; ok {
		return d, nil
	}
	return nil, services.ErrNotFound
}

type fakeAppointments struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
	err   error
}

func newFakeAppointments(appts ...*models.Appointment) *fakeAppointments {
	f := &fakeAppointments{appts: make(map[string]*models.Appointment)}
	for _, a := range appts {
		f.appts[a.ID] = a
	}
	return f
}

func (f *fakeAppointments) CreateAppointment(_ context.Context, p models.CreateAppointmentParams) (*models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a := &models.Appointment{
		ID: uuid.New().String(), UserID: p.UserID, PatientID: p.Patient,
		PrimaryPhysician: p.PrimaryPhysician, AppointmentDate: p.AppointmentDate,
		Reason: p.Reason, Note: p.Note, Status: p.Status,
	}
	f.appts[a.ID] = a
	return a, nil
}

func (f *fakeAppointments) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.appts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, fmt.Errorf("appointment %s: %w", id, services.ErrNotFound)
}

func (f *fakeAppointments) UpdateAppointment(_ context.Context, p models.UpdateAppointmentParams) (*models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[p.AppointmentID]
	if !ok {
		return nil, services.ErrNotFound
	}
	if a.Status == models.StatusCancelled {
		return nil, services.ErrInvalidTransition
	}
	a.Status = p.Appointment.Status
	a.CancellationReason = p.Appointment.CancellationReason
	if p.Appointment.PrimaryPhysician != "" {
		a.PrimaryPhysician = p.Appointment.PrimaryPhysician
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointments) GetRecentAppointmentList(context.Context) (*models.AppointmentSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	summary := &models.AppointmentSummary{}
	for _, a := range f.appts {
		summary.Documents = append(summary.Documents, *a)
		summary.TotalCount++
		switch a.Status {
		case models.StatusScheduled:
			summary.ScheduledCount++
		case models.StatusPending:
			summary.PendingCount++
		case models.StatusCancelled:
			summary.CancelledCount++
		}
	}
	return summary, nil
}

type countingObserver struct {
	mu     sync.Mutex
	counts map[string]int
}

func (o *countingObserver) ObserveSubmission(form, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.counts == nil {
		o.counts = make(map[string]int)
	}
	o.counts[form+"/"+outcome]++
}
