package services

import (
	"CarePulse/models"
	"CarePulse/repositories"
	"context"
	"sync"
)

// -- Fake repositories --

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakePatientRepo struct {
	byUser map[string]*models.Patient
	docs   *fakeDocumentRepo
	err    error
}

// newFakePatientRepo writes documents into docs, the way the real
// repository stores both in one transaction.
func newFakePatientRepo(docs *fakeDocumentRepo) *fakePatientRepo {
	return &fakePatientRepo{byUser: make(map[string]*models.Patient), docs: docs}
}

func (f *fakePatientRepo) Create(_ context.Context, p *models.Patient, d *models.Document) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byUser[p.UserID]; ok {
		return repositories.ErrPatientExists
	}
	if d != nil {
		f.docs.docs[d.ID] = d
	}
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakePatientRepo) GetByUserID(_ context.Context, userID string) (*models.Patient, error) {
	return f.byUser[userID], nil
}

type fakeDocumentRepo struct {
	docs map[string]*models.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*models.Document)}
}

func (f *fakeDocumentRepo) GetByID(_ context.Context, id string) (*models.Document, error) {
	return f.docs[id], nil
}

type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
	order []string
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.appts[a.ID] = &cp
	f.order = append(f.order, a.ID)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, id string, mutate func(*models.Appointment) error) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	if err := mutate(&cp); err != nil {
		return nil, err
	}
	f.appts[id] = &cp
	out := cp
	return &out, nil
}

func (f *fakeAppointmentRepo) ListRecent(_ context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Appointment, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, *f.appts[f.order[i]])
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CountByStatus(_ context.Context) (map[models.AppointmentStatus]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[models.AppointmentStatus]int64)
	for _, a := range f.appts {
		counts[a.Status]++
	}
	return counts, nil
}

// -- Fake notifier --

type recordingNotifier struct {
	mu       sync.Mutex
	statuses []models.AppointmentStatus
	err      error
}

func (n *recordingNotifier) AppointmentUpdated(_ context.Context, a *models.Appointment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statuses = append(n.statuses, a.Status)
	return n.err
}

func (n *recordingNotifier) sent() []models.AppointmentStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.AppointmentStatus(nil), n.statuses...)
}
