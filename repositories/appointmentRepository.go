package repositories

import (
	"CarePulse/cache"
	"CarePulse/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	AppointmentCacheExpiry = 7 * 24 * time.Hour
	recentAppointmentsKey  = "appointments_recent_cache"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, id string, mutate func(*models.Appointment) error) (*models.Appointment, error)
	ListRecent(ctx context.Context) ([]models.Appointment, error)
	CountByStatus(ctx context.Context) (map[models.AppointmentStatus]int64, error)
}

type appointmentRepository struct {
	db     *gorm.DB
	cache  *cache.Cache
	locker *Locker
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache, locker *Locker) AppointmentRepository {
	return &appointmentRepository{db: db, cache: cache, locker: locker}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return r.invalidate(ctx, appointment.ID)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(id)
	var appointment models.Appointment
	if hit, err := r.cache.GetJSON(ctx, cacheKey, &appointment); err != nil {
		log.Warn().Err(err).Str("appointment_id", id).Msg("failed to get appointment from cache")
	} else if hit {
		return &appointment, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name, email, phone")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointment, AppointmentCacheExpiry); err != nil {
		log.Warn().Err(err).Str("appointment_id", id).Msg("failed to set appointment in cache")
	}
	return &appointment, nil
}

// Update loads the appointment under its lock, applies mutate and saves the
// result. A nil appointment with a nil error means it does not exist.
func (r *appointmentRepository) Update(ctx context.Context, id string, mutate func(*models.Appointment) error) (*models.Appointment, error) {
	var updated *models.Appointment
	lockKey := fmt.Sprintf("appointment_lock:%s", id)
	err := r.locker.WithLock(ctx, lockKey, func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var appointment models.Appointment
			if err := tx.Preload("Patient").First(&appointment, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return fmt.Errorf("failed to load appointment: %w", err)
			}
			if err := mutate(&appointment); err != nil {
				return err
			}
			if err := tx.Omit("Patient").Save(&appointment).Error; err != nil {
				return fmt.Errorf("failed to update appointment: %w", err)
			}
			updated = &appointment
			return nil
		})
	})
	if err != nil || updated == nil {
		return nil, err
	}
	return updated, r.invalidate(ctx, id)
}

func (r *appointmentRepository) ListRecent(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	if hit, err := r.cache.GetJSON(ctx, recentAppointmentsKey, &appointments); err != nil {
		log.Warn().Err(err).Msg("failed to get recent appointments from cache")
	} else if hit {
		return appointments, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name, email, phone")
		}).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	if err := r.cache.SetJSON(ctx, recentAppointmentsKey, appointments, AppointmentCacheExpiry); err != nil {
		log.Warn().Err(err).Msg("failed to set recent appointments in cache")
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context) (map[models.AppointmentStatus]int64, error) {
	var rows []struct {
		Status models.AppointmentStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	counts := make(map[models.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *appointmentRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.DeleteBatch(ctx, r.getAppointmentCacheKey(id), recentAppointmentsKey); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return nil
}

func (r *appointmentRepository) getAppointmentCacheKey(id string) string {
	return fmt.Sprintf("appointment_cache:%s", id)
}
