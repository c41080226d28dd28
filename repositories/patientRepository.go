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
	PatientCacheExpiry = 7 * 24 * time.Hour
)

// ErrPatientExists is returned when a user registers a second time.
var ErrPatientExists = errors.New("patient already registered for this user")

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient, doc *models.Document) error
	GetByUserID(ctx context.Context, userID string) (*models.Patient, error)
}

type patientRepository struct {
	db     *gorm.DB
	cache  *cache.Cache
	locker *Locker
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache, locker *Locker) PatientRepository {
	return &patientRepository{db: db, cache: cache, locker: locker}
}

// Create inserts the patient and, when doc is not nil, its identification
// document in one transaction. Nothing is stored if either insert fails.
func (r *patientRepository) Create(ctx context.Context, patient *models.Patient, doc *models.Document) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.UserID)
	return r.locker.WithLock(ctx, lockKey, func() error {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Patient{}).
				Where("user_id = ?", patient.UserID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check for existing patient: %w", err)
			}
			if count > 0 {
				return ErrPatientExists
			}

			if doc != nil {
				if err := tx.Create(doc).Error; err != nil {
					return fmt.Errorf("failed to store document: %w", err)
				}
			}
			if err := tx.Create(patient).Error; err != nil {
				return fmt.Errorf("failed to create patient: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return r.cache.Delete(ctx, r.getPatientCacheKey(patient.UserID))
	})
}

// GetByUserID returns nil, nil when the user has not registered.
func (r *patientRepository) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(userID)
	var patient models.Patient
	if hit, err := r.cache.GetJSON(ctx, cacheKey, &patient); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to get patient from cache")
	} else if hit {
		return &patient, nil
	}

	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patient, PatientCacheExpiry); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to set patient in cache")
	}
	return &patient, nil
}

func (r *patientRepository) getPatientCacheKey(userID string) string {
	return fmt.Sprintf("patient_cache:%s", userID)
}
