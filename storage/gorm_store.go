package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anjiri1684/workforce_tracker/models"
)

// GormStore backs the gateway with Postgres through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetAllWorkers(ctx context.Context) ([]models.Worker, error) {
	var workers []models.Worker
	if err := s.db.WithContext(ctx).Order("created_at").Find(&workers).Error; err != nil {
		return nil, err
	}
	for i := range workers {
		if workers[i].Certifications == nil {
			workers[i].Certifications = []models.Certification{}
		}
	}
	return workers, nil
}

func (s *GormStore) GetWorkersWithCertifications(ctx context.Context) ([]models.Worker, error) {
	var workers []models.Worker
	err := s.db.WithContext(ctx).
		Preload("Certifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("certifications.created_at")
		}).
		Order("created_at").
		Find(&workers).Error
	if err != nil {
		return nil, err
	}
	for i := range workers {
		if workers[i].Certifications == nil {
			workers[i].Certifications = []models.Certification{}
		}
	}
	return workers, nil
}

func (s *GormStore) GetWorkerByID(ctx context.Context, id uuid.UUID) (models.Worker, error) {
	var worker models.Worker
	err := s.db.WithContext(ctx).Preload("Certifications").Where("id = ?", id).First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Worker{}, models.ErrNotFound
		}
		return models.Worker{}, err
	}
	if worker.Certifications == nil {
		worker.Certifications = []models.Certification{}
	}
	return worker, nil
}

func (s *GormStore) CreateWorker(ctx context.Context, worker *models.Worker) error {
	if err := s.db.WithContext(ctx).Create(worker).Error; err != nil {
		return translate(err)
	}
	if worker.Certifications == nil {
		worker.Certifications = []models.Certification{}
	}
	return nil
}

func (s *GormStore) UpdateWorker(ctx context.Context, worker *models.Worker) error {
	return translate(s.db.WithContext(ctx).Save(worker).Error)
}

func (s *GormStore) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.WithContext(ctx).Order("created_at").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) GetCourseByID(ctx context.Context, id uuid.UUID) (models.Course, error) {
	var course models.Course
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, models.ErrNotFound
		}
		return models.Course{}, err
	}
	return course, nil
}

func (s *GormStore) CreateCourse(ctx context.Context, course *models.Course) error {
	return translate(s.db.WithContext(ctx).Create(course).Error)
}

func (s *GormStore) UpdateCourse(ctx context.Context, course *models.Course) error {
	return translate(s.db.WithContext(ctx).Save(course).Error)
}

func (s *GormStore) GetAllCertifications(ctx context.Context) ([]models.Certification, error) {
	var certs []models.Certification
	if err := s.db.WithContext(ctx).Order("created_at").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (s *GormStore) CreateCertification(ctx context.Context, cert *models.Certification) error {
	applyCertDefaults(cert)

	// Migrations run without foreign key constraints, so referential
	// integrity is probed explicitly to keep the failure distinguishable
	// from a generic persistence error.
	var workerCount int64
	if err := s.db.WithContext(ctx).Model(&models.Worker{}).Where("id = ?", cert.WorkerID).Count(&workerCount).Error; err != nil {
		return err
	}
	if workerCount == 0 {
		return models.ErrForeignKey
	}

	if cert.CourseID != nil {
		var courseCount int64
		if err := s.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", *cert.CourseID).Count(&courseCount).Error; err != nil {
			return err
		}
		if courseCount == 0 {
			return models.ErrForeignKey
		}
	}

	return translate(s.db.WithContext(ctx).Create(cert).Error)
}

func (s *GormStore) GetExpiringCertifications(ctx context.Context, windowDays int, now time.Time) ([]models.Certification, error) {
	if windowDays < 0 {
		return nil, models.ErrNegativeWindow
	}

	threshold := now.AddDate(0, 0, windowDays)
	var certs []models.Certification
	err := s.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", threshold).
		Order("expiry_date").
		Find(&certs).Error
	if err != nil {
		return nil, err
	}
	return certs, nil
}

// GetUserByEmail matches case-insensitively, same as the memory store, so
// login does not depend on how the address was typed at registration.
func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *GormStore) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrDuplicateEntry
	}
	return err
}

func applyCertDefaults(cert *models.Certification) {
	if cert.IssuedDate.IsZero() {
		cert.IssuedDate = time.Now()
	}
	if cert.Status == "" {
		cert.Status = models.CertStatusActive
	}
}
