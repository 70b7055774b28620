package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anjiri1684/workforce_tracker/models"
)

// Store is the persistence gateway over workers, courses, certifications
// and users. Create operations assign ids and apply the documented
// defaults (issuedDate, status). Failures map onto the sentinel errors in
// the models package.
type Store interface {
	GetAllWorkers(ctx context.Context) ([]models.Worker, error)
	// GetWorkersWithCertifications returns every worker with its
	// certifications attached. The certifications slice is never nil.
	GetWorkersWithCertifications(ctx context.Context) ([]models.Worker, error)
	GetWorkerByID(ctx context.Context, id uuid.UUID) (models.Worker, error)
	CreateWorker(ctx context.Context, worker *models.Worker) error
	UpdateWorker(ctx context.Context, worker *models.Worker) error

	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error

	GetAllCertifications(ctx context.Context) ([]models.Certification, error)
	CreateCertification(ctx context.Context, cert *models.Certification) error
	// GetExpiringCertifications returns the certifications whose expiry
	// date falls on or before now plus windowDays days. Records without
	// an expiry date are never returned.
	GetExpiringCertifications(ctx context.Context, windowDays int, now time.Time) ([]models.Certification, error)

	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}
