package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anjiri1684/workforce_tracker/models"
	"github.com/anjiri1684/workforce_tracker/services"
)

// MemoryStore keeps everything in process memory. It backs the handler
// tests and lets the API run without a DATABASE_URL for local poking.
// Slices keep insertion order so reads are stable within a snapshot.
type MemoryStore struct {
	mu             sync.RWMutex
	workers        []models.Worker
	courses        []models.Course
	certifications []models.Certification
	users          []models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetAllWorkers(_ context.Context) ([]models.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Worker, len(s.workers))
	copy(out, s.workers)
	for i := range out {
		out[i].Certifications = []models.Certification{}
	}
	return out, nil
}

func (s *MemoryStore) GetWorkersWithCertifications(_ context.Context) ([]models.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Worker, len(s.workers))
	copy(out, s.workers)
	for i := range out {
		out[i].Certifications = s.certificationsOf(out[i].ID)
	}
	return out, nil
}

func (s *MemoryStore) GetWorkerByID(_ context.Context, id uuid.UUID) (models.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, worker := range s.workers {
		if worker.ID == id {
			worker.Certifications = s.certificationsOf(id)
			return worker, nil
		}
	}
	return models.Worker{}, models.ErrNotFound
}

func (s *MemoryStore) CreateWorker(_ context.Context, worker *models.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	now := time.Now()
	worker.CreatedAt = now
	worker.UpdatedAt = now
	worker.Certifications = []models.Certification{}

	stored := *worker
	stored.Certifications = nil
	s.workers = append(s.workers, stored)
	return nil
}

func (s *MemoryStore) UpdateWorker(_ context.Context, worker *models.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workers {
		if s.workers[i].ID == worker.ID {
			worker.UpdatedAt = time.Now()
			stored := *worker
			stored.Certifications = nil
			s.workers[i] = stored
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *MemoryStore) GetAllCourses(_ context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *MemoryStore) GetCourseByID(_ context.Context, id uuid.UUID) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, course := range s.courses {
		if course.ID == id {
			return course, nil
		}
	}
	return models.Course{}, models.ErrNotFound
}

func (s *MemoryStore) CreateCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	s.courses = append(s.courses, *course)
	return nil
}

func (s *MemoryStore) UpdateCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == course.ID {
			course.UpdatedAt = time.Now()
			s.courses[i] = *course
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *MemoryStore) GetAllCertifications(_ context.Context) ([]models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Certification, len(s.certifications))
	copy(out, s.certifications)
	return out, nil
}

func (s *MemoryStore) CreateCertification(_ context.Context, cert *models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyCertDefaults(cert)

	if !s.workerExists(cert.WorkerID) {
		return models.ErrForeignKey
	}
	if cert.CourseID != nil && !s.courseExists(*cert.CourseID) {
		return models.ErrForeignKey
	}
	for _, existing := range s.certifications {
		if existing.CertificateNumber == cert.CertificateNumber {
			return models.ErrDuplicateEntry
		}
	}

	if cert.ID == uuid.Nil {
		cert.ID = uuid.New()
	}
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now
	s.certifications = append(s.certifications, *cert)
	return nil
}

func (s *MemoryStore) GetExpiringCertifications(_ context.Context, windowDays int, now time.Time) ([]models.Certification, error) {
	if windowDays < 0 {
		return nil, models.ErrNegativeWindow
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	expiring := []models.Certification{}
	for _, cert := range s.certifications {
		ok, err := services.IsExpiringWithin(cert, windowDays, now)
		if err != nil {
			return nil, err
		}
		if ok {
			expiring = append(expiring, cert)
		}
	}
	return expiring, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (s *MemoryStore) GetUserByID(_ context.Context, id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.ErrDuplicateEntry
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = "staff"
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) certificationsOf(workerID uuid.UUID) []models.Certification {
	certs := []models.Certification{}
	for _, cert := range s.certifications {
		if cert.WorkerID == workerID {
			certs = append(certs, cert)
		}
	}
	return certs
}

func (s *MemoryStore) workerExists(id uuid.UUID) bool {
	for _, worker := range s.workers {
		if worker.ID == id {
			return true
		}
	}
	return false
}

func (s *MemoryStore) courseExists(id uuid.UUID) bool {
	for _, course := range s.courses {
		if course.ID == id {
			return true
		}
	}
	return false
}
