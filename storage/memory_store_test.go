package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/anjiri1684/workforce_tracker/models"
)

func seedWorker(t *testing.T, store *MemoryStore, name string) models.Worker {
	t.Helper()
	worker := models.Worker{Name: name}
	require.NoError(t, store.CreateWorker(context.Background(), &worker))
	return worker
}

func TestCreateWorkerThenReadBack(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created := seedWorker(t, store, "Jane Mwangi")
	require.NotEqual(t, uuid.Nil, created.ID)

	workers, err := store.GetWorkersWithCertifications(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 1)
	require.Equal(t, created.ID, workers[0].ID)
	require.NotNil(t, workers[0].Certifications)
	require.Empty(t, workers[0].Certifications)
}

func TestCreateCertificationDefaults(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	worker := seedWorker(t, store, "Jane Mwangi")

	before := time.Now()
	cert := models.Certification{
		WorkerID:          worker.ID,
		Name:              "Safety Induction",
		CertificateNumber: "C1",
	}
	require.NoError(t, store.CreateCertification(ctx, &cert))

	require.Equal(t, models.CertStatusActive, cert.Status)
	require.False(t, cert.IssuedDate.Before(before))
	require.False(t, cert.IssuedDate.After(time.Now()))
}

func TestCreateCertificationUnknownWorkerFails(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cert := models.Certification{
		WorkerID:          uuid.New(),
		Name:              "Safety Induction",
		CertificateNumber: "C1",
	}
	err := store.CreateCertification(ctx, &cert)
	require.ErrorIs(t, err, models.ErrForeignKey)

	certs, err := store.GetAllCertifications(ctx)
	require.NoError(t, err)
	require.Empty(t, certs)
}

func TestCreateCertificationUnknownCourseFails(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	worker := seedWorker(t, store, "Jane Mwangi")

	bogus := uuid.New()
	cert := models.Certification{
		WorkerID:          worker.ID,
		CourseID:          &bogus,
		Name:              "First Aid",
		CertificateNumber: "C2",
	}
	require.ErrorIs(t, store.CreateCertification(ctx, &cert), models.ErrForeignKey)
}

func TestDuplicateCertificateNumberRejected(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	worker := seedWorker(t, store, "Jane Mwangi")

	first := models.Certification{WorkerID: worker.ID, Name: "First Aid", CertificateNumber: "DUP-1"}
	require.NoError(t, store.CreateCertification(ctx, &first))

	second := models.Certification{WorkerID: worker.ID, Name: "First Aid Refresher", CertificateNumber: "DUP-1"}
	require.ErrorIs(t, store.CreateCertification(ctx, &second), models.ErrDuplicateEntry)
}

func TestGetExpiringCertifications(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	worker := seedWorker(t, store, "Jane Mwangi")

	now := time.Now()
	in10 := now.AddDate(0, 0, 10)
	in40 := now.AddDate(0, 0, 40)
	lapsed := now.AddDate(0, 0, -2)

	for i, expiry := range []*time.Time{&in10, &in40, &lapsed, nil} {
		cert := models.Certification{
			WorkerID:          worker.ID,
			Name:              "Course",
			CertificateNumber: "EXP-" + string(rune('A'+i)),
			ExpiryDate:        expiry,
		}
		require.NoError(t, store.CreateCertification(ctx, &cert))
	}

	expiring, err := store.GetExpiringCertifications(ctx, 30, now)
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	for _, cert := range expiring {
		require.NotNil(t, cert.ExpiryDate)
		require.True(t, cert.ExpiryDate.Before(now.AddDate(0, 0, 31)))
	}
}

func TestGetExpiringCertificationsNegativeWindow(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.GetExpiringCertifications(context.Background(), -5, time.Now())
	require.ErrorIs(t, err, models.ErrNegativeWindow)
}

func TestWorkerJoinIsScopedToOwner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	jane := seedWorker(t, store, "Jane")
	bob := seedWorker(t, store, "Bob")

	cert := models.Certification{WorkerID: jane.ID, Name: "First Aid", CertificateNumber: "J-1"}
	require.NoError(t, store.CreateCertification(ctx, &cert))

	workers, err := store.GetWorkersWithCertifications(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 2)

	byID := map[uuid.UUID][]models.Certification{}
	for _, w := range workers {
		byID[w.ID] = w.Certifications
	}
	require.Len(t, byID[jane.ID], 1)
	require.Empty(t, byID[bob.ID])
}

func TestUpdateCourse(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	course := models.Course{Name: "Working at Heights", IsActive: true}
	require.NoError(t, store.CreateCourse(ctx, &course))

	course.IsActive = false
	require.NoError(t, store.UpdateCourse(ctx, &course))

	got, err := store.GetCourseByID(ctx, course.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestUpdateMissingRecordsReturnNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	worker := models.Worker{ID: uuid.New(), Name: "Ghost"}
	require.ErrorIs(t, store.UpdateWorker(ctx, &worker), models.ErrNotFound)

	course := models.Course{ID: uuid.New(), Name: "Ghost Course"}
	require.ErrorIs(t, store.UpdateCourse(ctx, &course), models.ErrNotFound)
}

func TestUserLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := models.User{FullName: "Site Admin", Email: "admin@example.com", Password: "hash"}
	require.NoError(t, store.CreateUser(ctx, &user))

	found, err := store.GetUserByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)

	dup := models.User{FullName: "Imposter", Email: "admin@example.com", Password: "hash"}
	require.ErrorIs(t, store.CreateUser(ctx, &dup), models.ErrDuplicateEntry)

	_, err = store.GetUserByID(ctx, uuid.New())
	require.ErrorIs(t, err, models.ErrNotFound)
}
