package services

import (
	"time"

	"github.com/anjiri1684/workforce_tracker/models"
)

// StatsExpiryWindowDays is the fixed lookahead used by the summary
// statistics.
const StatsExpiryWindowDays = 30

// IsExpiringWithin reports whether a certification's expiry date falls on
// or before now plus windowDays days. A certification without an expiry
// date never expires, so it is never expiring. An expiry date already in
// the past still counts as expiring: "expiring soon" deliberately includes
// "already expired" so that lapsed certifications keep showing up in
// expiry views.
func IsExpiringWithin(cert models.Certification, windowDays int, now time.Time) (bool, error) {
	if windowDays < 0 {
		return false, models.ErrNegativeWindow
	}
	if cert.ExpiryDate == nil {
		return false, nil
	}
	threshold := now.AddDate(0, 0, windowDays)
	return !cert.ExpiryDate.After(threshold), nil
}

// ComputeStats aggregates the summary counts over full snapshots of the
// three collections. It is a pure function of its inputs and is recomputed
// on every call.
func ComputeStats(workers []models.Worker, courses []models.Course, certifications []models.Certification, now time.Time) models.Stats {
	stats := models.Stats{
		TotalWorkers:        len(workers),
		TotalCertifications: len(certifications),
	}

	for _, course := range courses {
		if course.IsActive {
			stats.ActiveCourses++
		}
	}

	for _, cert := range certifications {
		expiring, err := IsExpiringWithin(cert, StatsExpiryWindowDays, now)
		if err == nil && expiring {
			stats.ExpiringSoon++
		}
	}

	return stats
}
