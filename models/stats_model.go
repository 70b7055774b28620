package models

type Stats struct {
	TotalWorkers        int `json:"totalWorkers"`
	ActiveCourses       int `json:"activeCourses"`
	TotalCertifications int `json:"totalCertifications"`
	ExpiringSoon        int `json:"expiringSoon"`
}
