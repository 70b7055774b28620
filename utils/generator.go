package utils

import (
	"math/rand"
	"time"
)

const certificateNumberLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCertificateNumber produces a certificate number for records
// created without one. Collisions are caught by the unique constraint on
// certificate_number.
func GenerateCertificateNumber() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, certificateNumberLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return "WT-" + string(b)
}
