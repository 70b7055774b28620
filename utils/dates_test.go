package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptedForms(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-01-31", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"2026-01-31T10:30:00Z", time.Date(2026, 1, 31, 10, 30, 0, 0, time.UTC)},
		{"2026-01-31T10:30:00", time.Date(2026, 1, 31, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.input)
		require.NoError(t, err, tc.input)
		require.True(t, got.Equal(tc.want), "parsing %q", tc.input)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("next tuesday")
	require.Error(t, err)
}

func TestParseDatePtr(t *testing.T) {
	got, err := ParseDatePtr(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	empty := ""
	got, err = ParseDatePtr(&empty)
	require.NoError(t, err)
	require.Nil(t, got)

	value := "2026-01-31"
	got, err = ParseDatePtr(&value)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestGenerateCertificateNumber(t *testing.T) {
	number := GenerateCertificateNumber()
	require.True(t, strings.HasPrefix(number, "WT-"))
	require.Len(t, number, len("WT-")+certificateNumberLength)
}
