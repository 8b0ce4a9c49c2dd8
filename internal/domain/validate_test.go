package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	require.NoError(t, ValidateDate("2024-01-01"))
	require.NoError(t, ValidateDate("2024-02-29"))

	tests := []string{"", "2024-1-1", "01-01-2024", "2024/01/01", "2024-13-01", "2024-02-30", "today"}
	for _, date := range tests {
		t.Run(date, func(t *testing.T) {
			var verr *ValidationError
			require.ErrorAs(t, ValidateDate(date), &verr)
		})
	}
}

func TestNormalizeParticipant(t *testing.T) {
	require.Equal(t, "alice@x.com", NormalizeParticipant(" Alice@X.com "))
	require.Equal(t, "", NormalizeParticipant("   "))
}

func TestValidateSubmission(t *testing.T) {
	require.NoError(t, ValidateSubmission("2024-01-01", "alice@x.com", 0))

	var verr *ValidationError
	require.ErrorAs(t, ValidateSubmission("2024-01-01", "", 1), &verr)
	require.ErrorAs(t, ValidateSubmission("2024-01-01", "alice@x.com", -1), &verr)
	require.ErrorAs(t, ValidateSubmission("bad", "alice@x.com", 1), &verr)
}
