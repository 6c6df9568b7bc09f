package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanChangeStatus_FullTable(t *testing.T) {
	cases := []struct {
		requested ApplicationStatus
		reference ApplicationStatus
		want      bool
	}{
		{ApplicationStatusEnabled, ApplicationStatusEnabled, true},
		{ApplicationStatusEnabled, ApplicationStatusIncoming, false},
		{ApplicationStatusEnabled, ApplicationStatusDisabled, false},
		{ApplicationStatusIncoming, ApplicationStatusEnabled, false},
		{ApplicationStatusIncoming, ApplicationStatusIncoming, true},
		{ApplicationStatusIncoming, ApplicationStatusDisabled, false},
		{ApplicationStatusDisabled, ApplicationStatusEnabled, true},
		{ApplicationStatusDisabled, ApplicationStatusIncoming, true},
		{ApplicationStatusDisabled, ApplicationStatusDisabled, true},
	}

	for _, tc := range cases {
		got := CanChangeStatus(tc.requested, tc.reference)
		assert.Equal(t, tc.want, got, "requested=%s reference=%s", tc.requested, tc.reference)
	}
}

func TestCanChangeStatus_UnknownLabel(t *testing.T) {
	assert.False(t, CanChangeStatus("UNKNOWN", ApplicationStatusEnabled))
	assert.False(t, CanChangeStatus(ApplicationStatusEnabled, "UNKNOWN"))
}
