package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	all := []Status{
		StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusReturned,
	}
	for _, s := range all {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, Status("refunded").Valid())
}

func TestStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.DisplayName())
	assert.Equal(t, "Shipped", StatusShipped.DisplayName())
	assert.Equal(t, "Cancelled", StatusCancelled.DisplayName())
}

func TestOrder_IsEligibleForCancellation(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusProcessing, false},
		{StatusShipped, false},
		{StatusDelivered, false},
		{StatusCancelled, false},
		{StatusReturned, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			o := Order{Status: tc.status}
			assert.Equal(t, tc.want, o.IsEligibleForCancellation())
		})
	}
}
