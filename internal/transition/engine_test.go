package transition

import (
	"testing"

	"github.com/giftmart/giftadmin/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAvailable(t *testing.T) {
	tests := []struct {
		name    string
		current models.Status
		want    []models.Status
	}{
		{
			name:    "pending_advances_to_preparing",
			current: models.StatusPending,
			want:    []models.Status{models.StatusPreparing},
		},
		{
			name:    "preparing_advances_to_done",
			current: models.StatusPreparing,
			want:    []models.Status{models.StatusDone},
		},
		{
			name:    "done_is_terminal",
			current: models.StatusDone,
			want:    []models.Status{},
		},
		{
			name:    "rejected_is_terminal",
			current: models.StatusRejected,
			want:    []models.Status{},
		},
		{
			name:    "unknown_status_yields_empty_set",
			current: models.Status("fail"),
			want:    []models.Status{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Available(tt.current))
		})
	}
}

func TestCan(t *testing.T) {
	assert.True(t, Can(models.StatusPending, models.StatusPreparing))
	assert.True(t, Can(models.StatusPreparing, models.StatusDone))

	// skipping a step is never legal
	assert.False(t, Can(models.StatusPending, models.StatusDone))
	assert.False(t, Can(models.StatusDone, models.StatusPreparing))
	assert.False(t, Can(models.StatusRejected, models.StatusPending))
	assert.False(t, Can(models.Status("prepering"), models.StatusDone))
}

func TestCanReject(t *testing.T) {
	assert.True(t, CanReject(models.StatusPending))
	assert.True(t, CanReject(models.StatusPreparing))
	assert.False(t, CanReject(models.StatusDone))
	assert.False(t, CanReject(models.StatusRejected))
	assert.False(t, CanReject(models.Status("fail")))
}

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		next    models.Status
		payload Payload
		wantErr error
	}{
		{
			name:    "rejection_without_reason_fails",
			next:    models.StatusRejected,
			payload: Payload{},
			wantErr: models.ErrMissingReason,
		},
		{
			name:    "rejection_with_whitespace_reason_fails",
			next:    models.StatusRejected,
			payload: Payload{RejectionReason: "   "},
			wantErr: models.ErrMissingReason,
		},
		{
			name:    "rejection_with_reason_succeeds",
			next:    models.StatusRejected,
			payload: Payload{RejectionReason: "bad item"},
			wantErr: nil,
		},
		{
			name:    "preparing_needs_no_payload",
			next:    models.StatusPreparing,
			payload: Payload{},
			wantErr: nil,
		},
		{
			name:    "done_needs_no_payload",
			next:    models.StatusDone,
			payload: Payload{},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(tt.next, tt.payload)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
