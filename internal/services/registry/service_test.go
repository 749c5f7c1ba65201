package registry

import (
	"strings"
	"testing"

	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operator = "operator-account"

func newTestService() *Service {
	return NewService(repositories.NewMemoryStore(250), operator)
}

func TestRegister(t *testing.T) {
	svc := newTestService()

	t.Run("non-operator rejected", func(t *testing.T) {
		_, err := svc.Register("Shop", "merchant-1", "random-caller")
		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.False(t, svc.IsActive("merchant-1"))
	})

	t.Run("operator registers", func(t *testing.T) {
		id, err := svc.Register("Shop", "merchant-1", operator)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
		assert.True(t, svc.IsActive("merchant-1"))
	})

	t.Run("re-registration overwrites", func(t *testing.T) {
		require.NoError(t, svc.AdjustVolume("merchant-1", 500))
		require.NoError(t, svc.Deactivate("merchant-1", operator))

		id, err := svc.Register("Shop v2", "merchant-1", operator)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), id)

		m, err := svc.Get("merchant-1")
		require.NoError(t, err)
		assert.Equal(t, "Shop v2", m.Name)
		assert.True(t, m.IsActive)
		assert.Equal(t, uint64(0), m.TotalVolume)
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		_, err := svc.Register(strings.Repeat("n", 10_000), "merchant-2", operator)
		assert.ErrorIs(t, err, domain.ErrInvalidName)
		assert.False(t, svc.IsActive("merchant-2"))
	})

	t.Run("name at the bound accepted", func(t *testing.T) {
		_, err := svc.Register(strings.Repeat("n", models.MaxNameLength), "merchant-3", operator)
		require.NoError(t, err)
	})
}

func TestDeactivate(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register("Shop", "merchant-1", operator)
	require.NoError(t, err)

	tests := []struct {
		name    string
		address string
		caller  string
		wantErr error
	}{
		{"non-operator rejected", "merchant-1", "random-caller", domain.ErrNotOwner},
		{"unknown merchant", "merchant-9", operator, domain.ErrMerchantNotFound},
		{"operator deactivates", "merchant-1", operator, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Deactivate(tt.address, tt.caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	// The record survives deactivation; only the flag flips.
	m, err := svc.Get("merchant-1")
	require.NoError(t, err)
	assert.False(t, m.IsActive)
	assert.Equal(t, uint64(1), m.RegistrationID)
	assert.False(t, svc.IsActive("merchant-1"))
}

func TestIsActiveAbsentMerchant(t *testing.T) {
	svc := newTestService()
	assert.False(t, svc.IsActive("never-registered"))
}

func TestAdjustVolume(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register("Shop", "merchant-1", operator)
	require.NoError(t, err)

	require.NoError(t, svc.AdjustVolume("merchant-1", 1000))
	require.NoError(t, svc.AdjustVolume("merchant-1", -400))

	m, err := svc.Get("merchant-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(600), m.TotalVolume)

	t.Run("underflow rejected, not clamped", func(t *testing.T) {
		err := svc.AdjustVolume("merchant-1", -601)
		assert.ErrorIs(t, err, domain.ErrVolumeUnderflow)

		m, _ := svc.Get("merchant-1")
		assert.Equal(t, uint64(600), m.TotalVolume)
	})

	t.Run("unknown merchant", func(t *testing.T) {
		err := svc.AdjustVolume("merchant-9", 10)
		assert.ErrorIs(t, err, domain.ErrMerchantNotFound)
	})
}
