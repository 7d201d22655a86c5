package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_user", func(t *testing.T) {
		user, err := domain.NewUser("Ada", "Ada@Example.COM", "$2a$10$hash", "UK")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "ada@example.com", user.Email, "email must be normalized to lowercase")
		assert.Equal(t, "UK", user.Country)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	tests := []struct {
		name     string
		userName string
		email    string
		hash     string
		country  string
		wantErr  error
	}{
		{
			name:     "empty_name",
			userName: "",
			email:    "a@x.com",
			hash:     "h",
			country:  "US",
			wantErr:  domain.ErrEmptyUserName,
		},
		{
			name:     "empty_email",
			userName: "A",
			email:    "",
			hash:     "h",
			country:  "US",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "malformed_email",
			userName: "A",
			email:    "not-an-email",
			hash:     "h",
			country:  "US",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "missing_domain_dot",
			userName: "A",
			email:    "a@example",
			hash:     "h",
			country:  "US",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "empty_country",
			userName: "A",
			email:    "a@x.com",
			hash:     "h",
			country:  "",
			wantErr:  domain.ErrEmptyCountry,
		},
		{
			name:     "empty_hash",
			userName: "A",
			email:    "a@x.com",
			hash:     "",
			country:  "US",
			wantErr:  domain.ErrEmptyHashedPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewUser(tt.userName, tt.email, tt.hash, tt.country)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", domain.NormalizeEmail("  A@X.Com "))
}
