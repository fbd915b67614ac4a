package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid staff user",
			user: User{
				Email:     "test@example.com",
				FirstName: "John",
				LastName:  "Doe",
				Role:      RoleStaff,
			},
			wantErr: false,
		},
		{
			name: "valid admin user",
			user: User{
				Email:     "admin@example.com",
				FirstName: "Jane",
				LastName:  "Admin",
				Role:      RoleAdmin,
			},
			wantErr: false,
		},
		{
			name: "invalid email",
			user: User{
				Email:     "invalid-email",
				FirstName: "John",
				LastName:  "Doe",
				Role:      RoleStaff,
			},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name: "empty email",
			user: User{
				Email:     "",
				FirstName: "John",
				LastName:  "Doe",
				Role:      RoleStaff,
			},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name: "empty first name",
			user: User{
				Email:     "test@example.com",
				FirstName: "",
				LastName:  "Doe",
				Role:      RoleStaff,
			},
			wantErr: true,
			errMsg:  "first name is required",
		},
		{
			name: "empty last name",
			user: User{
				Email:     "test@example.com",
				FirstName: "John",
				LastName:  "",
				Role:      RoleStaff,
			},
			wantErr: true,
			errMsg:  "last name is required",
		},
		{
			name: "invalid role",
			user: User{
				Email:     "test@example.com",
				FirstName: "John",
				LastName:  "Doe",
				Role:      "manager",
			},
			wantErr: true,
			errMsg:  "invalid role",
		},
	}

	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_Lockout(t *testing.T) {
	user := User{
		Email:     "test@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      RoleStaff,
	}

	assert.False(t, user.IsLocked())

	for i := 0; i < MaxFailedLoginAttempts-1; i++ {
		user.IncrementFailedAttempts()
		assert.False(t, user.IsLocked(), "should not lock before reaching the limit")
	}

	user.IncrementFailedAttempts()
	assert.True(t, user.IsLocked())
	require.NotNil(t, user.LockedUntil)
	assert.WithinDuration(t, time.Now().Add(DefaultLockoutDuration), *user.LockedUntil, time.Minute)

	user.ResetFailedAttempts()
	assert.False(t, user.IsLocked())
	assert.Equal(t, 0, user.FailedLoginAttempts)
	assert.Nil(t, user.LockedUntil)
}

func TestUser_IsLocked_ExpiredLock(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	user := User{LockedUntil: &past}

	assert.False(t, user.IsLocked(), "an elapsed lockout no longer locks the account")
}

func TestUser_RoleHelpers(t *testing.T) {
	staff := User{Role: RoleStaff}
	admin := User{Role: RoleAdmin}

	assert.True(t, staff.IsStaff())
	assert.False(t, staff.IsAdmin())
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsStaff())
}

func TestUser_FullName(t *testing.T) {
	user := User{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", user.FullName())
}

func TestUser_UpdateLastLogin(t *testing.T) {
	user := User{}
	require.Nil(t, user.LastLoginAt)

	user.UpdateLastLogin()

	require.NotNil(t, user.LastLoginAt)
	assert.WithinDuration(t, time.Now(), *user.LastLoginAt, time.Second)
}

func TestUser_BeforeCreate_AssignsID(t *testing.T) {
	user := User{
		Email:     "test@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      RoleStaff,
	}

	require.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}
