package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

func TestRegisterCreatesUserWithProfile(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.Equal(t, "student", user.Role)
	require.NotNil(t, user.Profile)
	require.Equal(t, user.ID, user.Profile.UserID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct horse battery")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{
		FullName: "Someone Else",
		Email:    "ADA@example.com",
		Password: "another password",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfileCreatesMissingProfile(t *testing.T) {
	store := newFakeStore()
	// Seeded accounts predating the profile factory have no profile
	// row.
	admin := &models.User{ID: uuid.New(), FullName: "Admin", Email: "admin@example.com", Role: "admin"}
	store.users = append(store.users, admin)
	svc := NewUserService(store)

	profile, err := svc.UpdateProfile(context.Background(), admin.ID, UpdateProfileInput{
		FullName: "Platform Admin",
	})
	require.NoError(t, err)
	require.Equal(t, admin.ID, profile.UserID)
	require.Equal(t, "Platform Admin", profile.FullName)
}

func TestUpdateProfileSavesExistingProfile(t *testing.T) {
	store := newFakeStore()
	user := &models.User{ID: uuid.New(), FullName: "Ada", Email: "ada@example.com"}
	user.Profile = &models.Profile{ID: uuid.New(), UserID: user.ID, FullName: "Ada"}
	store.users = append(store.users, user)
	svc := NewUserService(store)

	country := "Argentina"
	profile, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{
		FullName: "Ada Lovelace",
		Country:  &country,
	})
	require.NoError(t, err)
	require.Equal(t, user.Profile.ID, profile.ID, "existing profile is updated, not replaced")
	require.Equal(t, "Ada Lovelace", profile.FullName)
	require.Equal(t, &country, profile.Country)
}
