package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
)

func seedUser(t *testing.T, repo *fakeUserRepo, u entity.User) string {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &u))
	return u.ID
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the user verified", func(t *testing.T) {
		users := newFakeUserRepo()
		id := seedUser(t, users, entity.User{Email: "rider@example.com"})
		svc := NewUserService(users, nil, nil, "", false)

		u, err := svc.Verify(ctx, id)
		require.NoError(t, err)
		assert.True(t, u.Verified)

		stored, err := users.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, stored.Verified)
	})

	t.Run("already verified is a no-op", func(t *testing.T) {
		users := newFakeUserRepo()
		id := seedUser(t, users, entity.User{Email: "rider@example.com", Verified: true})
		svc := NewUserService(users, nil, nil, "", true)

		u, err := svc.Verify(ctx, id)
		require.NoError(t, err)
		assert.True(t, u.Verified)
	})

	t.Run("docs policy blocks users without documents", func(t *testing.T) {
		users := newFakeUserRepo()
		id := seedUser(t, users, entity.User{Email: "rider@example.com"})
		svc := NewUserService(users, nil, nil, "", true)

		_, err := svc.Verify(ctx, id)
		assert.ErrorIs(t, err, ErrMissingDocuments)
	})

	t.Run("docs policy passes with a driving license on file", func(t *testing.T) {
		users := newFakeUserRepo()
		id := seedUser(t, users, entity.User{Email: "rider@example.com", DrivingLicense: "/uploads/users/dl.png"})
		svc := NewUserService(users, nil, nil, "", true)

		u, err := svc.Verify(ctx, id)
		require.NoError(t, err)
		assert.True(t, u.Verified)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), nil, nil, "", false)

		_, err := svc.Verify(ctx, "missing")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestGetProfileStoreFailure(t *testing.T) {
	outage := errors.New("connection refused")
	svc := NewUserService(&failingUserRepo{err: outage}, nil, nil, "", false)

	_, err := svc.GetProfile(context.Background(), "user-1")
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	id := seedUser(t, users, entity.User{FirstName: "Ana", LastName: "Silva", PhoneNumber: "111", Email: "ana@example.com"})
	svc := NewUserService(users, nil, nil, "", false)

	newName := "Anabel"
	u, err := svc.UpdateProfile(ctx, id, ProfileUpdate{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Anabel", u.FirstName)
	assert.Equal(t, "Silva", u.LastName)
	assert.Equal(t, "111", u.PhoneNumber)

	// Explicit empty string clears the field; nil leaves it alone.
	empty := ""
	u, err = svc.UpdateProfile(ctx, id, ProfileUpdate{PhoneNumber: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Anabel", u.FirstName)
	assert.Equal(t, "", u.PhoneNumber)
}

func TestDocumentURL(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil, nil, "http://localhost:8080/", false)

	assert.Equal(t, "", svc.DocumentURL(""))
	assert.Equal(t, "http://localhost:8080/uploads/users/dl.png", svc.DocumentURL("/uploads/users/dl.png"))
	assert.Equal(t, "https://storage.googleapis.com/b/o.png", svc.DocumentURL("https://storage.googleapis.com/b/o.png"))
}
