package services

import (
	"context"
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *repository.MemoryUserRepository, *repository.MemoryRoomRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	users := repository.NewMemoryUserRepository()
	rooms := repository.NewMemoryRoomRepository()
	return NewUserService(users, rooms), users, rooms
}

func register(t *testing.T, svc *UserService) *dto.AuthResult {
	t.Helper()
	result, err := svc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Ankit",
		Email:    "ankit@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return result
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToStudentAndSignsToken", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		result := register(t, svc)

		assert.Equal(t, constants.RoleStudent, result.User.Role)
		assert.NotEmpty(t, result.Token)
		assert.NotEqual(t, "secret1", result.User.Password)

		id, role, err := ParseToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, id)
		assert.Equal(t, constants.RoleStudent, role)
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		register(t, svc)

		_, err := svc.Register(ctx, &dto.RegisterInput{Name: "Again", Email: "ankit@example.com", Password: "secret1"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("CorrectPassword", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		register(t, svc)

		result, err := svc.Login(ctx, &dto.LoginInput{Email: "ankit@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("WrongPasswordIsUnauthorized", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		register(t, svc)

		_, err := svc.Login(ctx, &dto.LoginInput{Email: "ankit@example.com", Password: "wrong"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthorized))
	})

	t.Run("UnknownEmailIsUnauthorized", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		_, err := svc.Login(ctx, &dto.LoginInput{Email: "nobody@example.com", Password: "secret1"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthorized))
	})

	t.Run("DeactivatedAccountIsForbidden", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		result := register(t, svc)

		user, err := users.FindByID(ctx, result.User.ID)
		require.NoError(t, err)
		user.IsActive = false
		require.NoError(t, users.Update(ctx, user))

		_, err = svc.Login(ctx, &dto.LoginInput{Email: "ankit@example.com", Password: "secret1"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))
	})
}

func TestSavedRooms(t *testing.T) {
	ctx := context.Background()

	svc, users, rooms := newUserService(t)
	result := register(t, svc)
	room := seedRoom(t, rooms, nil)

	caller, err := users.FindByID(ctx, result.User.ID)
	require.NoError(t, err)

	t.Run("SaveIsIdempotent", func(t *testing.T) {
		caller, err = svc.SaveRoom(ctx, caller, room.ID)
		require.NoError(t, err)
		caller, err = svc.SaveRoom(ctx, caller, room.ID)
		require.NoError(t, err)
		assert.Len(t, caller.SavedRoomIDs, 1)
	})

	t.Run("SavedListResolvesRooms", func(t *testing.T) {
		saved, err := svc.SavedRooms(ctx, caller)
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, room.ID, saved[0].ID)
	})

	t.Run("DeletedRoomDropsOut", func(t *testing.T) {
		require.NoError(t, rooms.Delete(ctx, room.ID))
		saved, err := svc.SavedRooms(ctx, caller)
		require.NoError(t, err)
		assert.Empty(t, saved)
	})

	t.Run("Unsave", func(t *testing.T) {
		caller, err = svc.UnsaveRoom(ctx, caller, room.ID)
		require.NoError(t, err)
		assert.Empty(t, caller.SavedRoomIDs)
	})
}

func TestAdminUserOps(t *testing.T) {
	ctx := context.Background()

	t.Run("ApproveOwner", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		owner := &models.User{Name: "Mrs. Das", Email: "das@example.com", Role: constants.RoleOwner}
		require.NoError(t, users.Create(ctx, owner))

		approved := true
		updated, err := svc.AdminUpdateUser(ctx, owner.ID, &dto.AdminUserUpdate{IsOwnerApproved: &approved})
		require.NoError(t, err)
		assert.True(t, updated.IsOwnerApproved)
	})

	t.Run("InvalidRoleRejected", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		user := &models.User{Name: "X", Email: "x@example.com", Role: constants.RoleStudent}
		require.NoError(t, users.Create(ctx, user))

		bad := "superuser"
		_, err := svc.AdminUpdateUser(ctx, user.ID, &dto.AdminUserUpdate{Role: &bad})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	})

	t.Run("ListFiltersByRole", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		require.NoError(t, users.Create(ctx, &models.User{Name: "S", Email: "s@example.com", Role: constants.RoleStudent}))
		require.NoError(t, users.Create(ctx, &models.User{Name: "O", Email: "o@example.com", Role: constants.RoleOwner}))

		owners, total, err := svc.ListUsers(ctx, dto.AdminUserQuery{Role: constants.RoleOwner})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, owners, 1)
		assert.Equal(t, "O", owners[0].Name)
	})
}
