package services

import (
	"context"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/validator"

	"golang.org/x/crypto/bcrypt"
)

// UserService owns accounts, authentication and the saved-rooms list
type UserService struct {
	users repository.UserRepository
	rooms repository.RoomRepository
}

func NewUserService(users repository.UserRepository, rooms repository.RoomRepository) *UserService {
	return &UserService{users: users, rooms: rooms}
}

// Register creates an account and signs it in. Owner accounts start
// unapproved; admins flip the flag from the user panel.
func (s *UserService) Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResult, error) {
	if err := validator.ValidateRegister(input); err != nil {
		return nil, err
	}

	if existing, _ := s.users.FindByEmail(ctx, input.Email); existing != nil {
		return nil, errors.NewAppError(errors.ErrCodeConflict, "Email is already registered", errors.ErrUserAlreadyExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to hash password", err)
	}

	role := input.Role
	if role == "" {
		role = constants.RoleStudent
	}

	user := &models.User{
		Name:            input.Name,
		Email:           input.Email,
		Password:        string(hashed),
		Role:            role,
		Phone:           input.Phone,
		IsActive:        true,
		StudentID:       input.StudentID,
		Department:      input.Department,
		Year:            input.Year,
		BusinessName:    input.BusinessName,
		BusinessAddress: input.BusinessAddress,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to create user", err)
	}

	return s.signIn(user)
}

// Login verifies credentials and returns a signed token
func (s *UserService) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error) {
	if err := validator.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid email or password", err)
	}
	if !user.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Account is deactivated", nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid email or password", errors.ErrInvalidPassword)
	}

	return s.signIn(user)
}

// GoogleAuth signs in with a Google ID token, creating a student account
// on first sight of the email.
func (s *UserService) GoogleAuth(ctx context.Context, input *dto.GoogleAuthInput) (*dto.AuthResult, error) {
	sub, email, name, err := VerifyGoogleIDToken(ctx, input.Credential)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		user = &models.User{
			Name:     name,
			Email:    email,
			GoogleID: sub,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to create user", err)
		}
	} else {
		if !user.IsActive {
			return nil, errors.NewAppError(errors.ErrCodeForbidden, "Account is deactivated", nil)
		}
		if user.GoogleID == "" {
			user.GoogleID = sub
			if err := s.users.Update(ctx, user); err != nil {
				return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update user", err)
			}
		}
	}

	return s.signIn(user)
}

func (s *UserService) signIn(user *models.User) (*dto.AuthResult, error) {
	token, err := GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{Token: token, User: user}, nil
}

// Profile loads one account
func (s *UserService) Profile(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// SaveRoom adds a room to the student's saved list. Saving twice is a no-op.
func (s *UserService) SaveRoom(ctx context.Context, user *models.User, roomID uint) (*models.User, error) {
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}
	if user.HasSavedRoom(roomID) {
		return user, nil
	}

	user.SavedRoomIDs = append(user.SavedRoomIDs, int64(roomID))
	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to save room", err)
	}
	return user, nil
}

// UnsaveRoom removes a room from the student's saved list
func (s *UserService) UnsaveRoom(ctx context.Context, user *models.User, roomID uint) (*models.User, error) {
	kept := user.SavedRoomIDs[:0]
	for _, id := range user.SavedRoomIDs {
		if uint(id) != roomID {
			kept = append(kept, id)
		}
	}
	user.SavedRoomIDs = kept

	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update saved rooms", err)
	}
	return user, nil
}

// SavedRooms resolves the student's saved list to rooms. Deleted rooms
// silently drop out.
func (s *UserService) SavedRooms(ctx context.Context, user *models.User) ([]models.Room, error) {
	if len(user.SavedRoomIDs) == 0 {
		return []models.Room{}, nil
	}
	ids := make([]uint, 0, len(user.SavedRoomIDs))
	for _, id := range user.SavedRoomIDs {
		ids = append(ids, uint(id))
	}

	rooms, err := s.rooms.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load saved rooms", err)
	}
	return rooms, nil
}

// ListUsers pages through accounts for the admin panel
func (s *UserService) ListUsers(ctx context.Context, q dto.AdminUserQuery) ([]models.User, int64, error) {
	if q.Page < 1 {
		q.Page = constants.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = constants.DefaultPageSize
	}
	users, total, err := s.users.Search(ctx, q)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Failed to load users", err)
	}
	return users, total, nil
}

// AdminUpdateUser applies a partial admin edit to an account
func (s *UserService) AdminUpdateUser(ctx context.Context, id uint, input *dto.AdminUserUpdate) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		switch *input.Role {
		case constants.RoleStudent, constants.RoleOwner, constants.RoleAdmin:
			user.Role = *input.Role
		default:
			return nil, errors.NewAppError(errors.ErrCodeValidation, "Invalid role", nil)
		}
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsOwnerApproved != nil {
		user.IsOwnerApproved = *input.IsOwnerApproved
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update user", err)
	}
	return user, nil
}

// AdminDeleteUser removes an account
func (s *UserService) AdminDeleteUser(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to delete user", err)
	}
	return nil
}
