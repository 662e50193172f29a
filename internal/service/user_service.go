package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"restaurant-inventory/internal/model"
	"restaurant-inventory/internal/repository"
	"restaurant-inventory/internal/security"
	"restaurant-inventory/pkg/apierror"
)

const msgUserTaken = "El nombre de usuario o el correo ya están registrados"

type UserService struct {
	users  userStore
	hasher passwordHasher
	now    func() time.Time
}

func NewUserService(users userStore, hasher passwordHasher) *UserService {
	return &UserService{users: users, hasher: hasher, now: time.Now}
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.User{}, mapStoreError(err, msgUserNotFound)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	digest, err := s.hash(req.Password)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.users.Create(ctx, model.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: digest,
	})
	if err != nil {
		return model.User{}, userWriteError(err)
	}

	slog.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Update applies only the fields present in req. A new password is rehashed, never stored verbatim.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	var upd model.UserUpdate
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		upd.Username = &username
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		upd.Email = &email
	}
	if req.Password != nil {
		digest, err := s.hash(*req.Password)
		if err != nil {
			return model.User{}, err
		}
		upd.PasswordHash = &digest
	}

	if upd.IsEmpty() {
		return s.Get(ctx, id)
	}

	user, err := s.users.Update(ctx, id, upd, s.now().UTC())
	if err != nil {
		return model.User{}, userWriteError(err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return mapStoreError(err, msgUserNotFound)
	}
	slog.Info("user deleted", "user_id", id)
	return nil
}

// EnsureBootstrapAdmin creates the first account when the users table is empty.
func (s *UserService) EnsureBootstrapAdmin(ctx context.Context, username, email, password string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if email == "" {
		email = username + "@localhost"
	}

	if _, err := s.Create(ctx, model.CreateUserRequest{Username: username, Email: email, Password: password}); err != nil {
		return err
	}

	slog.Warn("bootstrap user created; change its password", "username", username)
	return nil
}

func (s *UserService) hash(password string) (string, error) {
	digest, err := s.hasher.Hash(password)
	if errors.Is(err, security.ErrPasswordTooLong) {
		return "", apierror.Validation("password must be at most 72 bytes", "password")
	}
	return digest, err
}

func userWriteError(err error) error {
	var ce *repository.ConstraintError
	if errors.As(err, &ce) && ce.IsUnique() {
		return apierror.Validation(msgUserTaken, ce.Constraint)
	}
	return mapStoreError(err, msgUserNotFound)
}
