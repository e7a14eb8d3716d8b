package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/store"
)

// UserService provides profile operations for the authenticated user.
type UserService interface {
	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateProfile applies patch to the user's profile. A taken username
	// yields store.ErrUsernameExists.
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.UserPatch) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	tx        store.Transactor
	userStore store.UserStore
	logger    *slog.Logger
	now       clock
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(tx store.Transactor, userStore store.UserStore, log *slog.Logger) *UserServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &UserServiceImpl{
		tx:        tx,
		userStore: userStore,
		logger:    log.With(slog.String("component", "user_service")),
		now:       utcNow,
	}
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("user", "get", "", err)
	}
	return user, nil
}

// UpdateProfile loads the user, applies the patch and saves it in one
// transaction.
func (s *UserServiceImpl) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := patch.Apply(user, s.now()); err != nil {
			return err
		}
		if err := txStore.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		logFailure(log, "failed to update profile", err, slog.String("user_id", userID.String()))
		return nil, NewServiceError("user", "update_profile", "", err)
	}

	log.Info("profile updated", slog.String("user_id", userID.String()))
	return updated, nil
}
