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

// CategoryService manages the calling user's categories.
type CategoryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	Create(ctx context.Context, userID uuid.UUID, name, color string) (*domain.Category, error)
	Get(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, patch domain.CategoryPatch) (*domain.Category, error)

	// Delete detaches the category from its tasks and removes it.
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

type categoryService struct {
	tx         store.Transactor
	categories store.CategoryStore
	logger     *slog.Logger
	now        clock
}

var _ CategoryService = (*categoryService)(nil)

// NewCategoryService creates a CategoryService.
func NewCategoryService(tx store.Transactor, categories store.CategoryStore, log *slog.Logger) CategoryService {
	if log == nil {
		log = slog.Default()
	}
	return &categoryService{
		tx:         tx,
		categories: categories,
		logger:     log.With(slog.String("component", "category_service")),
		now:        utcNow,
	}
}

func (s *categoryService) List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		logFailure(logger.FromContextOrDefault(ctx, s.logger), "failed to list categories", err)
		return nil, NewServiceError("category", "list", "", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) Create(
	ctx context.Context,
	userID uuid.UUID,
	name, color string,
) (*domain.Category, error) {
	category, err := domain.NewCategory(userID, name, color)
	if err != nil {
		return nil, NewServiceError("category", "create", "invalid category", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.categories.WithTx(tx).Create(ctx, category)
	})
	if err != nil {
		logFailure(logger.FromContextOrDefault(ctx, s.logger), "failed to create category", err)
		return nil, NewServiceError("category", "create", "", err)
	}
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, NewServiceError("category", "get", "", err)
	}
	return category, nil
}

func (s *categoryService) Update(
	ctx context.Context,
	userID, categoryID uuid.UUID,
	patch domain.CategoryPatch,
) (*domain.Category, error) {
	var updated *domain.Category
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.categories.WithTx(tx)

		category, err := txStore.GetByID(ctx, userID, categoryID)
		if err != nil {
			return err
		}
		if err := patch.Apply(category, s.now()); err != nil {
			return err
		}
		if err := txStore.Update(ctx, category); err != nil {
			return err
		}
		updated = category
		return nil
	})
	if err != nil {
		logFailure(logger.FromContextOrDefault(ctx, s.logger), "failed to update category", err,
			slog.String("category_id", categoryID.String()))
		return nil, NewServiceError("category", "update", "", err)
	}
	return updated, nil
}

func (s *categoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var detached int
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.categories.WithTx(tx)

		if _, err := txStore.GetByID(ctx, userID, categoryID); err != nil {
			return err
		}
		n, err := txStore.DetachTasks(ctx, categoryID)
		if err != nil {
			return err
		}
		detached = n
		return txStore.Delete(ctx, userID, categoryID)
	})
	if err != nil {
		logFailure(log, "failed to delete category", err, slog.String("category_id", categoryID.String()))
		return NewServiceError("category", "delete", "", err)
	}

	log.Info("category deleted",
		slog.String("category_id", categoryID.String()),
		slog.Int("detached_tasks", detached))
	return nil
}
