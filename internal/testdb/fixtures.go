package testdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/require"
)

// MustInsertUser inserts a user with a unique email and username derived
// from name and returns its ID.
func MustInsertUser(ctx context.Context, t *testing.T, db store.DBTX, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	suffix := id.String()[:8]
	now := time.Now().UTC()
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`, id, fmt.Sprintf("%s-%s@example.com", name, suffix), name+"-"+suffix, "not-a-real-hash", now)
	require.NoError(t, err, "failed to insert user")
	return id
}

// MustInsertList inserts a list owned by ownerID.
func MustInsertList(ctx context.Context, t *testing.T, db store.DBTX, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	list, err := domain.NewTodoList(ownerID, name, nil, "", false)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO todo_lists (id, owner_id, name, color, is_shared, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, list.ID, list.OwnerID, list.Name, list.Color, list.IsShared, list.CreatedAt)
	require.NoError(t, err, "failed to insert list")
	return list.ID
}

// MustInsertCategory inserts a category owned by userID.
func MustInsertCategory(ctx context.Context, t *testing.T, db store.DBTX, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.ExecContext(ctx, `
		INSERT INTO categories (id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`, id, userID, name, domain.DefaultColor, now)
	require.NoError(t, err, "failed to insert category")
	return id
}
