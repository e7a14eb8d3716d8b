package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/redact"
)

// where accumulates AND-ed conditions with positional arguments. Each
// condition carries a single %d verb that receives its placeholder number.
type where struct {
	conds []string
	args  []any
}

func newWhere(cond string, arg any) *where {
	w := &where{}
	w.add(cond, arg)
	return w
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) sql() string {
	return strings.Join(w.conds, " AND ")
}

// limitOffset appends the page bounds as the next two arguments. It must be
// the last call before the arguments are used.
func (w *where) limitOffset(page domain.PageRequest) string {
	w.args = append(w.args, page.Limit, page.Offset())
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

func closeRows(log *slog.Logger, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", redact.Attr(err))
	}
}
