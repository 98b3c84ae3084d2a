package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/musicschool/payments/internal/entity"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// DetachReferences removes id from every referencing field and returns the number of
// updated rows per collection. Ids are compared for equality.
func (r *Repository) DetachReferences(ctx context.Context, id string, refs []entity.Reference) (map[string]int64, error) {
	return detachReferences(ctx, r.db, id, refs)
}

// DeleteChild detaches the child from refs and deletes it in one transaction.
func (r *Repository) DeleteChild(ctx context.Context, id string, refs []entity.Reference) (map[string]int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	updated, err := detachReferences(ctx, tx, id, refs)
	if err != nil {
		return nil, err
	}

	result, err := tx.Exec(ctx, `DELETE FROM children WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("delete child: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("child %q: %w", id, entity.ErrNotFound)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return updated, nil
}

func detachReferences(ctx context.Context, db execer, id string, refs []entity.Reference) (map[string]int64, error) {
	updated := make(map[string]int64, len(refs))

	for _, ref := range refs {
		sql, args, err := detachStmt(id, ref)
		if err != nil {
			return nil, err
		}

		result, err := db.Exec(ctx, sql, args...)
		if err != nil {
			return nil, fmt.Errorf("detach %s.%s: %w", ref.Collection, ref.Field, err)
		}

		updated[ref.Collection] += result.RowsAffected()
	}

	return updated, nil
}

func detachStmt(id string, ref entity.Reference) (string, []any, error) {
	err := ref.Validate()
	if err != nil {
		return "", nil, err
	}

	table := pgx.Identifier{ref.Collection}.Sanitize()
	field := pgx.Identifier{ref.Field}.Sanitize()

	stmt := sq.Update(table).PlaceholderFormat(sq.Dollar)

	switch ref.Kind {
	case entity.ReferenceArray:
		stmt = stmt.
			Set(field, sq.Expr("array_remove("+field+", ?)", id)).
			Where(sq.Expr("? = ANY("+field+")", id))
	case entity.ReferenceScalar:
		stmt = stmt.
			Set(field, nil).
			Where(sq.Eq{field: id})
	}

	return stmt.ToSql()
}
