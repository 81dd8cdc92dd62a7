package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peoplehub/leave-backend-go/internal/domain/policy"
	"github.com/peoplehub/leave-backend-go/internal/pkg/database"
)

type querierCtxKey struct{}

// WithQuerier returns a context whose repository calls run on q instead of
// the pool. Used by transaction helpers and by tests injecting a mock.
func WithQuerier(ctx context.Context, q database.Querier) context.Context {
	return context.WithValue(ctx, querierCtxKey{}, q)
}

// GetQuerier returns the transaction bound to ctx, or the pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if q, ok := ctx.Value(querierCtxKey{}).(database.Querier); ok {
		return q
	}
	return db.Pool
}

type txManager struct {
	db *database.DB
}

func NewTxManager(db *database.DB) policy.TxManager {
	return &txManager{db: db}
}

// InTx executes fn inside a database transaction. Repositories called with
// the context passed to fn join the transaction.
func (m *txManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback during panic recovery failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(WithQuerier(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
