package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool          *pgxpool.Pool
	lockTimeoutMS int
}

// NewTxRunner construye el runner con el pool. lockTimeoutMS acota la espera
// por bloqueos de fila dentro de la transacción (DB_LOCK_TIMEOUT_MS).
func NewTxRunner(pool *pgxpool.Pool, lockTimeoutMS int) *TxRunner {
	return &TxRunner{pool: pool, lockTimeoutMS: lockTimeoutMS}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// SET LOCAL lock_timeout aplica solo a esta tx: si el SELECT FOR UPDATE de un
// producto espera más de lo configurado, PostgreSQL falla con 55P03 y el
// movimiento se rechaza como ErrConflict (reintentable) en vez de encolarse
// indefinidamente.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.AlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if r.lockTimeoutMS > 0 {
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeoutMS)); err != nil {
			return fmt.Errorf("set lock_timeout: %w", err)
		}
	}

	movRepo := NewInventoryMovementRepository(tx)
	productRepo := NewProductRepository(tx)
	alertRepo := NewAlertRepository(tx)

	if err := fn(movRepo, productRepo, alertRepo); err != nil {
		if isLockTimeout(err) {
			return domain.ErrConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
