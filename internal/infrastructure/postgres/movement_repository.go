package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
	"github.com/jhoicas/stock-manager-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock. created_at es inmutable: no existe
// ruta de UPDATE para esta tabla.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason, user_id, supplier_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.Reason, movement.UserID, movement.SupplierID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, reason, user_id, supplier_id, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.UserID, &m.SupplierID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

const reportSelect = `
	SELECT m.id, m.created_at, p.name, p.barcode, m.type, m.quantity, m.reason, u.name, s.name
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	LEFT JOIN users u ON u.id = m.user_id
	LEFT JOIN suppliers s ON s.id = m.supplier_id`

// ListReport aplica los filtros conjuntivos del reporte y devuelve las filas
// más recientes primero. DateTo ya llega como límite exclusivo.
func (r *MovementRepo) ListReport(filter repository.MovementFilter) ([]repository.MovementReportRow, error) {
	query := reportSelect
	var args []any
	var conds []string
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("m.created_at >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("m.created_at < $%d", len(args)))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, fmt.Sprintf("m.product_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("m.type = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY m.created_at DESC"
	return r.scanReport(query, args...)
}

// Recent últimos movimientos, más recientes primero.
func (r *MovementRepo) Recent(limit int) ([]repository.MovementReportRow, error) {
	query := reportSelect + " ORDER BY m.created_at DESC LIMIT $1"
	return r.scanReport(query, limit)
}

// SumQuantitiesSince suma cantidades de entradas y salidas desde la fecha dada.
func (r *MovementRepo) SumQuantitiesSince(since time.Time) (in int, out int, err error) {
	query := `
		SELECT COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
		       COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)
		FROM stock_movements WHERE created_at >= $1`
	err = r.q.QueryRow(context.Background(), query, since).Scan(&in, &out)
	if err != nil {
		return 0, 0, fmt.Errorf("sum movements: %w", err)
	}
	return in, out, nil
}

func (r *MovementRepo) scanReport(query string, args ...any) ([]repository.MovementReportRow, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementReportRow
	for rows.Next() {
		var row repository.MovementReportRow
		if err := rows.Scan(&row.ID, &row.CreatedAt, &row.ProductName, &row.Barcode,
			&row.Type, &row.Quantity, &row.Reason, &row.UserName, &row.SupplierName); err != nil {
			return nil, fmt.Errorf("scan movement row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
