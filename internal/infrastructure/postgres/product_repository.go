package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
	"github.com/jhoicas/stock-manager-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, barcode, unit_price, quantity, low_stock_threshold, category_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Quantity inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, barcode, unit_price, quantity, low_stock_threshold, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Barcode, product.UnitPrice,
		product.Quantity, product.LowStockThreshold, product.CategoryID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByBarcode obtiene un producto por código de barras.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(query, barcode)
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción del TxRunner.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update actualiza un producto existente. No toca Quantity (se maneja vía movimientos).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, barcode = $4, unit_price = $5, low_stock_threshold = $6, category_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Barcode, product.UnitPrice,
		product.LowStockThreshold, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad (usado por el ledger de movimientos).
func (r *ProductRepo) UpdateQuantity(productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista productos por nombre, con búsqueda opcional por nombre o código
// de barras (substring, case-insensitive) y paginación.
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%' OR barcode ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.scanMany(query, args...)
}

// ListLowStock productos con 0 < cantidad <= umbral, por nombre.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE quantity > 0 AND quantity <= low_stock_threshold ORDER BY name`
	return r.scanMany(query)
}

// ListAtOrBelowThreshold productos con cantidad <= umbral (incluye agotados), por nombre.
func (r *ProductRepo) ListAtOrBelowThreshold() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE quantity <= low_stock_threshold ORDER BY name`
	return r.scanMany(query)
}

// Counts totales para el dashboard en una sola pasada.
func (r *ProductRepo) Counts() (repository.ProductCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE quantity > 0 AND quantity <= low_stock_threshold),
		       COUNT(*) FILTER (WHERE quantity = 0)
		FROM products`
	var c repository.ProductCounts
	err := r.q.QueryRow(context.Background(), query).Scan(&c.Total, &c.LowStock, &c.OutOfStock)
	if err != nil {
		return repository.ProductCounts{}, fmt.Errorf("count products: %w", err)
	}
	return c, nil
}

// Delete elimina un producto por ID; los movimientos caen en cascada.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.Description, &p.Barcode, &p.UnitPrice,
		&p.Quantity, &p.LowStockThreshold, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Barcode, &p.UnitPrice,
			&p.Quantity, &p.LowStockThreshold, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
