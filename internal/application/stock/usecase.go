package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
	"github.com/jhoicas/stock-manager-api/internal/domain/repository"
)

// LedgerUseCase mantiene el invariante de cantidades: la cantidad de un
// producto siempre es la suma con signo de sus movimientos vivos.
// Cada operación es una transacción con bloqueo de fila (SELECT FOR UPDATE)
// sobre el producto, de modo que dos movimientos concurrentes contra el mismo
// producto no puedan perder una actualización.
type LedgerUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, supplierRepo: supplierRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
// UserID es el usuario autenticado; SupplierID solo aplica a entradas.
type MovementInput struct {
	ProductID  string
	Type       string // entity.MovementTypeIn | entity.MovementTypeOut
	Quantity   int
	Reason     string
	UserID     string
	SupplierID *string
}

// RecordMovement registra un movimiento y ajusta la cantidad del producto en
// una sola transacción: bloquea la fila del producto, valida (las salidas no
// pueden exceder el stock actual), inserta el movimiento y persiste la nueva
// cantidad. Devuelve el movimiento creado y la cantidad resultante.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, int, error) {
	if !entity.ValidMovementType(input.Type) || input.ProductID == "" {
		return nil, 0, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, 0, domain.ErrInvalidInput
	}
	if input.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*input.SupplierID)
		if err != nil {
			return nil, 0, err
		}
		if supplier == nil {
			return nil, 0, domain.ErrNotFound
		}
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:         uuid.New().String(),
		ProductID:  input.ProductID,
		Type:       input.Type,
		Quantity:   input.Quantity,
		Reason:     input.Reason,
		SupplierID: input.SupplierID,
		CreatedAt:  now,
	}
	if input.UserID != "" {
		userID := input.UserID
		movement.UserID = &userID
	}

	var resulting int
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Guard de salida: se rechaza antes de persistir, sin cambio de estado.
		if input.Type == entity.MovementTypeOut && input.Quantity > product.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		resulting = product.Quantity + movement.SignedQuantity()
		return productRepo.UpdateQuantity(product.ID, resulting)
	})
	if err != nil {
		return nil, 0, err
	}
	return movement, resulting, nil
}

// ReverseMovement elimina un movimiento aplicando el ajuste inverso a la
// cantidad del producto, en una sola transacción con la fila bloqueada.
// Revertir una entrada puede dejar la cantidad negativa: el modelo no impone
// piso, solo la ruta de salida lo hace.
func (uc *LedgerUseCase) ReverseMovement(ctx context.Context, movementID string) error {
	if movementID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		movement, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(movement.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.Delete(movement.ID); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(product.ID, product.Quantity-movement.SignedQuantity())
	})
}
