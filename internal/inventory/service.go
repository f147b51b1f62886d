package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"stockledger/pkg/db"
	"stockledger/pkg/db/models"
	"stockledger/pkg/enums"
	pkgerrors "stockledger/pkg/errors"
)

// Service exposes the inventory tracker operations.
type Service interface {
	Initialize(ctx context.Context) error
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	AddSupplier(ctx context.Context, input AddSupplierInput) (*SupplierDTO, error)
	AddStock(ctx context.Context, input AddStockInput) (*ProductDTO, error)
	RemoveStock(ctx context.Context, input RemoveStockInput) (*ProductDTO, error)
	GetProduct(ctx context.Context, productID uint) (*ProductDTO, error)
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	ProductHistory(ctx context.Context, productID uint) ([]HistoryEntry, error)
	UpdateProductPrice(ctx context.Context, input UpdateProductPriceInput) (*ProductDTO, error)
	DeleteSupplier(ctx context.Context, supplierID uint) error
}

// service implements the inventory service.
type service struct {
	repo     Repository
	dbClient *db.Client
}

// NewService constructs an inventory service instance.
func NewService(repo Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// Initialize creates the inventory tables when absent. Calling it against an
// already-initialized database is a no-op.
func (s *service) Initialize(ctx context.Context) error {
	if err := s.dbClient.Migrate(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: migrate inventory schema")
	}
	return nil
}

// CreateProduct registers a product with zero starting stock.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:  input.Name,
		Price: input.Price,
	}
	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		if db.IsCheckViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Price cannot be negative.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return NewProductDTO(created), nil
}

// AddSupplier registers a supplier.
func (s *service) AddSupplier(ctx context.Context, input AddSupplierInput) (*SupplierDTO, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		Name:    input.Name,
		Contact: input.Contact,
	}
	created, err := s.repo.CreateSupplier(ctx, supplier)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert supplier")
	}
	return NewSupplierDTO(created), nil
}

// AddStock appends an IN transaction and increments the product stock in one
// atomic step.
func (s *service) AddStock(ctx context.Context, input AddStockInput) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindProduct(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if input.SupplierID != nil {
		if _, err := s.repo.FindSupplier(ctx, *input.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found.")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load supplier")
		}
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		txn := &models.StockTransaction{
			ProductID:  input.ProductID,
			SupplierID: input.SupplierID,
			Quantity:   input.Quantity,
			Date:       today(),
			Type:       enums.TransactionIn,
		}
		if _, err := txRepo.CreateTransaction(ctx, txn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert stock transaction")
		}
		if err := txRepo.AdjustStock(ctx, input.ProductID, input.Quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: adjust stock")
		}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add stock")
	}

	return s.GetProduct(ctx, input.ProductID)
}

// RemoveStock appends an OUT transaction and decrements the product stock in
// one atomic step, refusing to take the stock below zero.
func (s *service) RemoveStock(ctx context.Context, input RemoveStockInput) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		product, err := txRepo.FindProduct(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found.")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
		}
		if product.Stock < input.Quantity {
			return pkgerrors.New(pkgerrors.CodeInsufficientStock, "Error: Insufficient stock.")
		}

		txn := &models.StockTransaction{
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Date:      today(),
			Type:      enums.TransactionOut,
		}
		if _, err := txRepo.CreateTransaction(ctx, txn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert stock transaction")
		}
		if err := txRepo.AdjustStock(ctx, input.ProductID, -input.Quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: adjust stock")
		}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove stock")
	}

	return s.GetProduct(ctx, input.ProductID)
}

// GetProduct returns a single product by id.
func (s *service) GetProduct(ctx context.Context, productID uint) (*ProductDTO, error) {
	product, err := s.repo.FindProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	return NewProductDTO(product), nil
}

// ListProducts returns every product ordered by id. An empty inventory is a
// valid result, not an error.
func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewProductDTO(&rows[i]))
	}
	return dtos, nil
}

// ProductHistory returns the product's transactions newest first.
func (s *service) ProductHistory(ctx context.Context, productID uint) ([]HistoryEntry, error) {
	if _, err := s.repo.FindProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	entries, err := s.repo.History(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product history")
	}
	return entries, nil
}

// UpdateProductPrice overwrites the product price.
func (s *service) UpdateProductPrice(ctx context.Context, input UpdateProductPriceInput) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindProduct(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	if err := s.repo.UpdatePrice(ctx, input.ProductID, input.NewPrice); err != nil {
		if db.IsCheckViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Price cannot be negative.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update price")
	}

	return s.GetProduct(ctx, input.ProductID)
}

// DeleteSupplier removes the supplier row. Ledger transactions that reference
// it are kept and resolve to a placeholder name from then on.
func (s *service) DeleteSupplier(ctx context.Context, supplierID uint) error {
	affected, err := s.repo.DeleteSupplier(ctx, supplierID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete supplier")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Supplier not found.")
	}
	return nil
}

// today returns the current date at midnight UTC, the ledger's date
// granularity.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
