package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"stockledger/pkg/db/models"
	"stockledger/pkg/enums"
)

// Repository manages persistence for products, suppliers, and the stock
// transaction ledger.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindProduct(ctx context.Context, id uint) (*models.Product, error)
	FindSupplier(ctx context.Context, id uint) (*models.Supplier, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) (int64, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdatePrice(ctx context.Context, productID uint, price decimal.Decimal) error
	AdjustStock(ctx context.Context, productID uint, delta int) error
	CreateTransaction(ctx context.Context, txn *models.StockTransaction) (*models.StockTransaction, error)
	History(ctx context.Context, productID uint) ([]HistoryEntry, error)
}

const historyQuery = `
SELECT st.id,
       st.date,
       st.quantity,
       st.type,
       COALESCE(s.name, 'N/A') AS supplier_name
FROM stock_transactions st
LEFT JOIN suppliers s ON s.id = st.supplier_id
WHERE st.product_id = ?
ORDER BY st.date DESC, st.id DESC
`

type repository struct {
	db *gorm.DB
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// FindProduct loads the product row by id.
func (r *repository) FindProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindSupplier loads the supplier row by id.
func (r *repository) FindSupplier(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// CreateProduct inserts a new product row.
func (r *repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// CreateSupplier inserts a new supplier row.
func (r *repository) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier by id and reports how many rows were
// deleted. Ledger rows referencing the supplier are left in place.
func (r *repository) DeleteSupplier(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Supplier{})
	return res.RowsAffected, res.Error
}

// ListProducts returns every product ordered by id ascending.
func (r *repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).
		Error
	return rows, err
}

// UpdatePrice overwrites the price column for the product.
func (r *repository) UpdatePrice(ctx context.Context, productID uint, price decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("price", price).
		Error
}

// AdjustStock shifts the stock counter for the product by delta.
func (r *repository) AdjustStock(ctx context.Context, productID uint, delta int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", delta)).
		Error
}

// CreateTransaction appends a row to the stock transaction ledger.
func (r *repository) CreateTransaction(ctx context.Context, txn *models.StockTransaction) (*models.StockTransaction, error) {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

// History returns the product's transactions newest first, resolving supplier
// names through a left join so deleted suppliers degrade to a placeholder.
func (r *repository) History(ctx context.Context, productID uint) ([]HistoryEntry, error) {
	var records []historyRecord
	if err := r.db.WithContext(ctx).Raw(historyQuery, productID).Scan(&records).Error; err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, record.toEntry())
	}
	return entries, nil
}

type historyRecord struct {
	ID           uint
	Date         time.Time
	Quantity     int
	Type         string
	SupplierName string
}

func (r historyRecord) toEntry() HistoryEntry {
	return HistoryEntry{
		ID:           r.ID,
		Date:         r.Date,
		Quantity:     r.Quantity,
		Type:         enums.TransactionType(r.Type),
		SupplierName: r.SupplierName,
	}
}
