package console

import (
	"fmt"
	"io"
	"strings"

	"stockledger/internal/inventory"
	pkgerrors "stockledger/pkg/errors"
)

const menu = `
=== Stock management system ===
1. Add Product
2. Add Supplier
3. Add Stock
4. Remove Stock
5. List products
6. View Product History
7. Update Price
8. Delete Supplier
9. Exit
`

func renderProducts(out io.Writer, products []inventory.ProductDTO) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No products found.")
		return
	}
	fmt.Fprintf(out, "%3s  %-25s  %8s  %6s\n", "ID", "Name", "Price", "Stock")
	fmt.Fprintln(out, strings.Repeat("-", 48))
	for _, product := range products {
		fmt.Fprintf(out, "%3d  %-25s  %8s  %6d\n",
			product.ID, product.Name, product.Price.StringFixed(2), product.Stock)
	}
}

func renderHistory(out io.Writer, productID uint, entries []inventory.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No transaction history for this product.")
		return
	}
	fmt.Fprintf(out, "History for product id %d:\n", productID)
	fmt.Fprintf(out, "%-12s  %-3s  %4s  %s\n", "Date", "Type", "Qty", "Supplier")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	for _, entry := range entries {
		fmt.Fprintf(out, "%-12s  %-3s  %4d  %s\n",
			entry.Date.Format("2006-01-02"), entry.Type, entry.Quantity, entry.SupplierName)
	}
}

// renderError prints the operator-facing line for a failed command. Codes
// flagged as unexpected surface the raw error, everything else prints the
// message attached to the error, or the code's fallback when it has none.
func renderError(out io.Writer, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		fmt.Fprintf(out, "Unexpected error: %v\n", err)
		return
	}
	meta := pkgerrors.MetadataFor(typed.Code())
	if meta.Unexpected {
		fmt.Fprintf(out, "Unexpected error: %v\n", err)
		return
	}
	message := typed.Message()
	if message == "" {
		message = meta.OperatorMessage
	}
	fmt.Fprintln(out, message)
}
