package console

import "github.com/shopspring/decimal"

// Command is a fully-parsed menu request. Every prompt for a command is read
// and converted before the command exists, so dispatch never sees raw input.
type Command interface {
	Action() Action
}

type AddProductCommand struct {
	Name  string
	Price decimal.Decimal
}

func (AddProductCommand) Action() Action { return ActionAddProduct }

type AddSupplierCommand struct {
	Name    string
	Contact string
}

func (AddSupplierCommand) Action() Action { return ActionAddSupplier }

type AddStockCommand struct {
	ProductID uint
	// SupplierID is nil when the operator left the supplier prompt blank.
	SupplierID *uint
	Quantity   int
}

func (AddStockCommand) Action() Action { return ActionAddStock }

type RemoveStockCommand struct {
	ProductID uint
	Quantity  int
}

func (RemoveStockCommand) Action() Action { return ActionRemoveStock }

type ListProductsCommand struct{}

func (ListProductsCommand) Action() Action { return ActionListProducts }

type ViewHistoryCommand struct {
	ProductID uint
}

func (ViewHistoryCommand) Action() Action { return ActionViewHistory }

type UpdatePriceCommand struct {
	ProductID uint
	NewPrice  decimal.Decimal
}

func (UpdatePriceCommand) Action() Action { return ActionUpdatePrice }

type DeleteSupplierCommand struct {
	SupplierID uint
}

func (DeleteSupplierCommand) Action() Action { return ActionDeleteSupplier }

type ExitCommand struct{}

func (ExitCommand) Action() Action { return ActionExit }
