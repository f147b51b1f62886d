package console

// Action identifies one selection from the main menu.
type Action int

const (
	ActionAddProduct Action = iota + 1
	ActionAddSupplier
	ActionAddStock
	ActionRemoveStock
	ActionListProducts
	ActionViewHistory
	ActionUpdatePrice
	ActionDeleteSupplier
	ActionExit
)

// ParseAction maps a raw menu choice to its Action. The second return is
// false when the number does not correspond to a menu entry.
func ParseAction(choice int) (Action, bool) {
	if choice < int(ActionAddProduct) || choice > int(ActionExit) {
		return 0, false
	}
	return Action(choice), true
}

// String returns the action name used in log fields.
func (a Action) String() string {
	switch a {
	case ActionAddProduct:
		return "add_product"
	case ActionAddSupplier:
		return "add_supplier"
	case ActionAddStock:
		return "add_stock"
	case ActionRemoveStock:
		return "remove_stock"
	case ActionListProducts:
		return "list_products"
	case ActionViewHistory:
		return "view_history"
	case ActionUpdatePrice:
		return "update_price"
	case ActionDeleteSupplier:
		return "delete_supplier"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}
