package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"stockledger/internal/inventory"
	pkgerrors "stockledger/pkg/errors"
	"stockledger/pkg/logger"
)

// Runner drives the interactive menu loop against the inventory service.
// All operator-facing text goes to out; structured logs go through the
// logger so the two streams never mix.
type Runner struct {
	svc    inventory.Service
	logg   *logger.Logger
	prompt *prompter
	out    io.Writer
}

func New(svc inventory.Service, logg *logger.Logger, in io.Reader, out io.Writer) (*Runner, error) {
	if svc == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if in == nil {
		return nil, fmt.Errorf("input stream required")
	}
	if out == nil {
		return nil, fmt.Errorf("output stream required")
	}
	return &Runner{
		svc:    svc,
		logg:   logg,
		prompt: newPrompter(in, out),
		out:    out,
	}, nil
}

// Run prepares the database and serves menu selections until the operator
// picks Exit or the input stream ends.
func (r *Runner) Run(ctx context.Context) error {
	ctx = r.logg.WithSessionID(ctx, uuid.NewString())
	r.logg.Info(ctx, "session started")

	if err := r.svc.Initialize(ctx); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Database initialized.")

	for {
		fmt.Fprint(r.out, menu)

		choice, err := r.prompt.promptInt("\nEnter your choice: ")
		if err != nil {
			if done, runErr := r.handlePromptError(ctx, err); done {
				return runErr
			}
			continue
		}

		action, ok := ParseAction(choice)
		if !ok {
			fmt.Fprintln(r.out, "Invalid choice. Try again.")
			continue
		}

		cmd, err := r.readCommand(action)
		if err != nil {
			if done, runErr := r.handlePromptError(ctx, err); done {
				return runErr
			}
			continue
		}

		if !r.dispatch(ctx, cmd) {
			return nil
		}
	}
}

// handlePromptError decides whether a failed prompt ends the session. A
// closed input stream is a normal shutdown, a parse failure is rendered and
// the menu comes back, anything else is a real read error.
func (r *Runner) handlePromptError(ctx context.Context, err error) (bool, error) {
	if errors.Is(err, io.EOF) {
		r.logg.Info(ctx, "input stream closed")
		return true, nil
	}
	if pkgerrors.As(err) == nil {
		return true, err
	}
	renderError(r.out, err)
	return false, nil
}

// readCommand prompts for the inputs the action needs and assembles the
// parsed command. No service call happens until every prompt succeeded.
func (r *Runner) readCommand(action Action) (Command, error) {
	switch action {
	case ActionAddProduct:
		name, err := r.prompt.promptText("Enter product name: ")
		if err != nil {
			return nil, err
		}
		price, err := r.prompt.promptDecimal("Enter product price: ")
		if err != nil {
			return nil, err
		}
		return AddProductCommand{Name: name, Price: price}, nil

	case ActionAddSupplier:
		name, err := r.prompt.promptText("Enter supplier name: ")
		if err != nil {
			return nil, err
		}
		contact, err := r.prompt.promptText("Enter supplier contact: ")
		if err != nil {
			return nil, err
		}
		return AddSupplierCommand{Name: name, Contact: contact}, nil

	case ActionAddStock:
		productID, err := r.prompt.promptID("Product id: ")
		if err != nil {
			return nil, err
		}
		supplierID, err := r.prompt.promptOptionalID("Supplier id (leave blank if none): ")
		if err != nil {
			return nil, err
		}
		quantity, err := r.prompt.promptInt("Quantity to add: ")
		if err != nil {
			return nil, err
		}
		return AddStockCommand{ProductID: productID, SupplierID: supplierID, Quantity: quantity}, nil

	case ActionRemoveStock:
		productID, err := r.prompt.promptID("Product id: ")
		if err != nil {
			return nil, err
		}
		quantity, err := r.prompt.promptInt("Quantity to remove: ")
		if err != nil {
			return nil, err
		}
		return RemoveStockCommand{ProductID: productID, Quantity: quantity}, nil

	case ActionListProducts:
		return ListProductsCommand{}, nil

	case ActionViewHistory:
		productID, err := r.prompt.promptID("Product id: ")
		if err != nil {
			return nil, err
		}
		return ViewHistoryCommand{ProductID: productID}, nil

	case ActionUpdatePrice:
		productID, err := r.prompt.promptID("Product id: ")
		if err != nil {
			return nil, err
		}
		newPrice, err := r.prompt.promptDecimal("Enter new price: ")
		if err != nil {
			return nil, err
		}
		return UpdatePriceCommand{ProductID: productID, NewPrice: newPrice}, nil

	case ActionDeleteSupplier:
		supplierID, err := r.prompt.promptID("Supplier id: ")
		if err != nil {
			return nil, err
		}
		return DeleteSupplierCommand{SupplierID: supplierID}, nil

	case ActionExit:
		return ExitCommand{}, nil
	}
	return nil, fmt.Errorf("unhandled action %d", action)
}

// dispatch executes one parsed command. It returns false when the session
// should end.
func (r *Runner) dispatch(ctx context.Context, cmd Command) bool {
	ctx = r.logg.WithAction(ctx, cmd.Action().String())

	var err error
	switch c := cmd.(type) {
	case ExitCommand:
		fmt.Fprintln(r.out, "Thank you, goodbye.")
		r.logg.Info(ctx, "session ended")
		return false

	case AddProductCommand:
		var product *inventory.ProductDTO
		product, err = r.svc.CreateProduct(ctx, inventory.CreateProductInput{
			Name:  c.Name,
			Price: c.Price,
		})
		if err == nil {
			fmt.Fprintf(r.out, "Product '%s' added.\n", product.Name)
			r.logg.Info(r.logg.WithProductID(ctx, product.ID), "product created")
		}

	case AddSupplierCommand:
		var supplier *inventory.SupplierDTO
		supplier, err = r.svc.AddSupplier(ctx, inventory.AddSupplierInput{
			Name:    c.Name,
			Contact: c.Contact,
		})
		if err == nil {
			fmt.Fprintf(r.out, "Supplier '%s' added.\n", supplier.Name)
			r.logg.Info(r.logg.WithSupplierID(ctx, supplier.ID), "supplier created")
		}

	case AddStockCommand:
		ctx = r.logg.WithProductID(ctx, c.ProductID)
		if c.SupplierID != nil {
			ctx = r.logg.WithSupplierID(ctx, *c.SupplierID)
		}
		_, err = r.svc.AddStock(ctx, inventory.AddStockInput{
			ProductID:  c.ProductID,
			SupplierID: c.SupplierID,
			Quantity:   c.Quantity,
		})
		if err == nil {
			fmt.Fprintf(r.out, "Added %d unit(s) to product id %d.\n", c.Quantity, c.ProductID)
			r.logg.Info(ctx, "stock added")
		}

	case RemoveStockCommand:
		ctx = r.logg.WithProductID(ctx, c.ProductID)
		_, err = r.svc.RemoveStock(ctx, inventory.RemoveStockInput{
			ProductID: c.ProductID,
			Quantity:  c.Quantity,
		})
		if err == nil {
			fmt.Fprintf(r.out, "Removed %d unit(s) from product id %d.\n", c.Quantity, c.ProductID)
			r.logg.Info(ctx, "stock removed")
		}

	case ListProductsCommand:
		var products []inventory.ProductDTO
		products, err = r.svc.ListProducts(ctx)
		if err == nil {
			renderProducts(r.out, products)
		}

	case ViewHistoryCommand:
		ctx = r.logg.WithProductID(ctx, c.ProductID)
		var entries []inventory.HistoryEntry
		entries, err = r.svc.ProductHistory(ctx, c.ProductID)
		if err == nil {
			renderHistory(r.out, c.ProductID, entries)
		}

	case UpdatePriceCommand:
		ctx = r.logg.WithProductID(ctx, c.ProductID)
		var product *inventory.ProductDTO
		product, err = r.svc.UpdateProductPrice(ctx, inventory.UpdateProductPriceInput{
			ProductID: c.ProductID,
			NewPrice:  c.NewPrice,
		})
		if err == nil {
			fmt.Fprintf(r.out, "Updated price of product id %d to %s.\n",
				c.ProductID, product.Price.StringFixed(2))
			r.logg.Info(ctx, "price updated")
		}

	case DeleteSupplierCommand:
		ctx = r.logg.WithSupplierID(ctx, c.SupplierID)
		err = r.svc.DeleteSupplier(ctx, c.SupplierID)
		if err == nil {
			fmt.Fprintf(r.out, "Deleted supplier id %d.\n", c.SupplierID)
			r.logg.Info(ctx, "supplier deleted")
		}

	default:
		err = pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("unhandled command %T", cmd))
	}

	if err != nil {
		r.reportFailure(ctx, err)
	}
	return true
}

func (r *Runner) reportFailure(ctx context.Context, err error) {
	typed := pkgerrors.As(err)
	if typed == nil || pkgerrors.MetadataFor(typed.Code()).Unexpected {
		r.logg.Error(ctx, "command failed", err)
	} else {
		r.logg.Warn(ctx, "command rejected: "+typed.Message())
	}
	renderError(r.out, err)
}
