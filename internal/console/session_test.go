package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stockledger/internal/inventory"
	"stockledger/pkg/config"
	"stockledger/pkg/db"
	"stockledger/pkg/logger"
)

func newSessionService(t *testing.T) inventory.Service {
	t.Helper()

	cfg := config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   "file:session_" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	logg := logger.New(logger.Options{ServiceName: "session-test", Output: io.Discard})

	client, err := db.New(context.Background(), cfg, logg)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})

	svc, err := inventory.NewService(inventory.NewRepository(client.DB()), client)
	require.NoError(t, err)
	return svc
}

// TestSession_FullWorkflow drives a complete operator session against the
// real service and database, exercising every menu action once.
func TestSession_FullWorkflow(t *testing.T) {
	t.Setenv("STOCKLEDGER_LOG_FORMAT", "json")

	script := strings.Join([]string{
		"1", "Widget", "19.99",
		"2", "Acme", "acme@example.com",
		"3", "1", "1", "10",
		"4", "1", "4",
		"5",
		"6", "1",
		"7", "1", "24.5",
		"8", "1",
		"9",
	}, "\n") + "\n"

	logg := logger.New(logger.Options{ServiceName: "session-test", Output: io.Discard})
	out := &bytes.Buffer{}
	runner, err := New(newSessionService(t), logg, strings.NewReader(script), out)
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background()))

	output := out.String()
	wantInOrder := []string{
		"Database initialized.",
		"Product 'Widget' added.",
		"Supplier 'Acme' added.",
		"Added 10 unit(s) to product id 1.",
		"Removed 4 unit(s) from product id 1.",
		"Widget",
		"History for product id 1:",
		"Updated price of product id 1 to 24.50.",
		"Deleted supplier id 1.",
		"Thank you, goodbye.",
	}
	position := 0
	for _, want := range wantInOrder {
		index := strings.Index(output[position:], want)
		require.GreaterOrEqual(t, index, 0, "missing %q after byte %d in:\n%s", want, position, output)
		position += index + len(want)
	}

	// The listing reflects both stock movements and the pre-update price.
	assert.Contains(t, output, "19.99")
	assert.Regexp(t, `Widget\s+19\.99\s+6\n`, output)

	// History shows the removal first, then the supplied addition.
	removedAt := strings.Index(output, "OUT")
	addedAt := strings.Index(output, "IN")
	assert.GreaterOrEqual(t, removedAt, 0)
	assert.GreaterOrEqual(t, addedAt, 0)
	assert.Less(t, removedAt, addedAt)
	assert.Contains(t, output, "Acme")
}

func TestSession_RejectionsKeepSessionAlive(t *testing.T) {
	t.Setenv("STOCKLEDGER_LOG_FORMAT", "json")

	script := strings.Join([]string{
		"1", "", "5.00",
		"4", "99", "1",
		"3", "99", "", "5",
		"8", "99",
		"9",
	}, "\n") + "\n"

	logg := logger.New(logger.Options{ServiceName: "session-test", Output: io.Discard})
	out := &bytes.Buffer{}
	runner, err := New(newSessionService(t), logg, strings.NewReader(script), out)
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Product name cannot be empty.\n")
	assert.Contains(t, output, "Product not found.\n")
	assert.Contains(t, output, "Supplier not found.\n")
	assert.Contains(t, output, "Thank you, goodbye.\n")
}

func TestSession_InsufficientStockLeavesLedgerIntact(t *testing.T) {
	t.Setenv("STOCKLEDGER_LOG_FORMAT", "json")

	script := strings.Join([]string{
		"1", "Widget", "10.00",
		"3", "1", "", "5",
		"4", "1", "50",
		"5",
		"9",
	}, "\n") + "\n"

	logg := logger.New(logger.Options{ServiceName: "session-test", Output: io.Discard})
	out := &bytes.Buffer{}
	runner, err := New(newSessionService(t), logg, strings.NewReader(script), out)
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Error: Insufficient stock.\n")
	assert.Regexp(t, `Widget\s+10\.00\s+5\n`, output)
}
