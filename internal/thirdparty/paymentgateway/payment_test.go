package paymentgateway_test

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"cinema-tickets/config"
	"cinema-tickets/internal/database"
	"cinema-tickets/internal/thirdparty/paymentgateway"
	apperrors "cinema-tickets/pkg/app_errors"
	"cinema-tickets/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Printf("Test database unavailable, skipping postgres tests: %v", err)
	} else if err := database.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to create test schema: %v", err)
	} else {
		testDB = pool
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available")
	}
	_, err := testDB.Exec(context.Background(), "TRUNCATE payments RESTART IDENTITY")
	require.NoError(t, err)
	return testDB
}

func TestPostgresTicketPaymentService_MakePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := getTestDB(t)
		paymentService := paymentgateway.NewPostgresTicketPaymentService(db)

		require.NoError(t, paymentService.MakePayment(ctx, 1, 105))
		require.NoError(t, paymentService.MakePayment(ctx, 1, 25))

		var count, total int
		err := db.QueryRow(ctx, "SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM payments WHERE account_id = $1", 1).Scan(&count, &total)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, 130, total)
	})

	t.Run("Failed - Constraint violation", func(t *testing.T) {
		db := getTestDB(t)
		paymentService := paymentgateway.NewPostgresTicketPaymentService(db)

		err := paymentService.MakePayment(ctx, 0, 25)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)

		// 驅動錯誤仍在 error chain 中
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23514", pgErr.Code)
	})

	t.Run("Failed - Cancelled context", func(t *testing.T) {
		db := getTestDB(t)
		paymentService := paymentgateway.NewPostgresTicketPaymentService(db)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := paymentService.MakePayment(cancelled, 1, 25)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrPaymentFailed))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoggingTicketPaymentService_MakePayment(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	paymentService := paymentgateway.NewLoggingTicketPaymentService()
	require.NoError(t, paymentService.MakePayment(context.Background(), 42, 105))

	entries := logs.FilterMessage("Payment accepted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].ContextMap()["account_id"])
	assert.Equal(t, int64(105), entries[0].ContextMap()["amount"])
	assert.Equal(t, "payment", entries[0].ContextMap()["component"])
}
