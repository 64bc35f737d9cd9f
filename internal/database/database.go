package database

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentsSchema = `
	CREATE TABLE IF NOT EXISTS payments (
		id          BIGSERIAL PRIMARY KEY,
		account_id  BIGINT NOT NULL CHECK (account_id > 0),
		amount      INTEGER NOT NULL CHECK (amount >= 0),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

func InitDatabase(config *config.DatabaseConfig) (*pgxpool.Pool, error) {

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		config.Host,
		config.Port,
		config.User,
		config.Password,
		config.DBName,
		config.SSLMode,
		"UTC",
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// 設置連接池參數
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	err = pool.Ping(context.Background())
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// EnsureSchema 建立付款紀錄表
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, paymentsSchema); err != nil {
		return fmt.Errorf("failed to create payments table: %w", err)
	}
	return nil
}
