package paymentgateway

import (
	"context"
	"fmt"

	apperrors "cinema-tickets/pkg/app_errors"
	"cinema-tickets/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TicketPaymentService 外部付款閘道。成功回傳 nil，否則回傳不可恢復的錯誤
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

type LoggingTicketPaymentService struct {
	log *zap.Logger
}

// NewLoggingTicketPaymentService 不連外的付款實作，只記錄 log 並視為成功
func NewLoggingTicketPaymentService() TicketPaymentService {
	return &LoggingTicketPaymentService{log: logger.WithComponent("payment")}
}

func (s *LoggingTicketPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	s.log.Info("Payment accepted", zap.Int64("account_id", accountID), zap.Int("amount", amount))
	return nil
}

type PostgresTicketPaymentService struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketPaymentService 將每筆付款寫入 payments 表
func NewPostgresTicketPaymentService(pool *pgxpool.Pool) TicketPaymentService {
	return &PostgresTicketPaymentService{pool: pool}
}

func (s *PostgresTicketPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	query := `
		INSERT INTO payments (account_id, amount)
		VALUES ($1, $2)
	`

	if _, err := s.pool.Exec(ctx, query, accountID, amount); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrPaymentFailed, err)
	}
	return nil
}
