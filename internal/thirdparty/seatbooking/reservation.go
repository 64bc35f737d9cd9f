package seatbooking

import (
	"context"
	"fmt"
	"strconv"

	apperrors "cinema-tickets/pkg/app_errors"
	"cinema-tickets/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SeatReservationKey 每個帳號已保留座位數的 hash
const SeatReservationKey = "seat_reservations"

// SeatReservationService 外部座位保留服務。成功回傳 nil，否則回傳不可恢復的錯誤
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error
}

type LoggingSeatReservationService struct {
	log *zap.Logger
}

func NewLoggingSeatReservationService() SeatReservationService {
	return &LoggingSeatReservationService{log: logger.WithComponent("seatbooking")}
}

func (s *LoggingSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	s.log.Info("Seats reserved", zap.Int64("account_id", accountID), zap.Int("seats", totalSeatsToAllocate))
	return nil
}

type RedisSeatReservationService struct {
	client *redis.Client
}

// NewRedisSeatReservationService 以 HINCRBY 累計每個帳號保留的座位數
func NewRedisSeatReservationService(client *redis.Client) SeatReservationService {
	return &RedisSeatReservationService{client: client}
}

func (s *RedisSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	field := strconv.FormatInt(accountID, 10)
	if err := s.client.HIncrBy(ctx, SeatReservationKey, field, int64(totalSeatsToAllocate)).Err(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrReservationFailed, err)
	}
	return nil
}

// ReservedSeats 查詢帳號目前累計保留的座位數
func (s *RedisSeatReservationService) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	seats, err := s.client.HGet(ctx, SeatReservationKey, strconv.FormatInt(accountID, 10)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return seats, err
}
