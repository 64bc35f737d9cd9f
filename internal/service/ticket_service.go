package service

import (
	"context"
	"errors"

	"cinema-tickets/config"
	"cinema-tickets/internal/model"
	"cinema-tickets/internal/thirdparty/paymentgateway"
	"cinema-tickets/internal/thirdparty/seatbooking"
	apperrors "cinema-tickets/pkg/app_errors"
	"cinema-tickets/pkg/logger"
	"cinema-tickets/pkg/metrics"

	"go.uber.org/zap"
)

type TicketService interface {
	// 驗證購票請求、計算金額，成功後依序付款與保留座位
	PurchaseTickets(ctx context.Context, accountID *int64, ticketTypeRequests []model.TicketTypeRequest) (*model.Purchase, error)
}

type TicketServiceImpl struct {
	pricing            config.PricingConfig
	paymentService     paymentgateway.TicketPaymentService
	reservationService seatbooking.SeatReservationService
}

func NewTicketService(
	pricing config.PricingConfig,
	paymentService paymentgateway.TicketPaymentService,
	reservationService seatbooking.SeatReservationService,
) TicketService {
	return &TicketServiceImpl{
		pricing:            pricing,
		paymentService:     paymentService,
		reservationService: reservationService,
	}
}

func (s *TicketServiceImpl) PurchaseTickets(ctx context.Context, accountID *int64, ticketTypeRequests []model.TicketTypeRequest) (*model.Purchase, error) {
	log := logger.WithComponent("service").With(zap.String("operation", "PurchaseTickets"))

	// 1. 驗證帳號與請求格式
	if err := validateAccountID(accountID); err != nil {
		return nil, s.reject(log, err)
	}
	log = log.With(zap.Int64("account_id", *accountID))

	if err := s.validateTicketRequests(ticketTypeRequests); err != nil {
		return nil, s.reject(log, err)
	}

	// 2. 彙總票種並檢查業務規則
	detail := Aggregate(ticketTypeRequests)
	if err := s.validateBusinessRules(detail); err != nil {
		return nil, s.reject(log, err)
	}

	totalPrice := TotalPrice(detail, s.pricing)
	seats := SeatsToReserve(detail)

	// 3. 先付款再保留座位；任一失敗原樣回傳，不重試也不補償
	if err := s.paymentService.MakePayment(ctx, *accountID, totalPrice); err != nil {
		log.Error("Payment failed", zap.Int("amount", totalPrice), zap.Error(err))
		metrics.Purchases.WithLabelValues(metrics.OutcomePaymentFailed, "").Inc()
		return nil, err
	}

	if err := s.reservationService.ReserveSeat(ctx, *accountID, seats); err != nil {
		// 付款已完成，這裡不會退款
		log.Error("Seat reservation failed after payment", zap.Int("amount", totalPrice), zap.Int("seats", seats), zap.Error(err))
		metrics.Purchases.WithLabelValues(metrics.OutcomeReservationFailed, "").Inc()
		return nil, err
	}

	log.Info("Tickets purchased",
		zap.Int("adults", detail.Adults),
		zap.Int("children", detail.Children),
		zap.Int("infants", detail.Infants),
		zap.Int("amount", totalPrice),
		zap.Int("seats", seats),
	)
	metrics.Purchases.WithLabelValues(metrics.OutcomeSuccess, "").Inc()
	metrics.TicketsSold.WithLabelValues(string(model.TicketTypeAdult)).Add(float64(detail.Adults))
	metrics.TicketsSold.WithLabelValues(string(model.TicketTypeChild)).Add(float64(detail.Children))
	metrics.TicketsSold.WithLabelValues(string(model.TicketTypeInfant)).Add(float64(detail.Infants))

	return &model.Purchase{
		AccountID:     *accountID,
		Detail:        detail,
		TotalPrice:    totalPrice,
		SeatsReserved: seats,
	}, nil
}

// Aggregate 依票種加總數量，未知票種不計入
func Aggregate(ticketTypeRequests []model.TicketTypeRequest) model.TicketDetail {
	var detail model.TicketDetail
	for _, req := range ticketTypeRequests {
		switch req.Type {
		case model.TicketTypeAdult:
			detail.Adults += req.Count
		case model.TicketTypeChild:
			detail.Children += req.Count
		case model.TicketTypeInfant:
			detail.Infants += req.Count
		}
	}
	return detail
}

// TotalPrice 嬰兒免費
func TotalPrice(detail model.TicketDetail, pricing config.PricingConfig) int {
	return detail.Adults*pricing.AdultPrice + detail.Children*pricing.ChildPrice
}

func SeatsToReserve(detail model.TicketDetail) int {
	return detail.Seats()
}

func validateAccountID(accountID *int64) error {
	if accountID == nil {
		return apperrors.ErrAccountMissing
	}
	if *accountID < 1 {
		return apperrors.ErrAccountNonPositive
	}
	return nil
}

func (s *TicketServiceImpl) validateTicketRequests(ticketTypeRequests []model.TicketTypeRequest) error {
	if ticketTypeRequests == nil {
		return apperrors.ErrRequestMissing
	}
	if len(ticketTypeRequests) == 0 {
		return apperrors.ErrRequestEmpty
	}

	for _, req := range ticketTypeRequests {
		if req.Count < 0 {
			return apperrors.ErrNegativeTicketCount
		}
	}

	// 每筆與累計都不超過上限，加總不會溢位
	total := 0
	for _, req := range ticketTypeRequests {
		if req.Count > s.pricing.MaxTickets {
			return apperrors.ErrLimitExceeded
		}
		total += req.Count
		if total > s.pricing.MaxTickets {
			return apperrors.ErrLimitExceeded
		}
	}
	return nil
}

func (s *TicketServiceImpl) validateBusinessRules(detail model.TicketDetail) error {
	if detail.Adults < 1 {
		return apperrors.ErrMissingAdult
	}
	if detail.Infants > detail.Adults {
		return apperrors.ErrInfantExceedsAdult
	}
	if detail.Total() > s.pricing.MaxTickets {
		return apperrors.ErrLimitExceeded
	}
	return nil
}

func (s *TicketServiceImpl) reject(log *zap.Logger, err error) error {
	reason := "unknown"
	var purchaseErr *apperrors.InvalidPurchaseError
	if errors.As(err, &purchaseErr) {
		reason = string(purchaseErr.Kind)
	}
	log.Warn("Purchase rejected", zap.String("reason", reason), zap.Error(err))
	metrics.Purchases.WithLabelValues(metrics.OutcomeRejected, reason).Inc()
	return err
}
