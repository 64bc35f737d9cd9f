package handler

import (
	"errors"
	"net/http"

	"cinema-tickets/internal/model"
	"cinema-tickets/internal/service"
	apperrors "cinema-tickets/pkg/app_errors"
	"cinema-tickets/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	service service.TicketService
}

func NewPurchaseHandler(service service.TicketService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

func (h *PurchaseHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("purchases", h.PurchaseTickets)
	}
}

func (h *PurchaseHandler) PurchaseTickets(c *gin.Context) {
	var req model.PurchaseRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	purchase, err := h.service.PurchaseTickets(c, req.AccountID, req.TicketTypeRequests)
	if err != nil {
		h.handlePurchaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewPurchaseResponse(uuid.New().String(), purchase))
}

func (h *PurchaseHandler) handlePurchaseError(c *gin.Context, err error) {
	log := logger.WithComponent("handler").With(zap.String("operation", "PurchaseTickets"), zap.Error(err))

	var purchaseErr *apperrors.InvalidPurchaseError
	switch {
	case errors.As(err, &purchaseErr):
		log.Warn("Invalid purchase", zap.String("reason", string(purchaseErr.Kind)))
		c.JSON(statusForKind(purchaseErr.Kind), gin.H{
			"error": purchaseErr.Message,
			"code":  purchaseErr.Kind,
		})
	case errors.Is(err, apperrors.ErrPaymentFailed):
		log.Error("Payment failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment failed",
		})
	case errors.Is(err, apperrors.ErrReservationFailed):
		log.Error("Seat reservation failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Seat reservation failed",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// 帳號或請求格式錯誤回 400，票種組合不符規則回 422
func statusForKind(kind apperrors.PurchaseErrorKind) int {
	switch kind {
	case apperrors.KindLimitExceeded, apperrors.KindMissingAdult, apperrors.KindInfantExceedsAdult:
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
