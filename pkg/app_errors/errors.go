package apperrors

import "errors"

// PurchaseErrorKind 購票驗證失敗的種類，依檢查順序排列
type PurchaseErrorKind string

const (
	KindAccountMissing     PurchaseErrorKind = "ACCOUNT_MISSING"
	KindAccountNonPositive PurchaseErrorKind = "ACCOUNT_NON_POSITIVE"
	KindRequestMissing     PurchaseErrorKind = "REQUEST_MISSING"
	KindRequestEmpty       PurchaseErrorKind = "REQUEST_EMPTY"
	KindNegativeCount      PurchaseErrorKind = "NEGATIVE_TICKET_COUNT"
	KindLimitExceeded      PurchaseErrorKind = "LIMIT_EXCEEDED"
	KindMissingAdult       PurchaseErrorKind = "MISSING_ADULT"
	KindInfantExceedsAdult PurchaseErrorKind = "INFANT_EXCEEDS_ADULT"
)

// InvalidPurchaseError 所有購票驗證錯誤共用的型別
type InvalidPurchaseError struct {
	Kind    PurchaseErrorKind
	Message string
}

func (e *InvalidPurchaseError) Error() string {
	return e.Message
}

// Is 讓 errors.Is(err, ErrInvalidPurchase) 對每一種 Kind 都成立
func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

var (
	ErrInvalidPurchase = errors.New("invalid purchase")

	ErrAccountMissing = &InvalidPurchaseError{
		Kind:    KindAccountMissing,
		Message: "AccountId cannot be null",
	}
	ErrAccountNonPositive = &InvalidPurchaseError{
		Kind:    KindAccountNonPositive,
		Message: "AccountId must be greater than zero",
	}
	ErrRequestMissing = &InvalidPurchaseError{
		Kind:    KindRequestMissing,
		Message: "Ticket type request cannot be null",
	}
	ErrRequestEmpty = &InvalidPurchaseError{
		Kind:    KindRequestEmpty,
		Message: "Ticket type request cannot be empty",
	}
	ErrNegativeTicketCount = &InvalidPurchaseError{
		Kind:    KindNegativeCount,
		Message: "Ticket count cannot be negative",
	}
	ErrLimitExceeded = &InvalidPurchaseError{
		Kind:    KindLimitExceeded,
		Message: "Maximum ticket size exceeded",
	}
	ErrMissingAdult = &InvalidPurchaseError{
		Kind:    KindMissingAdult,
		Message: "Request must contain an adult ticket",
	}
	ErrInfantExceedsAdult = &InvalidPurchaseError{
		Kind:    KindInfantExceedsAdult,
		Message: "Infant ticket must not be more than adult ticket",
	}
)

var (
	ErrPaymentFailed     = errors.New("payment failed")
	ErrReservationFailed = errors.New("seat reservation failed")
)
