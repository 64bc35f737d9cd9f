package model

// Purchase 一次成功購票的結果
type Purchase struct {
	AccountID     int64
	Detail        TicketDetail
	TotalPrice    int
	SeatsReserved int
}

// PurchaseRequest 購票請求
type PurchaseRequest struct {
	AccountID          *int64              `json:"account_id"`
	TicketTypeRequests []TicketTypeRequest `json:"ticket_type_requests" binding:"omitempty,dive"`
}

// PurchaseResponse 購票響應
type PurchaseResponse struct {
	RequestID     string       `json:"request_id"`
	AccountID     int64        `json:"account_id"`
	Tickets       TicketDetail `json:"tickets"`
	TotalPrice    int          `json:"total_price"`
	SeatsReserved int          `json:"seats_reserved"`
}

func NewPurchaseResponse(requestID string, p *Purchase) PurchaseResponse {
	return PurchaseResponse{
		RequestID:     requestID,
		AccountID:     p.AccountID,
		Tickets:       p.Detail,
		TotalPrice:    p.TotalPrice,
		SeatsReserved: p.SeatsReserved,
	}
}
