package model

// TicketType 票種
type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeInfant TicketType = "INFANT"
)

// IsValid 驗證票種是否有效
func (t TicketType) IsValid() bool {
	switch t {
	case TicketTypeAdult, TicketTypeChild, TicketTypeInfant:
		return true
	}
	return false
}

// TicketTypeRequest 單一票種的購買數量，以值傳遞，不會被保留
type TicketTypeRequest struct {
	Type  TicketType `json:"type" binding:"required,oneof=ADULT CHILD INFANT"`
	Count int        `json:"count" binding:"min=0"`
}

func NewTicketTypeRequest(ticketType TicketType, count int) TicketTypeRequest {
	return TicketTypeRequest{Type: ticketType, Count: count}
}

// TicketDetail 依票種彙總後的數量
type TicketDetail struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total 全部票數（含嬰兒）
func (d TicketDetail) Total() int {
	return d.Adults + d.Children + d.Infants
}

// Seats 需要保留的座位數，嬰兒坐在大人腿上不佔位
func (d TicketDetail) Seats() int {
	return d.Adults + d.Children
}
