package valueobjects

type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "valid"
	TicketStatusCheckedIn TicketStatus = "checked_in"
	TicketStatusVoided    TicketStatus = "voided"
)

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusValid:     {TicketStatusCheckedIn, TicketStatusVoided},
	TicketStatusCheckedIn: {TicketStatusVoided},
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusValid, TicketStatusCheckedIn, TicketStatusVoided:
		return true
	}
	return false
}

func (s TicketStatus) IsVoided() bool {
	return s == TicketStatusVoided
}

func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
