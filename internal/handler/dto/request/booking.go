package request

import (
	"sharekit/internal/pkg/timefmt"
	"sharekit/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ItemID int64                 `json:"itemId"`
	Start  timefmt.LocalDateTime `json:"start"`
	End    timefmt.LocalDateTime `json:"end"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: r.ItemID,
		Start:  r.Start.Time,
		End:    r.End.Time,
	}
}
