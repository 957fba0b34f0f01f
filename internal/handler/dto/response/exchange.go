package response

import (
	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Points    int64  `json:"points"`
}

type BookExchangeResponse struct {
	ID         uuid.UUID `json:"id"`
	Points     int64     `json:"points"`
	NewBalance int64     `json:"new_balance"`
}

type BalanceResponse struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Points  int64     `json:"points"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		StartDate: view.StartDate,
		EndDate:   view.EndDate,
		Days:      view.Days,
		Points:    view.Points,
	}
}

func FromBookExchangeResult(result *commands.BookExchangeResult) *BookExchangeResponse {
	return &BookExchangeResponse{
		ID:         result.ReservationID,
		Points:     result.Points,
		NewBalance: result.NewBalance,
	}
}

func FromBalanceView(view *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		OwnerID: view.OwnerID,
		Points:  view.Points,
	}
}
