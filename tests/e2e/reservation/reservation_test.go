//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"timeshare-portal/internal/handler/dto/request"
	"timeshare-portal/internal/handler/dto/response"
	"timeshare-portal/tests/common/authtest"
	"timeshare-portal/tests/common/dbtest"
	"timeshare-portal/tests/common/httptest"
	"timeshare-portal/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationFlowSuite struct {
	e2e.SharedSuite
}

func TestReservationFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationFlowSuite))
}

func (s *ReservationFlowSuite) TestAdHocBookingLifecycle() {
	s.Run("owner books, admin approves, approved booking is final", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Villa del Mar", 100_000_00)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				PropertyID: propertyID,
				StartDate:  "2025-10-03",
				EndDate:    "2025-10-05",
			}, ownerToken)

		var created response.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.NotEqual(uuid.Nil, created.ID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/reservations/"+created.ID.String(), nil, ownerToken)

		var entry response.CalendarEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &entry)
		s.Equal("adhoc", entry.Kind)
		s.Equal("pendiente", entry.Status)
		s.Equal("2025-10-03", entry.StartDate)
		s.Equal("2025-10-05", entry.EndDate)

		// Approval is an administrator decision.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/reservations/"+created.ID.String()+"/status",
			request.SetStatusRequest{Status: "aprobada"}, ownerToken)
		s.Equal(http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/reservations/"+created.ID.String()+"/status",
			request.SetStatusRequest{Status: "aprobada"}, adminToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/reservations/"+created.ID.String(), nil, ownerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &entry)
		s.Equal("aprobada", entry.Status)

		// aprobada is terminal for ad-hoc bookings.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/reservations/"+created.ID.String()+"/status",
			request.SetStatusRequest{Status: "cancelada"}, adminToken)
		s.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("owner cancels own pending booking and deletes it is forbidden after approval", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Villa del Mar", 100_000_00)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				PropertyID: propertyID,
				StartDate:  "2025-11-10",
				EndDate:    "2025-11-12",
			}, ownerToken)

		var created response.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/reservations/"+created.ID.String()+"/status",
			request.SetStatusRequest{Status: "cancelada"}, ownerToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		// No longer pendiente, so the owner may not delete it.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/reservations/"+created.ID.String(), nil, ownerToken)
		s.Equal(http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("owner deletes own pending booking", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Villa del Mar", 100_000_00)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				PropertyID: propertyID,
				StartDate:  "2025-11-10",
				EndDate:    "2025-11-12",
			}, ownerToken)

		var created response.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/reservations/"+created.ID.String(), nil, ownerToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/reservations/"+created.ID.String(), nil, ownerToken)
		s.Equal(http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("requests without a token are rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reservations", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *ReservationFlowSuite) TestBookingConflicts() {
	s.Run("overlapping booking is rejected with the blocking reservation", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Blanca", 80_000_00)
		firstToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "first@example.com", "owner")
		secondToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "second@example.com", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				PropertyID: propertyID,
				StartDate:  "2025-09-10",
				EndDate:    "2025-09-14",
			}, firstToken)

		var created response.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				PropertyID: propertyID,
				StartDate:  "2025-09-13",
				EndDate:    "2025-09-16",
			}, secondToken)
		s.Equal(http.StatusConflict, w.Code, w.Body.String())

		var envelope struct {
			Detail []struct {
				ID     uuid.UUID `json:"id"`
				Kind   string    `json:"kind"`
				Status string    `json:"status"`
			} `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &envelope))
		s.Require().Len(envelope.Detail, 1)
		s.Equal(created.ID, envelope.Detail[0].ID)
		s.Equal("adhoc", envelope.Detail[0].Kind)
		s.Equal("pendiente", envelope.Detail[0].Status)
	})

	s.Run("cancelled booking frees its dates for the same owner", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Blanca", 80_000_00)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		book := request.CreateReservationRequest{
			PropertyID: propertyID,
			StartDate:  "2025-09-10",
			EndDate:    "2025-09-14",
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", book, ownerToken)
		var created response.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/reservations/"+created.ID.String()+"/status",
			request.SetStatusRequest{Status: "cancelada"}, ownerToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		// The void row stays behind as history; the identical re-booking must
		// not stumble over it.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", book, ownerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	})

	s.Run("concurrent overlapping bookings resolve to exactly one winner", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Blanca", 80_000_00)
		firstToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "first@example.com", "owner")
		secondToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "second@example.com", "owner")

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for _, token := range []string{firstToken, secondToken} {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
					request.CreateReservationRequest{
						PropertyID: propertyID,
						StartDate:  "2025-09-10",
						EndDate:    "2025-09-14",
					}, token)
				codes <- w.Code
			}(token)
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, created)
		s.Equal(1, conflicted)
	})

	s.Run("booking on another property with the same dates succeeds", func() {
		first := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Blanca", 80_000_00)
		second := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Verde", 60_000_00)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		for _, propertyID := range []uuid.UUID{first, second} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
				request.CreateReservationRequest{
					PropertyID: propertyID,
					StartDate:  "2025-09-10",
					EndDate:    "2025-09-14",
				}, ownerToken)

			var created response.CreateReservationResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		}
	})
}

func (s *ReservationFlowSuite) TestFixedAllocations() {
	s.Run("assigning a share writes its fortnights onto the calendar", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Finca Sol", 120_000_00)
		holderID := dbtest.CreateTestOwner(s.T(), s.DB, "holder@example.com", "owner", 0)
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/properties/%s/shares/1", propertyID),
			request.AssignShareRequest{OwnerID: &holderID, Kind: "comprar"}, adminToken)

		var assigned response.AssignShareResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &assigned)
		s.Equal("vendida", assigned.Status)
		s.False(assigned.AllocationFailed)
		s.Equal(s.Config.Allocation.HorizonYears, assigned.Upserted)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/properties/%s/calendar", propertyID), nil, adminToken)

		var calendar []response.CalendarEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &calendar)
		s.Require().Len(calendar, s.Config.Allocation.HorizonYears)
		for _, entry := range calendar {
			s.Equal("fixed", entry.Kind)
			s.Equal("fija", entry.Status)
			s.Equal(holderID, entry.OwnerID)
		}

		// Share 1 holds the first half of July every year of the horizon.
		year := time.Now().UTC().Year()
		s.Equal(fmt.Sprintf("%d-07-01", year), calendar[0].StartDate)
		s.Equal(fmt.Sprintf("%d-07-15", year), calendar[0].EndDate)
	})

	s.Run("ad-hoc booking over a fixed fortnight is blocked", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Finca Sol", 120_000_00)
		holderID := dbtest.CreateTestOwner(s.T(), s.DB, "holder@example.com", "owner", 0)
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/properties/%s/shares/2", propertyID),
			request.AssignShareRequest{OwnerID: &holderID, Kind: "reservar"}, adminToken)

		var assigned response.AssignShareResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &assigned)
		s.Equal("reservada", assigned.Status)

		// Share 2 holds the second half of July.
		year := time.Now().UTC().Year()
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				PropertyID: propertyID,
				StartDate:  fmt.Sprintf("%d-07-20", year),
				EndDate:    fmt.Sprintf("%d-07-22", year),
			}, ownerToken)
		s.Equal(http.StatusConflict, w.Code, w.Body.String())

		var envelope struct {
			Detail []struct {
				Kind   string `json:"kind"`
				Status string `json:"status"`
			} `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &envelope))
		s.Require().NotEmpty(envelope.Detail)
		s.Equal("fixed", envelope.Detail[0].Kind)
		s.Equal("fija", envelope.Detail[0].Status)
	})

	s.Run("reassigning a share moves its fortnights to the new owner", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Finca Sol", 120_000_00)
		firstID := dbtest.CreateTestOwner(s.T(), s.DB, "first@example.com", "owner", 0)
		secondID := dbtest.CreateTestOwner(s.T(), s.DB, "second@example.com", "owner", 0)
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/properties/%s/shares/2", propertyID),
			request.AssignShareRequest{OwnerID: &firstID, Kind: "comprar"}, adminToken)
		var assigned response.AssignShareResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &assigned)
		s.False(assigned.AllocationFailed)

		// The new owner's rows land on the exact fortnights the old owner's
		// rows occupied; the regeneration must survive that.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/properties/%s/shares/2", propertyID),
			request.AssignShareRequest{OwnerID: &secondID, Kind: "comprar"}, adminToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &assigned)
		s.False(assigned.AllocationFailed)
		s.Equal(s.Config.Allocation.HorizonYears, assigned.Upserted)
		s.EqualValues(s.Config.Allocation.HorizonYears, assigned.StaleRemoved)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/properties/%s/calendar", propertyID), nil, adminToken)
		var calendar []response.CalendarEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &calendar)
		s.Require().Len(calendar, s.Config.Allocation.HorizonYears)
		for _, entry := range calendar {
			s.Equal(secondID, entry.OwnerID)
		}
	})

	s.Run("releasing a share removes its future fortnights", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Finca Sol", 120_000_00)
		holderID := dbtest.CreateTestOwner(s.T(), s.DB, "holder@example.com", "owner", 0)
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/properties/%s/shares/1", propertyID),
			request.AssignShareRequest{OwnerID: &holderID, Kind: "comprar"}, adminToken)
		var assigned response.AssignShareResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &assigned)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/properties/%s/shares/1", propertyID),
			request.AssignShareRequest{OwnerID: nil}, adminToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &assigned)
		s.Equal("disponible", assigned.Status)
		s.EqualValues(s.Config.Allocation.HorizonYears, assigned.StaleRemoved)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/properties/%s/calendar", propertyID), nil, adminToken)
		var calendar []response.CalendarEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &calendar)
		s.Empty(calendar)
	})

	s.Run("share administration requires the admin role", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Finca Sol", 120_000_00)
		holderID := dbtest.CreateTestOwner(s.T(), s.DB, "holder@example.com", "owner", 0)
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/properties/%s/shares/1", propertyID),
			request.AssignShareRequest{OwnerID: &holderID, Kind: "comprar"}, ownerToken)
		s.Equal(http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *ReservationFlowSuite) TestExchangeFlow() {
	s.Run("quote prices weekdays and weekends without touching the balance", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Dorada", 90_000_00)
		ownerID := dbtest.CreateTestOwner(s.T(), s.DB, "guest@example.com", "owner", 30)
		ownerToken := authtest.LoginOwner(s.T(), s.Router, "guest@example.com", "password123")

		// Friday through Sunday: one weekday plus two weekend days.
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/exchanges/quote?property_id=%s&start_date=2025-07-04&end_date=2025-07-06", propertyID),
			nil, ownerToken)

		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &quote)
		s.Equal(3, quote.Days)
		s.EqualValues(25, quote.Points)

		s.EqualValues(30, dbtest.OwnerPoints(s.T(), s.DB, ownerID))
	})

	s.Run("booking debits the balance", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Dorada", 90_000_00)
		ownerID := dbtest.CreateTestOwner(s.T(), s.DB, "guest@example.com", "owner", 30)
		ownerToken := authtest.LoginOwner(s.T(), s.Router, "guest@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/exchanges",
			request.BookExchangeRequest{
				PropertyID: propertyID,
				StartDate:  "2025-07-04",
				EndDate:    "2025-07-06",
			}, ownerToken)

		var booked response.BookExchangeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &booked)
		s.EqualValues(25, booked.Points)
		s.EqualValues(5, booked.NewBalance)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owners/me/points", nil, ownerToken)
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &balance)
		s.Equal(ownerID, balance.OwnerID)
		s.EqualValues(5, balance.Points)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/reservations/"+booked.ID.String(), nil, ownerToken)
		var entry response.CalendarEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &entry)
		s.Equal("exchange", entry.Kind)
		s.Equal("pendiente", entry.Status)
		s.Require().NotNil(entry.Points)
		s.EqualValues(25, *entry.Points)
	})

	s.Run("insufficient points leave the balance untouched", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Dorada", 90_000_00)
		ownerID := dbtest.CreateTestOwner(s.T(), s.DB, "poor@example.com", "owner", 20)
		ownerToken := authtest.LoginOwner(s.T(), s.Router, "poor@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/exchanges",
			request.BookExchangeRequest{
				PropertyID: propertyID,
				StartDate:  "2025-07-04",
				EndDate:    "2025-07-06",
			}, ownerToken)
		s.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var envelope struct {
			Detail struct {
				Price   int64 `json:"price"`
				Balance int64 `json:"balance"`
			} `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &envelope))
		s.EqualValues(25, envelope.Detail.Price)
		s.EqualValues(20, envelope.Detail.Balance)

		s.EqualValues(20, dbtest.OwnerPoints(s.T(), s.DB, ownerID))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/properties/%s/calendar", propertyID), nil, ownerToken)
		var calendar []response.CalendarEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &calendar)
		s.Empty(calendar)
	})

	s.Run("voiding an exchange does not refund by default", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Dorada", 90_000_00)
		ownerID := dbtest.CreateTestOwner(s.T(), s.DB, "guest@example.com", "owner", 30)
		ownerToken := authtest.LoginOwner(s.T(), s.Router, "guest@example.com", "password123")
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/exchanges",
			request.BookExchangeRequest{
				PropertyID: propertyID,
				StartDate:  "2025-07-04",
				EndDate:    "2025-07-06",
			}, ownerToken)
		var booked response.BookExchangeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &booked)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/exchanges/"+booked.ID.String()+"/status",
			request.SetStatusRequest{Status: "anulada"}, adminToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		s.EqualValues(5, dbtest.OwnerPoints(s.T(), s.DB, ownerID))
	})

	s.Run("voided exchange frees its dates for the same owner", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Dorada", 90_000_00)
		dbtest.CreateTestOwner(s.T(), s.DB, "guest@example.com", "owner", 60)
		guestToken := authtest.LoginOwner(s.T(), s.Router, "guest@example.com", "password123")
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		book := request.BookExchangeRequest{
			PropertyID: propertyID,
			StartDate:  "2025-07-04",
			EndDate:    "2025-07-06",
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/exchanges", book, guestToken)
		var booked response.BookExchangeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &booked)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/exchanges/"+booked.ID.String()+"/status",
			request.SetStatusRequest{Status: "anulada"}, adminToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/exchanges", book, guestToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &booked)
		s.EqualValues(10, booked.NewBalance)
	})

	s.Run("concurrent ad-hoc and exchange requests resolve to exactly one winner", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Dorada", 90_000_00)
		dbtest.CreateTestOwner(s.T(), s.DB, "guest@example.com", "owner", 30)
		guestToken := authtest.LoginOwner(s.T(), s.Router, "guest@example.com", "password123")
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		// The two kinds live in separate tables, so only the property lock
		// serializes this pair; neither exclusion constraint sees the other
		// table's insert.
		codes := make(chan int, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/exchanges",
				request.BookExchangeRequest{
					PropertyID: propertyID,
					StartDate:  "2025-07-04",
					EndDate:    "2025-07-06",
				}, guestToken)
			codes <- w.Code
		}()
		go func() {
			defer wg.Done()
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
				request.CreateReservationRequest{
					PropertyID: propertyID,
					StartDate:  "2025-07-05",
					EndDate:    "2025-07-08",
				}, ownerToken)
			codes <- w.Code
		}()
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, created)
		s.Equal(1, conflicted)
	})

	s.Run("a booked exchange blocks overlapping ad-hoc bookings", func() {
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Casa Dorada", 90_000_00)
		dbtest.CreateTestOwner(s.T(), s.DB, "guest@example.com", "owner", 30)
		guestToken := authtest.LoginOwner(s.T(), s.Router, "guest@example.com", "password123")
		ownerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/exchanges",
			request.BookExchangeRequest{
				PropertyID: propertyID,
				StartDate:  "2025-07-04",
				EndDate:    "2025-07-06",
			}, guestToken)
		var booked response.BookExchangeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &booked)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				PropertyID: propertyID,
				StartDate:  "2025-07-05",
				EndDate:    "2025-07-08",
			}, ownerToken)
		s.Equal(http.StatusConflict, w.Code, w.Body.String())
	})
}
