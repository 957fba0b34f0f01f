//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"timeshare-portal/internal/domain/owner"
	"timeshare-portal/internal/domain/timeshare"
	"timeshare-portal/internal/handler/api"
	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"
	"timeshare-portal/tests/common/builder"
	"timeshare-portal/tests/common/httptest"
	"timeshare-portal/tests/common/testutil"
	commandsmock "timeshare-portal/tests/mock/commands"
	queriesmock "timeshare-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockShareCommands
	mockQueries  *queriesmock.MockPropertyQueries
	handler      *api.PropertyHandler
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShareCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPropertyQueries(s.mockCtrl)
	s.handler = api.NewPropertyHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("owner_id", uuid.New())
		c.Set("owner_role", owner.RoleAdmin)
		c.Next()
	}

	s.router.GET("/properties", authMiddleware, s.handler.List)
	s.router.GET("/properties/:id", authMiddleware, s.handler.Get)
	s.router.POST("/properties", authMiddleware, s.handler.Create)
	s.router.PUT("/properties/:id/price", authMiddleware, s.handler.UpdatePrice)
	s.router.PUT("/properties/:id/shares/:index", authMiddleware, s.handler.AssignShare)
	s.router.POST("/properties/:id/allocations", authMiddleware, s.handler.RegenerateAllocations)
}

func (s *PropertyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *PropertyHandlerTestSuite) TestList() {
	s.Run("success: each property carries its four shares", func() {
		view := builder.NewPropertyBuilder().BuildView()

		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.PropertyView{view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		shares, ok := body[0]["shares"].([]any)
		s.Require().True(ok)
		s.Len(shares, timeshare.ShareCount)
	})
}

func (s *PropertyHandlerTestSuite) TestGet() {
	s.Run("success: share prices are a quarter of the property price", func() {
		view := builder.NewPropertyBuilder().WithPriceCents(100_000_00).BuildView()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+view.ID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		shares := body["shares"].([]any)
		s.Require().Len(shares, timeshare.ShareCount)
		first := shares[0].(map[string]any)
		s.Equal(float64(25_000_00), first["price_cents"])
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("no rows")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+id.String(), nil, "bearer-token")

		httptest.AssertPlainError(s.T(), rec, http.StatusNotFound, "Property not found")
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestCreate / TestUpdatePrice
// ================================================================================

func (s *PropertyHandlerTestSuite) TestCreate() {
	url := "/properties"
	reqBody := builder.NewPropertyBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new ID", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateProperty(gomock.Any(), reqBody.Name, reqBody.PriceCents).
			Return(id, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: price_cents (required)", mutate: testutil.Field("price_cents", nil)},
			{name: "zero price", mutate: testutil.Field("price_cents", 0)},
			{name: "negative price", mutate: testutil.Field("price_cents", -100)},
		} {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *PropertyHandlerTestSuite) TestUpdatePrice() {
	id := uuid.New()
	url := "/properties/" + id.String() + "/price"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdatePropertyPrice(gomock.Any(), id, int64(200_000_00)).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price_cents": 200_000_00}, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		s.mockCommands.EXPECT().UpdatePropertyPrice(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrPropertyNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price_cents": 200_000_00}, "bearer-token")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestAssignShare
// ================================================================================

func (s *PropertyHandlerTestSuite) TestAssignShare() {
	propertyID := uuid.New()
	ownerID := uuid.New()
	url := "/properties/" + propertyID.String() + "/shares/2"

	reqBody := builder.NewPropertyBuilder().
		WithShareOwner(2, ownerID, timeshare.AcquireComprar).
		BuildAssignRequestDTO()

	s.Run("success: reports the assignment and the allocation counts", func() {
		result := &commands.AssignShareResult{
			PropertyID:   propertyID,
			ShareIndex:   2,
			Status:       "vendida",
			Upserted:     5,
			StaleRemoved: 0,
		}

		s.mockCommands.EXPECT().AssignShare(gomock.Any(), propertyID, 2, reqBody.OwnerID, timeshare.AcquireComprar).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("vendida", body["status"])
		s.Equal(float64(5), body["allocations_upserted"])
		s.Equal(false, body["allocation_failed"])
	})

	s.Run("success: releasing a share removes its stale allocations", func() {
		release := map[string]any{"owner_id": nil}
		result := &commands.AssignShareResult{
			PropertyID:   propertyID,
			ShareIndex:   2,
			Status:       "disponible",
			Upserted:     0,
			StaleRemoved: 5,
		}

		s.mockCommands.EXPECT().AssignShare(gomock.Any(), propertyID, 2, gomock.Nil(), gomock.Any()).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, release, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("disponible", body["status"])
		s.Equal(float64(5), body["allocations_removed"])
	})

	s.Run("error: 400 Bad Request for an out-of-range share index", func() {
		s.mockCommands.EXPECT().AssignShare(gomock.Any(), propertyID, 5, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidShare).Times(1)
		badURL := "/properties/" + propertyID.String() + "/shares/5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, badURL, reqBody, "bearer-token")

		httptest.AssertPlainError(s.T(), rec, http.StatusBadRequest, "Invalid share assignment")
	})

	s.Run("error: 400 Bad Request for a non-numeric index", func() {
		badURL := "/properties/" + propertyID.String() + "/shares/two"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, badURL, reqBody, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown owner", func() {
		s.mockCommands.EXPECT().AssignShare(gomock.Any(), propertyID, 2, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrOwnerNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		httptest.AssertPlainError(s.T(), rec, http.StatusNotFound, "Owner not found")
	})
}

// ================================================================================
// TestRegenerateAllocations
// ================================================================================

func (s *PropertyHandlerTestSuite) TestRegenerateAllocations() {
	propertyID := uuid.New()
	url := "/properties/" + propertyID.String() + "/allocations"

	s.Run("success: reports upserted and removed counts", func() {
		result := &commands.AssignShareResult{
			PropertyID:   propertyID,
			Upserted:     10,
			StaleRemoved: 3,
		}

		s.mockCommands.EXPECT().RegenerateAllocations(gomock.Any(), propertyID).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(10), body["allocations_upserted"])
		s.Equal(float64(3), body["allocations_removed"])
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		s.mockCommands.EXPECT().RegenerateAllocations(gomock.Any(), propertyID).
			Return(nil, commands.ErrPropertyNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
