//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/handler/api"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/handler/httperr"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"
	"airvoucher-admin/tests/common/builder"
	"airvoucher-admin/tests/common/httptest"
	"airvoucher-admin/tests/common/testutil"
	commandsmock "airvoucher-admin/tests/mock/commands"
	queriesmock "airvoucher-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// Retailers (generic entity handler)
// ================================================================================

type RetailerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRetailerCommands
	mockQueries  *queriesmock.MockEntityQueries[queries.RetailerView]
	handler      *api.RetailerHandler
}

func (s *RetailerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRetailerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEntityQueries[queries.RetailerView](s.mockCtrl)
	s.handler = api.NewRetailerHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/retailers", s.handler.List)
	s.router.POST("/retailers", s.handler.Create)
	s.router.GET("/retailers/:id", s.handler.Get)
	s.router.PUT("/retailers/:id", s.handler.Update)
	s.router.DELETE("/retailers/:id", s.handler.Delete)
}

func (s *RetailerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRetailerHandlerSuite(t *testing.T) {
	suite.Run(t, new(RetailerHandlerTestSuite))
}

func retailerView() *queries.RetailerView {
	location := "Soweto"
	now := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	return &queries.RetailerView{
		ID:        uuid.New(),
		Name:      "Spaza Corner",
		Email:     "spaza@example.com",
		Location:  &location,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *RetailerHandlerTestSuite) TestList() {
	s.Run("success: returns all retailers", func() {
		views := []*queries.RetailerView{retailerView(), retailerView()}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/retailers", nil, "")

		var body []resdto.RetailerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(views[0].ID.String(), body[0].ID)
		s.Equal(views[0].CreatedAt.Unix(), body[0].CreatedAt)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/retailers", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list retailers")
	})
}

func (s *RetailerHandlerTestSuite) TestCreate() {
	reqBody := map[string]any{"name": "Spaza Corner", "email": "spaza@example.com", "location": "Soweto"}

	s.Run("success: active by default", func() {
		view := retailerView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params retailer.Params) (uuid.UUID, error) {
				s.True(params.IsActive)
				s.Equal("Spaza Corner", params.Name)
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/retailers", reqBody, "")

		var body resdto.RetailerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseVoucher{
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "only optional fields", mutate: testutil.Omit("name", "email"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/retailers", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.WithMessage(commands.ErrEntityDuplicate, "retailer already exists"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/retailers", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "retailer already exists")
	})
}

func (s *RetailerHandlerTestSuite) TestUpdate() {
	existing := retailerView()
	url := "/retailers/" + existing.ID.String()

	s.Run("success: merges the partial request over stored values", func() {
		groupID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(2)
		s.mockCommands.EXPECT().Update(gomock.Any(), existing.ID, gomock.Any()).DoAndReturn(
			func(_ any, _ uuid.UUID, params retailer.Params) error {
				s.Equal(existing.Name, params.Name)
				s.Equal(existing.Location, params.Location)
				s.False(params.IsActive)
				s.Equal(&groupID, params.CommissionGroupID)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"is_active": false, "commission_group_id": groupID.String()}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the retailer does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).
			Return(nil, errs.WithMessage(queries.ErrEntityNotFound, "retailer not found"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "retailer not found")
	})
}

func (s *RetailerHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/retailers/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 while still referenced", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errs.WithMessage(commands.ErrEntityReference, "retailer references a missing record or is still in use"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/retailers/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "still in use")
	})
}

// ================================================================================
// Suppliers
// ================================================================================

func TestSupplierHandler_UpdateDropsCatalogWhenLeavingAggregator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommands := commandsmock.NewMockSupplierCommands(ctrl)
	mockQueries := queriesmock.NewMockEntityQueries[queries.SupplierView](ctrl)
	handler := api.NewSupplierHandler(mockCommands, mockQueries)

	router := gin.New()
	router.PUT("/suppliers/:id", handler.Update)

	catalog := string(supplier.CatalogMobileData)
	existing := &queries.SupplierView{
		ID:       uuid.New(),
		Name:     "Flash",
		Kind:     string(supplier.KindAggregator),
		Catalog:  &catalog,
		IsActive: true,
	}

	mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(2)
	mockCommands.EXPECT().Update(gomock.Any(), existing.ID, supplier.Params{
		Name:     "Flash",
		Kind:     string(supplier.KindStandard),
		IsActive: true,
	}).Return(nil)

	rec := httptest.PerformRequest(t, router, http.MethodPut, "/suppliers/"+existing.ID.String(), map[string]any{"kind": "standard"}, "")
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
}

// ================================================================================
// Admins
// ================================================================================

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockAdminQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/admins", s.handler.Create)
	s.router.GET("/admins/:id/retailers", s.handler.Retailers)
	s.router.PUT("/admins/:id/retailers", s.handler.AssignRetailers)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestCreate() {
	reqBody := map[string]any{"name": "Thandi Mokoena", "email": "thandi@example.com", "role": "admin"}

	s.Run("success: returns the created admin", func() {
		view := builder.NewAdminBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), admin.Params{
			Name:     "Thandi Mokoena",
			Email:    "thandi@example.com",
			Role:     "admin",
			IsActive: true,
		}).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admins", reqBody, "")

		var body resdto.AdminResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
	})

	s.Run("error: 400 for an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admins",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("role", "owner")), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AdminHandlerTestSuite) TestAssignRetailers() {
	adminID := uuid.New()
	url := "/admins/" + adminID.String() + "/retailers"
	r1, r2 := uuid.New(), uuid.New()

	s.Run("success: replaces the assignment and returns it", func() {
		s.mockCommands.EXPECT().AssignRetailers(gomock.Any(), adminID, []uuid.UUID{r1, r2}).Return(nil)
		s.mockQueries.EXPECT().AssignedRetailers(gomock.Any(), adminID).Return([]uuid.UUID{r1, r2}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"retailer_ids": []string{r1.String(), r2.String()}}, "")

		var body resdto.AdminRetailersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(adminID.String(), body.AdminID)
		s.ElementsMatch([]string{r1.String(), r2.String()}, body.RetailerIDs)
	})

	s.Run("success: empty list clears the assignment", func() {
		s.mockCommands.EXPECT().AssignRetailers(gomock.Any(), adminID, []uuid.UUID{}).Return(nil)
		s.mockQueries.EXPECT().AssignedRetailers(gomock.Any(), adminID).Return([]uuid.UUID{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"retailer_ids": []string{}}, "")

		var body resdto.AdminRetailersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.RetailerIDs)
	})

	s.Run("error: 422 lists unknown retailer ids", func() {
		missing := &commands.MissingRetailersError{IDs: []uuid.UUID{r2}}
		s.mockCommands.EXPECT().AssignRetailers(gomock.Any(), adminID, gomock.Any()).
			Return(errs.Mark(missing, commands.ErrUnknownRetailers))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"retailer_ids": []string{r1.String(), r2.String()}}, "")

		var detail httperr.MissingRetailers
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnprocessableEntity, "Unknown retailers", &detail)
		s.Equal([]uuid.UUID{r2}, detail.IDs)
	})

	s.Run("error: 404 when the admin does not exist", func() {
		s.mockCommands.EXPECT().AssignRetailers(gomock.Any(), adminID, gomock.Any()).
			Return(errs.WithMessage(commands.ErrEntityNotFound, "admin not found"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"retailer_ids": []string{r1.String()}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "admin not found")
	})

	s.Run("error: 400 without retailer_ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
