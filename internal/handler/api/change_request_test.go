//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/handler/api"
	resdto "civic-hub/internal/handler/dto/response"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"
	"civic-hub/tests/common/httptest"
	commandsmock "civic-hub/tests/mock/commands"
	queriesmock "civic-hub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	h := api.NewRequestHandler(s.mockCommands, s.mockQueries)

	s.router.Use(fakeAuth)
	s.router.POST("/requests", h.Submit)
	s.router.GET("/requests/:id", h.Get)
	s.router.PATCH("/requests/:id/status", h.Decide)
	s.router.GET("/my-requests", h.ListMine)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func requestView(status string) *queries.RequestView {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return &queries.RequestView{
		ID:          uuid.New(),
		Type:        "ADD_PERSON",
		RequesterID: testResident.ID,
		Payload:     json.RawMessage(`{"fullName":"Nguyen Van B"}`),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *RequestHandlerTestSuite) TestSubmit() {
	url := "/requests"
	body := map[string]any{"type": "ADD_PERSON", "payload": map[string]any{"fullName": "Nguyen Van B"}}
	view := requestView("PENDING")

	s.Run("success: returns 201 with the pending request", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), testResident, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ user.Actor, req commands.SubmitRequestRequest) (*commands.SubmitRequestResult, error) {
				s.Equal("ADD_PERSON", req.Type)
				s.JSONEq(`{"fullName":"Nguyen Van B"}`, string(req.Payload))
				return &commands.SubmitRequestResult{RequestID: view.ID}, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testResident, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "resident")

		var resp resdto.ChangeRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("PENDING", resp.Status)
		s.JSONEq(`{"fullName":"Nguyen Van B"}`, string(resp.Payload))
	})

	s.Run("error: 400 without a type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"payload": map[string]any{}}, "resident")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ValidationError", "Invalid request")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			kind   string
		}{
			{name: "unknown type", err: changerequest.ErrUnknownType, status: http.StatusBadRequest, kind: "UnknownRequestType"},
			{name: "payload schema", err: changerequest.ErrPayloadSchema, status: http.StatusBadRequest, kind: "ValidationError"},
			{name: "no household", err: changerequest.ErrNoHousehold, status: http.StatusBadRequest, kind: "ValidationError"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "resident")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.kind, "")
			})
		}
	})
}

func (s *RequestHandlerTestSuite) TestDecide() {
	view := requestView("APPROVED")
	url := "/requests/" + view.ID.String() + "/status"

	s.Run("success: approval returns the decided request", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), testAdmin, view.ID, approval.DecisionApprove).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testAdmin, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "APPROVED"}, "admin")

		var resp resdto.ChangeRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("APPROVED", resp.Status)
	})

	s.Run("error: 422 when the handler fails", func() {
		cause := errs.Wrap(household.ErrDuplicateIDNumber, "ADD_PERSON handler")
		s.mockCommands.EXPECT().Decide(gomock.Any(), testAdmin, view.ID, approval.DecisionApprove).
			Return(errs.Mark(cause, errs.ErrHandlerFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "APPROVED"}, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "HandlerFailed", "id number")
	})

	s.Run("error: 404 for an unknown request", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), testAdmin, view.ID, approval.DecisionReject).
			Return(changerequest.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "REJECTED"}, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NotFound", "")
	})
}

func (s *RequestHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's page", func() {
		views := []*queries.RequestView{requestView("PENDING"), requestView("REJECTED")}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), testResident, gomock.Nil(), queries.DefaultListLimit).
			Return(views, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/my-requests", nil, "resident")

		var page resdto.PageResponse[resdto.ChangeRequestResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Items, 2)
		s.Nil(page.NextCursor)
	})

	s.Run("error: 403 on another resident's request", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testResident, id).Return(nil, changerequest.ErrNotRequestOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+id.String(), nil, "resident")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden", "")
	})
}
