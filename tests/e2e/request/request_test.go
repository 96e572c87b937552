//go:build e2e

package request_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"civic-hub/internal/domain/user"
	reqdto "civic-hub/internal/handler/dto/request"
	resdto "civic-hub/internal/handler/dto/response"
	"civic-hub/tests/common/dbtest"
	"civic-hub/tests/common/httptest"
	"civic-hub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const requestsURL = "/api/requests"

type RequestSuite struct {
	e2e.SharedSuite
}

func TestRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RequestSuite))
}

func (s *RequestSuite) submit(t *testing.T, token, requestType, payload string) resdto.ChangeRequestResponse {
	t.Helper()
	body := reqdto.SubmitChangeRequest{Type: requestType, Payload: json.RawMessage(payload)}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp resdto.ChangeRequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp
}

func (s *RequestSuite) decide(t *testing.T, token string, id uuid.UUID, status string) *httptest.ResponseRecorder {
	t.Helper()
	url := fmt.Sprintf("%s/%s/status", requestsURL, id)
	return httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqdto.DecisionRequest{Status: status}, token)
}

func (s *RequestSuite) TestAddPerson() {
	s.Run("success: approval adds the person to the household", func() {
		t := s.T()
		resident, token := s.JWT.Actor(t, user.RoleResident)
		_, adminToken := s.JWT.Actor(t, user.RoleAdmin)
		householdID := dbtest.CreateTestHousehold(t, s.DB, "HH-001", resident.ID)

		req := s.submit(t, token, "ADD_PERSON", `{"fullName":"Nguyen Van B","idNumber":"0790001"}`)
		assert.Equal(t, "PENDING", req.Status)
		require.NotNil(t, req.HouseholdID)
		assert.Equal(t, householdID, *req.HouseholdID)

		w := s.decide(t, adminToken, req.ID, "APPROVED")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var decided resdto.ChangeRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &decided))
		assert.Equal(t, "APPROVED", decided.Status)
		assert.NotNil(t, decided.DecidedBy)

		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "persons", "household_id = $1", householdID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "notifications", "recipient_id = $1", resident.ID))
	})

	s.Run("error: failing handler leaves the request pending", func() {
		t := s.T()
		resident, token := s.JWT.Actor(t, user.RoleResident)
		_, adminToken := s.JWT.Actor(t, user.RoleAdmin)
		householdID := dbtest.CreateTestHousehold(t, s.DB, "HH-002", resident.ID)

		first := s.submit(t, token, "ADD_PERSON", `{"fullName":"Tran Thi C","idNumber":"0790002"}`)
		require.Equal(t, http.StatusOK, s.decide(t, adminToken, first.ID, "APPROVED").Code)
		dup := s.submit(t, token, "ADD_PERSON", `{"fullName":"Tran Thi D","idNumber":"0790002"}`)

		w := s.decide(t, adminToken, dup.ID, "APPROVED")

		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "HandlerFailed", "")
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "change_requests", "id = $1 AND status = 'PENDING'", dup.ID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "persons", "household_id = $1", householdID))
	})

	s.Run("success: rejection does not run the handler", func() {
		t := s.T()
		resident, token := s.JWT.Actor(t, user.RoleResident)
		_, adminToken := s.JWT.Actor(t, user.RoleAdmin)
		householdID := dbtest.CreateTestHousehold(t, s.DB, "HH-003", resident.ID)

		req := s.submit(t, token, "ADD_PERSON", `{"fullName":"Le Van E"}`)
		w := s.decide(t, adminToken, req.ID, "REJECTED")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "persons", "household_id = $1", householdID))
	})
}

func (s *RequestSuite) TestSubmit() {
	s.Run("error: unknown request type", func() {
		t := s.T()
		_, token := s.JWT.Actor(t, user.RoleResident)
		body := reqdto.SubmitChangeRequest{Type: "ADOPT_PET", Payload: json.RawMessage(`{}`)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "UnknownRequestType", "")
	})

	s.Run("success: my requests lists only my own", func() {
		t := s.T()
		resident, token := s.JWT.Actor(t, user.RoleResident)
		_, otherToken := s.JWT.Actor(t, user.RoleResident)
		dbtest.CreateTestHousehold(t, s.DB, "HH-004", resident.ID)
		mine := s.submit(t, token, "HOUSEHOLD_UPDATE", `{"address":"12 Lake road"}`)
		s.submit(t, otherToken, "HOUSEHOLD_UPDATE", `{"address":"3 Hill road"}`)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/my-requests", nil, token)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var page resdto.PageResponse[resdto.ChangeRequestResponse]
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, mine.ID, page.Items[0].ID)
	})
}
