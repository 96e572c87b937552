//go:build e2e

package asset_test

import (
	"fmt"
	"net/http"
	"slices"
	"sync"
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

const (
	assetsURL = "/api/assets"
	borrowURL = "/api/assets/borrow"
	returnURL = "/api/assets/return"
)

type AssetSuite struct {
	e2e.SharedSuite
}

func TestAssetSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AssetSuite))
}

func (s *AssetSuite) borrow(t *testing.T, token string, assetID uuid.UUID, quantity int) *httptest.ResponseRecorder {
	t.Helper()
	body := reqdto.BorrowRequest{AssetID: assetID, Quantity: quantity, ConditionBefore: "good"}
	return httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL, body, token)
}

func (s *AssetSuite) getAsset(t *testing.T, token string, id uuid.UUID) resdto.AssetResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%s", assetsURL, id), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp resdto.AssetResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp
}

func (s *AssetSuite) TestBorrowAndReturn() {
	s.Run("success: availability follows the ledger", func() {
		t := s.T()
		tablesID := dbtest.CreateTestAsset(t, s.DB, "Folding table", "FURNITURE", 10)
		_, tokenA := s.JWT.Actor(t, user.RoleResident)
		_, tokenB := s.JWT.Actor(t, user.RoleResident)

		w := s.borrow(t, tokenA, tablesID, 6)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var log resdto.BorrowLogResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &log))
		assert.Equal(t, "BORROWED", log.Status)
		assert.Equal(t, 6, log.Quantity)
		assert.Equal(t, 4, s.getAsset(t, tokenB, tablesID).AvailableQuantity)

		w = s.borrow(t, tokenB, tablesID, 5)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "InsufficientStock", "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL,
			reqdto.ReturnRequest{BorrowLogID: log.ID, ConditionAfter: "damaged"}, tokenA)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var returned resdto.BorrowLogResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &returned))
		assert.Equal(t, "DAMAGED", returned.Status)
		assert.NotNil(t, returned.ReturnedAt)

		got := s.getAsset(t, tokenB, tablesID)
		assert.Equal(t, 10, got.AvailableQuantity)
		assert.Equal(t, 0, got.BorrowedQuantity)

		w = s.borrow(t, tokenB, tablesID, 10)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("error: concurrent borrows never exceed stock", func() {
		t := s.T()
		tablesID := dbtest.CreateTestAsset(t, s.DB, "Folding table", "FURNITURE", 10)
		_, tokenA := s.JWT.Actor(t, user.RoleResident)
		_, tokenB := s.JWT.Actor(t, user.RoleResident)
		tokens := []string{tokenA, tokenB}

		codes := make([]int, len(tokens))
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i, token := range tokens {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				codes[i] = s.borrow(t, token, tablesID, 6).Code
			}()
		}
		close(start)
		wg.Wait()

		slices.Sort(codes)
		assert.Equal(t, []int{http.StatusCreated, http.StatusConflict}, codes)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "borrow_logs", "asset_id = $1 AND status = 'BORROWED'", tablesID))

		got := s.getAsset(t, tokenA, tablesID)
		assert.Equal(t, 6, got.BorrowedQuantity)
		assert.Equal(t, 4, got.AvailableQuantity)
	})

	s.Run("error: return by another resident", func() {
		t := s.T()
		tentsID := dbtest.CreateTestAsset(t, s.DB, "Tent", "TENT", 2)
		_, owner := s.JWT.Actor(t, user.RoleResident)
		_, other := s.JWT.Actor(t, user.RoleResident)

		w := s.borrow(t, owner, tentsID, 1)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var log resdto.BorrowLogResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &log))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL,
			reqdto.ReturnRequest{BorrowLogID: log.ID, ConditionAfter: "good"}, other)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden", "")
	})

	s.Run("error: invalid quantity", func() {
		t := s.T()
		tentsID := dbtest.CreateTestAsset(t, s.DB, "Tent", "TENT", 2)
		_, token := s.JWT.Actor(t, user.RoleResident)

		w := s.borrow(t, token, tentsID, 0)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "ValidationError", "")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "borrow_logs", "asset_id = $1", tentsID))
	})
}

func (s *AssetSuite) TestAssetAdmin() {
	s.Run("success: admin creates an asset", func() {
		t := s.T()
		_, adminToken := s.JWT.Actor(t, user.RoleAdmin)
		body := reqdto.AssetRequest{Name: "Speaker", Category: "AUDIO", Quantity: 3}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assetsURL, body, adminToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp resdto.AssetResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		assert.Equal(t, "GOOD", resp.Status)
		assert.Equal(t, 3, resp.AvailableQuantity)
	})

	s.Run("error: residents cannot create assets", func() {
		t := s.T()
		_, token := s.JWT.Actor(t, user.RoleResident)
		body := reqdto.AssetRequest{Name: "Speaker", Category: "AUDIO", Quantity: 3}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assetsURL, body, token)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden", "")
	})

	s.Run("error: total below borrowed", func() {
		t := s.T()
		micsID := dbtest.CreateTestAsset(t, s.DB, "Microphone", "AUDIO", 4)
		_, residentToken := s.JWT.Actor(t, user.RoleResident)
		_, adminToken := s.JWT.Actor(t, user.RoleAdmin)
		require.Equal(t, http.StatusCreated, s.borrow(t, residentToken, micsID, 3).Code)

		body := reqdto.AssetRequest{Name: "Microphone", Category: "AUDIO", Quantity: 2}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s", assetsURL, micsID), body, adminToken)

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "ConflictError", "")
	})
}
