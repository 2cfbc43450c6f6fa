//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"sharekit/internal/pkg/timefmt"
	"sharekit/tests/common/dbtest"
	"sharekit/tests/common/httptest"
	"sharekit/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("booker creates, owner approves, both can read", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", "Cordless drill", true)

		start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		end := start.Add(48 * time.Hour)

		reqBody := map[string]any{
			"itemId": itemID,
			"start":  start.Format(timefmt.Layout),
			"end":    end.Format(timefmt.Layout),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, strconv.FormatInt(bookerID, 10))
		require.Equal(t, http.StatusCreated, w.Code, "booking should be created: %s", w.Body.String())

		var created map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "WAITING", created["status"])

		bookingID := int64(created["id"].(float64))
		require.NotZero(t, bookingID)

		item, ok := created["item"].(map[string]any)
		require.True(t, ok, "nested item DTO expected")
		require.Equal(t, "Drill", item["name"])

		booker, ok := created["booker"].(map[string]any)
		require.True(t, ok, "nested booker DTO expected")
		require.Equal(t, float64(bookerID), booker["id"])

		// owner approves
		patchURL := fmt.Sprintf("%s/%d?approved=true", bookingsURL, bookingID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, nil, strconv.FormatInt(ownerID, 10))
		require.Equal(t, http.StatusOK, w.Code, "owner should approve: %s", w.Body.String())

		var approved map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &approved))
		require.Equal(t, "APPROVED", approved["status"])

		// a second decision is a business error
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, nil, strconv.FormatInt(ownerID, 10))
		require.Equal(t, http.StatusInternalServerError, w.Code)

		// both participants read, a stranger does not
		getURL := fmt.Sprintf("%s/%d", bookingsURL, bookingID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, strconv.FormatInt(bookerID, 10))
		require.Equal(t, http.StatusOK, w.Code)

		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger", "stranger@example.com")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, strconv.FormatInt(strangerID, 10))
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	s.Run("unavailable item cannot be booked", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner2@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker2@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Saw", "Hand saw", false)

		start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		reqBody := map[string]any{
			"itemId": itemID,
			"start":  start.Format(timefmt.Layout),
			"end":    start.Add(time.Hour).Format(timefmt.Layout),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, strconv.FormatInt(bookerID, 10))
		require.Equal(t, http.StatusInternalServerError, w.Code)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "item is not available for booking")
	})

	s.Run("period ordering is not checked behind the gateway", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner3@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker3@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", "Step ladder", true)

		// start after end: the gateway rejects this shape, the ledger does not
		start := time.Now().Add(48 * time.Hour).Truncate(time.Second)
		reqBody := map[string]any{
			"itemId": itemID,
			"start":  start.Format(timefmt.Layout),
			"end":    start.Add(-24 * time.Hour).Format(timefmt.Layout),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, strconv.FormatInt(bookerID, 10))
		require.Equal(t, http.StatusCreated, w.Code, "reversed period should persist: %s", w.Body.String())

		var created map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "WAITING", created["status"])
	})

	s.Run("state filters partition the booker list", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner3@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker3@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", "Tall ladder", true)

		now := time.Now().Truncate(time.Second)
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(48*time.Hour), now.Add(72*time.Hour), "WAITING")

		sharer := strconv.FormatInt(bookerID, 10)
		cases := []struct {
			state string
			want  int
		}{
			{state: "ALL", want: 3},
			{state: "past", want: 1},
			{state: "CURRENT", want: 1},
			{state: "future", want: 1},
			{state: "WAITING", want: 1},
			{state: "REJECTED", want: 0},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state="+tc.state, nil, sharer)
			require.Equal(t, http.StatusOK, w.Code, "state %s: %s", tc.state, w.Body.String())

			var list []map[string]any
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
			require.Len(t, list, tc.want, "state %s", tc.state)
		}
	})
}
