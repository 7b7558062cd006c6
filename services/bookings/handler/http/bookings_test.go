package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActionContext(t *testing.T, callerID uuid.UUID, bookingID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/bookings/:bookingID")
	c.SetParamNames("bookingID")
	c.SetParamValues(bookingID)
	c.Set("user_id", callerID)
	return c, rec
}

func TestResolveAction_ReturnsNewStatus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	callerID := uuid.New()
	bookingID := uuid.New()

	mockUC.EXPECT().
		ResolveAction(gomock.Any(), callerID, bookingID, models.BookingActionApprove).
		Return(models.BookingStatusConfirmed, nil)

	c, rec := newActionContext(t, callerID, bookingID.String(), `{"action":"approve"}`)

	// Act
	err := handler.ResolveAction(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.BookingStatusConfirmed, resp.Status)
}

func TestResolveAction_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"invalid transition", bookings.ErrInvalidTransition, http.StatusBadRequest},
		{"no seats", bookings.ErrNoSeatsAvailable, http.StatusBadRequest},
		{"not participant", bookings.ErrNotParticipant, http.StatusForbidden},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockBookingUC(ctrl)
			handler := NewBookingsHandler(mockUC)

			callerID := uuid.New()
			bookingID := uuid.New()

			mockUC.EXPECT().
				ResolveAction(gomock.Any(), callerID, bookingID, models.BookingActionDeny).
				Return(models.BookingStatus(""), tt.ucErr)

			c, rec := newActionContext(t, callerID, bookingID.String(), `{"action":"deny"}`)

			// Act
			err := handler.ResolveAction(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResolveAction_UnknownActionRejectedBeforeUsecase(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	c, rec := newActionContext(t, uuid.New(), uuid.New().String(), `{"action":"escalate"}`)

	// Act
	err := handler.ResolveAction(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveAction_BadBookingID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	c, rec := newActionContext(t, uuid.New(), "not-a-uuid", `{"action":"approve"}`)

	// Act
	err := handler.ResolveAction(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestBooking_Created(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	callerID := uuid.New()
	rideID := uuid.New()
	created := &models.Booking{BookingID: uuid.New(), RideID: rideID, Status: models.BookingStatusPending}

	mockUC.EXPECT().
		RequestBooking(gomock.Any(), callerID, gomock.Any()).
		Return(created, nil)

	e := echo.New()
	body := `{"ride_id":"` + rideID.String() + `","pickup_location":"Transit center"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", callerID)

	// Act
	err := handler.RequestBooking(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequestBooking_DuplicateIsConflict(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	callerID := uuid.New()
	rideID := uuid.New()

	mockUC.EXPECT().
		RequestBooking(gomock.Any(), callerID, gomock.Any()).
		Return(nil, bookings.ErrDuplicateBooking)

	e := echo.New()
	body := `{"ride_id":"` + rideID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", callerID)

	// Act
	err := handler.RequestBooking(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRequestBooking_MissingAuthIsUnauthorized(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := handler.RequestBooking(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
