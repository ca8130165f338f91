package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "innkeep/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/rooms", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestStatusFor(t *testing.T) {
	t.Run("successful request uses the written status", func(t *testing.T) {
		c := testContext()
		c.Response().WriteHeader(http.StatusCreated)
		assert.Equal(t, http.StatusCreated, statusFor(c, nil))
	})

	t.Run("domain error carries its own status", func(t *testing.T) {
		// The error handler has not written anything yet when the
		// middleware observes the request.
		c := testContext()
		err := errors.WithStack(domainerrors.ErrHotelAccessDenied)
		assert.Equal(t, http.StatusForbidden, statusFor(c, err))
	})

	t.Run("echo http error carries its code", func(t *testing.T) {
		c := testContext()
		err := echo.NewHTTPError(http.StatusUnprocessableEntity, "bad input")
		assert.Equal(t, http.StatusUnprocessableEntity, statusFor(c, err))
	})

	t.Run("unclassified error counts as 500", func(t *testing.T) {
		c := testContext()
		assert.Equal(t, http.StatusInternalServerError, statusFor(c, errors.New("boom")))
	})
}
