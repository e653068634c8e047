package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-service/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListHotels_LatestFirst(t *testing.T) {
	st := newMemStore()
	st.seed(model.Tenant{HotelName: "Grand Palace", Address: "1 Main St", ContactNumber: "5551234"})
	st.seed(model.Tenant{HotelName: "Sea View", Address: "2 Shore Rd", ContactNumber: "5555678"})
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodGet, "/hotels", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	hotels := body["hotels"].([]interface{})
	require.Len(t, hotels, 2)

	first := hotels[0].(map[string]interface{})
	second := hotels[1].(map[string]interface{})
	assert.Equal(t, "Sea View", first["hotel_name"])
	assert.Equal(t, "Grand Palace", second["hotel_name"])
}

func TestListHotels_Idempotent(t *testing.T) {
	st := newMemStore()
	st.seed(model.Tenant{HotelName: "Grand Palace", Address: "1 Main St", ContactNumber: "5551234"})
	h := NewHotelHandler(st)

	c1, rec1 := newContext(t, http.MethodGet, "/hotels", "")
	require.NoError(t, h.List(c1))
	c2, rec2 := newContext(t, http.MethodGet, "/hotels", "")
	require.NoError(t, h.List(c2))

	assert.JSONEq(t, rec1.Body.String(), rec2.Body.String())
}

func TestCreateHotel_Success(t *testing.T) {
	st := newMemStore()
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodPost, "/hotels",
		`{"hotel_name":"Grand Palace","address":"1 Main St","contact_number":"+1 555-1234"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Hotel created successfully.", body["message"])
	assert.Equal(t, "/hotels", body["redirect"])

	// A subsequent list includes the new hotel
	c2, rec2 := newContext(t, http.MethodGet, "/hotels", "")
	require.NoError(t, h.List(c2))
	assert.Contains(t, rec2.Body.String(), "Grand Palace")
}

func TestCreateHotel_DuplicateName(t *testing.T) {
	st := newMemStore()
	st.seed(model.Tenant{HotelName: "Grand Palace", Address: "1 Main St", ContactNumber: "5551234"})
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodPost, "/hotels",
		`{"hotel_name":"Grand Palace","address":"9 Other St","contact_number":"5559999"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "The hotel name has already been taken.", errs["hotel_name"])
}

func TestCreateHotel_ValidationErrorsCollected(t *testing.T) {
	st := newMemStore()
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodPost, "/hotels",
		`{"hotel_name":"","address":"","contact_number":"abc"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Len(t, errs, 3)
	assert.Equal(t, "The contact number format is invalid.", errs["contact_number"])

	// Nothing was persisted
	c2, rec2 := newContext(t, http.MethodGet, "/hotels", "")
	require.NoError(t, h.List(c2))
	body2 := decodeBody(t, rec2)
	assert.Empty(t, body2["hotels"])
}

func TestUpdateHotel_Success(t *testing.T) {
	st := newMemStore()
	seeded := st.seed(model.Tenant{HotelName: "Grand Palace", Address: "1 Main St", ContactNumber: "5551234"})
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodPut, "/hotels/1",
		`{"hotel_name":"Grand Palace Resort","address":"1 Main St","contact_number":"5551234"}`)
	c.SetPath("/hotels/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Hotel updated successfully.", body["message"])

	updated, err := st.FindHotel(c.Request().Context(), seeded.TenantID)
	require.NoError(t, err)
	assert.Equal(t, "Grand Palace Resort", updated.HotelName)
}

func TestUpdateHotel_KeepsOwnName(t *testing.T) {
	st := newMemStore()
	st.seed(model.Tenant{HotelName: "Grand Palace", Address: "1 Main St", ContactNumber: "5551234"})
	h := NewHotelHandler(st)

	// Re-submitting the record's own name passes the uniqueness check
	c, rec := newContext(t, http.MethodPut, "/hotels/1",
		`{"hotel_name":"Grand Palace","address":"2 New St","contact_number":"5551234"}`)
	c.SetPath("/hotels/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateHotel_NameTakenByOther(t *testing.T) {
	st := newMemStore()
	st.seed(model.Tenant{HotelName: "Grand Palace", Address: "1 Main St", ContactNumber: "5551234"})
	st.seed(model.Tenant{HotelName: "Sea View", Address: "2 Shore Rd", ContactNumber: "5555678"})
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodPut, "/hotels/2",
		`{"hotel_name":"Grand Palace","address":"2 Shore Rd","contact_number":"5555678"}`)
	c.SetPath("/hotels/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "The hotel name has already been taken.", errs["hotel_name"])
}

func TestUpdateHotel_NotFound(t *testing.T) {
	st := newMemStore()
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodPut, "/hotels/99",
		`{"hotel_name":"Ghost","address":"Nowhere","contact_number":"5550000"}`)
	c.SetPath("/hotels/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateHotel_InvalidID(t *testing.T) {
	st := newMemStore()
	h := NewHotelHandler(st)

	c, rec := newContext(t, http.MethodPut, "/hotels/abc", `{}`)
	c.SetPath("/hotels/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
