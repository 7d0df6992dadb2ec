package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/auth"
	"github.com/Ka-few/Beauty-parlor-app/internal/config"
	"github.com/Ka-few/Beauty-parlor-app/internal/infra/memory"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
	"github.com/Ka-few/Beauty-parlor-app/internal/mpesa"
	"github.com/Ka-few/Beauty-parlor-app/internal/seed"
)

type stubGateway struct{}

func (stubGateway) AccessToken(context.Context) (string, error) { return "tok", nil }

func (stubGateway) STKPush(context.Context, string, mpesa.Payment) (*mpesa.GatewayResponse, error) {
	return &mpesa.GatewayResponse{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        []byte(`{"CheckoutRequestID":"ws_CO_7","ResponseCode":"0"}`),
	}, nil
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	require.NoError(t, seed.Run(context.Background(), seed.Repos{
		Customers: store.Customers(),
		Catalog:   store.Catalog(),
		Bookings:  store.Bookings(),
		Tx:        store,
	}, "password123", time.Now()))

	sink := audit.NewMemory()
	cfg := &config.Config{
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		RateLimitRPS:       100,
		RateLimitBurst:     100,
	}

	r := gin.New()
	RegisterRoutes(r, cfg, Deps{
		Customers:   store.Customers(),
		Catalog:     store.Catalog(),
		Bookings:    store.Bookings(),
		Reviews:     store.Reviews(),
		Analytics:   store.Analytics(),
		Tx:          store,
		Audit:       sink,
		AuditReader: sink,
		Tokens:      auth.NewManager("test-secret", time.Hour),
		Gateway:     stubGateway{},
		Location:    time.UTC,
		Logger:      zap.NewNop(),
	})

	return &testServer{t: t, engine: r, store: store}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(phone string) string {
	w := s.do(http.MethodPost, "/login", "", `{"phone":"`+phone+`","password":"password123"}`)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.AccessToken
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = s.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salon_http_requests_total")
}

func TestRegisterAndMe(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/register", "", `{"name":"Carol","phone":"0711222333","password":"pw"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg struct {
		Customer struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"customer"`
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, "Carol", reg.Customer.Name)

	w = s.do(http.MethodPost, "/register", "", `{"name":"Carol","phone":"0711222333","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Phone already registered"}`, w.Body.String())

	w = s.do(http.MethodPost, "/register", "", `{"name":"Dan","phone":"not-a-phone","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request"}`, w.Body.String())

	w = s.do(http.MethodGet, "/me", reg.AccessToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phone":"0711222333"`)

	w = s.do(http.MethodGet, "/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login("0765235645")

	w := s.do(http.MethodPost, "/bookings", token, `{"stylist_id":2,"service_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Stylist 'David Kim' does not offer 'Haircut'"}`, w.Body.String())

	w = s.do(http.MethodPost, "/bookings", token, `{"stylist_id":2,"service_id":3,"appointment_time":"2025-09-01T09:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"booking":`)
	assert.Contains(t, w.Body.String(), `"payment_status":"pending"`)

	w = s.do(http.MethodGet, "/bookings", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var own []struct {
		Customer struct {
			ID uint `json:"id"`
		} `json:"customer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))
	require.Len(t, own, 2)
	for _, b := range own {
		assert.Equal(t, uint(1), b.Customer.ID)
	}

	// Alice has now booked David, so she may review him.
	w = s.do(http.MethodPost, "/reviews", token, `{"stylist_id":2,"rating":5,"comment":"Lovely"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/stylists/2/reviews", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customer_name":"Alice Johnson"`)
}

func TestPaymentEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login("0789098790")

	w := s.do(http.MethodPost, "/initiate-mpesa-payment", token, `{"amount":25,"phone_number":"0712345678","booking_id":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"CheckoutRequestID":"ws_CO_7","ResponseCode":"0"}`, w.Body.String())

	w = s.do(http.MethodPost, "/initiate-mpesa-payment", token, `{"amount":25,"phone_number":"0712345678","booking_id":99}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/mpesa-callback", "", `not even json`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ResultCode":0,"ResultDesc":"Accepted"}`, w.Body.String())
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	token := s.login("0765235645")

	w := s.do(http.MethodGet, "/admin/analytics/summary", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())

	w = s.do(http.MethodPost, "/stylists", token, `{"name":"Grace"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, s.store.Customers().Create(context.Background(), &models.Customer{
		Name: "Owner", Phone: "0700000001", PasswordHash: hash, IsAdmin: true,
	}))
	admin := s.login("0700000001")

	w = s.do(http.MethodGet, "/admin/analytics/summary", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_revenue":"55.00"`)

	w = s.do(http.MethodGet, "/admin/bookings", admin, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stylist_name":"Sophie Lee"`)

	w = s.do(http.MethodDelete, "/stylists/2", admin, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Stylist deleted"}`, w.Body.String())

	w = s.do(http.MethodGet, "/stylists/2", admin, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/admin/audit-logs?action=stylist_deleted", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestServiceRoutes(t *testing.T) {
	s := newTestServer(t)
	token := s.login("0765235645")

	w := s.do(http.MethodPut, "/services/1", token, `{"price":40}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Haircut"`)
	assert.Contains(t, w.Body.String(), `"price":40`)

	w = s.do(http.MethodGet, "/services/abc", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/services/3", token, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/services", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestServiceRoutesRejectNonFinitePrice(t *testing.T) {
	s := newTestServer(t)
	token := s.login("0765235645")

	for _, price := range []string{`"NaN"`, `"Inf"`, `"1e400"`} {
		w := s.do(http.MethodPost, "/services", token, `{"title":"Ghost","price":`+price+`}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Price must be a number"}`, w.Body.String())

		w = s.do(http.MethodPut, "/services/1", token, `{"price":`+price+`}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := s.do(http.MethodGet, "/services", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)
	assert.Contains(t, w.Body.String(), `"price":30`)
}
