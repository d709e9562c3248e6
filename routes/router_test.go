package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"treehouse/config"
	"treehouse/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	srv    *httptest.Server
	client *http.Client
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:             "test",
		JWTSecret:          "test-secret",
		MembersTokenExpiry: time.Hour,
		MembersAccessCode:  "2301",
		CartTTL:            time.Hour,
		MenuCacheTTL:       time.Minute,
		WebhookTimeout:     time.Second,
		ConfirmationWindow: 100 * time.Millisecond,
		RestaurantName:     "The Treehouse",
	}
}

// newTestApp serves the router over a real listener so the submission
// client can reach the relay endpoint on the same server.
func newTestApp(t *testing.T, infra Infrastructure) *testApp {
	t.Helper()

	var handler http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.OrderRelayURL = srv.URL + "/api/order"
	router, err := NewRouter(cfg, infra)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	handler = router

	jar, _ := cookiejar.New(nil)
	return &testApp{srv: srv, client: &http.Client{Jar: jar}}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if s, ok := body.(string); ok {
		reader = bytes.NewBufferString(s)
	} else if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]json.RawMessage
	json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func decodeCart(t *testing.T, body map[string]json.RawMessage) models.CartResponse {
	t.Helper()
	var cart models.CartResponse
	if err := json.Unmarshal(body["data"], &cart); err != nil {
		t.Fatalf("decode cart %s: %v", body["data"], err)
	}
	return cart
}

func newWebhook(t *testing.T, status int) (*httptest.Server, *atomic.Int32, *[]byte) {
	t.Helper()
	var calls atomic.Int32
	var last []byte
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		last, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(webhook.Close)
	return webhook, &calls, &last
}

func TestOrderRelayEndpoint(t *testing.T) {
	webhook, calls, _ := newWebhook(t, http.StatusOK)
	failing, _, _ := newWebhook(t, http.StatusInternalServerError)
	closed := httptest.NewServer(http.NotFoundHandler())
	unreachable := closed.URL
	closed.Close()

	tests := []struct {
		name       string
		webhookURL string
		body       string
		wantCode   int
		wantField  string
		wantValue  string
	}{
		{"success", webhook.URL, `{"items":[{"id":"2","quantity":1}],"totalItems":1,"timestamp":"2026-01-01T00:00:00.000Z"}`, http.StatusOK, "message", "Order processed successfully"},
		{"missing items", webhook.URL, `{"totalItems":1}`, http.StatusBadRequest, "error", "Missing required fields"},
		{"zero total", webhook.URL, `{"items":[],"totalItems":0}`, http.StatusBadRequest, "error", "Missing required fields"},
		{"malformed json", webhook.URL, `{"items":`, http.StatusInternalServerError, "error", "Internal server error"},
		{"empty body", webhook.URL, ``, http.StatusInternalServerError, "error", "Internal server error"},
		{"unreachable webhook", unreachable, `{"items":[],"totalItems":1}`, http.StatusInternalServerError, "error", "Internal server error"},
		{"webhook unset", "", `{"items":[],"totalItems":1}`, http.StatusInternalServerError, "error", "Webhook configuration error"},
		{"webhook rejects", failing.URL, `{"items":[],"totalItems":1}`, http.StatusInternalServerError, "error", "Failed to process order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ZAPIER_WEBHOOK_URL", tt.webhookURL)
			app := newTestApp(t, Infrastructure{})

			code, body := app.do(t, http.MethodPost, "/api/order", tt.body)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			var got string
			json.Unmarshal(body[tt.wantField], &got)
			if got != tt.wantValue {
				t.Errorf("%s = %q, want %q", tt.wantField, got, tt.wantValue)
			}
		})
	}

	if calls.Load() != 1 {
		t.Errorf("healthy webhook called %d times, want 1", calls.Load())
	}
}

func TestCartEndpoints(t *testing.T) {
	app := newTestApp(t, Infrastructure{})

	app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "2", Name: "Pan-Seared Halibut"})
	app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "2", Name: "Pan-Seared Halibut"})
	code, body := app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "7", Name: "Amaretto Sour", Quantity: 3})
	if code != http.StatusOK {
		t.Fatalf("add code = %d", code)
	}
	cart := decodeCart(t, body)
	if len(cart.Items) != 2 || cart.Items[0].Quantity != 2 || cart.Items[1].Quantity != 3 || cart.TotalItems != 5 {
		t.Fatalf("cart = %+v", cart)
	}

	_, body = app.do(t, http.MethodPatch, "/api/cart/items/2", map[string]int{"quantity": 5})
	if cart := decodeCart(t, body); cart.TotalItems != 8 {
		t.Errorf("after update total = %d, want 8", cart.TotalItems)
	}

	_, body = app.do(t, http.MethodPatch, "/api/cart/items/7", map[string]int{"quantity": 0})
	if cart := decodeCart(t, body); len(cart.Items) != 1 || cart.Items[0].ID != "2" {
		t.Errorf("zero quantity did not remove item: %+v", cart.Items)
	}

	_, body = app.do(t, http.MethodGet, "/api/cart/count", nil)
	var count struct {
		TotalItems int `json:"totalItems"`
	}
	json.Unmarshal(body["data"], &count)
	if count.TotalItems != 5 {
		t.Errorf("count = %d, want 5", count.TotalItems)
	}

	_, body = app.do(t, http.MethodDelete, "/api/cart/items/does-not-exist", nil)
	if cart := decodeCart(t, body); cart.TotalItems != 5 {
		t.Errorf("removing unknown id changed cart: %+v", cart)
	}

	code, _ = app.do(t, http.MethodPost, "/api/cart/items", map[string]string{"name": "no id"})
	if code != http.StatusBadRequest {
		t.Errorf("missing id code = %d, want 400", code)
	}

	app.do(t, http.MethodDelete, "/api/cart", nil)
	_, body = app.do(t, http.MethodGet, "/api/cart", nil)
	if cart := decodeCart(t, body); len(cart.Items) != 0 || cart.TotalItems != 0 {
		t.Errorf("cart after clear = %+v", cart)
	}
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	app := newTestApp(t, Infrastructure{})
	other := &testApp{srv: app.srv, client: &http.Client{}}
	jar, _ := cookiejar.New(nil)
	other.client.Jar = jar

	app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "1", Name: "Roasted Beet & Goat Cheese Salad"})

	_, body := other.do(t, http.MethodGet, "/api/cart", nil)
	if cart := decodeCart(t, body); cart.TotalItems != 0 {
		t.Errorf("second session sees %+v", cart)
	}
}

func TestSubmitFlow(t *testing.T) {
	webhook, calls, last := newWebhook(t, http.StatusOK)
	t.Setenv("ZAPIER_WEBHOOK_URL", webhook.URL)
	app := newTestApp(t, Infrastructure{})

	code, body := app.do(t, http.MethodPost, "/api/cart/submit", nil)
	if code != http.StatusOK || calls.Load() != 0 {
		t.Fatalf("empty submit code = %d, webhook calls = %d", code, calls.Load())
	}

	app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "2", Name: "Pan-Seared Halibut", Quantity: 2})
	code, body = app.do(t, http.MethodPost, "/api/cart/submit", nil)
	if code != http.StatusOK {
		t.Fatalf("submit code = %d body = %v", code, body)
	}
	var status models.SubmissionStatus
	json.Unmarshal(body["data"], &status)
	if status.State != models.SubmissionConfirmed || !status.Submitted || status.TotalItems != 2 {
		t.Errorf("status = %+v", status)
	}
	if calls.Load() != 1 {
		t.Fatalf("webhook calls = %d, want 1", calls.Load())
	}

	var forwarded map[string]json.RawMessage
	json.Unmarshal(*last, &forwarded)
	if string(forwarded["total_items"]) != "2" || string(forwarded["restaurant"]) != `"The Treehouse"` {
		t.Errorf("webhook payload = %s", *last)
	}

	_, body = app.do(t, http.MethodGet, "/api/cart", nil)
	if cart := decodeCart(t, body); cart.TotalItems != 0 {
		t.Errorf("cart not cleared after confirmation: %+v", cart)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		_, body = app.do(t, http.MethodGet, "/api/cart/submission", nil)
		json.Unmarshal(body["data"], &status)
		if status.State == models.SubmissionIdle {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("submission stuck in %s", status.State)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	webhook, _, _ := newWebhook(t, http.StatusServiceUnavailable)
	t.Setenv("ZAPIER_WEBHOOK_URL", webhook.URL)
	app := newTestApp(t, Infrastructure{})

	app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "4", Name: "Wild Mushroom Risotto"})
	code, body := app.do(t, http.MethodPost, "/api/cart/submit", nil)
	if code != http.StatusBadGateway {
		t.Fatalf("submit code = %d, want 502", code)
	}
	var msg string
	json.Unmarshal(body["message"], &msg)
	if msg != "There was an error processing your order. Please try again." {
		t.Errorf("message = %q", msg)
	}

	_, body = app.do(t, http.MethodGet, "/api/cart", nil)
	if cart := decodeCart(t, body); cart.TotalItems != 1 {
		t.Errorf("cart lost after failed submit: %+v", cart)
	}
}

func TestMembersGate(t *testing.T) {
	app := newTestApp(t, Infrastructure{})

	code, _ := app.do(t, http.MethodGet, "/api/members/menu", nil)
	if code != http.StatusUnauthorized {
		t.Errorf("members menu without access = %d, want 401", code)
	}

	code, _ = app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "e8", Name: "Royal Manhattan", IsMembers: true})
	if code != http.StatusForbidden {
		t.Errorf("members item without access = %d, want 403", code)
	}

	code, _ = app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "e1", Name: "Wagyu Beef Tasting"})
	if code != http.StatusForbidden {
		t.Errorf("members item sent without the flag = %d, want 403", code)
	}

	code, _ = app.do(t, http.MethodPost, "/api/members/access", map[string]string{"code": "0000"})
	if code != http.StatusUnauthorized {
		t.Errorf("wrong code = %d, want 401", code)
	}

	code, _ = app.do(t, http.MethodPost, "/api/members/access", map[string]string{"code": "2301"})
	if code != http.StatusOK {
		t.Fatalf("access = %d, want 200", code)
	}

	code, body := app.do(t, http.MethodGet, "/api/members/menu", nil)
	var items []models.MenuItem
	json.Unmarshal(body["data"], &items)
	if code != http.StatusOK || len(items) != 9 || !items[0].IsMembers {
		t.Errorf("members menu = %d, %d items", code, len(items))
	}

	code, body = app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "e8", Name: "Royal Manhattan", IsMembers: true})
	if code != http.StatusOK || !decodeCart(t, body).Items[0].IsMembers {
		t.Errorf("members item with access = %d", code)
	}

	code, body = app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "e1", Name: "Wagyu Beef Tasting"})
	if code != http.StatusOK {
		t.Fatalf("unflagged members item with access = %d", code)
	}
	if cart := decodeCart(t, body); len(cart.Items) != 2 || !cart.Items[1].IsMembers {
		t.Errorf("members flag not taken from catalog: %+v", cart.Items)
	}
}

func TestMenuEndpoints(t *testing.T) {
	app := newTestApp(t, Infrastructure{})

	code, body := app.do(t, http.MethodGet, "/api/menu", nil)
	var items []models.MenuItem
	json.Unmarshal(body["data"], &items)
	if code != http.StatusOK || len(items) != 11 {
		t.Errorf("menu = %d, %d items", code, len(items))
	}

	_, body = app.do(t, http.MethodGet, "/api/menu?category=wine", nil)
	json.Unmarshal(body["data"], &items)
	for _, item := range items {
		if item.Category != models.CategoryWine {
			t.Errorf("category filter leaked %+v", item)
		}
	}

	code, _ = app.do(t, http.MethodGet, "/api/menu/e1", nil)
	if code != http.StatusNotFound {
		t.Errorf("members item on public route = %d, want 404", code)
	}
}

func TestRouterWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	app := newTestApp(t, Infrastructure{Redis: rdb})

	app.do(t, http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ID: "3", Name: "Braised Short Rib"})
	app.do(t, http.MethodGet, "/api/menu", nil)

	var cartKeys int
	for _, key := range mr.Keys() {
		if len(key) > 5 && key[:5] == "cart:" {
			cartKeys++
		}
	}
	if cartKeys != 1 {
		t.Errorf("redis keys = %v, want one cart", mr.Keys())
	}
	if !mr.Exists("menu_items_public") {
		t.Errorf("menu not cached: %v", mr.Keys())
	}
}
