package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_CreateOrder(t *testing.T) {
	var gotAuth string
	var gotBody CreateOrderInput

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		json.NewEncoder(w).Encode(Order{
			ID:       "order_test123",
			Amount:   gotBody.Amount,
			Currency: gotBody.Currency,
			Receipt:  gotBody.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	c := NewClient("key_id", "key_secret", WithBaseURL(srv.URL))

	order, err := c.CreateOrder(context.Background(), CreateOrderInput{
		Amount:   49900,
		Currency: "INR",
		Receipt:  "rcpt_abc",
		Notes:    map[string]string{"email": "a@example.com", "plan": "starter"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID != "order_test123" {
		t.Errorf("unexpected order id %s", order.ID)
	}
	if order.Amount != 49900 {
		t.Errorf("unexpected amount %d", order.Amount)
	}
	if !strings.HasPrefix(gotAuth, "Basic ") {
		t.Errorf("expected basic auth, got %q", gotAuth)
	}
	if gotBody.Notes["plan"] != "starter" {
		t.Errorf("expected plan note forwarded, got %v", gotBody.Notes)
	}
}

func TestClient_CreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount missing"}}`))
	}))
	defer srv.Close()

	c := NewClient("key_id", "key_secret", WithBaseURL(srv.URL))

	_, err := c.CreateOrder(context.Background(), CreateOrderInput{Currency: "INR"})
	if err == nil {
		t.Fatal("expected error for gateway rejection")
	}
	if !strings.Contains(err.Error(), "amount missing") {
		t.Errorf("expected gateway description in error, got %v", err)
	}
}

func TestClient_CreateOrder_Unreachable(t *testing.T) {
	c := NewClient("key_id", "key_secret", WithBaseURL("http://127.0.0.1:1"))

	if _, err := c.CreateOrder(context.Background(), CreateOrderInput{Amount: 100, Currency: "INR"}); err == nil {
		t.Fatal("expected error for unreachable gateway")
	}
}
