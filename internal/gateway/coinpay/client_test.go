package coinpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/charges" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}

		var req CreateChargeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.AmountMinor != 999 || req.CryptoCurrency != "ETH" {
			t.Errorf("unexpected payload: %+v", req)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Charge{
			ID:         "ch_123",
			Status:     StatusNew,
			PayAddress: "0xdeadbeef",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	charge, err := client.CreateCharge(context.Background(), CreateChargeRequest{
		AmountMinor:    999,
		Currency:       "USD",
		CryptoCurrency: "ETH",
	})
	if err != nil {
		t.Fatalf("CreateCharge: %v", err)
	}
	if charge.ID != "ch_123" || charge.PayAddress != "0xdeadbeef" {
		t.Errorf("unexpected charge: %+v", charge)
	}
}

func TestGetCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/charges/ch_123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Charge{ID: "ch_123", Status: StatusConfirmed})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	charge, err := client.GetCharge(context.Background(), "ch_123")
	if err != nil {
		t.Fatalf("GetCharge: %v", err)
	}
	if charge.Status != StatusConfirmed {
		t.Errorf("status = %q, want confirmed", charge.Status)
	}
}

func TestGetChargeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	if _, err := client.GetCharge(context.Background(), "missing"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
