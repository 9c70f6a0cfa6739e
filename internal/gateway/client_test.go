package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/cartstate"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
)

func TestListDecodesCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("authorization header = %q", got)
		}
		json.NewEncoder(w).Encode(model.CartResponse{
			Items: []model.CartItem{{ID: "i1", ProductID: "p1", Quantity: 2}},
			Count: 2,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	items, err := c.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "i1" || items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestAddSendsMergeRequest(t *testing.T) {
	var got addRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "i9"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.Add(context.Background(), "u1", "p7", 3, "L", "red"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	want := addRequest{ProductID: "p7", Quantity: 3, Size: "L", Color: "red"}
	if got != want {
		t.Fatalf("request body = %+v, want %+v", got, want)
	}
}

func TestUnauthorizedMapsToAuthRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "missing authorization header"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.List(context.Background(), "u1")
	if !errors.Is(err, cartstate.ErrAuthRequired) {
		t.Fatalf("err = %v, want ErrAuthRequired", err)
	}
}

func TestErrorPayloadBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "product already in wishlist"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	err := c.Add(context.Background(), "u1", "p1", 1, "", "")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "product already in wishlist" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestValidateCouponReturnsDiscount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coupons/POP20" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("subtotal"); got != "1500" {
			t.Fatalf("subtotal = %q, want 1500", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"discount": 200.0,
			"coupon":   model.Coupon{Code: "POP20"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	discount, err := c.ValidateCoupon(context.Background(), "POP20", 1500)
	if err != nil {
		t.Fatalf("ValidateCoupon returned error: %v", err)
	}
	if discount != 200 {
		t.Fatalf("discount = %v, want 200", discount)
	}
}
