// Package gateway is the storefront's HTTP client for the cart and coupon
// endpoints. It implements cartstate.Gateway and turns the server's
// {"error": ...} payloads into typed errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/cartstate"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/model"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the API server on behalf of one signed-in user. The
// bearer token determines whose cart is addressed; userID arguments exist
// for cartstate.Gateway parity and are not sent on the wire.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			return cartstate.ErrAuthRequired
		}
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) List(ctx context.Context, _ string) ([]model.CartItem, error) {
	var resp model.CartResponse
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

type addRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (c *Client) Add(ctx context.Context, _ string, productID string, qty int, size, color string) error {
	return c.do(ctx, http.MethodPost, "/cart", addRequest{
		ProductID: productID,
		Quantity:  qty,
		Size:      size,
		Color:     color,
	}, nil)
}

type updateRequest struct {
	Quantity int `json:"quantity"`
}

func (c *Client) UpdateQuantity(ctx context.Context, _ string, itemID string, qty int) error {
	return c.do(ctx, http.MethodPut, "/cart/"+url.PathEscape(itemID), updateRequest{Quantity: qty}, nil)
}

func (c *Client) Remove(ctx context.Context, _ string, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+url.PathEscape(itemID), nil, nil)
}

func (c *Client) Clear(ctx context.Context, _ string) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}

// ValidateCoupon checks a code against the current subtotal and returns the
// discount the server computed.
func (c *Client) ValidateCoupon(ctx context.Context, code string, subtotal float64) (float64, error) {
	var resp struct {
		Discount float64      `json:"discount"`
		Coupon   model.Coupon `json:"coupon"`
	}
	path := fmt.Sprintf("/coupons/%s?subtotal=%s", url.PathEscape(code), url.QueryEscape(fmt.Sprintf("%g", subtotal)))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Discount, nil
}
