package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portal/internal/domain/model"
)

// 注文APIの明細。wire契約に合わせる。
type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// POST /orders/request のボディ
type OrderRequest struct {
	Items           []OrderItem           `json:"items"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
}

// 注文1件。GET /orders/:id と注文作成の応答。
type OrderDetail struct {
	ID              string                `json:"_id"`
	Status          string                `json:"status"`
	CreatedAt       time.Time             `json:"createdAt"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem           `json:"items"`
	TotalAmount     float64               `json:"totalAmount"`
}

// 注文バックエンドのHTTPクライアント。
// このサービスは契約を消費するだけで、注文APIは実装しない。
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// RequestOrder は注文リクエストを送る。失敗してもリトライしない。
func (c *Client) RequestOrder(ctx context.Context, in OrderRequest) (OrderDetail, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return OrderDetail{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/request", bytes.NewReader(body))
	if err != nil {
		return OrderDetail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// GetOrder は注文1件を取得する。レシート表示用。
func (c *Client) GetOrder(ctx context.Context, orderID string) (OrderDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return OrderDetail{}, err
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (OrderDetail, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return OrderDetail{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return OrderDetail{}, fmt.Errorf("order api: status %d", res.StatusCode)
	}

	var out OrderDetail
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return OrderDetail{}, err
	}
	return out, nil
}
