package ordersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/LumexaCorp/order-sdk/domain"
	"github.com/LumexaCorp/order-sdk/pkg/logger"
	"github.com/LumexaCorp/order-sdk/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Config carries the construction parameters for a Client. HTTPClient is
// optional; when nil a default client with the transport's own timeout
// behavior is used, so callers needing deadlines inject their own.
type Config struct {
	BaseURL    string
	StoreToken string
	HTTPClient *http.Client
}

// Client talks to the Lumexa order API. It holds no mutable state after
// construction and is safe for concurrent use.
type Client struct {
	baseURL    string
	storeToken string
	httpClient *http.Client
	validate   *validator.Validate
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		storeToken: cfg.StoreToken,
		httpClient: httpClient,
		validate:   validate,
	}
}

// envelope is the fixed response wrapper of the order API.
type envelope struct {
	Data    any                 `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// CreateOrder submits a new order. The payload is passed through as-is; the
// server is authoritative for totals and status.
func (c *Client) CreateOrder(ctx context.Context, data map[string]any) (domain.Order, error) {
	env, err := c.doRequest(ctx, "create_order", http.MethodPost, "/api/orders", data)
	if err != nil {
		return domain.Order{}, err
	}
	return orderFromEnvelope(env)
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	env, err := c.doRequest(ctx, "get_order", http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil)
	if err != nil {
		return domain.Order{}, err
	}
	return orderFromEnvelope(env)
}

// GetOrderByID is an alias of GetOrder.
func (c *Client) GetOrderByID(ctx context.Context, orderID int64) (domain.Order, error) {
	return c.GetOrder(ctx, orderID)
}

// GetStoreOrders lists the orders of one store, in the server's order.
func (c *Client) GetStoreOrders(ctx context.Context, storeID int64) ([]domain.Order, error) {
	env, err := c.doRequest(ctx, "get_store_orders", http.MethodGet, fmt.Sprintf("/api/orders/store/%d", storeID), nil)
	if err != nil {
		return nil, err
	}
	return ordersFromEnvelope(env)
}

// GetAllOrders lists every order visible to the store token.
func (c *Client) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	env, err := c.doRequest(ctx, "get_all_orders", http.MethodGet, "/api/orders", nil)
	if err != nil {
		return nil, err
	}
	return ordersFromEnvelope(env)
}

// GetUserOrders lists the orders of one user.
func (c *Client) GetUserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	env, err := c.doRequest(ctx, "get_user_orders", http.MethodGet, fmt.Sprintf("/api/orders/user/%d", userID), nil)
	if err != nil {
		return nil, err
	}
	return ordersFromEnvelope(env)
}

// UpdateOrderStatus sets the status of an order. No status values are
// validated client-side; the server is authoritative.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (domain.Order, error) {
	env, err := c.doRequest(ctx, "update_order_status", http.MethodPatch, fmt.Sprintf("/api/orders/%d", orderID), map[string]any{"status": status})
	if err != nil {
		return domain.Order{}, err
	}
	return orderFromEnvelope(env)
}

// UpdateOrder replaces order fields with the caller-provided payload.
func (c *Client) UpdateOrder(ctx context.Context, orderID int64, data map[string]any) (domain.Order, error) {
	env, err := c.doRequest(ctx, "update_order", http.MethodPut, fmt.Sprintf("/api/orders/%d", orderID), data)
	if err != nil {
		return domain.Order{}, err
	}
	return orderFromEnvelope(env)
}

// AddOrderItem appends a line item to an order. The item is validated before
// any network I/O; an invalid shape comes back as a ValidationError with
// code 0.
func (c *Client) AddOrderItem(ctx context.Context, orderID int64, item domain.NewOrderItem) (domain.OrderItem, error) {
	if err := c.validate.Struct(&item); err != nil {
		return domain.OrderItem{}, requestValidationError(err)
	}

	env, err := c.doRequest(ctx, "add_order_item", http.MethodPost, fmt.Sprintf("/api/orders/%d/items", orderID), item.ToMap())
	if err != nil {
		return domain.OrderItem{}, err
	}

	m, ok := env.Data.(map[string]any)
	if !ok {
		return domain.OrderItem{}, &OrderError{Message: "response envelope carries no order item object"}
	}
	orderItem, err := domain.OrderItemFromMap(m)
	if err != nil {
		return domain.OrderItem{}, &OrderError{Message: err.Error(), Err: err}
	}
	return orderItem, nil
}

// doRequest performs exactly one round trip and hands back the decoded
// envelope, or one of the two error kinds.
func (c *Client) doRequest(ctx context.Context, operation, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &OrderError{Message: "encode request body: " + err.Error(), Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &OrderError{Message: err.Error(), Err: err}
	}
	req.Header.Set("X-Store-Token", c.storeToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(operation, "transport_error").Inc()
		logger.Error("order api request failed", err)
		return nil, &OrderError{Message: err.Error(), Err: err}
	}
	defer res.Body.Close()

	metrics.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(operation, strconv.Itoa(res.StatusCode)).Inc()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &OrderError{Message: "read response body: " + err.Error(), Err: err}
	}

	if res.StatusCode >= http.StatusBadRequest {
		apiErr := c.apiError(res.StatusCode, raw)
		logger.Error("order api returned an error response", apiErr)
		return nil, apiErr
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &OrderError{Message: "decode response body: " + err.Error(), Err: err}
	}
	return &env, nil
}

// apiError translates a non-2xx response into the two-kind taxonomy.
func (c *Client) apiError(status int, body []byte) error {
	var env envelope
	_ = json.Unmarshal(body, &env)

	if status == http.StatusUnprocessableEntity && env.Errors != nil {
		message := env.Message
		if message == "" {
			message = "Validation failed"
		}
		return &ValidationError{Message: message, Errors: env.Errors, Code: status}
	}
	if env.Message != "" {
		return &OrderError{Message: env.Message, Code: status}
	}
	return &OrderError{Message: fmt.Sprintf("request failed with status %d", status), Code: status}
}

func requestValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &OrderError{Message: err.Error(), Err: err}
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fmt.Sprintf("validation failed on the '%s' rule", fe.Tag()))
	}
	return &ValidationError{Message: "Validation failed", Errors: fields}
}

func orderFromEnvelope(env *envelope) (domain.Order, error) {
	m, ok := env.Data.(map[string]any)
	if !ok {
		return domain.Order{}, &OrderError{Message: "response envelope carries no order object"}
	}
	order, err := domain.OrderFromMap(m)
	if err != nil {
		return domain.Order{}, &OrderError{Message: err.Error(), Err: err}
	}
	return order, nil
}

func ordersFromEnvelope(env *envelope) ([]domain.Order, error) {
	if env.Data == nil {
		return []domain.Order{}, nil
	}
	raw, ok := env.Data.([]any)
	if !ok {
		return nil, &OrderError{Message: "response envelope carries no order list"}
	}
	orders := make([]domain.Order, 0, len(raw))
	for i, el := range raw {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, &OrderError{Message: fmt.Sprintf("order at index %d is not an object", i)}
		}
		order, err := domain.OrderFromMap(m)
		if err != nil {
			return nil, &OrderError{Message: err.Error(), Err: err}
		}
		orders = append(orders, order)
	}
	return orders, nil
}
