// Package ordertest runs an in-memory stand-in for the Lumexa order API so
// the client test suite can exercise full round trips without a real backend.
package ordertest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

const timeLayout = "2006-01-02 15:04:05"

// Server serves the order API routes over httptest, keeping orders as raw
// JSON-style maps the way the real backend would emit them.
type Server struct {
	URL        string
	StoreToken string

	httpServer *httptest.Server

	mu         sync.Mutex
	nextID     int64
	nextItemID int64
	orderIDs   []int64
	orders     map[int64]map[string]any
}

func New(storeToken string) *Server {
	s := &Server{
		StoreToken: storeToken,
		nextID:     1,
		nextItemID: 1,
		orders:     map[int64]map[string]any{},
	}

	e := echo.New()
	api := e.Group("/api", s.requireStoreToken)
	api.POST("/orders", s.createOrder)
	api.GET("/orders", s.listOrders)
	api.GET("/orders/:id", s.getOrder)
	api.GET("/orders/store/:id", s.listStoreOrders)
	api.GET("/orders/user/:id", s.listUserOrders)
	api.PATCH("/orders/:id", s.updateOrderStatus)
	api.PUT("/orders/:id", s.updateOrder)
	api.POST("/orders/:id/items", s.addOrderItem)

	s.httpServer = httptest.NewServer(e)
	s.URL = s.httpServer.URL
	return s
}

func (s *Server) Close() {
	s.httpServer.Close()
}

// Seed installs an order fixture and returns its assigned id.
func (s *Server) Seed(order map[string]any) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	order["id"] = id
	if _, ok := order["status"]; !ok {
		order["status"] = "pending"
	}
	s.orders[id] = order
	s.orderIDs = append(s.orderIDs, id)
	return id
}

func (s *Server) requireStoreToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("X-Store-Token") != s.StoreToken {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid store token"})
		}
		return next(c)
	}
}

func (s *Server) createOrder(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	if _, ok := body["store_id"]; !ok {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "Validation failed",
			"errors":  map[string][]string{"store_id": {"The store_id field is required."}},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	now := time.Now().Format(timeLayout)
	order := body
	order["id"] = id
	if _, ok := order["status"]; !ok {
		order["status"] = "pending"
	}
	order["created_at"] = now
	order["updated_at"] = now

	items := []map[string]any{}
	totalItems := int64(0)
	totalPrice := 0.0
	for _, el := range asSlice(order["items"]) {
		req, ok := el.(map[string]any)
		if !ok {
			continue
		}
		item := s.itemFromRequest(id, req)
		items = append(items, item)
		totalItems += asInt(item["quantity"])
		totalPrice += asFloat(item["total_price"])
	}
	order["items"] = items
	order["total_items"] = totalItems
	order["total_price"] = totalPrice

	s.orders[id] = order
	s.orderIDs = append(s.orderIDs, id)

	return c.JSON(http.StatusCreated, echo.Map{"data": order})
}

func (s *Server) listOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": s.collect(func(map[string]any) bool { return true })})
}

func (s *Server) listStoreOrders(c echo.Context) error {
	storeID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": s.collect(func(o map[string]any) bool {
		return asInt(o["store_id"]) == storeID
	})})
}

func (s *Server) listUserOrders(c echo.Context) error {
	userID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": s.collect(func(o map[string]any) bool {
		user, ok := o["user"].(map[string]any)
		return ok && asInt(user["id"]) == userID
	})})
}

func (s *Server) getOrder(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": order})
}

func (s *Server) updateOrderStatus(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	status, _ := body["status"].(string)
	if status == "" {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "Validation failed",
			"errors":  map[string][]string{"status": {"The status field is required."}},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	}
	order["status"] = status
	order["updated_at"] = time.Now().Format(timeLayout)
	return c.JSON(http.StatusOK, echo.Map{"data": order})
}

func (s *Server) updateOrder(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	}
	for key, value := range body {
		if key == "id" {
			continue
		}
		order[key] = value
	}
	order["updated_at"] = time.Now().Format(timeLayout)
	return c.JSON(http.StatusOK, echo.Map{"data": order})
}

func (s *Server) addOrderItem(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	}

	item := s.itemFromRequest(id, body)
	order["items"] = append(asMapSlice(order["items"]), item)
	order["updated_at"] = time.Now().Format(timeLayout)
	return c.JSON(http.StatusCreated, echo.Map{"data": item})
}

// itemFromRequest turns a request-shape line item into the response shape the
// real backend persists. Caller must hold s.mu.
func (s *Server) itemFromRequest(orderID int64, req map[string]any) map[string]any {
	itemID := s.nextItemID
	s.nextItemID++

	quantity := asInt(req["quantity"])
	unitPrice := asFloat(req["unit_price"])
	attributes, ok := req["options"].(map[string]any)
	if !ok || attributes == nil {
		attributes = map[string]any{}
	}

	now := time.Now().Format(timeLayout)
	return map[string]any{
		"id":          itemID,
		"order_id":    orderID,
		"quantity":    quantity,
		"unit_price":  unitPrice,
		"total_price": unitPrice * float64(quantity),
		"attributes":  attributes,
		"created_at":  now,
		"updated_at":  now,
	}
}

// collect returns matching orders in insertion order. Caller must hold s.mu.
func (s *Server) collect(match func(map[string]any) bool) []map[string]any {
	out := []map[string]any{}
	for _, id := range s.orderIDs {
		if order, ok := s.orders[id]; ok && match(order) {
			out = append(out, order)
		}
	}
	return out
}

func asSlice(v any) []any {
	switch seq := v.(type) {
	case []any:
		return seq
	case []map[string]any:
		out := make([]any, 0, len(seq))
		for _, m := range seq {
			out = append(out, m)
		}
		return out
	default:
		return nil
	}
}

func asMapSlice(v any) []map[string]any {
	out := []map[string]any{}
	for _, el := range asSlice(v) {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func asInt(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case int64:
		return float64(f)
	case int:
		return float64(f)
	default:
		return 0
	}
}
