package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	ordersdk "github.com/LumexaCorp/order-sdk"
	"github.com/LumexaCorp/order-sdk/domain"
	"github.com/LumexaCorp/order-sdk/pkg/config"
	"github.com/LumexaCorp/order-sdk/pkg/logger"
	"github.com/LumexaCorp/order-sdk/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting orders CLI", "version", cfg.App.Version)

	metrics.Init()

	client := ordersdk.NewClient(ordersdk.Config{
		BaseURL:    cfg.Lumexa.BaseURL,
		StoreToken: cfg.Lumexa.StoreToken,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.Lumexa.TimeoutSeconds) * time.Second},
	})

	ctx := context.Background()

	if len(os.Args) > 1 {
		orderID, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			log.Fatalf("Invalid order id %q: %v", os.Args[1], err)
		}

		order, err := client.GetOrder(ctx, orderID)
		if err != nil {
			logger.Fatal("Failed to fetch order", "error", err)
		}
		printOrder(order)
		return
	}

	orders, err := client.GetAllOrders(ctx)
	if err != nil {
		logger.Fatal("Failed to fetch orders", "error", err)
	}

	for _, order := range orders {
		printOrder(order)
	}
}

func printOrder(order domain.Order) {
	fmt.Printf("#%d store=%d status=%s items=%d total=%.2f\n",
		order.ID, order.StoreID, order.Status, order.TotalItems, order.TotalPrice)
}
