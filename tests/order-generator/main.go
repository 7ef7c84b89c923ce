package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Item struct {
	ProductID string `json:"product_id"`
	SellerID  string `json:"seller_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
}

type Order struct {
	CustomerID  string `json:"customer_id"`
	ShippingFee int64  `json:"shipping_fee"`
	Taxes       int64  `json:"taxes"`
	Items       []Item `json:"items"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

var colors = []string{"", "red", "blue", "black"}

func generateRandomOrder() Order {
	items := make([]Item, 0, 3)
	for range rand.Intn(3) + 1 {
		items = append(items, Item{
			ProductID: "prod_" + randomString(8),
			SellerID:  fmt.Sprintf("seller_%d", rand.Intn(5)),
			Title:     "Item " + randomString(5),
			Price:     int64(rand.Intn(10000) + 100),
			Quantity:  rand.Intn(3) + 1,
			Color:     colors[rand.Intn(len(colors))],
		})
	}
	return Order{
		CustomerID:  "customer_" + randomString(5),
		ShippingFee: int64(rand.Intn(1500)),
		Taxes:       int64(rand.Intn(500)),
		Items:       items,
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.CustomerID)
		case <-ctx.Done():
			writer.Close()
			return
		}
	}
}
