package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"net/http"
	"os"
)

const baseURL = "http://localhost:8080/webhooks/gateway"

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func main() {
	secret := flag.String("secret", "whsec_test", "webhook secret")
	eventType := flag.String("type", "payment_intent.succeeded", "event type")
	txID := flag.String("tx", "pi_test_1", "transaction id")
	orderIDs := flag.String("orders", "", "comma-delimited order ids")
	amount := flag.Int64("amount", 5000, "amount in cents")
	flag.Parse()

	if *orderIDs == "" {
		fmt.Println("usage: webhook-sender -orders <id[,id...]> [-type ...] [-tx ...]")
		os.Exit(1)
	}

	body := fmt.Appendf(nil, `{
		"id": "evt_%s",
		"type": "%s",
		"data": {"object": {
			"id": "%s",
			"amount": %d,
			"currency": "usd",
			"metadata": {"order_ids": "%s"}
		}}
	}`, *txID, *eventType, *txID, *amount, *orderIDs)

	req, err := http.NewRequest(http.MethodPost, baseURL, bytes.NewReader(body))
	if err != nil {
		fmt.Println("failed to build request:", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Gateway-Signature", sign(*secret, body))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	fmt.Println("POST", baseURL, "->", resp.Status)
}
