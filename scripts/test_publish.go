// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type AuditEvent struct {
	UserID  *int64                 `json:"user_id,omitempty"`
	Action  string                 `json:"action"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие аудита
	event := AuditEvent{
		UserID: ptr(int64(1)),
		Action: "route.create",
		Details: map[string]interface{}{
			"route_id": 42,
			"title":    "Тестовый маршрут",
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:audit:log",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:audit:log\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Action: %s\n", event.Action)

	// Ожидание обработки воркером: сообщение должно пропасть из pending
	fmt.Printf("\n⏳ Waiting for the audit worker to consume the message...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout: message was not acknowledged, is the worker running?")
			return
		case <-ticker.C:
			pending, err := client.XPending(ctx, "stream:audit:log", "audit-log-workers").Result()
			if err != nil && err != redis.Nil {
				continue
			}

			if pending == nil || pending.Count == 0 {
				fmt.Printf("\n✅ Message acknowledged by the worker!\n")
				return
			}

			fmt.Printf("   Pending messages: %d\n", pending.Count)
		}
	}
}
