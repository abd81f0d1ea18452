// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting startup.
package queue_publisher

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    q "github.com/iliyamo/cinevision/internal/queue"
)

// PublishCatalogSeeded publishes a CatalogSeededEvent to the
// "catalog.seeded" queue.  The message is marked persistent.
func PublishCatalogSeeded(ctx context.Context, url string, event q.CatalogSeededEvent, log *zap.Logger) error {
    body, err := json.Marshal(event)
    if err != nil {
        log.Warn("rabbitmq: marshal event failed", zap.Error(err))
        return fmt.Errorf("marshal event: %w", err)
    }
    return publish(ctx, url, q.CatalogSeededQueue, body, log)
}

const dialTimeout = 5 * time.Second

func publish(ctx context.Context, url, queue string, body []byte, log *zap.Logger) error {
    conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
    if err != nil {
        log.Warn("rabbitmq: dial failed", zap.Error(err))
        return fmt.Errorf("dial broker: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Warn("rabbitmq: channel open failed", zap.Error(err))
        return fmt.Errorf("open channel: %w", err)
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        queue, // name
        true,  // durable
        false, // autoDelete
        false, // exclusive
        false, // noWait
        nil,   // args
    ); err != nil {
        log.Warn("rabbitmq: queue declare failed", zap.String("queue", queue), zap.Error(err))
        return fmt.Errorf("declare %s: %w", queue, err)
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
        log.Warn("rabbitmq: publish failed", zap.String("queue", queue), zap.Error(err))
        return fmt.Errorf("publish %s: %w", queue, err)
    }
    return nil
}
