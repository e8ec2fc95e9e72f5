// SPDX-License-Identifier: GPL-3.0-only

package fulfillment

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange and routing key the storefront publishes order events on.
const (
	OrdersExchange  = "esim.orders"
	OrderCreatedKey = "order.created"
)

// Customer is one eSIM recipient of an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderEvent is the payload handed to the provisioning workers after a
// checkout is accepted. Nothing here is persisted by the storefront itself.
type OrderEvent struct {
	OrderID   string     `json:"order_id"`
	PackageID string     `json:"package_id"`
	PlanName  string     `json:"plan_name"`
	Countries []string   `json:"countries"`
	Units     int        `json:"units"`
	Total     string     `json:"total"`
	Currency  string     `json:"currency"`
	Customers []Customer `json:"customers"`
	CreatedAt time.Time  `json:"created_at"`
}

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}