package models

import (
	"time"

	"github.com/shopspring/decimal"
)

//pending — заказ создан и ожидает подтверждения;
//preparing — заказ принят в работу и собирается;
//done — заказ выполнен;
//rejected — заказ отклонён, указана причина.

// Status is canonical order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusDone      Status = "done"
	StatusRejected  Status = "rejected"
)

// statusAliases maps raw backend status values, including legacy aliases,
// to the canonical set
var statusAliases = map[string]Status{
	"pending":        StatusPending,
	"stripe_pending": StatusPending,
	"preparing":      StatusPreparing,
	"prepering":      StatusPreparing,
	"done":           StatusDone,
	"rejected":       StatusRejected,
}

// ParseStatus normalizes a raw backend status value to the canonical status.
// Unknown values are rejected so raw backend strings never get past the
// network boundary.
func ParseStatus(raw string) (Status, error) {
	status, ok := statusAliases[raw]
	if !ok {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// IsTerminal reports whether the status permits no further transitions
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusRejected
}

// Order is order entity
type Order struct {
	ID              string
	Status          Status
	TotalPrice      decimal.Decimal
	Date            time.Time
	Items           []OrderItem
	ReceiverName    string
	ReceiverPhone   string
	CustomerName    string
	CustomerEmail   string
	RejectionReason string
	IsPremium       bool
}

// OrderItem is order line item
type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
