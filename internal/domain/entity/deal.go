// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// DealStatus is the lifecycle state of a wholesale deal.
type DealStatus string

const (
	DealStatusPending   DealStatus = "pending"
	DealStatusConfirmed DealStatus = "confirmed"
	DealStatusPaid      DealStatus = "paid"
	DealStatusDelivered DealStatus = "delivered"
	DealStatusCompleted DealStatus = "completed"
	DealStatusDisputed  DealStatus = "disputed"
	DealStatusCancelled DealStatus = "cancelled"
)

// Deal is a snapshot of a deal record as written by the trading surface.
// The dispatch engine only reacts to deal writes; it never mutates deals.
type Deal struct {
	ID          uuid.UUID  `json:"id"`
	BuyerID     uuid.UUID  `json:"buyer_id"`
	SellerID    uuid.UUID  `json:"seller_id"`
	Commodity   string     `json:"commodity"`
	Quantity    float64    `json:"quantity"`     // Quantity in quintals.
	AgreedPrice float64    `json:"agreed_price"` // Agreed price per quintal in INR.
	Status      DealStatus `json:"status"`
}

// DealEventKind distinguishes the two deal write signals the engine reacts to.
type DealEventKind string

const (
	// DealEventCreated signals a new deal record.
	DealEventCreated DealEventKind = "created"
	// DealEventUpdated signals an update to an existing deal record.
	DealEventUpdated DealEventKind = "updated"
)

// DealEvent is the derived signal for one deal write: the event kind plus
// before/after snapshots. A created event carries only After. The write is
// immutable history; the engine consumes each event exactly once and never
// retries it on its own.
type DealEvent struct {
	Kind   DealEventKind `json:"kind"`
	Before *Deal         `json:"before,omitempty"`
	After  *Deal         `json:"after"`
}
