package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a domain transition worth broadcasting.
type EventType string

const (
	EventWalletCreated          EventType = "wallet.created"
	EventWalletFrozen           EventType = "wallet.frozen"
	EventWalletUnfrozen         EventType = "wallet.unfrozen"
	EventTransferCompleted      EventType = "transfer.completed"
	EventTopUpInitiated         EventType = "topup.initiated"
	EventTopUpProcessing        EventType = "topup.processing"
	EventTopUpCompleted         EventType = "topup.completed"
	EventTopUpFailed            EventType = "topup.failed"
	EventTopUpCancelled         EventType = "topup.cancelled"
	EventTopUpExpired           EventType = "topup.expired"
	EventDisbursementCreated    EventType = "disbursement.created"
	EventDisbursementProcessing EventType = "disbursement.processing"
	EventDisbursementCompleted  EventType = "disbursement.completed"
	EventDisbursementFailed     EventType = "disbursement.failed"
	EventDisbursementCancelled  EventType = "disbursement.cancelled"
)

// Event is published after a successful commit of the transition it
// describes. Delivery transport is owned by the excluded notification layer.
type Event struct {
	Type       EventType `json:"type"`
	MerchantID uuid.UUID `json:"merchant_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}
