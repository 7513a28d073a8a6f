package domain

import (
	"time"

	"github.com/google/uuid"
)

// GatewayConfirmation records a processed gateway confirmation reference so
// duplicate webhook deliveries are no-ops. Rows are written in the same
// transaction as the state transition they confirm.
type GatewayConfirmation struct {
	Key          string      `json:"key"` // namespaced gateway reference
	RelatedKind  RelatedKind `json:"related_kind"`
	RelatedID    uuid.UUID   `json:"related_id"`
	ResponseJSON []byte      `json:"-"` // serialized result returned on replay
	CreatedAt    time.Time   `json:"created_at"`
}

// TopUpConfirmationKey namespaces a top-up gateway reference.
func TopUpConfirmationKey(gatewayRef string) string {
	return "topup:" + gatewayRef
}

// DisbursementConfirmationKey namespaces a disbursement gateway reference.
func DisbursementConfirmationKey(gatewayRef string) string {
	return "disbursement:" + gatewayRef
}
