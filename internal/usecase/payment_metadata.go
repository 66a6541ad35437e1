package usecase

import (
	"time"

	"energia_divinidad/internal/domain/entities"
)

// gatewayUpdate is what a verified webhook or a status poll tells us about a transaction.
type gatewayUpdate struct {
	gateway       entities.GatewayName
	transactionID string
	status        entities.TransactionStatus
	captureID     string
}

// mergeGatewayMetadata copies existing and records the {gateway}* keys on top.
// Keys written by other gateways or by checkout are preserved.
func mergeGatewayMetadata(existing map[string]interface{}, u gatewayUpdate, now time.Time) map[string]interface{} {
	out := copyMetadata(existing)
	if u.transactionID != "" {
		out[entities.MetadataKey(u.gateway, entities.MetadataTransactionID)] = u.transactionID
	}
	if u.status != "" {
		out[entities.MetadataKey(u.gateway, entities.MetadataStatus)] = string(u.status)
	}
	if u.captureID != "" {
		out[entities.MetadataKey(u.gateway, entities.MetadataCaptureID)] = u.captureID
	}
	out[entities.MetadataKey(u.gateway, entities.MetadataUpdatedAt)] = now.UTC().Format(time.RFC3339)
	return out
}

func copyMetadata(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in)+4)
	for k, v := range in {
		out[k] = v
	}
	return out
}

// nextPaymentStatus returns the status the order should hold after a
// transaction update. Regressions keep the current status.
func nextPaymentStatus(current entities.PaymentStatus, tx entities.TransactionStatus) (entities.PaymentStatus, bool) {
	target := entities.PaymentStatusFromTransaction(tx)
	if current.CanAdvanceTo(target) {
		return target, true
	}
	return current, false
}
