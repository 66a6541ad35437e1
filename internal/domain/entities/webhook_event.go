package entities

import "time"

// WebhookEvent is the dedup record for one provider notification.
//
// Storage model (DynamoDB):
//   - PK: event_id, built as {provider}_{transactionId}_{status}
//
// An event is in flight while Processed and Failed are both false. Failed
// events are picked up again on the next delivery and bump RetryCount.

type WebhookEvent struct {
	EventID       string      `json:"event_id"`
	Provider      GatewayName `json:"provider"`
	EventType     string      `json:"event_type"`
	TransactionID string      `json:"transaction_id"`
	Reference     string      `json:"reference,omitempty"`
	Payload       string      `json:"payload,omitempty"`
	Processed     bool        `json:"processed"`
	Failed        bool        `json:"failed"`
	ErrorMessage  string      `json:"error_message,omitempty"`
	RetryCount    int         `json:"retry_count"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	ProcessedAt   *time.Time  `json:"processed_at,omitempty"`
}
