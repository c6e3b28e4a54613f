package notification

import "fmt"

// Batch lifecycle events reported to the webhook.
const (
	EventCompleted = "completed"
	EventFailed    = "failed"
)

// FormatEvent creates the human-readable message carried in the webhook payload.
func FormatEvent(event string, sessionID string, processed int, skipped int, detail string) string {
	switch event {
	case EventCompleted:
		return fmt.Sprintf("✅ %s completed: %d products generated, %d skipped", sessionID, processed, skipped)
	case EventFailed:
		return fmt.Sprintf("❌ %s failed after %d products: %s", sessionID, processed, detail)
	default:
		return fmt.Sprintf("ℹ️ %s event: %s", sessionID, event)
	}
}
