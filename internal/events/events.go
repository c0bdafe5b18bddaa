package events

import "context"

// Stream carrying all CRM notifications.
const StreamCRM = "events:crm"

// Event types
const (
	EventReminderDue              = "reminder_due"
	EventAssociationStatusChanged = "association_status_changed"
	EventFollowersRefreshed       = "followers_refreshed"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// UserID returns the user the event is scoped to, if any. Unscoped events
// are broadcast to every connected client.
func (e Event) UserID() (string, bool) {
	v, ok := e.Payload["user_id"].(string)
	return v, ok && v != ""
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
