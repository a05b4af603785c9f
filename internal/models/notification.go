package models

type NotificationVariant string

const (
	VariantNormal      NotificationVariant = "normal"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is a toast shown to the user. Delivery is fire-and-forget.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
}
