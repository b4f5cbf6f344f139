package entity

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient toast. It leaves the queue either by explicit
// dismissal or by expiry, whichever happens first.
type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Kind    NotificationKind `json:"type"`
}
