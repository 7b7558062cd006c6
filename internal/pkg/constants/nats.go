package constants

// NATS subjects and queue groups
const (
	// SubjectBookingNotify carries booking notification intents consumed
	// by the messaging service
	SubjectBookingNotify = "booking.notify"

	// QueueMessaging is the queue group for messaging consumers so a
	// notification is delivered to exactly one instance
	QueueMessaging = "messaging"
)
