package entity

// Message is a human-readable notification record. Messages are written as a
// side effect of other operations and are never read back by this system.
type Message struct {
	ID      uint64
	UserID  uint64
	Title   string
	Content string
}

// NewMessage creates a notification message for a user
func NewMessage(userID uint64, title, content string) *Message {
	return &Message{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
}
