package model

// Message represents the database model for notification messages
type Message struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	UserID  uint64 `gorm:"not null;index"`
	Title   string `gorm:"not null;size:255"`
	Content string `gorm:"type:text"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Message
func (Message) TableName() string {
	return "messages"
}
