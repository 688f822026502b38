package models

type Notification struct {
	BaseModel
	UserID      string `gorm:"index" json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"` // default | destructive
	Read        bool   `gorm:"index" json:"read"`
}
