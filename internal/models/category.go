package models

type CategoryType string

const (
	CategoryTypeMain CategoryType = "main"
	CategoryTypeSub  CategoryType = "sub"
)

type Category struct {
	BaseModel
	Name     string         `gorm:"uniqueIndex" json:"name"`
	Type     CategoryType   `json:"type"`
	ParentID *string        `gorm:"index" json:"parentId,omitempty"` // required iff Type == sub
	Status   CategoryStatus `json:"status"`
}
