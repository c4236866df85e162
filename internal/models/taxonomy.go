package models

// CategoryModel groups articles. Deletion is blocked while any article
// references the category.
type CategoryModel struct {
	Base
	Name  string  `json:"name"  gorm:"uniqueIndex;not null"`
	Color *string `json:"color"`
}

func (CategoryModel) TableName() string { return "categories" }

// TagModel labels articles. Deleting a tag cascades its association rows.
type TagModel struct {
	Base
	Name  string  `json:"name"  gorm:"uniqueIndex;not null"`
	Color *string `json:"color"`
}

func (TagModel) TableName() string { return "tags" }

// LanguageModel is a content language the console can publish in.
type LanguageModel struct {
	ID        uint   `json:"id"        gorm:"primaryKey"`
	Lang      string `json:"lang"      gorm:"uniqueIndex;not null"` // e.g. "en", "zh-CN"
	Locale    string `json:"locale"    gorm:"uniqueIndex;not null"` // human readable name
	IsDefault bool   `json:"isDefault" gorm:"default:false"`
}

func (LanguageModel) TableName() string { return "languages" }
