package models

import "gorm.io/gorm"

// Article publication states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ArticleModel is a blog article. A non-null DeletedAt marks the row as
// soft-deleted; GORM's default scope keeps such rows out of every read.
type ArticleModel struct {
	Base
	Title        string         `json:"title"        gorm:"not null"`
	Subtitle     *string        `json:"subtitle"`
	Slug         string         `json:"slug"         gorm:"uniqueIndex;not null"`
	Summary      *string        `json:"summary"`
	Content      string         `json:"content"      gorm:"type:longtext;not null"`
	Status       string         `json:"status"       gorm:"type:varchar(16);default:draft;index"`
	Pinned       bool           `json:"pinned"       gorm:"default:false"`
	CategoryID   *uint          `json:"categoryId"   gorm:"index"`
	Category     *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CoverMediaID *uint          `json:"coverMediaId"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt"    gorm:"index"`

	Tags []TagModel `json:"tags,omitempty" gorm:"many2many:article_tags;joinForeignKey:ArticleID;joinReferences:TagID"`
}

func (ArticleModel) TableName() string { return "articles" }

// ArticleTagModel is the article↔tag association row. The full set for an
// article is always replaced atomically, never patched.
type ArticleTagModel struct {
	ArticleID uint `json:"articleId" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tagId"     gorm:"primaryKey;autoIncrement:false"`
}

func (ArticleTagModel) TableName() string { return "article_tags" }

// ArticleMediaModel links an article to a media object, optionally tagged
// with a purpose ("cover", "gallery", ...). Rows are added and removed
// individually.
type ArticleMediaModel struct {
	ArticleID uint    `json:"articleId" gorm:"primaryKey;autoIncrement:false"`
	MediaID   uint    `json:"mediaId"   gorm:"primaryKey;autoIncrement:false"`
	Purpose   *string `json:"purpose"`
}

func (ArticleMediaModel) TableName() string { return "article_media" }
