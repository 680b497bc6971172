package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File types accepted by the catalog.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootParentID is the reserved parent id meaning "top level".
const RootParentID = "0"

// File represents a catalog record. Folders form a forest via ParentID;
// file and image records additionally reference their content on disk
// through LocalPath, which is never exposed over the API.
type File struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"`
	ParentID  string    `json:"parentId" gorm:"not null;default:'0';index"`
	IsPublic  bool      `json:"isPublic" gorm:"not null;default:false"`
	LocalPath string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// ValidType reports whether t is one of the accepted file types.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// IsFolder reports whether the record is a folder.
func (f *File) IsFolder() bool {
	return f.Type == TypeFolder
}
