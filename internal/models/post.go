package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PostType discriminates the four feed-entry shapes. Adding a shape means
// extending every switch over PostType; the compiler-visible default cases
// all reject unknown tags.
type PostType string

const (
	PostAnnouncement PostType = "announcement"
	PostPhoto        PostType = "photo"
	PostVideo        PostType = "video"
	PostAlbum        PostType = "album"
)

// AlbumImage is one entry of an album post's ordered image list.
type AlbumImage struct {
	URL    string `json:"url"`
	AIHint string `json:"aiHint,omitempty"`
}

// Post is an activity-feed entry. The media columns are only meaningful for
// the variant named by Type; Validate enforces that before persistence.
type Post struct {
	ID        uuid.UUID                       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type      PostType                        `gorm:"size:20;not null;index" json:"type"`
	Title     string                          `gorm:"not null;size:255" json:"title"`
	Content   string                          `gorm:"type:text;not null" json:"content"`
	ImageURL  string                          `gorm:"type:text" json:"imageUrl,omitempty"`
	AIHint    string                          `gorm:"size:255" json:"aiHint,omitempty"`
	VideoURL  string                          `gorm:"type:text" json:"videoUrl,omitempty"`
	Images    datatypes.JSONSlice[AlbumImage] `gorm:"type:jsonb" json:"images,omitempty"`
	CreatedAt time.Time                       `gorm:"index" json:"created_at"`
	UpdatedAt time.Time                       `json:"updated_at"`
}

var (
	ErrTitleTooShort    = errors.New("title must be at least 3 characters")
	ErrContentTooShort  = errors.New("content must be at least 10 characters")
	ErrPhotoURLRequired = errors.New("a valid image URL is required for a photo post")
	ErrVideoURLRequired = errors.New("a valid video URL is required for a video post")
	ErrAlbumEmpty       = errors.New("an album must have at least one image")
	ErrAlbumImageURL    = errors.New("every album image needs a valid URL")
)

// Validate checks the common fields and then the variant's required media.
func (p *Post) Validate() error {
	if len(p.Title) < 3 {
		return ErrTitleTooShort
	}
	if len(p.Content) < 10 {
		return ErrContentTooShort
	}

	switch p.Type {
	case PostAnnouncement:
		return nil
	case PostPhoto:
		if !IsValidURL(p.ImageURL) {
			return ErrPhotoURLRequired
		}
		return nil
	case PostVideo:
		if !IsValidURL(p.VideoURL) {
			return ErrVideoURLRequired
		}
		return nil
	case PostAlbum:
		if len(p.Images) == 0 {
			return ErrAlbumEmpty
		}
		for _, img := range p.Images {
			if !IsValidURL(img.URL) {
				return ErrAlbumImageURL
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown post type %q", p.Type)
	}
}

// Normalize clears the media fields that do not belong to the variant so ad
// hoc form shapes never leak past the boundary.
func (p *Post) Normalize() {
	switch p.Type {
	case PostAnnouncement:
		p.ImageURL, p.AIHint, p.VideoURL, p.Images = "", "", "", nil
	case PostPhoto:
		p.VideoURL, p.Images = "", nil
		if p.AIHint == "" {
			p.AIHint = "scouts event"
		}
	case PostVideo:
		p.ImageURL, p.AIHint, p.Images = "", "", nil
	case PostAlbum:
		p.ImageURL, p.AIHint, p.VideoURL = "", "", ""
		for i := range p.Images {
			if p.Images[i].AIHint == "" {
				p.Images[i].AIHint = "scout photo"
			}
		}
	}
}

// IsValidURL reports whether s is an absolute http(s) URL.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
