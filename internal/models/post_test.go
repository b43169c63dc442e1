package models

import (
	"errors"
	"testing"
)

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    Post
		wantErr bool
		errIs   error
	}{
		{
			name: "announcement needs no media",
			post: Post{Type: PostAnnouncement, Title: "Camp", Content: "Summer camp dates announced"},
		},
		{
			name:    "photo without image url",
			post:    Post{Type: PostPhoto, Title: "Camp", Content: "Photos from the summer camp"},
			wantErr: true, errIs: ErrPhotoURLRequired,
		},
		{
			name: "photo with valid image url",
			post: Post{Type: PostPhoto, Title: "Camp", Content: "Photos from the summer camp", ImageURL: "https://example.com/a.png"},
		},
		{
			name:    "video with malformed url",
			post:    Post{Type: PostVideo, Title: "Camp", Content: "Video from the summer camp", VideoURL: "not-a-url"},
			wantErr: true, errIs: ErrVideoURLRequired,
		},
		{
			name:    "album must have at least one image",
			post:    Post{Type: PostAlbum, Title: "Camp", Content: "Album from the summer camp"},
			wantErr: true, errIs: ErrAlbumEmpty,
		},
		{
			name: "album image without url",
			post: Post{Type: PostAlbum, Title: "Camp", Content: "Album from the summer camp",
				Images: []AlbumImage{{URL: "https://example.com/1.png"}, {URL: ""}}},
			wantErr: true, errIs: ErrAlbumImageURL,
		},
		{
			name:    "short title",
			post:    Post{Type: PostAnnouncement, Title: "Hi", Content: "Long enough content"},
			wantErr: true, errIs: ErrTitleTooShort,
		},
		{
			name:    "short content",
			post:    Post{Type: PostAnnouncement, Title: "Camp", Content: "short"},
			wantErr: true, errIs: ErrContentTooShort,
		},
		{
			name:    "unknown type is rejected",
			post:    Post{Type: "poll", Title: "Camp", Content: "Which weekend works best?"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.errIs != nil && !errors.Is(err, tt.errIs) {
				t.Errorf("Validate() error = %v, want %v", err, tt.errIs)
			}
		})
	}
}

func TestPostNormalizeClearsForeignMedia(t *testing.T) {
	post := Post{
		Type:     PostAnnouncement,
		Title:    "Camp",
		Content:  "Summer camp dates announced",
		ImageURL: "https://example.com/leak.png",
		VideoURL: "https://example.com/leak.mp4",
		Images:   []AlbumImage{{URL: "https://example.com/leak2.png"}},
	}
	post.Normalize()
	if post.ImageURL != "" || post.VideoURL != "" || post.Images != nil {
		t.Errorf("Normalize() left foreign media on announcement: %+v", post)
	}
}

func TestPostNormalizeDefaultsHints(t *testing.T) {
	photo := Post{Type: PostPhoto, Title: "Camp", Content: "Photos from camp", ImageURL: "https://example.com/a.png"}
	photo.Normalize()
	if photo.AIHint != "scouts event" {
		t.Errorf("photo hint = %q, want default", photo.AIHint)
	}

	album := Post{Type: PostAlbum, Title: "Camp", Content: "Album from camp",
		Images: []AlbumImage{{URL: "https://example.com/a.png"}}}
	album.Normalize()
	if album.Images[0].AIHint != "scout photo" {
		t.Errorf("album hint = %q, want default", album.Images[0].AIHint)
	}
}
