package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sudanscouts/community-backend/internal/models"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// List returns the activity feed, newest first.
func (s *PostService) List(limit int) ([]models.Post, error) {
	query := s.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) Get(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Create(post *models.Post) error {
	post.Normalize()
	if err := post.Validate(); err != nil {
		return err
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	// Creation time is server-assigned; the client never sets it.
	post.CreatedAt = time.Now().UTC()

	if err := s.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (s *PostService) Update(id uuid.UUID, post *models.Post) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}

	post.ID = id
	post.CreatedAt = existing.CreatedAt
	post.Normalize()
	if err := post.Validate(); err != nil {
		return err
	}

	if err := s.db.Model(existing).Updates(map[string]interface{}{
		"type":      post.Type,
		"title":     post.Title,
		"content":   post.Content,
		"image_url": post.ImageURL,
		"ai_hint":   post.AIHint,
		"video_url": post.VideoURL,
		"images":    post.Images,
	}).Error; err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (s *PostService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
