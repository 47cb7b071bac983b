package repositories

import (
	"gin-videoapi/models"

	"gorm.io/gorm"
)

type IVideoRepository interface {
	FindById(videoID uint) (*models.Video, error)
	Create(newVideo models.Video) (*models.Video, error)
	Update(video models.Video) (*models.Video, error)
	Delete(videoID uint) error
}

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) IVideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) FindById(videoID uint) (*models.Video, error) {
	var video models.Video
	result := r.db.First(&video, "id = ?", videoID)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	return &video, nil
}

// Create は主キーの一意制約に任せて重複を検出する
func (r *VideoRepository) Create(newVideo models.Video) (*models.Video, error) {
	result := r.db.Create(&newVideo)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	return &newVideo, nil
}

func (r *VideoRepository) Update(video models.Video) (*models.Video, error) {
	result := r.db.Model(&models.Video{}).
		Where("id = ?", video.ID).
		Updates(map[string]interface{}{
			"name":  video.Name,
			"views": video.Views,
			"likes": video.Likes,
		})

	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.FindById(video.ID)
}

func (r *VideoRepository) Delete(videoID uint) error {
	result := r.db.Delete(&models.Video{}, "id = ?", videoID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
