package services

import (
	"errors"
	"gin-videoapi/dto"
	"gin-videoapi/models"
	"gin-videoapi/repositories"
)

type IVideoService interface {
	FindById(videoID uint) (*models.Video, error)
	Create(videoID uint, createVideoInput dto.CreateVideoInput) (*models.Video, error)
	Update(videoID uint, updateVideoInput dto.UpdateVideoInput) (*models.Video, error)
	Delete(videoID uint) error
}

type VideoService struct {
	repository repositories.IVideoRepository
}

func NewVideoService(repository repositories.IVideoRepository) IVideoService {
	return &VideoService{repository: repository}
}

func (s *VideoService) FindById(videoID uint) (*models.Video, error) {
	video, err := s.repository.FindById(videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Create(videoID uint, createVideoInput dto.CreateVideoInput) (*models.Video, error) {
	if _, err := s.FindById(videoID); err == nil {
		return nil, ErrVideoExists
	} else if !errors.Is(err, ErrVideoNotFound) {
		return nil, err
	}

	newVideo := models.Video{
		ID:    videoID,
		Name:  *createVideoInput.Name,
		Views: int(*createVideoInput.Views),
		Likes: int(*createVideoInput.Likes),
	}
	video, err := s.repository.Create(newVideo)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrVideoExists
		}
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Update(videoID uint, updateVideoInput dto.UpdateVideoInput) (*models.Video, error) {
	targetVideo, err := s.FindById(videoID)
	if err != nil {
		return nil, err
	}

	if updateVideoInput.Name != nil {
		targetVideo.Name = *updateVideoInput.Name
	}
	if updateVideoInput.Views != nil {
		targetVideo.Views = int(*updateVideoInput.Views)
	}
	if updateVideoInput.Likes != nil {
		targetVideo.Likes = int(*updateVideoInput.Likes)
	}

	video, err := s.repository.Update(*targetVideo)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Delete(videoID uint) error {
	err := s.repository.Delete(videoID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrVideoNotFound
	}
	return err
}
