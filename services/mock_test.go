package services

import (
	"errors"
	"gin-videoapi/models"
	"gin-videoapi/repositories"
)

var errStorage = errors.New("storage unavailable")

type mockAuthRepo struct {
	users     map[string]models.User
	nextID    uint
	findErr   error
	createErr error
}

func newMockAuthRepo() *mockAuthRepo {
	return &mockAuthRepo{users: map[string]models.User{}, nextID: 1}
}

func (m *mockAuthRepo) CreateUser(user models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[user.Username]; ok {
		return repositories.ErrConflict
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Username] = user
	return nil
}

func (m *mockAuthRepo) FindUser(username string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.users[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (m *mockAuthRepo) FindAll() ([]models.User, error) {
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockAuthRepo) DeleteAll() (int64, error) {
	count := int64(len(m.users))
	m.users = map[string]models.User{}
	return count, nil
}

type mockTokenRepo struct {
	revoked  map[string]bool
	checkErr error
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{revoked: map[string]bool{}}
}

func (m *mockTokenRepo) Revoke(jti string) error {
	if m.revoked[jti] {
		return repositories.ErrConflict
	}
	m.revoked[jti] = true
	return nil
}

func (m *mockTokenRepo) IsRevoked(jti string) (bool, error) {
	if m.checkErr != nil {
		return false, m.checkErr
	}
	return m.revoked[jti], nil
}

type mockVideoRepo struct {
	videos    map[uint]models.Video
	createErr error
}

func newMockVideoRepo() *mockVideoRepo {
	return &mockVideoRepo{videos: map[uint]models.Video{}}
}

func (m *mockVideoRepo) FindById(videoID uint) (*models.Video, error) {
	video, ok := m.videos[videoID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &video, nil
}

func (m *mockVideoRepo) Create(newVideo models.Video) (*models.Video, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, ok := m.videos[newVideo.ID]; ok {
		return nil, repositories.ErrConflict
	}
	m.videos[newVideo.ID] = newVideo
	return &newVideo, nil
}

func (m *mockVideoRepo) Update(video models.Video) (*models.Video, error) {
	if _, ok := m.videos[video.ID]; !ok {
		return nil, repositories.ErrNotFound
	}
	m.videos[video.ID] = video
	return &video, nil
}

func (m *mockVideoRepo) Delete(videoID uint) error {
	if _, ok := m.videos[videoID]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.videos, videoID)
	return nil
}
