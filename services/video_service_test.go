package services

import (
	"gin-videoapi/dto"
	"gin-videoapi/models"
	"gin-videoapi/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *dto.Int {
	v := dto.Int(i)
	return &v
}

func TestVideoService_Create(t *testing.T) {
	repo := newMockVideoRepo()
	svc := NewVideoService(repo)

	video, err := svc.Create(1, dto.CreateVideoInput{Name: strPtr("intro"), Views: intPtr(0), Likes: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, models.Video{ID: 1, Name: "intro", Views: 0, Likes: 0}, *video)

	_, err = svc.Create(1, dto.CreateVideoInput{Name: strPtr("other"), Views: intPtr(9), Likes: intPtr(9)})
	assert.ErrorIs(t, err, ErrVideoExists)
	assert.Equal(t, "intro", repo.videos[1].Name)
}

func TestVideoService_Create_ConstraintViolationIsConflict(t *testing.T) {
	repo := newMockVideoRepo()
	repo.createErr = repositories.ErrConflict
	svc := NewVideoService(repo)

	_, err := svc.Create(1, dto.CreateVideoInput{Name: strPtr("intro"), Views: intPtr(0), Likes: intPtr(0)})
	assert.ErrorIs(t, err, ErrVideoExists)
}

func TestVideoService_Create_StorageFailure(t *testing.T) {
	repo := newMockVideoRepo()
	repo.createErr = errStorage
	svc := NewVideoService(repo)

	_, err := svc.Create(1, dto.CreateVideoInput{Name: strPtr("intro"), Views: intPtr(0), Likes: intPtr(0)})
	assert.ErrorIs(t, err, errStorage)
}

func TestVideoService_Update_OnlyPresentFields(t *testing.T) {
	tests := []struct {
		name  string
		input dto.UpdateVideoInput
		want  models.Video
	}{
		{
			name:  "likes only",
			input: dto.UpdateVideoInput{Likes: intPtr(5)},
			want:  models.Video{ID: 1, Name: "intro", Views: 10, Likes: 5},
		},
		{
			name:  "zero views is applied",
			input: dto.UpdateVideoInput{Views: intPtr(0)},
			want:  models.Video{ID: 1, Name: "intro", Views: 0, Likes: 3},
		},
		{
			name:  "empty name is applied",
			input: dto.UpdateVideoInput{Name: strPtr("")},
			want:  models.Video{ID: 1, Name: "", Views: 10, Likes: 3},
		},
		{
			name:  "nothing present",
			input: dto.UpdateVideoInput{},
			want:  models.Video{ID: 1, Name: "intro", Views: 10, Likes: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockVideoRepo()
			repo.videos[1] = models.Video{ID: 1, Name: "intro", Views: 10, Likes: 3}
			svc := NewVideoService(repo)

			video, err := svc.Update(1, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *video)
			assert.Equal(t, tt.want, repo.videos[1])
		})
	}
}

func TestVideoService_NotFound(t *testing.T) {
	svc := NewVideoService(newMockVideoRepo())

	_, err := svc.FindById(3)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	_, err = svc.Update(3, dto.UpdateVideoInput{Likes: intPtr(1)})
	assert.ErrorIs(t, err, ErrVideoNotFound)

	assert.ErrorIs(t, svc.Delete(3), ErrVideoNotFound)
}

func TestVideoService_Delete(t *testing.T) {
	repo := newMockVideoRepo()
	repo.videos[2] = models.Video{ID: 2, Name: "clip"}
	svc := NewVideoService(repo)

	require.NoError(t, svc.Delete(2))
	assert.Empty(t, repo.videos)
}

func TestUserService(t *testing.T) {
	repo := newMockAuthRepo()
	require.NoError(t, repo.CreateUser(models.User{Username: "alice"}))
	require.NoError(t, repo.CreateUser(models.User{Username: "bob"}))
	svc := NewUserService(repo)

	users, err := svc.FindAll()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	count, err := svc.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	users, err = svc.FindAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}
