package dto

import (
	"errors"
	"io"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

var testHelps = map[string]string{
	"name":  "Name of the video is required",
	"views": "Views of the video",
	"likes": "Likes on the video",
}

func TestFieldErrors_ValidationErrors(t *testing.T) {
	name := "intro"
	input := CreateVideoInput{Name: &name}
	err := binding.Validator.ValidateStruct(&input)

	fields, ok := FieldErrors(&input, err, testHelps)
	assert.True(t, ok)
	assert.Equal(t, map[string]string{
		"views": "Views of the video",
		"likes": "Likes on the video",
	}, fields)
}

func TestFieldErrors_ZeroValuesArePresent(t *testing.T) {
	name := ""
	var views, likes Int
	input := CreateVideoInput{Name: &name, Views: &views, Likes: &likes}
	assert.NoError(t, binding.Validator.ValidateStruct(&input))
}

func TestFieldErrors_EmptyBody(t *testing.T) {
	fields, ok := FieldErrors(&SignupInput{}, io.EOF, map[string]string{
		"username": "This field cannot be blank",
		"password": "This field cannot be blank",
	})
	assert.True(t, ok)
	assert.Equal(t, map[string]string{
		"username": "This field cannot be blank",
		"password": "This field cannot be blank",
	}, fields)
}

func TestFieldErrors_OtherError(t *testing.T) {
	fields, ok := FieldErrors(&SignupInput{}, errors.New("invalid character"), nil)
	assert.False(t, ok)
	assert.Nil(t, fields)
}
