package dto

import "gin-videoapi/models"

type UsersResponse struct {
	Users []models.User `json:"users"`
}
