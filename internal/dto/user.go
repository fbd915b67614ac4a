package dto

import "inventory-backend/internal/models"

// ListUsersResponse represents a page of users for the admin listing
type ListUsersResponse struct {
	Users      []UserProfileResponse `json:"users"`
	Pagination PaginationMeta        `json:"pagination"`
}

// ToUserProfileResponses maps a slice of user models
func ToUserProfileResponses(users []*models.User) []UserProfileResponse {
	responses := make([]UserProfileResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserProfileResponse(user)
	}
	return responses
}
