package dto

import "academia_backend/internals/features/users/user/model"

// UserProfileDTO is the public projection of a user: no role, no hash.
type UserProfileDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToUserProfileDTO(u *model.UserModel) UserProfileDTO {
	return UserProfileDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToUserProfileDTOs(users []model.UserModel) []UserProfileDTO {
	out := make([]UserProfileDTO, 0, len(users))
	for i := range users {
		out = append(out, ToUserProfileDTO(&users[i]))
	}
	return out
}
