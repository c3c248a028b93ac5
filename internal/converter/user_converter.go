package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// UserProfileToResponse converts a UserProfile entity to UserResponse DTO
func UserProfileToResponse(profile *entity.UserProfile) *dto.UserResponse {
	if profile == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:     profile.ID,
		UserID: profile.UserID,
		Name:   profile.Name,
		Email:  profile.Email,
		Role:   string(profile.Role),
	}
}

// SessionToResponse converts a Session to SessionResponse DTO
func SessionToResponse(session *entity.Session) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	return &dto.SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}
