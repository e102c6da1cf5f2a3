package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:         profile.ID,
		Name:       profile.Name,
		Age:        profile.Age,
		Gender:     profile.Gender,
		BloodGroup: profile.BloodGroup,
		Disease:    profile.Disease,
		AccountID:  profile.AccountID,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}

func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *PatientProfileToResponse(&profiles[i]))
	}
	return responses
}
