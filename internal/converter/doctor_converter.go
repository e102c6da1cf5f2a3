package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:             profile.ID,
		Name:           profile.Name,
		Qualification:  profile.Qualification,
		LicenseNumber:  profile.LicenseNumber,
		Specialization: profile.Specialization,
		AccountID:      profile.AccountID,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *DoctorProfileToResponse(&profiles[i]))
	}
	return responses
}
