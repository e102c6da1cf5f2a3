package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func ReceptionistProfileToResponse(profile *entity.ReceptionistProfile) *dto.ReceptionistResponse {
	return &dto.ReceptionistResponse{
		ID:           profile.ID,
		Name:         profile.Name,
		HospitalName: profile.HospitalName,
		Location:     profile.Location,
		Timings:      profile.Timings,
		AccountID:    profile.AccountID,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}

func ReceptionistProfilesToResponses(profiles []entity.ReceptionistProfile) []dto.ReceptionistResponse {
	responses := make([]dto.ReceptionistResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *ReceptionistProfileToResponse(&profiles[i]))
	}
	return responses
}
