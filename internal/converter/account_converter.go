package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func AccountToResponse(account *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:        account.ID,
		Role:      account.Role,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func AccountsToResponses(accounts []entity.Account) []dto.AccountResponse {
	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, *AccountToResponse(&accounts[i]))
	}
	return responses
}

func AccountToAuthResponse(account *entity.Account, token string) *dto.AuthResponse {
	return &dto.AuthResponse{
		Account: *AccountToResponse(account),
		Token:   token,
	}
}
