package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type ReceptionistHandler struct {
	receptionistUsecase usecase.ReceptionistProfileUsecase
	validator           *validator.CustomValidator
}

func NewReceptionistHandler(receptionistUsecase usecase.ReceptionistProfileUsecase, validator *validator.CustomValidator) *ReceptionistHandler {
	return &ReceptionistHandler{
		receptionistUsecase: receptionistUsecase,
		validator:           validator,
	}
}

// CreateReceptionist creates a receptionist profile without a login account
// @Summary Create receptionist profile
// @Tags Receptionists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.Response
// @Router /receptionists [post]
func (h *ReceptionistHandler) CreateReceptionist(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReceptionistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	receptionist, err := h.receptionistUsecase.CreateReceptionist(r.Context(), actorFromContext(r), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create receptionist")
		return
	}

	response.Success(w, http.StatusCreated, "Receptionist created successfully", receptionist)
}

// GetAllReceptionists lists all receptionist profiles
// @Summary List receptionist profiles
// @Tags Receptionists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /receptionists [get]
func (h *ReceptionistHandler) GetAllReceptionists(w http.ResponseWriter, r *http.Request) {
	result, err := h.receptionistUsecase.GetAllReceptionists(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch receptionists")
		return
	}

	response.Success(w, http.StatusOK, "Receptionists fetched successfully", result)
}
