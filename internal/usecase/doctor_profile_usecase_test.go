package usecase

import (
	"context"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDoctorUsecase() (DoctorProfileUsecase, *MockDoctorProfileRepository, *MockAuditService) {
	repo := &MockDoctorProfileRepository{}
	audit := &MockAuditService{}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewDoctorProfileUsecase(log, repo, audit), repo, audit
}

func TestCreateDoctor_Success(t *testing.T) {
	uc, repo, audit := newTestDoctorUsecase()
	actorID := uuid.New()

	var created *entity.DoctorProfile
	repo.CreateFunc = func(ctx context.Context, profile *entity.DoctorProfile) error {
		profile.ID = uuid.New()
		created = profile
		return nil
	}

	resp, err := uc.CreateDoctor(context.Background(), &actorID, &dto.CreateDoctorRequest{
		Name:           "  Dr. Grace Lee ",
		Qualification:  "MD",
		LicenseNumber:  "LIC-9000",
		Specialization: "Dermatology",
	})

	require.NoError(t, err)
	assert.Equal(t, "Dr. Grace Lee", resp.Name)
	assert.Equal(t, "LIC-9000", resp.LicenseNumber)
	require.NotNil(t, created)
	assert.Nil(t, created.AccountID, "admin-created profile has no linked account")
	assert.Contains(t, audit.Actions, entity.AuditActionDoctorCreate)
}

func TestCreateDoctor_LicenseAlreadyExists(t *testing.T) {
	uc, repo, _ := newTestDoctorUsecase()
	actorID := uuid.New()

	repo.FindByLicenseNumberFunc = func(ctx context.Context, licenseNumber string) (*entity.DoctorProfile, error) {
		return &entity.DoctorProfile{ID: uuid.New(), LicenseNumber: licenseNumber}, nil
	}

	resp, err := uc.CreateDoctor(context.Background(), &actorID, &dto.CreateDoctorRequest{
		Name:           "Dr. Grace Lee",
		Qualification:  "MD",
		LicenseNumber:  "LIC-9000",
		Specialization: "Dermatology",
	})

	assert.ErrorIs(t, err, ErrLicenseAlreadyExists)
	assert.Nil(t, resp)
	assert.Equal(t, int32(0), repo.CreateFuncCallCount)
}

func TestGetAllDoctors_Success(t *testing.T) {
	uc, repo, _ := newTestDoctorUsecase()

	repo.FindAllFunc = func(ctx context.Context) ([]entity.DoctorProfile, error) {
		return []entity.DoctorProfile{
			{ID: uuid.New(), Name: "A", LicenseNumber: "L1"},
			{ID: uuid.New(), Name: "B", LicenseNumber: "L2"},
		}, nil
	}

	resp, err := uc.GetAllDoctors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Doctors, 2)
}
