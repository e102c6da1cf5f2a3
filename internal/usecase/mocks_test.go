package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/google/uuid"
)

// --- MockAccountRepository ---

// Compile-time check to ensure MockAccountRepository implements AccountRepository
var _ repository.AccountRepository = (*MockAccountRepository)(nil)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	CreateFunc      func(ctx context.Context, account *entity.Account) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.Account, error)
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindAllFunc     func(ctx context.Context) ([]entity.Account, error)
	UpdateFunc      func(ctx context.Context, account *entity.Account) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	CreateFuncCallCount int32
	DeleteFuncCallCount int32
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]entity.Account, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	atomic.AddInt32(&m.DeleteFuncCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// --- MockDoctorProfileRepository ---

var _ repository.DoctorProfileRepository = (*MockDoctorProfileRepository)(nil)

type MockDoctorProfileRepository struct {
	CreateFunc              func(ctx context.Context, profile *entity.DoctorProfile) error
	FindByLicenseNumberFunc func(ctx context.Context, licenseNumber string) (*entity.DoctorProfile, error)
	FindAllFunc             func(ctx context.Context) ([]entity.DoctorProfile, error)

	CreateFuncCallCount int32
}

func (m *MockDoctorProfileRepository) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *MockDoctorProfileRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.DoctorProfile, error) {
	if m.FindByLicenseNumberFunc != nil {
		return m.FindByLicenseNumberFunc(ctx, licenseNumber)
	}
	return nil, nil
}

func (m *MockDoctorProfileRepository) FindAll(ctx context.Context) ([]entity.DoctorProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// --- MockReceptionistProfileRepository ---

var _ repository.ReceptionistProfileRepository = (*MockReceptionistProfileRepository)(nil)

type MockReceptionistProfileRepository struct {
	CreateFunc  func(ctx context.Context, profile *entity.ReceptionistProfile) error
	FindAllFunc func(ctx context.Context) ([]entity.ReceptionistProfile, error)

	CreateFuncCallCount int32
}

func (m *MockReceptionistProfileRepository) Create(ctx context.Context, profile *entity.ReceptionistProfile) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *MockReceptionistProfileRepository) FindAll(ctx context.Context) ([]entity.ReceptionistProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// --- MockPatientProfileRepository ---

var _ repository.PatientProfileRepository = (*MockPatientProfileRepository)(nil)

type MockPatientProfileRepository struct {
	CreateFunc  func(ctx context.Context, profile *entity.PatientProfile) error
	FindAllFunc func(ctx context.Context) ([]entity.PatientProfile, error)

	CreateFuncCallCount int32
}

func (m *MockPatientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *MockPatientProfileRepository) FindAll(ctx context.Context) ([]entity.PatientProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// --- MockAuditService ---

var _ service.AuditService = (*MockAuditService)(nil)

// MockAuditService records every audit call for inspection.
type MockAuditService struct {
	RecordFunc func(ctx context.Context, actorID *uuid.UUID, action string, metadata entity.JSON) error

	Actions []string
}

func (m *MockAuditService) Record(ctx context.Context, actorID *uuid.UUID, action string, metadata entity.JSON) error {
	m.Actions = append(m.Actions, action)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, actorID, action, metadata)
	}
	return nil
}

// --- MockLoginThrottle ---

var _ service.LoginThrottle = (*MockLoginThrottle)(nil)

type MockLoginThrottle struct {
	AllowFunc         func(ctx context.Context, email string) error
	RecordFailureFunc func(ctx context.Context, email string) error
	ResetFunc         func(ctx context.Context, email string) error

	RecordFailureFuncCallCount int32
	ResetFuncCallCount         int32
}

func (m *MockLoginThrottle) Allow(ctx context.Context, email string) error {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, email)
	}
	return nil
}

func (m *MockLoginThrottle) RecordFailure(ctx context.Context, email string) error {
	atomic.AddInt32(&m.RecordFailureFuncCallCount, 1)
	if m.RecordFailureFunc != nil {
		return m.RecordFailureFunc(ctx, email)
	}
	return nil
}

func (m *MockLoginThrottle) Reset(ctx context.Context, email string) error {
	atomic.AddInt32(&m.ResetFuncCallCount, 1)
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, email)
	}
	return nil
}
