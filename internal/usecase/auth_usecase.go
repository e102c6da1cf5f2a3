package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"
	"clinic-backend/pkg/hash"
	"clinic-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
	ErrEmailNotFound        = errors.New("email does not exist")
	ErrIncorrectPassword    = errors.New("incorrect password")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyUpdate          = errors.New("nothing to update")
	ErrInconsistentState    = errors.New("account left without required profile")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error)
	GetUsers(ctx context.Context) (*dto.AccountListResponse, error)
	GetUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error)
	UpdateUser(ctx context.Context, accountID uuid.UUID, req *dto.UpdateUserRequest) (*dto.AuthResponse, error)
	DeleteUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error)
}

type authUsecase struct {
	log              *logrus.Logger
	accountRepo      repository.AccountRepository
	doctorRepo       repository.DoctorProfileRepository
	receptionistRepo repository.ReceptionistProfileRepository
	patientRepo      repository.PatientProfileRepository
	hasher           *hash.PasswordHasher
	tokenService     *jwt.TokenService
	loginThrottle    service.LoginThrottle
	auditService     service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	doctorRepo repository.DoctorProfileRepository,
	receptionistRepo repository.ReceptionistProfileRepository,
	patientRepo repository.PatientProfileRepository,
	hasher *hash.PasswordHasher,
	tokenService *jwt.TokenService,
	loginThrottle service.LoginThrottle,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:              log,
		accountRepo:      accountRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
		patientRepo:      patientRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		loginThrottle:    loginThrottle,
		auditService:     auditService,
	}
}

// Register provisions an account and, for doctor/receptionist/patient roles,
// its matching profile. The two inserts are separate writes with no store
// transaction: a failed profile insert triggers a compensating account
// delete, so a caller never observes a success with the account but without
// the profile. The email and license pre-checks are advisory; a concurrent
// registration can still collide at insert time and is mapped to the same
// already-exists errors there.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := entity.NormalizeEmail(req.Email)
	role := req.EffectiveRole()

	existing, err := u.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if role == entity.RoleDoctor {
		licensed, err := u.doctorRepo.FindByLicenseNumber(ctx, req.Doctor.LicenseNumber)
		if err != nil {
			u.log.Warnf("Failed to check existing license number: %+v", err)
			return nil, err
		}
		if licensed != nil {
			return nil, ErrLicenseAlreadyExists
		}
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		Role:     role,
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashedPassword,
	}

	steps := []provisionStep{
		{
			name: "insert account",
			run: func(ctx context.Context) error {
				if err := u.accountRepo.Create(ctx, account); err != nil {
					if isDuplicateKeyError(err, "email") {
						return ErrEmailAlreadyExists
					}
					u.log.Warnf("Failed to create account: %+v", err)
					return err
				}
				return nil
			},
			compensate: func(ctx context.Context) error {
				return u.accountRepo.Delete(ctx, account.ID)
			},
		},
	}

	if entity.RoleRequiresProfile(role) {
		steps = append(steps, provisionStep{
			name: "insert profile",
			run: func(ctx context.Context) error {
				return u.insertProfile(ctx, account, req)
			},
		})
	}

	if err := runProvisioning(ctx, steps); err != nil {
		if errors.Is(err, ErrInconsistentState) {
			u.log.Errorf("Provisioning compensation failed: %+v", err)
			u.auditService.Record(ctx, nil, entity.AuditActionCompensationFailed, entity.JSON{
				"account_id": account.ID.String(),
				"email":      account.Email,
				"role":       account.Role,
				"cause":      err.Error(),
			})
		}
		return nil, err
	}

	token, err := u.tokenService.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, &account.ID, entity.AuditActionUserRegister, entity.JSON{
		"email": account.Email,
		"role":  account.Role,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.AccountToAuthResponse(account, token), nil
}

// insertProfile creates the role profile for a freshly inserted account,
// copying the account name and linking back by account id.
func (u *authUsecase) insertProfile(ctx context.Context, account *entity.Account, req *dto.RegisterRequest) error {
	switch account.Role {
	case entity.RoleDoctor:
		profile := &entity.DoctorProfile{
			Name:           account.Name,
			Qualification:  req.Doctor.Qualification,
			LicenseNumber:  req.Doctor.LicenseNumber,
			Specialization: req.Doctor.Specialization,
			AccountID:      &account.ID,
		}
		if err := u.doctorRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err, "license_number") {
				return ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create doctor profile: %+v", err)
			return err
		}
	case entity.RoleReceptionist:
		profile := &entity.ReceptionistProfile{
			Name:         account.Name,
			HospitalName: req.Receptionist.HospitalName,
			Location:     req.Receptionist.Location,
			Timings:      req.Receptionist.Timings,
			AccountID:    &account.ID,
		}
		if err := u.receptionistRepo.Create(ctx, profile); err != nil {
			u.log.Warnf("Failed to create receptionist profile: %+v", err)
			return err
		}
	case entity.RolePatient:
		profile := &entity.PatientProfile{
			Name:       account.Name,
			Age:        *req.Patient.Age,
			Gender:     req.Patient.Gender,
			BloodGroup: req.Patient.BloodGroup,
			Disease:    req.Patient.Disease,
			AccountID:  &account.ID,
		}
		if err := u.patientRepo.Create(ctx, profile); err != nil {
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return err
		}
	}
	return nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := entity.NormalizeEmail(req.Email)

	if err := u.loginThrottle.Allow(ctx, email); err != nil {
		return nil, err
	}

	account, err := u.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrEmailNotFound
	}

	if err := u.hasher.Compare(account.Password, req.Password); err != nil {
		if terr := u.loginThrottle.RecordFailure(ctx, email); terr != nil {
			u.log.Warnf("Failed to record login failure: %+v", terr)
		}
		return nil, ErrIncorrectPassword
	}

	if err := u.loginThrottle.Reset(ctx, email); err != nil {
		u.log.Warnf("Failed to reset login throttle: %+v", err)
	}

	token, err := u.tokenService.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, &account.ID, entity.AuditActionUserLogin, entity.JSON{
		"email": account.Email,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.AccountToAuthResponse(account, token), nil
}

func (u *authUsecase) VerifyUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	return converter.AccountToResponse(account), nil
}

func (u *authUsecase) GetUsers(ctx context.Context) (*dto.AccountListResponse, error) {
	accounts, err := u.accountRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find accounts: %+v", err)
		return nil, err
	}

	responses := converter.AccountsToResponses(accounts)

	return &dto.AccountListResponse{
		Accounts: responses,
		Total:    len(responses),
	}, nil
}

func (u *authUsecase) GetUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	return converter.AccountToResponse(account), nil
}

// UpdateUser patches name, email and password. A changed email must not
// belong to another account. The returned token reflects the updated state
// so the caller does not keep authenticating with stale claims.
func (u *authUsecase) UpdateUser(ctx context.Context, accountID uuid.UUID, req *dto.UpdateUserRequest) (*dto.AuthResponse, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	account, err := u.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != "" {
		email := entity.NormalizeEmail(req.Email)
		owner, err := u.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			u.log.Warnf("Failed to check existing email: %+v", err)
			return nil, err
		}
		if owner != nil && owner.ID != accountID {
			return nil, ErrEmailAlreadyExists
		}
		account.Email = email
	}
	if req.Name != "" {
		account.Name = strings.TrimSpace(req.Name)
	}
	if req.Password != "" {
		hashedPassword, err := u.hasher.Hash(req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		account.Password = hashedPassword
	}

	if err := u.accountRepo.Update(ctx, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update account: %+v", err)
		return nil, err
	}

	token, err := u.tokenService.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, &account.ID, entity.AuditActionUserUpdate, entity.JSON{
		"email": account.Email,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.AccountToAuthResponse(account, token), nil
}

// DeleteUser removes the account record only. A role profile linked to the
// account is left in place; see DESIGN.md for why the orphan is kept.
func (u *authUsecase) DeleteUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	if err := u.accountRepo.Delete(ctx, accountID); err != nil {
		u.log.Warnf("Failed to delete account: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, &accountID, entity.AuditActionUserDelete, entity.JSON{
		"email": account.Email,
		"role":  account.Role,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.AccountToResponse(account), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
