package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, specializationID string) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, doctorID string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}

type doctorUsecase struct {
	log       *logrus.Logger
	store     repository.DocumentStore
	validator *validator.CustomValidator
	audit     *service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	store repository.DocumentStore,
	validator *validator.CustomValidator,
	audit *service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:       log,
		store:     store,
		validator: validator,
		audit:     audit,
	}
}

// ListDoctors returns all doctors, or only those of one specialization when
// specializationID is set.
func (u *doctorUsecase) ListDoctors(ctx context.Context, specializationID string) (*dto.DoctorListResponse, error) {
	var filters []repository.Filter
	if id := strings.TrimSpace(specializationID); id != "" {
		filters = append(filters, repository.Equal("specializationId", id))
	}

	docs, err := u.store.ListDocuments(ctx, entity.CollectionDoctors, filters...)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	doctors, err := converter.DocumentsToDoctors(docs)
	if err != nil {
		u.log.Warnf("Failed to decode doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor, err := u.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	if req.Fees.IsNegative() {
		return nil, &ValidationError{Fields: map[string]string{"fees": "fees must be greater than or equal to 0"}}
	}

	doctor := &entity.Doctor{
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Email:             req.Email,
		PhoneNumber:       strings.TrimSpace(req.PhoneNumber),
		YearsOfExperience: *req.YearsOfExperience,
		Fees:              *req.Fees,
		SpecializationID:  req.SpecializationID,
		ImageURL:          req.ImageURL,
		ClinicID:          req.ClinicID,
	}

	doc, err := u.store.CreateDocument(ctx, entity.CollectionDoctors, entity.UniqueID, converter.DoctorFields(doctor))
	if err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}
	doctor.ID = doc.ID
	u.audit.LogCreate(ctx, entity.AuditActionDoctorCreate, entity.CollectionDoctors, doctor.ID, doc.Data)

	u.log.Infof("Doctor created: id=%s, specialization=%s", doctor.ID, doctor.SpecializationID)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	if req.Fees != nil && req.Fees.IsNegative() {
		return nil, &ValidationError{Fields: map[string]string{"fees": "fees must be greater than or equal to 0"}}
	}

	doctor, err := u.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	oldValue := converter.DoctorFields(doctor)

	if req.FirstName != "" {
		doctor.FirstName = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		doctor.LastName = strings.TrimSpace(req.LastName)
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.PhoneNumber != "" {
		doctor.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	}
	if req.YearsOfExperience != nil {
		doctor.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Fees != nil {
		doctor.Fees = *req.Fees
	}
	if req.SpecializationID != "" {
		doctor.SpecializationID = req.SpecializationID
	}
	if req.ImageURL != "" {
		doctor.ImageURL = req.ImageURL
	}
	if req.ClinicID != nil {
		doctor.ClinicID = *req.ClinicID
	}

	newValue := converter.DoctorFields(doctor)
	if _, err := u.store.UpdateDocument(ctx, entity.CollectionDoctors, doctorID, newValue); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to update doctor %s: %+v", doctorID, err)
		return nil, err
	}
	u.audit.LogUpdate(ctx, entity.AuditActionDoctorUpdate, entity.CollectionDoctors, doctorID, oldValue, newValue)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	doctor, err := u.findDoctor(ctx, doctorID)
	if err != nil {
		return err
	}

	if err := u.store.DeleteDocument(ctx, entity.CollectionDoctors, doctorID); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return ErrDoctorNotFound
		}
		u.log.Warnf("Failed to delete doctor %s: %+v", doctorID, err)
		return err
	}

	u.audit.LogDelete(ctx, entity.AuditActionDoctorDelete, entity.CollectionDoctors, doctorID, converter.DoctorFields(doctor))

	u.log.Infof("Doctor deleted: id=%s", doctorID)
	return nil
}

func (u *doctorUsecase) findDoctor(ctx context.Context, doctorID string) (*entity.Doctor, error) {
	doc, err := u.store.GetDocument(ctx, entity.CollectionDoctors, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return converter.DocumentToDoctor(doc)
}
