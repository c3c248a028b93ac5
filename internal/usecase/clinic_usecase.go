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
	"golang.org/x/sync/errgroup"
)

var (
	ErrClinicNotFound = errors.New("clinic not found")
)

type ClinicUsecase interface {
	ListClinics(ctx context.Context) (*dto.ClinicListResponse, error)
	CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	UpdateClinic(ctx context.Context, clinicID string, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
	DeleteClinic(ctx context.Context, clinicID string) error
}

type clinicUsecase struct {
	log       *logrus.Logger
	store     repository.DocumentStore
	validator *validator.CustomValidator
	audit     *service.AuditService
}

func NewClinicUsecase(
	log *logrus.Logger,
	store repository.DocumentStore,
	validator *validator.CustomValidator,
	audit *service.AuditService,
) ClinicUsecase {
	return &clinicUsecase{
		log:       log,
		store:     store,
		validator: validator,
		audit:     audit,
	}
}

// ListClinics returns every clinic with the doctors whose clinicId points at it.
func (u *clinicUsecase) ListClinics(ctx context.Context) (*dto.ClinicListResponse, error) {
	var clinicDocs, doctorDocs []entity.Document

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clinicDocs, err = u.store.ListDocuments(gctx, entity.CollectionClinics)
		return err
	})
	g.Go(func() error {
		var err error
		doctorDocs, err = u.store.ListDocuments(gctx, entity.CollectionDoctors)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load clinics: %+v", err)
		return nil, err
	}

	doctors, err := converter.DocumentsToDoctors(doctorDocs)
	if err != nil {
		u.log.Warnf("Failed to decode doctors: %+v", err)
		return nil, err
	}
	byClinic := make(map[string][]entity.Doctor)
	for _, doctor := range doctors {
		if doctor.ClinicID != "" {
			byClinic[doctor.ClinicID] = append(byClinic[doctor.ClinicID], doctor)
		}
	}

	clinics := make([]dto.ClinicResponse, 0, len(clinicDocs))
	for i := range clinicDocs {
		clinic, err := converter.DocumentToClinic(&clinicDocs[i])
		if err != nil {
			u.log.Warnf("Failed to decode clinic: %+v", err)
			return nil, err
		}
		clinics = append(clinics, *converter.ClinicToResponse(clinic, byClinic[clinic.ID]))
	}

	return &dto.ClinicListResponse{
		Clinics: clinics,
		Total:   len(clinics),
	}, nil
}

func (u *clinicUsecase) CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	clinic := &entity.Clinic{
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		Phone:    strings.TrimSpace(req.Phone),
		IsActive: true,
	}

	doc, err := u.store.CreateDocument(ctx, entity.CollectionClinics, entity.UniqueID, converter.ClinicFields(clinic))
	if err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}
	clinic.ID = doc.ID
	u.audit.LogCreate(ctx, entity.AuditActionClinicCreate, entity.CollectionClinics, clinic.ID, doc.Data)

	u.log.Infof("Clinic created: id=%s", clinic.ID)
	return converter.ClinicToResponse(clinic, nil), nil
}

func (u *clinicUsecase) UpdateClinic(ctx context.Context, clinicID string, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	doc, err := u.store.GetDocument(ctx, entity.CollectionClinics, clinicID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrClinicNotFound
		}
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	clinic, err := converter.DocumentToClinic(doc)
	if err != nil {
		return nil, err
	}
	oldValue := converter.ClinicFields(clinic)

	if req.Name != "" {
		clinic.Name = strings.TrimSpace(req.Name)
	}
	if req.Address != "" {
		clinic.Address = strings.TrimSpace(req.Address)
	}
	if req.Phone != "" {
		clinic.Phone = strings.TrimSpace(req.Phone)
	}
	if req.IsActive != nil {
		clinic.IsActive = *req.IsActive
	}

	newValue := converter.ClinicFields(clinic)
	if _, err := u.store.UpdateDocument(ctx, entity.CollectionClinics, clinicID, newValue); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrClinicNotFound
		}
		u.log.Warnf("Failed to update clinic %s: %+v", clinicID, err)
		return nil, err
	}
	u.audit.LogUpdate(ctx, entity.AuditActionClinicUpdate, entity.CollectionClinics, clinicID, oldValue, newValue)

	return converter.ClinicToResponse(clinic, nil), nil
}

func (u *clinicUsecase) DeleteClinic(ctx context.Context, clinicID string) error {
	if err := u.store.DeleteDocument(ctx, entity.CollectionClinics, clinicID); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return ErrClinicNotFound
		}
		u.log.Warnf("Failed to delete clinic %s: %+v", clinicID, err)
		return err
	}

	u.audit.LogDelete(ctx, entity.AuditActionClinicDelete, entity.CollectionClinics, clinicID, nil)

	u.log.Infof("Clinic deleted: id=%s", clinicID)
	return nil
}
