package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/infrastructure/metrics"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, viewer *entity.UserProfile, date string) (*dto.AppointmentListResponse, error)
	BookAppointment(ctx context.Context, viewer *entity.UserProfile, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, viewer *entity.UserProfile, appointmentID, date string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log       *logrus.Logger
	store     repository.DocumentStore
	validator *validator.CustomValidator
	metrics   *metrics.Metrics
	audit     *service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	store repository.DocumentStore,
	validator *validator.CustomValidator,
	metrics *metrics.Metrics,
	audit *service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:       log,
		store:     store,
		validator: validator,
		metrics:   metrics,
		audit:     audit,
	}
}

// AppointmentFilters builds the list query for viewer. Admins see every
// appointment, everyone else only their own; a non-blank date adds an exact
// match on the stored date string, compared as given.
//
// The ownership filter only decides what this client asks for. Access
// control itself belongs to the document permissions of the backend.
func AppointmentFilters(viewer *entity.UserProfile, date string) []repository.Filter {
	var filters []repository.Filter
	if !viewer.IsAdmin() {
		filters = append(filters, repository.Equal("userId", viewer.ID))
	}
	if strings.TrimSpace(date) != "" {
		filters = append(filters, repository.Equal("date", date))
	}
	return filters
}

// ListAppointments returns the appointments visible to viewer in the order
// the store returned them, each enriched with its doctor when available.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, viewer *entity.UserProfile, date string) (*dto.AppointmentListResponse, error) {
	if viewer == nil {
		return nil, repository.ErrNotAuthenticated
	}

	docs, err := u.store.ListDocuments(ctx, entity.CollectionAppointments, AppointmentFilters(viewer, date)...)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", viewer.ID, err)
		return nil, err
	}

	appointments := make([]entity.Appointment, 0, len(docs))
	for i := range docs {
		appointment, err := converter.DocumentToAppointment(&docs[i])
		if err != nil {
			u.log.Warnf("Skipping malformed appointment %s: %+v", docs[i].ID, err)
			continue
		}
		appointments = append(appointments, *appointment)
	}

	u.attachDoctors(ctx, appointments)

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// attachDoctors fetches every referenced doctor concurrently. A failed
// lookup leaves that appointment's Doctor nil and affects no other item.
func (u *appointmentUsecase) attachDoctors(ctx context.Context, appointments []entity.Appointment) {
	if len(appointments) == 0 {
		return
	}

	fetcher := iter.Iterator[entity.Appointment]{MaxGoroutines: len(appointments)}
	fetcher.ForEach(appointments, func(appointment *entity.Appointment) {
		if appointment.DoctorID == "" {
			return
		}
		if doctor, ok := u.lookupDoctor(ctx, appointment.DoctorID); ok {
			appointment.Doctor = doctor
		}
	})
}

// lookupDoctor reports ok=false instead of an error; callers degrade to an
// appointment without doctor details.
func (u *appointmentUsecase) lookupDoctor(ctx context.Context, doctorID string) (*entity.Doctor, bool) {
	doc, err := u.store.GetDocument(ctx, entity.CollectionDoctors, doctorID)
	if err != nil {
		u.log.Debugf("Doctor %s not attached: %v", doctorID, err)
		u.metrics.ObserveEnrichmentMiss()
		return nil, false
	}
	doctor, err := converter.DocumentToDoctor(doc)
	if err != nil {
		u.log.Debugf("Doctor %s not attached: %v", doctorID, err)
		u.metrics.ObserveEnrichmentMiss()
		return nil, false
	}
	return doctor, true
}

// BookAppointment creates a scheduled appointment for viewer with the
// requested doctor. Required fields are checked before any store call.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, viewer *entity.UserProfile, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if viewer == nil {
		return nil, repository.ErrNotAuthenticated
	}
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	if _, err := u.store.GetDocument(ctx, entity.CollectionDoctors, req.DoctorID); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID: req.DoctorID,
		UserID:   viewer.ID,
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Date:     req.Date,
		Time:     strings.TrimSpace(req.Time),
		Notes:    strings.TrimSpace(req.Notes),
		Status:   entity.AppointmentStatusScheduled,
	}
	permissions := []string{
		entity.PermissionRead(entity.AnyUserRole),
		entity.PermissionWrite(entity.AnyUserRole),
		entity.PermissionUpdate(entity.AnyUserRole),
		entity.PermissionDelete(entity.AnyUserRole),
	}

	doc, err := u.store.CreateDocument(ctx, entity.CollectionAppointments, entity.UniqueID, converter.AppointmentFields(appointment), permissions...)
	if err != nil {
		u.log.Warnf("Failed to save appointment: %+v", err)
		return nil, err
	}
	appointment.ID = doc.ID
	u.audit.LogCreate(ctx, entity.AuditActionAppointmentBook, entity.CollectionAppointments, appointment.ID, doc.Data)

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s", appointment.ID, appointment.DoctorID, appointment.Date)
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment sets the status to cancelled and returns the re-fetched
// list for viewer and date. Cancelling a cancelled appointment succeeds.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, viewer *entity.UserProfile, appointmentID, date string) (*dto.AppointmentListResponse, error) {
	if viewer == nil {
		return nil, repository.ErrNotAuthenticated
	}

	fields := map[string]interface{}{"status": string(entity.AppointmentStatusCancelled)}
	if _, err := u.store.UpdateDocument(ctx, entity.CollectionAppointments, appointmentID, fields); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, entity.AuditActionAppointmentCancel, entity.CollectionAppointments, appointmentID, nil, fields)

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return u.ListAppointments(ctx, viewer, date)
}
