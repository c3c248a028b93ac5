package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/validator"
)

func TestAuditTrail_DoctorChanges(t *testing.T) {
	store := newFakeStore()
	audit := service.NewAuditService(newTestLogger(), store)
	doctors := NewDoctorUsecase(newTestLogger(), store, validator.NewValidator(), audit)
	logs := NewAuditLogUsecase(newTestLogger(), store)

	ctx := service.WithActor(context.Background(), "admin-1")

	created, err := doctors.CreateDoctor(ctx, validDoctorRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := doctors.UpdateDoctor(ctx, created.ID, &dto.UpdateDoctorRequest{FirstName: "Gregory"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := doctors.DeleteDoctor(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := logs.ListAuditLogs(context.Background(), entity.CollectionDoctors, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("expected 3 entries, got %d", result.Total)
	}

	wantActions := []string{entity.AuditActionDoctorDelete, entity.AuditActionDoctorUpdate, entity.AuditActionDoctorCreate}
	for i, want := range wantActions {
		got := result.Logs[i]
		if got.Action != want {
			t.Errorf("entry %d: expected %s, got %s", i, want, got.Action)
		}
		if got.UserID != "admin-1" || got.EntityID != created.ID {
			t.Errorf("entry %d: unexpected attribution %+v", i, got)
		}
	}

	update := result.Logs[1]
	oldValue, _ := update.OldValue.(map[string]interface{})
	newValue, _ := update.NewValue.(map[string]interface{})
	if oldValue["firstName"] != "Greg" || newValue["firstName"] != "Gregory" {
		t.Errorf("expected firstName Greg -> Gregory, got %v -> %v", oldValue["firstName"], newValue["firstName"])
	}
}

func TestAuditTrail_FilterByEntity(t *testing.T) {
	store := newFakeStore()
	audit := service.NewAuditService(newTestLogger(), store)
	ctx := context.Background()

	audit.LogCreate(ctx, entity.AuditActionClinicCreate, entity.CollectionClinics, "c1", nil)
	audit.LogCreate(ctx, entity.AuditActionDoctorCreate, entity.CollectionDoctors, "d1", nil)
	audit.LogDelete(ctx, entity.AuditActionClinicDelete, entity.CollectionClinics, "c1", nil)

	logs := NewAuditLogUsecase(newTestLogger(), store)
	result, err := logs.ListAuditLogs(ctx, entity.CollectionClinics, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("expected 2 clinic entries, got %d", result.Total)
	}

	all, err := logs.ListAuditLogs(ctx, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if all.Total != 3 {
		t.Errorf("expected 3 entries, got %d", all.Total)
	}
}

func TestAuditTrail_CancelRecorded(t *testing.T) {
	store := newFakeStore()
	audit := service.NewAuditService(newTestLogger(), store)
	uc := NewAppointmentUsecase(newTestLogger(), store, validator.NewValidator(), nil, audit)
	store.seed(entity.CollectionAppointments, "a1", map[string]interface{}{
		"userId": "p1", "date": "2024-03-10", "status": "scheduled",
	})

	viewer := &entity.UserProfile{ID: "p1", UserID: "u1", Role: entity.RoleUser}
	if _, err := uc.CancelAppointment(service.WithActor(context.Background(), "u1"), viewer, "a1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := store.documents(entity.CollectionAuditLog)
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(entries))
	}
	if entries[0].Data["action"] != entity.AuditActionAppointmentCancel || entries[0].Data["userId"] != "u1" {
		t.Errorf("unexpected entry %v", entries[0].Data)
	}
}

func TestAuditTrail_StoreFailureDoesNotFailChange(t *testing.T) {
	store := newFakeStore()
	store.createErrs[entity.CollectionAuditLog] = []error{errBackend}
	audit := service.NewAuditService(newTestLogger(), store)
	uc := NewClinicUsecase(newTestLogger(), store, validator.NewValidator(), audit)

	if _, err := uc.CreateClinic(context.Background(), &dto.CreateClinicRequest{Name: "North", Address: "1 Main St"}); err != nil {
		t.Fatalf("expected clinic creation to succeed, got %v", err)
	}
	if got := len(store.documents(entity.CollectionClinics)); got != 1 {
		t.Errorf("expected the clinic stored, got %d", got)
	}
}

func TestGetAuditLog_NotFound(t *testing.T) {
	logs := NewAuditLogUsecase(newTestLogger(), newFakeStore())
	if _, err := logs.GetAuditLog(context.Background(), "missing"); !errors.Is(err, ErrAuditLogNotFound) {
		t.Errorf("expected ErrAuditLogNotFound, got %v", err)
	}
}

func TestNilAuditServiceRecordsNothing(t *testing.T) {
	var audit *service.AuditService
	if err := audit.LogCreate(context.Background(), entity.AuditActionDoctorCreate, entity.CollectionDoctors, "d1", nil); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
