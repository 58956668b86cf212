package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/ledger"
	"repair_desk/internal/usecase/interfaces"
	mock_interfaces "repair_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type sessionMocks struct {
	syncMocks
	warehouse *mock_interfaces.MockIWarehouseRepository
}

func newSessionUseCase(ctrl *gomock.Controller) (*OrderSessionUseCase, sessionMocks) {
	syncUC, sm := newSyncUseCase(ctrl)
	m := sessionMocks{syncMocks: sm, warehouse: mock_interfaces.NewMockIWarehouseRepository(ctrl)}
	uc := NewOrderSessionUseCase(SessionDeps{
		Orders:      m.orders,
		Diagnostics: m.diag,
		Parts:       m.parts,
		Warehouse:   m.warehouse,
		Payments:    NewPaymentReconciler(m.payments),
		Sync:        syncUC,
		SearchLimit: 10,
	})
	return uc, m
}

func notFound(op string) error {
	return &interfaces.TransportError{Op: op, StatusCode: http.StatusNotFound}
}

// expectOpen loads order 42 with one persisted line (id 7), no exit test and no
// payment.
func expectOpen(m sessionMocks, order entities.RepairOrder) {
	m.orders.EXPECT().GetByID(gomock.Any(), testRC, int64(42)).Return(order, nil)
	m.diag.EXPECT().Get(gomock.Any(), testRC, int64(42), entities.DiagnosticModeIncoming).
		Return(map[string]bool{"powerOn": true, "display": false}, nil)
	m.diag.EXPECT().Get(gomock.Any(), testRC, int64(42), entities.DiagnosticModeExit).
		Return(nil, notFound("GET order/42/exit-test"))
	m.parts.EXPECT().ListByOrderID(gomock.Any(), testRC, int64(42)).Return([]entities.PartsLine{
		{PersistedID: 7, WarehouseItemID: 1, Description: "Screen", Quantity: 1, UnitPrice: 50, AvailableStock: 2},
	}, nil)
	m.payments.EXPECT().GetByOrderID(gomock.Any(), testRC, int64(42)).
		Return(entities.PaymentRecord{}, notFound("GET payments/order/42"))
}

func TestOrderSessionUseCase_Open(t *testing.T) {
	t.Run("loads every resource", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSessionUseCase(ctrl)
		order := validOrder()
		order.LaborAmount = 50
		expectOpen(m, order)

		view, err := uc.Open(context.Background(), testRC, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ID == "" || view.Order.ID != 42 {
			t.Fatalf("unexpected view %+v", view)
		}
		if len(view.Parts) != 1 || view.Price.PartsTotal != 50 {
			t.Fatalf("expected parts total 50, got %+v", view.Price)
		}
		if view.Price.LaborAmount != 50 || view.Price.FinalPrice != 122 {
			t.Fatalf("expected persisted figures to be kept, got %+v", view.Price)
		}
		if !view.Incoming.Flags[entities.CheckPowerOn] || view.Incoming.Flags[entities.CheckDisplay] {
			t.Fatalf("expected incoming test from the repository, got %v", view.Incoming.Flags)
		}
		if view.Exit.Flags[entities.CheckPowerOn] {
			t.Fatalf("expected exit defaults, got %v", view.Exit.Flags)
		}
		if view.Payment.Exists() {
			t.Fatalf("expected no payment, got %+v", view.Payment)
		}
		if _, err := uc.Get(context.Background(), view.ID); err != nil {
			t.Fatalf("expected session to be stored, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSessionUseCase(ctrl)
		if _, err := uc.Open(context.Background(), testRC, 0); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSessionUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), testRC, int64(42)).Return(entities.RepairOrder{}, nil)

		if _, err := uc.Open(context.Background(), testRC, 42); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("diagnostic failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSessionUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), testRC, int64(42)).Return(validOrder(), nil)
		m.diag.EXPECT().Get(gomock.Any(), testRC, int64(42), entities.DiagnosticModeIncoming).
			Return(nil, &interfaces.TransportError{Op: "GET order/42/incoming-test", StatusCode: http.StatusInternalServerError})

		if _, err := uc.Open(context.Background(), testRC, 42); !interfaces.IsStatus(err, http.StatusInternalServerError) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})
}

func TestOrderSessionUseCase_PriceEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSessionUseCase(ctrl)
	expectOpen(m, validOrder())

	view, err := uc.Open(context.Background(), testRC, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err = uc.EditFinalPrice(context.Background(), view.ID, 122)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Price.LaborAmount != 50 || view.Price.VATAmount != 22 {
		t.Fatalf("expected labor 50 and VAT 22, got %+v", view.Price)
	}
	if view.Order.EstimatedPrice != 122 || view.Order.LaborAmount != 50 {
		t.Fatalf("expected order to carry the price figures, got %+v", view.Order)
	}

	view, err = uc.EditLabor(context.Background(), view.ID, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Price.FinalPrice != 183 {
		t.Fatalf("expected final 183, got %v", view.Price.FinalPrice)
	}
}

func TestOrderSessionUseCase_Parts(t *testing.T) {
	t.Run("add from search results and clamp quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSessionUseCase(ctrl)
		expectOpen(m, validOrder())
		view, err := uc.Open(context.Background(), testRC, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := uc.AddPart(context.Background(), view.ID, 3); !errors.Is(err, ErrCandidateNotFound) {
			t.Fatalf("expected ErrCandidateNotFound, got %v", err)
		}

		m.warehouse.EXPECT().Search(gomock.Any(), testRC, "battery", 10).
			Return([]entities.WarehouseItem{{ID: 3, Description: "Battery", UnitPrice: 20, AvailableStock: 2}}, nil)
		if _, err := uc.SearchParts(context.Background(), view.ID, "battery"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view, err = uc.AddPart(context.Background(), view.ID, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Parts) != 2 || view.Price.PartsTotal != 70 {
			t.Fatalf("expected two lines totalling 70, got %+v", view.Price)
		}
		// final price stays, labor absorbs the parts change
		if view.Price.FinalPrice != 122 || view.Price.LaborAmount != 30 {
			t.Fatalf("unexpected price state %+v", view.Price)
		}

		added := view.Parts[1].LocalID
		view, err = uc.SetPartQuantity(context.Background(), view.ID, added, 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Parts[1].Quantity != 2 {
			t.Fatalf("expected quantity clamped to 2, got %d", view.Parts[1].Quantity)
		}
	})

	t.Run("declined removal keeps the line and sends no delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSessionUseCase(ctrl)
		expectOpen(m, validOrder())
		view, err := uc.Open(context.Background(), testRC, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		local := view.Parts[0].LocalID

		view, err = uc.RemovePart(context.Background(), view.ID, local, Preconfirmed(false))
		if !errors.Is(err, ledger.ErrRemovalNotConfirmed) {
			t.Fatalf("expected ErrRemovalNotConfirmed, got %v", err)
		}
		if len(view.Parts) != 1 || view.Parts[0].PersistedID != 7 {
			t.Fatalf("expected line 7 to stay, got %+v", view.Parts)
		}
	})

	t.Run("confirmed removal deletes remotely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSessionUseCase(ctrl)
		expectOpen(m, validOrder())
		view, err := uc.Open(context.Background(), testRC, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m.parts.EXPECT().Delete(gomock.Any(), testRC, int64(42), int64(7)).Return(nil)

		view, err = uc.RemovePart(context.Background(), view.ID, view.Parts[0].LocalID, Preconfirmed(true))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Parts) != 0 || view.Price.PartsTotal != 0 {
			t.Fatalf("expected empty ledger, got %+v", view.Parts)
		}
	})
}

func TestOrderSessionUseCase_ToggleAndEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSessionUseCase(ctrl)
	expectOpen(m, validOrder())
	view, err := uc.Open(context.Background(), testRC, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err = uc.ToggleCheck(context.Background(), view.ID, entities.DiagnosticModeIncoming, entities.CheckPowerOn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range entities.AllChecks {
		if view.Incoming.Flags[id] {
			t.Fatalf("expected %s off after power off", id)
		}
	}

	if _, err := uc.ToggleCheck(context.Background(), view.ID, "sideways", entities.CheckWifi); err == nil {
		t.Fatalf("expected unknown mode error")
	}

	bad := entities.OrderStatus("LOST")
	if _, err := uc.EditOrder(context.Background(), view.ID, OrderEdit{Status: &bad}); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}

	status := entities.OrderStatusCompleted
	fault := "water damage"
	notes := "paid in cash"
	view, err = uc.EditOrder(context.Background(), view.ID, OrderEdit{Status: &status, FaultDescription: &fault, PaymentNotes: &notes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Order.Status != status || view.Order.StatusLabel != "Completed" || view.PersistedStatus != entities.OrderStatusInRepair {
		t.Fatalf("unexpected status fields %+v", view)
	}
	if view.Order.FaultDescription != fault || view.PaymentNotes != notes {
		t.Fatalf("unexpected edits %+v", view)
	}

	if _, _, err := uc.Save(context.Background(), view.ID, Preconfirmed(false)); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
}

func TestOrderSessionUseCase_SessionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSessionUseCase(ctrl)
	expectOpen(m, validOrder())
	view, err := uc.Open(context.Background(), testRC, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Close(context.Background(), view.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Close(context.Background(), view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.EditLabor(context.Background(), view.ID, 1); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestOrderSessionUseCase_CallerScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSessionUseCase(ctrl)
	expectOpen(m, validOrder())
	view, err := uc.Open(context.Background(), testRC, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := WithCaller(context.Background(), entities.RequestContext{CompanyID: "company-2", UserID: "user-9"})
	if _, err := uc.Get(other, view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for another company, got %v", err)
	}
	if _, err := uc.EditLabor(other, view.ID, 1); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for another company, got %v", err)
	}
	if err := uc.Close(other, view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for another company, got %v", err)
	}

	same := WithCaller(context.Background(), entities.RequestContext{CompanyID: testRC.CompanyID, UserID: "user-2"})
	if _, err := uc.Get(same, view.ID); err != nil {
		t.Fatalf("expected the opening company to keep access, got %v", err)
	}
}
