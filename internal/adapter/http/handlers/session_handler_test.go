package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"repair_desk/internal/adapter/http/handlers/mocks"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/domain/ledger"
	"repair_desk/internal/usecase"
	"repair_desk/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func sessionView() usecase.SessionView {
	return usecase.SessionView{
		ID:              "s-1",
		Order:           entities.RepairOrder{ID: 42, Code: "OS-42", Status: entities.OrderStatusInRepair},
		PersistedStatus: entities.OrderStatusInRepair,
	}
}

// confirmAnswer reports what a Confirmer passed by the handler answers.
func confirmAnswer(c usecase.Confirmer) bool {
	return c.Confirm(context.Background(), "?")
}

func TestSessionHandler_Open(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewSessionHandler(mocks.NewMockIOrderSessionUseCase(ctrl), nil)
		r := newRouter()
		r.POST("/v1/sessions", h.Open)

		if w := do(r, http.MethodPost, "/v1/sessions", `{"order_id":0}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.POST("/v1/sessions", h.Open)

		uc.EXPECT().Open(gomock.Any(), acme, int64(42)).Return(usecase.SessionView{}, usecase.ErrOrderNotFound)

		if w := do(r, http.MethodPost, "/v1/sessions", `{"order_id":42}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.POST("/v1/sessions", h.Open)

		uc.EXPECT().Open(gomock.Any(), acme, int64(42)).Return(sessionView(), nil)

		w := do(r, http.MethodPost, "/v1/sessions", `{"order_id":42}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "s-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_Get_AttachesCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderSessionUseCase(ctrl)
	h := NewSessionHandler(uc, nil)
	r := newRouter()
	r.GET("/v1/sessions/:id", h.Get)

	uc.EXPECT().Get(gomock.Any(), "s-1").DoAndReturn(func(ctx context.Context, _ string) (usecase.SessionView, error) {
		caller, ok := usecase.CallerFrom(ctx)
		if !ok || caller.CompanyID != acme.CompanyID {
			t.Fatalf("expected caller %q, got %+v", acme.CompanyID, caller)
		}
		return sessionView(), nil
	})

	if w := do(r, http.MethodGet, "/v1/sessions/s-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSessionHandler_Edits(t *testing.T) {
	t.Run("final price accepts a typed amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.PUT("/v1/sessions/:id/final-price", h.EditFinalPrice)

		uc.EXPECT().EditFinalPrice(gomock.Any(), "s-1", 122.5).Return(sessionView(), nil)

		if w := do(r, http.MethodPut, "/v1/sessions/s-1/final-price", `{"amount":"122,50"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("garbage labor reads as zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.PUT("/v1/sessions/:id/labor", h.EditLabor)

		uc.EXPECT().EditLabor(gomock.Any(), "s-1", 0.0).Return(sessionView(), nil)

		if w := do(r, http.MethodPut, "/v1/sessions/s-1/labor", `{"amount":"abc"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.PATCH("/v1/sessions/:id/order", h.EditOrder)

		uc.EXPECT().EditOrder(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, edit usecase.OrderEdit) (usecase.SessionView, error) {
				if edit.Status == nil || *edit.Status != entities.OrderStatusCompleted {
					t.Fatalf("expected COMPLETED, got %v", edit.Status)
				}
				if edit.FaultDescription != nil {
					t.Fatalf("absent fields must stay nil")
				}
				return sessionView(), nil
			})

		if w := do(r, http.MethodPatch, "/v1/sessions/s-1/order", `{"status":" completed "}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("out of stock carries the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.POST("/v1/sessions/:id/parts", h.AddPart)

		uc.EXPECT().AddPart(gomock.Any(), "s-1", int64(3)).Return(sessionView(), ledger.ErrOutOfStock)

		w := do(r, http.MethodPost, "/v1/sessions/s-1/parts", `{"warehouse_item_id":3}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "OUT_OF_STOCK" || body.Details["id"] != "s-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("toggle check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.POST("/v1/sessions/:id/checks/:mode/:check", h.ToggleCheck)

		uc.EXPECT().ToggleCheck(gomock.Any(), "s-1", entities.DiagnosticModeExit, entities.CheckPowerOn).Return(sessionView(), nil)

		if w := do(r, http.MethodPost, "/v1/sessions/s-1/checks/EXIT/power_on", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_RemovePart(t *testing.T) {
	for _, tc := range []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?confirm=true", true},
		{"?confirm=nope", false},
	} {
		t.Run(fmt.Sprintf("confirm %q", tc.query), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIOrderSessionUseCase(ctrl)
			h := NewSessionHandler(uc, nil)
			r := newRouter()
			r.DELETE("/v1/sessions/:id/parts/:local_id", h.RemovePart)

			uc.EXPECT().RemovePart(gomock.Any(), "s-1", "l-1", gomock.Any()).DoAndReturn(
				func(_ any, _, _ string, c usecase.Confirmer) (usecase.SessionView, error) {
					if got := confirmAnswer(c); got != tc.want {
						t.Fatalf("expected confirmation %v, got %v", tc.want, got)
					}
					if !tc.want {
						return sessionView(), ledger.ErrRemovalNotConfirmed
					}
					return sessionView(), nil
				})

			w := do(r, http.MethodDelete, "/v1/sessions/s-1/parts/l-1"+tc.query, "")
			want := http.StatusOK
			if !tc.want {
				want = http.StatusConflict
			}
			if w.Code != want {
				t.Fatalf("expected %d, got %d", want, w.Code)
			}
		})
	}
}

func TestSessionHandler_Save(t *testing.T) {
	t.Run("partial save is still a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.POST("/v1/sessions/:id/save", h.Save)

		report := usecase.SaveReport{
			Outcome: usecase.SaveOutcomePartial,
			Failed:  []string{usecase.ResourceExitTest},
			Message: "Order OS-42 saved, but these could not be saved: exit-test.",
		}
		uc.EXPECT().Save(gomock.Any(), "s-1", gomock.Any()).Return(report, sessionView(), nil)

		w := do(r, http.MethodPost, "/v1/sessions/s-1/save", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["outcome"] != "partial" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.POST("/v1/sessions/:id/save", h.Save)

		verr := &usecase.ValidationError{Messages: []string{"technician must be assigned"}}
		uc.EXPECT().Save(gomock.Any(), "s-1", gomock.Any()).Return(usecase.SaveReport{}, sessionView(), verr)

		w := do(r, http.MethodPost, "/v1/sessions/s-1/save", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("core order failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.POST("/v1/sessions/:id/save", h.Save)

		terr := fmt.Errorf("save order 42: %w", &interfaces.TransportError{Op: "PUT order/42", StatusCode: 500})
		uc.EXPECT().Save(gomock.Any(), "s-1", gomock.Any()).Return(usecase.SaveReport{}, sessionView(), terr)

		if w := do(r, http.MethodPost, "/v1/sessions/s-1/save?confirm=1", ""); w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		h := NewSessionHandler(uc, nil)
		r := newRouter()
		r.DELETE("/v1/sessions/:id", h.Close)

		uc.EXPECT().Close(gomock.Any(), "nope").Return(usecase.ErrSessionNotFound)

		if w := do(r, http.MethodDelete, "/v1/sessions/nope", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
