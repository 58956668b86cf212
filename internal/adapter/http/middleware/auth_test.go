package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repair_desk/internal/config"
	"repair_desk/internal/domain/entities"
	"repair_desk/pkg/logger"

	"github.com/gin-gonic/gin"
)

func serve(t *testing.T, mw gin.HandlerFunc, setup func(r *http.Request)) (*httptest.ResponseRecorder, entities.RequestContext) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got entities.RequestContext
	r := gin.New()
	r.Use(mw)
	r.GET("/v1/ping", func(c *gin.Context) {
		got = FromContext(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, got
}

func TestRequestContext(t *testing.T) {
	w, rc := serve(t, RequestContext(), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer abc")
		r.Header.Set(HeaderCompanyID, "acme")
		r.Header.Set(HeaderUserID, "u1")
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if rc.Token != "abc" || rc.CompanyID != "acme" || rc.UserID != "u1" {
		t.Fatalf("unexpected request context: %+v", rc)
	}
}

func TestAuth(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret", JWTIssuer: "repair-desk"}

	t.Run("disabled trusts headers", func(t *testing.T) {
		w, rc := serve(t, Auth(config.AuthConfig{}), func(r *http.Request) {
			r.Header.Set(HeaderCompanyID, "acme")
		})
		if w.Code != http.StatusNoContent || rc.CompanyID != "acme" {
			t.Fatalf("expected headers trusted, got %d %+v", w.Code, rc)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		w, _ := serve(t, Auth(cfg), nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token overrides headers", func(t *testing.T) {
		token, err := MintToken(cfg, "acme", "u1", time.Hour)
		if err != nil {
			t.Fatalf("mint: %v", err)
		}
		w, rc := serve(t, Auth(cfg), func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
			r.Header.Set(HeaderCompanyID, "other")
		})
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if rc.CompanyID != "acme" || rc.UserID != "u1" || rc.Token != token {
			t.Fatalf("unexpected request context: %+v", rc)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := MintToken(config.AuthConfig{JWTSecret: "secret", JWTIssuer: "someone-else"}, "acme", "u1", time.Hour)
		if err != nil {
			t.Fatalf("mint: %v", err)
		}
		w, _ := serve(t, Auth(cfg), func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := MintToken(cfg, "acme", "u1", -time.Minute)
		if err != nil {
			t.Fatalf("mint: %v", err)
		}
		w, _ := serve(t, Auth(cfg), func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequestLogger(t *testing.T) {
	w, _ := serve(t, RequestLogger(logger.Nop()), func(r *http.Request) {
		r.Header.Set(HeaderRequestID, "req-1")
	})
	if got := w.Header().Get(HeaderRequestID); got != "req-1" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}
