package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kaledaljebur/HairHubConnect/internal/utils"
)

const testSecret = "middleware-test-secret"

func runChain(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	if err := h(c); err != nil {
		t.Fatalf("chain returned error: %v", err)
	}
	return rec
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 42, "CUSTOMER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec := runChain(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+at.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthRejections(t *testing.T) {
	at, err := utils.NewAccessToken("some-other-secret", 42, "CUSTOMER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic Zm9vOmJhcg=="},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + at.Token},
	}
	for _, tc := range cases {
		rec := runChain(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, tc.header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, rec.Code)
		}
	}
}

func TestRequireRole(t *testing.T) {
	token := func(role string) string {
		at, err := utils.NewAccessToken(testSecret, 42, role, 15)
		if err != nil {
			t.Fatalf("NewAccessToken: %v", err)
		}
		return "Bearer " + at.Token
	}

	ownerOnly := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("OWNER")}

	if rec := runChain(t, ownerOnly, token("OWNER")); rec.Code != http.StatusOK {
		t.Fatalf("owner rejected: status %d", rec.Code)
	}
	if rec := runChain(t, ownerOnly, token("CUSTOMER")); rec.Code != http.StatusForbidden {
		t.Fatalf("customer allowed on owner route: status %d", rec.Code)
	}
	if rec := runChain(t, ownerOnly, token("")); rec.Code != http.StatusForbidden {
		t.Fatalf("empty role allowed: status %d", rec.Code)
	}

	both := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("OWNER", "CUSTOMER")}
	if rec := runChain(t, both, token("CUSTOMER")); rec.Code != http.StatusOK {
		t.Fatalf("customer rejected on shared route: status %d", rec.Code)
	}
}
