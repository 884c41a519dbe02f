package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithPermissions(perms []string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if perms != nil {
		c.Set(ContextKeyClaims, &service.Claims{
			TokenType:   service.TokenTypeStaff,
			Permissions: perms,
		})
	}
	return c, w
}

func TestRequirePermission(t *testing.T) {
	t.Run("allows matching permission", func(t *testing.T) {
		c, w := contextWithPermissions([]string{"payments:read", "payments:confirm"})
		RequirePermission("payments:confirm")(c)
		if c.IsAborted() {
			t.Errorf("request aborted, status %d", w.Code)
		}
	})

	t.Run("rejects missing permission", func(t *testing.T) {
		c, w := contextWithPermissions([]string{"payments:read"})
		RequirePermission("payments:confirm")(c)
		if !c.IsAborted() {
			t.Fatal("request not aborted")
		}
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("rejects missing claims", func(t *testing.T) {
		c, w := contextWithPermissions(nil)
		RequirePermission("payments:confirm")(c)
		if !c.IsAborted() {
			t.Fatal("request not aborted")
		}
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRequireAnyPermission(t *testing.T) {
	t.Run("allows when any code matches", func(t *testing.T) {
		c, _ := contextWithPermissions([]string{"quizzes:read"})
		RequireAnyPermission("quizzes:write", "quizzes:read")(c)
		if c.IsAborted() {
			t.Error("request aborted")
		}
	})

	t.Run("rejects when no code matches", func(t *testing.T) {
		c, w := contextWithPermissions([]string{"students:read"})
		RequireAnyPermission("quizzes:write", "quizzes:read")(c)
		if !c.IsAborted() {
			t.Fatal("request not aborted")
		}
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})
}
