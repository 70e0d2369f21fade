package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestTokenFromRequest(t *testing.T) {
	cases := []struct {
		name   string
		header string
		value  string
		want   string
	}{
		{"bearer prefix", fiber.HeaderAuthorization, "Bearer tok-1", "tok-1"},
		{"lowercase prefix", fiber.HeaderAuthorization, "bearer tok-2", "tok-2"},
		{"no prefix", fiber.HeaderAuthorization, "tok-3", "tok-3"},
		{"x-authorization", "X-Authorization", "Bearer tok-4", "tok-4"},
		{"absent", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			var got string
			app.Get("/probe", func(c *fiber.Ctx) error {
				got = TokenFromRequest(c)
				return c.SendStatus(fiber.StatusOK)
			})
			req := httptest.NewRequest(fiber.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			if _, err := app.Test(req); err != nil {
				t.Fatalf("test request: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
