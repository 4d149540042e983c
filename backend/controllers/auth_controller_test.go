package controllers_test

import (
	"project/backend/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionAdminSignup(t *testing.T) {
	resp := doJSON(t, "POST", "/api/auth/section-admin-signup", map[string]string{
		"name":       "Signup Admin",
		"email":      "signup@diu.edu.bd",
		"password":   "strongpassword",
		"department": "63_G",
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, "section_admin", data["role"])
	assert.Equal(t, "63_G", data["department"])

	// Cookie ставится сразу при регистрации
	var found bool
	for _, ck := range resp.Cookies() {
		if ck.Name == "admin_token" && ck.Value != "" {
			found = true
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "admin_token cookie must be set")
}

func TestSectionAdminSignupBadSection(t *testing.T) {
	resp := doJSON(t, "POST", "/api/auth/section-admin-signup", map[string]string{
		"name":       "Bad Section",
		"email":      "badsection@diu.edu.bd",
		"password":   "strongpassword",
		"department": "63G",
	}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSectionAdminSignupDuplicateEmail(t *testing.T) {
	createAdmin(t, "dup@diu.edu.bd", models.RoleSectionAdmin, "63_G")

	resp := doJSON(t, "POST", "/api/auth/section-admin-signup", map[string]string{
		"name":       "Duplicate",
		"email":      "dup@diu.edu.bd",
		"password":   "strongpassword",
		"department": "63_G",
	}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginAndMe(t *testing.T) {
	createAdmin(t, "me@diu.edu.bd", models.RoleSectionAdmin, "63_G")
	cookie := login(t, "me@diu.edu.bd")

	resp := doJSON(t, "GET", "/api/auth/me", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, "me@diu.edu.bd", data["email"])
	assert.Equal(t, "63_G", data["department"])
}

func TestLoginWrongPassword(t *testing.T) {
	createAdmin(t, "wrongpass@diu.edu.bd", models.RoleSectionAdmin, "63_G")

	resp := doJSON(t, "POST", "/api/auth/login", map[string]string{
		"email":    "wrongpass@diu.edu.bd",
		"password": "not-the-password",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeWithoutToken(t *testing.T) {
	resp := doJSON(t, "GET", "/api/auth/me", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	resp := doJSON(t, "POST", "/api/auth/logout", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, ck := range resp.Cookies() {
		if ck.Name == "admin_token" {
			assert.Empty(t, ck.Value)
		}
	}
}
