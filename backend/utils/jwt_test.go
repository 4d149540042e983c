package utils

import (
	"project/backend/config"
	"project/backend/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	user := &models.AdminUser{
		Email:      "admin@diu.edu.bd",
		Role:       models.RoleSectionAdmin,
		Department: "63_G",
	}
	user.ID = 7

	token, err := GenerateAdminToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@diu.edu.bd", claims.Email)
	assert.Equal(t, models.RoleSectionAdmin, claims.Role)
	assert.Equal(t, "63_G", claims.Department)
	assert.False(t, claims.IsGlobalRole())
}

func TestAdminTokenWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	user := &models.AdminUser{Email: "admin@diu.edu.bd", Role: models.RoleAdmin}
	user.ID = 1

	token, err := GenerateAdminToken(user, cfg)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, &config.Config{JWTSecret: "othersecret"})
	assert.Error(t, err)
}

func TestAdminTokenGarbage(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	_, err := ParseAdminToken("not-a-token", cfg)
	assert.Error(t, err)

	_, err = ParseAdminToken("", cfg)
	assert.Error(t, err)
}

func TestIsGlobalRole(t *testing.T) {
	assert.True(t, (&AuthClaims{Role: models.RoleAdmin}).IsGlobalRole())
	assert.True(t, (&AuthClaims{Role: models.RoleSuperAdmin}).IsGlobalRole())
	assert.False(t, (&AuthClaims{Role: models.RoleModerator}).IsGlobalRole())
	assert.False(t, (&AuthClaims{Role: models.RoleContentCreator}).IsGlobalRole())
	assert.False(t, (&AuthClaims{Role: models.RoleSectionAdmin}).IsGlobalRole())
}
