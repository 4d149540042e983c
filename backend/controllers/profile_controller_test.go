package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"project/backend/models"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadPhoto собирает multipart запрос с одним файлом photo
func uploadPhoto(t *testing.T, cookie *http.Cookie, contentType string, payload []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="photo.bin"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/profile/photo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)

	resp, err := app.Test(req, int(10*time.Second/time.Millisecond))
	require.NoError(t, err)
	return resp
}

func TestProfileUpdate(t *testing.T) {
	createAdmin(t, "profile@diu.edu.bd", models.RoleSectionAdmin, "63_G")
	cookie := login(t, "profile@diu.edu.bd")

	resp := doJSON(t, "PUT", "/api/profile", map[string]string{
		"name":  "Renamed Admin",
		"phone": "+8801700000000",
	}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, "Renamed Admin", data["name"])
	assert.Equal(t, "+8801700000000", data["phone"])

	// GET отдает то же самое
	resp = doJSON(t, "GET", "/api/profile", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decodeData(t, resp)
	assert.Equal(t, "Renamed Admin", data["name"])
}

func TestProfilePhotoUpload(t *testing.T) {
	admin := createAdmin(t, "photo@diu.edu.bd", models.RoleSectionAdmin, "63_G")
	cookie := login(t, "photo@diu.edu.bd")

	resp := uploadPhoto(t, cookie, "image/png", []byte("fake png bytes"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	url, _ := data["photo_url"].(string)
	assert.NotEmpty(t, url)

	// Файл попал в хранилище
	assert.NotEmpty(t, store.Objects)

	// URL сохранен в профиле
	var user models.AdminUser
	require.NoError(t, db.First(&user, admin.ID).Error)
	assert.Equal(t, url, user.PhotoURL)
}

func TestProfilePhotoWrongType(t *testing.T) {
	createAdmin(t, "phototype@diu.edu.bd", models.RoleSectionAdmin, "63_G")
	cookie := login(t, "phototype@diu.edu.bd")

	resp := uploadPhoto(t, cookie, "application/pdf", []byte("%PDF-1.4"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProfileWithoutToken(t *testing.T) {
	resp := doJSON(t, "GET", "/api/profile", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
