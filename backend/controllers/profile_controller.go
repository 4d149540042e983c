package controllers

import (
	"fmt"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Лимит размера фото профиля
const maxPhotoSize = 5 * 1024 * 1024

// Допустимые типы изображений и их расширения
var allowedPhotoTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type ProfileController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Storage utils.ObjectStorage
}

func NewProfileController(db *gorm.DB, cfg *config.Config, storage utils.ObjectStorage) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg, Storage: storage}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var user models.AdminUser
	if err := pc.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"department": user.Department,
		"phone":      user.Phone,
		"photo_url":  user.PhotoURL,
		"created_at": user.CreatedAt,
	})
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param input body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var user models.AdminUser
	if err := pc.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var input UpdateProfileRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := pc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"photo_url":  user.PhotoURL,
		"department": user.Department,
	})
}

// UploadPhoto godoc
// @Summary Upload a profile photo
// @Description Multipart image up to 5MB (jpeg, png, webp, gif), stored as {userId}/{timestamp}.{ext}
// @Tags profile
// @Accept mpfd
// @Produce json
// @Param photo formData file true "Image file"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /profile/photo [post]
func (pc *ProfileController) UploadPhoto(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var user models.AdminUser
	if err := pc.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.BadRequest(c, "photo file is required")
	}
	if fileHeader.Size > maxPhotoSize {
		return utils.BadRequest(c, "File exceeds the 5MB limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		return utils.BadRequest(c, "Unsupported image type, expected jpeg, png, webp or gif")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.InternalServerError(c, "Could not read uploaded file")
	}
	defer file.Close()

	key := fmt.Sprintf("%d/%d.%s", user.ID, time.Now().UnixNano(), ext)
	url, err := pc.Storage.Upload(c.Context(), key, contentType, file)
	if err != nil {
		return utils.InternalServerError(c, "Could not store uploaded file")
	}

	user.PhotoURL = url
	if err := pc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"photo_url": url})
}
