package controllers_test

import (
	"fmt"
	"net/http"
	"project/backend/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTopic(t *testing.T, cookie *http.Cookie, title string, courseID uint) uint {
	t.Helper()

	resp := doJSON(t, "POST", "/api/section-admin/topics", map[string]interface{}{
		"title":     title,
		"course_id": courseID,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return uint(decodeData(t, resp)["ID"].(float64))
}

func TestTopicAndSlideHierarchy(t *testing.T) {
	semester := createSemester(t, "Content Fall 63_G", "63_G", true)
	course := createCourse(t, "Content Course", "CONT-101", semester.ID)

	createAdmin(t, "content@diu.edu.bd", models.RoleSectionAdmin, "63_G")
	cookie := login(t, "content@diu.edu.bd")

	topicID := createTopic(t, cookie, "Week 1", course.ID)

	resp := doJSON(t, "POST", "/api/section-admin/slides", map[string]interface{}{
		"topic_id":    topicID,
		"title":       "Intro Slides",
		"url":         "https://drive.google.com/file/d/abc123",
		"order_index": 1,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	slideID := uint(decodeData(t, resp)["ID"].(float64))

	resp = doJSON(t, "POST", "/api/section-admin/videos", map[string]interface{}{
		"topic_id": topicID,
		"title":    "Intro Lecture",
		"url":      "https://youtube.com/watch?v=abc123",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Слайды фильтруются по теме
	resp = doJSON(t, "GET", fmt.Sprintf("/api/section-admin/slides?topic_id=%d", topicID), nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, decodeDataList(t, resp), 1)

	// Обновление слайда
	resp = doJSON(t, "PUT", fmt.Sprintf("/api/section-admin/slides/%d", slideID), map[string]interface{}{
		"title": "Intro Slides v2",
	}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Intro Slides v2", decodeData(t, resp)["title"])

	resp = doJSON(t, "DELETE", fmt.Sprintf("/api/section-admin/slides/%d", slideID), nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSlideRejectsNonHTTPSURL(t *testing.T) {
	semester := createSemester(t, "URL Fall 63_G", "63_G", true)
	course := createCourse(t, "URL Course", "URL-101", semester.ID)

	createAdmin(t, "urlcheck@diu.edu.bd", models.RoleSectionAdmin, "63_G")
	cookie := login(t, "urlcheck@diu.edu.bd")

	topicID := createTopic(t, cookie, "Week URL", course.ID)

	for _, url := range []string{"http://insecure.example.com/slides", "not a url"} {
		resp := doJSON(t, "POST", "/api/section-admin/slides", map[string]interface{}{
			"topic_id": topicID,
			"title":    "Bad URL",
			"url":      url,
		}, cookie)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, url)
	}
}

func TestStudyToolTypeValidation(t *testing.T) {
	semester := createSemester(t, "Tools Fall 63_G", "63_G", true)
	course := createCourse(t, "Tools Course", "TOOL-101", semester.ID)

	createAdmin(t, "tools@diu.edu.bd", models.RoleSectionAdmin, "63_G")
	cookie := login(t, "tools@diu.edu.bd")

	resp := doJSON(t, "POST", "/api/section-admin/study-tools", map[string]interface{}{
		"course_id": course.ID,
		"title":     "Midterm 2024",
		"type":      "previous_exam",
		"url":       "https://drive.google.com/file/d/exam123",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, "POST", "/api/section-admin/study-tools", map[string]interface{}{
		"course_id": course.ID,
		"title":     "Bad Type",
		"type":      "cheat_sheet",
		"url":       "https://drive.google.com/file/d/x",
	}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Сводка считает только контент своей секции
func TestSummaryScoped(t *testing.T) {
	ours := createSemester(t, "Summary 66_C", "66_C", true)
	createSemester(t, "Summary 67_D", "67_D", true)
	createCourse(t, "Summary Course", "SUMM-101", ours.ID)

	createAdmin(t, "summary@diu.edu.bd", models.RoleSectionAdmin, "66_C")
	cookie := login(t, "summary@diu.edu.bd")

	resp := doJSON(t, "GET", "/api/section-admin/summary", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, float64(1), data["semesters"])
	assert.Equal(t, float64(1), data["courses"])
	assert.Equal(t, float64(0), data["topics"])
}
