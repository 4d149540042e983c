// Package client повторяет браузерные контексты состояния (AuthContext,
// SectionContext, CourseEnrollmentContext) как один явный объект с
// жизненным циклом: создается один раз на корень приложения и передается
// вниз явно, без глобального синглтона.
//
// Модель однопоточная (event loop UI): Manager не защищен для
// конкурентного использования.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Ключи локального хранилища — те же, что в браузерной версии
const (
	keyStudentUser     = "diu_student_user"
	keySelectedSection = "diu_selected_section"
	keySelectedBatch   = "diu_selected_batch"
)

// Student — локально закешированная идентичность студента
type Student struct {
	UserID              string `json:"user_id"`
	Email               string `json:"email"`
	Batch               string `json:"batch"`
	Section             string `json:"section"`
	HasSkippedSelection bool   `json:"has_skipped_selection"`
}

// EnrolledCourse — элемент закешированного набора записей
type EnrolledCourse struct {
	CourseID           uint    `json:"course_id"`
	Status             string  `json:"status"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Course             struct {
		Title      string `json:"title"`
		CourseCode string `json:"course_code"`
	} `json:"course"`
}

// localState сериализуется в файл состояния как plaintext JSON —
// без подписи и проверки целостности, как и localStorage в источнике
type localState struct {
	Student         *Student `json:"diu_student_user,omitempty"`
	SelectedSection string   `json:"diu_selected_section,omitempty"`
	SelectedBatch   string   `json:"diu_selected_batch,omitempty"`
}

type Manager struct {
	baseURL   string
	stateFile string
	http      *http.Client

	state    localState
	enrolled []EnrolledCourse
}

// NewManager загружает сохраненное состояние и возвращает готовый контейнер
func NewManager(baseURL, stateFile string) (*Manager, error) {
	m := &Manager{
		baseURL:   baseURL,
		stateFile: stateFile,
		http:      &http.Client{Timeout: 15 * time.Second},
	}

	data, err := os.ReadFile(stateFile)
	if err == nil {
		// Битое состояние молча сбрасывается, как делает браузерный клиент
		_ = json.Unmarshal(data, &m.state)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not read state file: %w", err)
	}

	return m, nil
}

func (m *Manager) saveState() error {
	data, err := json.MarshalIndent(&m.state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(m.stateFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(m.stateFile, data, 0o644)
}

// Student возвращает закешированную идентичность (nil, если ее нет)
func (m *Manager) Student() *Student {
	return m.state.Student
}

// SelectedSection возвращает закешированную секцию
func (m *Manager) SelectedSection() string {
	return m.state.SelectedSection
}

// Enrolled возвращает закешированный набор записей
func (m *Manager) Enrolled() []EnrolledCourse {
	return m.enrolled
}

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (m *Manager) postJSON(path string, body interface{}) (*envelope, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, err
	}

	resp, err := m.http.Post(m.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, err
	}
	return &env, resp.StatusCode, nil
}

// SelectSection создает идентичность студента на сервере и кеширует ее
func (m *Manager) SelectSection(email, batch, section string) error {
	env, status, err := m.postJSON("/api/students/select-section", map[string]string{
		"email":   email,
		"batch":   batch,
		"section": section,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("select-section failed: %s", env.Message)
	}

	var student Student
	if err := json.Unmarshal(env.Data, &student); err != nil {
		return err
	}

	m.state.Student = &student
	m.state.SelectedSection = section
	m.state.SelectedBatch = batch
	return m.saveState()
}

// SkipSelection создает идентичность без секции
func (m *Manager) SkipSelection(email string) error {
	env, status, err := m.postJSON("/api/students/skip-selection", map[string]string{
		"email": email,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("skip-selection failed: %s", env.Message)
	}

	var student Student
	if err := json.Unmarshal(env.Data, &student); err != nil {
		return err
	}

	m.state.Student = &student
	return m.saveState()
}

// Refresh перечитывает набор записей с сервера (один запрос, без polling)
func (m *Manager) Refresh() error {
	if m.state.Student == nil {
		return fmt.Errorf("no student identity")
	}

	resp, err := m.http.Get(m.baseURL + "/api/courses/enrolled?userId=" + m.state.Student.UserID)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh failed: %s", env.Message)
	}

	var enrolled []EnrolledCourse
	if err := json.Unmarshal(env.Data, &enrolled); err != nil {
		return err
	}
	m.enrolled = enrolled
	return nil
}

// Enroll применяет оптимистичное обновление, шлет запрос и сверяется
// повторной загрузкой. Если повторная загрузка падает, оптимистичное
// состояние может разойтись с сервером — отката нет, как и в источнике.
func (m *Manager) Enroll(courseID uint) error {
	if m.state.Student == nil {
		return fmt.Errorf("no student identity")
	}

	// Оптимистичное обновление
	m.enrolled = append([]EnrolledCourse{{
		CourseID: courseID,
		Status:   "active",
	}}, m.enrolled...)

	env, status, err := m.postJSON("/api/courses/enroll", map[string]interface{}{
		"userId":   m.state.Student.UserID,
		"courseId": courseID,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK && status != http.StatusConflict {
		return fmt.Errorf("enroll failed: %s", env.Message)
	}

	// Сверка с сервером; ошибка сверки не откатывает оптимистичное состояние
	_ = m.Refresh()
	return nil
}

// Unenroll — оптимистичное удаление из кеша плюс запрос и сверка
func (m *Manager) Unenroll(courseID uint) error {
	if m.state.Student == nil {
		return fmt.Errorf("no student identity")
	}

	// Оптимистичное обновление
	filtered := m.enrolled[:0]
	for _, e := range m.enrolled {
		if e.CourseID != courseID {
			filtered = append(filtered, e)
		}
	}
	m.enrolled = filtered

	env, status, err := m.postJSON("/api/courses/unenroll", map[string]interface{}{
		"userId":   m.state.Student.UserID,
		"courseId": courseID,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNotFound {
		return fmt.Errorf("unenroll failed: %s", env.Message)
	}

	_ = m.Refresh()
	return nil
}
