package handlers

import (
	"context"
	"net/http"

	"wardrobe_catalog/internal/models"
	"wardrobe_catalog/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser  models.Identity
	registerToken string
	registerErr   error
	loginUser     models.Identity
	loginToken    string
	loginErr      error
	parseUser     models.Identity
	parseErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(_ context.Context, username, password string) (models.Identity, string, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerUser, m.registerToken, m.registerErr
}
func (m *mockAuth) Login(_ context.Context, username, password string) (models.Identity, string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginUser, m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (models.Identity, error) {
	m.lastParseToken = token
	return m.parseUser, m.parseErr
}

type mockWardrobe struct {
	categories []string
	clothes    []models.ClothingItem
	cloth      models.ClothingItem
	summary    service.WardrobeSummary
	err        error
	summaryErr error

	lastUserID   int
	lastCategory string
	lastSeason   string
	lastID       int64
	lastInput    service.ClothInput
	calls        int
}

func (m *mockWardrobe) Categories(_ context.Context, userID int) ([]string, error) {
	m.calls++
	m.lastUserID = userID
	return m.categories, m.err
}
func (m *mockWardrobe) AddCategory(_ context.Context, userID int, category string) ([]string, error) {
	m.calls++
	m.lastUserID = userID
	m.lastCategory = category
	return m.categories, m.err
}
func (m *mockWardrobe) Clothes(_ context.Context, userID int, category, season string) ([]models.ClothingItem, error) {
	m.calls++
	m.lastUserID = userID
	m.lastCategory = category
	m.lastSeason = season
	return m.clothes, m.err
}
func (m *mockWardrobe) AddCloth(_ context.Context, userID int, in service.ClothInput) (models.ClothingItem, error) {
	m.calls++
	m.lastUserID = userID
	m.lastInput = in
	return m.cloth, m.err
}
func (m *mockWardrobe) UpdateCloth(_ context.Context, userID int, id int64, in service.ClothInput) (models.ClothingItem, error) {
	m.calls++
	m.lastUserID = userID
	m.lastID = id
	m.lastInput = in
	return m.cloth, m.err
}
func (m *mockWardrobe) DeleteCloth(_ context.Context, userID int, id int64) error {
	m.calls++
	m.lastUserID = userID
	m.lastID = id
	return m.err
}
func (m *mockWardrobe) Summary(_ context.Context, userID int) (service.WardrobeSummary, error) {
	m.lastUserID = userID
	return m.summary, m.summaryErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
