package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"mind-nest-be/internal/dto"
	"mind-nest-be/internal/pkg/serverutils"
	"mind-nest-be/internal/service"
	"mind-nest-be/pkg/rag/executor"
	"mind-nest-be/pkg/rag/language"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChatService struct {
	mock.Mock
}

func (m *mockChatService) SendChat(ctx context.Context, userId *uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	args := m.Called(userId, req.Message)
	res, _ := args.Get(0).(*dto.SendChatResponse)
	return res, args.Error(1)
}

func (m *mockChatService) GetHistory(ctx context.Context, userId *uuid.UUID) ([]*dto.ChatHistoryItem, error) {
	args := m.Called(userId)
	res, _ := args.Get(0).([]*dto.ChatHistoryItem)
	return res, args.Error(1)
}

func (m *mockChatService) DeleteHistory(ctx context.Context, userId *uuid.UUID) (*dto.DeleteChatHistoryResponse, error) {
	args := m.Called(userId)
	res, _ := args.Get(0).(*dto.DeleteChatHistoryResponse)
	return res, args.Error(1)
}

type mockResourceService struct {
	mock.Mock
}

func (m *mockResourceService) GetResources(ctx context.Context, lang string) ([]*dto.CrisisResourceDTO, error) {
	args := m.Called(lang)
	res, _ := args.Get(0).([]*dto.CrisisResourceDTO)
	return res, args.Error(1)
}

func newApp(chat service.IChatService, resources service.IResourceService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(chat, "").RegisterRoutes(api)
	NewResourceController(resources).RegisterRoutes(api)
	return app
}

func decode(t *testing.T, body io.Reader, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(out))
}

func TestSendChat(t *testing.T) {
	chat := &mockChatService{}
	chat.On("SendChat", (*uuid.UUID)(nil), "I feel stressed").Return(&dto.SendChatResponse{
		Response:        "This is a test response.",
		Severity:        "LOW",
		Techniques:      []dto.TechniqueDTO{{Title: "Test Technique"}},
		CrisisResources: []dto.CrisisResourceDTO{},
		Quotes:          []string{},
	}, nil)
	app := newApp(chat, &mockResourceService{})

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat/v1", strings.NewReader(`{"message":"  I feel stressed "}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body serverutils.Response[dto.SendChatResponse]
	decode(t, resp.Body, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "This is a test response.", body.Data.Response)
	assert.Equal(t, "LOW", body.Data.Severity)
	assert.Len(t, body.Data.Techniques, 1)
	chat.AssertExpectations(t)
}

func TestSendChatPassesIdentity(t *testing.T) {
	id := uuid.New()
	chat := &mockChatService{}
	chat.On("SendChat", mock.MatchedBy(func(u *uuid.UUID) bool { return u != nil && *u == id }), "hi").
		Return(&dto.SendChatResponse{Response: "hello"}, nil)
	app := newApp(chat, &mockResourceService{})

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat/v1", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+id.String())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	chat.AssertExpectations(t)
}

func TestSendChatValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "blank", body: `{"message":"   "}`},
		{name: "missing", body: `{}`},
		{name: "too long", body: fmt.Sprintf(`{"message":%q}`, strings.Repeat("a", 4001))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &mockChatService{}
			app := newApp(chat, &mockResourceService{})

			req := httptest.NewRequest(fiber.MethodPost, "/api/chat/v1", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			chat.AssertNotCalled(t, "SendChat", mock.Anything, mock.Anything)
		})
	}
}

func TestSendChatEmbeddingUnavailable(t *testing.T) {
	chat := &mockChatService{}
	chat.On("SendChat", mock.Anything, "hello").Return(nil, fmt.Errorf("process turn: %w", executor.ErrEmbeddingUnavailable))
	app := newApp(chat, &mockResourceService{})

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat/v1", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body serverutils.ErrorResponse
	decode(t, resp.Body, &body)
	assert.Equal(t, serverutils.ErrCodeEmbeddingUnavailable, body.ErrorCode)
}

func TestHistoryRoutes(t *testing.T) {
	chat := &mockChatService{}
	chat.On("GetHistory", (*uuid.UUID)(nil)).Return([]*dto.ChatHistoryItem{}, nil)
	chat.On("DeleteHistory", (*uuid.UUID)(nil)).Return(nil, service.ErrUnauthorized)
	app := newApp(chat, &mockResourceService{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/chat/v1/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body serverutils.Response[[]dto.ChatHistoryItem]
	decode(t, resp.Body, &body)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/chat/v1/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteHistoryUnknownUser(t *testing.T) {
	id := uuid.New()
	chat := &mockChatService{}
	chat.On("DeleteHistory", mock.Anything).Return(nil, service.ErrUserNotFound)
	app := newApp(chat, &mockResourceService{})

	req := httptest.NewRequest(fiber.MethodDelete, "/api/chat/v1/history", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+id.String())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetResources(t *testing.T) {
	resources := &mockResourceService{}
	resources.On("GetResources", "en").Return([]*dto.CrisisResourceDTO{{Name: "Crisis Line"}}, nil)
	resources.On("GetResources", "fr").Return(nil, fmt.Errorf("%w: %q", language.ErrUnsupported, "fr"))
	app := newApp(&mockChatService{}, resources)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/resources/v1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body serverutils.Response[[]dto.CrisisResourceDTO]
	decode(t, resp.Body, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Crisis Line", body.Data[0].Name)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/resources/v1?language=fr", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
