package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCoordinator is a mock implementation of the consistency service
type MockCoordinator struct {
	mock.Mock
}

func (m *MockCoordinator) OnDateTimeCorrected(ctx context.Context, transcriptUUID, field, value string) (map[string]string, error) {
	args := m.Called(ctx, transcriptUUID, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCoordinator) ResetAnalysis(ctx context.Context, analysisUUID string) (map[string]string, error) {
	args := m.Called(ctx, analysisUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCoordinator) ReassignProject(ctx context.Context, projectID uint) (map[string]string, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCoordinator) SyncProject(ctx context.Context, projectID uint) (map[string]string, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func setupResetRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1/analyses")
	RegisterRoutes(group, deps)
	return router
}

func TestReset(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockCoordinator)
		expectedStatus int
		expectedLabels map[string]string
	}{
		{
			name: "confirmed reset renumbers and returns labels",
			body: `{"confirm": true}`,
			setupMock: func(m *MockCoordinator) {
				m.On("ResetAnalysis", mock.Anything, "analysis-1").
					Return(map[string]string{"transcript-1": "R01"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLabels: map[string]string{"transcript-1": "R01"},
		},
		{
			name:           "unconfirmed reset is rejected without touching the coordinator",
			body:           `{"confirm": false}`,
			setupMock:      func(m *MockCoordinator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing confirm flag is rejected",
			body:           `{}`,
			setupMock:      func(m *MockCoordinator) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCoordinator := new(MockCoordinator)
			tt.setupMock(mockCoordinator)

			router := setupResetRouter(&types.Dependencies{Coordinator: mockCoordinator})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/analysis-1/reset",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedLabels != nil {
				var response types.LabelsResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, tt.expectedLabels, response.Labels)
			}

			mockCoordinator.AssertExpectations(t)
		})
	}
}
