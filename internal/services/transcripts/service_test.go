package transcripts

import (
	"context"
	"testing"

	"github.com/fieldscope/research-api/internal/models"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTranscript(ctx context.Context, transcript *models.Transcript) error {
	args := m.Called(ctx, transcript)
	return args.Error(0)
}

func (m *MockRepository) GetTranscriptByUUID(ctx context.Context, uuid string) (*models.Transcript, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transcript), args.Error(1)
}

func (m *MockRepository) ListTranscriptsByProject(ctx context.Context, projectID uint) ([]models.Transcript, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]models.Transcript), args.Error(1)
}

func (m *MockRepository) ListTranscriptsByUUIDs(ctx context.Context, uuids []string) ([]models.Transcript, error) {
	args := m.Called(ctx, uuids)
	return args.Get(0).([]models.Transcript), args.Error(1)
}

func (m *MockRepository) SaveTranscript(ctx context.Context, transcript *models.Transcript) error {
	args := m.Called(ctx, transcript)
	return args.Error(0)
}

func (m *MockRepository) DeleteTranscript(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// MockAnalysisStore is a mock implementation of consistency.AnalysisStore
type MockAnalysisStore struct {
	mock.Mock
}

func (m *MockAnalysisStore) GetAnalysisByUUID(ctx context.Context, uuid string) (*models.ContentAnalysis, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentAnalysis), args.Error(1)
}

func (m *MockAnalysisStore) ListAnalysesByProject(ctx context.Context, projectID uint) ([]models.ContentAnalysis, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]models.ContentAnalysis), args.Error(1)
}

func (m *MockAnalysisStore) SaveAnalysis(ctx context.Context, analysis *models.ContentAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

// MockCoordinator is a mock implementation of consistency.Service
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

func TestServiceImpl_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates transcript with parsed metadata", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockAnalysisStore), new(MockCoordinator))

		mockRepo.On("CreateTranscript", ctx, mock.AnythingOfType("*models.Transcript")).
			Run(func(args mock.Arguments) {
				transcript := args.Get(1).(*models.Transcript)
				assert.Equal(t, uint(1), transcript.ProjectID)
				assert.Equal(t, "interview_a.docx", transcript.Filename)
				require.NotNil(t, transcript.InterviewDate)
				assert.Equal(t, "2024-01-05", *transcript.InterviewDate)
				assert.False(t, transcript.UploadedAt.IsZero())
				assert.Empty(t, transcript.Respno, "labels are granted on assignment, not ingestion")
			}).
			Return(nil)

		transcript, err := service.Ingest(ctx, 1, "interview_a.docx", "2024-01-05", "14:30")
		require.NoError(t, err)
		assert.NotNil(t, transcript)

		mockRepo.AssertExpectations(t)
	})

	t.Run("accepts missing date and time", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockAnalysisStore), new(MockCoordinator))

		mockRepo.On("CreateTranscript", ctx, mock.AnythingOfType("*models.Transcript")).Return(nil)

		transcript, err := service.Ingest(ctx, 1, "interview_b.docx", "", "")
		require.NoError(t, err)
		assert.Nil(t, transcript.InterviewDate)
		assert.Nil(t, transcript.InterviewTime)
	})

	t.Run("rejects malformed date before mutation", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockAnalysisStore), new(MockCoordinator))

		_, err := service.Ingest(ctx, 1, "interview_c.docx", "last tuesday", "")
		require.Error(t, err)
		assert.True(t, pkgerrors.Is(err, pkgerrors.ErrCodeValidation))
		mockRepo.AssertNotCalled(t, "CreateTranscript", mock.Anything, mock.Anything)
	})

	t.Run("requires project id", func(t *testing.T) {
		service := NewService(new(MockRepository), new(MockAnalysisStore), new(MockCoordinator))

		_, err := service.Ingest(ctx, 0, "interview_d.docx", "", "")
		require.Error(t, err)
		assert.True(t, pkgerrors.Is(err, pkgerrors.ErrCodeMissingField))
	})
}

func TestServiceImpl_ListByProject(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	mockAnalyses := new(MockAnalysisStore)
	service := NewService(mockRepo, mockAnalyses, new(MockCoordinator))

	analysis := models.ContentAnalysis{UUID: "an1", ProjectID: 1}
	require.NoError(t, analysis.SetSheetMap(map[string][]models.Row{
		models.IdentitySheetName: {{"transcriptId": "t1", "Respondent ID": "R01"}},
	}))

	mockRepo.On("ListTranscriptsByProject", ctx, uint(1)).Return([]models.Transcript{
		{UUID: "t1", ProjectID: 1, Respno: "R01"},
		{UUID: "t2", ProjectID: 1},
	}, nil)
	mockAnalyses.On("ListAnalysesByProject", ctx, uint(1)).Return([]models.ContentAnalysis{analysis}, nil)

	views, err := service.ListByProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].Assigned)
	assert.Equal(t, "an1", views[0].AnalysisUUID)
	assert.False(t, views[1].Assigned)
	assert.Empty(t, views[1].AnalysisUUID)
}

func TestServiceImpl_CorrectDateTime_DelegatesToCoordinator(t *testing.T) {
	ctx := context.Background()

	mockCoordinator := new(MockCoordinator)
	service := NewService(new(MockRepository), new(MockAnalysisStore), mockCoordinator)

	expected := map[string]string{"t1": "R01"}
	mockCoordinator.On("OnDateTimeCorrected", ctx, "t1", "date", "2024-01-01").Return(expected, nil)

	labels, err := service.CorrectDateTime(ctx, "t1", "date", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, expected, labels)

	mockCoordinator.AssertExpectations(t)
}
