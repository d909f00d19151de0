package database

import (
	"path/filepath"
	"testing"

	"github.com/fieldscope/research-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:   "successful connection with in-memory database",
			dbPath: ":memory:",
		},
		{
			name:   "successful connection with file database",
			dbPath: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, conn)
			assert.NotNil(t, conn.DB)

			if conn != nil {
				conn.Close()
			}
		})
	}
}

func TestDB_HealthCheck(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.HealthCheck())
}

func TestDB_AutoMigrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	err = conn.AutoMigrate(&models.Project{}, &models.Transcript{}, &models.ContentAnalysis{})
	require.NoError(t, err)

	// Migrated tables accept writes
	project := models.Project{Name: "Acme tracker"}
	require.NoError(t, conn.DB.Create(&project).Error)
	assert.NotEmpty(t, project.UUID)
}
