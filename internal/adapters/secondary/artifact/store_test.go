package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salary-prediction-api/internal/core/domain"
)

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salary_model.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFileStore_Load(t *testing.T) {
	path := writeArtifact(t, `{"model_type":"linear_regression","feature_names":["years_experience"],"coefficients":[9449.96],"intercept":25792.2}`)

	model, err := NewFileStore().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []float64{9449.96}, model.Coefficients)
	assert.Equal(t, 25792.2, model.Intercept)
	assert.Equal(t, []string{"years_experience"}, model.FeatureNames)
}

func TestFileStore_LoadMissing(t *testing.T) {
	_, err := NewFileStore().Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestFileStore_LoadMalformed(t *testing.T) {
	path := writeArtifact(t, `{"coefficients": [1,`)

	_, err := NewFileStore().Load(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrInvalidArtifact)
}

func TestFileStore_LoadWrongShape(t *testing.T) {
	path := writeArtifact(t, `{"coefficients":[1,2],"intercept":0}`)

	_, err := NewFileStore().Load(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrInvalidArtifact)
}

func TestFileStore_LoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileStore().Load(ctx, "salary_model.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_Exists(t *testing.T) {
	store := NewFileStore()
	path := writeArtifact(t, `{}`)

	assert.True(t, store.Exists(path))
	assert.False(t, store.Exists(filepath.Join(t.TempDir(), "missing.json")))
	assert.False(t, store.Exists(t.TempDir()))
}
