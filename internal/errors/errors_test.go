package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactError_Message(t *testing.T) {
	err := NewArtifactError("model/habit_model.json", "decode", stderrors.New("unexpected EOF"))
	assert.Contains(t, err.Error(), "model/habit_model.json")
	assert.Contains(t, err.Error(), "decode failed")
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestArtifactError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewArtifactError("model/scaler.json", "read", cause)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))

	var artifactErr *ArtifactError
	assert.True(t, stderrors.As(error(err), &artifactErr))
	assert.Equal(t, "read", artifactErr.Stage)
}

func TestSentinels_Distinct(t *testing.T) {
	assert.False(t, stderrors.Is(ErrModelUnavailable, ErrNotFound))
	assert.False(t, stderrors.Is(ErrInvalidInput, ErrRateLimit))
}
