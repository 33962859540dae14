package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrPuzzleNotFound, http.StatusNotFound, CodePuzzleNotFound},
		{fmt.Errorf("%w: empty", model.ErrInvalidWord), http.StatusBadRequest, CodeInvalidWord},
		{model.ErrInvalidTitle, http.StatusBadRequest, CodeInvalidTitle},
		{model.ErrInvalidStrategy, http.StatusBadRequest, CodeInvalidStrategy},
		{model.ErrNoValidPlacement, http.StatusUnprocessableEntity, CodeNoValidPlacement},
		{model.ErrWordListNotLoaded, http.StatusConflict, CodeWordListNotLoaded},
		{fmt.Errorf("puzzle X: %w", model.ErrConflictingOverlap), http.StatusInternalServerError, CodeMalformedBoard},
		{NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{NewNotFoundError(), http.StatusNotFound, CodeNotFound},
		{errors.New("redis down"), http.StatusInternalServerError, CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status, Status(tt.err))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("dial tcp 10.0.0.1:6379: refused"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}
