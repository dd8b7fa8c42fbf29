package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/pkg/apperrors"
	"github.com/studymind/studymind/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	mw := NewAuthMiddleware(jwtService)
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret"})
	router := authTestRouter(jwtService)

	token, err := jwtService.GenerateToken(42, "user@example.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":42}`, w.Body.String())
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router := authTestRouter(auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret"})
	router := authTestRouter(jwtService)

	token, err := jwtService.GenerateToken(42, "user@example.com", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestHandleAPIErrorMapping(t *testing.T) {
	for _, tc := range []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"note not found", apperrors.ErrNoteNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"collaborator not found", apperrors.ErrCollaboratorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unsupported file type", apperrors.ErrUnsupportedFileType, http.StatusBadRequest, dto.ErrorCodeUnsupportedFileType},
		{"bad request", apperrors.NewBadRequestError("nope"), http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"processing failed", apperrors.NewProcessingError("boom"), http.StatusInternalServerError, dto.ErrorCodeProcessingFailed},
		{"wrapped sentinel", errors.Join(errors.New("ctx"), apperrors.ErrNoteNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unknown", errors.New("anything"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestCustomErrorMessageReachesClient(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, apperrors.NewBadRequestError("title cannot be empty"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "title cannot be empty", resp.Error.Message)
}
