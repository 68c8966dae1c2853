package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Generated object keys contain slashes (places/covers/<ts>_<uuid>.<ext>),
// so the delete endpoint is registered with a catch-all parameter.
func TestDeleteFileRouteMatchesSlashedKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := NewUploadController(nil)
	r := gin.New()
	r.DELETE("/uploads/*key", uc.DeleteFile)

	// A catch-all keeps its leading slash; a bare "/uploads/" must reduce
	// to an empty key and be rejected before any storage call.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/uploads/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File key is required")

	// A multi-segment key must reach the handler instead of falling off
	// the route tree.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/uploads/places/covers/1_abc.jpg", nil)
	r.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)
	assert.NotEqual(t, http.StatusBadRequest, w.Code)
}

func TestGenerateImageKeyPrefixes(t *testing.T) {
	uc := NewUploadController(nil)

	tests := []struct {
		kind   string
		prefix string
	}{
		{"cover", "places/covers/"},
		{"photo", "places/photos/"},
		{"event", "events/"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			key := uc.generateImageKey(tt.kind, "sight.jpg")
			assert.True(t, len(key) > len(tt.prefix))
			assert.Equal(t, tt.prefix, key[:len(tt.prefix)])
			assert.Equal(t, ".jpg", key[len(key)-4:])
		})
	}
}
