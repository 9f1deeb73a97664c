package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"key": "value"}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, len(`{"key":"value"}`), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"key":"value"}`, w.Body.String())
}

func TestWriteJSON_NoHTMLEscaping(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"html": "<a href='x'>&</a>"}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, `{"html":"<a href='x'>&</a>"}`, w.Body.String())
}

func TestWriteJSON_RawMessage(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, json.RawMessage(`{"session":"xyz","n":1}`), http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, `{"session":"xyz","n":1}`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteText(w, "Hello World!", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "Hello World!", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}
