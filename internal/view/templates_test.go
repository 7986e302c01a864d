package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderUnknownTemplateWritesNothing(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	res := httptest.NewRecorder()
	err = engine.Render(res, http.StatusOK, "pages/missing.html", TemplateData{})
	require.Error(t, err)
	assert.Empty(t, res.Body.String())
	assert.Empty(t, res.Header().Get("Content-Type"))
}

func TestRenderSetsStatusAndContentType(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	res := httptest.NewRecorder()
	err = engine.Render(res, http.StatusServiceUnavailable, "layouts/foot", TemplateData{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
	assert.Equal(t, "text/html; charset=utf-8", res.Header().Get("Content-Type"))
	assert.Contains(t, res.Body.String(), "</html>")
}

func TestNilEngine(t *testing.T) {
	var engine *Engine
	assert.Error(t, engine.Render(httptest.NewRecorder(), http.StatusOK, "pages/index.html", TemplateData{}))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"full_name", "has", "uid"}, sortedKeys(map[string]string{"uid": "1", "has": "true", "full_name": "A"}))
	assert.Empty(t, sortedKeys(nil))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Full name", fieldLabel("full_name"))
	assert.Equal(t, "Has", fieldLabel("has"))
	assert.Equal(t, "", fieldLabel(""))
}
