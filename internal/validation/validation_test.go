package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Query         string `json:"query" form:"query" binding:"required"`
	OperationName string `json:"operationName" form:"operationName"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/json", func(c *gin.Context) {
		var p payload
		if !BindAndValidateJSON(c, &p) {
			return
		}
		c.JSON(http.StatusOK, p)
	})
	r.GET("/query", func(c *gin.Context) {
		var p payload
		if !BindAndValidateQuery(c, &p) {
			return
		}
		c.JSON(http.StatusOK, p)
	})

	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindAndValidateJSON_MissingRequired(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/json", bytes.NewBufferString(`{"operationName": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "VALIDATION_FAILED", resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "query", resp.Errors[0].Field)
	assert.Equal(t, "required", resp.Errors[0].Rule)
	assert.Equal(t, "query is required", resp.Errors[0].Message)
}

func TestBindAndValidateJSON_Syntax(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/json", bytes.NewBufferString(`{"query":`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "invalid request body", resp.Message)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "syntax", resp.Errors[0].Rule)
}

func TestBindAndValidateJSON_OK(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/json", bytes.NewBufferString(`{"query": "{ authorCount }"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBindAndValidateQuery(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/query", nil)
	setupRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/query?query=%7B+authorCount+%7D", nil)
	setupRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		WriteError(c, http.StatusTeapot, "TEAPOT", "short and stout")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "TEAPOT", resp.Code)
	assert.Equal(t, "short and stout", resp.Message)
	assert.Nil(t, resp.Errors)
}
