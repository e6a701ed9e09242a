//go:build unit

package handler_test

import (
	"io"
	"net/http"
	nethttptest "net/http/httptest"

	"github.com/gin-gonic/gin"
)

func newRequest(method, path string, body io.Reader) *http.Request {
	return nethttptest.NewRequest(method, path, body)
}

func serve(router *gin.Engine, req *http.Request) *nethttptest.ResponseRecorder {
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
