// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_FirstWins(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		want        int
	}{
		{name: "single call", statusCodes: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "double call", statusCodes: []int{http.StatusNoContent, http.StatusBadRequest}, want: http.StatusNoContent},
		{name: "triple call", statusCodes: []int{http.StatusUnauthorized, http.StatusOK, http.StatusNotFound}, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.want, w.status)
			assert.Equal(t, tt.want, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte(`{"count":`))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = w.Write([]byte(`0}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, `{"count":0}`, rr.Body.String())
}

func TestResponseWriter_WriteAfterExplicitStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte(`{"detail":"Not found."}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResponseWriter_Flush(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Flush()

	assert.True(t, rr.Flushed)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Same(t, rr, w.Unwrap())
}
