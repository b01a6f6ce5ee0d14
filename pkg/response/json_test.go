package response

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONEnvelope(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	JSONWithMeta(rr, req, http.StatusOK, []string{"a"}, NewMeta(1, 20, 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":["a"],"meta":{"page":1,"per_page":20,"total":1,"total_pages":1}}`, rr.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		write  func(w http.ResponseWriter, r *http.Request)
		status int
		code   string
	}{
		{name: "bad request", write: func(w http.ResponseWriter, r *http.Request) { BadRequest(w, r, "m") }, status: http.StatusBadRequest, code: "BAD_REQUEST"},
		{name: "not found", write: func(w http.ResponseWriter, r *http.Request) { NotFound(w, r, "m") }, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "unauthorized", write: func(w http.ResponseWriter, r *http.Request) { Unauthorized(w, r, "m") }, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "forbidden", write: func(w http.ResponseWriter, r *http.Request) { Forbidden(w, r, "m") }, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "internal", write: func(w http.ResponseWriter, r *http.Request) { InternalError(w, r, "m") }, status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			tc.write(rr, req)

			assert.Equal(t, tc.status, rr.Code)

			var body APIResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.Equal(t, "m", body.Error.Message)
		})
	}
}

func TestPageParams(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		query       string
		wantPage    int
		wantPerPage int
	}{
		{query: "", wantPage: 1, wantPerPage: 20},
		{query: "?page=3&per_page=5", wantPage: 3, wantPerPage: 5},
		{query: "?page=-1&per_page=500", wantPage: 1, wantPerPage: 20},
		{query: "?page=abc", wantPage: 1, wantPerPage: 20},
		{query: "?page=922337203685477581&per_page=20", wantPage: maxPage, wantPerPage: 20},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
		page, perPage := PageParams(req)
		assert.Equal(t, tc.wantPage, page, tc.query)
		assert.Equal(t, tc.wantPerPage, perPage, tc.query)
	}

	req := httptest.NewRequest(http.MethodGet, "/?page=922337203685477581&per_page=20", nil)
	page, perPage := PageParams(req)
	assert.Empty(t, Paginate([]int{1, 2, 3}, page, perPage))
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
	assert.Empty(t, Paginate(items, math.MaxInt/2+2, 20))
	assert.Empty(t, Paginate(items, 0, 2))
	assert.Equal(t, 3, NewMeta(1, 2, 5).TotalPages)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type payload struct {
		Status string `json:"status" validate:"required,oneof=open closed"`
		Reason string `json:"reason" validate:"max=3"`
	}

	err := validator.New().Struct(payload{Reason: "too long"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	ValidationError(rr, req, verrs)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Message, "field Status is a required field")
	assert.Contains(t, body.Error.Message, "field Reason is not valid")
}
