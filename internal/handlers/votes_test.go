package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/askme-forum/backend/internal/forum"
)

// Input validation happens before the handler touches the store, so these
// run against a handler with no database behind it.
func newVoteRouter(authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewVoteHandler(forum.NewService(nil))
	if authenticated {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", 1)
			c.Set("profile_id", 1)
		})
	}
	r.POST("/votes", handler.CastVote)
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCastVoteRequiresAuth(t *testing.T) {
	router := newVoteRouter(false)
	w := postJSON(router, "/votes", `{"target_kind":"question","target_id":1,"value":1}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCastVoteRejectsUnknownKind(t *testing.T) {
	router := newVoteRouter(true)
	w := postJSON(router, "/votes", `{"target_kind":"comment","target_id":1,"value":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCastVoteRejectsOutOfRangeValue(t *testing.T) {
	router := newVoteRouter(true)
	for _, body := range []string{
		`{"target_kind":"question","target_id":1,"value":0}`,
		`{"target_kind":"question","target_id":1,"value":5}`,
	} {
		w := postJSON(router, "/votes", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "vote value")
	}
}

func TestCastVoteRejectsMalformedBody(t *testing.T) {
	router := newVoteRouter(true)
	w := postJSON(router, "/votes", `{"target_kind":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
