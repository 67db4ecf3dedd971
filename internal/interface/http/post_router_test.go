package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-profile/internal/domain/auth"
	"github.com/yanqian/astro-profile/internal/domain/post"
)

func TestRouter_PostFeedLifecycle(t *testing.T) {
	router := newRouterUnderTest(t, &stubAstro{}, nil)
	ada := registerBearer(t, router, "Ada", "ada@example.com")
	grace := registerBearer(t, router, "Grace", "grace@example.com")

	rec := performRequest(router, http.MethodPost, "/api/v1/posts", `{"content":"Venus enters Libra"}`, ada)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created post.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Ada", created.AuthorName)
	postPath := fmt.Sprintf("/api/v1/posts/%d", created.ID)

	rec = performRequest(router, http.MethodGet, "/api/v1/posts", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var feed struct {
		Posts []post.Post `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Posts, 1)

	rec = performRequest(router, http.MethodPut, postPath, `{"content":"hijacked"}`, grace)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, post.CodeForbidden, decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])

	rec = performRequest(router, http.MethodPut, postPath, `{"content":"Venus enters Scorpio"}`, ada)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodPut, postPath+"/like", "", grace)
	require.Equal(t, http.StatusOK, rec.Code)
	var liked struct {
		Likes []post.Like `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	require.Len(t, liked.Likes, 1)

	rec = performRequest(router, http.MethodPost, postPath+"/comments", `{"content":"lovely"}`, grace)
	require.Equal(t, http.StatusCreated, rec.Code)
	var commented struct {
		Comments []post.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &commented))
	require.Equal(t, "Grace", commented.Comments[0].UserName)

	rec = performRequest(router, http.MethodDelete, postPath, "", grace)
	require.Equal(t, http.StatusForbidden, rec.Code)
	rec = performRequest(router, http.MethodDelete, postPath, "", ada)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = performRequest(router, http.MethodPut, postPath+"/like", "", grace)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_PostErrors(t *testing.T) {
	router := newRouterUnderTest(t, &stubAstro{}, nil)
	ada := registerBearer(t, router, "Ada", "ada@example.com")

	rec := performRequest(router, http.MethodPost, "/api/v1/posts", `{"content":"hi"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = performRequest(router, http.MethodPost, "/api/v1/posts", `{"content":"  "}`, ada)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, post.CodeInvalidInput, decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])

	rec = performRequest(router, http.MethodPut, "/api/v1/posts/abc", `{"content":"x"}`, ada)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(router, http.MethodDelete, "/api/v1/posts/42", "", ada)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(router, http.MethodGet, "/api/v1/posts?limit=lots", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func registerBearer(t *testing.T, server *http.Server, name, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":"pass1234"}`, name, email)
	rec := performRequest(server, http.MethodPost, "/api/v1/users/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp auth.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return "Bearer " + resp.Token
}
