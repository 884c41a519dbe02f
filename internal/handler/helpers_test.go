package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(rawQuery string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"", 1, 20},
		{"page=3&per_page=50", 3, 50},
		{"page=0", 1, 20},
		{"page=-5&per_page=-1", 1, 20},
		{"per_page=1000", 1, 100},
		{"page=abc&per_page=xyz", 1, 20},
	}

	for _, tc := range cases {
		page, perPage := parsePagination(testContext(tc.query))
		if page != tc.wantPage || perPage != tc.wantPerPage {
			t.Errorf("parsePagination(%q) = (%d, %d), want (%d, %d)",
				tc.query, page, perPage, tc.wantPage, tc.wantPerPage)
		}
	}
}

func TestQueryInt(t *testing.T) {
	if got := queryInt(testContext("level=200"), "level"); got == nil || *got != 200 {
		t.Errorf("queryInt present = %v, want 200", got)
	}
	if got := queryInt(testContext(""), "level"); got != nil {
		t.Errorf("queryInt absent = %v, want nil", got)
	}
	if got := queryInt(testContext("level=abc"), "level"); got != nil {
		t.Errorf("queryInt invalid = %v, want nil", got)
	}
}
