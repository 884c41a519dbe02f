package response

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		page, perPage, total int
		wantPages            int
	}{
		{1, 20, 0, 0},
		{1, 20, 1, 1},
		{1, 20, 20, 1},
		{1, 20, 21, 2},
		{3, 10, 95, 10},
		{1, 0, 50, 0},
	}

	for _, tc := range cases {
		p := NewPagination(tc.page, tc.perPage, tc.total)
		if p.TotalPages != tc.wantPages {
			t.Errorf("NewPagination(%d, %d, %d).TotalPages = %d, want %d",
				tc.page, tc.perPage, tc.total, p.TotalPages, tc.wantPages)
		}
		if p.Page != tc.page || p.PerPage != tc.perPage || p.TotalItems != tc.total {
			t.Errorf("pagination echoes inputs incorrectly: %+v", p)
		}
	}
}

func TestGetMessageCoversAllCodes(t *testing.T) {
	codes := []ErrCode{
		ErrValidation,
		ErrConflict,
		ErrRateLimitExceeded,
	}
	for _, code := range codes {
		if msg := GetMessage(code); msg == "" {
			t.Errorf("no message for code %s", code)
		}
	}
}
