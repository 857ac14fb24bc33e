package view

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		pageSize  int
		total     int64
		wantPage  int
		wantPages int
		wantPrev  bool
		wantNext  bool
	}{
		{"empty result still has one page", 1, 12, 0, 1, 1, false, false},
		{"exact multiple", 1, 12, 24, 1, 2, false, true},
		{"partial last page", 2, 12, 25, 2, 3, true, true},
		{"page past the end clamps", 9, 12, 25, 3, 3, true, false},
		{"page below one clamps", 0, 12, 25, 1, 3, false, true},
		{"single page", 1, 20, 5, 1, 1, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.pageSize, tc.total)
			if p.Page != tc.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tc.wantPage)
			}
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.HasPrevious() != tc.wantPrev {
				t.Errorf("HasPrevious = %v, want %v", p.HasPrevious(), tc.wantPrev)
			}
			if p.HasNext() != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext(), tc.wantNext)
			}
		})
	}
}

func TestPageNumbers(t *testing.T) {
	p := NewPagination(2, 10, 35)
	got := p.PageNumbers()
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("PageNumbers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PageNumbers = %v, want %v", got, want)
		}
	}
}
