package view

// Base carries everything the shared layout (navbar, toast container,
// footer) needs on every page.
type Base struct {
	Title      string
	Categories []NavCategory
	User       *User
	Flash      *Flash
	CSRFToken  string
	SearchURL  string
}

type NavCategory struct {
	Name string
	Slug string
	URL  string
}

type User struct {
	ID        string
	Email     string
	FirstName string
	IsAdmin   bool
}

// Pagination mirrors the page object the templates iterate over.
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

func NewPagination(page, pageSize int, total int64) Pagination {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	return Pagination{Page: page, PageSize: pageSize, TotalItems: total, TotalPages: pages}
}

func (p Pagination) HasPrevious() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool     { return p.Page < p.TotalPages }
func (p Pagination) PreviousPage() int { return p.Page - 1 }
func (p Pagination) NextPage() int     { return p.Page + 1 }

// PageNumbers returns the 1..N range for the pager links.
func (p Pagination) PageNumbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
