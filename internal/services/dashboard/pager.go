package dashboard

import (
	"weather-dashboard/internal/models"
)

const DefaultPageSize = 10

// PageSizeOptions are the page sizes a table may be shown with.
var PageSizeOptions = []int{10, 20, 50}

func ValidPageSize(size int) bool {
	for _, s := range PageSizeOptions {
		if s == size {
			return true
		}
	}
	return false
}

// PageState is the pagination state of a result set. Methods never modify
// the receiver; each returns the next state. Every state they return keeps
// 0 <= PageIndex < max(PageCount(), 1).
type PageState struct {
	PageIndex int `json:"page_index" example:"0"`
	PageSize  int `json:"page_size" example:"10"`
	TotalRows int `json:"total_rows" example:"25"`
}

// NewPageState is the state installed with a new result set: first page,
// default size.
func NewPageState(totalRows int) PageState {
	return NewPageStateWithSize(totalRows, DefaultPageSize)
}

// NewPageStateWithSize is NewPageState with a configured initial size. An
// unsupported size falls back to DefaultPageSize.
func NewPageStateWithSize(totalRows, pageSize int) PageState {
	if !ValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	if totalRows < 0 {
		totalRows = 0
	}
	return PageState{PageSize: pageSize, TotalRows: totalRows}
}

// PageCount is ceil(TotalRows / PageSize), 0 for an empty result.
func (s PageState) PageCount() int {
	if s.TotalRows <= 0 || s.PageSize <= 0 {
		return 0
	}
	return (s.TotalRows + s.PageSize - 1) / s.PageSize
}

func (s PageState) CanPrevious() bool {
	return s.PageIndex > 0
}

func (s PageState) CanNext() bool {
	return s.PageIndex < s.PageCount()-1
}

// GotoPage moves to page n clamped into range. No-op for an empty result.
func (s PageState) GotoPage(n int) PageState {
	if s.PageCount() == 0 {
		return s
	}
	s.PageIndex = s.clamp(n)
	return s
}

func (s PageState) NextPage() PageState {
	if !s.CanNext() {
		return s
	}
	s.PageIndex++
	return s
}

func (s PageState) PreviousPage() PageState {
	if !s.CanPrevious() {
		return s
	}
	s.PageIndex--
	return s
}

func (s PageState) FirstPage() PageState {
	return s.GotoPage(0)
}

func (s PageState) LastPage() PageState {
	return s.GotoPage(s.PageCount() - 1)
}

// SetPageSize changes the page size and clamps the current index into the
// new range rather than resetting it.
func (s PageState) SetPageSize(size int) (PageState, error) {
	if !ValidPageSize(size) {
		return s, ErrInvalidPageSize
	}
	s.PageSize = size
	s.PageIndex = s.clamp(s.PageIndex)
	return s, nil
}

// SetTotalRows adjusts the state to a changed row count.
func (s PageState) SetTotalRows(n int) PageState {
	if n < 0 {
		n = 0
	}
	s.TotalRows = n
	s.PageIndex = s.clamp(s.PageIndex)
	return s
}

// VisibleRows returns the rows of the current page. The slice aliases rows
// but is capacity-capped so appends cannot overwrite the following page.
func (s PageState) VisibleRows(rows []models.Row) []models.Row {
	total := min(s.TotalRows, len(rows))
	start := s.PageIndex * s.PageSize
	if start >= total || s.PageSize <= 0 {
		return []models.Row{}
	}
	end := min(start+s.PageSize, total)
	return rows[start:end:end]
}

func (s PageState) clamp(n int) int {
	last := s.PageCount() - 1
	if last < 0 {
		return 0
	}
	return max(0, min(n, last))
}

// PageActionType names a navigation control of the table.
type PageActionType string

const (
	ActionFirst    PageActionType = "first"
	ActionPrevious PageActionType = "previous"
	ActionNext     PageActionType = "next"
	ActionLast     PageActionType = "last"
	ActionGoto     PageActionType = "goto"
	ActionPageSize PageActionType = "size"
	ActionDate     PageActionType = "date"
)

// PageAction is one navigation request. PageIndex is used by goto, PageSize
// by size and Date by date.
type PageAction struct {
	Type      PageActionType `json:"action" example:"next"`
	PageIndex int            `json:"page,omitempty"`
	PageSize  int            `json:"page_size,omitempty"`
	Date      string         `json:"date,omitempty"`
}

// Reduce applies a navigation action to a state. ActionDate needs the row
// set and is resolved by the Service.
func Reduce(s PageState, a PageAction) (PageState, error) {
	switch a.Type {
	case ActionFirst:
		return s.FirstPage(), nil
	case ActionPrevious:
		return s.PreviousPage(), nil
	case ActionNext:
		return s.NextPage(), nil
	case ActionLast:
		return s.LastPage(), nil
	case ActionGoto:
		return s.GotoPage(a.PageIndex), nil
	case ActionPageSize:
		return s.SetPageSize(a.PageSize)
	}
	return s, ErrUnknownAction
}

// Page is what a table consumer renders: the visible rows plus the state
// that drives its navigation controls.
type Page struct {
	Rows            []models.Row `json:"rows"`
	State           PageState    `json:"state"`
	PageCount       int          `json:"page_count" example:"3"`
	CanPrevious     bool         `json:"can_previous" example:"false"`
	CanNext         bool         `json:"can_next" example:"true"`
	PageSizeOptions []int        `json:"page_size_options"`
}

func NewPage(rows []models.Row, s PageState) Page {
	return Page{
		Rows:            s.VisibleRows(rows),
		State:           s,
		PageCount:       s.PageCount(),
		CanPrevious:     s.CanPrevious(),
		CanNext:         s.CanNext(),
		PageSizeOptions: append([]int(nil), PageSizeOptions...),
	}
}
