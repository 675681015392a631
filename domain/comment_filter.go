package domain

const (
	SortOrderNewest = "newest"
	SortOrderOldest = "oldest"
)

// ListCommentsFilter is the store-level query for comment listings.
type ListCommentsFilter struct {
	TargetKind CommentTargetKind
	TargetID   string
	ParentID   string
	RootsOnly  bool
	Author     string

	Statuses       []CommentStatus
	IncludeDeleted bool

	Size    int
	Offset  int
	OrderBy []string
}

// ThreadPageFilter selects a page of root comments. A nil ReplyPageSize uses
// the configured default and 0 attaches no replies.
type ThreadPageFilter struct {
	TargetKind    CommentTargetKind `mapstructure:"target_kind" validate:"required,oneof=idea domain"`
	TargetID      string            `mapstructure:"target_id" validate:"required"`
	Page          int               `mapstructure:"page" validate:"omitempty,min=1"`
	PageSize      int               `mapstructure:"page_size" validate:"omitempty,min=1"`
	ReplyPageSize *int              `mapstructure:"reply_page_size" validate:"omitempty,min=0"`
	SortOrder     string            `mapstructure:"sort_order" validate:"omitempty,oneof=newest oldest"`
}

type ReplyPageFilter struct {
	ParentID  string `mapstructure:"parent_id" validate:"required"`
	Page      int    `mapstructure:"page" validate:"omitempty,min=1"`
	PageSize  int    `mapstructure:"page_size" validate:"omitempty,min=1"`
	SortOrder string `mapstructure:"sort_order" validate:"omitempty,oneof=newest oldest"`
}

type SearchCommentsFilter struct {
	Query      string            `mapstructure:"q" validate:"required"`
	TargetKind CommentTargetKind `mapstructure:"target_kind" validate:"omitempty,oneof=idea domain comment"`
	TargetID   string            `mapstructure:"target_id" validate:"required_with=TargetKind"`
	Size       int               `mapstructure:"size" validate:"omitempty,min=1"`
	Offset     int               `mapstructure:"offset" validate:"omitempty,min=0"`
}

type ListAuthorCommentsFilter struct {
	Author string `mapstructure:"author" validate:"required"`
	Size   int    `mapstructure:"size" validate:"omitempty,min=1"`
	Offset int    `mapstructure:"offset" validate:"omitempty,min=0"`
}

// CommentPage is a paginated list of comments.
type CommentPage struct {
	Comments   []*Comment `json:"comments" yaml:"comments"`
	Page       int        `json:"page" yaml:"page"`
	PageSize   int        `json:"page_size" yaml:"page_size"`
	Total      int64      `json:"total" yaml:"total"`
	TotalPages int        `json:"total_pages" yaml:"total_pages"`
}

// NewCommentPage fills in the derived pagination fields.
func NewCommentPage(comments []*Comment, page, pageSize int, total int64) *CommentPage {
	if comments == nil {
		comments = []*Comment{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &CommentPage{
		Comments:   comments,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func (p *CommentPage) HasNextPage() bool {
	return p.Page < p.TotalPages
}

// SortOrderToOrderBy maps a sort order to an order-by expression on created_at.
func SortOrderToOrderBy(sortOrder string) []string {
	if sortOrder == SortOrderOldest {
		return []string{"created_at:asc"}
	}
	return []string{"created_at:desc"}
}
