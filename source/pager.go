package source

// ContentPager is a single page of content results.
//
// Providers that aggregate everything into one response set HasMore to false;
// the zero value is a valid empty terminal page.
type ContentPager struct {
	Items   []*VideoSummary `json:"items"`
	HasMore bool            `json:"has_more"`
}

// NewContentPager wraps a fully materialized result set into a terminal page.
func NewContentPager(items []*VideoSummary) *ContentPager {
	return &ContentPager{Items: items, HasMore: false}
}

// Comment is a single user comment on a content item.
type Comment struct {
	Author  string `json:"author"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
}

// CommentPager is a single page of comments. Providers without a comment
// surface return an empty terminal page.
type CommentPager struct {
	Comments []Comment `json:"comments"`
	HasMore  bool      `json:"has_more"`
}
