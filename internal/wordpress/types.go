package wordpress

// Rendered is the WordPress REST representation of a rendered text field.
type Rendered struct {
	Rendered string `json:"rendered"`
	Raw      string `json:"raw,omitempty"`
}

// Post is a WordPress post in the REST v2 shape.
type Post struct {
	ID            int      `json:"id"`
	Date          string   `json:"date"`
	Modified      string   `json:"modified"`
	Slug          string   `json:"slug"`
	Status        string   `json:"status"`
	Link          string   `json:"link"`
	Title         Rendered `json:"title"`
	Content       Rendered `json:"content"`
	Excerpt       Rendered `json:"excerpt"`
	Author        int      `json:"author"`
	FeaturedMedia int      `json:"featured_media"`
	Categories    []int    `json:"categories,omitempty"`
	Tags          []int    `json:"tags,omitempty"`
}

// Page is a WordPress page.
type Page struct {
	ID       int      `json:"id"`
	Date     string   `json:"date"`
	Modified string   `json:"modified"`
	Slug     string   `json:"slug"`
	Status   string   `json:"status"`
	Link     string   `json:"link"`
	Title    Rendered `json:"title"`
	Content  Rendered `json:"content"`
	Parent   int      `json:"parent"`
	Author   int      `json:"author"`
}

// MediaItem is an attachment in the media library.
type MediaItem struct {
	ID        int      `json:"id"`
	Date      string   `json:"date"`
	Slug      string   `json:"slug"`
	Link      string   `json:"link"`
	Title     Rendered `json:"title"`
	AltText   string   `json:"alt_text"`
	Caption   Rendered `json:"caption"`
	MimeType  string   `json:"mime_type"`
	MediaType string   `json:"media_type"`
	SourceURL string   `json:"source_url"`
	Post      int      `json:"post"`
}

// User is a WordPress user account.
type User struct {
	ID       int      `json:"id"`
	Username string   `json:"username,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Slug     string   `json:"slug"`
	Link     string   `json:"link"`
	Roles    []string `json:"roles,omitempty"`
}

// ApplicationPassword is one revocable per-user credential.
type ApplicationPassword struct {
	UUID     string `json:"uuid"`
	AppID    string `json:"app_id"`
	Name     string `json:"name"`
	Created  string `json:"created"`
	LastUsed string `json:"last_used"`
	LastIP   string `json:"last_ip"`
}

// Comment is a comment on a post or page.
type Comment struct {
	ID         int      `json:"id"`
	Post       int      `json:"post"`
	Parent     int      `json:"parent"`
	Author     int      `json:"author"`
	AuthorName string   `json:"author_name"`
	Date       string   `json:"date"`
	Content    Rendered `json:"content"`
	Status     string   `json:"status"`
	Link       string   `json:"link"`
}

// Category is a category taxonomy term.
type Category struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Parent      int    `json:"parent"`
}

// Tag is a tag taxonomy term.
type Tag struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
}

// SiteSettings is the site-wide settings resource.
type SiteSettings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Email       string `json:"email"`
	Timezone    string `json:"timezone_string"`
	DateFormat  string `json:"date_format"`
	TimeFormat  string `json:"time_format"`
	StartOfWeek int    `json:"start_of_week"`
	Language    string `json:"language"`
}

// SearchResult is one hit from the site-wide search endpoint.
type SearchResult struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}
