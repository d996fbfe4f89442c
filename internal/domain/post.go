package domain

import "time"

type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Post struct {
	ID       int          `json:"id"`
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	Date     time.Time    `json:"date"`
	Content  string       `json:"content"`
	Media    MediaList    `json:"media"`
	Category *CategoryRef `json:"category,omitempty"`
}

type SEOPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	URL         string `json:"url"`
}

type PostDetail struct {
	Post   Post        `json:"post"`
	Advert string      `json:"advert"`
	SEO    *SEOPayload `json:"seo,omitempty"`
}

type Navigation struct {
	Categories []string `json:"navbar_categories"`
}

type LatestNews struct {
	Main         *Post  `json:"main_post"`
	NonExclusive []Post `json:"non_exclusive_posts"`
	Exclusive    []Post `json:"exclusive_posts"`
}

type SportsTech struct {
	Sports []Post `json:"sport_posts"`
	Tech   []Post `json:"tech_posts"`
}

type Category struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CategoryPage struct {
	Category      Category      `json:"category"`
	Subcategories []CategoryRef `json:"subcategories"`
	Posts         []Post        `json:"posts"`
}

// FeaturedCategories maps a category name to its featured posts.
type FeaturedCategories map[string][]Post

// TimelineItem is one entry of a signed-in reader's personal feed.
type TimelineItem struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Media     string    `json:"media"`
	CreatedAt time.Time `json:"created_at"`
}
