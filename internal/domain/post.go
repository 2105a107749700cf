package domain

import "time"

type PostStatus string

const (
	StatusDraft   PostStatus = "draft"
	StatusPublish PostStatus = "publish"
)

// Post is the local copy of a story as kept by the CMS store.
type Post struct {
	ID         int64      `db:"id"`
	ExternalID string     `db:"external_id"`
	Type       string     `db:"post_type"`
	Title      string     `db:"title"`
	Excerpt    string     `db:"excerpt"`
	Content    string     `db:"content"`
	Status     PostStatus `db:"status"`
	AuthorID   int64      `db:"author_id"`
	PostDate   time.Time  `db:"post_date"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// PostFields are the CMS-native fields written on create or update.
// A zero AuthorID leaves the author untouched.
type PostFields struct {
	Title    string
	Excerpt  string
	Content  string
	Status   PostStatus
	Type     string
	PostDate time.Time
	AuthorID int64
	Tags     []string
}

// Attachment is a media file already attached to a post.
type Attachment struct {
	ID          int64  `db:"id"`
	PostID      int64  `db:"post_id"`
	Filename    string `db:"filename"`
	OriginalURL string `db:"original_url"`
	Title       string `db:"title"`
	MimeType    string `db:"mime_type"`
}

// Upload is a downloaded file waiting to be attached.
type Upload struct {
	Name        string
	TmpPath     string
	OriginalURL string
	Title       string
	MimeType    string
}

// Metadata keys stored against posts and attachments.
const (
	MetaStoryID          = "npr_story_id"
	MetaAPILink          = "npr_api_link"
	MetaHTMLLink         = "npr_html_link"
	MetaStoryContent     = "npr_story_content"
	MetaByline           = "npr_byline"
	MetaBylineLink       = "npr_byline_link"
	MetaMultiByline      = "npr_multi_byline"
	MetaAudio            = "npr_audio"
	MetaAudioM3U         = "npr_audio_m3u"
	MetaPubDate          = "npr_pub_date"
	MetaStoryDate        = "npr_story_date"
	MetaLastModifiedDate = "npr_last_modified_date"
	MetaRetrievedStory   = "npr_retrieved_story"
	MetaHasLayout        = "npr_has_layout"
	MetaHasVideo         = "npr_has_video"
	MetaImageCredit      = "npr_image_credit"
	MetaImageAgency      = "npr_image_agency"
	MetaImageCaption     = "npr_image_caption"
	MetaPushStoryError   = "npr_push_story_error"
)

// MetaKeys are the metadata keys a site may remap to its own fields.
type MetaKeys struct {
	StoryContent string
	Byline       string
	ImageCredit  string
	ImageAgency  string
}

func DefaultMetaKeys() MetaKeys {
	return MetaKeys{
		StoryContent: MetaStoryContent,
		Byline:       MetaByline,
		ImageCredit:  MetaImageCredit,
		ImageAgency:  MetaImageAgency,
	}
}

// Category is a local post category.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

// PostMessage announces a created or updated post.
type PostMessage struct {
	Action    string    `json:"action"`
	PostID    int64     `json:"post_id"`
	StoryID   string    `json:"story_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	HTMLLink  string    `json:"html_link,omitempty"`
	HasLayout bool      `json:"has_layout"`
	HasVideo  bool      `json:"has_video"`
	SyncedAt  time.Time `json:"synced_at"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)
