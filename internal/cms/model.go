package cms

import "time"

type Sermon struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"size:255;not null" json:"title"`
	SpeakerName        string    `gorm:"size:100" json:"speaker_name"`
	Date               time.Time `gorm:"not null" json:"date"`
	ScriptureReference string    `gorm:"size:255" json:"scripture_reference"`
	Notes              string    `gorm:"type:text" json:"notes"`
	AudioURL           string    `gorm:"size:500" json:"audio_url"`
	VideoURL           string    `gorm:"size:500" json:"video_url"`
}

type Page struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Slug    string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content string `gorm:"type:text" json:"content"`
	Status  string `gorm:"size:20;default:draft" json:"status"`
}

type Announcement struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Content     string     `gorm:"type:text" json:"content"`
	AuthorID    *uint      `json:"author_id"`
	PublishDate time.Time  `json:"publish_date"`
	ExpireDate  *time.Time `json:"expire_date"`
}

type Media struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	FilePath   string    `gorm:"size:500;not null" json:"file_path"`
	FileType   string    `gorm:"size:50" json:"file_type"`
	UploadedBy *uint     `json:"uploaded_by"`
	UploadDate time.Time `gorm:"autoCreateTime" json:"upload_date"`
}

func (Media) TableName() string { return "media" }

type ContactMessage struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  *uint     `json:"user_id"`
	Name    string    `gorm:"size:100" json:"name"`
	Email   string    `gorm:"size:255;not null" json:"email"`
	Subject string    `gorm:"size:255" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Date    time.Time `gorm:"autoCreateTime" json:"date"`
	Status  string    `gorm:"size:20;default:new" json:"status"`
}

type SiteSetting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value       string `gorm:"type:text" json:"value"`
	Description string `gorm:"size:255" json:"description"`
}

type NavigationMenu struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Location string `gorm:"size:50" json:"location"`

	Items []NavigationItem `gorm:"foreignKey:MenuID" json:"items,omitempty"`
}

type NavigationItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MenuID   uint   `gorm:"not null" json:"menu_id"`
	ParentID *uint  `json:"parent_id"`
	Label    string `gorm:"size:100;not null" json:"label"`
	URL      string `gorm:"size:255" json:"url"`
	Order    int    `gorm:"column:item_order;default:0" json:"order"`

	Children []NavigationItem `gorm:"-" json:"children,omitempty"`
}

// ===========================
// Request payloads

type CreateSermonRequest struct {
	Title              string `json:"title"`
	SpeakerName        string `json:"speaker_name"`
	Date               string `json:"date"`
	ScriptureReference string `json:"scripture_reference"`
	Notes              string `json:"notes"`
	AudioURL           string `json:"audio_url"`
	VideoURL           string `json:"video_url"`
}

type UpdateSermonRequest struct {
	Title              *string `json:"title"`
	SpeakerName        *string `json:"speaker_name"`
	Date               *string `json:"date"`
	ScriptureReference *string `json:"scripture_reference"`
	Notes              *string `json:"notes"`
	AudioURL           *string `json:"audio_url"`
	VideoURL           *string `json:"video_url"`
}

type CreatePageRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

type UpdatePageRequest struct {
	Title   *string `json:"title"`
	Slug    *string `json:"slug"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

type CreateAnnouncementRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	AuthorID    *uint      `json:"author_id"`
	PublishDate *time.Time `json:"publish_date"`
	ExpireDate  *time.Time `json:"expire_date"`
}

type UpdateAnnouncementRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	PublishDate *time.Time `json:"publish_date"`
	ExpireDate  *time.Time `json:"expire_date"`
}

type CreateMediaRequest struct {
	Filename   string `json:"filename"`
	FilePath   string `json:"file_path"`
	FileType   string `json:"file_type"`
	UploadedBy *uint  `json:"uploaded_by"`
}

type CreateContactMessageRequest struct {
	UserID  *uint  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateContactMessageRequest struct {
	Status *string `json:"status"`
}

type UpsertSiteSettingRequest struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type CreateMenuRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type UpdateMenuRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type CreateNavigationItemRequest struct {
	MenuID   uint   `json:"menu_id"`
	ParentID *uint  `json:"parent_id"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Order    int    `json:"order"`
}

type UpdateNavigationItemRequest struct {
	ParentID    *uint   `json:"parent_id"`
	ClearParent bool    `json:"clear_parent"`
	Label       *string `json:"label"`
	URL         *string `json:"url"`
	Order       *int    `json:"order"`
}
