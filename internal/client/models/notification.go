package models

// NotificationFilter selects a page of notifications. IsRead is a pointer
// so "unread only" (false) can be expressed.
type NotificationFilter struct {
	Page   int
	Limit  int
	IsRead *bool
	Type   string
}

type Notification struct {
	NotificationID int64  `json:"notification_id"`
	UserID         int64  `json:"user_id"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	AudienceType   string `json:"audience_type"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
}

type Notifications struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	UnreadCount   int            `json:"unread_count"`
	Page          int            `json:"page"`
	TotalPages    int            `json:"total_pages"`
}

type NotificationRead struct {
	Message        string `json:"message"`
	NotificationID int64  `json:"notification_id"`
	IsRead         bool   `json:"is_read"`
}

type NotificationsMarked struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
}

type NotificationDeleted struct {
	Message               string `json:"message"`
	DeletedNotificationID int64  `json:"deleted_notification_id"`
}

type NotificationPreferences struct {
	PrefID             int64 `json:"pref_id"`
	UserID             int64 `json:"user_id"`
	AllowEmail         bool  `json:"allow_email"`
	AllowAuthorUpdates bool  `json:"allow_author_updates"`
	AllowPremiumOffers bool  `json:"allow_premium_offers"`
}

// NotificationPreferencesUpdate only sends the flags that are set.
type NotificationPreferencesUpdate struct {
	AllowEmail         *bool `json:"allow_email,omitempty"`
	AllowAuthorUpdates *bool `json:"allow_author_updates,omitempty"`
	AllowPremiumOffers *bool `json:"allow_premium_offers,omitempty"`
}

type NotificationPreferencesResponse struct {
	Message     string                  `json:"message"`
	Preferences NotificationPreferences `json:"preferences"`
}
