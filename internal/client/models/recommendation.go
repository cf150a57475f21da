package models

type RecommendationSource string

const (
	SourceCustomAlgorithm RecommendationSource = "custom_algorithm"
	SourceFallback        RecommendationSource = "fallback"
)

type Recommendation struct {
	BookID        int64   `json:"book_id"`
	Title         string  `json:"title"`
	Summary       string  `json:"summary,omitempty"`
	CoverImageURL string  `json:"cover_image_url,omitempty"`
	AverageRating float64 `json:"average_rating"`
	PublishDate   string  `json:"publish_date,omitempty"`
	PublishYear   int     `json:"publish_year,omitempty"`
	Authors       string  `json:"authors"`
	Genres        string  `json:"genres"`
	Reason        string  `json:"reason"`
}

// Recommendations reports which engine produced the result in Source.
type Recommendations struct {
	Recommendations   []Recommendation     `json:"recommendations"`
	Total             int                  `json:"total"`
	Source            RecommendationSource `json:"source"`
	HasFavoriteGenres bool                 `json:"has_favorite_genres"`
}

// EventType is the kind of reader interaction fed back to the
// recommender.
type EventType string

const (
	EventView      EventType = "view"
	EventRate      EventType = "rate"
	EventReview    EventType = "review"
	EventAddToList EventType = "add_to_list"
	EventComplete  EventType = "complete"
)

func (e EventType) Valid() bool {
	switch e {
	case EventView, EventRate, EventReview, EventAddToList, EventComplete:
		return true
	}
	return false
}

type Interaction struct {
	BookID     int64     `json:"book_id"`
	EventType  EventType `json:"event_type"`
	EventValue *float64  `json:"event_value,omitempty"`
}

type InteractionResponse struct {
	Message   string    `json:"message"`
	EventType EventType `json:"event_type"`
	BookID    int64     `json:"book_id"`
	Timestamp int64     `json:"timestamp"`
}
