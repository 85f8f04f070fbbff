package catalog

type VideoType string

const (
	VideoYouTube VideoType = "youtube"
	VideoLocal   VideoType = "local"
)

// Category тематический раздел обучения
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	VideoCount  int    `json:"videoCount"`
}

// Video обучающее видео
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	YouTubeID   string    `json:"youtubeId,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	VideoType   VideoType `json:"videoType"`
	Duration    float64   `json:"duration" doc:"Длительность в секундах"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type VideosResponse struct {
	Videos []Video `json:"videos"`
}
