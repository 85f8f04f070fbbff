package catalog

import "fmt"

const thumbURL = "https://img.youtube.com/vi/%s/mqdefault.jpg"

// Default встроенный демонстрационный каталог.
// Используется для начального заполнения сервера и как запасной вариант на клиенте.
func Default() ([]Category, map[string][]Video) {
	videos := map[string][]Video{
		"emergency": {
			youtube("emergency-1", "emergency", "지하철 화재 초기 대응", "화재 발생 직후 승무원의 초기 조치 절차", "dQw4w9WgXcQ", 330),
			youtube("emergency-2", "emergency", "승객 대피 유도", "비상 상황에서 승객을 안전하게 대피시키는 방법", "dQw4w9WgXcQ", 435),
		},
		"troubleshooting": {
			youtube("troubleshooting-1", "troubleshooting", "출입문 고장 조치", "출입문이 닫히지 않을 때의 점검 순서", "W6NZfCO5SIk", 1200),
			youtube("troubleshooting-2", "troubleshooting", "제동 장치 이상 대응", "제동 장치 경보 발생 시 확인 사항", "W6NZfCO5SIk", 900),
			youtube("troubleshooting-3", "troubleshooting", "차내 방송 장치 취급", "방송 장치 전환과 비상 방송 절차", "W6NZfCO5SIk", 600),
		},
		"basic": {
			youtube("basic-1", "basic", "출고 전 점검", "운행 전 차량 점검 항목", "Ke90Tje7VS0", 1680),
			youtube("basic-2", "basic", "무선 교신 요령", "관제와의 표준 교신 절차", "O6P86uwfdR0", 1440),
		},
	}

	categories := []Category{
		{
			ID:          "emergency",
			Title:       "비상대응 조치",
			Description: "비상상황 발생 시 승무원 대응방법",
			Thumbnail:   "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=400&h=300&fit=crop",
		},
		{
			ID:          "troubleshooting",
			Title:       "고장조치 및 기기 취급",
			Description: "고장 발생 시 기기 취급 방법",
			Thumbnail:   "https://images.unsplash.com/photo-1706444739572-7d35d73fb1bb?w=400&h=300&fit=crop",
		},
		{
			ID:          "basic",
			Title:       "기본 업무",
			Description: "승무원의 기본 업무 능력 숙달",
			Thumbnail:   "https://images.unsplash.com/photo-1621770401232-39a944faa2df?w=400&h=300&fit=crop",
		},
	}
	for i := range categories {
		categories[i].VideoCount = len(videos[categories[i].ID])
	}

	return categories, videos
}

func youtube(id, category, title, description, ytID string, duration float64) Video {
	return Video{
		ID:          id,
		Title:       title,
		Description: description,
		YouTubeID:   ytID,
		VideoType:   VideoYouTube,
		Duration:    duration,
		Thumbnail:   fmt.Sprintf(thumbURL, ytID),
		Category:    category,
	}
}
