package progress

import (
	"math"
	"time"
)

const (
	// CompletionThreshold доля просмотренного, после которой видео считается завершенным
	CompletionThreshold = 0.9
	// ReportCompletedPercent порог процента для отчета администратора
	ReportCompletedPercent = 80
)

// WatchProgress локальное состояние просмотра одного видео
type WatchProgress struct {
	ContentID      string    `json:"videoId"`
	WatchedSeconds float64   `json:"watchedSeconds"`
	Completed      bool      `json:"completed"`
	LastWatchedAt  time.Time `json:"lastWatchedAt"`
}

// Record серверная запись прогресса пользователя по видео
type Record struct {
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	EmployeeID  string    `json:"employeeId"`
	VideoID     string    `json:"videoId"`
	CategoryID  string    `json:"categoryId"`
	Progress    float64   `json:"progress"`
	WatchTime   float64   `json:"watchTime"`
	LastWatched time.Time `json:"lastWatched"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserSummary агрегированная статистика пользователя
type UserSummary struct {
	UserID          string    `json:"userId"`
	UserName        string    `json:"userName"`
	EmployeeID      string    `json:"employeeId"`
	TotalVideos     int       `json:"totalVideos"`
	CompletedVideos int       `json:"completedVideos"`
	AvgProgress     float64   `json:"avgProgress"`
	LastActivity    time.Time `json:"lastActivity"`
}

type Report struct {
	Progress []Record     `json:"progress"`
	Users    []UserSummary `json:"users"`
}

// Percentage возвращает процент просмотра в диапазоне [0, 100] с точностью до десятых.
func Percentage(watched, total float64) float64 {
	if total <= 0 || math.IsNaN(watched) || math.IsNaN(total) {
		return 0
	}
	ratio := math.Min(watched/total, 1)
	return Round1(clamp(ratio*100, 0, 100))
}

// IsCompleted watched >= 90% от общей длительности
func IsCompleted(watched, total float64) bool {
	if total <= 0 {
		return false
	}
	return watched >= CompletionThreshold*total
}

// Round1 округляет до одного знака после запятой
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
