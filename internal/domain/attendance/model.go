package attendance

import "time"

// Log отметка присутствия
type Log struct {
	Timestamp time.Time `json:"timestamp"`
}

type LogsResponse struct {
	Logs []Log `json:"logs"`
}

// Timestamps извлекает моменты времени из отметок
func Timestamps(logs []Log) []time.Time {
	out := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Timestamp)
	}
	return out
}
