package health

import "time"

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body StatusResponse
}

// StatusResponse состояние сервера и активное хранилище
type StatusResponse struct {
	Status  string    `json:"status" example:"OK" doc:"Health status of the service"`
	Storage string    `json:"storage" example:"postgres" doc:"Active key-value backend"`
	Time    time.Time `json:"time" doc:"Server time, UTC"`
}
