package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type InteractionRequest struct {
	Kind string `json:"kind"`
}
