package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppName      = "SmartMatch"
	AppUserAgent = "SmartMatch-Client/0.1"
	AppVersion   = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the Smart Match conversation. Messages are
// immutable once created; the transcript is append-only except for a full
// reset.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewUserMessage(content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func NewAssistantMessage(content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Persona is the backend-inferred lifestyle summary. The client renders it
// as-is and never interprets the fields.
type Persona struct {
	Label          string   `json:"label"`
	PrimaryNeeds   []string `json:"primary_needs"`
	SecondaryNeeds []string `json:"secondary_needs"`
	Constraints    []string `json:"constraints"`
}

type CarSpecs struct {
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	RawName      string `json:"raw_name,omitempty"`
	Year         int    `json:"year,omitempty"`
	Seats        int    `json:"seats,omitempty"`
	KmDriven     int    `json:"km_driven,omitempty"`
	Price        int    `json:"price,omitempty"`
	PriceBand    string `json:"price_band,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
	Drivetrain   string `json:"drivetrain,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Tags         string `json:"tags,omitempty"`
}

// Match is one recommended vehicle with its lifestyle fit score.
type Match struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	ImageURL  string    `json:"image_url,omitempty"`
	PriceBand string    `json:"price_band,omitempty"`
	BodyType  string    `json:"body_type,omitempty"`
	Specs     *CarSpecs `json:"specs,omitempty"`
}

// RecommendResponse is the unit persisted to the session store and restored
// on the next start.
type RecommendResponse struct {
	Persona Persona `json:"persona"`
	Matches []Match `json:"matches"`
}

type HealthStatus struct {
	Status string `json:"status"`
	Env    string `json:"env,omitempty"`
}

func (h HealthStatus) OK() bool {
	return h.Status == "ok"
}
