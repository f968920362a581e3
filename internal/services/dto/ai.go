package dto

// --- Career Advisor ---

// ChatMessage is one turn of an advisor conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

type CareerAdviceRequest struct {
	Message string        `json:"message" validate:"required,min=2,max=2000"`
	History []ChatMessage `json:"history,omitempty" validate:"omitempty,max=20,dive"`
}

type CareerAdviceResponse struct {
	Reply string `json:"reply"`
	// Degraded is set when the advisor answered from built-in guidance
	// because no language model is configured.
	Degraded bool `json:"degraded,omitempty"`
}
