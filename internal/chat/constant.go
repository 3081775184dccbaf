package chat

const (
	// MaxMessageLength bounds a user message in characters.
	MaxMessageLength = 1000000

	// ClarificationResponse is sent when no catalog lookup could be chosen for a data request.
	ClarificationResponse = "Could you tell me a bit more? For example, the exact phone model, or your budget and what you will mostly use the phone for."

	DefaultEventLimit = 100
	MaxEventLimit     = 1000
)
