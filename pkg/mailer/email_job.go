package mailer

// Job kinds put on the notification queue.
const (
	KindWelcome        = "welcome"
	KindVerifyDecision = "verify_decision"
)

// EmailJob is the JSON payload placed on the RabbitMQ queue. Subject and
// Text are rendered by the worker from Kind when left empty.
type EmailJob struct {
	To       string `json:"to"`
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Text     string `json:"text,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}
