package email

// Message is one outbound email. Only HTML bodies are sent; every
// template renders to HTML.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

// TemplateData feeds the HTML templates.
type TemplateData map[string]interface{}

// DigestJob is one matched job inside an alert digest email.
type DigestJob struct {
	Title    string
	Company  string
	Location string
	Salary   string
}

// Built-in template names.
const (
	TemplateWelcome            = "welcome"
	TemplateApplicationStatus  = "application_status"
	TemplateAlertDigest        = "alert_digest"
	TemplateVerificationResult = "verification_result"
)
