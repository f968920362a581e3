package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager renders the built-in HTML email templates. Templates
// can be replaced at runtime, so access is guarded.
type TemplateManager struct {
	templates map[string]*template.Template
	mu        sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		// Built-ins are compiled at startup; a parse failure is a
		// programming error.
		if err := tm.Add(name, body); err != nil {
			panic(fmt.Sprintf("email: bad built-in template %s: %v", name, err))
		}
	}
	return tm
}

func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tm.mu.RLock()
	tpl, ok := tm.templates[name]
	tm.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) Add(name, body string) error {
	tpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	tm.mu.Lock()
	tm.templates[name] = tpl
	tm.mu.Unlock()
	return nil
}

var builtinTemplates = map[string]string{
	TemplateWelcome: `<html><body>
<h2>Welcome to the job portal, {{.Name}}!</h2>
<p>Your {{.Role}} account is ready.</p>
{{if .VerificationToken}}<p>Confirm your email address with this code: <b>{{.VerificationToken}}</b></p>{{end}}
<p>Good luck with your search.</p>
</body></html>`,

	TemplateApplicationStatus: `<html><body>
<h2>Application update</h2>
<p>Hi {{.Name}},</p>
<p>Your application for <b>{{.JobTitle}}</b> at {{.Company}} moved to status: <b>{{.Status}}</b>.</p>
</body></html>`,

	TemplateAlertDigest: `<html><body>
<h2>{{.AlertTitle}}: {{.MatchCount}} new {{if eq .MatchCount 1}}job{{else}}jobs{{end}}</h2>
<p>Hi {{.Name}}, these postings match your saved alert:</p>
<ul>
{{range .Jobs}}<li><b>{{.Title}}</b> at {{.Company}}{{if .Location}}, {{.Location}}{{end}}{{if .Salary}} ({{.Salary}}){{end}}</li>
{{end}}</ul>
</body></html>`,

	TemplateVerificationResult: `<html><body>
<h2>Company verification {{if .Approved}}approved{{else}}rejected{{end}}</h2>
<p>Hi {{.Name}},</p>
<p>The verification request for <b>{{.CompanyName}}</b> was {{if .Approved}}approved{{else}}rejected{{end}}.</p>
{{if .Note}}<p>Reviewer note: {{.Note}}</p>{{end}}
</body></html>`,
}
