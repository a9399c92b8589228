// Package notify delivers import outcomes to managers by email.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"text/template"
	"time"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
	manager "github.com/rafaelmp/employee-import/internal/domain/manager"
)

type managerFinder interface {
	FindByID(ctx context.Context, id int64) (manager.Manager, error)
}

// Config carries SMTP settings. An empty Host switches the mailer to
// simulation mode: messages are logged instead of sent.
type Config struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

type Mailer struct {
	cfg      Config
	managers managerFinder
}

func NewMailer(cfg Config, managers managerFinder) *Mailer {
	if cfg.From == "" {
		cfg.From = "noreply@example.com"
	}
	return &Mailer{cfg: cfg, managers: managers}
}

var successBody = template.Must(template.New("success").Parse(`Hello, {{.ManagerName}}!

The CSV employee import has finished.

Total lines:  {{.Report.TotalLines}}
Processed:    {{.Report.Processed}}
Errors:       {{.Report.Errors}}
Finished at:  {{.Report.FinishedAt}}
{{if .Report.ErrorDetails}}
Rows with errors:
{{range .Report.ErrorDetails}}  line {{.Line}}:{{range $field, $messages := .Errors}}{{range $messages}}
    {{$field}}: {{.}}{{end}}{{end}}{{if .Message}}
    {{.Message}}{{end}}
{{end}}{{else}}
All records were imported successfully.
{{end}}`))

var failureBody = template.Must(template.New("failure").Parse(`Hello, {{.ManagerName}}!

The CSV employee import could not be completed.

Failed at: {{.FailedAt}}
Error:     {{.Error}}
`))

func (m *Mailer) SendSuccess(ctx context.Context, managerID int64, report domain.ImportReport) error {
	owner, err := m.managers.FindByID(ctx, managerID)
	if err != nil {
		return fmt.Errorf("resolve manager %d: %w", managerID, err)
	}

	subject := fmt.Sprintf("Employee import finished! %d OK | %d Errors", report.Processed, report.Errors)

	var body bytes.Buffer
	if err := successBody.Execute(&body, map[string]any{
		"ManagerName": owner.Name,
		"Report":      report,
	}); err != nil {
		return fmt.Errorf("render success mail: %w", err)
	}

	return m.send(owner.Email, subject, body.String())
}

func (m *Mailer) SendFailure(ctx context.Context, managerID int64, runErr error) error {
	owner, err := m.managers.FindByID(ctx, managerID)
	if err != nil {
		return fmt.Errorf("resolve manager %d: %w", managerID, err)
	}

	var body bytes.Buffer
	if err := failureBody.Execute(&body, map[string]any{
		"ManagerName": owner.Name,
		"FailedAt":    time.Now().UTC().Format(time.RFC3339),
		"Error":       runErr.Error(),
	}); err != nil {
		return fmt.Errorf("render failure mail: %w", err)
	}

	return m.send(owner.Email, "Employee Import Error", body.String())
}

func (m *Mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.cfg.From, to, subject, body)

	if m.cfg.Host == "" || m.cfg.Port == "" {
		slog.Info("smtp not configured, simulating email delivery",
			"to", to, "subject", subject)
		return nil
	}

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
