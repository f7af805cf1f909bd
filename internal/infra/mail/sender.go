package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

type welcomeEmailData struct {
	Name    string
	Company string
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<p>Hi {{.Name}},</p>
<p>Welcome aboard! Your account for {{.Company}} is now active and your
account manager will reach out shortly.</p>
<p>The WorkVine team</p>
`))

// SendClientWelcome emails a newly onboarded client.
func (s *EmailSender) SendClientWelcome(to, name, company string) error {
	var body bytes.Buffer
	data := welcomeEmailData{Name: name, Company: company}
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome, %s!", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
