package services

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"league-history/logging"

	"github.com/go-mail/mail/v2"
)

// BallotDeliveryMessage is shown when a valid ballot could not be forwarded
const BallotDeliveryMessage = "Your vote could not be delivered. Please try again later."

// MailConfig holds SMTP settings for forwarding ballots to the commissioner
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	To       string
	Timeout  time.Duration
}

// Enabled returns true when a server, sender and recipient are set
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.Port > 0 && c.From != "" && c.To != ""
}

type messageSender interface {
	DialAndSend(m ...*mail.Message) error
}

// BallotMailer emails each accepted ballot to the league commissioner
type BallotMailer struct {
	config MailConfig
	sender messageSender
	logger *logging.Logger
}

func NewBallotMailer(config MailConfig) *BallotMailer {
	m := &BallotMailer{
		config: config,
		logger: logging.WithPrefix("BallotMailer"),
	}
	if config.Enabled() {
		dialer := mail.NewDialer(config.Host, config.Port, config.Username, config.Password)
		dialer.StartTLSPolicy = mail.OpportunisticStartTLS
		if config.Timeout > 0 {
			dialer.Timeout = config.Timeout
		}
		m.sender = dialer
	}
	return m
}

// Enabled returns true when ballots will be mailed
func (m *BallotMailer) Enabled() bool {
	return m.sender != nil
}

var ballotHTML = template.Must(template.New("ballot").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>Rules vote from {{.Name}}</h2>
  <table cellpadding="4">
    {{range .Lines}}<tr><th align="left">{{.Label}}</th><td>{{.Value}}</td></tr>
    {{end}}
  </table>
</body>
</html>`))

// Send forwards a validated ballot. The voter is set as Reply-To.
func (m *BallotMailer) Send(ballot Ballot) error {
	if !m.Enabled() {
		return ErrMailerDisabled
	}

	text := fmt.Sprintf("Rules vote from %s\n\n", ballot.Name)
	for _, line := range ballot.Summary() {
		text += fmt.Sprintf("%s: %s\n", line.Label, line.Value)
	}

	var html bytes.Buffer
	data := struct {
		Name  string
		Lines []VoteLine
	}{ballot.Name, ballot.Summary()}
	if err := ballotHTML.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to render ballot email: %w", err)
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.config.From, m.config.FromName)
	msg.SetHeader("To", m.config.To)
	msg.SetAddressHeader("Reply-To", ballot.Email, ballot.Name)
	msg.SetHeader("Subject", "Rules vote: "+ballot.Name)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html.String())

	if err := m.sender.DialAndSend(msg); err != nil {
		BallotsMailed.WithLabelValues("error").Inc()
		m.logger.Errorf("Failed to mail ballot from %s: %v", ballot.Name, err)
		return fmt.Errorf("failed to send ballot email: %w", err)
	}

	BallotsMailed.WithLabelValues("sent").Inc()
	m.logger.Infof("Ballot from %s mailed to %s", ballot.Name, m.config.To)
	return nil
}
