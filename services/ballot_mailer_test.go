package services

import (
	"bytes"
	"testing"

	"github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	sent []*mail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*mail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, m...)
	return nil
}

func testMailConfig() MailConfig {
	return MailConfig{Host: "smtp.example.com", Port: 587, From: "league@example.com", To: "commish@example.com"}
}

func TestMailConfigEnabled(t *testing.T) {
	assert.True(t, testMailConfig().Enabled())
	cfg := testMailConfig()
	cfg.To = ""
	assert.False(t, cfg.Enabled())
	assert.False(t, MailConfig{}.Enabled())
}

func TestBallotMailerDisabled(t *testing.T) {
	mailer := NewBallotMailer(MailConfig{})
	assert.False(t, mailer.Enabled())
	assert.ErrorIs(t, mailer.Send(Ballot{Name: "Sam", Email: "sam@example.com"}), ErrMailerDisabled)
}

func TestBallotMailerSend(t *testing.T) {
	sender := &captureSender{}
	mailer := NewBallotMailer(testMailConfig())
	require.True(t, mailer.Enabled())
	mailer.sender = sender

	ballot := Ballot{Name: "Sam", Email: "sam@example.com", KeeperVote: "Yes", WeeklyVote: "No", WaiverVote: "Undecided"}
	require.NoError(t, mailer.Send(ballot))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"commish@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Rules vote: Sam"}, msg.GetHeader("Subject"))
	assert.Contains(t, msg.GetHeader("Reply-To")[0], "sam@example.com")

	var raw bytes.Buffer
	_, err := msg.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "Keeper League: Yes")
	assert.Contains(t, raw.String(), "Note: No note provided.")
}

func TestBallotMailerSendFailure(t *testing.T) {
	mailer := NewBallotMailer(testMailConfig())
	mailer.sender = &captureSender{err: errBoom}
	assert.ErrorIs(t, mailer.Send(Ballot{Name: "Sam", Email: "sam@example.com"}), errBoom)
}
