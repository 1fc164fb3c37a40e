package services

import (
	"errors"
	"net/url"
	"strings"
)

// ErrBallotIncomplete is returned when a ballot is missing the name or email
var ErrBallotIncomplete = errors.New("name and email are required")

// BallotIncompleteMessage is shown on the form when validation fails
const BallotIncompleteMessage = "Please fill out both your name and email."

// VoteOptions are the choices offered for each rule proposal
var VoteOptions = []string{"Yes", "No", "Undecided"}

// Ballot is one submitted rules vote. Ballots are not stored.
type Ballot struct {
	Name       string
	Email      string
	KeeperVote string
	WeeklyVote string
	WaiverVote string
	Note       string
}

// BallotFromForm reads a ballot from the submitted vote form
func BallotFromForm(form url.Values) Ballot {
	return Ballot{
		Name:       strings.TrimSpace(form.Get("name")),
		Email:      strings.TrimSpace(form.Get("email")),
		KeeperVote: form.Get("keeperVote"),
		WeeklyVote: form.Get("weeklyVote"),
		WaiverVote: form.Get("waiverVote"),
		Note:       strings.TrimSpace(form.Get("note")),
	}
}

// Validate requires a name and an email
func (b Ballot) Validate() error {
	if b.Name == "" || b.Email == "" {
		return ErrBallotIncomplete
	}
	return nil
}

// NoteOrDefault returns the note, or a placeholder when none was given
func (b Ballot) NoteOrDefault() string {
	if b.Note == "" {
		return "No note provided."
	}
	return b.Note
}

// VoteLine is one row of the thank-you summary
type VoteLine struct {
	Label string
	Value string
}

// Summary lists the submitted choices in form order
func (b Ballot) Summary() []VoteLine {
	return []VoteLine{
		{Label: "Email", Value: b.Email},
		{Label: "Keeper League", Value: b.KeeperVote},
		{Label: "Weekly High Score", Value: b.WeeklyVote},
		{Label: "Waiver Wire", Value: b.WaiverVote},
		{Label: "Note", Value: b.NoteOrDefault()},
	}
}
