package handlers

import (
	"html/template"
	"net/http"

	"league-history/interfaces"
	"league-history/logging"
	"league-history/services"
)

// VoteHandler serves the rules voting form. Ballots are never stored; when a
// notifier is configured each accepted ballot is forwarded through it.
type VoteHandler struct {
	renderer
	notifier interfaces.BallotNotifierInterface
}

// NewVoteHandler creates a new vote handler. notifier may be nil.
func NewVoteHandler(templates *template.Template, leagueName string, notifier interfaces.BallotNotifierInterface) *VoteHandler {
	return &VoteHandler{
		notifier: notifier,
		renderer: renderer{
			templates:  templates,
			leagueName: leagueName,
			logger:     logging.WithPrefix("VoteHandler"),
		},
	}
}

type voteData struct {
	Page
	Ballot  services.Ballot
	Options []string
	Error   string
}

// Form handles GET /vote
func (h *VoteHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "vote.html", voteData{
		Page:    h.page(r, "Rules Vote"),
		Options: services.VoteOptions,
	})
}

// Submit handles POST /vote - validates and renders the thank-you summary
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	ballot := services.BallotFromForm(r.PostForm)
	if err := ballot.Validate(); err != nil {
		h.render(w, http.StatusUnprocessableEntity, "vote.html", voteData{
			Page:    h.page(r, "Rules Vote"),
			Ballot:  ballot,
			Options: services.VoteOptions,
			Error:   services.BallotIncompleteMessage,
		})
		return
	}

	if h.notifier != nil && h.notifier.Enabled() {
		if err := h.notifier.Send(ballot); err != nil {
			h.render(w, http.StatusBadGateway, "vote.html", voteData{
				Page:    h.page(r, "Rules Vote"),
				Ballot:  ballot,
				Options: services.VoteOptions,
				Error:   services.BallotDeliveryMessage,
			})
			return
		}
	}

	h.logger.Infof("Vote received from %s", ballot.Name)
	h.render(w, http.StatusOK, "vote_thanks.html", voteData{
		Page:   h.page(r, "Thank You"),
		Ballot: ballot,
	})
}
