package apply

import (
	"bufio"
	"io"
	"strings"

	"github.com/adomaitisc/gupy-automation/internal/models"
	"github.com/adomaitisc/gupy-automation/internal/ui"
	"github.com/rs/zerolog"
)

const (
	answerApply = "y"
	answerExit  = "exit"
)

// Decision is the operator's answer for one job.
type Decision int

const (
	DecisionSkip Decision = iota
	DecisionApply
	DecisionAbort
)

func (d Decision) String() string {
	switch d {
	case DecisionApply:
		return "apply"
	case DecisionAbort:
		return "abort"
	default:
		return "skip"
	}
}

// ParseDecision maps one input line to a decision. Matching is exact and
// case-sensitive; anything unrecognized skips.
func ParseDecision(line string) Decision {
	switch strings.TrimRight(line, "\r\n") {
	case answerApply:
		return DecisionApply
	case answerExit:
		return DecisionAbort
	default:
		return DecisionSkip
	}
}

// Summary reports how a walk ended.
type Summary struct {
	Presented int
	Applied   int
	Skipped   int
	Aborted   bool
}

// Walker presents jobs one by one and waits for a decision on each.
type Walker struct {
	in     *bufio.Scanner
	ui     *ui.UI
	logger zerolog.Logger
}

func NewWalker(in io.Reader, userInterface *ui.UI, logger zerolog.Logger) *Walker {
	return &Walker{in: bufio.NewScanner(in), ui: userInterface, logger: logger}
}

// Walk blocks on one input line per job. An "exit" answer or the end of
// input stops the walk before the next job is shown.
func (w *Walker) Walk(jobs []models.Job) Summary {
	var summary Summary
	for _, job := range jobs {
		w.present(job)
		summary.Presented++

		decision, ok := w.await()
		if !ok {
			decision = DecisionAbort
		}
		w.logger.Debug().
			Str("title", job.Title).
			Str("company", job.Company).
			Stringer("decision", decision).
			Msg("apply decision")

		switch decision {
		case DecisionAbort:
			w.ui.Blank()
			w.ui.Alertf("Exiting application.")
			summary.Aborted = true
			return summary
		case DecisionApply:
			w.ui.Notef("Applying...")
			if job.ApplicationURL != "" {
				w.ui.Field("Application", w.ui.LinkText(job.ApplicationURL))
			}
			summary.Applied++
		default:
			w.ui.Notef("Skipped job.")
			w.ui.Blank()
			summary.Skipped++
		}
	}
	return summary
}

func (w *Walker) present(job models.Job) {
	w.ui.Blank()
	w.ui.Field("Applying for", job.Title)
	w.ui.Field("Company", job.Company)
	w.ui.Field("Remote", remoteLabel(job.Remote))
}

func (w *Walker) await() (Decision, bool) {
	w.ui.Promptf("Apply for this one? (y/n/exit): ")
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			w.logger.Warn().Err(err).Msg("reading decision failed")
		}
		return DecisionAbort, false
	}
	return ParseDecision(w.in.Text()), true
}

func remoteLabel(remote bool) string {
	if remote {
		return "yes"
	}
	return "no"
}
