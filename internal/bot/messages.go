package bot

import (
	"fmt"
	"strings"

	"github.com/foxseedlab/syncbot/internal/repository"
)

const (
	noHistoryReply          = "No syncs yet in this channel."
	historyUnavailableReply = "Sorry, I can't read the sync history right now."
	historyTimeLayout       = "Jan 2 15:04 MST"
)

func versionReply(botName, version string) string {
	return fmt.Sprintf("%s version %s", botName, version)
}

func historyReply(records []repository.DispatchRecord) string {
	if len(records) == 0 {
		return noHistoryReply
	}
	var b strings.Builder
	b.WriteString("Recent syncs in this channel:")
	for _, r := range records {
		fmt.Fprintf(&b, "\n- %s: %s (%s", r.DispatchedAt.UTC().Format(historyTimeLayout), strings.Join(r.Roster, ", "), r.Reason)
		if !r.Completed {
			b.WriteString(", interrupted")
		}
		b.WriteString(")")
	}
	return b.String()
}
