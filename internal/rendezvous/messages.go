package rendezvous

import (
	"fmt"
	"strings"
	"time"
)

// CallsToAction is the pool the final countdown line is drawn from.
var CallsToAction = []string{
	"BANG, ZOOM, TO THE MOON, ALICE!",
	"BLAST OFF",
	"BRING IT ON HOME",
	"DOHOHO",
	"DYN-O-MITE!",
	"ENGAGE",
	"EPIC WIN",
	"GO",
	"GOGOGOGO",
	"GOGOGOGOGOGO",
	"GOOOO",
	"GOOOOOOO",
	"GOOOOOOOOOOOOO",
	"HIDDIT",
	"HIT IT",
	"IT'S MORPHIN' TIME",
	"MAKE IT SO",
	"METAL GEAR?!?!",
	"RIP IT",
	"SWEET SASSY MOLASSY",
	"YABBA DABBA DOO!",
}

var countdownNumbers = []string{"3", "2", "1"}

func startedReply(nick string, deadline time.Duration) string {
	return fmt.Sprintf(`%s has started a sync! Type "rdy" to join the sync! I will notify participants in %s, or type "sync" again or "go" when you're ready.`,
		nick, humanDuration(deadline))
}

func alreadyRunningReply(nick string) string {
	return fmt.Sprintf(`%s, there's already a sync going on. Join in on that one by saying "ready" or "rdy".`, nick)
}

func noSessionReply(nick, botName string) string {
	return fmt.Sprintf(`Sorry, %s, there's no sync going. Type "sync" to start one off! Want to be notified of all syncs? Add yourself as a regular by saying, "%s: sync add me".`,
		nick, botName)
}

func alreadyJoinedReply(nick string) string {
	return fmt.Sprintf(`Sorry, %s, you're already in the sync. Just wait for it to kick off automatically, or type "go" or "sync" to kick it off yourself.`, nick)
}

func joinedReply(nick string) string {
	return fmt.Sprintf(`%s, you've been added to the sync! Wait for others to join, or type "go" or "sync" to kick off the sync when you're ready.`, nick)
}

func regularAddedReply(nick, botName string) string {
	return fmt.Sprintf(`%s, you've been added to this channel's regular sync participants! You'll be notified whenever someone starts a new sync. If you don't want this to happen anymore, tell me so by saying, "%s: sync remove me".`,
		nick, botName)
}

func regularAlreadyReply(nick, botName string) string {
	return fmt.Sprintf(`%s, you're already a regular. You'll be notified whenever someone starts a new sync. If you don't want this to happen anymore, tell me so by saying, "%s: sync remove me".`,
		nick, botName)
}

func regularRemovedReply(nick string) string {
	return fmt.Sprintf("%s, you've been removed from this channel's regular sync participants!", nick)
}

func notRegularReply(nick, botName string) string {
	return fmt.Sprintf(`%s, you weren't a regular in the first place. You can always add yourself as a regular by saying, "%s: sync add me".`,
		nick, botName)
}

func regularsNotice(recipients []string) string {
	return fmt.Sprintf("Hey, %s, a new sync just started. Get ready. I'll notify you again at the countdown.",
		strings.Join(recipients, ", "))
}

func rosterAnnouncement(roster []string, lead time.Duration) string {
	return fmt.Sprintf("Hey, %s, it's time to sync in %s! Ready?", strings.Join(roster, ", "), humanDuration(lead))
}

var smallNumbers = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// humanDuration spells whole minutes or seconds up to ten ("five minutes") and falls back to
// time.Duration formatting otherwise.
func humanDuration(d time.Duration) string {
	for _, u := range []struct {
		unit time.Duration
		name string
	}{
		{time.Minute, "minute"},
		{time.Second, "second"},
	} {
		if d < u.unit || d%u.unit != 0 {
			continue
		}
		n := int(d / u.unit)
		if n >= len(smallNumbers) {
			break
		}
		if n == 1 {
			return "one " + u.name
		}
		return smallNumbers[n] + " " + u.name + "s"
	}
	return d.String()
}
