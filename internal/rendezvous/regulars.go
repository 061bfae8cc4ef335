package rendezvous

import (
	"slices"

	"github.com/samber/lo"
)

// regularsSet lives for the whole process, independently of sessions.
type regularsSet struct {
	nicks []string
}

func (r *regularsSet) contains(nick string) bool {
	return lo.Contains(r.nicks, nick)
}

func (r *regularsSet) add(nick string) (already bool) {
	if r.contains(nick) {
		return true
	}
	r.nicks = append(r.nicks, nick)
	return false
}

func (r *regularsSet) remove(nick string) (removed bool) {
	if !r.contains(nick) {
		return false
	}
	r.nicks = lo.Without(r.nicks, nick)
	return true
}

func (r *regularsSet) empty() bool {
	return len(r.nicks) == 0
}

func (r *regularsSet) list() []string {
	return slices.Clone(r.nicks)
}

func notifyRecipients(regulars []string, excluding string) []string {
	return lo.Without(lo.Uniq(regulars), excluding)
}
