package rendezvous

import (
	"fmt"
	"strings"
)

// TriggerPolicy decides who may dispatch an open session early with RequestTrigger.
type TriggerPolicy int

const (
	// TriggerPolicyMembers lets only participants and regulars trigger.
	TriggerPolicyMembers TriggerPolicy = iota
	// TriggerPolicyAnyone lets any nick in the channel trigger.
	TriggerPolicyAnyone
)

func ParseTriggerPolicy(s string) (TriggerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "members":
		return TriggerPolicyMembers, nil
	case "anyone":
		return TriggerPolicyAnyone, nil
	default:
		return TriggerPolicyMembers, fmt.Errorf("unknown trigger policy %q", s)
	}
}

func (p TriggerPolicy) String() string {
	if p == TriggerPolicyAnyone {
		return "anyone"
	}
	return "members"
}
