// Package command turns chat text into sync actions.
package command

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var ErrNotACommand = errors.New("not a command")

type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionJoin
	ActionTrigger
	ActionAddRegular
	ActionRemoveRegular
	ActionVersion
	ActionHistory
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionJoin:
		return "join"
	case ActionTrigger:
		return "trigger"
	case ActionAddRegular:
		return "add_regular"
	case ActionRemoveRegular:
		return "remove_regular"
	case ActionVersion:
		return "version"
	case ActionHistory:
		return "history"
	default:
		return "none"
	}
}

// Command is a recognized action together with who issued it and where.
type Command struct {
	ChannelID string `validate:"required"`
	Nick      string `validate:"required"`
	Action    Action `validate:"required,min=1,max=7"`
}

type rule struct {
	pattern *regexp.Regexp
	action  Action
}

// Bare words are matched case-sensitively and need no addressing.
var bareRules = []rule{
	{regexp.MustCompile(`^sync\b`), ActionStart},
	{regexp.MustCompile(`^r(ea)?dy$`), ActionJoin},
	{regexp.MustCompile(`^go\b`), ActionTrigger},
}

// Addressed rules apply to the text following the bot's name or mention.
var addressedRules = []rule{
	{regexp.MustCompile(`(?i)^(sync )?remove( me)?\b`), ActionRemoveRegular},
	{regexp.MustCompile(`(?i)^(sync )?(regular|add)( me)?\b`), ActionAddRegular},
	{regexp.MustCompile(`(?i)^(sync )?history\b`), ActionHistory},
	{regexp.MustCompile(`(?i)^version\b`), ActionVersion},
}

// Parser recognizes commands addressed to a bot with the given name and user id.
type Parser struct {
	prefixes []*regexp.Regexp
}

func NewParser(botName, botUserID string) *Parser {
	p := &Parser{}
	if botName != "" {
		p.prefixes = append(p.prefixes, regexp.MustCompile(`(?i)^`+regexp.QuoteMeta(botName)+`[,:]?\s+`))
	}
	if botUserID != "" {
		p.prefixes = append(p.prefixes, regexp.MustCompile(`^<@!?`+regexp.QuoteMeta(botUserID)+`>[,:]?\s*`))
	}
	return p
}

// Parse returns the command carried by text, or ErrNotACommand. The result has been validated.
func (p *Parser) Parse(channelID, nick, text string) (Command, error) {
	action := p.recognize(strings.TrimSpace(text))
	if action == ActionNone {
		return Command{}, ErrNotACommand
	}
	cmd := Command{ChannelID: channelID, Nick: nick, Action: action}
	if err := validate.Struct(cmd); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func (p *Parser) recognize(text string) Action {
	for _, prefix := range p.prefixes {
		if loc := prefix.FindStringIndex(text); loc != nil {
			return match(addressedRules, strings.TrimSpace(text[loc[1]:]))
		}
	}
	return match(bareRules, text)
}

func match(rules []rule, text string) Action {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.action
		}
	}
	return ActionNone
}
