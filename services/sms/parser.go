package sms

import (
	"regexp"
	"strconv"
	"strings"
)

// CommandKind classifies a parsed SMS command.
type CommandKind int

const (
	CommandMachineryBooking CommandKind = iota
	CommandLabourRequest
	CommandHelp
)

// Command is the structured intent produced from one SMS message.
// Fields are populated according to Kind; a command that cannot be fully
// populated is never returned (ParseCommand yields nil instead).
type Command struct {
	Kind CommandKind

	// Machinery booking fields.
	Item     string // lowercased machinery name, possibly multi-word
	Date     string // raw date token; calendar-validated by the orchestrator
	Location string // free-text delivery destination

	// Labour request fields.
	Skill    string // lowercased skill token
	Quantity int    // 0 when the quantity token was not a valid integer
}

// datePattern matches the YYYY-MM-DD token shape. It anchors the BOOK
// grammar; semantic calendar validation happens later.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseCommand turns free-text SMS into a Command, or nil when the text
// does not match the grammar:
//
//	BOOK <item...> <YYYY-MM-DD> <location...>
//	LABOR <skill> <quantity> <date>
//	HELP
//
// Keywords are case-insensitive. The BOOK form locates the first
// date-shaped token and treats everything before it as the item name and
// everything after it as the location, so multi-word machinery names
// like "mini tractor" need no quoting.
func ParseCommand(text string) *Command {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return nil
	}

	command := strings.ToUpper(parts[0])

	if command == "HELP" {
		return &Command{Kind: CommandHelp}
	}

	if len(parts) < 2 {
		return nil
	}

	switch command {
	case "BOOK":
		dateIndex := -1
		for i, p := range parts[1:] {
			if datePattern.MatchString(p) {
				dateIndex = i + 1
				break
			}
		}
		if dateIndex == -1 {
			return nil
		}

		item := strings.ToLower(strings.Join(parts[1:dateIndex], " "))
		location := strings.Join(parts[dateIndex+1:], " ")
		if item == "" || location == "" {
			return nil
		}

		return &Command{
			Kind:     CommandMachineryBooking,
			Item:     item,
			Date:     parts[dateIndex],
			Location: location,
		}

	case "LABOR":
		if len(parts) < 4 {
			return nil
		}

		// A non-numeric quantity token parses to 0; the orchestrator
		// rejects it rather than letting it reach a collaborator.
		quantity, err := strconv.Atoi(parts[2])
		if err != nil {
			quantity = 0
		}

		return &Command{
			Kind:     CommandLabourRequest,
			Skill:    strings.ToLower(parts[1]),
			Quantity: quantity,
			Date:     parts[3],
		}
	}

	return nil
}
