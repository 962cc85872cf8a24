package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_NoMatch(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"RENT tractor 2026-02-16 kalyani",
		"hello there",
		"BOOK",
		"BOOK tractor kalyani",          // no date token
		"BOOK 2026-02-16 kalyani",       // empty item
		"BOOK tractor 2026-02-16",       // empty location
		"LABOR mason 2026-02-16",        // below minimum arity
		"LABOR mason",
		"BOOKING tractor 2026-02-16 x",  // keyword must match exactly
	}

	for _, input := range inputs {
		assert.Nilf(t, ParseCommand(input), "input %q should not parse", input)
	}
}

func TestParseCommand_Help(t *testing.T) {
	for _, input := range []string{"HELP", "help", "help anything", "Help me please"} {
		cmd := ParseCommand(input)
		require.NotNilf(t, cmd, "input %q should parse", input)
		assert.Equal(t, CommandHelp, cmd.Kind)
	}
}

func TestParseCommand_MachineryBooking(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		item     string
		date     string
		location string
	}{
		{
			name:     "single word item",
			input:    "BOOK tractor 2026-02-16 kalyani",
			item:     "tractor",
			date:     "2026-02-16",
			location: "kalyani",
		},
		{
			name:     "multi word item anchored by date",
			input:    "BOOK mini tractor 2026-02-16 kalyani",
			item:     "mini tractor",
			date:     "2026-02-16",
			location: "kalyani",
		},
		{
			name:     "multi word location",
			input:    "BOOK harvester 2026-03-01 near kalyani station",
			item:     "harvester",
			date:     "2026-03-01",
			location: "near kalyani station",
		},
		{
			name:     "case-insensitive keyword, item folded, location preserved",
			input:    "book Mini Tractor 2026-02-16 Kalyani",
			item:     "mini tractor",
			date:     "2026-02-16",
			location: "Kalyani",
		},
		{
			name:     "date shape is not calendar-validated here",
			input:    "BOOK tractor 9999-99-99 kalyani",
			item:     "tractor",
			date:     "9999-99-99",
			location: "kalyani",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			require.NotNil(t, cmd)
			assert.Equal(t, CommandMachineryBooking, cmd.Kind)
			assert.Equal(t, tt.item, cmd.Item)
			assert.Equal(t, tt.date, cmd.Date)
			assert.Equal(t, tt.location, cmd.Location)
		})
	}
}

func TestParseCommand_LabourRequest(t *testing.T) {
	cmd := ParseCommand("LABOR mason 5 2026-02-16")
	require.NotNil(t, cmd)
	assert.Equal(t, CommandLabourRequest, cmd.Kind)
	assert.Equal(t, "mason", cmd.Skill)
	assert.Equal(t, 5, cmd.Quantity)
	assert.Equal(t, "2026-02-16", cmd.Date)
}

func TestParseCommand_LabourRequest_SkillFoldedDateRaw(t *testing.T) {
	cmd := ParseCommand("labor MASON 2 tomorrow")
	require.NotNil(t, cmd)
	assert.Equal(t, CommandLabourRequest, cmd.Kind)
	assert.Equal(t, "mason", cmd.Skill)
	assert.Equal(t, 2, cmd.Quantity)
	assert.Equal(t, "tomorrow", cmd.Date)
}

func TestParseCommand_LabourRequest_NonNumericQuantity(t *testing.T) {
	cmd := ParseCommand("LABOR mason five 2026-02-16")
	require.NotNil(t, cmd)
	assert.Equal(t, CommandLabourRequest, cmd.Kind)
	assert.Zero(t, cmd.Quantity)
}
