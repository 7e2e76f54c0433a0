package model

import "testing"

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "SEA", expected: "SEA"},
		{input: "sea", expected: "SEA"},
		{input: "Seahawks", expected: "SEA"},
		{input: "Seattle Seahawks", expected: "SEA"},
		{input: "SFO", expected: "SF"},
		{input: "GNB", expected: "GB"},
		{input: "WSH", expected: "WAS"},
		{input: " KC ", expected: "KC"},
		{input: "", expected: "FA"},
		{input: "not a team", expected: "FA"},
	}

	for _, tc := range tests {
		team := ParseTeam(tc.input)
		if team.String() != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, team.String())
		}
	}
}

func TestTeamEquals(t *testing.T) {
	if !ParseTeam("SEA").Equals(ParseTeam("Seahawks")) {
		t.Errorf("expected SEA to equal Seahawks")
	}
	if ParseTeam("SEA").Equals(ParseTeam("SF")) {
		t.Errorf("expected SEA to not equal SF")
	}
	if ParseTeam("SEA").Equals(nil) {
		t.Errorf("expected SEA to not equal nil")
	}
}

func TestFriendly(t *testing.T) {
	if f := ParseTeam("SEA").Friendly(); f != "Seattle Seahawks" {
		t.Errorf("unexpected friendly name: %s", f)
	}
	if f := TEAM_FA.Friendly(); f != "Free Agent" {
		t.Errorf("unexpected free agent name: %s", f)
	}
}
