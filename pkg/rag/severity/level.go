package severity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is the escalation label of a message, ordered LOW < MODERATE < HIGH < CRISIS.
type Level string

const (
	Low      Level = "LOW"
	Moderate Level = "MODERATE"
	High     Level = "HIGH"
	Crisis   Level = "CRISIS"
)

var ranks = map[Level]int{
	Low:      0,
	Moderate: 1,
	High:     2,
	Crisis:   3,
}

// Parse accepts exactly one of the four labels, trimmed and case-insensitive.
// Output with more than one token is rejected.
func Parse(label string) (Level, error) {
	fields := strings.Fields(label)
	if len(fields) != 1 {
		return "", fmt.Errorf("severity label must be a single token, got %q", label)
	}
	level := Level(strings.ToUpper(fields[0]))
	if _, ok := ranks[level]; !ok {
		return "", fmt.Errorf("unknown severity label %q", label)
	}
	return level, nil
}

// Rank returns -1 for a zero or unknown Level.
func (l Level) Rank() int {
	if r, ok := ranks[l]; ok {
		return r
	}
	return -1
}

// IsElevated reports HIGH and CRISIS.
func (l Level) IsElevated() bool {
	return l.Rank() >= ranks[High]
}

func (l Level) String() string {
	return string(l)
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
