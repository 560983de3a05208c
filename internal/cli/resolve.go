package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
)

// errNoPlan is returned by commands that need the curriculum when none is
// loaded.
var errNoPlan = errors.New("no learning plan loaded")

// resolveWeek parses an optional week argument, defaulting to the current
// week.
func resolveWeek(s store.AppState, args []string) (*domain.Week, error) {
	if s.Plan == nil {
		return nil, errNoPlan
	}
	number := s.Progress.CurrentWeek
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("week must be a positive number, got %q", args[0])
		}
		number = n
	}
	w := s.Plan.FindWeek(number)
	if w == nil {
		return nil, fmt.Errorf("week %d is not in the plan", number)
	}
	return w, nil
}

// resolveWeekDay parses optional [week] [day] arguments. A missing day
// defaults to the current day when the week has it, else the week's first
// day.
func resolveWeekDay(s store.AppState, args []string) (*domain.Week, *domain.Day, error) {
	w, err := resolveWeek(s, args)
	if err != nil {
		return nil, nil, err
	}
	key := s.Progress.CurrentDay
	if len(args) > 1 {
		key = args[1]
	} else if w.FindDay(key) == nil && len(w.Days) > 0 {
		key = w.Days[0].Key
	}
	d := w.FindDay(key)
	if d == nil {
		return nil, nil, fmt.Errorf("day %q is not in week %d", key, w.Week)
	}
	return w, d, nil
}

// resolveNoteID accepts a full note ID or a unique prefix of one, as shown
// by `note list`.
func resolveNoteID(s store.AppState, input string) (string, error) {
	return resolveByPrefix(input, "note", len(s.Progress.Notes), func(i int) string {
		return s.Progress.Notes[i].ID
	})
}

// resolveSkillID accepts a full skill ID, a unique prefix, or an exact
// skill name.
func resolveSkillID(s store.AppState, input string) (string, error) {
	for _, sk := range s.Progress.Skills {
		if sk.Name == input {
			return sk.ID, nil
		}
	}
	return resolveByPrefix(input, "skill", len(s.Progress.Skills), func(i int) string {
		return s.Progress.Skills[i].ID
	})
}

func resolveByPrefix(input, kind string, n int, idAt func(int) string) (string, error) {
	for i := 0; i < n; i++ {
		if idAt(i) == input {
			return input, nil
		}
	}
	var match string
	for i := 0; i < n; i++ {
		id := idAt(i)
		if len(input) >= 4 && strings.HasPrefix(id, input) {
			if match != "" {
				return "", fmt.Errorf("%s id %q is ambiguous", kind, input)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%s %q not found", kind, input)
	}
	return match, nil
}
