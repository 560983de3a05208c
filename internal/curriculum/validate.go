package curriculum

import (
	"fmt"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// Validate checks the structure of a plan and returns every problem found.
// Loading never calls it; the plan is used as is.
func Validate(plan *domain.Plan) []error {
	if plan == nil || len(plan.Weeks) == 0 {
		return []error{fmt.Errorf("plan has no weeks")}
	}

	var errs []error
	weekNums := make(map[int]bool)
	taskIDs := make(map[string]string)

	for wi, w := range plan.Weeks {
		prefix := fmt.Sprintf("weeks[%d]", wi)

		if w.Week <= 0 {
			errs = append(errs, fmt.Errorf("%s.week must be positive", prefix))
		} else if weekNums[w.Week] {
			errs = append(errs, fmt.Errorf("%s.week: duplicate week number %d", prefix, w.Week))
		} else {
			weekNums[w.Week] = true
		}
		if w.Title.EN == "" && w.Title.AR == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}

		errs = append(errs, validateDays(prefix, w.Days, taskIDs)...)
	}

	return errs
}

func validateDays(weekPrefix string, days []domain.Day, taskIDs map[string]string) []error {
	var errs []error
	keys := make(map[string]bool)

	for di, d := range days {
		prefix := fmt.Sprintf("%s.days[%d]", weekPrefix, di)

		if d.Key == "" {
			errs = append(errs, fmt.Errorf("%s.key is required", prefix))
		} else if keys[d.Key] {
			errs = append(errs, fmt.Errorf("%s.key: duplicate day key %q", prefix, d.Key))
		} else {
			keys[d.Key] = true
		}

		for ti, t := range d.Tasks {
			errs = append(errs, validateTask(fmt.Sprintf("%s.tasks[%d]", prefix, ti), t, taskIDs)...)
		}
		for ri, r := range d.Resources {
			if !domain.ValidResourceTypes[string(r.Type)] {
				errs = append(errs, fmt.Errorf("%s.resources[%d].type: invalid value %q", prefix, ri, r.Type))
			}
		}
	}

	return errs
}

func validateTask(prefix string, t domain.Task, taskIDs map[string]string) []error {
	var errs []error

	if t.ID == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	} else if first, dup := taskIDs[t.ID]; dup {
		errs = append(errs, fmt.Errorf("%s.id: duplicate task id %q (first seen at %s)", prefix, t.ID, first))
	} else {
		taskIDs[t.ID] = prefix
	}

	if !domain.ValidTaskTypes[string(t.Type)] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, t.Type))
	}
	if t.Duration < 0 {
		errs = append(errs, fmt.Errorf("%s.duration must be >= 0", prefix))
	}

	return errs
}
