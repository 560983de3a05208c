package domain

// Plan is the read-only curriculum tree. It is loaded once and never mutated.
type Plan struct {
	Weeks []Week
}

type Week struct {
	Week      int           `json:"week"`
	Phase     int           `json:"phase"`
	Title     BilingualText `json:"title"`
	Objective BilingualText `json:"objective"`
	Days      []Day         `json:"days"`
}

type Day struct {
	Key         string        `json:"key"`
	Day         BilingualText `json:"day"`
	Topic       BilingualText `json:"topic"`
	Tasks       []Task        `json:"tasks"`
	Resources   []Resource    `json:"resources"`
	NotesPrompt NotesPrompt   `json:"notes_prompt"`
}

// Task is the atomic unit of completion. IDs are unique across the plan.
type Task struct {
	ID          string        `json:"id"`
	Type        TaskType      `json:"type"`
	Duration    int           `json:"duration"` // minutes
	Description BilingualText `json:"description"`
}

type Resource struct {
	Type  ResourceType `json:"type"`
	Title string       `json:"title"`
	URL   string       `json:"url"`
}

type NotesPrompt struct {
	Title  BilingualText   `json:"title"`
	Points []BilingualText `json:"points"`
}

// TaskRef locates a task inside the plan.
type TaskRef struct {
	Task *Task
	Week *Week
	Day  *Day
}

// FindWeek returns the week with the given number, or nil.
func (p *Plan) FindWeek(number int) *Week {
	if p == nil {
		return nil
	}
	for i := range p.Weeks {
		if p.Weeks[i].Week == number {
			return &p.Weeks[i]
		}
	}
	return nil
}

// FindTask returns the task with the given ID and its enclosing week and day.
func (p *Plan) FindTask(id string) (TaskRef, bool) {
	if p == nil {
		return TaskRef{}, false
	}
	for wi := range p.Weeks {
		w := &p.Weeks[wi]
		for di := range w.Days {
			d := &w.Days[di]
			for ti := range d.Tasks {
				if d.Tasks[ti].ID == id {
					return TaskRef{Task: &d.Tasks[ti], Week: w, Day: d}, true
				}
			}
		}
	}
	return TaskRef{}, false
}

// AllTasks flattens every task in plan order.
func (p *Plan) AllTasks() []Task {
	if p == nil {
		return nil
	}
	var tasks []Task
	for _, w := range p.Weeks {
		tasks = append(tasks, w.Tasks()...)
	}
	return tasks
}

// FindDay returns the day with the given key, or nil.
func (w *Week) FindDay(key string) *Day {
	if w == nil {
		return nil
	}
	for i := range w.Days {
		if w.Days[i].Key == key {
			return &w.Days[i]
		}
	}
	return nil
}

// Tasks flattens the tasks of every day in the week.
func (w *Week) Tasks() []Task {
	var tasks []Task
	for _, d := range w.Days {
		tasks = append(tasks, d.Tasks...)
	}
	return tasks
}

// TotalMinutes sums the planned duration of the day's tasks.
func (d *Day) TotalMinutes() int {
	total := 0
	for _, t := range d.Tasks {
		total += t.Duration
	}
	return total
}
