package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
)

const skillAddedMessage = "Skill added successfully"

type skillService struct {
	st       StateStore
	notify   Notifier
	observer UseCaseObserver
}

func NewSkillService(st StateStore, notify Notifier, observers ...UseCaseObserver) SkillService {
	return &skillService{st: st, notify: notify, observer: useCaseObserverOrNoop(observers)}
}

func (s *skillService) Add(ctx context.Context, in SkillInput) (skill *domain.Skill, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "skill.add", startedAt, map[string]any{"category": in.Category}, &err)

	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		if s.notify != nil {
			s.notify.Warning(requiredFieldsMessage)
		}
		return nil, fmt.Errorf("skill name and category are required: %w", ErrValidation)
	}
	level := in.Proficiency
	if level == "" {
		level = domain.ProficiencyBeginner
	}
	if !level.Valid() {
		return nil, fmt.Errorf("unknown proficiency %q: %w", level, ErrValidation)
	}

	sk := domain.Skill{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Proficiency: level,
		Notes:       strings.TrimSpace(in.Notes),
	}
	s.st.Dispatch(store.UpdateSkill{Skill: sk})
	notifySuccess(s.notify, skillAddedMessage)
	return &sk, nil
}

func (s *skillService) SetProficiency(ctx context.Context, id string, level domain.Proficiency) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "skill.set_proficiency", startedAt, map[string]any{
		"skill_id":    id,
		"proficiency": string(level),
	}, &err)

	if !level.Valid() {
		return fmt.Errorf("unknown proficiency %q: %w", level, ErrValidation)
	}
	sk, ok := s.st.State().FindSkill(id)
	if !ok {
		return fmt.Errorf("skill %s: %w", id, ErrNotFound)
	}
	if sk.Proficiency == level {
		return nil
	}
	sk.Proficiency = level
	s.st.Dispatch(store.UpdateSkill{Skill: sk})
	return nil
}

func (s *skillService) SetNotes(ctx context.Context, id, notes string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "skill.set_notes", startedAt, map[string]any{"skill_id": id}, &err)

	sk, ok := s.st.State().FindSkill(id)
	if !ok {
		return fmt.Errorf("skill %s: %w", id, ErrNotFound)
	}
	sk.Notes = strings.TrimSpace(notes)
	s.st.Dispatch(store.UpdateSkill{Skill: sk})
	return nil
}

func (s *skillService) SeedDefaults(ctx context.Context) (added int, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "skill.seed_defaults", startedAt, map[string]any{"added": added}, &err)
	}()

	if len(s.st.State().Progress.Skills) > 0 {
		return 0, nil
	}
	next := s.st.Dispatch(store.SeedSkills{Skills: domain.PredefinedSkills()})
	return len(next.Progress.Skills), nil
}

// List returns skills ordered by category then name. An empty category or
// "all" returns every skill.
func (s *skillService) List(_ context.Context, category string) ([]domain.Skill, error) {
	groups := s.st.State().SkillsByCategory(category)
	cats := make([]string, 0, len(groups))
	for c := range groups {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	var out []domain.Skill
	for _, c := range cats {
		skills := groups[c]
		sort.SliceStable(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
		out = append(out, skills...)
	}
	return out, nil
}
