package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *Plan {
	return &Plan{Weeks: []Week{
		{
			Week:  1,
			Title: Bi("Foundations", "الأساسيات"),
			Days: []Day{
				{Key: "sat", Tasks: []Task{{ID: "a", Duration: 30}, {ID: "b", Duration: 45}}},
				{Key: "sun", Tasks: []Task{{ID: "c", Duration: 60}}},
			},
		},
		{
			Week: 2,
			Days: []Day{{Key: "sat", Tasks: []Task{{ID: "d", Duration: 20}}}},
		},
	}}
}

func TestPlan_FindTask(t *testing.T) {
	p := samplePlan()

	ref, ok := p.FindTask("c")
	require.True(t, ok)
	assert.Equal(t, 1, ref.Week.Week)
	assert.Equal(t, "sun", ref.Day.Key)
	assert.Equal(t, 60, ref.Task.Duration)

	_, ok = p.FindTask("zzz")
	assert.False(t, ok)
}

func TestPlan_NilIsEmpty(t *testing.T) {
	var p *Plan
	assert.Nil(t, p.FindWeek(1))
	assert.Nil(t, p.AllTasks())
	_, ok := p.FindTask("a")
	assert.False(t, ok)

	var w *Week
	assert.Nil(t, w.FindDay("sat"))
}

func TestPlan_AllTasksKeepsPlanOrder(t *testing.T) {
	var ids []string
	for _, task := range samplePlan().AllTasks() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestWeek_FindDayAndTasks(t *testing.T) {
	w := samplePlan().FindWeek(1)
	require.NotNil(t, w)
	assert.Len(t, w.Tasks(), 3)
	assert.Nil(t, w.FindDay("fri"))

	d := w.FindDay("sat")
	require.NotNil(t, d)
	assert.Equal(t, 75, d.TotalMinutes())
}

func TestBilingualText_In(t *testing.T) {
	title := Bi("Foundations", "الأساسيات")
	assert.Equal(t, "Foundations", title.In(LangEnglish))
	assert.Equal(t, "الأساسيات", title.In(LangArabic))
	assert.True(t, LangArabic.IsRTL())
	assert.False(t, LangEnglish.IsRTL())
}
