package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_CreateRequiresTitleAndContent(t *testing.T) {
	st := newPlannedStore(t)
	notes := &recordingNotifier{}
	svc := NewNoteService(st, notes, nil)

	_, err := svc.Create(context.Background(), NoteInput{Title: "   ", Content: "body"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, st.State().Progress.Notes)
	assert.Equal(t, notice{domain.ToastWarning, "Please fill in all required fields"}, notes.last())
}

func TestNoteService_CreateTrimsAndNormalizes(t *testing.T) {
	st := newPlannedStore(t)
	notes := &recordingNotifier{}
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewNoteService(st, notes, fixedClock(created))

	n, err := svc.Create(context.Background(), NoteInput{
		Title:   "  Nmap flags ",
		Content: "\n-sS is a SYN scan\n",
		Tags:    []string{" recon", "tools", "recon", ""},
		TaskID:  "w1-sun-t1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "Nmap flags", n.Title)
	assert.Equal(t, "-sS is a SYN scan", n.Content)
	assert.Equal(t, []string{"recon", "tools"}, n.Tags)
	assert.Equal(t, created, n.CreatedAt)
	assert.Equal(t, created, n.UpdatedAt)

	stored, err := svc.Get(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, *n, *stored)
	assert.Equal(t, notice{domain.ToastSuccess, "Note created successfully"}, notes.last())
}

func TestNoteService_CreateRejectsUnknownTask(t *testing.T) {
	svc := NewNoteService(newPlannedStore(t), nil, nil)

	_, err := svc.Create(context.Background(), NoteInput{Title: "t", Content: "c", TaskID: "w7-fri-t1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteService_UpdateKeepsIdentity(t *testing.T) {
	st := newPlannedStore(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := NewNoteService(st, nil, clock)
	ctx := context.Background()

	n, err := svc.Create(ctx, NoteInput{Title: "Draft", Content: "v1"})
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	updated, err := svc.Update(ctx, n.ID, NoteInput{Title: "Final", Content: "v2", Tags: []string{"done"}})
	require.NoError(t, err)

	assert.Equal(t, n.ID, updated.ID)
	assert.Equal(t, n.CreatedAt, updated.CreatedAt)
	assert.Equal(t, now, updated.UpdatedAt)
	assert.Equal(t, "Final", updated.Title)
	require.Len(t, st.State().Progress.Notes, 1)
	assert.Equal(t, "v2", st.State().Progress.Notes[0].Content)

	_, err = svc.Update(ctx, "missing", NoteInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	st := newPlannedStore(t)
	notes := &recordingNotifier{}
	svc := NewNoteService(st, notes, nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, NoteInput{Title: "Temp", Content: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, n.ID))
	assert.Empty(t, st.State().Progress.Notes)
	assert.Equal(t, "Note deleted successfully", notes.last().Message)

	assert.ErrorIs(t, svc.Delete(ctx, n.ID), ErrNotFound)
	_, err = svc.Get(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteService_SearchAndListForTask(t *testing.T) {
	st := newPlannedStore(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { now = now.Add(time.Minute); return now }
	svc := NewNoteService(st, nil, clock)
	ctx := context.Background()

	_, err := svc.Create(ctx, NoteInput{Title: "Wireshark", Content: "filters", TaskID: "w1-sat-t2"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, NoteInput{Title: "Burp", Content: "proxy setup", Tags: []string{"web"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, NoteInput{Title: "Web shells", Content: "detection", TaskID: "w1-sat-t2"})
	require.NoError(t, err)

	found, err := svc.Search(ctx, "WEB")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Web shells", found[0].Title, "newest first")
	assert.Equal(t, "Burp", found[1].Title)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	linked, err := svc.ListForTask(ctx, "w1-sat-t2")
	require.NoError(t, err)
	assert.Len(t, linked, 2)
}
