package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swasthiksuvarna/storefront-api/notify"
	"github.com/swasthiksuvarna/storefront-api/store"
)

type recordingNotifier struct {
	messages []string
	kinds    []notify.Kind
}

func (r *recordingNotifier) Notify(message string, kind notify.Kind) {
	r.messages = append(r.messages, message)
	r.kinds = append(r.kinds, kind)
}

func newTestController(t *testing.T) (*Controller, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	ctl, err := NewController(store.NewMemoryStore(), "tasks:test", n)
	require.NoError(t, err)
	return ctl, n
}

func TestAdd_PrependsNewTask(t *testing.T) {
	ctl, n := newTestController(t)

	first, err := ctl.Add("water plants")
	require.NoError(t, err)
	second, err := ctl.Add("pick up eggs")
	require.NoError(t, err)

	tasks := ctl.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID)
	assert.Equal(t, first.ID, tasks[1].ID)
	assert.False(t, tasks[0].Completed)
	assert.NotEmpty(t, tasks[0].ID)
	assert.Len(t, n.messages, 2)
}

func TestAdd_RejectsEmptyText(t *testing.T) {
	ctl, n := newTestController(t)

	_, err := ctl.Add("")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = ctl.Add("   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	assert.Empty(t, ctl.Tasks())
	assert.Empty(t, n.messages)
}

func TestAdd_TrimsText(t *testing.T) {
	ctl, _ := newTestController(t)

	task, err := ctl.Add("  water plants  ")
	require.NoError(t, err)
	assert.Equal(t, "water plants", task.Text)
}

func TestEdit_ReplacesTextInPlace(t *testing.T) {
	ctl, _ := newTestController(t)

	older, err := ctl.Add("water plants")
	require.NoError(t, err)
	_, err = ctl.Add("pick up eggs")
	require.NoError(t, err)

	require.NoError(t, ctl.Edit(older.ID, "water the garden"))

	tasks := ctl.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, older.ID, tasks[1].ID) // position unchanged
	assert.Equal(t, "water the garden", tasks[1].Text)
	assert.False(t, tasks[1].Completed)
}

func TestEdit_RejectsEmptyText(t *testing.T) {
	ctl, _ := newTestController(t)

	task, err := ctl.Add("water plants")
	require.NoError(t, err)

	assert.ErrorIs(t, ctl.Edit(task.ID, "  "), ErrEmptyText)
	assert.Equal(t, "water plants", ctl.Tasks()[0].Text)
}

func TestEdit_UnknownIDIsNoOp(t *testing.T) {
	ctl, _ := newTestController(t)

	_, err := ctl.Add("water plants")
	require.NoError(t, err)

	require.NoError(t, ctl.Edit("missing", "new text"))
	assert.Equal(t, "water plants", ctl.Tasks()[0].Text)
}

func TestDelete(t *testing.T) {
	ctl, _ := newTestController(t)

	task, err := ctl.Add("water plants")
	require.NoError(t, err)

	require.NoError(t, ctl.Delete(task.ID))
	assert.Empty(t, ctl.Tasks())

	// Unknown id leaves the count unchanged
	require.NoError(t, ctl.Delete("missing"))
	assert.Empty(t, ctl.Tasks())
}

func TestToggle_MovesCompletedToBack(t *testing.T) {
	ctl, _ := newTestController(t)

	oldest, err := ctl.Add("a")
	require.NoError(t, err)
	_, err = ctl.Add("b")
	require.NoError(t, err)
	newest, err := ctl.Add("c")
	require.NoError(t, err)

	require.NoError(t, ctl.Toggle(newest.ID))

	tasks := ctl.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, newest.ID, tasks[2].ID)
	assert.True(t, tasks[2].Completed)
	assert.Equal(t, oldest.ID, tasks[1].ID)
}

func TestToggle_MovesUncompletedToFront(t *testing.T) {
	ctl, _ := newTestController(t)

	target, err := ctl.Add("a")
	require.NoError(t, err)
	_, err = ctl.Add("b")
	require.NoError(t, err)

	require.NoError(t, ctl.Toggle(target.ID)) // complete, moves to back
	require.NoError(t, ctl.Toggle(target.ID)) // un-complete, moves to front

	tasks := ctl.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, target.ID, tasks[0].ID)
	assert.False(t, tasks[0].Completed)
}

func TestToggle_TwiceRestoresFlagAndFrontPosition(t *testing.T) {
	ctl, _ := newTestController(t)

	front, err := ctl.Add("a")
	require.NoError(t, err)

	require.NoError(t, ctl.Toggle(front.ID))
	require.NoError(t, ctl.Toggle(front.ID))

	tasks := ctl.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, front.ID, tasks[0].ID)
	assert.False(t, tasks[0].Completed)
}

func TestToggle_UnknownIDIsNoOp(t *testing.T) {
	ctl, _ := newTestController(t)

	_, err := ctl.Add("a")
	require.NoError(t, err)

	require.NoError(t, ctl.Toggle("missing"))
	assert.False(t, ctl.Tasks()[0].Completed)
}

func TestNewController_LoadsPersistedTasks(t *testing.T) {
	st := store.NewMemoryStore()
	n := &recordingNotifier{}

	first, err := NewController(st, "tasks:u1", n)
	require.NoError(t, err)
	task, err := first.Add("water plants")
	require.NoError(t, err)

	second, err := NewController(st, "tasks:u1", n)
	require.NoError(t, err)

	tasks := second.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])
}

func TestNewController_CorruptSlotDegradesToEmpty(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save("tasks:u1", map[string]string{"oops": "wrong shape"}))

	ctl, err := NewController(st, "tasks:u1", &recordingNotifier{})
	require.NoError(t, err)
	assert.Empty(t, ctl.Tasks())
}
