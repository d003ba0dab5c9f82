package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/335g/clidoc/pkg/catalog"
	"github.com/335g/clidoc/pkg/errors"
)

func send(m pickerModel, msgs ...tea.Msg) (pickerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(pickerModel)
	}
	return m, cmd
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestPickerInitialState(t *testing.T) {
	m := newPickerModel(catalog.All())
	if len(m.visible) != len(catalog.All()) {
		t.Errorf("visible = %d services, want %d", len(m.visible), len(catalog.All()))
	}
	if m.cursor != 0 || m.chosen || m.cancelled {
		t.Errorf("unexpected initial state: %+v", m)
	}
	if !strings.Contains(m.View(), pickerPrompt) {
		t.Error("View() missing prompt")
	}
}

func TestPickerSelectFirst(t *testing.T) {
	m, cmd := send(newPickerModel(catalog.All()), key(tea.KeyEnter))
	if cmd == nil {
		t.Error("enter did not quit")
	}
	got, err := pickerResult(m)
	if err != nil {
		t.Fatalf("pickerResult: %v", err)
	}
	if got != catalog.Amplify {
		t.Errorf("selected %v, want Amplify", got)
	}
}

func TestPickerNavigation(t *testing.T) {
	m, _ := send(newPickerModel(catalog.All()),
		key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyUp), key(tea.KeyDown), key(tea.KeyDown),
		key(tea.KeyEnter),
	)
	got, err := pickerResult(m)
	if err != nil {
		t.Fatalf("pickerResult: %v", err)
	}
	if want := catalog.All()[3]; got != want {
		t.Errorf("selected %v, want %v", got, want)
	}
}

func TestPickerCursorBounds(t *testing.T) {
	m, _ := send(newPickerModel(catalog.All()), key(tea.KeyUp))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}

	all := catalog.All()
	msgs := make([]tea.Msg, len(all)+5)
	for i := range msgs {
		msgs[i] = key(tea.KeyDown)
	}
	m, _ = send(newPickerModel(all), msgs...)
	if m.cursor != len(all)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(all)-1)
	}
	if m.cursor < m.offset || m.cursor >= m.offset+m.height {
		t.Errorf("cursor %d outside viewport [%d, %d)", m.cursor, m.offset, m.offset+m.height)
	}
}

func TestPickerFilter(t *testing.T) {
	m, _ := send(newPickerModel(catalog.All()), typed("lamb"))
	if len(m.visible) == 0 || m.visible[0] != catalog.Lambda {
		t.Fatalf("filter %q: visible = %v", m.filter, m.visible)
	}

	m, _ = send(m, key(tea.KeyEnter))
	if got, _ := pickerResult(m); got != catalog.Lambda {
		t.Errorf("selected %v, want Lambda", got)
	}
}

func TestPickerFilterByCanonicalName(t *testing.T) {
	m, _ := send(newPickerModel(catalog.All()), typed("sfn"))
	found := false
	for _, s := range m.visible {
		if s == catalog.StepFunctions {
			found = true
		}
	}
	if !found {
		t.Errorf("filter sfn: StepFunctions not in %v", m.visible)
	}
}

func TestPickerBackspace(t *testing.T) {
	m, _ := send(newPickerModel(catalog.All()), typed("zzz"))
	if len(m.visible) != 0 {
		t.Fatalf("filter zzz matched %v", m.visible)
	}
	if !strings.Contains(m.View(), "no matching services") {
		t.Error("View() does not report empty result")
	}

	m, cmd := send(m, key(tea.KeyEnter))
	if cmd != nil || m.chosen {
		t.Error("enter with no matches should do nothing")
	}

	m, _ = send(m, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace))
	if m.filter != "" || len(m.visible) != len(catalog.All()) {
		t.Errorf("after clearing filter: filter=%q visible=%d", m.filter, len(m.visible))
	}
}

func TestPickerCancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, cmd := send(newPickerModel(catalog.All()), key(k))
		if cmd == nil || !m.cancelled {
			t.Errorf("%v did not cancel", k)
		}
		if _, err := pickerResult(m); !errors.Is(err, errors.ErrCodeCancelled) {
			t.Errorf("%v: pickerResult error = %v, want CANCELLED", k, err)
		}
		if m.View() != "" {
			t.Errorf("%v: View() not cleared", k)
		}
	}
}

func TestPickerWindowResize(t *testing.T) {
	m, _ := send(newPickerModel(catalog.All()), tea.WindowSizeMsg{Width: 80, Height: 4})
	if m.height != 3 {
		t.Errorf("height = %d, want minimum 3", m.height)
	}
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.height != 25 {
		t.Errorf("height = %d, want 25", m.height)
	}
}
