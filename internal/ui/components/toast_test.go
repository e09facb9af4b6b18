package components

import (
	"strings"
	"testing"

	"github.com/sadopc/reqdeck/internal/ui/theme"
)

func newTestToast() Toast {
	t := theme.Default()
	return NewToast(t, theme.NewStyles(t))
}

func TestToastShowAndDismiss(t *testing.T) {
	m := newTestToast()

	m.Show(ToastInfo, "Added request: users")
	if !m.Visible {
		t.Fatal("toast should be visible after Show")
	}
	if !strings.Contains(m.View(), "Added request: users") {
		t.Errorf("view missing message: %q", m.View())
	}

	m, _ = m.Update(toastDismissMsg{seq: m.seq})
	if m.Visible {
		t.Error("matching dismiss should hide the toast")
	}
	if m.View() != "" {
		t.Errorf("hidden toast should render empty, got %q", m.View())
	}
}

func TestToastStaleDismissIgnored(t *testing.T) {
	m := newTestToast()

	m.Show(ToastInfo, "first")
	stale := m.seq
	m.Show(ToastError, "second")

	// The first toast's timer fires after it was replaced.
	m, _ = m.Update(toastDismissMsg{seq: stale})
	if !m.Visible {
		t.Error("stale dismiss must not hide the replacement toast")
	}
	if !strings.Contains(m.View(), "second") {
		t.Errorf("view = %q", m.View())
	}
}

func TestToastLevelDurations(t *testing.T) {
	if ToastError.duration() <= ToastInfo.duration() {
		t.Error("errors should linger longer than confirmations")
	}
	if ToastWarn.duration() <= ToastInfo.duration() {
		t.Error("warnings should linger longer than confirmations")
	}
}
