package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/serigraf/bancada/internal/board"
)

// teaNotifier bridges controller notifications into the bubbletea loop.
// Sends never block: if the UI is not draining, older notices are dropped
// in favor of newer ones.
type teaNotifier struct {
	ch chan noticeMsg
}

func newTeaNotifier() *teaNotifier {
	return &teaNotifier{ch: make(chan noticeMsg, 8)}
}

func (n *teaNotifier) Success(title, body string) {
	n.send(noticeMsg{title: title, body: body})
}

func (n *teaNotifier) Error(title, body string) {
	n.send(noticeMsg{isError: true, title: title, body: body})
}

func (n *teaNotifier) send(m noticeMsg) {
	for {
		select {
		case n.ch <- m:
			return
		default:
			select {
			case <-n.ch: // drop oldest
			default:
			}
		}
	}
}

// waitNotice blocks until the next notification arrives.
func waitNotice(n *teaNotifier) tea.Cmd {
	return func() tea.Msg {
		return <-n.ch
	}
}

// waitChange blocks until the controller dispatches an action.
func waitChange(ctrl *board.Controller) tea.Cmd {
	return func() tea.Msg {
		<-ctrl.Changes()
		return stateChangedMsg{}
	}
}

var _ board.Notifier = (*teaNotifier)(nil)
