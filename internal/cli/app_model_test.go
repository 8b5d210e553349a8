package cli

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/serigraf/bancada/internal/board"
	"github.com/serigraf/bancada/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRemote is an order service that always succeeds with an empty board.
type stubRemote struct {
	orders []remote.RemoteOrder
}

func (s *stubRemote) IsAuthenticated() bool { return true }

func (s *stubRemote) ListBoardOrders(ctx context.Context) ([]remote.RemoteOrder, error) {
	return append([]remote.RemoteOrder(nil), s.orders...), nil
}

func (s *stubRemote) CreateOrder(ctx context.Context, draft remote.Draft) (remote.RemoteOrder, error) {
	id := "created-1"
	return remote.RemoteOrder{ID: &id, Title: &draft.Title, Status: &draft.Status}, nil
}

func (s *stubRemote) UpdateOrderStatus(ctx context.Context, id, status, comment string) error {
	return nil
}

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return nil }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) Title() string            { return v.title }

func testModel(t *testing.T, svc remote.Service) appModel {
	t.Helper()
	if svc == nil {
		svc = &stubRemote{}
	}
	notifier := newTeaNotifier()
	state := &SharedState{
		Controller: board.NewController(svc, notifier),
		Actor:      "ana",
		Width:      100,
		Height:     30,
	}
	return newAppModel(state, notifier)
}

func TestNewAppModelStartsAtBoard(t *testing.T) {
	m := testModel(t, nil)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())
}

func TestAppModel_PushAndPop(t *testing.T) {
	m := testModel(t, nil)
	v := &stubView{id: ViewOrderDetail, title: "Pedido"}

	model, _ := m.Update(pushViewMsg{view: v})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v, m.activeView())

	model, cmd := m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())
}

func TestAppModel_PopNeverEmptiesTheStack(t *testing.T) {
	m := testModel(t, nil)

	model, _ := m.Update(popViewMsg{})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
}

func TestAppModel_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := testModel(t, nil)
		model, cmd := m.Update(k)
		m = model.(appModel)

		assert.True(t, m.quitting)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestAppModel_EscPopsView(t *testing.T) {
	m := testModel(t, nil)
	m.viewStack = append(m.viewStack, &stubView{id: ViewOrderDetail})

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
}

func TestAppModel_FormViewCapturesAllKeys(t *testing.T) {
	m := testModel(t, nil)
	form := &stubView{id: ViewForm}
	m.viewStack = append(m.viewStack, form)

	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	model, _ := m.Update(q)
	m = model.(appModel)

	assert.False(t, m.quitting, "forms receive 'q' as input, not as quit")
	require.Len(t, form.updateSeen, 1)
	assert.Equal(t, q, form.updateSeen[0])
}

func TestAppModel_WindowResizeUpdatesSharedState(t *testing.T) {
	m := testModel(t, nil)

	model, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 42})
	m = model.(appModel)

	assert.Equal(t, 140, m.state.Width)
	assert.Equal(t, 42, m.state.Height)
}

func TestAppModel_StateChangedBroadcastsRefresh(t *testing.T) {
	m := testModel(t, nil)
	under := &stubView{id: ViewOrderDetail}
	top := &stubView{id: ViewOrderDetail}
	m.viewStack = []View{under, top}

	model, cmd := m.Update(stateChangedMsg{})
	m = model.(appModel)

	require.NotNil(t, cmd, "must re-listen for the next change")
	require.Len(t, under.updateSeen, 1)
	assert.IsType(t, refreshViewMsg{}, under.updateSeen[0])
	require.Len(t, top.updateSeen, 1)
	assert.IsType(t, refreshViewMsg{}, top.updateSeen[0])
}

func TestAppModel_NoticeRendersInStatusBar(t *testing.T) {
	m := testModel(t, nil)

	model, cmd := m.Update(noticeMsg{isError: true, title: "Falha ao mover pedido", body: "connection refused"})
	m = model.(appModel)

	require.NotNil(t, cmd, "must keep listening for notices")
	assert.Contains(t, m.View(), "Falha ao mover pedido")
}

func TestAppModel_KeyDismissesNotice(t *testing.T) {
	m := testModel(t, nil)
	model, _ := m.Update(noticeMsg{title: "Pedido atualizado"})
	m = model.(appModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = model.(appModel)

	assert.NotContains(t, m.View(), "Pedido atualizado")
}

func TestAppModel_WizardCompletePopsWizard(t *testing.T) {
	m := testModel(t, nil)
	m.viewStack = append(m.viewStack, &stubView{id: ViewForm})

	ran := false
	model, cmd := m.Update(wizardCompleteMsg{nextCmd: func() tea.Msg { ran = true; return nil }})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	sawStateChanged := false
	for _, c := range batch {
		if _, isChange := c().(stateChangedMsg); isChange {
			sawStateChanged = true
		}
	}
	assert.True(t, ran, "the wizard's follow-up command runs")
	assert.True(t, sawStateChanged, "views refresh after the wizard finishes")
}

func TestTeaNotifier_DropsOldestWhenFull(t *testing.T) {
	n := newTeaNotifier()
	for i := 0; i < 20; i++ {
		n.Success("Pedido atualizado", "")
	}
	n.Error("Falha ao mover pedido", "boom")

	var last noticeMsg
	for {
		select {
		case msg := <-n.ch:
			last = msg
			continue
		default:
		}
		break
	}
	assert.True(t, last.isError, "newest notification survives the flood")
}
