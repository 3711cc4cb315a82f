package replication

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cashbook/internal/models"
	"github.com/iudanet/cashbook/internal/pairing"
	"github.com/iudanet/cashbook/internal/peer"
	"github.com/iudanet/cashbook/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// testRig контроллер с моками и запущенным циклом обработки
type testRig struct {
	ctrl    *Controller
	events  chan peer.Event
	session *PeerSessionMock
	store   *storage.StateStorageMock
	peers   *atomic.Int64
}

func newTestRig(t *testing.T, role Role, doc *models.Document) *testRig {
	t.Helper()

	events := make(chan peer.Event, 8)
	peers := &atomic.Int64{}

	session := &PeerSessionMock{
		EventsFunc: func() <-chan peer.Event {
			return events
		},
		BroadcastFunc: func(doc *models.Document) {},
		SendFunc:      func(conn *peer.Conn, doc *models.Document) {},
		PeersFunc: func() int {
			return int(peers.Load())
		},
	}

	store := &storage.StateStorageMock{
		SaveStateFunc: func(ctx context.Context, doc *models.Document) error {
			return nil
		},
	}

	ctrl := New(role, doc, session, store, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go ctrl.Run(ctx)

	return &testRig{ctrl: ctrl, events: events, session: session, store: store, peers: peers}
}

func TestApplyLocalEdit_ViewerIsNoOp(t *testing.T) {
	doc := models.NewDocument("01/01/2025")
	rig := newTestRig(t, RoleViewer, doc)

	got := rig.ctrl.ApplyLocalEdit(context.Background(), AddOutPartyEntry())

	// Зритель не порождает изменений: документ прежний, ни записи, ни рассылки
	assert.Empty(t, got.CurrentData.OutPartyEntries)
	assert.Empty(t, rig.session.BroadcastCalls())
	assert.Empty(t, rig.store.SaveStateCalls())
}

func TestApplyLocalEdit_EditorPersistsAndBroadcasts(t *testing.T) {
	doc := models.NewDocument("01/01/2025")
	rig := newTestRig(t, RoleEditor, doc)

	got := rig.ctrl.ApplyLocalEdit(context.Background(), AddOutPartyEntry())

	require.Len(t, got.CurrentData.OutPartyEntries, 1)
	entry := got.CurrentData.OutPartyEntries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 1, entry.Index)
	assert.Equal(t, models.MethodCash, entry.Method)
	assert.True(t, entry.Amount.IsZero())

	// Write-through и ровно одна рассылка
	require.Len(t, rig.store.SaveStateCalls(), 1)
	require.Len(t, rig.session.BroadcastCalls(), 1)
	assert.Len(t, rig.session.BroadcastCalls()[0].Doc.CurrentData.OutPartyEntries, 1)

	// Контроллер видит то же состояние
	assert.Len(t, rig.ctrl.Current().CurrentData.OutPartyEntries, 1)
}

func TestApplyLocalEdit_ReturnsClone(t *testing.T) {
	doc := models.NewDocument("01/01/2025")
	rig := newTestRig(t, RoleEditor, doc)

	got := rig.ctrl.ApplyLocalEdit(context.Background(), AddOutPartyEntry())
	got.CurrentData.OutPartyEntries[0].Amount = decimal.NewFromInt(12345)

	// Правка возвращенной копии не затрагивает авторитетный документ
	current := rig.ctrl.Current()
	assert.True(t, current.CurrentData.OutPartyEntries[0].Amount.IsZero())
}

func TestApplyLocalEdit_UniqueEntryIDs(t *testing.T) {
	doc := models.NewDocument("01/01/2025")
	rig := newTestRig(t, RoleEditor, doc)
	ctx := context.Background()

	rig.ctrl.ApplyLocalEdit(ctx, AddOutPartyEntry())
	got := rig.ctrl.ApplyLocalEdit(ctx, AddOutPartyEntry())

	require.Len(t, got.CurrentData.OutPartyEntries, 2)
	assert.NotEqual(t,
		got.CurrentData.OutPartyEntries[0].ID,
		got.CurrentData.OutPartyEntries[1].ID,
	)
	assert.Equal(t, 2, got.CurrentData.OutPartyEntries[1].Index)
}

func TestOnRemoteDocument_FullReplace(t *testing.T) {
	rig := newTestRig(t, RoleViewer, models.NewDocument("01/01/2025"))

	docA := models.NewDocument("01/01/2025")
	docA.CurrentData.OutPartyEntries = append(docA.CurrentData.OutPartyEntries,
		models.OutPartyEntry{ID: "from-a", Index: 1, Method: models.MethodCash, Amount: decimal.NewFromInt(500)})

	docB := models.NewDocument("02/01/2025")
	docB.Rates = models.Rates{USD: 310, Euro: 366}

	rig.events <- peer.Event{Kind: peer.EventData, State: docA}
	rig.events <- peer.Event{Kind: peer.EventData, State: docB}

	// Зритель заканчивает ровно документом B — не слиянием A и B
	require.Eventually(t, func() bool {
		return rig.ctrl.Current().CurrentData.Date == "02/01/2025"
	}, 3*time.Second, 10*time.Millisecond)

	got := rig.ctrl.Current()
	assert.Empty(t, got.CurrentData.OutPartyEntries)
	assert.Equal(t, models.Rates{USD: 310, Euro: 366}, got.Rates)

	// Каждый полученный документ сохранен write-through
	assert.Len(t, rig.store.SaveStateCalls(), 2)
}

func TestOnRemoteDocument_EditorAlsoReplaces(t *testing.T) {
	// Замена по получению не зависит от роли
	rig := newTestRig(t, RoleEditor, models.NewDocument("01/01/2025"))

	remote := models.NewDocument("05/05/2025")
	rig.events <- peer.Event{Kind: peer.EventData, State: remote}

	require.Eventually(t, func() bool {
		return rig.ctrl.Current().CurrentData.Date == "05/05/2025"
	}, 3*time.Second, 10*time.Millisecond)
}

func TestOpened_EditorPushesCurrentDocument(t *testing.T) {
	doc := models.NewDocument("01/01/2025")
	doc.Rates = models.Rates{USD: 310, Euro: 366}
	rig := newTestRig(t, RoleEditor, doc)
	rig.peers.Store(1)

	rig.events <- peer.Event{Kind: peer.EventOpened}

	// Новый зритель сразу получает текущий документ
	require.Eventually(t, func() bool {
		return len(rig.session.SendCalls()) == 1
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, models.Rates{USD: 310, Euro: 366}, rig.session.SendCalls()[0].Doc.Rates)
}

func TestOpened_ViewerDoesNotPush(t *testing.T) {
	rig := newTestRig(t, RoleViewer, models.NewDocument("01/01/2025"))
	rig.peers.Store(1)

	rig.events <- peer.Event{Kind: peer.EventOpened}

	require.Eventually(t, func() bool {
		return rig.ctrl.Status() == "Connected (1)"
	}, 3*time.Second, 10*time.Millisecond)
	assert.Empty(t, rig.session.SendCalls())
}

func TestStatus_Transitions(t *testing.T) {
	rig := newTestRig(t, RoleViewer, models.NewDocument("01/01/2025"))

	assert.Equal(t, "Ready", rig.ctrl.Status())

	rig.peers.Store(2)
	rig.events <- peer.Event{Kind: peer.EventOpened}
	require.Eventually(t, func() bool {
		return rig.ctrl.Status() == "Connected (2)"
	}, 3*time.Second, 10*time.Millisecond)

	rig.peers.Store(0)
	rig.events <- peer.Event{Kind: peer.EventClosed}
	require.Eventually(t, func() bool {
		return rig.ctrl.Status() == "Ready"
	}, 3*time.Second, 10*time.Millisecond)

	rig.events <- peer.Event{Kind: peer.EventErrored, Reason: "dial tcp: refused"}
	require.Eventually(t, func() bool {
		return rig.ctrl.Status() == "Error: dial tcp: refused"
	}, 3*time.Second, 10*time.Millisecond)
}

func TestDayEnd_ArchivesAndResets(t *testing.T) {
	doc := models.NewDocument("01/01/2025")
	doc.CurrentData.OutPartyEntries = append(doc.CurrentData.OutPartyEntries,
		models.OutPartyEntry{ID: "op-1", Index: 1, Method: models.MethodCash, Amount: decimal.NewFromInt(500)})
	doc.CurrentData.MainEntries = append(doc.CurrentData.MainEntries,
		models.MainEntry{ID: "m-1", Method: models.MethodCash, CashIn: decimal.NewFromInt(1000)})

	rig := newTestRig(t, RoleEditor, doc)

	got := rig.ctrl.DayEnd(context.Background())

	// Архив заморожен в начале истории с итоговым балансом дня
	require.Len(t, got.History, 1)
	archive := got.History[0]
	assert.Equal(t, "01/01/2025", archive.Date)
	assert.True(t, archive.FinalBalance.Equal(decimal.NewFromInt(1500)))
	require.Len(t, archive.Data.OutPartyEntries, 1)
	require.Len(t, archive.Data.MainEntries, 1)

	// Новая книга пуста, входящий остаток равен итоговому балансу
	assert.Empty(t, got.CurrentData.OutPartyEntries)
	assert.Empty(t, got.CurrentData.MainEntries)
	assert.True(t, got.CurrentData.OpeningBalance.Equal(decimal.NewFromInt(1500)))
	assert.NotEmpty(t, got.CurrentData.Date)

	// Ровно одна рассылка на весь переход
	assert.Len(t, rig.session.BroadcastCalls(), 1)
}

func TestDayEnd_HistoryGrowsNewestFirst(t *testing.T) {
	doc := models.NewDocument("01/01/2025")
	rig := newTestRig(t, RoleEditor, doc)
	ctx := context.Background()

	first := rig.ctrl.DayEnd(ctx)
	require.Len(t, first.History, 1)

	// Добавляем запись во второй день, чтобы архивы различались
	rig.ctrl.ApplyLocalEdit(ctx, AddOutPartyEntry())
	second := rig.ctrl.DayEnd(ctx)

	require.Len(t, second.History, 2)
	// history[0] — самый свежий архив
	assert.Len(t, second.History[0].Data.OutPartyEntries, 1)
	assert.Empty(t, second.History[1].Data.OutPartyEntries)
}

func TestObserver_Notified(t *testing.T) {
	rig := newTestRig(t, RoleViewer, models.NewDocument("01/01/2025"))

	obs := &recordingObserver{}
	rig.ctrl.Observe(obs)

	rig.events <- peer.Event{Kind: peer.EventOpened, Outbound: true}
	require.Eventually(t, func() bool {
		return obs.opened.Load() == 1
	}, 3*time.Second, 10*time.Millisecond)

	rig.events <- peer.Event{Kind: peer.EventClosed, Outbound: true}
	require.Eventually(t, func() bool {
		return obs.closed.Load() == 1
	}, 3*time.Second, 10*time.Millisecond)

	rig.events <- peer.Event{Kind: peer.EventErrored, Reason: "boom", Outbound: true}
	require.Eventually(t, func() bool {
		return obs.failed.Load() == 1
	}, 3*time.Second, 10*time.Millisecond)
}

// Зритель сам обслуживает входящие соединения, но наблюдатель следит
// только за исходящей связью с редактором: чужие подключения не должны
// дергать машину сопряжения.
func TestObserver_IgnoresInboundConnections(t *testing.T) {
	rig := newTestRig(t, RoleViewer, models.NewDocument("01/01/2025"))

	obs := &recordingObserver{}
	rig.ctrl.Observe(obs)

	// Исходящая связь с редактором установлена
	rig.peers.Store(1)
	rig.events <- peer.Event{Kind: peer.EventOpened, Outbound: true}
	require.Eventually(t, func() bool {
		return obs.opened.Load() == 1
	}, 3*time.Second, 10*time.Millisecond)

	// Стороннее входящее соединение открылось и закрылось,
	// связь с редактором при этом жива
	rig.peers.Store(2)
	rig.events <- peer.Event{Kind: peer.EventOpened, Outbound: false}
	rig.peers.Store(1)
	rig.events <- peer.Event{Kind: peer.EventClosed, Outbound: false}

	require.Eventually(t, func() bool {
		return rig.ctrl.Status() == "Connected (1)"
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, int64(1), obs.opened.Load())
	assert.Equal(t, int64(0), obs.closed.Load())
	assert.Equal(t, int64(0), obs.failed.Load())
}

// Сквозной сценарий: сопряженный зритель остается Paired, пока живо
// исходящее соединение, что бы ни делали входящие.
func TestPairedViewerSurvivesInboundChurn(t *testing.T) {
	rig := newTestRig(t, RoleViewer, models.NewDocument("01/01/2025"))

	pm := pairing.NewManager(&pairing.ConnectorMock{
		ConnectFunc:    func(remoteID string) {},
		DisconnectFunc: func() {},
	}, &storage.PairingStorageMock{
		SaveEditorIDFunc: func(ctx context.Context, id string) error { return nil },
	}, time.Millisecond, testLogger())
	rig.ctrl.Observe(pm)

	pm.Pair(context.Background(), "editor-1")
	rig.peers.Store(1)
	rig.events <- peer.Event{Kind: peer.EventOpened, Outbound: true}
	require.Eventually(t, func() bool {
		return pm.State() == pairing.StatePaired
	}, 3*time.Second, 10*time.Millisecond)

	rig.peers.Store(2)
	rig.events <- peer.Event{Kind: peer.EventOpened, Outbound: false}
	rig.peers.Store(1)
	rig.events <- peer.Event{Kind: peer.EventClosed, Outbound: false}

	require.Eventually(t, func() bool {
		return rig.ctrl.Status() == "Connected (1)"
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, pairing.StatePaired, pm.State())

	// Разрыв самой связи с редактором по-прежнему расцепляет
	rig.peers.Store(0)
	rig.events <- peer.Event{Kind: peer.EventClosed, Outbound: true}
	require.Eventually(t, func() bool {
		return pm.State() == pairing.StateUnpaired
	}, 3*time.Second, 10*time.Millisecond)
}

type recordingObserver struct {
	opened atomic.Int64
	closed atomic.Int64
	failed atomic.Int64
}

func (o *recordingObserver) ConnectionOpened()             { o.opened.Add(1) }
func (o *recordingObserver) ConnectionClosed()             { o.closed.Add(1) }
func (o *recordingObserver) ConnectionFailed(reason string) { o.failed.Add(1) }
