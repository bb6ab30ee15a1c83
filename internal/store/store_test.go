package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Clients: []models.Client{
			{ID: "c1", Name: "Sarah Mitchell", Email: "sarah@example.com", Status: models.ClientStatusActive},
			{ID: "c2", Name: "James Thornton", Email: "james@example.com", Status: models.ClientStatusActive},
		},
		Designers: []models.Designer{
			{ID: "d1", Name: "Alex Rivera", Status: models.DesignerStatusActive},
		},
		Projects: []models.Project{
			{ID: "p1", Name: "Lakeview Penthouse", ClientID: "c1", PrimaryDesignerID: "d1", Status: models.ProjectStatusInProgress},
		},
		Notifications: []models.Notification{
			{ID: "n1", Title: "First", Read: false},
			{ID: "n2", Title: "Second", Read: true},
		},
		Settings: models.DefaultSettings(),
	}
}

func TestStore_AddClient(t *testing.T) {
	st := New(testSnapshot(), nil)

	st.AddClient(models.Client{ID: "c3", Name: "New Client"})

	snap := st.Snapshot()
	require.Len(t, snap.Clients, 3)
	assert.Equal(t, "c3", snap.Clients[2].ID)
}

func TestStore_UpdateClient_MergesSingleField(t *testing.T) {
	st := New(testSnapshot(), nil)

	company := "Mitchell Interiors"
	err := st.UpdateClient("c1", models.ClientPatch{Company: &company})
	require.NoError(t, err)

	client, ok := st.Snapshot().ClientByID("c1")
	require.True(t, ok)
	assert.Equal(t, "Mitchell Interiors", client.Company)
	assert.Equal(t, "Sarah Mitchell", client.Name)
	assert.Equal(t, "sarah@example.com", client.Email)
}

func TestStore_UpdateClient_MissingID(t *testing.T) {
	st := New(testSnapshot(), nil)
	before := st.Snapshot()

	name := "Ghost"
	err := st.UpdateClient("missing", models.ClientPatch{Name: &name})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before.Clients, st.Snapshot().Clients)
}

func TestStore_DeleteClient(t *testing.T) {
	st := New(testSnapshot(), nil)

	require.NoError(t, st.DeleteClient("c1"))
	assert.Len(t, st.Snapshot().Clients, 1)

	assert.ErrorIs(t, st.DeleteClient("c1"), ErrNotFound)
}

func TestStore_DeleteProject_NoCascade(t *testing.T) {
	snap := testSnapshot()
	snap.Versions = []models.Version{
		{ID: "v-p1-1", ProjectID: "p1", VersionNumber: 1},
	}
	st := New(snap, nil)

	require.NoError(t, st.DeleteProject("p1"))

	after := st.Snapshot()
	assert.Empty(t, after.Projects)
	require.Len(t, after.Versions, 1)
	assert.Equal(t, UnknownProject, after.ProjectName("p1"))
}

func TestStore_Subscribe_NotifiedOncePerMutation(t *testing.T) {
	st := New(testSnapshot(), nil)

	var changes []Change
	cancel := st.Subscribe(func(ch Change, _ Snapshot) {
		changes = append(changes, ch)
	})

	st.AddClient(models.Client{ID: "c3"})
	require.NoError(t, st.DeleteClient("c3"))

	require.Len(t, changes, 2)
	assert.Equal(t, Change{EntityClient, ActionAdd, "c3"}, changes[0])
	assert.Equal(t, Change{EntityClient, ActionDelete, "c3"}, changes[1])

	cancel()
	st.AddClient(models.Client{ID: "c4"})
	assert.Len(t, changes, 2)
}

func TestStore_Subscribe_NoNotifyOnFailedMutation(t *testing.T) {
	st := New(testSnapshot(), nil)

	notified := 0
	st.Subscribe(func(Change, Snapshot) { notified++ })

	name := "Ghost"
	_ = st.UpdateClient("missing", models.ClientPatch{Name: &name})

	assert.Zero(t, notified)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	st := New(testSnapshot(), nil)

	before := st.Snapshot()
	st.AddClient(models.Client{ID: "c3"})

	assert.Len(t, before.Clients, 2)
	assert.Len(t, st.Snapshot().Clients, 3)
}

func TestStore_AddNotification_Prepends(t *testing.T) {
	st := New(testSnapshot(), nil)

	st.AddNotification(models.Notification{ID: "n3", Title: "Newest"})

	snap := st.Snapshot()
	require.Len(t, snap.Notifications, 3)
	assert.Equal(t, "n3", snap.Notifications[0].ID)
}

func TestStore_MarkAllNotificationsRead(t *testing.T) {
	st := New(testSnapshot(), nil)

	st.MarkAllNotificationsRead()

	for _, n := range st.Snapshot().Notifications {
		assert.True(t, n.Read)
	}
	assert.Zero(t, st.Snapshot().UnreadNotificationCount())
}

func TestStore_MarkNotificationRead_Missing(t *testing.T) {
	st := New(testSnapshot(), nil)
	assert.ErrorIs(t, st.MarkNotificationRead("missing"), ErrNotFound)
}

func TestStore_AddActivityEvent_NewestFirst(t *testing.T) {
	st := New(testSnapshot(), nil)

	st.AddActivityEvent(models.ActivityEvent{ID: "e1", CreatedAt: time.Now()})
	st.AddActivityEvent(models.ActivityEvent{ID: "e2", CreatedAt: time.Now()})

	events := st.Snapshot().ActivityEvents
	require.Len(t, events, 2)
	assert.Equal(t, "e2", events[0].ID)
}

func TestStore_SaveAIIdeaItem(t *testing.T) {
	snap := testSnapshot()
	snap.AIIdeaSets = []models.AIIdeaSet{
		{ID: "ai1", SavedItems: []string{}},
	}
	st := New(snap, nil)

	require.NoError(t, st.SaveAIIdeaItem("ai1", "concept-1"))
	require.NoError(t, st.SaveAIIdeaItem("ai1", "concept-1"))

	set, ok := st.Snapshot().AIIdeaSetByID("ai1")
	require.True(t, ok)
	assert.Equal(t, []string{"concept-1"}, set.SavedItems)

	assert.ErrorIs(t, st.SaveAIIdeaItem("missing", "concept-1"), ErrNotFound)
}

type fakeBridge struct {
	loaded models.Settings
	saved  []models.Settings
	err    error
}

func (b *fakeBridge) Load() models.Settings { return b.loaded }

func (b *fakeBridge) Save(s models.Settings) error {
	b.saved = append(b.saved, s)
	return b.err
}

func TestStore_New_LoadsPersistedSettings(t *testing.T) {
	persisted := models.DefaultSettings()
	persisted.CompanyName = "Persisted Studio"

	st := New(testSnapshot(), &fakeBridge{loaded: persisted})

	assert.Equal(t, "Persisted Studio", st.Snapshot().Settings.CompanyName)
}

func TestStore_UpdateSettings_WritesThrough(t *testing.T) {
	bridge := &fakeBridge{loaded: models.DefaultSettings()}
	st := New(testSnapshot(), bridge)

	theme := "dark"
	require.NoError(t, st.UpdateSettings(models.SettingsPatch{Theme: &theme}))

	require.Len(t, bridge.saved, 1)
	assert.Equal(t, "dark", bridge.saved[0].Theme)
	assert.Equal(t, "dark", st.Snapshot().Settings.Theme)
}

func TestStore_UpdateSettings_SaveFailureKeepsMemory(t *testing.T) {
	bridge := &fakeBridge{loaded: models.DefaultSettings(), err: errors.New("disk full")}
	st := New(testSnapshot(), bridge)

	theme := "dark"
	err := st.UpdateSettings(models.SettingsPatch{Theme: &theme})

	assert.Error(t, err)
	assert.Equal(t, "dark", st.Snapshot().Settings.Theme)
}
