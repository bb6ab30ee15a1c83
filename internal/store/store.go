// Package store holds the in-memory snapshot of every entity collection and
// the mutation API the rest of the service goes through. There is no
// database behind it: collections are seeded once at startup and mutated in
// place for the lifetime of the process. Only the settings record is written
// through to durable storage.
package store

import (
	"errors"
	"sync"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Mutation actions reported to subscribers.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entity names reported to subscribers.
const (
	EntityClient       = "client"
	EntityDesigner     = "designer"
	EntityProject      = "project"
	EntityVersion      = "version"
	EntityComment      = "comment"
	EntityApproval     = "approval"
	EntityNotification = "notification"
	EntityActivity     = "activity"
	EntityExport       = "export"
	EntityProduct      = "product"
	EntityCategory     = "product-category"
	EntityAIIdeaSet    = "ai-idea-set"
	EntitySettings     = "settings"
)

// Change describes a single applied mutation.
type Change struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

// Snapshot is the complete state at a point in time. Collections keep
// insertion order; notifications and activity events are newest first.
// Records are value types: a snapshot copy shares nested slices with the
// store, which is safe because mutations always replace whole records.
type Snapshot struct {
	Clients           []models.Client
	Designers         []models.Designer
	Projects          []models.Project
	Versions          []models.Version
	Comments          []models.Comment
	Approvals         []models.Approval
	Notifications     []models.Notification
	ActivityEvents    []models.ActivityEvent
	ExportFiles       []models.ExportFile
	ProductItems      []models.ProductItem
	ProductCategories []models.ProductCategory
	AIIdeaSets        []models.AIIdeaSet
	Settings          models.Settings
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.Clients = append([]models.Client(nil), s.Clients...)
	c.Designers = append([]models.Designer(nil), s.Designers...)
	c.Projects = append([]models.Project(nil), s.Projects...)
	c.Versions = append([]models.Version(nil), s.Versions...)
	c.Comments = append([]models.Comment(nil), s.Comments...)
	c.Approvals = append([]models.Approval(nil), s.Approvals...)
	c.Notifications = append([]models.Notification(nil), s.Notifications...)
	c.ActivityEvents = append([]models.ActivityEvent(nil), s.ActivityEvents...)
	c.ExportFiles = append([]models.ExportFile(nil), s.ExportFiles...)
	c.ProductItems = append([]models.ProductItem(nil), s.ProductItems...)
	c.ProductCategories = append([]models.ProductCategory(nil), s.ProductCategories...)
	c.AIIdeaSets = append([]models.AIIdeaSet(nil), s.AIIdeaSets...)
	return c
}

// SettingsBridge persists the settings record. Load never fails; a missing
// or unreadable blob yields the defaults.
type SettingsBridge interface {
	Load() models.Settings
	Save(models.Settings) error
}

// Store is an explicit state container; construct one and inject it where
// needed. All methods are safe for concurrent use, and every mutation
// notifies each subscriber exactly once with the post-mutation snapshot.
type Store struct {
	mu      sync.RWMutex
	state   Snapshot
	bridge  SettingsBridge
	subs    map[int]func(Change, Snapshot)
	nextSub int
}

// New seeds the store from the given snapshot. When a bridge is provided
// the persisted settings record replaces the seeded one.
func New(seeded Snapshot, bridge SettingsBridge) *Store {
	if bridge != nil {
		seeded.Settings = bridge.Load()
	}
	return &Store{
		state:  seeded,
		bridge: bridge,
		subs:   make(map[int]func(Change, Snapshot)),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers a callback invoked synchronously after every mutation.
// The returned func cancels the subscription.
func (s *Store) Subscribe(fn func(Change, Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// mutate runs fn under the write lock, then notifies subscribers with a
// snapshot copy taken after the mutation.
func (s *Store) mutate(ch Change, fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	subs := make([]func(Change, Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(ch, snap)
	}
}

func patchByID[T any](list []T, id string, getID func(T) string, apply func(T) T) bool {
	for i, rec := range list {
		if getID(rec) == id {
			list[i] = apply(rec)
			return true
		}
	}
	return false
}

func removeByID[T any](list []T, id string, getID func(T) string) ([]T, bool) {
	for i, rec := range list {
		if getID(rec) == id {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

// ----- Clients -----

func (s *Store) AddClient(c models.Client) {
	s.mutate(Change{EntityClient, ActionAdd, c.ID}, func(snap *Snapshot) {
		snap.Clients = append(snap.Clients, c)
	})
}

func (s *Store) UpdateClient(id string, p models.ClientPatch) error {
	return s.update(Change{EntityClient, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.Clients, id,
			func(c models.Client) string { return c.ID },
			func(c models.Client) models.Client { return c.Apply(p) })
	})
}

func (s *Store) DeleteClient(id string) error {
	return s.update(Change{EntityClient, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.Clients, ok = removeByID(snap.Clients, id, func(c models.Client) string { return c.ID })
		return ok
	})
}

// ----- Designers -----

func (s *Store) AddDesigner(d models.Designer) {
	s.mutate(Change{EntityDesigner, ActionAdd, d.ID}, func(snap *Snapshot) {
		snap.Designers = append(snap.Designers, d)
	})
}

func (s *Store) UpdateDesigner(id string, p models.DesignerPatch) error {
	return s.update(Change{EntityDesigner, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.Designers, id,
			func(d models.Designer) string { return d.ID },
			func(d models.Designer) models.Designer { return d.Apply(p) })
	})
}

func (s *Store) DeleteDesigner(id string) error {
	return s.update(Change{EntityDesigner, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.Designers, ok = removeByID(snap.Designers, id, func(d models.Designer) string { return d.ID })
		return ok
	})
}

// ----- Projects -----

func (s *Store) AddProject(p models.Project) {
	s.mutate(Change{EntityProject, ActionAdd, p.ID}, func(snap *Snapshot) {
		snap.Projects = append(snap.Projects, p)
	})
}

func (s *Store) UpdateProject(id string, p models.ProjectPatch) error {
	return s.update(Change{EntityProject, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.Projects, id,
			func(pr models.Project) string { return pr.ID },
			func(pr models.Project) models.Project { return pr.Apply(p) })
	})
}

// DeleteProject removes the project only. Versions, comments and approvals
// that reference it are left in place; queries resolve them with "Unknown
// Project" placeholders.
func (s *Store) DeleteProject(id string) error {
	return s.update(Change{EntityProject, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.Projects, ok = removeByID(snap.Projects, id, func(p models.Project) string { return p.ID })
		return ok
	})
}

// ----- Versions -----

func (s *Store) AddVersion(v models.Version) {
	s.mutate(Change{EntityVersion, ActionAdd, v.ID}, func(snap *Snapshot) {
		snap.Versions = append(snap.Versions, v)
	})
}

func (s *Store) UpdateVersion(id string, p models.VersionPatch) error {
	return s.update(Change{EntityVersion, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.Versions, id,
			func(v models.Version) string { return v.ID },
			func(v models.Version) models.Version { return v.Apply(p) })
	})
}

func (s *Store) DeleteVersion(id string) error {
	return s.update(Change{EntityVersion, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.Versions, ok = removeByID(snap.Versions, id, func(v models.Version) string { return v.ID })
		return ok
	})
}

// ----- Comments -----

func (s *Store) AddComment(c models.Comment) {
	s.mutate(Change{EntityComment, ActionAdd, c.ID}, func(snap *Snapshot) {
		snap.Comments = append(snap.Comments, c)
	})
}

func (s *Store) UpdateComment(id string, p models.CommentPatch) error {
	return s.update(Change{EntityComment, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.Comments, id,
			func(c models.Comment) string { return c.ID },
			func(c models.Comment) models.Comment { return c.Apply(p) })
	})
}

func (s *Store) DeleteComment(id string) error {
	return s.update(Change{EntityComment, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.Comments, ok = removeByID(snap.Comments, id, func(c models.Comment) string { return c.ID })
		return ok
	})
}

// ----- Approvals -----

func (s *Store) AddApproval(a models.Approval) {
	s.mutate(Change{EntityApproval, ActionAdd, a.ID}, func(snap *Snapshot) {
		snap.Approvals = append(snap.Approvals, a)
	})
}

func (s *Store) UpdateApproval(id string, p models.ApprovalPatch) error {
	return s.update(Change{EntityApproval, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.Approvals, id,
			func(a models.Approval) string { return a.ID },
			func(a models.Approval) models.Approval { return a.Apply(p) })
	})
}

func (s *Store) DeleteApproval(id string) error {
	return s.update(Change{EntityApproval, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.Approvals, ok = removeByID(snap.Approvals, id, func(a models.Approval) string { return a.ID })
		return ok
	})
}

// ----- Notifications (append-only, newest first) -----

func (s *Store) AddNotification(n models.Notification) {
	s.mutate(Change{EntityNotification, ActionAdd, n.ID}, func(snap *Snapshot) {
		snap.Notifications = append([]models.Notification{n}, snap.Notifications...)
	})
}

func (s *Store) MarkNotificationRead(id string) error {
	return s.update(Change{EntityNotification, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.Notifications, id,
			func(n models.Notification) string { return n.ID },
			func(n models.Notification) models.Notification { n.Read = true; return n })
	})
}

func (s *Store) MarkAllNotificationsRead() {
	s.mutate(Change{EntityNotification, ActionUpdate, ""}, func(snap *Snapshot) {
		for i := range snap.Notifications {
			snap.Notifications[i].Read = true
		}
	})
}

// ----- Activity events (append-only, newest first) -----

func (s *Store) AddActivityEvent(e models.ActivityEvent) {
	s.mutate(Change{EntityActivity, ActionAdd, e.ID}, func(snap *Snapshot) {
		snap.ActivityEvents = append([]models.ActivityEvent{e}, snap.ActivityEvents...)
	})
}

// ----- Export files -----

func (s *Store) AddExportFile(e models.ExportFile) {
	s.mutate(Change{EntityExport, ActionAdd, e.ID}, func(snap *Snapshot) {
		snap.ExportFiles = append(snap.ExportFiles, e)
	})
}

func (s *Store) DeleteExportFile(id string) error {
	return s.update(Change{EntityExport, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.ExportFiles, ok = removeByID(snap.ExportFiles, id, func(e models.ExportFile) string { return e.ID })
		return ok
	})
}

// ----- Products -----

func (s *Store) AddProductItem(p models.ProductItem) {
	s.mutate(Change{EntityProduct, ActionAdd, p.ID}, func(snap *Snapshot) {
		snap.ProductItems = append(snap.ProductItems, p)
	})
}

func (s *Store) UpdateProductItem(id string, p models.ProductItemPatch) error {
	return s.update(Change{EntityProduct, ActionUpdate, id}, func(snap *Snapshot) bool {
		return patchByID(snap.ProductItems, id,
			func(pi models.ProductItem) string { return pi.ID },
			func(pi models.ProductItem) models.ProductItem { return pi.Apply(p) })
	})
}

func (s *Store) DeleteProductItem(id string) error {
	return s.update(Change{EntityProduct, ActionDelete, id}, func(snap *Snapshot) bool {
		var ok bool
		snap.ProductItems, ok = removeByID(snap.ProductItems, id, func(p models.ProductItem) string { return p.ID })
		return ok
	})
}

func (s *Store) AddProductCategory(c models.ProductCategory) {
	s.mutate(Change{EntityCategory, ActionAdd, c.ID}, func(snap *Snapshot) {
		snap.ProductCategories = append(snap.ProductCategories, c)
	})
}

// ----- AI idea sets -----

func (s *Store) AddAIIdeaSet(set models.AIIdeaSet) {
	s.mutate(Change{EntityAIIdeaSet, ActionAdd, set.ID}, func(snap *Snapshot) {
		snap.AIIdeaSets = append(snap.AIIdeaSets, set)
	})
}

// SaveAIIdeaItem bookmarks a concept within an idea set. Saving the same
// item twice is a no-op.
func (s *Store) SaveAIIdeaItem(setID, item string) error {
	return s.update(Change{EntityAIIdeaSet, ActionUpdate, setID}, func(snap *Snapshot) bool {
		return patchByID(snap.AIIdeaSets, setID,
			func(set models.AIIdeaSet) string { return set.ID },
			func(set models.AIIdeaSet) models.AIIdeaSet {
				for _, saved := range set.SavedItems {
					if saved == item {
						return set
					}
				}
				set.SavedItems = append(append([]string(nil), set.SavedItems...), item)
				return set
			})
	})
}

// ----- Settings -----

// UpdateSettings merges the patch into the settings record and writes the
// merged record through to durable storage. The in-memory record is updated
// even when the write fails; the write error is returned for the caller to
// surface.
func (s *Store) UpdateSettings(p models.SettingsPatch) error {
	var saveErr error
	s.mutate(Change{EntitySettings, ActionUpdate, ""}, func(snap *Snapshot) {
		snap.Settings = snap.Settings.Apply(p)
		if s.bridge != nil {
			saveErr = s.bridge.Save(snap.Settings)
		}
	})
	return saveErr
}

// update applies fn and reports ErrNotFound without notifying anyone when
// fn did not find its target record.
func (s *Store) update(ch Change, fn func(*Snapshot) bool) error {
	s.mu.Lock()
	ok := fn(&s.state)
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	snap := s.state.clone()
	subs := make([]func(Change, Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(ch, snap)
	}
	return nil
}
