package store

import (
	"sort"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
)

// Derived queries are computed on every call; nothing here is cached. A
// lookup that matches nothing returns an empty slice, never an error, and
// joins against deleted parents resolve to "Unknown ..." placeholders.

// Placeholders for joins whose foreign record no longer exists.
const (
	UnknownProject  = "Unknown Project"
	UnknownClient   = "Unknown Client"
	UnknownDesigner = "Unknown Designer"
)

func (s Snapshot) ClientByID(id string) (models.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func (s Snapshot) DesignerByID(id string) (models.Designer, bool) {
	for _, d := range s.Designers {
		if d.ID == id {
			return d, true
		}
	}
	return models.Designer{}, false
}

func (s Snapshot) ProjectByID(id string) (models.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

func (s Snapshot) VersionByID(id string) (models.Version, bool) {
	for _, v := range s.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return models.Version{}, false
}

func (s Snapshot) CommentByID(id string) (models.Comment, bool) {
	for _, c := range s.Comments {
		if c.ID == id {
			return c, true
		}
	}
	return models.Comment{}, false
}

func (s Snapshot) ApprovalByID(id string) (models.Approval, bool) {
	for _, a := range s.Approvals {
		if a.ID == id {
			return a, true
		}
	}
	return models.Approval{}, false
}

func (s Snapshot) ProductItemByID(id string) (models.ProductItem, bool) {
	for _, p := range s.ProductItems {
		if p.ID == id {
			return p, true
		}
	}
	return models.ProductItem{}, false
}

func (s Snapshot) AIIdeaSetByID(id string) (models.AIIdeaSet, bool) {
	for _, set := range s.AIIdeaSets {
		if set.ID == id {
			return set, true
		}
	}
	return models.AIIdeaSet{}, false
}

// ClientByEmail is the portal login lookup.
func (s Snapshot) ClientByEmail(email string) (models.Client, bool) {
	for _, c := range s.Clients {
		if c.Email == email {
			return c, true
		}
	}
	return models.Client{}, false
}

// ProjectName resolves a project id for display, tolerating dangling
// references left behind by non-cascading deletes.
func (s Snapshot) ProjectName(id string) string {
	if p, ok := s.ProjectByID(id); ok {
		return p.Name
	}
	return UnknownProject
}

func (s Snapshot) ClientName(id string) string {
	if c, ok := s.ClientByID(id); ok {
		return c.Name
	}
	return UnknownClient
}

func (s Snapshot) DesignerName(id string) string {
	if d, ok := s.DesignerByID(id); ok {
		return d.Name
	}
	return UnknownDesigner
}

// ProjectsByClient returns the client's projects in insertion order.
func (s Snapshot) ProjectsByClient(clientID string) []models.Project {
	out := []models.Project{}
	for _, p := range s.Projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsByDesigner matches both primary and supporting assignments.
func (s Snapshot) ProjectsByDesigner(designerID string) []models.Project {
	out := []models.Project{}
	for _, p := range s.Projects {
		if p.PrimaryDesignerID == designerID {
			out = append(out, p)
			continue
		}
		for _, id := range p.SupportingDesignerIDs {
			if id == designerID {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// VersionsByProject returns the project's versions in no particular order;
// callers pick SortVersionsDesc for "latest first" views or SortVersionsAsc
// for chronological ones.
func (s Snapshot) VersionsByProject(projectID string) []models.Version {
	out := []models.Version{}
	for _, v := range s.Versions {
		if v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out
}

func SortVersionsDesc(versions []models.Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].VersionNumber > versions[j].VersionNumber
	})
}

func SortVersionsAsc(versions []models.Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].VersionNumber < versions[j].VersionNumber
	})
}

func (s Snapshot) CommentsByProject(projectID string) []models.Comment {
	out := []models.Comment{}
	for _, c := range s.Comments {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	return out
}

func (s Snapshot) CommentsByVersion(versionID string) []models.Comment {
	out := []models.Comment{}
	for _, c := range s.Comments {
		if c.VersionID == versionID {
			out = append(out, c)
		}
	}
	return out
}

func (s Snapshot) CommentsByAuthor(authorID string) []models.Comment {
	out := []models.Comment{}
	for _, c := range s.Comments {
		if c.AuthorID == authorID {
			out = append(out, c)
		}
	}
	return out
}

func (s Snapshot) ApprovalsByStatus(status string) []models.Approval {
	out := []models.Approval{}
	for _, a := range s.Approvals {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

func (s Snapshot) ApprovalsForVersion(versionID string) []models.Approval {
	out := []models.Approval{}
	for _, a := range s.Approvals {
		if a.VersionID == versionID {
			out = append(out, a)
		}
	}
	return out
}

func (s Snapshot) ExportsByProject(projectID string) []models.ExportFile {
	out := []models.ExportFile{}
	for _, e := range s.ExportFiles {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

func (s Snapshot) ActivityByProject(projectID string) []models.ActivityEvent {
	out := []models.ActivityEvent{}
	for _, e := range s.ActivityEvents {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// ----- Scalar aggregates for summary views -----

func (s Snapshot) PendingApprovalCount() int {
	n := 0
	for _, a := range s.Approvals {
		if a.Status == models.ApprovalStatusPending {
			n++
		}
	}
	return n
}

func (s Snapshot) OpenCommentCount() int {
	n := 0
	for _, c := range s.Comments {
		if c.Status == models.CommentStatusOpen {
			n++
		}
	}
	return n
}

func (s Snapshot) ActiveClientCount() int {
	n := 0
	for _, c := range s.Clients {
		if c.Status == models.ClientStatusActive {
			n++
		}
	}
	return n
}

func (s Snapshot) ActiveProjectCount() int {
	n := 0
	for _, p := range s.Projects {
		if p.Status != models.ProjectStatusArchived {
			n++
		}
	}
	return n
}

func (s Snapshot) UnreadNotificationCount() int {
	n := 0
	for _, nf := range s.Notifications {
		if !nf.Read {
			n++
		}
	}
	return n
}

// ----- Derived counters (replacing the old stored, drift-prone ones) -----

func (s Snapshot) ClientProjectCount(clientID string) int {
	return len(s.ProjectsByClient(clientID))
}

func (s Snapshot) DesignerProjectsAssigned(designerID string) int {
	return len(s.ProjectsByDesigner(designerID))
}

func (s Snapshot) DesignerVersionsCreated(designerID string) int {
	n := 0
	for _, v := range s.Versions {
		if v.CreatedBy == designerID {
			n++
		}
	}
	return n
}

func (s Snapshot) ProjectVersionCount(projectID string) int {
	return len(s.VersionsByProject(projectID))
}

func (s Snapshot) ProductCountByCategory(category string) int {
	n := 0
	for _, p := range s.ProductItems {
		if p.Category == category {
			n++
		}
	}
	return n
}

// NextVersionNumber returns one past the highest version number recorded
// for the project, starting at 1.
func (s Snapshot) NextVersionNumber(projectID string) int {
	max := 0
	for _, v := range s.Versions {
		if v.ProjectID == projectID && v.VersionNumber > max {
			max = v.VersionNumber
		}
	}
	return max + 1
}

// ----- Distributions for dashboard breakdowns -----

func (s Snapshot) ProjectCountByStatus() map[string]int {
	out := map[string]int{}
	for _, p := range s.Projects {
		out[p.Status]++
	}
	return out
}

func (s Snapshot) ProjectCountByType() map[string]int {
	out := map[string]int{}
	for _, p := range s.Projects {
		out[p.Type]++
	}
	return out
}
