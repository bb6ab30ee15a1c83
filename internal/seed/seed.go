// Package seed builds the initial snapshot every process starts from. The
// generators run off a fixed PRNG seed and a fixed base date, so two runs
// always produce identical collections.
package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
)

const randSource = 20260211

var baseDate = time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// versionCounts drives how many versions each project gets; the counts carry
// over into approvals, exports and activity references.
var versionCounts = map[string]int{
	"p1": 5, "p2": 4, "p3": 7, "p4": 3, "p5": 4, "p6": 6, "p7": 5,
	"p8": 3, "p9": 2, "p10": 4, "p11": 8, "p12": 4, "p13": 3, "p14": 5,
	"p15": 2, "p16": 3, "p17": 4, "p18": 3, "p19": 6, "p20": 2, "p21": 4,
	"p22": 5, "p23": 6, "p24": 3, "p25": 2,
}

// NewSnapshot assembles the full seeded state.
func NewSnapshot() store.Snapshot {
	rng := rand.New(rand.NewSource(randSource))

	clients := Clients()
	designers := Designers()
	projects := Projects()
	versions := versionsFor(projects, rng)
	comments := commentsFor(projects, versions, clients, designers, rng)
	approvals := approvalsFor(versions)

	return store.Snapshot{
		Clients:           clients,
		Designers:         designers,
		Projects:          projects,
		Versions:          versions,
		Comments:          comments,
		Approvals:         approvals,
		Notifications:     Notifications(),
		ActivityEvents:    activityFor(projects, rng),
		ExportFiles:       exportsFor(projects, rng),
		ProductItems:      Products(),
		ProductCategories: ProductCategories(),
		AIIdeaSets:        AIIdeaSets(),
		Settings:          models.DefaultSettings(),
	}
}

func Clients() []models.Client {
	return []models.Client{
		{ID: "c1", Name: "Sarah Mitchell", Email: "sarah@mitchell-interiors.com", Phone: "+1-555-0101", Company: "Mitchell Interiors", Status: models.ClientStatusActive, CreatedAt: day(2025, 3, 15), LastActivity: day(2026, 2, 10), Avatar: "SM"},
		{ID: "c2", Name: "James Thornton", Email: "james@thornton-dev.com", Phone: "+1-555-0102", Company: "Thornton Development", Status: models.ClientStatusActive, CreatedAt: day(2025, 4, 20), LastActivity: day(2026, 2, 9), Avatar: "JT"},
		{ID: "c3", Name: "Elena Rodriguez", Email: "elena@casa-moderna.com", Phone: "+1-555-0103", Company: "Casa Moderna", Status: models.ClientStatusActive, CreatedAt: day(2025, 5, 10), LastActivity: day(2026, 2, 8), Avatar: "ER"},
		{ID: "c4", Name: "David Chen", Email: "david@chenarchitects.com", Phone: "+1-555-0104", Company: "Chen Architects", Status: models.ClientStatusActive, CreatedAt: day(2025, 6, 1), LastActivity: day(2026, 2, 7), Avatar: "DC"},
		{ID: "c5", Name: "Priya Sharma", Email: "priya@luxe-spaces.com", Phone: "+1-555-0105", Company: "Luxe Spaces", Status: models.ClientStatusActive, CreatedAt: day(2025, 6, 15), LastActivity: day(2026, 2, 6), Avatar: "PS"},
		{ID: "c6", Name: "Marcus Williams", Email: "marcus@urban-loft.com", Phone: "+1-555-0106", Company: "Urban Loft Co", Status: models.ClientStatusActive, CreatedAt: day(2025, 7, 1), LastActivity: day(2026, 2, 5), Avatar: "MW"},
		{ID: "c7", Name: "Olivia Parker", Email: "olivia@parker-homes.com", Phone: "+1-555-0107", Company: "Parker Homes", Status: models.ClientStatusActive, CreatedAt: day(2025, 7, 20), LastActivity: day(2026, 2, 4), Avatar: "OP"},
		{ID: "c8", Name: "Robert Kim", Email: "robert@eliteprops.com", Phone: "+1-555-0108", Company: "Elite Properties", Status: models.ClientStatusInactive, CreatedAt: day(2025, 8, 5), LastActivity: day(2026, 1, 15), Avatar: "RK"},
		{ID: "c9", Name: "Nadia Al-Rashid", Email: "nadia@arabesque-design.com", Phone: "+1-555-0109", Company: "Arabesque Design", Status: models.ClientStatusActive, CreatedAt: day(2025, 8, 20), LastActivity: day(2026, 2, 3), Avatar: "NA"},
		{ID: "c10", Name: "Thomas Baker", Email: "thomas@bakergroup.com", Phone: "+1-555-0110", Company: "Baker Group", Status: models.ClientStatusActive, CreatedAt: day(2025, 9, 1), LastActivity: day(2026, 2, 1), Avatar: "TB"},
		{ID: "c11", Name: "Isabella Costa", Email: "isabella@costastudio.com", Phone: "+1-555-0111", Company: "Costa Studio", Status: models.ClientStatusInactive, CreatedAt: day(2025, 9, 15), LastActivity: day(2025, 12, 20), Avatar: "IC"},
		{ID: "c12", Name: "Andrew Foster", Email: "andrew@foster-build.com", Phone: "+1-555-0112", Company: "Foster Build LLC", Status: models.ClientStatusActive, CreatedAt: day(2025, 10, 1), LastActivity: day(2026, 2, 11), Avatar: "AF"},
	}
}

func Designers() []models.Designer {
	return []models.Designer{
		{ID: "d1", Name: "Alex Rivera", Email: "alex@drafthause.com", Phone: "+1-555-0201", Status: models.DesignerStatusActive, Skills: []string{"3D Modeling", "Interior Design", "LiDAR Scanning"}, LastActivity: day(2026, 2, 11), CreatedAt: day(2025, 1, 10), Bio: "Senior spatial designer with 8 years of experience in residential and commercial projects."},
		{ID: "d2", Name: "Maya Johnson", Email: "maya@drafthause.com", Phone: "+1-555-0202", Status: models.DesignerStatusActive, Skills: []string{"Floor Planning", "Interior Design", "Color Theory"}, LastActivity: day(2026, 2, 10), CreatedAt: day(2025, 2, 15), Bio: "Specializes in modern residential spaces and sustainable design."},
		{ID: "d3", Name: "Ryan O'Brien", Email: "ryan@drafthause.com", Phone: "+1-555-0203", Status: models.DesignerStatusActive, Skills: []string{"3D Modeling", "Commercial Spaces", "CAD"}, LastActivity: day(2026, 2, 9), CreatedAt: day(2025, 3, 1), Bio: "Expert in commercial space optimization using LiDAR technology."},
		{ID: "d4", Name: "Sofia Nguyen", Email: "sofia@drafthause.com", Phone: "+1-555-0204", Status: models.DesignerStatusActive, Skills: []string{"Interior Design", "Furniture Layout", "Lighting"}, LastActivity: day(2026, 2, 8), CreatedAt: day(2025, 3, 20), Bio: "Creative designer focused on luxury residential interiors."},
		{ID: "d5", Name: "Daniel Kim", Email: "daniel@drafthause.com", Phone: "+1-555-0205", Status: models.DesignerStatusActive, Skills: []string{"3D Scanning", "Measurement", "Technical Drawing"}, LastActivity: day(2026, 2, 7), CreatedAt: day(2025, 4, 10), Bio: "Technical specialist in LiDAR scanning and precision measurements."},
		{ID: "d6", Name: "Emma Watson", Email: "emma@drafthause.com", Phone: "+1-555-0206", Status: models.DesignerStatusActive, Skills: []string{"Space Planning", "Material Selection", "Visualization"}, LastActivity: day(2026, 2, 6), CreatedAt: day(2025, 5, 1), Bio: "Experienced in both residential and commercial renovation projects."},
		{ID: "d7", Name: "Hassan Ahmed", Email: "hassan@drafthause.com", Phone: "+1-555-0207", Status: models.DesignerStatusActive, Skills: []string{"3D Modeling", "Rendering", "Animation"}, LastActivity: day(2026, 2, 5), CreatedAt: day(2025, 6, 1), Bio: "Specialist in photorealistic 3D visualizations."},
		{ID: "d8", Name: "Chloe Martin", Email: "chloe@drafthause.com", Phone: "+1-555-0208", Status: models.DesignerStatusActive, Skills: []string{"Interior Design", "Staging", "Color Consulting"}, LastActivity: day(2026, 2, 3), CreatedAt: day(2025, 7, 15), Bio: "Home staging expert with an eye for contemporary aesthetics."},
		{ID: "d9", Name: "Lucas Brown", Email: "lucas@drafthause.com", Phone: "+1-555-0209", Status: models.DesignerStatusInactive, Skills: []string{"CAD", "Drafting", "Blueprint"}, LastActivity: day(2025, 12, 10), CreatedAt: day(2025, 8, 1), Bio: "Technical drafter specializing in detailed floor plans."},
		{ID: "d10", Name: "Amara Okafor", Email: "amara@drafthause.com", Phone: "+1-555-0210", Status: models.DesignerStatusActive, Skills: []string{"3D Modeling", "Interior Design", "Sustainability"}, LastActivity: day(2026, 2, 1), CreatedAt: day(2025, 9, 1), Bio: "Designer passionate about sustainable and eco-friendly spaces."},
	}
}

func Projects() []models.Project {
	return []models.Project{
		{ID: "p1", Name: "Lakeview Penthouse", ClientID: "c1", PrimaryDesignerID: "d1", SupportingDesignerIDs: []string{"d4"}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusInProgress, Rooms: 8, Location: models.ProjectLocation{Address: "1200 Lake Shore Dr", City: "Chicago", State: "IL", Zip: "60610", Country: "US"}, Description: "Luxury penthouse redesign with panoramic lake views.", CreatedAt: day(2025, 6, 10), UpdatedAt: day(2026, 2, 10), Tags: []string{"luxury", "penthouse", "modern"}},
		{ID: "p2", Name: "Manhattan Office Suite", ClientID: "c2", PrimaryDesignerID: "d3", SupportingDesignerIDs: []string{"d5"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusNeedsReview, Rooms: 12, Location: models.ProjectLocation{Address: "350 5th Ave", City: "New York", State: "NY", Zip: "10118", Country: "US"}, Description: "Modern corporate office redesign for a tech company.", CreatedAt: day(2025, 7, 1), UpdatedAt: day(2026, 2, 9), Tags: []string{"office", "corporate", "tech"}},
		{ID: "p3", Name: "Malibu Beach House", ClientID: "c3", PrimaryDesignerID: "d2", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusApproved, Rooms: 6, Location: models.ProjectLocation{Address: "27000 Pacific Coast Hwy", City: "Malibu", State: "CA", Zip: "90265", Country: "US"}, Description: "Coastal home renovation with open floor plan.", CreatedAt: day(2025, 5, 15), UpdatedAt: day(2026, 2, 8), Tags: []string{"beach", "coastal", "renovation"}},
		{ID: "p4", Name: "SoHo Boutique Hotel", ClientID: "c2", PrimaryDesignerID: "d1", SupportingDesignerIDs: []string{"d7"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusInProgress, Rooms: 24, Location: models.ProjectLocation{Address: "200 Spring St", City: "New York", State: "NY", Zip: "10012", Country: "US"}, Description: "Boutique hotel interior design with artisan touches.", CreatedAt: day(2025, 8, 20), UpdatedAt: day(2026, 2, 7), Tags: []string{"hotel", "boutique", "artisan"}},
		{ID: "p5", Name: "Austin Smart Home", ClientID: "c4", PrimaryDesignerID: "d4", SupportingDesignerIDs: []string{"d5"}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusInProgress, Rooms: 5, Location: models.ProjectLocation{Address: "1500 S Congress Ave", City: "Austin", State: "TX", Zip: "78704", Country: "US"}, Description: "Smart home integration with modern design.", CreatedAt: day(2025, 9, 1), UpdatedAt: day(2026, 2, 6), Tags: []string{"smart-home", "modern", "tech"}},
		{ID: "p6", Name: "Napa Valley Tasting Room", ClientID: "c5", PrimaryDesignerID: "d6", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusApproved, Rooms: 4, Location: models.ProjectLocation{Address: "1111 Dunaweal Ln", City: "Calistoga", State: "CA", Zip: "94515", Country: "US"}, Description: "Elegant wine tasting room with rustic elements.", CreatedAt: day(2025, 7, 15), UpdatedAt: day(2026, 2, 5), Tags: []string{"wine", "rustic", "hospitality"}},
		{ID: "p7", Name: "Brooklyn Loft Conversion", ClientID: "c6", PrimaryDesignerID: "d2", SupportingDesignerIDs: []string{"d8"}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusNeedsReview, Rooms: 3, Location: models.ProjectLocation{Address: "45 Main St", City: "Brooklyn", State: "NY", Zip: "11201", Country: "US"}, Description: "Industrial loft conversion to modern living space.", CreatedAt: day(2025, 8, 1), UpdatedAt: day(2026, 2, 4), Tags: []string{"loft", "industrial", "conversion"}},
		{ID: "p8", Name: "Miami Art Gallery", ClientID: "c5", PrimaryDesignerID: "d7", SupportingDesignerIDs: []string{"d1"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusInProgress, Rooms: 6, Location: models.ProjectLocation{Address: "2100 Collins Ave", City: "Miami Beach", State: "FL", Zip: "33139", Country: "US"}, Description: "Contemporary art gallery space design.", CreatedAt: day(2025, 9, 15), UpdatedAt: day(2026, 2, 3), Tags: []string{"gallery", "art", "contemporary"}},
		{ID: "p9", Name: "Denver Mountain Retreat", ClientID: "c7", PrimaryDesignerID: "d4", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusDraft, Rooms: 7, Location: models.ProjectLocation{Address: "500 Peak View Dr", City: "Aspen", State: "CO", Zip: "81611", Country: "US"}, Description: "Mountain retreat with natural materials and views.", CreatedAt: day(2025, 10, 1), UpdatedAt: day(2026, 2, 2), Tags: []string{"mountain", "retreat", "natural"}},
		{ID: "p10", Name: "Seattle Co-Working Hub", ClientID: "c4", PrimaryDesignerID: "d3", SupportingDesignerIDs: []string{"d6"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusInProgress, Rooms: 15, Location: models.ProjectLocation{Address: "1000 2nd Ave", City: "Seattle", State: "WA", Zip: "98104", Country: "US"}, Description: "Flexible co-working space with collaboration zones.", CreatedAt: day(2025, 8, 10), UpdatedAt: day(2026, 2, 1), Tags: []string{"coworking", "flexible", "collaborative"}},
		{ID: "p11", Name: "Beverly Hills Villa", ClientID: "c1", PrimaryDesignerID: "d1", SupportingDesignerIDs: []string{"d4", "d8"}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusApproved, Rooms: 10, Location: models.ProjectLocation{Address: "900 N Bedford Dr", City: "Beverly Hills", State: "CA", Zip: "90210", Country: "US"}, Description: "Luxury villa complete interior redesign.", CreatedAt: day(2025, 4, 1), UpdatedAt: day(2026, 1, 28), Tags: []string{"luxury", "villa", "complete"}},
		{ID: "p12", Name: "Portland Coffee Roastery", ClientID: "c3", PrimaryDesignerID: "d6", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusNeedsReview, Rooms: 3, Location: models.ProjectLocation{Address: "555 NW 13th Ave", City: "Portland", State: "OR", Zip: "97209", Country: "US"}, Description: "Artisan coffee roastery with tasting bar.", CreatedAt: day(2025, 9, 20), UpdatedAt: day(2026, 1, 25), Tags: []string{"coffee", "artisan", "hospitality"}},
		{ID: "p13", Name: "SF Tech Startup Office", ClientID: "c9", PrimaryDesignerID: "d3", SupportingDesignerIDs: []string{"d5"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusInProgress, Rooms: 8, Location: models.ProjectLocation{Address: "88 Colin P Kelly Jr St", City: "San Francisco", State: "CA", Zip: "94107", Country: "US"}, Description: "Open-plan tech startup with collaborative spaces.", CreatedAt: day(2025, 10, 10), UpdatedAt: day(2026, 1, 20), Tags: []string{"startup", "tech", "open-plan"}},
		{ID: "p14", Name: "Charleston Heritage Home", ClientID: "c7", PrimaryDesignerID: "d2", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusApproved, Rooms: 6, Location: models.ProjectLocation{Address: "12 Church St", City: "Charleston", State: "SC", Zip: "29401", Country: "US"}, Description: "Heritage home restoration with modern amenities.", CreatedAt: day(2025, 6, 20), UpdatedAt: day(2026, 1, 15), Tags: []string{"heritage", "restoration", "classic"}},
		{ID: "p15", Name: "Scottsdale Spa Resort", ClientID: "c5", PrimaryDesignerID: "d7", SupportingDesignerIDs: []string{"d4"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusDraft, Rooms: 18, Location: models.ProjectLocation{Address: "7575 E Princess Dr", City: "Scottsdale", State: "AZ", Zip: "85255", Country: "US"}, Description: "Desert spa resort with wellness-focused design.", CreatedAt: day(2025, 11, 1), UpdatedAt: day(2026, 1, 10), Tags: []string{"spa", "resort", "wellness"}},
		{ID: "p16", Name: "Chicago Townhouse", ClientID: "c1", PrimaryDesignerID: "d4", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusInProgress, Rooms: 4, Location: models.ProjectLocation{Address: "2400 N Lincoln Ave", City: "Chicago", State: "IL", Zip: "60614", Country: "US"}, Description: "Urban townhouse with contemporary finishes.", CreatedAt: day(2025, 10, 15), UpdatedAt: day(2026, 2, 11), Tags: []string{"townhouse", "urban", "contemporary"}},
		{ID: "p17", Name: "Nashville Recording Studio", ClientID: "c6", PrimaryDesignerID: "d5", SupportingDesignerIDs: []string{"d7"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusNeedsReview, Rooms: 5, Location: models.ProjectLocation{Address: "1600 Music Row", City: "Nashville", State: "TN", Zip: "37203", Country: "US"}, Description: "Professional recording studio with acoustic design.", CreatedAt: day(2025, 9, 5), UpdatedAt: day(2026, 1, 30), Tags: []string{"studio", "acoustic", "music"}},
		{ID: "p18", Name: "Savannah B&B", ClientID: "c10", PrimaryDesignerID: "d8", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusInProgress, Rooms: 8, Location: models.ProjectLocation{Address: "330 Drayton St", City: "Savannah", State: "GA", Zip: "31401", Country: "US"}, Description: "Charming bed & breakfast with Southern elegance.", CreatedAt: day(2025, 11, 10), UpdatedAt: day(2026, 1, 28), Tags: []string{"bb", "southern", "charming"}},
		{ID: "p19", Name: "LA Modern Apartment", ClientID: "c3", PrimaryDesignerID: "d1", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusApproved, Rooms: 3, Location: models.ProjectLocation{Address: "221 S Grand Ave", City: "Los Angeles", State: "CA", Zip: "90012", Country: "US"}, Description: "Minimalist apartment design with city views.", CreatedAt: day(2025, 5, 20), UpdatedAt: day(2026, 1, 22), Tags: []string{"apartment", "minimalist", "modern"}},
		{ID: "p20", Name: "Boston Law Firm", ClientID: "c9", PrimaryDesignerID: "d3", SupportingDesignerIDs: []string{"d6"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusDraft, Rooms: 10, Location: models.ProjectLocation{Address: "60 State St", City: "Boston", State: "MA", Zip: "02109", Country: "US"}, Description: "Prestigious law firm office with traditional elements.", CreatedAt: day(2025, 11, 20), UpdatedAt: day(2026, 1, 18), Tags: []string{"law", "traditional", "prestigious"}},
		{ID: "p21", Name: "Hamptons Summer House", ClientID: "c1", PrimaryDesignerID: "d2", SupportingDesignerIDs: []string{"d8"}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusInProgress, Rooms: 7, Location: models.ProjectLocation{Address: "100 Further Ln", City: "East Hampton", State: "NY", Zip: "11937", Country: "US"}, Description: "Coastal summer house with relaxed luxury.", CreatedAt: day(2025, 9, 25), UpdatedAt: day(2026, 2, 10), Tags: []string{"coastal", "summer", "luxury"}},
		{ID: "p22", Name: "Phoenix Restaurant", ClientID: "c8", PrimaryDesignerID: "d7", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusArchived, Rooms: 4, Location: models.ProjectLocation{Address: "3118 E Camelback Rd", City: "Phoenix", State: "AZ", Zip: "85016", Country: "US"}, Description: "Fine dining restaurant with desert-inspired interiors.", CreatedAt: day(2025, 4, 15), UpdatedAt: day(2025, 12, 1), Tags: []string{"restaurant", "fine-dining", "desert"}},
		{ID: "p23", Name: "DC Embassy Residence", ClientID: "c11", PrimaryDesignerID: "d1", SupportingDesignerIDs: []string{"d4", "d6"}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusArchived, Rooms: 12, Location: models.ProjectLocation{Address: "2800 Woodland Dr NW", City: "Washington", State: "DC", Zip: "20008", Country: "US"}, Description: "Diplomatic residence with formal and informal spaces.", CreatedAt: day(2025, 3, 1), UpdatedAt: day(2025, 11, 15), Tags: []string{"embassy", "formal", "diplomatic"}},
		{ID: "p24", Name: "San Diego Beachfront Condo", ClientID: "c12", PrimaryDesignerID: "d10", SupportingDesignerIDs: []string{}, Type: models.ProjectTypeResidential, Status: models.ProjectStatusInProgress, Rooms: 4, Location: models.ProjectLocation{Address: "1500 Orange Ave", City: "Coronado", State: "CA", Zip: "92118", Country: "US"}, Description: "Beachfront condo with sustainable materials.", CreatedAt: day(2025, 12, 1), UpdatedAt: day(2026, 2, 11), Tags: []string{"beach", "sustainable", "condo"}},
		{ID: "p25", Name: "Atlanta Medical Clinic", ClientID: "c2", PrimaryDesignerID: "d10", SupportingDesignerIDs: []string{"d5"}, Type: models.ProjectTypeCommercial, Status: models.ProjectStatusDraft, Rooms: 9, Location: models.ProjectLocation{Address: "550 Peachtree St NE", City: "Atlanta", State: "GA", Zip: "30308", Country: "US"}, Description: "Modern medical clinic with patient-centric design.", CreatedAt: day(2025, 12, 15), UpdatedAt: day(2026, 2, 1), Tags: []string{"medical", "clinic", "healthcare"}},
	}
}

func versionNotes(i, count int) string {
	switch {
	case i == 1:
		return fmt.Sprintf("Version %d – Initial scan and floor plan", i)
	case i == count:
		return fmt.Sprintf("Version %d – Latest revision with client feedback incorporated", i)
	default:
		return fmt.Sprintf("Version %d – Revision %d with updated measurements", i, i)
	}
}

func versionsFor(projects []models.Project, rng *rand.Rand) []models.Version {
	var versions []models.Version
	states := []string{models.ApprovalStatePending, models.ApprovalStateApproved}

	for _, project := range projects {
		count := versionCounts[project.ID]
		for i := 1; i <= count; i++ {
			var state string
			switch {
			case i == count && project.Status == models.ProjectStatusApproved:
				state = models.ApprovalStateApproved
			case i == count:
				state = models.ApprovalStatePending
			case i < count-1:
				state = models.ApprovalStateApproved
			default:
				state = states[rng.Intn(2)]
			}

			monthOffset := (count - i) * 3 / 2
			createdAt := baseDate.AddDate(0, -monthOffset, -1)

			v := models.Version{
				ID:            fmt.Sprintf("v-%s-%d", project.ID, i),
				ProjectID:     project.ID,
				VersionNumber: i,
				CreatedBy:     project.PrimaryDesignerID,
				CreatedAt:     createdAt,
				Notes:         versionNotes(i, count),
				ApprovalState: state,
				FileSize:      int64(rng.Intn(50000) + 2000),
				Measurements: []models.Measurement{
					{ID: fmt.Sprintf("m-%s-%d-1", project.ID, i), Label: "Living Room", Value: fmt.Sprintf("%d", 14+rng.Intn(6)), Unit: "ft"},
					{ID: fmt.Sprintf("m-%s-%d-2", project.ID, i), Label: "Kitchen", Value: fmt.Sprintf("%d", 10+rng.Intn(4)), Unit: "ft"},
					{ID: fmt.Sprintf("m-%s-%d-3", project.ID, i), Label: "Master Bedroom", Value: fmt.Sprintf("%d", 12+rng.Intn(5)), Unit: "ft"},
					{ID: fmt.Sprintf("m-%s-%d-4", project.ID, i), Label: "Ceiling Height", Value: fmt.Sprintf("%d", 9+rng.Intn(3)), Unit: "ft"},
				},
				Annotations: []models.Annotation{
					{ID: fmt.Sprintf("a-%s-%d-1", project.ID, i), Type: models.AnnotationTypeWall, Label: "Load-bearing Wall", Position: &models.Position{X: 2, Z: 3}},
					{ID: fmt.Sprintf("a-%s-%d-2", project.ID, i), Type: models.AnnotationTypeDoor, Label: "Main Entry", Position: &models.Position{Z: 5}},
					{ID: fmt.Sprintf("a-%s-%d-3", project.ID, i), Type: models.AnnotationTypeWindow, Label: "Bay Window", Position: &models.Position{X: 4, Y: 1.5}, Description: "Large bay window facing south"},
					{ID: fmt.Sprintf("a-%s-%d-4", project.ID, i), Type: models.AnnotationTypeFurniture, Label: "Kitchen Island", Position: &models.Position{X: 3, Z: 4}},
				},
			}
			if state == models.ApprovalStateApproved {
				approvedAt := createdAt
				v.ApprovedBy = "admin"
				v.ApprovedAt = &approvedAt
			}
			versions = append(versions, v)
		}
	}
	return versions
}

var commentTemplates = []string{
	"The layout looks great, but can we adjust the kitchen counter placement?",
	"I love the natural lighting in this version. Very well done!",
	"The measurements seem off for the master bedroom. Please verify.",
	"Can we explore darker wood tones for the flooring?",
	"The window placement creates excellent cross-ventilation.",
	"Client requested a larger walk-in closet in the master suite.",
	"The 3D scan shows some discrepancies near the north wall.",
	"Great progress on the open floor plan concept.",
	"Need to reconsider the furniture arrangement in the living room.",
	"The color palette in this version is much more cohesive.",
	"Can we add more storage solutions in the hallway?",
	"The ceiling height allows for a stunning chandelier installation.",
	"Please update the annotations for the new door location.",
	"The commercial space needs better traffic flow patterns.",
	"Excellent use of the corner space for the reading nook.",
	"The materials selected align well with the sustainability goals.",
	"Consider adding an accent wall in the dining area.",
	"The LiDAR scan quality is exceptional for this room.",
	"Client is very happy with the window treatment suggestions.",
	"We need to address the HVAC duct routing in the floor plan.",
	"The lighting design creates a wonderful ambiance.",
	"Can we get a section cut showing the mezzanine level?",
	"The bathroom layout needs to comply with ADA requirements.",
	"Love the integration of smart home features into the design.",
	"The entryway redesign makes a much stronger first impression.",
}

type commentAuthor struct {
	id, authorType, name string
}

func commentsFor(projects []models.Project, versions []models.Version, clients []models.Client, designers []models.Designer, rng *rand.Rand) []models.Comment {
	authors := []commentAuthor{{"admin", models.AuthorTypeAdmin, "Admin"}}
	for _, d := range designers[:5] {
		authors = append(authors, commentAuthor{d.ID, models.AuthorTypeDesigner, d.Name})
	}
	for _, c := range clients[:5] {
		authors = append(authors, commentAuthor{c.ID, models.AuthorTypeClient, c.Name})
	}

	byProject := map[string][]models.Version{}
	for _, v := range versions {
		byProject[v.ProjectID] = append(byProject[v.ProjectID], v)
	}

	var comments []models.Comment
	commentID := 1
	for _, project := range projects {
		for _, version := range byProject[project.ID] {
			n := 2 + rng.Intn(4)
			for i := 0; i < n; i++ {
				author := authors[rng.Intn(len(authors))]
				resolved := rng.Float64() > 0.4
				createdAt := baseDate.AddDate(0, 0, -rng.Intn(30))

				c := models.Comment{
					ID:         fmt.Sprintf("comment-%d", commentID),
					ProjectID:  project.ID,
					VersionID:  version.ID,
					AuthorID:   author.id,
					AuthorType: author.authorType,
					AuthorName: author.name,
					Content:    commentTemplates[rng.Intn(len(commentTemplates))],
					Status:     models.CommentStatusOpen,
					CreatedAt:  createdAt,
				}
				commentID++
				if rng.Float64() > 0.6 {
					c.Coordinate = &models.Position{X: rng.Float64() * 8, Y: rng.Float64() * 3, Z: rng.Float64() * 8}
				}
				if resolved {
					resolvedAt := createdAt.AddDate(0, 0, 2)
					c.Status = models.CommentStatusResolved
					c.ResolvedAt = &resolvedAt
				}
				comments = append(comments, c)
			}
		}
	}
	return comments
}

// approvalsFor opens one pending sign-off per version still awaiting review.
func approvalsFor(versions []models.Version) []models.Approval {
	var approvals []models.Approval
	for _, v := range versions {
		if v.ApprovalState != models.ApprovalStatePending {
			continue
		}
		approvals = append(approvals, models.Approval{
			ID:          "approval-" + v.ID,
			ProjectID:   v.ProjectID,
			VersionID:   v.ID,
			RequestedAt: v.CreatedAt,
			Status:      models.ApprovalStatusPending,
		})
	}
	return approvals
}

func Notifications() []models.Notification {
	at := func(d, h, m int) time.Time {
		return time.Date(2026, time.February, d, h, m, 0, 0, time.UTC)
	}
	return []models.Notification{
		{ID: "n1", Type: models.NotificationTypeApproval, Title: "Approval Requested", Message: "Version 4 of Manhattan Office Suite is awaiting approval.", Read: false, CreatedAt: at(11, 10, 30), Link: "/projects/p2"},
		{ID: "n2", Type: models.NotificationTypeComment, Title: "New Comment", Message: "Sarah Mitchell commented on Lakeview Penthouse v5.", Read: false, CreatedAt: at(11, 9, 15), Link: "/projects/p1"},
		{ID: "n3", Type: models.NotificationTypeVersion, Title: "New Version Created", Message: "Alex Rivera created version 3 for Chicago Townhouse.", Read: false, CreatedAt: at(10, 16, 45), Link: "/projects/p16"},
		{ID: "n4", Type: models.NotificationTypeExport, Title: "Export Ready", Message: "PDF export for Malibu Beach House v7 is ready for download.", Read: true, CreatedAt: at(10, 14, 20), Link: "/projects/p3"},
		{ID: "n5", Type: models.NotificationTypeApproval, Title: "Version Approved", Message: "Napa Valley Tasting Room v6 has been approved.", Read: true, CreatedAt: at(9, 11, 0), Link: "/projects/p6"},
		{ID: "n6", Type: models.NotificationTypeComment, Title: "Comment Resolved", Message: "Ryan O'Brien resolved a comment on Seattle Co-Working Hub.", Read: true, CreatedAt: at(9, 9, 30), Link: "/projects/p10"},
		{ID: "n7", Type: models.NotificationTypeSystem, Title: "Storage Alert", Message: "Storage usage has reached 75%. Consider archiving old projects.", Read: false, CreatedAt: at(8, 8, 0)},
		{ID: "n8", Type: models.NotificationTypeVersion, Title: "New Version", Message: "Maya Johnson created version 5 for Brooklyn Loft Conversion.", Read: true, CreatedAt: at(7, 15, 30), Link: "/projects/p7"},
		{ID: "n9", Type: models.NotificationTypeComment, Title: "New Comment", Message: "David Chen commented on Austin Smart Home v4.", Read: true, CreatedAt: at(6, 12, 0), Link: "/projects/p5"},
		{ID: "n10", Type: models.NotificationTypeApproval, Title: "Changes Requested", Message: "Client requested changes on Nashville Recording Studio v4.", Read: false, CreatedAt: at(5, 17, 0), Link: "/projects/p17"},
	}
}

type activityTemplate struct {
	eventType    string
	actors       []string
	descriptions []string
}

var activityTemplates = []activityTemplate{
	{models.ActivityVersionCreated, []string{"Alex Rivera", "Maya Johnson", "Ryan O'Brien", "Sofia Nguyen"}, []string{"created version {v} for {p}", "uploaded new scan data for {p}"}},
	{models.ActivityCommentAdded, []string{"Admin", "Sarah Mitchell", "Alex Rivera", "James Thornton"}, []string{"commented on {p} version {v}", "added feedback on {p}"}},
	{models.ActivityApprovalChanged, []string{"Admin"}, []string{"approved version {v} of {p}", "requested changes on {p} v{v}"}},
	{models.ActivityExportGenerated, []string{"System", "Admin"}, []string{"generated PDF export for {p}", "created DXF export for {p} v{v}"}},
	{models.ActivityProjectCreated, []string{"Admin"}, []string{"created project {p}"}},
	{models.ActivityClientPortalView, []string{"Sarah Mitchell", "Elena Rodriguez", "James Thornton"}, []string{"viewed {p} in client portal", "accessed version {v} via portal"}},
}

func activityFor(projects []models.Project, rng *rand.Rand) []models.ActivityEvent {
	var events []models.ActivityEvent
	for i := 0; i < 50; i++ {
		tmpl := activityTemplates[rng.Intn(len(activityTemplates))]
		project := projects[rng.Intn(len(projects))]
		version := rng.Intn(versionCounts[project.ID]) + 1

		desc := tmpl.descriptions[rng.Intn(len(tmpl.descriptions))]
		desc = strings.Replace(desc, "{p}", project.Name, 1)
		desc = strings.Replace(desc, "{v}", fmt.Sprintf("%d", version), 1)

		events = append(events, models.ActivityEvent{
			ID:          fmt.Sprintf("event-%d", i+1),
			ProjectID:   project.ID,
			Type:        tmpl.eventType,
			Actor:       tmpl.actors[rng.Intn(len(tmpl.actors))],
			Description: desc,
			CreatedAt:   baseDate.AddDate(0, 0, -rng.Intn(30)),
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events
}

func exportsFor(projects []models.Project, rng *rand.Rand) []models.ExportFile {
	formats := []string{
		models.ExportFormatPDF, models.ExportFormatJPG, models.ExportFormatDXF,
		models.ExportFormatOBJ, models.ExportFormatSTL,
	}
	var exports []models.ExportFile
	exportID := 1
	for _, project := range projects[:15] {
		n := 1 + rng.Intn(3)
		latest := versionCounts[project.ID]
		for i := 0; i < n; i++ {
			format := formats[rng.Intn(len(formats))]
			exports = append(exports, models.ExportFile{
				ID:          fmt.Sprintf("export-%d", exportID),
				ProjectID:   project.ID,
				VersionID:   fmt.Sprintf("v-%s-%d", project.ID, latest),
				Type:        format,
				Filename:    fmt.Sprintf("%s_v%d.%s", strings.ReplaceAll(project.Name, " ", "_"), latest, format),
				FileSize:    int64(rng.Intn(50000) + 500),
				GeneratedBy: "System",
				CreatedAt:   baseDate.AddDate(0, 0, -rng.Intn(60)),
				URL:         "#",
			})
			exportID++
		}
	}
	return exports
}

func ProductCategories() []models.ProductCategory {
	return []models.ProductCategory{
		{ID: "cat1", Name: "Sofas & Seating", Description: "Living room and lounge seating solutions"},
		{ID: "cat2", Name: "Tables & Desks", Description: "Dining, coffee, and work tables"},
		{ID: "cat3", Name: "Lighting", Description: "Ambient, task, and accent lighting"},
		{ID: "cat4", Name: "Storage", Description: "Shelving, cabinets, and storage solutions"},
		{ID: "cat5", Name: "Rugs & Textiles", Description: "Floor coverings and fabric accents"},
		{ID: "cat6", Name: "Accessories", Description: "Decorative objects and accessories"},
	}
}

func Products() []models.ProductItem {
	return []models.ProductItem{
		{ID: "prod1", Name: "Aria Modular Sofa", Brand: "Restoration Hardware", SKU: "RH-AMS-001", Price: 6350, Category: "Furniture", Supplier: "Restoration Hardware", LeadTime: "6-8 weeks", Dimensions: "280 x 100 x 75 cm", SourceURL: "https://rh.com/aria-modular"},
		{ID: "prod2", Name: "Executive Leather Chair", Brand: "Herman Miller", SKU: "HM-ELC-002", Price: 3150, Category: "Furniture", Supplier: "Herman Miller", LeadTime: "3-4 weeks", Dimensions: "65 x 65 x 110 cm"},
		{ID: "prod3", Name: "Scandinavian Accent Chair", Brand: "Fritz Hansen", SKU: "FH-SAC-003", Price: 1500, Category: "Furniture", Supplier: "Fritz Hansen", LeadTime: "4-6 weeks", Dimensions: "70 x 70 x 80 cm"},
		{ID: "prod4", Name: "Marble Console Table", Brand: "CB2", SKU: "CB2-MCT-004", Price: 1850, Category: "Furniture", Supplier: "CB2", LeadTime: "2-3 weeks", Dimensions: "120 x 35 x 80 cm"},
		{ID: "prod5", Name: "Standing Conference Table", Brand: "Steelcase", SKU: "SC-SCT-005", Price: 4000, Category: "Furniture", Supplier: "Steelcase", LeadTime: "4-6 weeks", Dimensions: "240 x 120 x 110 cm"},
		{ID: "prod6", Name: "Sculptural Pendant Light", Brand: "Flos", SKU: "FL-SPL-006", Price: 1100, Category: "Lighting", Supplier: "Flos", LeadTime: "3-5 weeks", Dimensions: "50 x 50 x 60 cm"},
		{ID: "prod7", Name: "Linear Track Lighting", Brand: "Bega", SKU: "BG-LTL-007", Price: 850, Category: "Lighting", Supplier: "Bega", LeadTime: "2-4 weeks", Dimensions: "120 x 8 x 12 cm"},
		{ID: "prod8", Name: "Walnut Bookshelf System", Brand: "USM", SKU: "USM-WBS-008", Price: 4000, Category: "Furniture", Supplier: "USM", LeadTime: "6-8 weeks", Dimensions: "200 x 40 x 220 cm"},
		{ID: "prod9", Name: "Hand-Knotted Persian Rug", Brand: "Restoration Hardware", SKU: "RH-HPR-009", Price: 7500, Category: "Textiles", Supplier: "Restoration Hardware", LeadTime: "8-12 weeks", Dimensions: "300 x 200 cm"},
		{ID: "prod10", Name: "Commercial Floor Tile", Brand: "Porcelanosa", SKU: "PO-CFT-010", Price: 25, Category: "Flooring", Supplier: "Porcelanosa", LeadTime: "1-2 weeks", Dimensions: "60 x 60 cm"},
		{ID: "prod11", Name: "Ceramic Vase Collection", Brand: "Jonathan Adler", SKU: "JA-CVC-011", Price: 400, Category: "Wall Decor", Supplier: "Jonathan Adler", LeadTime: "1-2 weeks", Dimensions: "15 x 15 x 30 cm"},
		{ID: "prod12", Name: "Brass Wall Sconce", Brand: "Visual Comfort", SKU: "VC-BWS-012", Price: 450, Category: "Lighting", Supplier: "Visual Comfort", LeadTime: "3-5 weeks", Dimensions: "15 x 12 x 25 cm"},
		{ID: "prod13", Name: "Live Edge Dining Table", Brand: "West Elm", SKU: "WE-LDT-013", Price: 3500, Category: "Furniture", Supplier: "West Elm", LeadTime: "4-6 weeks", Dimensions: "200 x 100 x 76 cm"},
		{ID: "prod14", Name: "Velvet Throw Pillow Set", Brand: "West Elm", SKU: "WE-VTP-014", Price: 200, Category: "Textiles", Supplier: "West Elm", LeadTime: "1 week", Dimensions: "50 x 50 cm"},
		{ID: "prod15", Name: "Filing Cabinet System", Brand: "Steelcase", SKU: "SC-FCS-015", Price: 1100, Category: "Furniture", Supplier: "Steelcase", LeadTime: "2-3 weeks", Dimensions: "45 x 60 x 100 cm"},
		{ID: "prod16", Name: "Abstract Wall Art", Brand: "Minted", SKU: "MT-AWA-016", Price: 525, Category: "Wall Decor", Supplier: "Minted", LeadTime: "1-2 weeks", Dimensions: "90 x 120 cm"},
		{ID: "prod17", Name: "Oak Side Table", Brand: "Article", SKU: "AR-OST-017", Price: 400, Category: "Furniture", Supplier: "Article", LeadTime: "2-3 weeks", Dimensions: "45 x 45 x 55 cm"},
		{ID: "prod18", Name: "Lounge Chair", Brand: "Knoll", SKU: "KN-LC-018", Price: 4250, Category: "Furniture", Supplier: "Knoll", LeadTime: "6-8 weeks", Dimensions: "80 x 85 x 80 cm"},
		{ID: "prod19", Name: "Smart LED Panel", Brand: "Philips Hue", SKU: "PH-SLP-019", Price: 300, Category: "Lighting", Supplier: "Philips", LeadTime: "1 week", Dimensions: "60 x 60 x 5 cm"},
		{ID: "prod20", Name: "Entryway Storage Bench", Brand: "Crate & Barrel", SKU: "CB-ESB-020", Price: 1150, Category: "Furniture", Supplier: "Crate & Barrel", LeadTime: "3-4 weeks", Dimensions: "120 x 40 x 50 cm"},
	}
}

func AIIdeaSets() []models.AIIdeaSet {
	return []models.AIIdeaSet{
		{
			ID: "ai1", Prompt: "Modern Minimalist Living Room - Mid-Range", RoomType: "Living Room", Style: "Modern Minimalist",
			CreatedAt: day(2026, 2, 5), SavedItems: []string{"concept-1", "concept-3"},
			Images: []string{"concept-clean-lines.jpg", "concept-scandi-warmth.jpg", "concept-urban-chic.jpg", "concept-monochrome.jpg"},
		},
		{
			ID: "ai2", Prompt: "Boutique Luxury Hotel Lobby - Premium", RoomType: "Hotel Lobby", Style: "Boutique Luxury",
			CreatedAt: day(2026, 1, 28), SavedItems: []string{},
			Images: []string{"concept-grand-entrance.jpg", "concept-intimate-welcome.jpg", "concept-art-deco.jpg", "concept-modern-glam.jpg"},
		},
	}
}
