package constant

type Category string

const (
	CategoryCrime          Category = "crime"
	CategoryRoad           Category = "road"
	CategoryInfrastructure Category = "infrastructure"
	CategoryEnvironment    Category = "environment"
	CategoryTraffic        Category = "traffic"
	CategorySecurity       Category = "security"
	CategoryServices       Category = "services"
	CategoryOther          Category = "other"
)

var Categories = []Category{
	CategoryCrime,
	CategoryRoad,
	CategoryInfrastructure,
	CategoryEnvironment,
	CategoryTraffic,
	CategorySecurity,
	CategoryServices,
	CategoryOther,
}

func IsCategory(value string) bool {
	for _, c := range Categories {
		if string(c) == value {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func IsPriority(value string) bool {
	for _, p := range Priorities {
		if string(p) == value {
			return true
		}
	}
	return false
}

type Status string

// Status only ever moves forward and only through external moderation.
const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusResolved Status = "resolved"
)

var Statuses = []Status{StatusPending, StatusVerified, StatusResolved}

func IsStatus(value string) bool {
	for _, s := range Statuses {
		if string(s) == value {
			return true
		}
	}
	return false
}

// Regions are the administrative regions (wilayas) a reporter may pick instead of typing an address.
var Regions = []string{
	"Adrar", "Chlef", "Laghouat", "Oum El Bouaghi", "Batna", "Bejaia", "Biskra", "Bechar",
	"Blida", "Bouira", "Tamanrasset", "Tebessa", "Tlemcen", "Tiaret", "Tizi Ouzou", "Algiers",
	"Djelfa", "Jijel", "Setif", "Saida", "Skikda", "Sidi Bel Abbes", "Annaba", "Guelma",
	"Constantine", "Medea", "Mostaganem", "M'Sila", "Mascara", "Ouargla", "Oran", "El Bayadh",
	"Illizi", "Bordj Bou Arreridj", "Boumerdes", "El Tarf", "Tindouf", "Tissemsilt", "El Oued",
	"Khenchela", "Souk Ahras", "Tipaza", "Mila", "Ain Defla", "Naama", "Ain Temouchent",
	"Ghardaia", "Relizane",
}

func IsRegion(value string) bool {
	for _, r := range Regions {
		if r == value {
			return true
		}
	}
	return false
}

const (
	TopicReports     = "reports"
	TopicReportLikes = "report_likes"
	TopicReportViews = "report_views"
)

const (
	ReportsPerPage      = 6
	RecentReportsLimit  = 5
	HomeRecentReports   = 3
	DraftKeyPrefix      = "draft:report:"
	RateLimitKeyPrefix  = "ratelimit:"
	ReportDetailPathFmt = "/report/%s"
)

type EmergencyContact struct {
	Label  string `json:"label"`
	Number string `json:"number"`
	URI    string `json:"uri"`
}

var EmergencyContacts = []EmergencyContact{
	{Label: "police", Number: "17", URI: "tel:17"},
	{Label: "civil_protection", Number: "14", URI: "tel:14"},
}
