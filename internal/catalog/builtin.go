package catalog

// Builtin returns the compiled-in resource catalog. Callers get a fresh
// Catalog value each time, but the underlying records are shared and
// must be treated as read-only.
func Builtin() *Catalog {
	return &Catalog{
		Resources: builtinResources,
		Clusters:  builtinClusters,
	}
}

func ptr(s string) *string { return &s }

var builtinResources = []ResourceRecord{
	{
		ID:            "library-flex",
		Name:          "Public Library Flex Workspaces",
		Category:      CategoryWorkspace,
		Description:   "Quiet desks, Wi-Fi, printing, and meeting rooms widely available with a library card.",
		Tags:          []string{"library", "study", "cowork", "wifi", "quiet", "meeting rooms", "printing"},
		Availability:  "Daily, typically 9am - 8pm",
		ProofRequired: ptr("Library card (free for local residents)"),
		Coverage:      Nationwide(),
		Highlights:    []string{"Reliable gigabit Wi-Fi", "Free study rooms", "On-site librarians for research help"},
	},
	{
		ID:            "city-civic-centers",
		Name:          "City Civic Innovation Centers",
		Category:      CategoryWorkspace,
		Description:   "Municipal hubs that offer booking-based coworking zones, podcast studios, and maker spaces for residents.",
		Tags:          []string{"coworking", "maker", "podcast", "studio", "residents", "city hall"},
		Availability:  "Weekdays, 8am - 6pm",
		ProofRequired: ptr("Resident ID or utility bill"),
		Coverage:      InCities("New York", "San Francisco", "Austin", "Chicago", "Seattle"),
		Highlights:    []string{"Reservable media labs", "Monthly community workshops", "Mentorship office hours"},
	},
	{
		ID:           "park-wifi",
		Name:         "Connected Parks Program",
		Category:     CategoryInternet,
		Description:  "Outdoor Wi-Fi blankets public parks and plazas with power kiosks and device charging lockers.",
		Tags:         []string{"wifi", "internet", "outdoor", "park", "power", "charging"},
		Availability: "24/7",
		Notes:        ptr("Signal strongest near kiosks; best for email, research, and streaming lectures."),
		Coverage:     InCities("New York", "Los Angeles", "Boston", "Philadelphia"),
		Highlights:   []string{"Fast 150 Mbps download", "USB-C and AC charging", "Live park events calendar"},
	},
	{
		ID:           "community-fridge",
		Name:         "Community Fridge Network",
		Category:     CategoryFood,
		Description:  "Volunteer-powered fridges stocked daily with produce, prepared meals, and hygiene kits.",
		Tags:         []string{"food", "groceries", "meals", "mutual aid", "neighbors", "volunteer"},
		Availability: "24/7 (stock varies by location)",
		Notes:        ptr("Bring reusable bags; leave items you do not need."),
		Coverage:     Nationwide(),
		Highlights:   []string{"Real-time restock updates", "Accessible refrigeration", "Local volunteer support"},
	},
	{
		ID:           "museum-first-friday",
		Name:         "Museum First Fridays",
		Category:     CategoryCulture,
		Description:  "Partner museums open exhibitions after-hours with live music and no admission fees once a month.",
		Tags:         []string{"museum", "art", "culture", "first friday", "events", "music"},
		Availability: "First Friday each month, 5pm - 10pm",
		Coverage:     InCities("Denver", "Phoenix", "Kansas City", "Portland"),
		Highlights:   []string{"Local artist showcases", "Free docent-led tours", "Community vendor market"},
	},
	{
		ID:            "skill-up-labs",
		Name:          "Skill Up Labs",
		Category:      CategoryLearning,
		Description:   "City-funded digital labs offering certification-aligned courses, mentorship, and career coaching.",
		Tags:          []string{"coding", "training", "courses", "career", "certification", "resume"},
		Availability:  "Mon - Sat, 9am - 9pm",
		ProofRequired: ptr("Registration (takes <5 minutes)"),
		Coverage:      InCities("Atlanta", "Detroit", "Miami", "Cleveland"),
		Highlights:    []string{"Industry mentors", "Laptop lending library", "Childcare on-site"},
	},
	{
		ID:           "free-clinics",
		Name:         "Community Care Clinics",
		Category:     CategoryHealth,
		Description:  "Federally qualified health centers with sliding scale pricing, free screenings, and telehealth drop-ins.",
		Tags:         []string{"health", "clinic", "care", "wellness", "primary care", "mental health"},
		Availability: "Varies by clinic; typically extended evening hours",
		Notes:        ptr("Most services free with proof of income; emergency walk-ins welcome."),
		Coverage:     Nationwide(),
		Highlights:   []string{"Licensed nurse practitioners", "Behavioral health counselors", "Medication assistance"},
	},
	{
		ID:           "financial-empowerment",
		Name:         "Financial Empowerment Centers",
		Category:     CategoryFinance,
		Description:  "One-on-one financial coaching, debt negotiation support, and public benefits screening at no cost.",
		Tags:         []string{"finance", "debt", "tax", "budget", "credit", "benefits"},
		Availability: "By appointment; same-week bookings available",
		Coverage:     InCities("New York", "St. Louis", "Dallas", "San Antonio", "Charlotte"),
		Highlights:   []string{"Certified financial counselors", "Student loan workshops", "Credit report clean-up"},
	},
	{
		ID:            "bike-share-equity",
		Name:          "Bike Share Equity Pass",
		Category:      CategoryMobility,
		Description:   "Discounted or free annual passes for bike share systems for riders with qualifying income levels.",
		Tags:          []string{"transport", "bike", "mobility", "commute", "low-income", "outdoor"},
		Availability:  "Daily, 24/7 access",
		ProofRequired: ptr("Income verification or public assistance card"),
		Coverage:      InCities("Washington DC", "Philadelphia", "Chicago", "Seattle", "Minneapolis"),
		Highlights:    []string{"Unlimited 45-minute trips", "Safety classes included", "Helmets at community centers"},
	},
}

// builtinClusters maps query terms to the category they imply, so a
// resource can match on intent even without a literal tag hit.
var builtinClusters = map[string]Category{
	"cowork":        CategoryWorkspace,
	"work":          CategoryWorkspace,
	"study room":    CategoryWorkspace,
	"wifi":          CategoryInternet,
	"hotspot":       CategoryInternet,
	"internet":      CategoryInternet,
	"groceries":     CategoryFood,
	"meal":          CategoryFood,
	"food pantry":   CategoryFood,
	"museum":        CategoryCulture,
	"art":           CategoryCulture,
	"live music":    CategoryCulture,
	"course":        CategoryLearning,
	"class":         CategoryLearning,
	"coding":        CategoryLearning,
	"clinic":        CategoryHealth,
	"therapist":     CategoryHealth,
	"doctor":        CategoryHealth,
	"financial aid": CategoryFinance,
	"taxes":         CategoryFinance,
	"commute":       CategoryMobility,
	"bike":          CategoryMobility,
	"transit":       CategoryMobility,
}
