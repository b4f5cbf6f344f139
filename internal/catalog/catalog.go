// Package catalog holds the static baseline dataset the portal falls back to
// when the remote store is unreachable or empty. Reconciliation merges these
// records with live rows, so every accessor returns a fresh copy.
package catalog

import "github.com/veeda241/DAC-website/internal/entity"

// AdminID is the id of the seeded administrator account. The matching email
// and password live in config so the demo login can verify them.
const AdminID = "admin_dac"

var seedUsers = []entity.User{
	{
		ID:     AdminID,
		Name:   "Club Admin",
		Email:  "admin@dacportal.club",
		Role:   entity.RoleAdmin,
		Avatar: "https://placehold.co/150/000000/FFFFFF/png?text=Admin",
	},
}

var seedEvents = []entity.ClubEvent{
	{
		ID:          "e4",
		Title:       "Query Quest",
		Date:        "2026-02-02",
		Description: "An interactive workshop on DBMS and SQL with a quiz competition for first and second year students.",
		Location:    "AV Hall",
		ImageURL:    "/query_quest_banner.png",
		ReportURL:   "/query_quest_report.pdf",
	},
	{
		ID:               "e5",
		Title:            "Impact-AI-Thon",
		Date:             "2026-02-23",
		Description:      "A 24-hour national-level hackathon hosted by the Data Analytics Club. Innovate, collaborate, and compete to build impactful AI-powered solutions.",
		Location:         "Hackathon Center",
		ImageURL:         "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
		RegistrationLink: "https://forms.gle/impact-ai-thon-26",
	},
	{
		ID:          "e1",
		Title:       "DataVIZ 2025",
		Date:        "2025-02-15",
		Description: "Annual inter-college data visualization competition featuring real-world data challenges, workshops, and networking with industry experts.",
		Location:    "AV Hall",
		ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
		ReportURL:   "/report_event_2.pdf",
	},
	{
		ID:          "e2",
		Title:       "DAC Inauguration Ceremony",
		Date:        "2025-01-20",
		Description: "Official inauguration of the Data Analytics Club with keynote speakers, vision presentation, and team introduction.",
		Location:    "AV Hall",
		ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
		ReportURL:   "/DATA_ANALYTICS_CLUB.pdf",
	},
	{
		ID:          "e3",
		Title:       "From Idea to Innovation: A Student-Led Guide to Patent Filing",
		Date:        "2024-12-10",
		Description: "An informative session on the patent filing process, intellectual property rights, and how students can protect and commercialize their innovations.",
		Location:    "Hazer Hall",
		ImageURL:    "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=800",
	},
}

var seedReports = []entity.ClubReport{
	{
		ID:           "rep_1",
		Title:        "DAC Inauguration Ceremony Report",
		Date:         "2025-01-20",
		Description:  "Official report of the Data Analytics Club inauguration event, detailing the keynote sessions and vision launch.",
		ThumbnailURL: "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=400",
		FileURL:      "/DATA_ANALYTICS_CLUB.pdf",
		EventID:      "e2",
	},
	{
		ID:           "rep_2",
		Title:        "DataVIZ 2025 Report",
		Date:         "2025-02-15",
		Description:  "Comprehensive report on the DataVIZ 2025 competition, including participant metrics and winning project summaries.",
		ThumbnailURL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400",
		FileURL:      "/report_event_2.pdf",
		EventID:      "e1",
	},
	{
		ID:           "rep_3",
		Title:        "Idea to Innovation Workshop Report",
		Date:         "2024-12-10",
		Description:  "Summary of the patent filing guide workshop and intellectual property rights session.",
		ThumbnailURL: "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=400",
		FileURL:      "#",
		EventID:      "e3",
	},
	{
		ID:           "rep_4",
		Title:        "DAC General Report",
		Date:         "2026-01-15",
		Description:  "A comprehensive general report concerning the activities and impact of the Data Analytics Club.",
		ThumbnailURL: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400",
		FileURL:      "/dac_report.pdf",
	},
	{
		ID:           "rep_5",
		Title:        "Impact-AI-Thon Initial Document",
		Date:         "2026-01-16",
		Description:  "Official documentation for the Impact-AI-Thon event, including guidelines, themes, and submission details.",
		ThumbnailURL: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400",
		FileURL:      "/impact_aithon.pdf",
		EventID:      "e5",
	},
	{
		ID:           "rep_6",
		Title:        "Data Analytics Club Report",
		Date:         "2026-01-16",
		Description:  "Detailed report on the Data Analytics Club activities, achievements, and future plans.",
		ThumbnailURL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400",
		FileURL:      "/dac_club_report.pdf",
	},
	{
		ID:           "rep_7",
		Title:        "Query Quest Event Report",
		Date:         "2026-02-02",
		Description:  "Report for the Query Quest DBMS and SQL workshop and quiz competition.",
		ThumbnailURL: "/query_quest_banner.png",
		FileURL:      "/query_quest_report.pdf",
		EventID:      "e4",
	},
}

var seedPhotos = []entity.Photo{
	{ID: "p1", URL: "https://picsum.photos/id/1/600/400", Caption: "Coding late into the night", EventID: "e3"},
	{ID: "p2", URL: "https://picsum.photos/id/201/600/800", Caption: "Winner presentation", EventID: "e3"},
	{ID: "p3", URL: "https://picsum.photos/id/101/800/600", Caption: "Networking session", EventID: "e4"},
	{ID: "p4", URL: "https://picsum.photos/id/2/600/400", Caption: "Workshop brainstorming", EventID: "e2"},
	{ID: "p5", URL: "https://picsum.photos/id/3/600/800", Caption: "Keynote speaker", EventID: "e1"},
	{ID: "p6", URL: "https://picsum.photos/id/4/800/600", Caption: "Team lunch", EventID: "e1"},
}

var seedMentors = []entity.TeamMember{
	{
		ID:       "ment1",
		Name:     "Dr. S. Annabel",
		Role:     "Head of the Department",
		Bio:      "PhD in Machine Learning with over ten years of experience in AI research, leading the department with a vision for innovation and academic excellence.",
		ImageURL: "https://placehold.co/400x400?text=HoD",
		Year:     "Department Head",
		Skills:   []string{"Machine Learning", "AI Research", "Academic Leadership", "Deep Learning"},
	},
	{
		ID:       "ment2",
		Name:     "Mrs. B. Kalanchiam",
		Role:     "Faculty Advisor",
		Bio:      "Assistant Professor in the Department of Artificial Intelligence and Data Science with teaching interests in image processing and machine learning.",
		ImageURL: "https://placehold.co/400x400?text=Advisor",
		Year:     "Faculty Advisor",
		Skills:   []string{"Machine Learning", "Research", "Student Mentoring", "AI Development"},
	},
	{
		ID:       "ment3",
		Name:     "Mr. E. Nanmaran",
		Role:     "Industrial Expert",
		Bio:      "Corporate trainer and expert in BI and data analytics, skilled in SQL, Python, machine learning, and Power BI.",
		ImageURL: "https://placehold.co/400x400?text=Expert",
		Year:     "Corporate Trainer",
		Skills:   []string{"SQL", "Python", "Power BI", "Machine Learning", "Career Coaching"},
	},
}

var seedTeam = []entity.TeamMember{
	{
		ID:       "m1",
		Name:     "Kiruthik J",
		Role:     "Founder",
		Bio:      "Founder of the club with a strong interest in data analytics, AI-driven solutions, and team management.",
		ImageURL: "https://placehold.co/400x400?text=Founder",
		Year:     "Final Year, ADS",
		Skills:   []string{"Data Analytics", "Team Management", "Leadership"},
	},
	{
		ID:       "m2",
		Name:     "Aejaz A",
		Role:     "President",
		Bio:      "Aspiring data scientist focused on machine learning, explainable AI, and building intelligent systems.",
		ImageURL: "https://placehold.co/400x400?text=President",
		Year:     "Pre Final Year, ADS",
		Skills:   []string{"Leadership", "Python", "Machine Learning", "Public Speaking"},
	},
	{
		ID:       "m3",
		Name:     "Marcben S",
		Role:     "Vice President",
		Bio:      "Driven learner passionate about turning concepts into practical solutions through curiosity and consistent growth.",
		ImageURL: "https://placehold.co/400x400?text=VP",
		Year:     "Second Year",
		Skills:   []string{"AI & Programming", "Problem-Solving", "Communication"},
	},
	{
		ID:       "m4",
		Name:     "Nowrin B",
		Role:     "Technical Lead",
		Bio:      "Enthusiastic learner in data science and AI, exploring datasets to uncover patterns and meaningful insights.",
		ImageURL: "https://placehold.co/400x400?text=TechLead",
		Year:     "Pre Final Year, ADS",
		Skills:   []string{"Python", "R", "SQL", "Power BI", "Tableau"},
	},
	{
		ID:       "m5",
		Name:     "Vyas S",
		Role:     "Event Coordinator",
		Bio:      "AI/ML student and full-stack developer who organizes campus activities and promotes AI adoption.",
		ImageURL: "https://placehold.co/400x400?text=Events",
		Year:     "Second Year, ADS",
		Skills:   []string{"AI/ML Development", "React Development", "Community Leadership"},
	},
	{
		ID:       "m6",
		Name:     "Krissal V",
		Role:     "Dataset Manager",
		Bio:      "Passionate about data science and analytics, transforming insights into meaningful outcomes.",
		ImageURL: "https://placehold.co/400x400?text=Datasets",
		Year:     "Second Year, ADS",
		Skills:   []string{"Programming", "Problem-Solving", "Critical Thinking"},
	},
	{
		ID:       "m7",
		Name:     "Dinesh P",
		Role:     "Social Media Lead",
		Bio:      "Explorer who thrives on uncovering new tech, sparking creativity, and turning visions into tangible solutions.",
		ImageURL: "https://placehold.co/400x400?text=Social",
		Year:     "Second Year, ADS",
		Skills:   []string{"Content Creation", "Creative Problem-Solving", "Communication"},
	},
}

// Users returns the seed user collection.
func Users() []entity.User { return copySlice(seedUsers) }

// Events returns the seed event collection.
func Events() []entity.ClubEvent { return copySlice(seedEvents) }

// Tasks returns the seed task collection. The club starts with none; tasks
// are created through the dashboard.
func Tasks() []entity.Task { return []entity.Task{} }

// Reports returns the seed report collection.
func Reports() []entity.ClubReport { return copySlice(seedReports) }

// Photos returns the seed photo collection.
func Photos() []entity.Photo { return copySlice(seedPhotos) }

// Mentors returns the faculty mentor roster.
func Mentors() []entity.TeamMember { return copySlice(seedMentors) }

// Team returns the core team roster.
func Team() []entity.TeamMember { return copySlice(seedTeam) }

func copySlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}
