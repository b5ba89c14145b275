package web

// sectionText is the fixed copy around each home page section.
type sectionText struct {
	Eyebrow     string
	Title       string
	Description string
}

var (
	HeroEyebrow = "Portfolio"

	ProjectsText = sectionText{
		Eyebrow:     "Work",
		Title:       "Projects",
		Description: `Things I have built, from weekend experiments to production systems. Open one for media, highlights and links.`,
	}

	ExperienceText = sectionText{
		Eyebrow:     "Career",
		Title:       "Experience",
		Description: `Where I have worked and what I shipped there.`,
	}

	SkillsText = sectionText{
		Eyebrow:     "Capabilities",
		Title:       "Skills",
		Description: `Languages, tools and platforms I reach for, grouped by category.`,
	}

	EducationText = sectionText{
		Eyebrow:     "Background",
		Title:       "Education & Certifications",
		Description: `Schools with a grade record link to a per-semester breakdown.`,
	}

	ContactText = sectionText{
		Eyebrow:     "Connect",
		Title:       "Contact",
		Description: `The quickest ways to reach me.`,
	}

	CertificationsTitle = "Certifications"
	FooterNote          = "Built from static content files."
)

// notFoundText holds the fallback copy per entity kind.
var notFoundText = map[string]string{
	kindProject:    "Project not found",
	kindExperience: "Experience not found",
	kindEducation:  "Education record not found",
	kindPage:       "Page not found",
}
