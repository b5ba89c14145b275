package content

import "github.com/Zachkp/portfolio/internal/media"

func sampleContent() Content {
	return Content{
		Profile: Profile{
			Name:     "Jane Park",
			Headline: "Backend engineer",
			Summary:  []string{"Builds services", "Writes Go"},
			Contacts: []Contact{
				{Type: "Email", Label: "jane@example.com", URL: "mailto:jane@example.com"},
				{Type: "GitHub", Label: "janepark", URL: "https://github.com/janepark"},
			},
		},
		Projects: []Project{
			{
				Title:       "Tide",
				Period:      "2024",
				Description: "Tide tables",
				Media: []media.Item{
					{Type: media.TypeImage, Src: "/img/tide.png"},
					{Type: media.TypeVideo, Src: "tide.mp4"},
				},
			},
			{Title: "Kiln", Description: "Build cache"},
		},
		Resume: Resume{
			Experience: []ExperienceEntry{
				{Company: "Acme", Role: "Engineer", Period: "2022 - 2024"},
				{Company: "Acme", Role: "Intern", Period: "2021"},
				{Company: "Pipe|Works", Role: "Engineer", Period: "2020"},
			},
			Education: []EducationEntry{
				{
					School: "Hanseo University",
					Degree: "BSc Computer Science",
					Period: "2019 - 2025",
					GPA:    "4.1 / 4.5",
					Grades: map[string]SemesterRecord{
						"2024-1": {Semester: "Spring 2024"},
						"2025-1": {Semester: "Spring 2025"},
						"2024-2": {Semester: "Fall 2024"},
					},
				},
				{School: "Night School", Degree: "Certificate", Period: "2018"},
			},
			Certifications: []Certification{{Name: "CKA", Issuer: "CNCF", Year: "2023"}},
			Skills:         []SkillGroup{{Category: "Languages", Items: []string{"Go", "SQL"}}},
		},
	}
}
