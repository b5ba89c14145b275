package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/media"
)

func testContent() content.Content {
	return content.Content{
		Profile: content.Profile{
			Name:        "Jane Park",
			Headline:    "Backend engineer",
			Subheadline: "Seoul",
			Summary:     []string{"Builds services"},
			Contacts: []content.Contact{
				{Type: "GitHub", Label: "janepark", URL: "https://github.com/janepark"},
			},
		},
		Projects: []content.Project{
			{
				Title:       "Tide",
				Period:      "2024",
				Description: "Tide tables",
				TechStack:   []string{"Go"},
				Links:       []content.Link{{Label: "Source", URL: "https://github.com/janepark/tide"}},
				Media: []media.Item{
					{Type: media.TypeImage, Src: "/img/tide.png", Alt: "Tide screenshot"},
					{Type: media.TypeVideo, Src: "./tide.mp4", Poster: "tide.jpg"},
					{Type: media.TypeIframe, Src: "https://www.youtube.com/embed/VIDEOID"},
				},
			},
			{Title: "CI/CD + Kit", Description: "Pipelines"},
		},
		Resume: content.Resume{
			Experience: []content.ExperienceEntry{
				{
					Company: "Acme", Role: "Engineer", Period: "2022 - 2024",
					Summary:      "Platform team",
					Achievements: []string{"Cut deploy time"},
					Media:        []media.Item{{Type: media.TypeImage, Src: "acme.png"}},
				},
				{Company: "Pipe|Works", Role: "Intern", Period: "2020"},
			},
			Education: []content.EducationEntry{
				{
					School: "Hanseo University", Degree: "BSc", Period: "2019 - 2025", GPA: "4.1",
					Grades: map[string]content.SemesterRecord{
						"2024-1": {Semester: "Spring 2024", Subjects: []content.SubjectGrade{
							{Name: "Seminar", Credits: 1, PassFail: true, GPA: 4.5, Grade: "P"},
						}},
						"2025-1": {Semester: "Spring 2025", Subjects: []content.SubjectGrade{
							{Name: "Compilers", Credits: 3, GPA: 3.95, Grade: "A", Highlight: true},
						}},
						"2024-2": {Semester: "Fall 2024"},
					},
				},
				{School: "Night School", Degree: "Certificate", Period: "2018"},
			},
			Certifications: []content.Certification{{Name: "CKA", Issuer: "CNCF", Year: "2023"}},
			Skills:         []content.SkillGroup{{Category: "Languages", Items: []string{"Go"}}},
		},
	}
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Store == nil {
		store, err := content.NewStore(testContent())
		require.NoError(t, err)
		opts.Store = store
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func htmx(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	return get(t, s, target, "HX-Request", "true")
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}
