package http

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/fwojciec/luminary"
	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
)

var profileTmpl = template.Must(template.New("profile").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" width="240">{{end}}
{{if .Summary}}<p>{{.Summary}}</p>{{end}}
{{if .Timeline}}<h2>Timeline</h2>{{.Timeline}}{{end}}
{{if .Works}}<h2>Notable Works</h2>{{.Works}}{{end}}
{{if .Quotes}}<h2>Quotes</h2>{{.Quotes}}{{end}}
{{if .URL}}<p><a href="{{.URL}}">Read the full article</a></p>{{end}}
</body>
</html>
`))

type profilePage struct {
	Title    string
	ImageURL string
	Summary  string
	URL      string
	Timeline template.HTML
	Works    template.HTML
	Quotes   template.HTML
}

// handleProfilePage renders a server-side HTML view of a profile. The
// timeline, works and quotes blocks are built as markdown and converted
// with goldmark.
func (s *Server) handleProfilePage(w http.ResponseWriter, r *http.Request) {
	profile, err := s.Profiles.BuildProfile(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, luminary.ErrorMessage(err), statusFromCode(luminary.ErrorCode(err)))
		return
	}

	page := profilePage{
		Title:    profile.Biography.Title,
		ImageURL: profile.ImageURL,
		Summary:  profile.Biography.Summary,
		URL:      profile.Biography.URL,
		Timeline: renderMarkdown(timelineMarkdown(profile.Timeline)),
		Works:    renderMarkdown(luminary.FormatWorks(profile.Works)),
		Quotes:   renderMarkdown(luminary.FormatQuotes(profile.Quotes)),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := profileTmpl.Execute(w, page); err != nil {
		s.logger.Error("render profile page", "err", err)
	}
}

func timelineMarkdown(t luminary.Timeline) string {
	if len(t.Events) == 0 {
		return ""
	}
	lines := make([]string, 0, len(t.Events))
	for _, e := range t.Events {
		lines = append(lines, fmt.Sprintf("- **%d** %s", e.Year, e.Text))
	}
	return strings.Join(lines, "\n")
}

func renderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
