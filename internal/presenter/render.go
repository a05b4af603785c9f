package presenter

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

var resultTemplate = template.Must(template.New("result").Parse(`<div class="result">
  <section class="card score-card">
    <h2>Match Score</h2>
    <div class="score tone-{{.Tone}}">{{.MatchScore}}%</div>
    <div class="label">{{.Label}}</div>
    <div class="progress"><div class="progress-bar tone-{{.Tone}}" style="width: {{.MatchScore}}%"></div></div>
    <p class="summary">{{.Summary}}</p>
  </section>
  <div class="grid">
{{- range $s := .Sections}}
    <section class="card section section-{{.Kind}}">
      <h3 class="tone-{{.Tone}}">{{.Title}}</h3>
      {{- if .Badges}}
      <div class="badges">{{range .Items}}<span class="badge">{{.}}</span>{{end}}</div>
      {{- else}}
      <ul>{{range .Items}}<li class="dot-{{$s.Tone}}">{{.}}</li>{{end}}</ul>
      {{- end}}
    </section>
{{- end}}
  </div>
</div>
`))

// RenderHTML writes the result fragment. A nil view writes nothing.
func RenderHTML(w io.Writer, view *ResultView) error {
	if view == nil {
		return nil
	}
	if err := resultTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	return nil
}

// RenderText writes a plain-text report for terminals. A nil view writes nothing.
func RenderText(w io.Writer, view *ResultView) error {
	if view == nil {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Match Score: %d%% (%s)\n", view.MatchScore, view.Label)
	fmt.Fprintf(&b, "%s\n", progressBar(view.MatchScore, 40))
	if view.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", view.Summary)
	}

	for _, s := range view.Sections {
		fmt.Fprintf(&b, "\n%s\n%s\n", s.Title, strings.Repeat("-", len(s.Title)))
		if len(s.Items) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		if s.Badges {
			fmt.Fprintf(&b, "  [%s]\n", strings.Join(s.Items, "] ["))
			continue
		}
		for _, item := range s.Items {
			fmt.Fprintf(&b, "  • %s\n", item)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func progressBar(score, width int) string {
	filled := min(max(score*width/100, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
