package media

import (
	"bytes"
	"html/template"

	"github.com/orgball2608/newsportal/internal/domain"
)

// ControlClass marks elements whose clicks must not trigger the card's
// navigation callback.
const ControlClass = "video-control"

var fragments = template.Must(template.New("media").Parse(`
{{- define "image" -}}
<img src="{{.Src}}" alt="{{.Alt}}" class="{{.Class}}"{{if .Href}} data-href="{{.Href}}"{{end}} loading="lazy" onerror="this.onerror=null;this.src='{{.Placeholder}}'">
{{- end -}}
{{- define "video" -}}
<div class="media-video {{.Class}}"{{if .Href}} data-href="{{.Href}}"{{end}}>
<video class="media-video__player" playsinline preload="metadata"><source src="{{.Src}}" type="video/{{.Subtype}}">Your browser doesn't support videos</video>
<button type="button" class="media-video__play {{.Control}}" aria-label="Play video"><span class="media-video__icon {{.Control}}">&#9654;</span></button>
</div>
{{- end -}}`))

type fragment struct {
	Src         string
	Alt         string
	Class       string
	Href        string
	Placeholder string
	Subtype     string
	Control     string
}

// Renderer produces the HTML for a card's media unit.
type Renderer struct {
	resolver Resolver
}

func NewRenderer(resolver Resolver) *Renderer {
	return &Renderer{resolver: resolver}
}

// Render displays the first unit of items inside class. Videos get an inline
// play button overlay; images swap to the placeholder when they fail to load.
// href, when set, is where a click on the card navigates.
func (r *Renderer) Render(items domain.MediaList, class, href string) template.HTML {
	f := fragment{
		Class:       class,
		Href:        href,
		Placeholder: r.resolver.Placeholder(),
		Control:     ControlClass,
	}

	first, ok := items.First()
	if !ok {
		f.Src = r.resolver.Placeholder()
		f.Alt = "Default News"
		return r.exec("image", f)
	}

	f.Src = r.resolver.Resolve(first.URL)
	if first.IsVideo() {
		f.Subtype = Subtype(first.URL)
		return r.exec("video", f)
	}
	f.Alt = "News Media"
	return r.exec("image", f)
}

func (r *Renderer) exec(name string, f fragment) template.HTML {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, f); err != nil {
		return template.HTML(template.HTMLEscapeString(f.Alt))
	}
	return template.HTML(buf.String())
}
