package breadcrumbs

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// Component renders the trail as an ordered list. Every entry but the last
// is a link; the last one is the current page.
func Component(trail Trail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(trail) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<nav aria-label="breadcrumb"><ol class="breadcrumb">`); err != nil {
			return err
		}
		last := len(trail) - 1
		for i, item := range trail {
			var err error
			label := templ.EscapeString(item.Label)
			switch {
			case i == last:
				_, err = io.WriteString(w, `<li class="breadcrumb-item active" aria-current="page">`+label+`</li>`)
			case item.URL == "":
				_, err = io.WriteString(w, `<li class="breadcrumb-item">`+label+`</li>`)
			default:
				href := templ.EscapeString(string(templ.URL(item.URL)))
				_, err = io.WriteString(w, `<li class="breadcrumb-item"><a href="`+href+`">`+label+`</a></li>`)
			}
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol></nav>`)
		return err
	})
}

// HTML renders the trail for use inside html/template pages.
func HTML(ctx context.Context, trail Trail) (template.HTML, error) {
	return templ.ToGoHTML(ctx, Component(trail))
}
