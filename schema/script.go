package schema

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Script renders o as a single <script type="application/ld+json"> tag.
func Script(o Object) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(o) == 0 {
			return nil
		}
		_, err := io.WriteString(w, `<script type="application/ld+json">`+Marshal(o)+`</script>`)
		return err
	})
}

// Scripts renders one sibling script tag per object, in order.
func Scripts(objs ...Object) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, o := range objs {
			if err := Script(o).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
