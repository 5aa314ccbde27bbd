package htmltree_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/dom/builder"
)

func TestBuildAndRender(t *testing.T) {
	page, err := htmltree.Build(func(h *builder.HTML) {
		h.Body(func(b *builder.Body) {
			b.H1(func(h1 *builder.H1) { h1.Text("Hello") })
		})
	})
	if err != nil {
		t.Fatalf("expected document construction to succeed, got %v", err)
	}
	output := htmltree.Render(page)
	if !strings.Contains(output, "    Hello\n") {
		t.Errorf("expected rendered output to contain the indented greeting, got\n%s", output)
	}
}

func TestRenderTo(t *testing.T) {
	page, err := htmltree.Build(func(h *builder.HTML) {
		h.Body(func(b *builder.Body) {
			b.P(func(p *builder.P) { p.Text("content") })
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := htmltree.RenderTo(&sb, page, "\t"); err != nil {
		t.Fatalf("expected rendering to succeed, got %v", err)
	}
	if !strings.Contains(sb.String(), "\t\t\tcontent\n") {
		t.Errorf("expected tab-indented content, got\n%q", sb.String())
	}
}

func ExampleBuild() {
	page, err := htmltree.Build(func(h *builder.HTML) {
		h.Body(func(b *builder.Body) {
			b.A("http://example.org", func(a *builder.A) { a.Text("X") })
		})
	})
	if err != nil {
		panic(err)
	}
	fmt.Print(htmltree.Render(page))
	// Output:
	// <html>
	//   <body>
	//     <a href="http://example.org">
	//       X
	//     </a>
	//   </body>
	// </html>
}
