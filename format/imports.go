package format

import (
	"strings"

	"github.com/dhamidi/externgen/haxe"
)

// Import maps a type name fragment to the line that brings it into scope.
type Import struct {
	Match string `mapstructure:"match" yaml:"match" toml:"match"`
	Line  string `mapstructure:"line" yaml:"line" toml:"line"`
}

var DefaultImports = []Import{
	{"EitherType<", "import haxe.extern.EitherType;"},
	{"Rest<", "import haxe.extern.Rest;"},
	{"HTMLCanvasElement", "import js.html.CanvasElement as HTMLCanvasElement;"},
	{"CanvasRenderingContext2D", "import js.html.CanvasRenderingContext2D;"},
	{"HTMLElement", "import js.html.HtmlElement as HTMLElement;"},
	{"MouseEvent", "import js.html.MouseEvent;"},
	{"HTMLVideoElement", "import js.html.VideoElement as HTMLVideoElement;"},
	{"Blob", "import js.html.Blob;"},
	{"Float32Array", "import js.html.Float32Array;"},
	{"Event", "import js.html.Event;"},
	{"ArrayBuffer", "import js.html.ArrayBuffer;"},
	{"Uint8Array", "import js.html.Uint8Array;"},
	{"Uint32Array", "import js.html.Uint32Array;"},
	{"ImageData", "import js.html.ImageData;"},
	{"HTMLDivElement", "import js.html.DivElement as HTMLDivElement;"},
	{"WebGLFramebuffer", "import js.html.webgl.Framebuffer as WebGLFramebuffer;"},
	{"XMLHttpRequest", "import js.html.XMLHttpRequest;"},
	{"XMLDocument", "import js.html.XMLDocument;"},
	{"MSPointerEvent", "typedef MSPointerEvent = Dynamic;"},
	{"KeyboardEvent", "import js.html.KeyboardEvent;"},
	{"HTMLImageElement", "import js.html.ImageElement as HTMLImageElement;"},
	{"WebGLRenderingContext", "import js.html.webgl.RenderingContext as WebGLRenderingContext;"},
	{"WebGLProgram", "import js.html.webgl.Program as WebGLProgram;"},
	{"WebGLBuffer", "import js.html.webgl.Buffer as WebGLBuffer;"},
}

// ImportsFor returns the import lines needed by the types a class uses, in
// table order.
func ImportsFor(c *haxe.Class, table []Import) []string {
	used := make([]bool, len(table))
	check := func(typ string) {
		if typ == "" {
			return
		}
		for i, imp := range table {
			used[i] = used[i] || strings.Contains(typ, imp.Match)
		}
	}
	for _, m := range c.Members.All() {
		switch m := m.(type) {
		case *haxe.Field:
			check(m.Type)
		case *haxe.Method:
			for _, sig := range m.Overloads {
				check(sig.Type)
				for _, p := range sig.Parameters {
					check(p.Type)
				}
			}
		}
	}
	var lines []string
	for i, ok := range used {
		if ok {
			lines = append(lines, table[i].Line)
		}
	}
	return lines
}
