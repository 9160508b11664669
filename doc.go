// typefaces is a small package to efficiently handle custom fonts bundled
// as application resources. You register the font files of your app once,
// refer to them through integer resource ids, and let a [Loader] hand you
// reusable font handles; parsing a font is expensive, so the loader caches
// each handle for the life of the process and every later request for the
// same id returns the exact same handle.
//
// First, you create a [Registry] for your bundled fonts:
//   registry := typefaces.NewRegistry(embeddedAssets)
//   fontID := registry.Register("assets/fonts/pacifico.ttf")
//
// Then you create a [Loader] and request fonts from it:
//   loader := typefaces.NewLoader()
//   font := loader.Get(registry, fontID)
//
// If you are working with a text display element, the more concise form
// is to apply the font directly:
//   loader.Apply(label, fontID)
//
// Failures never reach you as errors: an invalid id, a missing resource
// or an unreadable font all degrade to the same standard fallback handle
// (see [DefaultFont]()), so text always stays renderable.
package typefaces

import "github.com/npillmayer/schuko/tracing"

// tracer returns the trace sink for the typefaces package namespace.
func tracer() tracing.Trace {
	return tracing.Select("typefaces")
}
