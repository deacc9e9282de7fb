// Package iconfont turns a directory of SVG files into an icon font with a
// matching CSS stylesheet and an HTML preview page.
//
// The heavy lifting - rasterization, glyph packing, TTF/WOFF/WOFF2 encoding -
// is delegated to an external generator tool. This package owns the rest:
// invoking the tool, turning its glyph manifest into CSS rules and preview
// markup, and writing both files into a dist/ directory.
//
// # Quick Start
//
// Create a service and run it:
//
//	svc := iconfont.New()
//	defer svc.Close()
//
//	group := svc.Run(ctx, iconfont.Input{
//	    FontName:   "demo",
//	    SVGPattern: "icons/*.svg",
//	    OutputDir:  "dist",
//	})
//	group.Wait()
//
// Run never returns an error: generation and write failures are logged and
// swallowed, matching the build-script semantics this package grew out of.
// Callers that want failures anyway check group.Err after waiting.
//
// # Pipeline
//
//  1. The generator tool is invoked with the font name, SVG glob and output
//     directory, and its JSON glyph manifest is parsed (see ToolGenerator).
//  2. The emitted TTF is parsed as a sanity check (skippable via Options).
//  3. BuildCSS renders the @font-face block, the two static .icon rules, and
//     one .icon-<id>:before rule per glyph.
//  4. BuildHTML renders the preview page linking <fontName>.css.
//  5. Both files are written to dist/ concurrently; one write failing never
//     affects the other.
//
// # Glyph identifiers
//
// A raw glyph name like "uE901$home" carries the icon identifier after the
// first "$". Both the CSS selector (.icon-home) and the preview class
// (apr-home) derive from that same split, so they always agree. A name
// without a "$" is an error, never silently reused as the identifier.
//
// # Output location
//
// The CSS and HTML land in a dist/ directory next to the running executable,
// NOT under Input.OutputDir. The original script anchored its outputs to its
// own install location and existing setups depend on it; use WithDistDir to
// opt out.
//
// # Preview snapshot
//
// With WithSnapshot(true) the preview page is additionally rendered to
// <fontName>.png via headless Chrome (go-rod downloads a managed Chromium on
// first run). Set ROD_BROWSER_BIN to pin a browser binary; in CI and
// containers the sandbox is disabled automatically.
package iconfont
