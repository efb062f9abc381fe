package vel

import "strings"

const (
	// SVGNamespace is assigned to elements whose tag name is a known SVG
	// element name.
	SVGNamespace = "http://www.w3.org/2000/svg"

	// XLinkFamilyBase is prepended to namespaced attribute group keys
	// that are not already URIs, so that "xlink" becomes
	// "http://www.w3.org/1999/xlink".
	XLinkFamilyBase = "http://www.w3.org/1999/"
)

// ResolveName decides the namespace for a plain tag name. Known SVG
// element names (matched case-sensitively) resolve to SVGNamespace,
// everything else to the empty string, which means plain HTML.
func ResolveName(name string) (namespace, tag string) {
	if IsSVGElement(name) {
		return SVGNamespace, name
	}
	return "", name
}

// ResolveNamespace turns the key of a namespaced attribute group into a
// namespace URI. Keys starting with "http" are used as is.
func ResolveNamespace(key string) string {
	if strings.HasPrefix(key, "http") {
		return key
	}
	return XLinkFamilyBase + key
}

// IsSVGElement reports whether name is in the table of SVG element names.
func IsSVGElement(name string) bool {
	_, ok := svgElementNames[name]
	return ok
}

var svgElementNames = map[string]struct{}{
	"a":                   {},
	"altGlyph":            {},
	"altGlyphDef":         {},
	"altGlyphItem":        {},
	"animate":             {},
	"animateColor":        {},
	"animateMotion":       {},
	"animateTransform":    {},
	"circle":              {},
	"clipPath":            {},
	"color-profile":       {},
	"cursor":              {},
	"defs":                {},
	"desc":                {},
	"discard":             {},
	"ellipse":             {},
	"feBlend":             {},
	"feColorMatrix":       {},
	"feComponentTransfer": {},
	"feComposite":         {},
	"feConvolveMatrix":    {},
	"feDiffuseLighting":   {},
	"feDisplacementMap":   {},
	"feDistantLight":      {},
	"feDropShadow":        {},
	"feFlood":             {},
	"feFuncA":             {},
	"feFuncB":             {},
	"feFuncG":             {},
	"feFuncR":             {},
	"feGaussianBlur":      {},
	"feImage":             {},
	"feMerge":             {},
	"feMergeNode":         {},
	"feMorphology":        {},
	"feOffset":            {},
	"fePointLight":        {},
	"feSpecularLighting":  {},
	"feSpotLight":         {},
	"feTile":              {},
	"feTurbulence":        {},
	"filter":              {},
	"font":                {},
	"font-face":           {},
	"font-face-format":    {},
	"font-face-name":      {},
	"font-face-src":       {},
	"font-face-uri":       {},
	"foreignObject":       {},
	"g":                   {},
	"glyph":               {},
	"glyphRef":            {},
	"hatch":               {},
	"hatchpath":           {},
	"hkern":               {},
	"image":               {},
	"line":                {},
	"linearGradient":      {},
	"marker":              {},
	"mask":                {},
	"mesh":                {},
	"meshgradient":        {},
	"meshpatch":           {},
	"meshrow":             {},
	"metadata":            {},
	"missing-glyph":       {},
	"mpath":               {},
	"path":                {},
	"pattern":             {},
	"polygon":             {},
	"polyline":            {},
	"radialGradient":      {},
	"rect":                {},
	"script":              {},
	"set":                 {},
	"solidcolor":          {},
	"stop":                {},
	"style":               {},
	"svg":                 {},
	"switch":              {},
	"symbol":              {},
	"text":                {},
	"textPath":            {},
	"title":               {},
	"tref":                {},
	"tspan":               {},
	"unknown":             {},
	"use":                 {},
	"view":                {},
	"vkern":               {},
}
