package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

// breakoutTags are the HTML start tags that abandon foreign content
// and reprocess in the ordinary insertion modes. A font tag only
// breaks out when it carries a color, face or size attribute.
var breakoutTags = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"hr": true, "i": true, "img": true, "li": true, "listing": true,
	"menu": true, "meta": true, "nobr": true, "ol": true, "p": true,
	"pre": true, "ruby": true, "s": true, "small": true, "span": true,
	"strong": true, "strike": true, "sub": true, "sup": true,
	"table": true, "tt": true, "u": true, "ul": true, "var": true,
}

func isBreakoutTag(token *Token) bool {
	if breakoutTags[token.TagName] {
		return true
	}
	if token.TagName != "font" {
		return false
	}
	for _, a := range token.Attributes {
		switch a.Name {
		case "color", "face", "size":
			return true
		}
	}
	return false
}

// svgTagNameAdjustments restores the mixed-case SVG element names the
// tokenizer lowercased.
var svgTagNameAdjustments = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

func adjustSVGTagName(name string) string {
	if adjusted, ok := svgTagNameAdjustments[name]; ok {
		return adjusted
	}
	return name
}

var svgAttributeAdjustments = map[string]string{
	"attributename":       "attributeName",
	"attributetype":       "attributeType",
	"basefrequency":       "baseFrequency",
	"baseprofile":         "baseProfile",
	"calcmode":            "calcMode",
	"clippathunits":       "clipPathUnits",
	"diffuseconstant":     "diffuseConstant",
	"edgemode":            "edgeMode",
	"filterunits":         "filterUnits",
	"glyphref":            "glyphRef",
	"gradienttransform":   "gradientTransform",
	"gradientunits":       "gradientUnits",
	"kernelmatrix":        "kernelMatrix",
	"kernelunitlength":    "kernelUnitLength",
	"keypoints":           "keyPoints",
	"keysplines":          "keySplines",
	"keytimes":            "keyTimes",
	"lengthadjust":        "lengthAdjust",
	"limitingconeangle":   "limitingConeAngle",
	"markerheight":        "markerHeight",
	"markerunits":         "markerUnits",
	"markerwidth":         "markerWidth",
	"maskcontentunits":    "maskContentUnits",
	"maskunits":           "maskUnits",
	"numoctaves":          "numOctaves",
	"pathlength":          "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":    "patternTransform",
	"patternunits":        "patternUnits",
	"pointsatx":           "pointsAtX",
	"pointsaty":           "pointsAtY",
	"pointsatz":           "pointsAtZ",
	"preservealpha":       "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":      "primitiveUnits",
	"refx":                "refX",
	"refy":                "refY",
	"repeatcount":         "repeatCount",
	"repeatdur":           "repeatDur",
	"requiredextensions":  "requiredExtensions",
	"requiredfeatures":    "requiredFeatures",
	"specularconstant":    "specularConstant",
	"specularexponent":    "specularExponent",
	"spreadmethod":        "spreadMethod",
	"startoffset":         "startOffset",
	"stddeviation":        "stdDeviation",
	"stitchtiles":         "stitchTiles",
	"surfacescale":        "surfaceScale",
	"systemlanguage":      "systemLanguage",
	"tablevalues":         "tableValues",
	"targetx":             "targetX",
	"targety":             "targetY",
	"textlength":          "textLength",
	"viewbox":             "viewBox",
	"viewtarget":          "viewTarget",
	"xchannelselector":    "xChannelSelector",
	"ychannelselector":    "yChannelSelector",
	"zoomandpan":          "zoomAndPan",
}

func adjustSVGAttributes(attrs []spec.Attribute) {
	for i, a := range attrs {
		if adjusted, ok := svgAttributeAdjustments[a.Name]; ok {
			attrs[i].Name = adjusted
		}
	}
}

func adjustMathMLAttributes(attrs []spec.Attribute) {
	for i, a := range attrs {
		if a.Name == "definitionurl" {
			attrs[i].Name = "definitionURL"
		}
	}
}

// foreignAttributeAdjustments splits the namespaced attribute names
// into prefix and local name.
var foreignAttributeAdjustments = map[string][2]string{
	"xlink:actuate": {"xlink", "actuate"},
	"xlink:arcrole": {"xlink", "arcrole"},
	"xlink:href":    {"xlink", "href"},
	"xlink:role":    {"xlink", "role"},
	"xlink:show":    {"xlink", "show"},
	"xlink:title":   {"xlink", "title"},
	"xlink:type":    {"xlink", "type"},
	"xml:lang":      {"xml", "lang"},
	"xml:space":     {"xml", "space"},
	"xmlns":         {"", "xmlns"},
	"xmlns:xlink":   {"xmlns", "xlink"},
}

func adjustForeignAttributes(attrs []spec.Attribute) {
	for i, a := range attrs {
		if adjusted, ok := foreignAttributeAdjustments[a.Name]; ok {
			attrs[i].Prefix = adjusted[0]
			attrs[i].Name = adjusted[1]
		}
	}
}

// isMathMLTextIntegrationPoint reports whether children of n tokenize
// as ordinary HTML despite n being a MathML element.
func isMathMLTextIntegrationPoint(n *spec.Node) bool {
	if n == nil || n.Namespace != spec.MathMLNamespace {
		return false
	}
	switch n.TagName {
	case "mi", "mo", "mn", "ms", "mtext":
		return true
	}
	return false
}

// isHTMLIntegrationPoint reports whether n re-enters HTML content: the
// SVG wrapper elements always do, annotation-xml only for an HTML
// encoding.
func isHTMLIntegrationPoint(n *spec.Node) bool {
	if n == nil {
		return false
	}
	switch n.Namespace {
	case spec.SVGNamespace:
		switch n.TagName {
		case "foreignObject", "desc", "title":
			return true
		}
	case spec.MathMLNamespace:
		if n.TagName != "annotation-xml" {
			return false
		}
		if enc, ok := n.Attr("encoding"); ok {
			return strings.EqualFold(enc, "text/html") || strings.EqualFold(enc, "application/xhtml+xml")
		}
	}
	return false
}
