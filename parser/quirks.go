package parser

import (
	"strings"

	"github.com/fogwing/htmlparse/parser/spec"
)

// quirkyPublicIDPrefixes are the legacy doctype public identifiers
// that force quirks mode, matched as ASCII case-insensitive prefixes.
var quirkyPublicIDPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0 level 1//",
	"-//ietf//dtd html 2.0 level 2//",
	"-//ietf//dtd html 2.0 strict level 1//",
	"-//ietf//dtd html 2.0 strict level 2//",
	"-//ietf//dtd html 2.0 strict//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var quirkyPublicIDs = []string{
	"-//w3o//dtd w3 html strict 3.0//en//",
	"-/w3c/dtd html 4.0 transitional/en",
	"html",
}

const quirkySystemID = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

// quirksModeFromDoctype classifies the doctype token into the
// document's quirks mode.
func quirksModeFromDoctype(token *Token) spec.QuirksMode {
	if token.ForceQuirks {
		return spec.Quirks
	}
	if token.Name == nil || *token.Name != "html" {
		return spec.Quirks
	}
	var publicID, systemID string
	if token.PublicID != nil {
		publicID = strings.ToLower(*token.PublicID)
	}
	if token.SystemID != nil {
		systemID = strings.ToLower(*token.SystemID)
	}

	for _, id := range quirkyPublicIDs {
		if publicID == id {
			return spec.Quirks
		}
	}
	if systemID == quirkySystemID {
		return spec.Quirks
	}
	for _, prefix := range quirkyPublicIDPrefixes {
		if strings.HasPrefix(publicID, prefix) {
			return spec.Quirks
		}
	}

	html401 := strings.HasPrefix(publicID, "-//w3c//dtd html 4.01 frameset//") ||
		strings.HasPrefix(publicID, "-//w3c//dtd html 4.01 transitional//")
	if token.SystemID == nil && html401 {
		return spec.Quirks
	}
	if token.SystemID != nil && html401 {
		return spec.LimitedQuirks
	}
	if strings.HasPrefix(publicID, "-//w3c//dtd xhtml 1.0 frameset//") ||
		strings.HasPrefix(publicID, "-//w3c//dtd xhtml 1.0 transitional//") {
		return spec.LimitedQuirks
	}
	return spec.NoQuirks
}
