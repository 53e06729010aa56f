package classification

import (
	"regexp"
	"strings"

	"arsipku/internal/model"
)

// candidatePattern extracts code-shaped substrings from a document
// number prefix. Unanchored variant of the code pattern.
var candidatePattern = regexp.MustCompile(`\d{3}(\.\d+)*`)

// IdentifyFromDocumentNumber derives a classification code from a
// free-text document number. Document numbers follow the
// "classification/agendaNumber/issuerNumber" convention, so only the
// part before the first "/" is scanned. Each code-shaped candidate is
// tried in order: an exact match wins; otherwise trailing dotted
// segments are dropped one at a time and the first existing ancestor
// wins. Returns "" when nothing matches.
func IdentifyFromDocumentNumber(docNumber string, items []model.Classification) string {
	prefix := docNumber
	if idx := strings.Index(docNumber, "/"); idx >= 0 {
		prefix = docNumber[:idx]
	}

	for _, candidate := range candidatePattern.FindAllString(prefix, -1) {
		if _, ok := FindByCode(items, candidate); ok {
			return candidate
		}
		for ancestor := Parent(candidate); ancestor != ""; ancestor = Parent(ancestor) {
			if _, ok := FindByCode(items, ancestor); ok {
				return ancestor
			}
		}
	}
	return ""
}
