package models

// Domain is one of the three recruitment tracks.
type Domain string

const (
	DomainTech       Domain = "tech"
	DomainDesign     Domain = "design"
	DomainManagement Domain = "management"
)

func (d Domain) Valid() bool {
	switch d {
	case DomainTech, DomainDesign, DomainManagement:
		return true
	}
	return false
}

// Canonical subdomain labels. These spellings are an external contract:
// consumers persist and display them verbatim.
const (
	SubdomainEditorial  = "editorial"
	SubdomainPublicity  = "publicity"
	SubdomainOutreach   = "outreach"
	SubdomainGeneralOps = "generaloperations"

	// SubdomainUnspecified is the synthetic bucket for tasks that
	// classify to nothing.
	SubdomainUnspecified = "unspecified"

	// LegacySubdomainEvents predates the editorial rename and is rewritten
	// to SubdomainEditorial wherever it is encountered.
	LegacySubdomainEvents = "events"
)

// Question slot schemas per domain, in slot order. Both the subdomain
// classifier and the submission check read from this single source of truth.
var questionKeys = map[Domain][]string{
	DomainTech: {
		"question1", "question2", "question3", "question4", "question5",
	},
	DomainDesign: {
		"question1", "question2", "question3", "question4", "question5",
		"question6", "question7", "question8", "question9", "question10",
		"question11", "question12", "question13",
	},
	DomainManagement: {
		"question1", "question2", "question3", "question4", "question5",
		"question6", "question7", "question8", "question9", "question10",
		"question11", "question12", "question13", "question14", "question15",
		"question16", "question17",
	},
}

// QuestionKeys returns the ordered question slot names for a domain.
// The returned slice is shared and must not be mutated.
func QuestionKeys(d Domain) []string {
	return questionKeys[d]
}
