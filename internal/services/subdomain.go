package services

import (
	"strings"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

// Management questionnaire layout. Each band of questions belongs to one
// subdomain; classification picks the highest-priority band with any answer.
var managementBands = []struct {
	label     string
	questions []string
}{
	{models.SubdomainEditorial, []string{"question17"}},
	{models.SubdomainPublicity, []string{"question12", "question13", "question14", "question15", "question16"}},
	{models.SubdomainOutreach, []string{"question7", "question8", "question9", "question10", "question11"}},
	{models.SubdomainGeneralOps, []string{"question2", "question3", "question4", "question5", "question6"}},
}

// hasAnswer reports whether an answer slot contains at least one non-blank
// entry. Whitespace-only strings do not count.
func hasAnswer(slot []string) bool {
	for _, s := range slot {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// hasSubmission reports whether any of the given answer slots is answered.
func hasSubmission(answers map[string][]string, keys []string) bool {
	for _, key := range keys {
		if hasAnswer(answers[key]) {
			return true
		}
	}
	return false
}

// InferSubdomains derives management subdomain labels from which question
// bands a submission answered. Editorial wins over publicity, publicity over
// outreach, outreach over general operations. A submission answering nothing
// classifiable yields no labels.
func InferSubdomains(answers map[string][]string) []string {
	for _, band := range managementBands {
		if hasSubmission(answers, band.questions) {
			return []string{band.label}
		}
	}
	return nil
}

// NormalizeSubdomains canonicalizes explicitly recorded subdomain labels.
// Each entry is lowercased and may itself hold a comma-delimited list, a
// legacy storage shape that still appears in old rows. The retired "events"
// label maps to "editorial". Blank entries are skipped. An empty result
// means the caller should fall back to inference. Idempotent.
func NormalizeSubdomains(explicit []string) []string {
	var out []string

	for _, raw := range explicit {
		for _, part := range strings.Split(raw, ",") {
			label := strings.ToLower(strings.TrimSpace(part))
			if label == "" {
				continue
			}
			if label == models.LegacySubdomainEvents {
				label = models.SubdomainEditorial
			}
			out = append(out, label)
		}
	}

	return out
}

// ResolveSubdomains returns the canonical subdomain labels for a management
// submission: the normalized explicit labels when any are recorded, otherwise
// the labels inferred from answered question bands.
func ResolveSubdomains(explicit []string, answers map[string][]string) []string {
	if labels := NormalizeSubdomains(explicit); len(labels) > 0 {
		return labels
	}
	return InferSubdomains(answers)
}
