package evaluator

import (
	"fmt"
	"strings"
)

// pickHeadline derives the narrative summary from the top-ranked result.
// The phrasing depends only on the top result's confidence tier; the
// location suffix is omitted when no location was supplied.
func pickHeadline(top Result, query, location string) Summary {
	cityPhrase := ""
	if location != "" {
		cityPhrase = " in " + location
	}

	switch top.Confidence {
	case ConfidenceHigh:
		keywords := top.MatchedKeywords
		if len(keywords) > 2 {
			keywords = keywords[:2]
		}
		return Summary{
			Headline:    fmt.Sprintf("%s is your strongest free option%s.", top.Resource.Name, cityPhrase),
			Nuance:      fmt.Sprintf("It aligns closely with %q thanks to %s.", query, strings.Join(keywords, " and ")),
			Opportunity: "Reserve in advance to guarantee access and bring any proof-of-eligibility before arrival.",
		}

	case ConfidenceMedium:
		return Summary{
			Headline:    fmt.Sprintf("You have promising free alternatives%s.", cityPhrase),
			Nuance:      fmt.Sprintf("%s covers the essentials, but availability can fluctuate, especially during peak hours.", top.Resource.Name),
			Opportunity: "Consider pairing two resources to cover gaps, or call ahead for confirmation.",
		}

	default:
		return Summary{
			Headline:    "No perfect match yet, but try these emerging resources.",
			Nuance:      fmt.Sprintf("%s partially matches what you asked for; check eligibility details before making plans.", top.Resource.Name),
			Opportunity: "Contact local community organizations; they often maintain hidden programs not listed publicly.",
		}
	}
}
