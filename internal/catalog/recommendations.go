package catalog

import "github.com/tinytelemetry/secdash/internal/model"

// Recommendations returns the canned security recommendations in display order.
func Recommendations() []model.Recommendation {
	return []model.Recommendation{
		{
			Title:       "Implement Multi-Factor Authentication",
			Description: "Deploy MFA across all remote access points to reduce risk of unauthorized access.",
		},
		{
			Title:       "Enhance Endpoint Protection",
			Description: "Upgrade endpoint security solutions to better detect and prevent malware infections.",
		},
		{
			Title:       "Improve Security Awareness Training",
			Description: "Conduct regular phishing simulations and security training for all employees.",
		},
	}
}
