// Package catalog holds the fixed sample data and page layout of the dashboard.
package catalog

import "github.com/tinytelemetry/secdash/internal/model"

// Palette used across the sample datasets.
const (
	red    = "220, 53, 69"
	yellow = "255, 193, 7"
	teal   = "23, 162, 184"
	green  = "40, 167, 69"
	gray   = "108, 117, 125"
	blue   = "0, 123, 255"
	purple = "111, 66, 193"
)

func rgba(rgb string, alpha string) string {
	return "rgba(" + rgb + ", " + alpha + ")"
}

func fills(rgbs ...string) []string {
	out := make([]string, len(rgbs))
	for i, c := range rgbs {
		out[i] = rgba(c, "0.2")
	}
	return out
}

func borders(rgbs ...string) []string {
	out := make([]string, len(rgbs))
	for i, c := range rgbs {
		out[i] = rgba(c, "1")
	}
	return out
}

func trend(label, rgb string, data ...float64) model.Series {
	return model.Series{
		Label:           label,
		Data:            data,
		BorderColor:     rgba(rgb, "1"),
		BackgroundColor: rgba(rgb, "0.1"),
	}
}

func single(data []float64, colors ...string) []model.Series {
	s := model.Series{Data: data}
	if len(colors) > 0 {
		s.BackgroundColors = fills(colors...)
		s.BorderColors = borders(colors...)
	}
	return []model.Series{s}
}

// Dataset keys.
const (
	Severity                  = "severity"
	Status                    = "status"
	Classification            = "classification"
	WeeklyAlertVolume         = "weeklyAlertVolume"
	ResponseTimeMetrics       = "responseTimeMetrics"
	ResolutionTimeMetrics     = "resolutionTimeMetrics"
	AlertVolumeByProduct      = "alertVolumeByProduct"
	AlertSeverityDistribution = "alertSeverityDistribution"
	AlertSeverityTrends       = "alertSeverityTrends"
	TacticsCoverage           = "tacticsCoverage"
	TopAttackTechniques       = "topAttackTechniques"
	TopTargetedSystems        = "topTargetedSystems"
	EmailAttackAnalysis       = "emailAttackAnalysis"
)

var datasets = map[string]model.Dataset{
	Severity: {
		Labels: []string{"Critical", "High", "Medium", "Low", "Informational"},
		Series: single([]float64{5, 7, 15, 12, 3}, red, yellow, teal, green, gray),
	},
	Status: {
		Labels: []string{"Open", "In Progress", "Resolved", "Closed"},
		Series: single([]float64{8, 12, 15, 7}, red, yellow, teal, green),
	},
	Classification: {
		Labels: []string{
			"Malware: Ransomware",
			"Phishing: Credential Theft",
			"Unauthorized Access: Brute Force",
			"Data Breach: Exfiltration",
			"DoS: Application Layer",
		},
		Series: single([]float64{15, 12, 8, 5, 2}, blue, purple, teal, green, yellow),
	},
	WeeklyAlertVolume: {
		Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5", "Week 6", "Week 7", "Week 8"},
		Series: []model.Series{
			trend("Microsoft Defender for Endpoint", blue, 45, 52, 38, 41, 35, 29, 33, 39),
			trend("Azure Security Center", purple, 32, 28, 35, 27, 31, 29, 25, 30),
			trend("Office 365 ATP", teal, 18, 22, 25, 19, 17, 21, 24, 20),
		},
	},
	ResponseTimeMetrics: {
		Labels: []string{"Average Time", "Median Time", "Fastest Response", "Slowest Response"},
		Series: single([]float64{2.5, 1.8, 0.3, 12.7}),
	},
	ResolutionTimeMetrics: {
		Labels: []string{"Average Time", "Median Time", "Fastest Resolution", "Slowest Resolution"},
		Series: single([]float64{12.4, 8.6, 1.2, 72.5}),
	},
	AlertVolumeByProduct: {
		Labels: []string{
			"Microsoft Defender for Endpoint",
			"Azure Security Center",
			"Office 365 ATP",
			"Azure AD Identity Protection",
			"Azure Firewall",
		},
		Series: single([]float64{245, 187, 156, 98, 67}, blue, purple, teal, green, yellow),
	},
	AlertSeverityDistribution: {
		Labels: []string{"Day 1", "Day 5", "Day 10", "Day 15", "Day 20", "Day 25", "Day 30"},
		Series: []model.Series{
			trend("Critical", red, 3, 5, 2, 7, 4, 6, 3),
			trend("High", yellow, 8, 12, 10, 12, 9, 11, 7),
			trend("Medium", teal, 15, 10, 12, 15, 14, 13, 16),
			trend("Low", green, 20, 18, 15, 8, 12, 14, 17),
		},
	},
	AlertSeverityTrends: {
		Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		Series: []model.Series{
			trend("Critical", red, 18, 22, 15, 25),
			trend("High", yellow, 45, 52, 48, 55),
			trend("Medium", teal, 78, 65, 72, 68),
			trend("Low", green, 95, 88, 82, 75),
		},
	},
	TacticsCoverage: {
		Labels: []string{
			"Initial Access", "Execution", "Persistence", "Privilege Escalation",
			"Defense Evasion", "Credential Access", "Discovery", "Lateral Movement",
			"Collection", "Command & Control", "Exfiltration", "Impact",
		},
		Series: single([]float64{85, 75, 60, 70, 65, 80, 75, 55, 60, 70, 50, 65}),
	},
	TopAttackTechniques: {
		Labels: []string{
			"Microsoft Defender: Initial Access",
			"Office 365 ATP: Phishing",
			"Azure Security Center: Credential Access",
			"Microsoft Defender: Lateral Movement",
			"Azure AD IP: Defense Evasion",
		},
		Series: single([]float64{32, 28, 22, 18, 15}),
	},
	TopTargetedSystems: {
		Labels: []string{
			"user1@company.com",
			"user2@company.com",
			"server1.company.com",
			"admin@company.com",
			"fileserver.company.com",
		},
		Series: single([]float64{24, 18, 15, 12, 10}),
	},
	EmailAttackAnalysis: {
		Labels: []string{
			"Urgent: Password Reset", "Invoice Payment Due", "Account Verification",
			"Document Shared", "Security Alert", "Package Delivery", "HR Announcement",
			"IT Support", "Meeting Invitation", "Payroll Update",
		},
		Series: single([]float64{28, 22, 18, 15, 12, 10, 8, 7, 6, 5}),
	},
}

// Dataset returns a copy of the named sample dataset.
func Dataset(key string) (model.Dataset, bool) {
	ds, ok := datasets[key]
	if !ok {
		return model.Dataset{}, false
	}
	ds = ds.Clone()
	ds.Name = key
	return ds, true
}
