package catalog

import "github.com/tinytelemetry/secdash/internal/model"

// Tab identifiers.
const (
	TabOverview  = "overview"
	TabIncidents = "incidents"
	TabTrends    = "trends"
)

// EmailLabelCap is the display-size cap of the email attack analysis chart.
const EmailLabelCap = 5

var tabs = []model.TabSpec{
	{ID: TabOverview, Title: "Overview"},
	{ID: TabIncidents, Title: "Incident Details"},
	{ID: TabTrends, Title: "Trends & Analysis"},
}

var slots = []model.SlotSpec{
	// Overview
	{
		ID: "severity", CanvasID: "severityChart", Tab: TabOverview,
		Title: "Incidents by Severity", Kind: model.KindBar, DatasetKey: Severity,
		SeriesLabel: "Number of Incidents",
		Options:     model.ChartOptions{BeginAtZero: true},
	},
	{
		ID: "status", CanvasID: "statusChart", Tab: TabOverview,
		Title: "Incident Status", Kind: model.KindDoughnut, DatasetKey: Status,
	},
	{
		ID: "classification", CanvasID: "classificationChart", Tab: TabOverview,
		Title: "Incident Classification", Kind: model.KindPie, DatasetKey: Classification,
	},
	{
		ID: "weeklyAlertVolume", CanvasID: "weeklyAlertVolumeChart", Tab: TabOverview,
		Title: "Weekly Security Alert Volume", Kind: model.KindLine, DatasetKey: WeeklyAlertVolume,
		Options: model.ChartOptions{BeginAtZero: true, YAxisTitle: "Number of Alerts", XAxisTitle: "Week"},
	},

	// Incident details
	{
		ID: "responseTime", CanvasID: "responseTimeChart", Tab: TabIncidents,
		Title: "Incident Response Time Metrics", Kind: model.KindBar, DatasetKey: ResponseTimeMetrics,
		SeriesLabel: "Hours", BackgroundColor: rgba(teal, "0.2"), BorderColor: rgba(teal, "1"),
		Options: model.ChartOptions{BeginAtZero: true, YAxisTitle: "Hours"},
	},
	{
		ID: "resolutionTime", CanvasID: "resolutionTimeChart", Tab: TabIncidents,
		Title: "Incident Resolution Time Metrics", Kind: model.KindBar, DatasetKey: ResolutionTimeMetrics,
		SeriesLabel: "Hours", BackgroundColor: rgba(blue, "0.2"), BorderColor: rgba(blue, "1"),
		Options: model.ChartOptions{BeginAtZero: true, YAxisTitle: "Hours"},
	},
	{
		ID: "alertVolumeByProduct", CanvasID: "alertVolumeByProductChart", Tab: TabIncidents,
		Title: "Alert Volume by Product", Kind: model.KindHorizontalBar, DatasetKey: AlertVolumeByProduct,
		SeriesLabel: "Number of Alerts",
		Options:     model.ChartOptions{BeginAtZero: true},
	},
	{
		ID: "alertSeverityDistribution", CanvasID: "alertSeverityDistributionChart", Tab: TabIncidents,
		Title: "Alert Severity Distribution", Kind: model.KindLine, DatasetKey: AlertSeverityDistribution,
		Options: model.ChartOptions{BeginAtZero: true, YAxisTitle: "Number of Alerts"},
	},

	// Trends & analysis
	{
		ID: "alertSeverityTrends", CanvasID: "alertSeverityTrendsChart", Tab: TabTrends,
		Title: "Alert Severity Trends", Kind: model.KindLine, DatasetKey: AlertSeverityTrends,
		Options: model.ChartOptions{BeginAtZero: true, YAxisTitle: "Number of Alerts"},
	},
	{
		ID: "tacticsCoverage", CanvasID: "tacticsCoverageChart", Tab: TabTrends,
		Title: "MITRE ATT&CK Tactics Coverage", Kind: model.KindRadar, DatasetKey: TacticsCoverage,
		SeriesLabel: "Coverage (%)", BackgroundColor: rgba(blue, "0.2"), BorderColor: rgba(blue, "1"),
		PointBackgroundColor: rgba(blue, "1"),
		Options:              model.ChartOptions{BeginAtZero: true, RadialMax: 100},
	},
	{
		ID: "topAttackTechniques", CanvasID: "topAttackTechniquesChart", Tab: TabTrends,
		Title: "Top Attack Techniques", Kind: model.KindHorizontalBar, DatasetKey: TopAttackTechniques,
		SeriesLabel: "Count", BackgroundColor: rgba(purple, "0.2"), BorderColor: rgba(purple, "1"),
		Options: model.ChartOptions{BeginAtZero: true},
	},
	{
		ID: "topTargetedSystems", CanvasID: "topTargetedSystemsChart", Tab: TabTrends,
		Title: "Top Targeted Systems", Kind: model.KindHorizontalBar, DatasetKey: TopTargetedSystems,
		SeriesLabel: "Number of Alerts", BackgroundColor: rgba(teal, "0.2"), BorderColor: rgba(teal, "1"),
		Options: model.ChartOptions{BeginAtZero: true, LegendPosition: "top"},
	},
	{
		ID: "emailAttackAnalysis", CanvasID: "emailAttackAnalysisChart", Tab: TabTrends,
		Title: "Email Attack Analysis", Kind: model.KindHorizontalBar, DatasetKey: EmailAttackAnalysis,
		SeriesLabel: "Number of Alerts", BackgroundColor: rgba(yellow, "0.2"), BorderColor: rgba(yellow, "1"),
		Options:  model.ChartOptions{BeginAtZero: true, LegendPosition: "top"},
		LabelCap: EmailLabelCap,
	},
}

// Layout returns the page structure of the executive dashboard.
func Layout() model.Layout {
	return model.Layout{
		Tabs:                   append([]model.TabSpec(nil), tabs...),
		Slots:                  append([]model.SlotSpec(nil), slots...),
		RecommendationsTab:     TabTrends,
		RecommendationsElement: model.RecommendationsElementID,
		PrintButtonElement:     model.PrintButtonElementID,
	}
}
