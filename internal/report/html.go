package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

var pageTemplate = template.Must(template.New("dashboard").Parse(htmlTemplate))

// Render writes v as an HTML document.
func Render(w io.Writer, v View) error {
	if err := pageTemplate.Execute(w, v); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// WriteFile renders v to path, creating parent directories as needed.
func WriteFile(path string, v View) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := Render(f, v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f4f6f9; color: #212529; }
header { display: flex; justify-content: space-between; align-items: center; padding: 16px 24px; background: #1f2d3d; color: #fff; }
header h1 { font-size: 20px; margin: 0; }
header small { color: #adb5bd; }
#printButton { background: #007bff; color: #fff; border: 0; border-radius: 4px; padding: 8px 16px; cursor: pointer; }
.tabs { display: flex; gap: 4px; padding: 0 24px; background: #fff; border-bottom: 1px solid #dee2e6; }
.tab-button { background: none; border: 0; border-bottom: 3px solid transparent; padding: 12px 16px; cursor: pointer; font-size: 14px; }
.tab-button.active { border-bottom-color: #007bff; color: #007bff; font-weight: 600; }
.tab-content { display: none; padding: 24px; }
.tab-content.active { display: block; }
.chart-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 16px; }
.chart-card { background: #fff; border-radius: 6px; padding: 16px; box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1); }
.chart-card h3 { font-size: 15px; margin: 0 0 12px; }
.chart-card .chart-box { position: relative; height: 280px; }
.recommendations { margin-top: 24px; }
.recommendation { background: #fff; border-left: 4px solid #28a745; border-radius: 4px; margin-bottom: 12px; padding: 12px 16px; }
.recommendation-header h4 { margin: 0 0 6px; }
.recommendation-content p { margin: 0; color: #495057; }
@media print {
  #printButton, .tabs { display: none; }
  .tab-content { display: block !important; position: static !important; page-break-after: always; }
}
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Title}}</h1>
    <small>Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</small>
  </div>
  {{- with .PrintButton}}
  <button id="{{.ID}}">{{.Label}}</button>
  {{- end}}
</header>
<nav class="tabs">
{{- range .Tabs}}
  <button id="{{.ID}}" class="tab-button{{if .Active}} active{{end}}" data-tab="{{.Tab}}">{{.Label}}</button>
{{- end}}
</nav>
{{- range .Panels}}
<section id="{{.ID}}" class="tab-content{{if .Active}} active{{end}}">
  <h2>{{.Title}}</h2>
  <div class="chart-grid">
  {{- range .Canvases}}
    <div class="chart-card">
      <h3>{{.Title}}</h3>
      <div class="chart-box"><canvas id="{{.ID}}" class="chart"></canvas></div>
    </div>
  {{- end}}
  </div>
  {{- with .Recommendations}}
  <div class="recommendations">
    <h3>{{.Title}}</h3>
    <div id="{{.ID}}">
    {{- range .Cards}}
      <div class="recommendation">
        <div class="recommendation-header"><h4>{{.Title}}</h4></div>
        <div class="recommendation-content"><p>{{.Description}}</p></div>
      </div>
    {{- end}}
    </div>
  </div>
  {{- end}}
</section>
{{- end}}
<script>
(function () {
  const charts = {{.Charts}};
  const restoreDelay = {{.RestoreDelayMS}};

  document.addEventListener('DOMContentLoaded', function () {
    const buttons = document.querySelectorAll('.tab-button');
    const panels = document.querySelectorAll('.tab-content');

    buttons.forEach(function (button) {
      button.addEventListener('click', function () {
        buttons.forEach(function (b) { b.classList.remove('active'); });
        panels.forEach(function (p) { p.classList.remove('active'); });
        button.classList.add('active');
        const panel = document.getElementById(button.getAttribute('data-tab') + '-tab');
        if (panel) {
          panel.classList.add('active');
        }
      });
    });

    (charts || []).forEach(function (c) {
      const canvas = document.getElementById(c.canvas);
      if (canvas && window.Chart) {
        new Chart(canvas, c.config);
      }
    });

    const print = document.getElementById('printButton');
    if (print) {
      print.addEventListener('click', function () { window.print(); });
    }

    buttons.forEach(function (button) {
      const panel = document.getElementById(button.getAttribute('data-tab') + '-tab');
      if (!panel || panel.classList.contains('active')) {
        return;
      }
      const saved = {
        display: panel.style.display,
        position: panel.style.position,
        left: panel.style.left
      };
      panel.style.display = 'block';
      panel.style.position = 'absolute';
      panel.style.left = '-9999px';
      setTimeout(function () {
        panel.style.display = saved.display;
        panel.style.position = saved.position;
        panel.style.left = saved.left;
      }, restoreDelay);
    });
  });
})();
</script>
</body>
</html>
`
