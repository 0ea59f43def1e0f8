package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Scheme Dashboard</title>
<script src="{{.ChartJSURL}}"></script>
<style>
:root {
  --bg: #f4f6f9; --fg: #1a1a2e; --card-bg: #fff; --border: #dee2e6;
  --muted: #6c757d; --accent: #0f4c81; --warn: #fd7e14;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --muted: #adb5bd; --accent: #4b8bbe; --warn: #ffb347;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: Poppins, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { display: flex; flex-wrap: wrap; justify-content: space-between; align-items: center; gap: 1rem; margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; }
header p { color: var(--muted); font-size: .875rem; }
.filter select { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); }
.notice { color: var(--warn); font-size: .875rem; margin-bottom: 1rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.card .value { font-size: 1.75rem; font-weight: 700; }
.card .sub { font-size: .8125rem; color: var(--muted); }
.progress { height: 6px; background: var(--border); border-radius: 3px; margin-top: .5rem; overflow: hidden; }
.progress .bar { height: 100%; background: var(--accent); }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; height: 340px; position: relative; }
.chart-box.wide { grid-column: 1 / -1; }
.chart-box .empty { display: none; position: absolute; inset: 0; align-items: center; justify-content: center; color: var(--muted); font-size: .875rem; }
.chart-box.skipped canvas { display: none; }
.chart-box.skipped .empty { display: flex; }
</style>
</head>
<body>
<header>
  <div>
    <h1>Scheme Dashboard</h1>
    <p>Generated {{.GeneratedAt}} &middot; run {{.RunID}}</p>
  </div>
  <div class="filter">
    <label for="district-selector">District</label>
    <select id="district-selector">
    {{- range .Options}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{- end}}
    </select>
  </div>
</header>
{{- if .Fallbacks}}
<p class="notice">{{.Fallbacks}} scheme(s) are showing built-in sample data.</p>
{{- end}}
<section class="cards">
  <div class="card">
    <div class="label">Total Beneficiaries</div>
    <div class="value" id="total-beneficiaries">{{.Cards.Total}}</div>
  </div>
  <div class="card">
    <div class="label">Fund Utilization</div>
    <div class="value" id="fund-utilization">{{.Cards.Utilization}}%</div>
    <div class="progress"><div class="bar" id="fund-progress" style="width: {{.Cards.Utilization}}%"></div></div>
  </div>
  <div class="card">
    <div class="label">Top District</div>
    <div class="value" id="top-district">{{.Cards.TopDistrict}}</div>
    <div class="sub" id="top-district-value">{{.Cards.TopValue}}</div>
  </div>
</section>
<section class="charts">
{{- range .Panels}}
  <div class="chart-box{{if eq .Kind "comparison"}} wide{{end}}" id="{{.ID}}-box">
    <canvas id="{{.ID}}"></canvas>
    <div class="empty">No data</div>
  </div>
{{- end}}
</section>
<script>
(function () {
  const views = {{json .Views}};
  const charts = {};

  function compact(value) {
    if (value >= 1000000) return (value / 1000000).toFixed(1) + 'M';
    if (value >= 1000) return (value / 1000).toFixed(1) + 'K';
    return value;
  }

  function prepare(spec) {
    const s = JSON.parse(JSON.stringify(spec));
    const y = s.options && s.options.scales && s.options.scales.y;
    if (y && y.ticks && y.ticks.format === 'compact') {
      delete y.ticks.format;
      y.ticks.callback = compact;
    }
    return s;
  }

  function show(name) {
    const view = views[name];
    if (!view) return;
    document.getElementById('total-beneficiaries').textContent = view.summary.total;
    document.getElementById('fund-utilization').textContent = view.summary.utilization + '%';
    document.getElementById('fund-progress').style.width = view.summary.utilization + '%';
    document.getElementById('top-district').textContent = view.summary.topDistrict;
    document.getElementById('top-district-value').textContent = view.summary.topValue;

    for (const id of Object.keys(view.charts)) {
      if (charts[id]) {
        charts[id].destroy();
        delete charts[id];
      }
      const canvas = document.getElementById(id);
      if (!canvas) continue;
      const spec = view.charts[id];
      const box = canvas.parentElement;
      box.classList.toggle('skipped', !spec);
      box.title = view.skipped[id] || '';
      if (spec && window.Chart) {
        charts[id] = new Chart(canvas.getContext('2d'), prepare(spec));
      }
    }
  }

  document.getElementById('district-selector').addEventListener('change', function () {
    show(this.value);
  });
  show({{.District}});
})();
</script>
</body>
</html>
`
