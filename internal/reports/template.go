package reports

// dashboardTemplate is the full dashboard page. Filter controls submit a GET
// back to the dashboard itself; the sliders mirror their values into the
// numeric labels next to them.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Türkiye Earthquake Dashboard</title>
<style>
body { font-family: "Segoe UI", Helvetica, Arial, sans-serif; margin: 0; background: #f4f5f7; color: #1f2933; }
header { background: #27374d; color: #fff; padding: 18px 32px; }
header h1 { margin: 0; font-size: 1.5em; }
header p { margin: 4px 0 0; color: #9db2bf; font-size: 0.9em; }
main { max-width: 1100px; margin: 0 auto; padding: 24px 32px; }
form.filters { display: flex; flex-wrap: wrap; gap: 20px; align-items: flex-end; background: #fff; border-radius: 8px; padding: 16px 20px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
form.filters label { display: block; font-size: 0.8em; color: #52606d; margin-bottom: 4px; }
form.filters input[type="date"] { padding: 5px 8px; border: 1px solid #cbd2d9; border-radius: 4px; }
form.filters input[type="range"] { width: 160px; }
form.filters button { background: #27374d; color: #fff; border: none; border-radius: 4px; padding: 8px 18px; cursor: pointer; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; margin: 24px 0; }
.card { background: #fff; border-radius: 8px; padding: 16px 20px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
.card .value { font-size: 1.7em; font-weight: 600; margin-top: 6px; }
.card .hint { color: #7b8794; font-size: 0.8em; margin-top: 4px; }
section.chart { background: #fff; border-radius: 8px; padding: 12px; margin-bottom: 24px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); overflow-x: auto; }
section.summary { background: #fff; border-radius: 8px; padding: 16px 24px; margin-bottom: 24px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
table.events { width: 100%; border-collapse: collapse; background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
table.events th, table.events td { padding: 8px 12px; text-align: left; border-bottom: 1px solid #e4e7eb; font-size: 0.9em; }
table.events th { background: #eef1f4; color: #52606d; }
ul.notable { list-style: none; padding: 0; }
ul.notable li { background: #fff; border-radius: 6px; padding: 10px 14px; margin-bottom: 8px; box-shadow: 0 1px 2px rgba(0,0,0,0.06); font-size: 0.9em; }
ul.notable li span.when { color: #7b8794; margin-left: 8px; }
a.export { display: inline-block; margin: 8px 0 24px; color: #27374d; font-weight: 600; }
footer { text-align: center; color: #7b8794; font-size: 0.8em; padding: 24px; }
h2 { margin: 28px 0 12px; font-size: 1.1em; color: #334e68; }
</style>
</head>
<body>
<header>
	<h1>Türkiye Earthquake Dashboard</h1>
	<p>AFAD event catalog, {{.StartDate}} to {{.EndDate}}</p>
</header>
<main>
	<form class="filters" method="get" action="/">
		<div>
			<label for="start">Start date</label>
			<input type="date" id="start" name="start" value="{{.StartDate}}">
		</div>
		<div>
			<label for="end">End date</label>
			<input type="date" id="end" name="end" value="{{.EndDate}}">
		</div>
		<div>
			<label for="min_mag">Min magnitude: <output id="min_mag_out">{{.MinMagnitude}}</output></label>
			<input type="range" id="min_mag" name="min_mag" min="0" max="10" step="0.1" value="{{.MinMagnitude}}"
				oninput="document.getElementById('min_mag_out').value = this.value">
		</div>
		<div>
			<label for="max_mag">Max magnitude: <output id="max_mag_out">{{.MaxMagnitude}}</output></label>
			<input type="range" id="max_mag" name="max_mag" min="0" max="10" step="0.1" value="{{.MaxMagnitude}}"
				oninput="document.getElementById('max_mag_out').value = this.value">
		</div>
		<button type="submit">Apply filters</button>
	</form>

	<div class="cards">
		<div class="card">
			<div>Earthquakes in range</div>
			<div class="value">{{.Total}}</div>
			<div class="hint">Türkiye only</div>
		</div>
		<div class="card">
			<div>Since the mainshock</div>
			<div class="value">{{.SinceMainshock}}</div>
			<div class="hint">After 2023-02-06 01:17 UTC</div>
		</div>
		<div class="card">
			<div>Mean interval, last 24h</div>
			<div class="value">{{.MeanInterval}}</div>
			<div class="hint">Between consecutive events</div>
		</div>
		<div class="card">
			<div>Strongest in range</div>
			<div class="value">{{.StrongestMagnitude}}</div>
			<div class="hint">{{.StrongestLocation}}</div>
		</div>
	</div>

	<a class="export" href="{{.ExportURL}}">Download filtered events as CSV</a>

	{{if .ActivitySummary}}
	<section class="summary">
		{{.ActivitySummary}}
	</section>
	{{end}}

	<section class="chart">{{.EpicenterMap}}</section>
	<section class="chart">{{.MagnitudeTimeline}}</section>
	<section class="chart">{{.MagnitudeHistogram}}</section>
	<section class="chart">{{.IntervalTrend}}</section>

	<h2>Strongest earthquakes in range</h2>
	<table class="events">
		<thead>
			<tr><th>Time (TRT)</th><th>Magnitude</th><th>Depth (km)</th><th>Location</th><th>Province</th></tr>
		</thead>
		<tbody>
		{{range .Strongest}}
			<tr>
				<td>{{.LocalTime}}</td>
				<td>{{.Magnitude}}</td>
				<td>{{.Depth}}</td>
				<td>{{.Location}}</td>
				<td>{{.Province}}</td>
			</tr>
		{{else}}
			<tr><td colspan="5">No events in the selected range</td></tr>
		{{end}}
		</tbody>
	</table>

	{{if .Notable}}
	<h2>Recent significant earthquakes worldwide</h2>
	<ul class="notable">
	{{range .Notable}}
		<li><a href="{{.Link}}">{{.Title}}</a><span class="when">{{.Published.Format "2006-01-02 15:04 UTC"}}</span></li>
	{{end}}
	</ul>
	{{end}}
</main>
<footer>
	Data: AFAD event service and USGS significant earthquakes feed.
	Generated {{.GeneratedAt}} by teq-dashboard v{{.Version}}.
</footer>
</body>
</html>
`
