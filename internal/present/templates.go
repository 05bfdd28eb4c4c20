package present

import "html/template"

var resultTemplate = template.Must(template.New("result").Parse(`
<div class="data-container">
{{- range .Columns}}
    <div class="data-column">
        <h3>{{.Title}}</h3>
        <p>Sunrise: {{.Day.Sunrise}}</p>
        <p>Sunset: {{.Day.Sunset}}</p>
        <p>Dawn: {{.Day.Dawn}}</p>
        <p>Dusk: {{.Day.Dusk}}</p>
        <p>Day Length: {{.Day.DayLength}}</p>
        <p>Solar Noon: {{.Day.SolarNoon}}</p>
        <p>Timezone: {{$.Timezone}}</p>
    </div>
{{- end}}
</div>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<p class="error">{{.}}</p>`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sunrise Sunset</title>
<style>
.hidden { display: none; }
.data-container { display: flex; gap: 2rem; }
.error { color: #b00020; }
</style>
</head>
<body>
<form id="searchForm" method="get" action="/">
    <input id="locationInput" name="location" type="text" placeholder="Enter a location" value="{{.Query}}">
    <button id="searchButton" type="submit">Search</button>
    <button id="geoButton" type="button">Use my location</button>
</form>
<div id="placeholder"{{if not .PlaceholderVisible}} class="hidden"{{end}}>Search for a location to see sunrise and sunset times.</div>
<div id="results"{{if not .ResultsVisible}} class="hidden"{{end}}>
    <div id="resultContent">{{.Content}}</div>
</div>
<script>
document.getElementById('geoButton').addEventListener('click', () => {
    if (!navigator.geolocation) {
        window.location.search = '?geo=unsupported';
        return;
    }
    navigator.geolocation.getCurrentPosition((position) => {
        const { latitude, longitude } = position.coords;
        window.location.search = '?latitude=' + latitude + '&longitude=' + longitude;
    }, (error) => {
        window.location.search = '?geoerror=' + encodeURIComponent(error.message);
    });
});
</script>
</body>
</html>
`))
