package render

const pageTemplates = `
{{define "heading"}}<!doctype html>
<html>
<head>
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/water.css@2/out/water.min.css">
</head>
<body>
<a href="/">Home</a>
<br/>
<h1>{{.Title}}</h1>
{{end}}

{{define "footing"}}</body>
</html>
{{end}}

{{define "list"}}{{template "heading" .}}<table><thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead><tbody>
{{range .Rows}}<tr>{{range .}}{{if .Image}}<td><img height="75" src="{{.Value}}"/></td>{{else}}<td>{{.Value}}</td>{{end}}{{end}}</tr>
{{end}}</tbody></table>
{{template "footing" .}}{{end}}

{{define "home"}}{{template "heading" .}}<p><a href="/teams">Teams</a></p>
<section>
<p>Standings</p>
{{range .Nav.Years}}{{$year := .Year}}<ul>
<li>
<p><a href="/standings/{{$year}}">{{$year}} Season</a></p>
<ul>
{{range .Leagues}}{{$league := .League}}<li>
<a href="/standings/{{$year}}/{{$league}}">{{$league}}</a>
<ul>
{{range .Divisions}}<li><a href="/standings/{{$year}}/{{$league}}/{{.}}">{{.}}</a></li>
{{end}}</ul>
</li>
{{end}}</ul>
</li>
</ul>
{{end}}</section>
{{template "footing" .}}{{end}}
`
