package export

import (
	"html/template"
	"io"
)

// Word documents are HTML with the Office namespaces; Word opens them as .doc.
var wordTpl = template.Must(template.New("doc").Funcs(template.FuncMap{
	"tags": func(t []string) string { return firstTags(t, 5) },
}).Parse(`<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head>
<meta charset='utf-8'>
<title>{{.Doc.Title}}</title>
{{.Office}}
</head>
<body>
<h1 style="font-size: 24pt; font-family: Arial, sans-serif; color: #333;">{{.Doc.Title}}</h1>
<p class="generated" style="font-size: 10pt; font-family: Arial, sans-serif; color: #666;">Generated on: {{.Doc.GeneratedOn}}</p>
<br/>
<table style="width: 100%; border-collapse: collapse; font-family: Arial, sans-serif;">
{{- range .Doc.Entries}}
<tr class="entry" style="border-bottom: 1px solid #ccc;">
<td style="width: 120px; padding: 10px; vertical-align: top;">
<div style="width: 100px; height: 150px; background: #eee; border: 1px solid #ddd; font-size: 10px;">No Image</div>
</td>
<td style="padding: 10px; vertical-align: top;">
<h2 style="font-size: 14pt; margin: 0 0 5px 0; color: #000;">{{.Index}}. {{.Title}}</h2>
<div class="meta" style="font-size: 10pt; color: #444; margin-bottom: 4px;"><strong>Year:</strong> {{.Year}} &nbsp;|&nbsp; <strong>Type:</strong> {{.Type}} &nbsp;|&nbsp; <strong>Episodes:</strong> {{.Episodes}}</div>
<div class="status" style="font-size: 10pt; color: #444; margin-bottom: 4px;"><strong>Status:</strong> {{.Status}}</div>
{{- with tags .Tags}}
<div class="genres" style="font-size: 9pt; color: #666; margin-top: 5px;"><em>Genres: {{.}}</em></div>
{{- end}}
</td>
</tr>
{{- end}}
</table>
<br/>
<div class="totals" style="text-align: right; font-family: Arial, sans-serif; font-size: 12pt; border-top: 2px solid #333; padding-top: 10px;">
<strong>Total Anime:</strong> <span id="total-anime">{{.Doc.Count}}</span><br/>
<strong>Total Episodes:</strong> <span id="total-episodes">{{.Doc.TotalEpisodes}}</span>
</div>
</body>
</html>
`))

// officeHead asks Word to open in print layout. html/template drops comments,
// so it is passed in as trusted markup.
const officeHead = template.HTML(`<!--[if gte mso 9]><xml><w:WordDocument><w:View>Print</w:View><w:Zoom>100</w:Zoom><w:DoNotOptimizeForBrowser/></w:WordDocument></xml><![endif]-->`)

// Word writes doc as a Word-compatible HTML document.
func Word(w io.Writer, doc Document) error {
	return wordTpl.Execute(w, struct {
		Doc    Document
		Office template.HTML
	}{doc, officeHead})
}
