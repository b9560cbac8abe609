package cli

import (
	"fmt"
	"io"
	"text/template"
)

var templates = template.New("cli")

// render выводит шаблон в w; шаблоны статические, ошибка исполнения означает ошибку в коде
func render(w io.Writer, text string, data any) {
	t := template.Must(template.Must(templates.Clone()).Parse(text))
	if err := t.Execute(w, data); err != nil {
		_, _ = fmt.Fprintf(w, "template error: %v\n", err)
	}
}

func (c *Cli) render(text string, data any) {
	render(c.io, text, data)
}

// Usage печатает справку, не требуя собранного Cli
func Usage(w io.Writer) {
	render(w, usageTemplate, nil)
}

const usageTemplate = `
kodrf client

Usage:
  kodrf [OPTIONS] COMMAND

Options:
  -version              Show version information
  -server URL           Service URL (default: https://kodrf.ru)
  -db PATH              Path to local database (default: kodrf-client.db)
  -config PATH          Path to YAML config file
  -password PASSWORD    Password (not recommended, use env var or file)
  -password-file PATH   Path to file containing password

Password Priority (highest to lowest):
  1. KODRF_PASSWORD environment variable
  2. -password-file (file path)
  3. -password (command line)
  4. Interactive prompt (fallback)

Commands:
  register                      Create an account
  login                         Login to the service
  logout                        Forget the session on this device
  status                        Show authentication status
  profile                       Show profile and companies
  companies [list]              List your companies
  companies lookup <inn>        Find a company in the registries
  companies add <inn> [name]    Add a company (name is looked up when omitted)
  companies remove <inn>        Remove a company
  schedule [primary|secondary]  Show supply slots (WB or OZON / ЯМ / ТК)
  order <supply-id> [-pay]      Book a supply slot
  version                       Show version information

Examples:
  kodrf login
  kodrf companies add 7707083893
  kodrf schedule secondary
  kodrf order 42 -pay
  kodrf -server https://staging.kodrf.ru status
`

const versionTemplate = `kodrf client
Version:    {{.Version}}
Build Date: {{.BuildDate}}
Git Commit: {{.GitCommit}}
`

const statusTemplate = `
=== Authentication Status ===

{{- if not .Authenticated}}
Status: Not authenticated

Run 'kodrf login' to authenticate.
{{- else}}
Status: Authenticated
{{- if .Admin}}
Role:   administrator
{{- end}}
{{- if .Subject}}
Subject: {{.Subject}}
{{- end}}
{{- if not .ExpiresAt.IsZero}}
Token expires: {{.ExpiresAt.Format "2006-01-02T15:04:05Z07:00"}}
{{- if .Expired}}
⚠️  Token has expired. Please login again.
{{- end}}
{{- end}}
{{- end}}
`

const profileTemplate = `
=== Profile ===

Name:  {{.Person.Name}}
Email: {{.Person.Email}}
{{- if not .Fresh}}

⚠️  Showing cached data: the service could not be reached.
{{- end}}
{{template "companies" .Companies}}`

const companiesTemplate = `{{define "companies"}}
{{- if not .}}
No companies yet. Use 'kodrf companies add <inn>' to add one.
{{- else}}
Companies ({{len .}}):
{{- range $i, $c := .}}
{{inc $i}}. {{$c.Name}}
   INN:  {{$c.INN}}
{{- if $c.KPP}}
   KPP:  {{$c.KPP}}
{{- end}}
{{- if $c.OGRN}}
   OGRN: {{$c.OGRN}}
{{- end}}
{{- end}}
{{- end}}
{{end}}`

const scheduleTemplate = `
=== Schedule: {{.Channel}} ===
{{if not .Supplies}}
No supply slots available.
{{- else}}
{{- range .Supplies}}
[{{.ID}}] {{.Title}}
     {{.Describe}}
{{- end}}

Use 'kodrf order <id>' to book a slot.
{{- end}}
`

const orderResultTemplate = `
✓ {{if .Paid}}Order saved, proceed to payment on the website{{else}}Order saved!{{end}}

Slot:       {{.Order.Title}}
From:       {{.Order.DepartureCity}}
Warehouse:  {{.Order.Store}}, {{.Order.SendCity}}
Type:       {{.Order.SupplyType}}
Volume:     {{printf "%.3f" .Order.Volume}} m³
Price:      {{printf "%.2f" .Quote.Price}} ₽
Submission: {{.SubmissionID}}
`

func init() {
	templates.Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	})
	template.Must(templates.Parse(companiesTemplate))
}
