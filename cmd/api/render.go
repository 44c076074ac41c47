package main

import (
	"encoding/json"
	"html/template"
	"net/http"
	"os"

	"nurse-roster/internal/middleware"
)

func resolveTemplatePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Try going up two levels (for tests running from cmd/api)
		p2 := "../../" + path
		if _, err := os.Stat(p2); err == nil {
			return p2
		}
	}
	return path
}

func toJSON(v interface{}) template.HTML {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.HTML(b)
}

func render(w http.ResponseWriter, r *http.Request, tmplName string, data interface{}, files ...string) {
	var allFiles []string
	allFiles = append(allFiles, resolveTemplatePath("ui/templates/layout.html"))
	for _, f := range files {
		allFiles = append(allFiles, resolveTemplatePath(f))
	}

	tmpl := template.New("layout").Funcs(template.FuncMap{
		"json": toJSON,
	})

	tmpl, err := tmpl.ParseFiles(allFiles...)
	if err != nil {
		http.Error(w, "Template Parse Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	token, _ := r.Context().Value(middleware.CSRFTokenKey).(string)

	wrapper := struct {
		Data      interface{}
		CSRFToken string
	}{
		Data:      data,
		CSRFToken: token,
	}

	if err := tmpl.ExecuteTemplate(w, "layout", wrapper); err != nil {
		http.Error(w, "Template Execute Error: "+err.Error(), http.StatusInternalServerError)
	}
}
