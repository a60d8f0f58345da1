package web

import (
	"embed"
	"html/template"
	"io/fs"
)

var (
	//go:embed templates/* static/*
	allFS       embed.FS
	TemplatesFS = fsSub(allFS, "templates")
	StaticFS    = fsSub(allFS, "static")
)

// Templates parses every embedded page with funcs available to them.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(TemplatesFS, "*.html")
}

func fsSub(fsys fs.FS, dir string) fs.FS {
	f, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return f
}
