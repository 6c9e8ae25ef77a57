// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

const versionTemplate = `// SPDX-License-Identifier: GPL-3.0-or-later

// Code generated by internal/scripts/bump-version. DO NOT EDIT.

package info

// VERSION is the current release of go-airscan
var VERSION = {{ printf "%q" .VERSION }}
`

// FileGenerator implements the VersionGenerator interface by rendering the
// version file in place
type FileGenerator struct {
	outFile string
	tmpl    *template.Template
}

// NewFileGenerator returns a new instance of FileGenerator
func NewFileGenerator(outFile string) *FileGenerator {
	return &FileGenerator{
		outFile: outFile,
		tmpl:    template.Must(template.New("version").Parse(versionTemplate)),
	}
}

// Generate implements the Generate method of the VersionGenerator interface.
// Output is gofmt'd before it is written.
func (g *FileGenerator) Generate(data Data) error {
	buf := &bytes.Buffer{}

	if err := g.tmpl.Execute(buf, data); err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(g.outFile), 0751); err != nil {
		return err
	}

	return os.WriteFile(g.outFile, src, 0644)
}
