// Command schemagen writes the JSON schema of the roleattrs configuration.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/scoutsearch/roleattrs/api/v1beta1/configs"
	"github.com/scoutsearch/roleattrs/pkg/schema"
)

const modulePath = "github.com/scoutsearch/roleattrs"

var (
	outFile = pflag.StringP("out", "o", "schema.json", "Output file for the generated schema")
	rootDir = pflag.String("root", "../../..", "Module root directory, used to read doc comments")
)

func main() {
	pflag.Parse()

	out, err := filepath.Abs(*outFile)
	if err != nil {
		log.Fatalf("resolve output path: %v", err)
	}

	// Comment lookup keys are built from paths relative to the module root.
	err = os.Chdir(*rootDir)
	if err != nil {
		log.Fatalf("change to module root: %v", err)
	}

	gen := schema.NewGenerator(configs.New(),
		schema.WithID("https://"+modulePath+"/api/v1beta1/configs/config"),
		schema.WithComments(modulePath, "api/v1beta1"),
		schema.WithComments(modulePath, "pkg/rule"),
	)

	jsData, err := gen.Generate()
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	err = os.WriteFile(out, jsData, 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
