package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/liberta-cli/liberta/inline"
	"github.com/liberta-cli/liberta/source"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("descriptor", "d", false, "Generate the JSON Schema for the provider descriptor")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd generates JSON schemas for the structured outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured command outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "item", "output", "videosummary", "videodetails", "descriptor":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("descriptor")):
			schema = reflector.Reflect(&source.Descriptor{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
