package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/bilihot/bilihot/bilibili"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var optionalInt = reflect.TypeOf(mo.Option[int64]{})

// videoSchema describes the JSON document written by --json.
func videoSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t != optionalInt {
				return nil
			}
			return &jsonschema.Schema{
				OneOf: []*jsonschema.Schema{
					{Type: "integer"},
					{Type: "null"},
				},
			}
		},
	}

	schema := reflector.Reflect(&bilibili.Video{})
	schema.Title = "Video"
	schema.Description = "The hottest Bilibili video, as written by bilihot --json"
	return schema
}

// schemaCmd prints the JSON Schema of the exported video record.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the video record written by --json",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		lo.Must0(encoder.Encode(videoSchema()))
	},
}
