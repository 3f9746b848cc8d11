// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/crosstable/internal/util"
	"laptudirm.com/x/crosstable/pkg/config"
	"laptudirm.com/x/crosstable/pkg/crosstable"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "crosstable [results-file]",
		Short: "Render a cross table of pairwise match results",
		Long: heredoc.Doc(`crosstable reads a space separated results file and prints
			the cross table of the results, with a row for every Player1
			and a column for every Player2. Missing results are left empty.

			The results file must start with a header naming its fields,
			by default Player1, Player2 and Result. If no file is given,
			the input file from the configuration is used, which defaults
			to results/data.csv.

			Defaults for every flag can be set in the file
			$XDG_CONFIG_HOME/crosstable/config.yaml.`),
		Args: cobra.MaximumNArgs(1),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			input := conf.Input
			if len(args) == 1 {
				input = args[0]
			}

			util.StartSpinner()
			records, err := crosstable.Load(input, conf.Columns)
			util.PauseSpinner()
			if err != nil {
				return err
			}

			// loadConfig has validated the order.
			order, _ := crosstable.ParseOrder(conf.Order)
			matrix := crosstable.Pivot(records).Sort(order)

			table, err := crosstable.Render(matrix, conf.Options())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), table)
			return err
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Crosstable's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.PersistentFlags().StringP("config", "c", "", "Read the configuration from the given file")
	root.PersistentFlags().StringP("format", "f", "", "Table format: latex, markdown, text or csv")
	root.PersistentFlags().IntP("precision", "p", 1, "Digits after the decimal point")
	root.PersistentFlags().StringP("order", "o", "", "Order of the players: appearance or natural")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Config())

	return root
}

// loadConfig reads the configuration file and applies the flags which were
// set on the command line over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var conf config.Config
	var err error

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		conf, err = config.LoadFile(path)
	} else {
		conf, err = config.Load()
	}

	if err != nil {
		return conf, err
	}

	if cmd.Flags().Changed("format") {
		conf.Format, _ = cmd.Flags().GetString("format")
	}

	if cmd.Flags().Changed("precision") {
		conf.Precision, _ = cmd.Flags().GetInt("precision")
	}

	if cmd.Flags().Changed("order") {
		conf.Order, _ = cmd.Flags().GetString("order")
	}

	return conf, conf.Validate()
}
