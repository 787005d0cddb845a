package main

import (
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/inoxlang/viewseq/internal/config"
)

const (
	RUN_SUBCMD                   = "run"
	SOURCES_SUBCMD               = "sources"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{RUN_SUBCMD, SOURCES_SUBCMD, INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{RUN_SUBCMD, "build a view pipeline over a sequence and print the resulting elements (default command)"},
		{SOURCES_SUBCMD, "list the sequence types the pipeline can run on"},
		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by adding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	VIEWSEQ_CMD_HELP = "commands:\n"

	cmd = &complete.Command{
		Sub: map[string]*complete.Command{
			RUN_SUBCMD: {
				Flags: map[string]complete.Predictor{
					CONFIG_FLAG:   predict.Files("*.yaml"),
					SOURCE_FLAG:   predict.Set(config.SOURCES),
					INPUT_FLAG:    predict.Files("*"),
					PATH_FLAG:     predict.Nothing,
					SEQ_FLAG:      predict.Nothing,
					PIPE_FLAG:     predict.Set{"drop 1", "sub 0 1", "next 1", "prev 1", "all"},
					READONLY_FLAG: predict.Nothing,
				},
			},
			SOURCES_SUBCMD:               {},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
			HELP_SUBCMD:                  {},
		},
	}
)

func init() {
	for _, desc := range SUBCOMMAND_DESCRIPTIONS {
		SUBCOMMAND_DESCRIPTION_MAP[desc[0]] = desc[1]
		VIEWSEQ_CMD_HELP += fmt.Sprintf("\t%-22s %s\n", desc[0], desc[1])
	}
}

// showHelp prints the description and the options of the command if the arguments ask for help.
func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	if !slices.ContainsFunc(args, func(arg string) bool { return slices.Contains(HELP_SUBCMD_EQUIVALENTS, arg) }) {
		return false
	}

	if desc, ok := SUBCOMMAND_DESCRIPTION_MAP[flags.Name()]; ok {
		fmt.Fprintln(out, desc)
	}

	flags.SetOutput(out)
	fmt.Fprint(out, "\noptions:\n")
	flags.PrintDefaults()
	return true
}
