package main

import (
	// ====================== VIEWSEQ IMPORTS ============================
	"github.com/inoxlang/viewseq/internal/config"
	"github.com/inoxlang/viewseq/internal/utils"
	"github.com/inoxlang/viewseq/internal/views"

	// ====================== STDLIB ============================
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	// ====================== THIRD PARTY ============================
	"github.com/goccy/go-json"
	"github.com/posener/complete/v2/install"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "viewseq"

	CONFIG_FLAG   = "config"
	SOURCE_FLAG   = "source"
	INPUT_FLAG    = "input"
	PATH_FLAG     = "path"
	SEQ_FLAG      = "seq"
	PIPE_FLAG     = "pipe"
	READONLY_FLAG = "readonly"
)

func main() {
	//handle completions
	cmd.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	mainSubCommand := RUN_SUBCMD
	var mainSubCommandArgs []string

	switch {
	case len(args) <= 1:
	case args[1] != "" && args[1][0] == '-' && !slices.Contains(HELP_SUBCMD_EQUIVALENTS, args[1]):
		//flags of the default command
		mainSubCommandArgs = args[1:]
	default:
		mainSubCommand = args[1]
		mainSubCommandArgs = args[2:]
	}

	//if the command has the shape help <subcommand> we ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && slices.Contains(SUBCOMMANDS, mainSubCommandArgs[0]) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	switch mainSubCommand {
	case HELP_SUBCMD, "--help", "-help", "-h":
		fmt.Fprint(outW, VIEWSEQ_CMD_HELP)
		return
	case SOURCES_SUBCMD:
		for _, desc := range SOURCE_DESCRIPTIONS {
			fmt.Fprintf(outW, "%-8s %s\n", desc[0], desc[1])
		}
		return
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return
	case RUN_SUBCMD:
		return runSubcommand(mainSubCommandArgs, outW, errW)
	default:
		closest, _, ok := utils.FindClosestString(context.Background(), SUBCOMMANDS, mainSubCommand, 2)
		if ok {
			fmt.Fprintf(errW, "unknown command '%s', did you mean '%s' ?\n", mainSubCommand, closest)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintf(errW, "unknown command '%s'\n%s", mainSubCommand, VIEWSEQ_CMD_HELP)
		return ERROR_STATUS_CODE
	}
}

func runSubcommand(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	flags := flag.NewFlagSet(RUN_SUBCMD, flag.ContinueOnError)
	flags.SetOutput(errW)

	var (
		configPath string
		source     string
		input      inputSpec
		pipeline   string
		readonly   bool
	)

	flags.StringVar(&configPath, CONFIG_FLAG, "", "path of the configuration file (default: "+config.CONFIG_FILE_RELPATH+" in the XDG config directories)")
	flags.StringVar(&source, SOURCE_FLAG, "", "type of the sequence: slice, linked, tree, bits or vector (default: from the configuration)")
	flags.StringVar(&input.file, INPUT_FLAG, "", "JSON or YAML file containing the elements, optionally compressed (.gz, .zst)")
	flags.StringVar(&input.path, PATH_FLAG, "", "path of the array in the input document, e.g. 'data.values'")
	flags.StringVar(&input.seq, SEQ_FLAG, "", "comma-separated elements, e.g. '10,20,30'")
	flags.StringVar(&pipeline, PIPE_FLAG, "", "stages separated by '|': all, drop N, sub FROM TO, next N, prev N")
	flags.BoolVar(&readonly, READONLY_FLAG, false, "traverse the resulting view through read-only positions")

	if showHelp(flags, args, outW) {
		return
	}

	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	if flags.NArg() != 0 {
		fmt.Fprintf(errW, "unexpected arguments: %v\n", flags.Args())
		return ERROR_STATUS_CODE
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	if source != "" {
		cfg.Source = source
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
	}

	logger, err := cfg.Logger(errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	if cfg.File != "" {
		logger.Debug().Str("file", cfg.File).Msg("configuration loaded")
	}

	views.Configure(cfg.ViewsConfig(logger))

	stages, err := parsePipeline(pipeline)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	numbers, err := readElements(input)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	rep, err := runSource(cfg.Source, numbers, stages, readonly, logger)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	encoder := json.NewEncoder(outW)
	if err := encoder.Encode(rep); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	return
}
