package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"edid-forge/ds"
	"edid-forge/edid"
	"edid-forge/edid/efield"
	"edid-forge/logger"
	"edid-forge/ui"
)

type (
	Args struct {
		Verbose     bool            `arg:"-v,--verbose,env:EDID_VERBOSE" help:"log debug messages"`
		LogFormat   string          `arg:"--log-format,env:EDID_LOG_FORMAT" default:"text" help:"log format, text or json"`
		Edit        *EditCmd        `arg:"subcommand:edit" help:"edit fields of an EDID binary"`
		Convert     *ConvertCmd     `arg:"subcommand:convert" help:"convert a directory of hex dumps to binaries sorted by resolution"`
		Info        *InfoCmd        `arg:"subcommand:info" help:"print a report of an EDID binary"`
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"print an EDID binary as a hex dump"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse EDID binaries in a directory"`
	}
	EditCmd struct {
		Input   string `arg:"positional,required" help:"input EDID binary" placeholder:"INPUT"`
		Output  string `arg:"positional,required" help:"output EDID binary" placeholder:"OUTPUT"`
		Serial  string `help:"manufacture serial (8 HEX symbols)"`
		Week    *int   `help:"produce week (1-53), requires --year"`
		Year    *int   `help:"produce year (1990-2245), requires --week"`
		Product string `help:"product serial number descriptor (max 13 symbols)"`
		Name    string `help:"product name descriptor (max 13 symbols)"`
	}
	ConvertCmd struct {
		InputDir  string `arg:"positional,required" help:"directory of hex dumps" placeholder:"INPUT_DIR"`
		OutputDir string `arg:"positional,required" help:"destination directory" placeholder:"OUTPUT_DIR"`
		JSON      bool   `arg:"--json" help:"print the run report as JSON"`
	}
	InfoCmd struct {
		Input string `arg:"positional,required" help:"EDID binary" placeholder:"INPUT"`
	}
	DumpCmd struct {
		Input string `arg:"positional,required" help:"EDID binary" placeholder:"INPUT"`
	}
	InteractiveCmd struct {
		Dir string `help:"directory to browse, defaults to the working directory"`
	}
)

var ErrUsage = errors.New("usage")

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Edit EDID binaries and sort EDID hex dumps by native resolution.",
			"",
			"Edits always finish by recomputing the base block checksum.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (c EditCmd) Edits() (efield.Edits, error) {
	edits := efield.Edits{
		Serial:      c.Serial,
		SerialText:  c.Product,
		ProductName: c.Name,
	}
	switch {
	case c.Week != nil && c.Year != nil:
		edits.Date = &efield.Date{Week: *c.Week, Year: *c.Year}
	case c.Week != nil || c.Year != nil:
		return efield.Edits{}, errors.Wrap(ErrUsage, "--week and --year must be given together")
	}
	return edits, nil
}

func StartEditing(cmd EditCmd) error {
	edits, err := cmd.Edits()
	if err != nil {
		return err
	}
	// a failed edit is reported, it does not fail the process
	if err := edid.EditFile(cmd.Input, cmd.Output, edits); err != nil {
		logger.L.Error("exception", "file", cmd.Input, "error", err)
	}
	return nil
}

func StartConverting(cmd ConvertCmd, stdout io.Writer) error {
	report, err := edid.ConvertDirectory(cmd.InputDir, cmd.OutputDir)
	if err != nil {
		return err
	}
	if cmd.JSON {
		bs, err := ds.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(err, "render report")
		}
		_, err = fmt.Fprintln(stdout, string(bs))
		return err
	}
	fmt.Fprintf(stdout, "\nSuccess! processed %d, failed %d\n", report.Processed, len(report.Failed))
	for _, resolution := range report.Resolutions.Keys() {
		files, _ := report.Resolutions.Get(resolution)
		fmt.Fprintf(stdout, "  %s: %d\n", resolution, len(files))
	}
	return nil
}

func StartInspecting(cmd InfoCmd, stdout io.Writer) error {
	report, err := edid.Inspect(cmd.Input)
	if err != nil {
		return err
	}
	bs, err := ds.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "render report")
	}
	_, err = fmt.Fprintln(stdout, string(bs))
	return err
}

func StartDumping(cmd DumpCmd, stdout io.Writer) error {
	text, err := edid.DumpFile(cmd.Input)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, text)
	return err
}

func StartInteractive(cmd InteractiveCmd) error {
	dir := cmd.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "get current working directory")
		}
		dir = cwd
	}
	return ui.Start(dir)
}

// Run dispatches to the selected subcommand. The returned error is fatal for
// the process.
func Run(args Args, stdout io.Writer) error {
	if err := logger.Init(logger.Options{Verbose: args.Verbose, Format: args.LogFormat}); err != nil {
		return errors.Wrap(ErrUsage, err.Error())
	}
	switch {
	case args.Edit != nil:
		return StartEditing(*args.Edit)
	case args.Convert != nil:
		return StartConverting(*args.Convert, stdout)
	case args.Info != nil:
		return StartInspecting(*args.Info, stdout)
	case args.Dump != nil:
		return StartDumping(*args.Dump, stdout)
	case args.Interactive != nil:
		return StartInteractive(*args.Interactive)
	default:
		return errors.Wrap(ErrUsage, "a command is required")
	}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	err := Run(args, os.Stdout)
	if errors.Is(err, ErrUsage) {
		parser.Fail(strings.TrimSuffix(err.Error(), ": "+ErrUsage.Error()))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Exception: %v\n", err)
		os.Exit(1)
	}
}
