package cli

import (
	"fmt"
	"os"
	"strings"

	"bhaalingual/game"
	"bhaalingual/tlk"
	"bhaalingual/tlk/tcharset"
	"bhaalingual/ui"
	"github.com/alexflint/go-arg"
)

type (
	Args struct {
		Merge       *MergeCmd       `arg:"subcommand:merge"`
		Dump        *DumpCmd        `arg:"subcommand:dump"`
		Langs       *LangsCmd       `arg:"subcommand:langs"`
		Restore     *RestoreCmd     `arg:"subcommand:restore"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
	}
	MergeCmd struct {
		GameDir       string `arg:"--game-dir,required" help:"path to the game installation" placeholder:"PATH"`
		PrimaryLang   string `arg:"--primary-lang,required" help:"language shown first" placeholder:"de_DE"`
		SecondaryLang string `arg:"--secondary-lang,required" help:"language shown second" placeholder:"en_US"`
		Separator     string `arg:"--separator" default:"\\n---\\n" help:"separator between languages; supports \\n and \\t"`
		Swap          bool   `help:"swap primary/secondary order in output"`
		OutputDir     string `arg:"--output-dir" default:"./output" help:"output directory for merged files"`
		Encoding      string `default:"cp1252" help:"text encoding of the TLK files; use utf-8 for some EE installs"`
		Strict        bool   `help:"fail on characters the encoding cannot represent instead of substituting"`
		Install       bool   `help:"install merged files into the game, backing up originals as *.bak"`
	}
	DumpCmd struct {
		File      string `arg:"positional,required" help:"path to a TLK file" placeholder:"dialog.tlk"`
		Max       int    `default:"100" help:"max entries to show"`
		ShowEmpty bool   `arg:"--show-empty" help:"include blank entries"`
		Encoding  string `default:"cp1252" help:"text encoding of the TLK file"`
	}
	LangsCmd struct {
		GameDir string `arg:"--game-dir,required" help:"path to the game installation" placeholder:"PATH"`
	}
	RestoreCmd struct {
		GameDir     string `arg:"--game-dir,required" help:"path to the game installation" placeholder:"PATH"`
		PrimaryLang string `arg:"--primary-lang,required" help:"language whose backups should be restored" placeholder:"de_DE"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Two tongues, one Bhaalspawn.\n",
			"A CLI utility to merge two language versions of Baldur's Gate I/II EE's",
			"dialog.tlk into a single bilingual string table.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// ParseSeparator allows \n and \t escape sequences in the separator argument.
func ParseSeparator(separator string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(separator)
}

func StartMerging(cmd MergeCmd) {
	codec, err := tcharset.ByName(cmd.Encoding)
	if err != nil {
		println("Unknown encoding: " + cmd.Encoding)
		os.Exit(1)
	}
	codec.Strict = cmd.Strict

	options := game.Options{
		GameDir:       cmd.GameDir,
		PrimaryLang:   cmd.PrimaryLang,
		SecondaryLang: cmd.SecondaryLang,
		OutputDir:     cmd.OutputDir,
		Separator:     ParseSeparator(cmd.Separator),
		Swap:          cmd.Swap,
		Codec:         codec,
	}

	fmt.Printf("Bhaalingual Edition TLK generator\n")
	fmt.Printf("  Game dir:       %s\n", cmd.GameDir)
	fmt.Printf("  Primary lang:   %s\n", cmd.PrimaryLang)
	fmt.Printf("  Secondary lang: %s\n", cmd.SecondaryLang)
	fmt.Printf("  Separator:      %q\n", options.Separator)
	fmt.Printf("  Output dir:     %s\n", cmd.OutputDir)
	if cmd.Swap {
		fmt.Printf("  (languages swapped)\n")
	}

	processed := make([]string, 0, len(game.TLKFileNames))
	for _, filename := range game.TLKFileNames {
		fmt.Printf("\nProcessing %s:\n", filename)
		result, err := game.ProcessFile(options, filename)
		if err != nil {
			// a broken file aborts that file only, not the whole run
			fmt.Printf("  ERROR: %v\n", err)
			continue
		}
		if result.Skipped {
			fmt.Printf("  Skipping %s: %s\n", filename, result.SkipReason)
			continue
		}
		fmt.Printf("  Primary:   %s\n", result.PrimaryPath)
		fmt.Printf("  Secondary: %s", result.SecondaryPath)
		if result.SecondaryFallback {
			fmt.Printf(" (fallback from %s)", game.DialogFileName)
		}
		fmt.Printf("\n")
		if result.Stats.CountMismatch() {
			fmt.Printf(
				"  WARNING: entry count mismatch; primary=%d, secondary=%d, using minimum\n",
				result.Stats.PrimaryLen, result.Stats.SecondaryLen,
			)
		}
		fmt.Printf(
			"  Merged %d entries: %d bilingual, %d kept, %d empty\n",
			result.Stats.Total, result.Stats.Combined, result.Stats.Kept, result.Stats.Empty,
		)
		fmt.Printf("  Written to %s\n", result.OutputPath)
		processed = append(processed, filename)
	}

	if len(processed) == 0 {
		println("\nERROR: No TLK files were processed. Check --game-dir and the language codes.")
		os.Exit(1)
	}

	if cmd.Install {
		fmt.Printf("\nInstalling into the game (%s)...\n", cmd.PrimaryLang)
		installed, err := game.Install(cmd.GameDir, cmd.PrimaryLang, cmd.OutputDir, processed)
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
		for _, filename := range installed {
			fmt.Printf("  Installed %s\n", filename)
		}
		println("To restore the originals, run the restore subcommand.")
	}
}

func StartDumping(cmd DumpCmd) {
	codec, err := tcharset.ByName(cmd.Encoding)
	if err != nil {
		println("Unknown encoding: " + cmd.Encoding)
		os.Exit(1)
	}
	if !game.Exists(cmd.File) {
		println("File does not exist: " + cmd.File)
		os.Exit(1)
	}
	fileBytes, err := os.ReadFile(cmd.File)
	if err != nil {
		fmt.Printf("Error happened reading file: %v\n", err)
		os.Exit(1)
	}
	table, err := tlk.Decode(fileBytes, codec)
	if err != nil {
		fmt.Printf("Error happened decoding %s: %v\n", cmd.File, err)
		os.Exit(1)
	}
	tlk.Dump(os.Stdout, *table, cmd.Max, cmd.ShowEmpty)
}

func StartListingLanguages(cmd LangsCmd) {
	infos, err := game.ListLanguages(cmd.GameDir)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
	if len(infos) == 0 {
		println("No language directories found.")
		return
	}
	println("Installed languages:")
	for _, info := range infos {
		if info.DialogSize >= 0 {
			fmt.Printf("  %-12s  %d bytes\n", info.Name, info.DialogSize)
		} else {
			fmt.Printf("  %-12s  no %s\n", info.Name, game.DialogFileName)
		}
	}
}

func StartRestoring(cmd RestoreCmd) {
	restored, err := game.Restore(cmd.GameDir, cmd.PrimaryLang, game.TLKFileNames)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
	if len(restored) == 0 {
		println("No backups found.")
		return
	}
	for _, filename := range restored {
		fmt.Printf("  Restored %s\n", filename)
	}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	switch {
	case args.Merge != nil:
		StartMerging(*args.Merge)
	case args.Dump != nil:
		StartDumping(*args.Dump)
	case args.Langs != nil:
		StartListingLanguages(*args.Langs)
	case args.Restore != nil:
		StartRestoring(*args.Restore)
	case args.Interactive != nil:
		ui.Start()
	default:
		parser.WriteHelp(os.Stdout)
	}
}
