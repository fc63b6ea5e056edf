// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package main provides the seedsplit CLI tool for splitting BIP-0039
// mnemonics into verifiable threshold shares.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/seedsplit"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language    string
	needed      int
	shares      int
	salt        string
	metaPath    string
	interactive bool

	rootCmd = &cobra.Command{
		Use:   "seedsplit",
		Short: "Split a BIP-0039 mnemonic into verifiable threshold shares",
		Long: `Split a BIP-0039 mnemonic into shares, any --needed of which recover
the original, while fewer reveal nothing about it.

Each share is itself a valid BIP-0039 mnemonic of the same length as the
secret. Splitting also produces a public metadata record that lets anyone
verify a share is genuine and lets recovery reject forged shares. The
metadata contains no secret material, but losing it means forged shares
can no longer be detected.

Words may be abbreviated wherever a mnemonic is entered, as long as each
abbreviation is a unique prefix within the word list.

SECURITY TIP: Add a space before the command to prevent the secret from
being saved in your shell history. For example:
    seedsplit split legal winner thank ... --needed 3 --shares 5
   ^ (note the leading space)
Most shells (bash, zsh) are configured to ignore commands that start
with a space. Check your HISTCONTROL or HIST_IGNORE_SPACE settings.
Alternatively, use 'split --interactive' to type the secret without
echo.`,
		SilenceUsage: true,
	}

	splitCmd = &cobra.Command{
		Use:   "split [mnemonic words...]",
		Short: "Split a secret mnemonic into shares and verification metadata",
		Example: `  seedsplit split legal winner thank year wave sausage worth useful legal winner thank yellow --needed 3 --shares 5 --salt backup-2026 --file meta.json
  seedsplit split leg winn tha yea wav sau wor use leg winn tha yel --needed 3 --shares 5 --salt x
  seedsplit split --interactive --needed 2 --shares 3 --salt x --file meta.json
  echo "legal winner thank ..." | seedsplit split --needed 2 --shares 3 --salt x`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := setLanguage(language); err != nil {
				return err
			}
			secret, err := readSecret(args)
			if err != nil {
				return err
			}
			mnemonics, meta, err := seedsplit.Split(secret, needed, shares, salt)
			if err != nil {
				return formatError(err)
			}
			for _, m := range mnemonics {
				fmt.Println(m)
			}
			return writeMetadata(meta)
		},
	}

	verifyCmd = &cobra.Command{
		Use:   "verify <share words...>",
		Short: "Check a share against the published metadata",
		Long: `Check that a share mnemonic was produced by the split described in the
metadata file. Exits 0 if the share matches a published commitment and 1
otherwise.`,
		Example: `  seedsplit verify spoil relief sketch ... --file meta.json
  seedsplit verify spo rel ske ... --file meta.json`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := setLanguage(language); err != nil {
				return err
			}
			meta, err := readMetadata()
			if err != nil {
				return err
			}
			ok, err := seedsplit.Verify(strings.Join(args, " "), meta)
			if err != nil {
				return formatError(err)
			}
			if !ok {
				return errors.New("share does not match any published commitment")
			}
			return nil
		},
	}

	recoverCmd = &cobra.Command{
		Use:   "recover <share>...",
		Short: "Recover the secret mnemonic from shares",
		Long: `Recover the original mnemonic from share mnemonics. Each share is one
quoted argument; its words may be abbreviated. Share indices are not
entered: they are rediscovered from the metadata, which also rejects
forged or mismatched shares before reconstruction.`,
		Example: `  seedsplit recover "spoil relief sketch ..." "crane advice kite ..." "tent noise festival ..." --file meta.json`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		// Errors are reported here in a fixed format, not by cobra.
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			err := runRecover(args)
			if err == nil {
				return nil
			}
			var rerr *seedsplit.RecoverError
			if errors.As(err, &rerr) {
				reportTooFewShares(rerr)
				return err
			}
			_ = formatError(err)
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex (complex@ft.hn)\n"+
				"See LICENSE for licensing information.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for seedsplit.

To load completions:

Bash:
  $ source <(seedsplit completion bash)

Zsh:
  $ seedsplit completion zsh > "${fpath[1]}/_seedsplit"

Fish:
  $ seedsplit completion fish | source

PowerShell:
  PS> seedsplit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Language of the word list")
	splitCmd.Flags().IntVar(&needed, "needed", 0, "Number of shares required to recover the secret")
	splitCmd.Flags().IntVar(&shares, "shares", 0, "Number of shares to produce")
	splitCmd.Flags().StringVar(&salt, "salt", "", "Salt to distinguish multiple splits of the same secret")
	splitCmd.Flags().StringVar(&metaPath, "file", "", "Write public verification metadata here (default stdout)")
	splitCmd.Flags().BoolVar(&interactive, "interactive", false, "Type the secret mnemonic without echo instead of passing it as arguments")
	_ = splitCmd.MarkFlagRequired("needed")
	_ = splitCmd.MarkFlagRequired("shares")
	verifyCmd.Flags().StringVar(&metaPath, "file", "", "File containing public share metadata")
	_ = verifyCmd.MarkFlagRequired("file")
	recoverCmd.Flags().StringVar(&metaPath, "file", "", "File containing public share metadata")
	_ = recoverCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readSecret obtains the secret mnemonic: from the command-line arguments,
// from a pipe, or typed interactively without echo so it never appears in
// shell history or on screen.
func readSecret(args []string) (string, error) {
	if interactive {
		return promptSecret()
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) != 0 {
		bts, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("could not read secret from stdin: %w", err)
		}
		return string(bts), nil
	}
	return promptSecret()
}

// promptSecret reads the secret mnemonic from the terminal with echo
// disabled.
func promptSecret() (string, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	_, _ = fmt.Fprint(os.Stderr, "Enter the secret mnemonic (input is hidden): ")
	t, err := tty.Open()
	if err != nil {
		return "", fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                       //nolint: errcheck
	secret, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return "", fmt.Errorf("could not read secret: %w", err)
	}
	return string(secret), nil
}

// writeMetadata writes the metadata record to --file, or to stdout when no
// file was requested.
func writeMetadata(meta *seedsplit.Metadata) error {
	if metaPath == "" {
		return seedsplit.WriteMetadata(os.Stdout, meta)
	}
	// G304: metaPath is user-provided input, which is expected for a CLI tool
	f, err := os.Create(metaPath) //nolint:gosec
	if err != nil {
		return fmt.Errorf("could not create %s: %w", metaPath, err)
	}
	defer f.Close() //nolint:errcheck
	if err := seedsplit.WriteMetadata(f, meta); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", metaPath, err)
	}
	return nil
}

func readMetadata() (*seedsplit.Metadata, error) {
	// G304: metaPath is user-provided input, which is expected for a CLI tool
	f, err := os.Open(metaPath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", metaPath, err)
	}
	defer f.Close() //nolint:errcheck
	return seedsplit.ReadMetadata(f)
}

// runRecover does the actual recovery so that the command can route every
// error through its own reporting.
func runRecover(args []string) error {
	if err := setLanguage(language); err != nil {
		return err
	}
	meta, err := readMetadata()
	if err != nil {
		return err
	}
	secret, err := seedsplit.Recover(args, meta)
	if err != nil {
		return err
	}
	fmt.Println(secret)
	return nil
}

// reportTooFewShares prints the recovery failure in a fixed format: the
// message line, then the literal text of each rejected share, one per line.
func reportTooFewShares(rerr *seedsplit.RecoverError) {
	fmt.Fprintln(os.Stderr, "Too few valid shares. Invalid shares:")
	for _, s := range rerr.Invalid {
		fmt.Fprintln(os.Stderr, "\t"+s)
	}
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatError shows the error in a styled block when stdout is a terminal
// and returns it unchanged so the command exits with a non-zero code.
func formatError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

// setLanguage sets the word list used for mnemonic encoding and resolution.
func setLanguage(language string) error {
	list := getWordlist(language)
	if list == nil {
		return fmt.Errorf("this language is not supported")
	}
	return seedsplit.SetWordList(list) //nolint: wrapcheck
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

var wordLists = map[lang.Tag][]string{
	lang.Chinese:              wordlists.ChineseSimplified,
	lang.SimplifiedChinese:    wordlists.ChineseSimplified,
	lang.TraditionalChinese:   wordlists.ChineseTraditional,
	lang.Czech:                wordlists.Czech,
	lang.AmericanEnglish:      wordlists.English,
	lang.BritishEnglish:       wordlists.English,
	lang.English:              wordlists.English,
	lang.French:               wordlists.French,
	lang.Italian:              wordlists.Italian,
	lang.Japanese:             wordlists.Japanese,
	lang.Korean:               wordlists.Korean,
	lang.Spanish:              wordlists.Spanish,
	lang.EuropeanSpanish:      wordlists.Spanish,
	lang.LatinAmericanSpanish: wordlists.Spanish,
}

func getWordlist(language string) []string {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages() // default language name matcher
	for t := range wordLists {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und { // Unknown language
		return nil
	}
	base, _ := tag.Base()
	btag := lang.MustParse(base.String())
	wl := wordLists[tag]
	if wl == nil {
		return wordLists[btag]
	}
	return wl
}
