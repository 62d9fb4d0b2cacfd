package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/assembly-tolly/assembly-language-server/config"
	"github.com/assembly-tolly/assembly-language-server/languageServer"
	"github.com/assembly-tolly/assembly-language-server/util"
)

const defaultAddr = "127.0.0.1:2035"

var rootCmd = &cobra.Command{
	Use:   "assembly-tolly-ls",
	Short: "Language server for AssEmbly",
	Long: `Language server for the AssEmbly assembly language. Without a command it
listens for TCP connections so it can be debugged remotely.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			util.LoggingEnabled = true
		}
		if sink, _ := cmd.Flags().GetString("log-sink"); sink != "" {
			util.LoggingEnabled = true
			util.LogSink = sink
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := serverOptions(cmd)
		if err != nil {
			return err
		}
		return languageServer.ListenAndServeTCP(defaultAddr, opts)
	},
}

var languageServerCmd = &cobra.Command{
	Use:       "languageServer [debug]",
	Short:     "Serve the language server protocol over stdin and stdout",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"debug"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			util.LoggingEnabled = true
		}
		if isTerminal(os.Stdin) {
			fmt.Fprintln(os.Stderr, "assembly-tolly-ls: waiting for an editor to connect over stdin")
		}
		opts, err := serverOptions(cmd)
		if err != nil {
			return err
		}
		languageServer.ListenAndServe(opts)
		return nil
	},
}

var tcpCmd = &cobra.Command{
	Use:   "tcp",
	Short: "Serve the language server protocol over TCP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		opts, err := serverOptions(cmd)
		if err != nil {
			return err
		}
		return languageServer.ListenAndServeTCP(addr, opts)
	},
}

var websocketCmd = &cobra.Command{
	Use:   "websocket",
	Short: "Serve the language server protocol over websockets at /ws",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		opts, err := serverOptions(cmd)
		if err != nil {
			return err
		}
		return languageServer.ListenAndServeWebsocket(addr, opts)
	},
}

func main() {
	rootCmd.AddCommand(languageServerCmd)
	rootCmd.AddCommand(tcpCmd)
	rootCmd.AddCommand(websocketCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(hoverCmd)

	rootCmd.PersistentFlags().Bool("debug", false, "log what the server does to stderr")
	rootCmd.PersistentFlags().String("log-sink", "", "also POST log messages to this URL")
	rootCmd.PersistentFlags().String("config", "", "TOML file with the starting linter settings")
	rootCmd.PersistentFlags().Bool("watch", true, "reload the workspace settings file when it changes")
	tcpCmd.Flags().String("addr", defaultAddr, "address to listen on")
	websocketCmd.Flags().String("addr", "127.0.0.1:2036", "address to listen on")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings returns the defaults overlaid with the --config file.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := config.LoadTOML(path, &s); err != nil {
			return s, err
		}
	}
	return s, nil
}

func serverOptions(cmd *cobra.Command) (languageServer.Options, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return languageServer.Options{}, err
	}
	watch, _ := cmd.Flags().GetBool("watch")
	return languageServer.Options{Settings: &s, WatchSettings: watch}, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
