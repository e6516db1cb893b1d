package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/notepad-sync/internal/app"
	"github.com/MKhiriev/notepad-sync/internal/config"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/utils"
	"github.com/MKhiriev/notepad-sync/internal/workers"
	"github.com/MKhiriev/notepad-sync/models"
)

// cli holds the state shared by all commands of one invocation.
type cli struct {
	app       *App
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// Run executes the command line in args and reports failures on stderr.
func Run(ctx context.Context, args []string, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	c := &cli{buildInfo: buildInfo, logger: log}
	root := c.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(log.WithContext(ctx))
	if c.app != nil {
		if closeErr := c.app.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "client.Run").Msg("failed to close app")
		}
	}

	if err != nil {
		log.Err(err).Str("func", "client.Run").Strs("args", args).Msg("command failed")
		printError(root.ErrOrStderr(), app.Describe(err))
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "notepad-sync",
		Short:         "Sync notepads and their assets with a remote endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetClientConfig(cmd.Flags())
			if err != nil {
				return err
			}

			c.app, err = NewApp(cmd.Context(), cfg, c.buildInfo, cmd.ErrOrStderr(), c.logger)
			return err
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.versionCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.proCmd(),
		c.listCmd(),
		c.sharedCmd(),
		c.createCmd(),
		c.passphraseCmd(),
		c.pushCmd(),
		c.pullCmd(),
		c.syncCmd(),
		c.deleteCmd(),
		c.infoCmd(),
		c.watchCmd(),
		c.importAssetCmd(),
		c.exportAssetCmd(),
	)

	return root
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout(), c.buildInfo)
		},
	}
}

func (c *cli) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the account on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}
			if password == "" {
				var err error
				if password, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "password: "); err != nil {
					return err
				}
			}

			identity, err := c.app.services.AccountService.Login(cmd.Context(), models.Credentials{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successStyle.Render("logged in as"), identity.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password, prompted when empty")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the remembered account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.services.AccountService.Logout(cmd.Context())
		},
	}
}

func (c *cli) proCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pro",
		Short: "Show whether the account is on the paid tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := c.app.requireIdentity(cmd.Context())
			if err != nil {
				return err
			}

			pro, err := c.app.services.AccountService.IsPro(cmd.Context(), identity)
			if err != nil {
				return err
			}

			tier := "free"
			if pro {
				tier = "pro"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", identity.Username, titleStyle.Render(tier))
			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notepads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !remote {
				notepads, err := c.app.services.NotepadService.ListLocal(ctx)
				if err != nil {
					return err
				}
				printLocalNotepads(cmd.OutOrStdout(), notepads)
				return nil
			}

			identity, err := c.app.requireIdentity(ctx)
			if err != nil {
				return err
			}
			notepads, err := c.app.services.NotepadService.ListRemote(ctx, identity)
			if err != nil {
				return err
			}
			printRemoteNotepads(cmd.OutOrStdout(), notepads)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&remote, "remote", "r", false, "List notepads synced by the account")
	return cmd
}

func (c *cli) sharedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shared",
		Short: "List notepads shared with the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := c.app.requireIdentity(cmd.Context())
			if err != nil {
				return err
			}

			shared, err := c.app.services.NotepadService.ListShared(cmd.Context(), identity)
			if err != nil {
				return err
			}
			printSharedNotepads(cmd.OutOrStdout(), shared)
			return nil
		},
	}
}

func (c *cli) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>",
		Short: "Create an empty local notepad",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.app.services.NotepadService.Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func (c *cli) passphraseCmd() *cobra.Command {
	var disable bool

	cmd := &cobra.Command{
		Use:   "passphrase <notepad-id> [passphrase]",
		Short: "Encrypt a notepad with a passphrase",
		Long:  "Stores the passphrase on this device and encrypts the notepad body on every upload.\nThe passphrase is prompted when omitted. --disable turns encryption off.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var passphrase string
			switch {
			case disable:
			case len(args) == 2:
				passphrase = args[1]
			default:
				var err error
				if passphrase, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "passphrase: "); err != nil {
					return err
				}
				if passphrase == "" {
					return fmt.Errorf("empty passphrase, use --disable to turn encryption off")
				}
			}

			return c.app.services.NotepadService.SetPassphrase(cmd.Context(), args[0], passphrase)
		},
	}

	cmd.Flags().BoolVar(&disable, "disable", false, "Turn encryption off")
	return cmd
}

func (c *cli) pushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <notepad-id>",
		Short: "Upload a notepad and the assets the server lacks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := c.app.identity(cmd.Context())
			if err != nil {
				return err
			}

			res, err := c.app.services.SyncService.Upload(cmd.Context(), identity, args[0])
			if err != nil {
				return err
			}
			printSyncResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *cli) pullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <sync-id> [notepad-id]",
		Short: "Download a remote notepad and the assets missing locally",
		Long:  "Replaces the local notepad with the remote one. A new local notepad is created when notepad-id is omitted.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notepadID := utils.NewUUIDGenerator().Generate()
			if len(args) == 2 {
				if !utils.IsUUID(args[1]) {
					return fmt.Errorf("invalid notepad id %q", args[1])
				}
				notepadID = args[1]
			}

			res, err := c.app.services.SyncService.Download(cmd.Context(), args[0], notepadID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), notepadID)
			printSyncResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <notepad-id>",
		Short: "Upload or download a notepad, whichever side changed last",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := c.app.identity(cmd.Context())
			if err != nil {
				return err
			}

			res, err := c.app.services.SyncService.Sync(cmd.Context(), identity, args[0])
			if err != nil {
				return err
			}
			printSyncResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <notepad-id>",
		Short: "Delete the remote copy of a notepad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := c.app.identity(cmd.Context())
			if err != nil {
				return err
			}
			return c.app.services.SyncService.Delete(cmd.Context(), identity, args[0])
		},
	}
}

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <sync-id>",
		Short: "Show the remote record of a notepad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.app.services.SyncService.Info(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printRecord(cmd.OutOrStdout(), record)
			return nil
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <notepad-id>",
		Short: "Keep a notepad in sync until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			job := c.app.services.SyncJob
			ws := workers.NewWorkers(workers.Funcs{
				RunFunc:  func() { job.Start(ctx, args[0], c.app.cfg.Workers.SyncInterval) },
				StopFunc: job.Stop,
			})

			ws.Run()
			fmt.Fprintf(cmd.OutOrStdout(), "watching %s, press Ctrl+C to stop\n", args[0])
			<-ctx.Done()
			ws.Stop()

			return nil
		},
	}
}

func (c *cli) importAssetCmd() *cobra.Command {
	var mimeType string

	cmd := &cobra.Command{
		Use:   "import-asset <notepad-id> <file>",
		Short: "Attach a file to a notepad as a new asset",
		Long:  "Stores the file as an asset of the notepad and prints its uuid. Files holding a base64 data URI are decoded.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			id, err := c.app.services.NotepadService.ImportAsset(cmd.Context(), args[0], data, mimeType)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mimeType, "mime-type", "m", "", "MIME type of the file, detected when empty")
	return cmd
}

func (c *cli) exportAssetCmd() *cobra.Command {
	var (
		output  string
		dataURI bool
	)

	cmd := &cobra.Command{
		Use:   "export-asset <uuid>",
		Short: "Write a stored asset to a file or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := c.app.services.NotepadService.ExportAsset(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data := asset.Data
			if dataURI {
				data = []byte(asset.DataURI())
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(output, data, 0o600)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file, stdout when empty")
	cmd.Flags().BoolVar(&dataURI, "data-uri", false, "Write the asset as a base64 data URI")
	return cmd
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Fprintln(w, line)
	}
}

// prompt reads one line from in after printing label to out.
func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
