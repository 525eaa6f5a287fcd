// main.go
// A Cobra-based CLI over the getbd registrar façade.
//
// Subcommands
//   validate                          – check the API key
//   search <sld> <tld>...             – availability per TLD
//   register <sld> <tld>              – create + process a registration order
//   renew <domain>                    – renew for --years
//   transfer <domain>                 – always refused
//   nameservers <domain> <ns>...      – replace nameservers (max 3)
//   info <domain>                     – whois view
//   sync <domain>                     – dates and active/expired state
//   order-url <domain>                – partner panel link for the order
//   rate <domain>                     – price quote for --years
//   list                              – raw domain listing
//
// Configuration (flags > env > file > defaults)
//   --config getbd.yaml, GETBD_API_KEY, GETBD_SANDBOX_MODE, GETBD_LOG_LEVEL
//
// Run examples
//   GETBD_API_KEY=... ./getbdctl search example com.bd net.bd
//   ./getbdctl --sandbox info example.com.bd --output text

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/datum-labs/getbd"
)

var (
	flagConfig      string
	flagOutput      string
	flagSandbox     bool
	flagLogLevel    string
	flagRawLog      string
	flagTimeout     time.Duration
	flagConcurrency int
	flagYears       int
)

func main() {
	root := &cobra.Command{
		Use:           "getbdctl",
		Short:         "Get BD registrar CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	pf := root.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "settings file (default: getbd.yaml in . or ~/.config/getbd)")
	pf.StringVarP(&flagOutput, "output", "o", "json", "output format: json, yaml or text")
	pf.BoolVar(&flagSandbox, "sandbox", false, "use the sandbox API (overrides settings)")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&flagRawLog, "raw-log", "", "append raw request/response pairs to this file")
	pf.DurationVar(&flagTimeout, "timeout", 30*time.Second, "per-request timeout")

	root.AddCommand(
		cmdValidate(), cmdSearch(), cmdRegister(), cmdRenew(), cmdTransfer(),
		cmdNameservers(), cmdInfo(), cmdSync(), cmdOrderURL(), cmdRate(), cmdList(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		_, kind, msg := getbd.Failure(err)
		log.Fatalf("%s: %s", kind, msg)
	}
}

// env bundles what every subcommand needs; closers run after the command.
type env struct {
	settings  getbd.Settings
	logger    *slog.Logger
	registrar *getbd.Registrar
	opts      []getbd.Option
	closers   []func() error
}

func (e *env) Close() {
	for _, c := range e.closers {
		_ = c()
	}
}

// client builds a low-level client for commands the façade does not cover.
func (e *env) client() (*getbd.Client, error) {
	return getbd.New(e.settings.APIKey, e.opts...)
}

func (e *env) clientOptions() []getbd.Option {
	opts := []getbd.Option{
		getbd.WithSandbox(e.settings.Sandbox),
		getbd.WithTimeout(flagTimeout),
		getbd.WithLogger(e.logger),
	}
	recorders := getbd.MultiRecorder{getbd.SlogRecorder{Logger: e.logger}}
	if flagRawLog != "" {
		fr, err := getbd.OpenFileRecorder(flagRawLog)
		if err != nil {
			e.logger.Warn("raw log disabled", "error", err)
		} else {
			recorders = append(recorders, fr)
			e.closers = append(e.closers, fr.Close)
		}
	}
	return append(opts, getbd.WithRecorder(recorders))
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("sandbox") {
		cfg.Settings.Sandbox = flagSandbox
	}
	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	e := &env{settings: cfg.Settings, logger: newLogger(level)}
	e.opts = e.clientOptions()
	e.registrar = getbd.NewRegistrar(e.settings,
		getbd.WithClientOptions(e.opts...),
		getbd.WithSearchConcurrency(flagConcurrency),
	)
	return e, nil
}

// run wires env setup/teardown around a command body.
func run(fn func(ctx context.Context, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(cmd.Context(), e, args)
	}
}

func cmdValidate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the API key is accepted",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, e *env, _ []string) error {
			if err := e.registrar.TestConnection(ctx); err != nil {
				return err
			}
			return render(map[string]any{"valid": true})
		}),
	}
}

func cmdSearch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <sld> <tld>...",
		Short: "Check availability of sld under each TLD",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			return render(e.registrar.CheckAvailability(ctx, args[0], args[1:]))
		}),
	}
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 1, "parallel TLD lookups")
	return cmd
}

func cmdRegister() *cobra.Command {
	var (
		reg  getbd.RegistrantContact
		nid  string
		nsrv []string
	)
	cmd := &cobra.Command{
		Use:   "register <sld> <tld>",
		Short: "Register a domain (create and process an order)",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			req := getbd.RegisterRequest{
				SLD:         args[0],
				TLD:         args[1],
				Years:       flagYears,
				Nameservers: nsrv,
				Registrant:  reg,
			}
			if nid != "" {
				req.Documents = getbd.Documents{getbd.NIDKey: getbd.Single(nid)}
			}
			if err := e.registrar.Register(ctx, req); err != nil {
				return err
			}
			return render(map[string]any{"status": "SUCCESS", "domain": args[0] + "." + args[1]})
		}),
	}
	f := cmd.Flags()
	f.IntVar(&flagYears, "years", 1, "registration period")
	f.StringVar(&reg.Name, "name", "", "registrant full name")
	f.StringVar(&reg.Email, "email", "", "registrant email")
	f.StringVar(&reg.AddressLine1, "address1", "", "address line 1")
	f.StringVar(&reg.AddressLine2, "address2", "", "address line 2")
	f.StringVar(&reg.City, "city", "", "city")
	f.StringVar(&reg.State, "state", "", "state")
	f.StringVar(&reg.ZipCode, "zip", "", "zip code")
	f.StringVar(&reg.Country, "country", "BD", "country")
	f.StringVar(&reg.PhoneCountryCode, "phone-cc", "880", "phone country code")
	f.StringVar(&reg.Phone, "phone", "", "phone number")
	f.StringVar(&nid, "nid", "", "National ID (10, 13 or 17 digits)")
	f.StringSliceVar(&nsrv, "ns", nil, "nameservers (max 3)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func cmdRenew() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renew <domain>",
		Short: "Renew a domain",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			if err := e.registrar.Renew(ctx, args[0], flagYears); err != nil {
				return err
			}
			return render(map[string]any{"renewed": args[0], "years": flagYears})
		}),
	}
	cmd.Flags().IntVar(&flagYears, "years", 1, "renewal period")
	return cmd
}

func cmdTransfer() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <domain>",
		Short: "Transfer a domain (not supported by Get BD)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			return e.registrar.Transfer(ctx, args[0])
		}),
	}
}

func cmdNameservers() *cobra.Command {
	return &cobra.Command{
		Use:   "nameservers <domain> <ns>...",
		Short: "Replace a domain's nameservers (max 3)",
		Args:  cobra.RangeArgs(2, 4),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			if err := e.registrar.UpdateNameservers(ctx, args[0], args[1:]); err != nil {
				return err
			}
			return render(map[string]any{"domain": args[0], "nameservers": args[1:]})
		}),
	}
}

func cmdInfo() *cobra.Command {
	return &cobra.Command{
		Use:   "info <domain>",
		Short: "Fetch the whois view of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			info, err := e.registrar.GetInfo(ctx, args[0])
			if err != nil {
				return err
			}
			return render(info)
		}),
	}
}

func cmdSync() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <domain>",
		Short: "Fetch dates and active/expired state",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			st, err := e.registrar.Sync(ctx, args[0])
			if err != nil {
				return err
			}
			return render(st)
		}),
	}
}

func cmdOrderURL() *cobra.Command {
	return &cobra.Command{
		Use:   "order-url <domain>",
		Short: "Print the partner panel link to the domain's order",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			u, err := e.registrar.OrderURL(ctx, args[0])
			if err != nil {
				return err
			}
			return render(map[string]any{"url": u})
		}),
	}
}

func cmdRate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <domain>",
		Short: "Fetch the price quote for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			c, err := e.client()
			if err != nil {
				return err
			}
			name, err := getbd.ASCIIDomain(args[0])
			if err != nil {
				return err
			}
			rate, err := c.DomainRate(ctx, name, flagYears)
			if err != nil {
				return err
			}
			return render(rate)
		}),
	}
	cmd.Flags().IntVar(&flagYears, "years", 1, "period to quote")
	return cmd
}

func cmdList() *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains in the partner account",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, e *env, _ []string) error {
			q := url.Values{}
			for _, p := range params {
				k, v, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("query parameter %q: want key=value", p)
				}
				q.Add(k, v)
			}
			c, err := e.client()
			if err != nil {
				return err
			}
			data, err := c.ListDomains(ctx, q)
			if err != nil {
				return err
			}
			return renderRaw(data)
		}),
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "query parameter key=value (repeatable)")
	return cmd
}
