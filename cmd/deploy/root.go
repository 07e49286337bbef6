package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"salary-prediction-api/internal/adapters/secondary/render"
	"salary-prediction-api/internal/config"
	"salary-prediction-api/internal/core/domain"
	ports "salary-prediction-api/internal/core/ports/output"
	"salary-prediction-api/internal/core/services"
)

const dashboardURL = "https://dashboard.render.com"

// newHostingClient is a variable so tests can swap in a mock client.
var newHostingClient = func(cfg *config.RenderConfig) (ports.HostingClient, error) {
	return render.NewRenderClient(cfg)
}

// flag name -> config key
var flagKeys = map[string]string{
	"api-url":       "RENDER_API_URL",
	"service-name":  "RENDER_SERVICE_NAME",
	"repo":          "RENDER_REPO",
	"branch":        "RENDER_BRANCH",
	"region":        "RENDER_REGION",
	"plan":          "RENDER_PLAN",
	"runtime":       "RENDER_RUNTIME",
	"build-command": "RENDER_BUILD_COMMAND",
	"start-command": "RENDER_START_COMMAND",
	"url-delay":     "RENDER_URL_DELAY",
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Create or locate the salary prediction API on Render.",
		Long: `deploy talks to the Render management API with the key in RENDER_API_KEY.
It resolves the account owner, reuses a service with the configured name when
one exists and otherwise creates a new web service from the configured repo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if cfgFile == "" {
				return nil
			}
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", cfgFile, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeploy(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("api-url", "", "Render API base URL")
	flags.String("service-name", "", "name of the web service")
	flags.String("repo", "", "git repository to build from")
	flags.String("branch", "", "git branch to build from")
	flags.String("region", "", "Render region")
	flags.String("plan", "", "Render plan id")
	flags.String("runtime", "", "service runtime")
	flags.String("build-command", "", "build command")
	flags.String("start-command", "", "start command")
	flags.String("url-delay", "", "wait before fetching the URL of a new service")

	for name, key := range flagKeys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func runDeploy(cmd *cobra.Command, v *viper.Viper) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadFrom(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	printBanner(out, "Render Deployment")

	client, err := newHostingClient(&cfg.Render)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Getting account information...")
	svc := services.NewDeployService(client, cfg.Render.URLDelay)
	result, err := svc.Deploy(cmd.Context(), services.ServiceSpecFromConfig(&cfg.Render))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Owner ID: %s\n\n", result.OwnerID)

	if result.Existing {
		fmt.Fprintf(out, "Service '%s' already exists!\n", result.ServiceName)
		fmt.Fprintf(out, "   Service ID: %s\n", result.ServiceID)
		if result.URL != "" {
			fmt.Fprintf(out, "   URL: %s\n", result.URL)
		}
		fmt.Fprintln(out, "\nTo redeploy, use the Render dashboard or trigger a new deploy via API.")
		return nil
	}

	fmt.Fprintf(out, "Service created! Service ID: %s\n\n", result.ServiceID)
	fmt.Fprintln(out, "Deployment is starting. This may take 2-5 minutes.")
	fmt.Fprintf(out, "   Check progress at: %s\n\n", dashboardURL)
	if result.URL != "" {
		fmt.Fprintf(out, "Your API will be available at: %s\n", result.URL)
	} else {
		fmt.Fprintln(out, "Check your Render dashboard for the service URL")
	}

	fmt.Fprintln(out)
	printBanner(out, "Deployment initiated!")
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "1. Go to %s\n", dashboardURL)
	fmt.Fprintf(out, "2. Find your service '%s'\n", result.ServiceName)
	fmt.Fprintln(out, "3. Watch the deployment logs")
	fmt.Fprintln(out, "4. Once deployed, test your API!")
	return nil
}

func printBanner(out io.Writer, title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, line)
}

// explain adds operator guidance for the failures a user can fix.
func explain(out io.Writer, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		fmt.Fprintln(out, "\nTo get your API key:")
		fmt.Fprintf(out, "1. Go to %s/account/api-keys\n", dashboardURL)
		fmt.Fprintln(out, "2. Create a new API key")
		fmt.Fprintln(out, "3. export RENDER_API_KEY=your_key_here")
	case errors.Is(err, domain.ErrOwnerNotFound):
		fmt.Fprintln(out, "Failed to get owner ID. Check your API key.")
	case errors.Is(err, domain.ErrServiceExists):
		fmt.Fprintln(out, "Service already exists. Use the Render dashboard to manage it.")
	default:
		fmt.Fprintln(out, "You may need to:")
		fmt.Fprintln(out, "   1. Connect your GitHub account in the Render dashboard first")
		fmt.Fprintln(out, "   2. Or create the service manually via the dashboard")
	}
}

// Execute is the main entry point.
func Execute() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCmd(viper.New())
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		explain(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
