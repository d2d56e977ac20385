package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/aicommit/internal/config"
	"github.com/sevigo/aicommit/internal/core"
)

var (
	authEndpoint string
	authModel    string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage API provider credentials",
}

var authAddCmd = &cobra.Command{
	Use:   "add <provider> <apiKey>",
	Short: "Add or replace the credentials of a provider",
	Long: fmt.Sprintf(`Add or replace the credentials of a provider.

Supported providers: %s. The first provider added becomes the current one.`, providerList()),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.LoadStore(runCfg.GlobalDir)
		if err != nil {
			return err
		}
		provider := core.Provider(strings.ToLower(args[0]))
		err = store.AddProvider(provider, core.ProviderConfig{
			APIKey:   args[1],
			Endpoint: authEndpoint,
			Model:    authModel,
		})
		if err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "✓ Successfully added configuration for %s\n", provider)
		return nil
	},
}

var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured providers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := config.LoadStore(runCfg.GlobalDir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		providers := store.Providers()
		if len(providers) == 0 {
			warnColor.Fprintln(out, "No providers configured yet.")
			return nil
		}

		titleColor.Fprintln(out, "Configured providers:")
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "\tPROVIDER\tAPI KEY\tENDPOINT\tMODEL")
		current := store.CurrentProvider()
		for _, p := range providers {
			cfg, err := store.ProviderConfig(p)
			if err != nil {
				return err
			}
			marker := ""
			if p == current {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, p, maskKey(cfg.APIKey), cfg.Endpoint, cfg.Model)
		}
		return w.Flush()
	},
}

var authUseCmd = &cobra.Command{
	Use:   "use <provider>",
	Short: "Switch the current provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.LoadStore(runCfg.GlobalDir)
		if err != nil {
			return err
		}
		provider := core.Provider(strings.ToLower(args[0]))
		if err := store.UseProvider(provider); err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "✓ Switched to %s\n", provider)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	authAddCmd.Flags().StringVarP(&authEndpoint, "endpoint", "e", "", "API endpoint URL (defaults to the provider's)")
	authAddCmd.Flags().StringVarP(&authModel, "model", "m", "", "Model name (defaults to the provider's)")

	authCmd.AddCommand(authAddCmd, authListCmd, authUseCmd)
	rootCmd.AddCommand(authCmd)
}

// maskKey keeps the first and last four characters of keys long enough to
// still be unrecognizable.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 4) + key[len(key)-4:]
}

func providerList() string {
	names := make([]string, len(core.Providers))
	for i, p := range core.Providers {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
