package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/taskdeck/internal/app"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command showing the resolved configuration.
func newConfigCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := toml.Marshal(c.Config)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(content))
			return nil
		},
	}
}
