package cli

import (
	"fmt"
	"os"

	"github.com/promptpack/promptpack/internal/config"
	"github.com/spf13/cobra"
)

const (
	configUse                  = "config"
	configShortDescription     = "manage promptpack configuration"
	configInitUse              = "init"
	configInitShortDescription = "write a starter configuration file"
	configInitLongDescription  = `Write a commented starter configuration file.
The local file lives in the working directory; --global writes the shared file
under the home directory instead. Existing files are preserved unless --force
is set.`
	configInitUsageExample = `  # Create .promptpack.yaml in the current project
  promptpack config init

  # Replace the shared configuration
  promptpack config init --global --force`

	globalFlagName        = "global"
	globalFlagDescription = "write the global configuration file"
	forceFlagName         = "force"
	forceFlagDescription  = "overwrite an existing configuration file"
	configInitWroteFormat = "Wrote %s\n"
)

// createConfigCommand returns the config command group.
func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	configCommand.AddCommand(createConfigInitCommand())
	return configCommand
}

// createConfigInitCommand returns the config init subcommand.
func createConfigInitCommand() *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:     configInitUse,
		Short:   configInitShortDescription,
		Long:    configInitLongDescription,
		Example: configInitUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            forceOverwrite,
				WorkingDirectory: workingDirectory,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Fprintf(command.OutOrStdout(), configInitWroteFormat, writtenPath)
			return nil
		},
	}

	registerBooleanFlag(initCommand.Flags(), &globalTarget, globalFlagName, "", false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &forceOverwrite, forceFlagName, "", false, forceFlagDescription)
	return initCommand
}
