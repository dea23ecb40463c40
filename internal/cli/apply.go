package cli

import "github.com/spf13/cobra"

// ApplyString copies a config value into target unless the flag was set.
func ApplyString(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// ApplyInt copies a config value into target unless the flag was set.
func ApplyInt(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// ApplyBool copies a config value into target unless the flag was set.
func ApplyBool(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
