package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		defaultValue bool
		arguments    []string
		expected     bool
		expectError  bool
	}{
		{
			name:         "defaults_to_false",
			defaultValue: false,
			arguments:    []string{},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_true_without_value",
			defaultValue: false,
			arguments:    []string{"--feature"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "sets_false_with_equals",
			defaultValue: true,
			arguments:    []string{"--feature=false"},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_false_with_no_literal",
			defaultValue: true,
			arguments:    []string{"--feature", "no"},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_true_with_on_literal",
			defaultValue: false,
			arguments:    []string{"--feature", "on"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "ignores_non_boolean_trailing_value",
			defaultValue: false,
			arguments:    []string{"--feature", "maybe"},
			expected:     true,
			expectError:  false,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "boolean-test"}
			flagSet := command.Flags()
			flagValue := !testCase.defaultValue
			registerBooleanFlag(flagSet, &flagValue, "feature", "", testCase.defaultValue, "toggle feature behaviour")
			normalizedArguments := normalizeBooleanFlagArguments(command, testCase.arguments)
			parseErr := command.ParseFlags(normalizedArguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if len(testCase.arguments) == 0 && flagValue != testCase.defaultValue {
				t.Fatalf("expected default %t, got %t", testCase.defaultValue, flagValue)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestRegisterBooleanFlagShorthand(t *testing.T) {
	t.Parallel()
	command := &cobra.Command{Use: "shorthand-test"}
	var lineNumbers bool
	registerBooleanFlag(command.Flags(), &lineNumbers, "line-numbers", "n", false, "toggle line numbers")
	if parseErr := command.ParseFlags([]string{"-n"}); parseErr != nil {
		t.Fatalf("unexpected parse error: %v", parseErr)
	}
	if !lineNumbers {
		t.Fatalf("expected shorthand to enable the flag")
	}
}

func TestNormalizeBooleanFlagArgumentsAcrossSubcommands(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		arguments []string
		expected  string
	}{
		{
			name:      "rewrites_literal_after_subcommand_flag",
			arguments: []string{"pack", "--include-hidden", "false", "src"},
			expected:  "pack --include-hidden=false src",
		},
		{
			name:      "keeps_path_argument_positional",
			arguments: []string{"pack", "--include-hidden", "src"},
			expected:  "pack --include-hidden src",
		},
		{
			name:      "stops_at_double_dash",
			arguments: []string{"pack", "--", "--include-hidden", "true"},
			expected:  "pack -- --include-hidden true",
		},
	}

	rootCommand := createRootCommand()
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			normalized := normalizeBooleanFlagArguments(rootCommand, testCase.arguments)
			if joined := strings.Join(normalized, " "); joined != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, joined)
			}
		})
	}
}
