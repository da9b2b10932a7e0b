package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/promptpack/promptpack/internal/commands"
	"github.com/promptpack/promptpack/internal/ignore"
)

func TestClassifyFilePrecedence(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	textPath := filepath.Join(rootDirectory, "plain.txt")
	writeTestFile(testingInstance, textPath, "text\n")
	binaryPath := filepath.Join(rootDirectory, "raw.bin")
	if writeError := os.WriteFile(binaryPath, []byte{0x00, 0xFF}, filePermissions); writeError != nil {
		testingInstance.Fatalf("writing binary fixture: %v", writeError)
	}
	databasePath := filepath.Join(rootDirectory, "app.db")
	createTestDatabase(testingInstance, databasePath)

	options := defaultOptions(rootDirectory)
	options.ExtractSQLite = true
	packer := commands.NewPacker(options)
	stack := ignore.NewStack(rootDirectory, ignore.CompilePatterns([]string{"*.log"}), false)

	testCases := []struct {
		name         string
		entryName    string
		absolutePath string
		expected     commands.Classification
	}{
		{
			name:         "hidden name decides before ignore rules",
			entryName:    ".secret.log",
			absolutePath: filepath.Join(rootDirectory, ".secret.log"),
			expected:     commands.ClassificationHidden,
		},
		{
			name:         "ignore rule decides before content",
			entryName:    "app.log",
			absolutePath: filepath.Join(rootDirectory, "app.log"),
			expected:     commands.ClassificationIgnored,
		},
		{
			name:         "text file is included",
			entryName:    "plain.txt",
			absolutePath: textPath,
			expected:     commands.ClassificationIncluded,
		},
		{
			name:         "binary content is detected",
			entryName:    "raw.bin",
			absolutePath: binaryPath,
			expected:     commands.ClassificationBinary,
		},
		{
			name:         "database header selects schema extraction",
			entryName:    "app.db",
			absolutePath: databasePath,
			expected:     commands.ClassificationSchema,
		},
	}
	for testCaseIndex, testCase := range testCases {
		classification, classifyError := packer.ClassifyFile(testCase.entryName, testCase.absolutePath, stack)
		if classifyError != nil {
			testingInstance.Fatalf("case %d (%s): unexpected error: %v", testCaseIndex, testCase.name, classifyError)
		}
		if classification != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %v, got %v", testCaseIndex, testCase.name, testCase.expected, classification)
		}
	}
}

func TestClassifyFileExtensionDecidesBeforeContent(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	options := defaultOptions(rootDirectory)
	options.Extensions = []string{"txt"}
	packer := commands.NewPacker(options)
	stack := ignore.NewStack(rootDirectory, nil, false)

	// The path does not exist, so a content read would fail loudly.
	classification, classifyError := packer.ClassifyFile("missing.bin", filepath.Join(rootDirectory, "missing.bin"), stack)
	if classifyError != nil {
		testingInstance.Fatalf("unexpected error: %v", classifyError)
	}
	if classification != commands.ClassificationExtension {
		testingInstance.Errorf("expected %v, got %v", commands.ClassificationExtension, classification)
	}
}

func TestClassifyDirectory(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	options := defaultOptions(rootDirectory)
	packer := commands.NewPacker(options)
	stack := ignore.NewStack(rootDirectory, ignore.CompilePatterns([]string{"build"}), false)

	testCases := []struct {
		name      string
		entryName string
		expected  commands.Classification
	}{
		{name: "hidden directory", entryName: ".cache", expected: commands.ClassificationHidden},
		{name: "ignored directory", entryName: "build", expected: commands.ClassificationIgnored},
		{name: "ordinary directory", entryName: "src", expected: commands.ClassificationIncluded},
	}
	for testCaseIndex, testCase := range testCases {
		classification := packer.ClassifyDirectory(testCase.entryName, filepath.Join(rootDirectory, testCase.entryName), stack)
		if classification != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %v, got %v", testCaseIndex, testCase.name, testCase.expected, classification)
		}
	}
}

func TestDirectoryOnlyRuleSkipsFiles(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	logsFilePath := filepath.Join(rootDirectory, "logs")
	writeTestFile(testingInstance, logsFilePath, "not a directory\n")

	options := defaultOptions(rootDirectory)
	packer := commands.NewPacker(options)
	stack := ignore.NewStack(rootDirectory, ignore.CompilePatterns([]string{"logs/"}), false)

	if classification := packer.ClassifyDirectory("logs", filepath.Join(rootDirectory, "logs"), stack); classification != commands.ClassificationIgnored {
		testingInstance.Errorf("expected directory rejected, got %v", classification)
	}
	fileClassification, classifyError := packer.ClassifyFile("logs", logsFilePath, stack)
	if classifyError != nil {
		testingInstance.Fatalf("unexpected error: %v", classifyError)
	}
	if fileClassification != commands.ClassificationIncluded {
		testingInstance.Errorf("expected file admitted, got %v", fileClassification)
	}
}
